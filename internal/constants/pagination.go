package constants

// Reserved Query Parameters
//
// Any other query-string key on a list endpoint is treated as a filter
// predicate; `field[gte|gt|lte|lt]=v` keys become range comparisons.
const (
	QueryParamPage    = "page"
	QueryParamLimit   = "limit"
	QueryParamSort    = "sort"
	QueryParamFields  = "fields"
	QueryParamKeyword = "keyword"
)

// Default Pagination Values
//
// The default page size is standardized to 20 for every listing endpoint.
// Malformed or absent page/limit values fall back to the defaults silently.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Pagination Limits
const (
	MinPage  = 1
	MinLimit = 1
	MaxLimit = 100
)
