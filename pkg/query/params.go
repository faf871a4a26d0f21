package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Reserved query-string parameters; every other key is a filter predicate.
const (
	ParamPage    = "page"
	ParamLimit   = "limit"
	ParamSort    = "sort"
	ParamFields  = "fields"
	ParamKeyword = "keyword"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Comparison operator suffixes accepted on filter keys, e.g. price[gte]=100.
var comparisonOps = map[string]string{
	"gte": ">=",
	"gt":  ">",
	"lte": "<=",
	"lt":  "<",
}

// Filter is one field constraint: equality when Op is empty, otherwise a
// range comparison.
type Filter struct {
	Key   string
	Op    string // "", "gte", "gt", "lte", "lt"
	Value string
}

// Params is the request-scoped query descriptor. Constructed once per
// request, consumed by a Builder, then discarded.
type Params struct {
	Filters []Filter
	Keyword string
	Fields  []string
	Sorts   []string
	Page    int
	Limit   int
}

// Parse builds Params from raw query-string values. Malformed page/limit
// values fall back to the defaults silently; limit is clamped to MaxLimit.
func Parse(values url.Values) Params {
	params := Params{
		Page:  positiveInt(values.Get(ParamPage), DefaultPage),
		Limit: positiveInt(values.Get(ParamLimit), DefaultLimit),
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	params.Keyword = values.Get(ParamKeyword)
	params.Fields = splitList(values.Get(ParamFields))
	params.Sorts = splitList(values.Get(ParamSort))

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		switch key {
		case ParamPage, ParamLimit, ParamSort, ParamFields, ParamKeyword:
			continue
		}
		params.Filters = append(params.Filters, parseFilter(key, vals[0]))
	}

	return params
}

// parseFilter recognizes the bracketed operator form field[op]=value and
// treats everything else as an exact-match constraint.
func parseFilter(key, value string) Filter {
	if open := strings.IndexByte(key, '['); open > 0 && strings.HasSuffix(key, "]") {
		op := key[open+1 : len(key)-1]
		if _, ok := comparisonOps[op]; ok {
			return Filter{Key: key[:open], Op: op, Value: value}
		}
	}
	return Filter{Key: key, Value: value}
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
