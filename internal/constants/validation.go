package constants

// Field Length Limits
const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
	MinNameLength     = 3
	MaxNameLength     = 32
	MinTitleLength    = 3
	MaxTitleLength    = 100
	MinDescLength     = 20
	MaxDescLength     = 2000
	MaxProductPrice   = 200000
)

// Ratings
const (
	MinRating = 1
	MaxRating = 5
)

// Password Reset
const (
	ResetCodeLength    = 6
	ResetCodeExpiryMin = 10
)
