package constants

// Application Information
const (
	AppName    = "Soukly API"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "8080"
	DefaultEnvironment = EnvDevelopment
)

// User Roles
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Payment Method Types
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Cache Key Prefixes
const (
	CacheKeyPrefix  = "soukly:"
	CacheKeyListing = CacheKeyPrefix + "listing:"
)
