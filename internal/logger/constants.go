package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "norifarm"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment names; the long forms are accepted too
const (
	EnvironmentDev        = "dev"
	EnvironmentDevLong    = "development"
	EnvironmentProduction = "prod"
	EnvironmentProdLong   = "production"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
