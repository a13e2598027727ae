package config

import "time"

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
	DefaultLogDir         = "logs"
	DefaultDataDir        = "data"
	DefaultCatalogPath    = "configs/catalog.yaml"
	DefaultCatalogTTL     = 5 * time.Minute
	DefaultUploadDir      = "public/uploads"
	DefaultUploadBaseURL  = "/uploads"
	DefaultMaxUploadBytes = 5 << 20

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultEventMaxRetries    = 3
	DefaultEventRetryDelay    = 2 * time.Second
	DefaultEventDeadLetterLog = "logs/event_deadletter.jsonl"
)
