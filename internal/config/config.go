package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	LogDir      string
	APIKey      string // API key for authentication

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	// Crop storage
	StorageDriver string // "file" or "postgres"
	DataDir       string

	// Catalog and uploads
	CatalogPath    string
	CatalogTTL     time.Duration
	UploadDir      string
	UploadBaseURL  string
	MaxUploadBytes int64

	// Database (postgres driver only)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Event bus retries
	EventMaxRetries    int
	EventRetryDelay    time.Duration
	EventDeadLetterLog string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("APP_VERSION", DefaultVersion),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverFile)),
		DataDir:       getEnv("DATA_DIR", DefaultDataDir),

		CatalogPath:    getEnv("CATALOG_PATH", DefaultCatalogPath),
		CatalogTTL:     getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogTTL),
		UploadDir:      getEnv("UPLOAD_DIR", DefaultUploadDir),
		UploadBaseURL:  getEnv("UPLOAD_BASE_URL", DefaultUploadBaseURL),
		MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "norifarm"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		EventMaxRetries:    getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:    getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterLog: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterLog),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StorageDriver {
	case StorageDriverFile, StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: expected %q or %q", cfg.StorageDriver, StorageDriverFile, StorageDriverPostgres)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// splitList parses a comma separated list, dropping blanks
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsProduction reports whether ENVIRONMENT names a production deployment
func (c *Config) IsProduction() bool {
	return c.Environment == logger.EnvironmentProduction || c.Environment == logger.EnvironmentProdLong
}

// UsesPostgres reports whether crops are stored in Postgres
func (c *Config) UsesPostgres() bool {
	return c.StorageDriver == StorageDriverPostgres
}
