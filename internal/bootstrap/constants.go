package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "norifarm"

	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is how many session logs survive a cleanup, including the new one
	LogFileRetentionCount = 10
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingNoriFarm    = "Starting NoriFarm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgCropFeedRegistered             = "Crop feed subscriber registered"
)

// =============================================================================
// Crop Storage
// =============================================================================

const (
	LogMsgFileStoreReady       = "Using flat-file crop store"
	LogMsgPostgresStoreReady   = "Using postgres crop store"
	LogMsgBaselineSeeded       = "Baseline crops seeded"
	LogMsgBaselineMissing      = "No baseline crop file, starting empty"
	ErrMsgInvalidBaseline      = "invalid baseline crops"
	ErrMsgFailedOpenFileStore  = "failed to open crop data directory"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to apply migrations"
	ErrMsgFailedSeedBaseline   = "failed to seed baseline crops"
	ErrMsgUnknownStorageDriver = "unknown storage driver"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
