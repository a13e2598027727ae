package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and to a fresh
// session log under cfg.LogDir. The caller closes the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// leave room for the file created below
	cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	lcfg := loggerConfig(cfg)
	logger.InitLoggerWithWriter(lcfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", lcfg.LogLevel(), "file", name)
	slog.Info(LogMsgStartingNoriFarm,
		"environment", cfg.Environment,
		"storage_driver", cfg.StorageDriver,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"catalog_path", cfg.CatalogPath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	return logFile, nil
}

func loggerConfig(cfg *config.Config) logger.Config {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == logger.EnvironmentDevLong
	return logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, cfg.Version, cfg.Environment, addSource)
}

// cleanupLogs deletes the oldest session logs until at most keep remain.
// Session names embed a sortable timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
