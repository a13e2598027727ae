package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/database"
	"github.com/osse101/NoriFarm_Go/internal/database/postgres"
	"github.com/osse101/NoriFarm_Go/internal/repository"
	"github.com/osse101/NoriFarm_Go/internal/storage"
	"github.com/osse101/NoriFarm_Go/internal/validation"
)

// CropStorage is the crop store selected by STORAGE_DRIVER. Pool is nil for
// the flat-file driver.
type CropStorage struct {
	Store repository.CropStore
	Pool  *pgxpool.Pool
}

// Close releases the database pool, if any
func (s *CropStorage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeCropStorage validates the baseline crop file and opens the
// configured store. For postgres it also migrates and seeds the baseline.
func InitializeCropStorage(ctx context.Context, cfg *config.Config) (*CropStorage, error) {
	if err := validateBaseline(cfg.DataDir); err != nil {
		return nil, err
	}

	switch cfg.StorageDriver {
	case config.StorageDriverFile:
		store, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		slog.Info(LogMsgFileStoreReady, "data_dir", cfg.DataDir)
		return &CropStorage{Store: store}, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		store := postgres.NewCropStore(pool)
		if err := seedBaseline(ctx, store, cfg.DataDir); err != nil {
			pool.Close()
			return nil, err
		}
		slog.Info(LogMsgPostgresStoreReady, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		return &CropStorage{Store: store, Pool: pool}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}

// validateBaseline schema-checks the baseline file when there is one
func validateBaseline(dataDir string) error {
	path := filepath.Join(dataDir, storage.BaselineFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgBaselineMissing, "path", path)
		return nil
	}
	if err := validation.ValidateBaselineCrops(path); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidBaseline, err)
	}
	return nil
}

func seedBaseline(ctx context.Context, store *postgres.CropStore, dataDir string) error {
	baseline, err := storage.ReadBaseline(dataDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedBaseline, err)
	}
	if len(baseline) == 0 {
		return nil
	}
	if err := store.SeedBaseline(ctx, baseline); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedBaseline, err)
	}
	slog.Info(LogMsgBaselineSeeded, "count", len(baseline))
	return nil
}
