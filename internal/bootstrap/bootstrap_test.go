package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/config"
	"github.com/osse101/NoriFarm_Go/internal/storage"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2025-06-%02d_09-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o644))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "event_deadletter.jsonl")
	assert.Contains(t, names, "session_2025-06-12_09-00-00.log")
	assert.NotContains(t, names, "session_2025-06-03_09-00-00.log")
	assert.Contains(t, names, "session_2025-06-04_09-00-00.log")
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")
	cfg := &config.Config{EventDeadLetterLog: path, EventRetryDelay: time.Millisecond}

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)

	RegisterEventHandlers(bus, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, publisher.Shutdown(ctx))

	assert.FileExists(t, path)
}

const validBaseline = `[{
	"id": "1", "name": "Golden Corn", "type": "grain",
	"plantedAt": "2025-01-10T09:00:00Z", "harvestAt": "2025-04-20T09:00:00Z",
	"description": "Sweet corn", "expectedYield": 12, "rarity": "rare"
}]`

func TestInitializeCropStorage_FileDriver(t *testing.T) {
	tests := []struct {
		name     string
		baseline string
		wantErr  string
		wantLen  int
	}{
		{name: "no baseline file", wantLen: 0},
		{name: "valid baseline", baseline: validBaseline, wantLen: 1},
		{name: "invalid rarity", baseline: `[{"id":"1","name":"Kale","type":"vegetable","plantedAt":"2025-01-10T09:00:00Z","harvestAt":"2025-02-10T09:00:00Z","description":"x","expectedYield":3,"rarity":"mythic"}]`, wantErr: ErrMsgInvalidBaseline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.baseline != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, storage.BaselineFile), []byte(tt.baseline), 0o644))
			}
			cfg := &config.Config{StorageDriver: config.StorageDriverFile, DataDir: dir}

			cs, err := InitializeCropStorage(context.Background(), cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer cs.Close()
			assert.Nil(t, cs.Pool)

			crops, err := cs.Store.ListCrops(context.Background())
			require.NoError(t, err)
			assert.Len(t, crops, tt.wantLen)
		})
	}
}

func TestInitializeCropStorage_UnknownDriver(t *testing.T) {
	_, err := InitializeCropStorage(context.Background(), &config.Config{StorageDriver: "redis", DataDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownStorageDriver)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
