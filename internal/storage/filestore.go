package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

// FileStore keeps crops in three JSON files: the baseline catalog, its
// overrides and the user-created collection. Missing files read as empty.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// ListCrops returns the merged crop collection
func (s *FileStore) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	baseline, overrides, user, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	return Merge(baseline, overrides, user), nil
}

// PutCrop updates a user crop in place, records an override for a baseline
// crop, or appends a new user crop.
func (s *FileStore) PutCrop(ctx context.Context, crop domain.Crop) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	baseline, overrides, user, err := s.loadAll()
	if err != nil {
		return err
	}

	if i := indexOf(user, crop.ID); i >= 0 {
		user[i] = crop
		return s.writeJSON(UserCropsFile, user)
	}
	if indexOf(baseline, crop.ID) >= 0 {
		return s.writeJSON(OverridesFile, SetOverride(overrides, Upsert(crop)))
	}

	logger.FromContext(ctx).Debug("Appending user crop", "crop_id", crop.ID)
	return s.writeJSON(UserCropsFile, append(user, crop))
}

// DeleteCrop removes a user crop or tombstones a baseline crop. Unknown ids are a no-op.
func (s *FileStore) DeleteCrop(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	baseline, overrides, user, err := s.loadAll()
	if err != nil {
		return err
	}

	if i := indexOf(user, id); i >= 0 {
		user = append(user[:i], user[i+1:]...)
		return s.writeJSON(UserCropsFile, user)
	}
	if indexOf(baseline, id) >= 0 {
		return s.writeJSON(OverridesFile, SetOverride(overrides, Tombstone(id)))
	}
	return nil
}

func (s *FileStore) loadAll() ([]domain.Crop, []Override, []domain.Crop, error) {
	var baseline, user []domain.Crop
	var overrides []Override

	if err := s.readJSON(BaselineFile, &baseline); err != nil {
		return nil, nil, nil, err
	}
	if err := s.readJSON(OverridesFile, &overrides); err != nil {
		return nil, nil, nil, err
	}
	if err := s.readJSON(UserCropsFile, &user); err != nil {
		return nil, nil, nil, err
	}
	return baseline, overrides, user, nil
}

func (s *FileStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// writeJSON replaces the file atomically via a temp file and rename
func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func indexOf(crops []domain.Crop, id string) int {
	for i := range crops {
		if crops[i].ID == id {
			return i
		}
	}
	return -1
}

// ReadBaseline reads the baseline collection from dir. Used to seed other stores.
func ReadBaseline(dir string) ([]domain.Crop, error) {
	var baseline []domain.Crop
	if err := (&FileStore{dir: dir}).readJSON(BaselineFile, &baseline); err != nil {
		return nil, err
	}
	return baseline, nil
}
