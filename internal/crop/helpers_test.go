package crop

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// fixedRandom returns the same values every call
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(int) int     { return r.n }

// memStore is an in-memory CropStore with optional write failures
type memStore struct {
	mu        sync.Mutex
	crops     []domain.Crop
	failWrite bool
	failList  bool
}

var errDisk = errors.New("disk full")

func (m *memStore) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList {
		return nil, errDisk
	}
	return append([]domain.Crop(nil), m.crops...), nil
}

func (m *memStore) PutCrop(ctx context.Context, c domain.Crop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return errDisk
	}
	for i := range m.crops {
		if m.crops[i].ID == c.ID {
			m.crops[i] = c
			return nil
		}
	}
	m.crops = append(m.crops, c)
	return nil
}

func (m *memStore) DeleteCrop(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return errDisk
	}
	for i := range m.crops {
		if m.crops[i].ID == id {
			m.crops = append(m.crops[:i], m.crops[i+1:]...)
			return nil
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

func validInput() domain.PlantInput {
	return domain.PlantInput{
		Name:          "Heritage Tomato",
		Type:          domain.CropTypeVegetable,
		Description:   "Sweet and juicy",
		ExpectedYield: 12,
		Rarity:        domain.RarityRare,
	}
}
