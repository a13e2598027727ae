package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockCropStore is a testify mock of repository.CropStore
type MockCropStore struct {
	mock.Mock
}

// NewMockCropStore creates a mock that asserts its expectations on cleanup
func NewMockCropStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCropStore {
	m := &MockCropStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCropStore) ListCrops(ctx context.Context) ([]domain.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropStore) PutCrop(ctx context.Context, crop domain.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}

func (m *MockCropStore) DeleteCrop(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
