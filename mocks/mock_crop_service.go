package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockCropService is a testify mock of crop.Service
type MockCropService struct {
	mock.Mock
}

// NewMockCropService creates a mock that asserts its expectations on cleanup
func NewMockCropService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCropService {
	m := &MockCropService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCropService) List(ctx context.Context) ([]domain.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropService) ListByStatus(ctx context.Context, status domain.CropStatus) ([]domain.Crop, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Crop), args.Error(1)
}

func (m *MockCropService) Get(ctx context.Context, id string) (*domain.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockCropService) Plant(ctx context.Context, input domain.PlantInput) (*domain.Crop, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockCropService) Harvest(ctx context.Context, id string) (*domain.HarvestEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HarvestEvent), args.Error(1)
}

func (m *MockCropService) Edit(ctx context.Context, id string, fields domain.CropFields) (*domain.Crop, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}

func (m *MockCropService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
