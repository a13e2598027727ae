package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockCatalogService is a testify mock of catalog.Service
type MockCatalogService struct {
	mock.Mock
}

// NewMockCatalogService creates a mock that asserts its expectations on cleanup
func NewMockCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogService {
	m := &MockCatalogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCatalogService) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query, category string) ([]domain.Product, error) {
	args := m.Called(ctx, query, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) Recommend(ctx context.Context, cropType domain.CropType) (*domain.Recommendation, error) {
	args := m.Called(ctx, cropType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
