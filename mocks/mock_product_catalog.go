package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockProductCatalog is a testify mock of repository.ProductCatalog
type MockProductCatalog struct {
	mock.Mock
}

// NewMockProductCatalog creates a mock that asserts its expectations on cleanup
func NewMockProductCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductCatalog {
	m := &MockProductCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
