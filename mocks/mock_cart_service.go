package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockCartService is a testify mock of cart.Service
type MockCartService struct {
	mock.Mock
}

// NewMockCartService creates a mock that asserts its expectations on cleanup
func NewMockCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartService {
	m := &MockCartService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCartService) summary(args mock.Arguments) (*domain.CartSummary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartSummary), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, userID string) (*domain.CartSummary, error) {
	return m.summary(m.Called(ctx, userID))
}

func (m *MockCartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error) {
	return m.summary(m.Called(ctx, userID, productID, quantity))
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.CartSummary, error) {
	return m.summary(m.Called(ctx, userID, productID, quantity))
}

func (m *MockCartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.CartSummary, error) {
	return m.summary(m.Called(ctx, userID, productID))
}

func (m *MockCartService) Clear(ctx context.Context, userID string) (*domain.CartSummary, error) {
	return m.summary(m.Called(ctx, userID))
}
