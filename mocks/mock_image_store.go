package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockImageStore is a testify mock of images.Store
type MockImageStore struct {
	mock.Mock
}

// NewMockImageStore creates a mock that asserts its expectations on cleanup
func NewMockImageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageStore {
	m := &MockImageStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockImageStore) Store(ctx context.Context, data []byte, contentType, originalName string) (*domain.StoredImage, error) {
	args := m.Called(ctx, data, contentType, originalName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredImage), args.Error(1)
}
