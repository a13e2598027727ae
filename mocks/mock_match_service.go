package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/domain"
)

// MockMatchService is a testify mock of matcher.Service
type MockMatchService struct {
	mock.Mock
}

// NewMockMatchService creates a mock that asserts its expectations on cleanup
func NewMockMatchService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMatchService {
	m := &MockMatchService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMatchService) Match(ctx context.Context, query string) (*domain.MatchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchResult), args.Error(1)
}
