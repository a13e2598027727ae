package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/NoriFarm_Go/internal/event"
)

// MockBus is a testify mock of event.Bus
type MockBus struct {
	mock.Mock
}

// NewMockBus creates a mock that asserts its expectations on cleanup
func NewMockBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBus {
	m := &MockBus{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
