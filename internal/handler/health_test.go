package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		storageErr  error
		wantStatus  int
		wantMessage string
	}{
		{"all healthy", nil, nil, http.StatusOK, ""},
		{"database down", assert.AnError, nil, http.StatusServiceUnavailable, `"message":"database check failed"`},
		{"database timeout", context.DeadlineExceeded, nil, http.StatusServiceUnavailable, `"status":"unavailable"`},
		{"storage down", nil, errors.New("data dir missing"), http.StatusServiceUnavailable, `"message":"storage check failed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)

			checks := map[string]HealthChecker{
				"database": PoolChecker(mockDB),
				"storage": HealthCheckFunc(func(context.Context) error {
					return tt.storageErr
				}),
			}

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()
			HandleReadyz(checks).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Contains(t, w.Body.String(), tt.wantMessage)
			} else {
				assert.Contains(t, w.Body.String(), `"status":"ok"`)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestHandleReadyz_NoChecks(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()

	HandleReadyz(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
