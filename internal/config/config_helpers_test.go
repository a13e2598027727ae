package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"parses valid integer", "100", 100},
		{"parses negative integers", "-10", -10},
		{"parses zero", "0", 0},
		{"returns default for invalid integer", "not-a-number", 42},
		{"returns default for float values", "42.5", 42},
		{"returns default for empty string", "", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"parses minutes", "10m", 10 * time.Minute},
		{"parses seconds", "30s", 30 * time.Second},
		{"parses complex duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"parses milliseconds", "500ms", 500 * time.Millisecond},
		{"returns default for invalid duration", "not-a-duration", 5 * time.Minute},
		{"returns default for plain numbers without unit", "100", 5 * time.Minute},
		{"returns default for empty string", "", 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING_VAR", "set")
	assert.Equal(t, "set", getEnv("TEST_STRING_VAR", "default"))

	t.Setenv("TEST_STRING_VAR", "")
	assert.Equal(t, "", getEnv("TEST_STRING_VAR", "default"), "empty but present value wins")

	os.Unsetenv("TEST_STRING_VAR")
	assert.Equal(t, "default", getEnv("TEST_STRING_VAR", "default"))
}
