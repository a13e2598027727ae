package handler

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCropRequest struct {
	Name     string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Type     string `json:"type" validate:"required,croptype"`
	Rarity   string `json:"rarity" validate:"rarity"`
	Quantity int    `json:"quantity" validate:"min=1,max=99"`
}

func validRequest() testCropRequest {
	return testCropRequest{Name: "Golden Corn", Type: "grain", Rarity: "epic", Quantity: 1}
}

func TestValidator_CropType(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		cropType string
		wantErr  bool
	}{
		{"vegetable", "vegetable", false},
		{"herb", "herb", false},
		{"empty is required", "", true},
		{"case sensitive", "Grain", true},
		{"unknown", "mushroom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRequest()
			input.Type = tt.cropType

			err := v.ValidateStruct(input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Rarity(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		rarity  string
		wantErr bool
	}{
		{"common", false},
		{"legendary", false},
		{"", false},
		{"mythic", true},
	}

	for _, tt := range tests {
		t.Run(tt.rarity, func(t *testing.T) {
			input := validRequest()
			input.Rarity = tt.rarity

			err := v.ValidateStruct(input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_NameBoundaries(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"one char", "a", false},
		{"exactly max", strings.Repeat("a", 100), false},
		{"over max", strings.Repeat("a", 101), true},
		{"empty", "", true},
		{"newline", "Golden\nCorn", true},
		{"null byte", "Golden\x00Corn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRequest()
			input.Name = tt.value

			err := v.ValidateStruct(input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(testCropRequest{Type: "mushroom", Rarity: "mythic"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, map[string]string{
		"name":     "This field is required",
		"type":     "Must be one of vegetable, fruit, grain, herb",
		"rarity":   "Must be one of common, rare, epic, legendary",
		"quantity": "Must be at least 1",
	}, fields)
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	const workers = 8
	validate, validateOnce = nil, sync.Once{}

	var wg sync.WaitGroup
	results := make(chan *Validator, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := GetValidator()
			assert.NoError(t, v.ValidateStruct(validRequest()))
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	require.NotNil(t, first)
	for v := range results {
		assert.Same(t, first, v)
	}
}
