package domain

import (
	"errors"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgValidation = "validation failed"

	// Lookup errors
	ErrMsgNotFound        = "not found"
	ErrMsgCropNotFound    = "crop not found"
	ErrMsgNoProductMatch  = "no matching product found"
	ErrMsgProductNotFound = "product not found"

	// Lifecycle errors
	ErrMsgNotReady = "crop is not ready for harvest"

	// Storage errors
	ErrMsgPersistence = "persistence failure"

	// Upload errors
	ErrMsgUnsupportedMedia = "unsupported media type"
	ErrMsgPayloadTooLarge  = "payload too large"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrValidation = errors.New(ErrMsgValidation)

	ErrNotFound        = errors.New(ErrMsgNotFound)
	ErrCropNotFound    = errors.New(ErrMsgCropNotFound)
	ErrNoProductMatch  = errors.New(ErrMsgNoProductMatch)
	ErrProductNotFound = errors.New(ErrMsgProductNotFound)

	ErrNotReady = errors.New(ErrMsgNotReady)

	ErrPersistence = errors.New(ErrMsgPersistence)

	ErrUnsupportedMedia = errors.New(ErrMsgUnsupportedMedia)
	ErrPayloadTooLarge  = errors.New(ErrMsgPayloadTooLarge)
)

// ValidationError lists every violated field, keyed by JSON field name.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns nil when fields is empty
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrMsgValidation + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
