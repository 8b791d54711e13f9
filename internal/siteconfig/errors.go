package siteconfig

import (
	"errors"
	"fmt"
)

// ValidationError reports a record field whose value is not well formed.
type ValidationError struct {
	Field   string // Field key (e.g., "githubUrl"), empty for standalone checks
	Value   string // Offending value
	Message string // Human-readable reason
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// withField returns err with its Field set, if it is a ValidationError.
func withField(field string, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		out := *vErr
		out.Field = field
		return &out
	}
	return fmt.Errorf("%s: %w", field, err)
}
