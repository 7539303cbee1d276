package ocrconfig

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ValidationError via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError reports a field holding a value outside its enumeration.
type ValidationError struct {
	Field   string // Configuration field name, e.g. "optimize"
	Value   string // Offending value
	Message string // Human-readable explanation
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Is lets errors.Is(err, ErrInvalidConfig) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
