package command

import (
	"fmt"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

// ConfigError is returned by Compile when an enumerated field holds a value
// outside its table.
type ConfigError struct {
	// Field is the configuration field, e.g. "optimize"
	Field string
	// Value is the rejected value
	Value string
	// Underlying validation error
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot compile command: %s %q is not valid", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ocrconfig.ErrInvalidConfig) match a ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ocrconfig.ErrInvalidConfig
}
