package ocrconfig

import (
	"fmt"
	"strings"
)

// ValidateOutputType validates an --output-type value.
func ValidateOutputType(t OutputType) error {
	if t == "" {
		return NewValidationError("output_type", "", "output type must be set")
	}
	if !t.Valid() {
		return NewValidationError("output_type", string(t),
			fmt.Sprintf("must be one of %s", joinOutputTypes()))
	}
	return nil
}

// ValidateOptimize validates an optimization label.
func ValidateOptimize(label string) error {
	if _, ok := OptimizeLevel(label); !ok {
		return NewValidationError("optimize", label,
			fmt.Sprintf("must be one of %q", OptimizeLabels))
	}
	return nil
}

// Validate checks every enumerated field of c and returns the first problem.
// Free-text fields are never rejected.
func Validate(c OcrConfig) error {
	if err := ValidateOutputType(c.OutputType); err != nil {
		return err
	}
	if err := ValidateOptimize(c.Optimize); err != nil {
		return err
	}
	for _, code := range c.Languages {
		if strings.ContainsAny(code, "+ \t") {
			return NewValidationError("languages", code, "language codes cannot contain '+' or whitespace")
		}
	}
	return nil
}

func joinOutputTypes() string {
	names := make([]string, len(OutputTypes))
	for i, t := range OutputTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
