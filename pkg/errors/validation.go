package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePositive validates that an integer setting is strictly positive.
// The name is the configuration key and appears in the error message.
func ValidatePositive(name string, value int) error {
	if value <= 0 {
		return New(ErrCodeInvalidConfig, "%s needs to be positive, got %d", name, value)
	}
	return nil
}

// ValidateNonNegative validates that an integer setting is zero or greater.
func ValidateNonNegative(name string, value int) error {
	if value < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %d", name, value)
	}
	return nil
}

// ValidateProbability validates that a float setting lies in [0, 1].
// NaN is rejected.
func ValidateProbability(name string, value float64) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return New(ErrCodeInvalidConfig, "%s needs to be a probability in [0, 1], got %g", name, value)
	}
	return nil
}

// algorithmKeyRegex matches algorithm keys such as "DSatur" or "degreeGreedy".
var algorithmKeyRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ValidateAlgorithmKey validates an algorithm key used to select a coloring.
// The empty string is allowed and means "none".
//
// The validation rules are intentionally conservative:
//   - No control characters
//   - Letters and digits only, starting with a letter
//   - Maximum length of 64 characters
func ValidateAlgorithmKey(key string) error {
	if key == "" {
		return nil
	}

	if len(key) > 64 {
		return New(ErrCodeInvalidConfig, "algorithm key too long (max 64 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "algorithm key contains invalid control characters")
		}
	}

	if !algorithmKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidConfig, "invalid algorithm key: %q", key)
	}

	return nil
}

// ValidateVertexID validates a vertex identifier read from a graph file.
// IDs must be non-empty, free of control characters and at most 256 bytes.
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "vertex ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "vertex ID too long (max 256 characters)")
	}

	if strings.ContainsFunc(id, unicode.IsControl) {
		return New(ErrCodeInvalidGraph, "vertex ID contains invalid control characters")
	}

	return nil
}
