package users

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required field that was absent or empty after
// normalization.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidTypeError reports a field whose value was not of the expected type.
type InvalidTypeError struct {
	Field string
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("field %s: expected string, got %T", e.Field, e.Value)
}

// NormalizeName checks and normalizes a candidate value for the user "name"
// field. Callers typically pass values pulled out of decoded JSON, so raw may
// be absent (nil) or of the wrong type.
//
// On success it returns the value with leading/trailing whitespace removed.
// A nil or empty-after-trim value fails with MissingFieldError; a non-string
// value fails with InvalidTypeError. Pure and safe for concurrent use.
func NormalizeName(raw any) (string, error) {
	if raw == nil {
		return "", &MissingFieldError{Field: "name"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &InvalidTypeError{Field: "name", Value: raw}
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", &MissingFieldError{Field: "name"}
	}
	return trimmed, nil
}
