package models

import (
	"errors"
	"fmt"
)

// ErrPersonNotFound is returned when an operation references an unknown person ID.
var ErrPersonNotFound = errors.New("person not found")

// ValidationError reports a rejected field on person or employment creation.
// The caller (form layer) recovers locally; the store is never mutated on one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
