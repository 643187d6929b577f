package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the expected failure conditions business operations
// can surface. Callers branch on these with errors.Is; anything else is an
// unexpected persistence failure.
var (
	ErrNotFound      = errors.New("record not found")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalid       = errors.New("invalid operation")
)

// FieldError reports a validation failure tied to a single input field so
// the presentation layer can render it next to the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrAlreadyExists
}
