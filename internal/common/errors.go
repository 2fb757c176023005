// Package common defines sentinel errors and small helpers shared by the
// client layers. Callers match the sentinels with errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is a guard failure: the action needs a session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrValidation is a guard failure: a required field is missing.
	ErrValidation = errors.New("validation error")
)

// ValidationError names the missing field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Required returns a ValidationError for field.
func Required(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
