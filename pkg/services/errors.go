// Package services provides the persistence layer over the Ent client. One
// service per aggregate; request structs live in pkg/models.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation conflicts with current state
	// (e.g. resolving an already-resolved escalation).
	ErrConflict = errors.New("conflict")
)

// ValidationError describes an invalid request field.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
