package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrLeaseLost is returned when a lease refresh finds the task no longer
	// owned by the calling pod. The worker must stop writing to the task.
	ErrLeaseLost = errors.New("task lease lost")

	// ErrAlreadyTerminal is returned when an operation requires a live task
	// but the task has already reached a terminal status.
	ErrAlreadyTerminal = errors.New("task already terminal")

	// ErrNotRetryable is returned when retry is requested for a task whose
	// status does not permit it.
	ErrNotRetryable = errors.New("task is not retryable")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
