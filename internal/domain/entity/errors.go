package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidType indicates a value of the wrong shape: malformed text or a
	// missing or foreign entity reference.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange indicates a value outside its permitted range, such as a
	// magazine name that is too short.
	ErrOutOfRange = errors.New("value out of range")

	// ErrImmutableField indicates a write to a field that is fixed at construction.
	ErrImmutableField = errors.New("field is immutable")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
// Kind, when set, classifies the failure and is reachable through errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the failure kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func typeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: ErrInvalidType}
}

func rangeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: ErrOutOfRange}
}

func immutableError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: "is fixed at construction and cannot change",
		Kind:    ErrImmutableField,
	}
}
