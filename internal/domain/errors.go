// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyLogin is returned when an account login is blank.
	ErrEmptyLogin = fmt.Errorf("%w: login cannot be empty", ErrValidation)

	// ErrEmptyPassword is returned when an account password is blank.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrEmptyHashedPassword is returned when an account carries neither a
	// plaintext nor a hashed password.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)

	// ErrReservedLogin is returned when an account login collides with the
	// system sender used for match notifications.
	ErrReservedLogin = fmt.Errorf("%w: login is reserved", ErrValidation)

	// ErrAttributeNotSet is returned when a profile attribute has never been
	// filled in for the account.
	ErrAttributeNotSet = errors.New("attribute not set")

	// ErrEmptyCommunityName is returned when a community name is blank.
	ErrEmptyCommunityName = fmt.Errorf("%w: community name cannot be empty", ErrValidation)

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError provides field-level context for a validation failure.
// It wraps one of the sentinel errors above so callers can still use
// errors.Is to branch on the underlying kind.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
