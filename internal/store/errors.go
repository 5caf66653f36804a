package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrAccountNotFound indicates that the requested account does not exist
	// in the directory.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrLoginExists indicates that an account with the given login already
	// exists. Returned when registering a login that is already in use.
	ErrLoginExists = fmt.Errorf("%w: login", ErrDuplicate)

	// ErrSnapshotNotFound indicates that no persisted snapshot exists yet.
	ErrSnapshotNotFound = fmt.Errorf("%w: snapshot", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
