// Package store defines the persistence-facing interfaces of the application:
// the account directory and the full-state snapshotter, together with the
// sentinel errors their implementations return.
package store

import (
	"context"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
)

// AccountDirectory defines the interface for account record storage.
// It is plain CRUD; all relationship and messaging rules live elsewhere.
type AccountDirectory interface {
	// Create saves a new account to the directory.
	// It handles domain validation and password hashing internally.
	// Returns ErrLoginExists if the login is already taken.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// Get retrieves an account by its login.
	// Returns ErrAccountNotFound if the account does not exist.
	Get(ctx context.Context, login string) (*domain.Account, error)

	// Exists reports whether an account with the given login is registered.
	Exists(ctx context.Context, login string) (bool, error)

	// Update modifies an existing account's details.
	// The caller MUST provide a complete account object including
	// HashedPassword. If a new plaintext Password is set it is hashed and the
	// HashedPassword replaced. Returns ErrAccountNotFound if the account does
	// not exist.
	Update(ctx context.Context, account *domain.Account) error

	// Delete removes an account from the directory by its login.
	// Returns ErrAccountNotFound if the account does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, login string) error

	// Logins returns every registered login. Order is unspecified.
	Logins(ctx context.Context) ([]string, error)

	// Snapshot returns all account records keyed by login.
	Snapshot(ctx context.Context) (map[string]*domain.Account, error)

	// Restore replaces the directory contents with the given records.
	Restore(ctx context.Context, accounts map[string]*domain.Account) error

	// Reset removes every account from the directory.
	Reset(ctx context.Context) error
}
