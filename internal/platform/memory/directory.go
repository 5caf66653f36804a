// Package memory provides the in-memory implementation of the account
// directory. The whole data set lives in process memory and reaches disk only
// through the snapshot hook, mirroring the original system's design.
package memory

import (
	"context"
	"maps"

	"golang.org/x/crypto/bcrypt"

	"github.com/wbrmagalhaes/jackut-api/internal/domain"
	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

// AccountDirectory implements the store.AccountDirectory interface backed by
// a plain map. It performs no locking of its own; the interaction service
// serializes access.
type AccountDirectory struct {
	accounts   map[string]*domain.Account
	bcryptCost int
}

// Ensure AccountDirectory implements store.AccountDirectory interface
var _ store.AccountDirectory = (*AccountDirectory)(nil)

// NewAccountDirectory creates an empty in-memory account directory.
// bcryptCost controls the work factor used when hashing passwords; pass
// bcrypt.DefaultCost outside of tests.
func NewAccountDirectory(bcryptCost int) *AccountDirectory {
	return &AccountDirectory{
		accounts:   make(map[string]*domain.Account),
		bcryptCost: bcryptCost,
	}
}

// Create implements store.AccountDirectory.Create.
func (d *AccountDirectory) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if _, ok := d.accounts[account.Login]; ok {
		return store.ErrLoginExists
	}

	if err := d.hashPassword(account); err != nil {
		return err
	}

	d.accounts[account.Login] = account
	return nil
}

// Get implements store.AccountDirectory.Get.
func (d *AccountDirectory) Get(ctx context.Context, login string) (*domain.Account, error) {
	account, ok := d.accounts[login]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return account, nil
}

// Exists implements store.AccountDirectory.Exists.
func (d *AccountDirectory) Exists(ctx context.Context, login string) (bool, error) {
	_, ok := d.accounts[login]
	return ok, nil
}

// Update implements store.AccountDirectory.Update.
func (d *AccountDirectory) Update(ctx context.Context, account *domain.Account) error {
	if _, ok := d.accounts[account.Login]; !ok {
		return store.ErrAccountNotFound
	}
	if err := account.Validate(); err != nil {
		return err
	}

	if err := d.hashPassword(account); err != nil {
		return err
	}

	d.accounts[account.Login] = account
	return nil
}

// Delete implements store.AccountDirectory.Delete.
func (d *AccountDirectory) Delete(ctx context.Context, login string) error {
	if _, ok := d.accounts[login]; !ok {
		return store.ErrAccountNotFound
	}
	delete(d.accounts, login)
	return nil
}

// Logins implements store.AccountDirectory.Logins.
func (d *AccountDirectory) Logins(ctx context.Context) ([]string, error) {
	logins := make([]string, 0, len(d.accounts))
	for login := range d.accounts {
		logins = append(logins, login)
	}
	return logins, nil
}

// Snapshot implements store.AccountDirectory.Snapshot.
func (d *AccountDirectory) Snapshot(ctx context.Context) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account, len(d.accounts))
	for login, account := range d.accounts {
		clone := *account
		clone.Attributes = maps.Clone(account.Attributes)
		out[login] = &clone
	}
	return out, nil
}

// Restore implements store.AccountDirectory.Restore.
func (d *AccountDirectory) Restore(ctx context.Context, accounts map[string]*domain.Account) error {
	d.accounts = make(map[string]*domain.Account, len(accounts))
	for login, account := range accounts {
		clone := *account
		clone.Attributes = maps.Clone(account.Attributes)
		d.accounts[login] = &clone
	}
	return nil
}

// Reset implements store.AccountDirectory.Reset.
func (d *AccountDirectory) Reset(ctx context.Context) error {
	d.accounts = make(map[string]*domain.Account)
	return nil
}

// hashPassword replaces a transient plaintext password with its bcrypt hash.
// Accounts restored from a snapshot arrive with the hash only and pass
// through untouched.
func (d *AccountDirectory) hashPassword(account *domain.Account) error {
	if account.Password == "" {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(account.Password), d.bcryptCost)
	if err != nil {
		return err
	}
	account.HashedPassword = string(hashed)
	account.Password = ""
	return nil
}
