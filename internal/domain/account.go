package domain

import (
	"strings"
	"time"
)

// SystemLogin is the reserved sender identity used for notifications the
// system itself authors, such as mutual-crush match notes.
const SystemLogin = "jackut"

// Account represents a registered account of the Jackut network.
// The login is the account's unique, immutable identifier; the display name
// and the free-form attribute map are mutable through profile edits.
type Account struct {
	Login          string            `json:"login"`
	Name           string            `json:"name"`
	Password       string            `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string            `json:"hashed_password"`
	Attributes     map[string]string `json:"attributes"`
	CreatedAt      time.Time         `json:"created_at"`
}

// NewAccount creates a new Account with the given login, password and display
// name. Returns an error if validation fails.
//
// NOTE: This function only sets up the account structure with the plaintext
// password. The caller is responsible for hashing the password before storing
// the account.
func NewAccount(login, password, name string) (*Account, error) {
	account := &Account{
		Login:      login,
		Name:       name,
		Password:   password, // Plaintext password - must be hashed before storage
		Attributes: make(map[string]string),
		CreatedAt:  time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Login) == "" {
		return ErrEmptyLogin
	}

	if a.Login == SystemLogin {
		return ErrReservedLogin
	}

	// During registration the plaintext password is validated; accounts loaded
	// from a snapshot carry only the hash.
	if a.Password != "" {
		if strings.TrimSpace(a.Password) == "" {
			return ErrEmptyPassword
		}
	} else if a.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// Attribute returns the value of a profile attribute.
// Returns ErrAttributeNotSet if the attribute was never filled in.
func (a *Account) Attribute(key string) (string, error) {
	value, ok := a.Attributes[key]
	if !ok {
		return "", ErrAttributeNotSet
	}
	return value, nil
}

// SetAttribute sets a profile attribute to the given value.
func (a *Account) SetAttribute(key, value string) {
	if a.Attributes == nil {
		a.Attributes = make(map[string]string)
	}
	a.Attributes[key] = value
}
