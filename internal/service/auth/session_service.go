// Package auth implements the session resolver: issuing session tokens at
// login and resolving a presented token back to the acting account.
package auth

import (
	"context"
	"time"
)

// SessionService defines operations for managing session tokens. Tokens are
// opaque to callers; every orchestration entry point that needs "the acting
// account" resolves its session handle through this interface first.
type SessionService interface {
	// GenerateToken creates a signed session token for the given account login.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, login string) (string, error)

	// ValidateToken validates the provided session token and extracts the claims.
	// Returns the claims identifying the acting account if the token is valid,
	// or an error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for session tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Login is the account the session was opened for.
	Login string `json:"login,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
