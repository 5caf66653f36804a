package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the session token format is invalid or the signature doesn't match
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken indicates the session token has expired
	ErrExpiredToken = errors.New("session token has expired")

	// ErrTokenNotYetValid indicates the session token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("session token not yet valid")

	// ErrMissingToken indicates a session token was expected but not provided
	ErrMissingToken = errors.New("session token is missing")

	// ErrInvalidCredentials indicates the login/password pair did not match a
	// registered account
	ErrInvalidCredentials = errors.New("invalid login or password")
)
