package api

import (
	"errors"
	"net/http"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/domain"
	"github.com/wbrmagalhaes/jackut-api/internal/service/auth"
	"github.com/wbrmagalhaes/jackut-api/internal/social"
	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on the
// sentinel error families. Unknown errors become 500; internal error types
// and messages never leak to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Session errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Blocked interactions
	case errors.Is(err, social.ErrEnemyBlocked),
		errors.Is(err, social.ErrNotMember):
		return http.StatusForbidden

	// Not found
	case errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, social.ErrCommunityNotFound),
		errors.Is(err, domain.ErrAttributeNotSet):
		return http.StatusNotFound

	// Conflicts with existing state
	case errors.Is(err, store.ErrLoginExists),
		errors.Is(err, social.ErrAlreadyFriends),
		errors.Is(err, social.ErrRequestPending),
		errors.Is(err, social.ErrAlreadyDeclared),
		errors.Is(err, social.ErrCommunityExists),
		errors.Is(err, social.ErrAlreadyMember):
		return http.StatusConflict

	// Bad requests
	case errors.Is(err, social.ErrSelfRelation),
		errors.Is(err, social.ErrSelfMessage),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrReservedLogin):
		return http.StatusBadRequest

	// Empty mailboxes answer with no body
	case errors.Is(err, social.ErrNoMessages):
		return http.StatusNoContent

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the error.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Session expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid session token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, social.ErrEnemyBlocked):
		return "Interaction blocked by an enemy declaration"

	case errors.Is(err, social.ErrNotMember):
		return "Sender is not a member of this community"

	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, social.ErrCommunityNotFound):
		return "Community not found"

	case errors.Is(err, domain.ErrAttributeNotSet):
		return "Attribute not set"

	case errors.Is(err, store.ErrLoginExists):
		return "Login already taken"

	case errors.Is(err, social.ErrAlreadyFriends):
		return "Accounts are already friends"

	case errors.Is(err, social.ErrRequestPending):
		return "Friendship request already pending"

	case errors.Is(err, social.ErrAlreadyDeclared):
		return "Relation already declared"

	case errors.Is(err, social.ErrCommunityExists):
		return "Community name already taken"

	case errors.Is(err, social.ErrAlreadyMember):
		return "Account is already a member"

	case errors.Is(err, social.ErrSelfRelation):
		return "Cannot declare a relation with yourself"

	case errors.Is(err, social.ErrSelfMessage):
		return "Cannot send a message to yourself"

	case errors.Is(err, domain.ErrReservedLogin):
		return "Login is reserved"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and sanitized message and writes
// the response. An empty mailbox maps to 204 and carries no body. When
// fallbackMessage is non-empty it overrides the mapped message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)

	if status == http.StatusNoContent {
		shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
		return
	}

	message := GetSafeErrorMessage(err)
	if fallbackMessage != "" && message == "An unexpected error occurred" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
