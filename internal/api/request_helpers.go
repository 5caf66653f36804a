package api

import (
	"net/http"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/domain"
)

// sessionFromContext extracts the acting login and raw session token placed
// in the context by the authentication middleware. When either is missing it
// writes a 401 and reports false.
func sessionFromContext(w http.ResponseWriter, r *http.Request) (login, token string, ok bool) {
	login, ok = r.Context().Value(shared.LoginContextKey).(string)
	if !ok || login == "" {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Session not found")
		return "", "", false
	}

	token, ok = r.Context().Value(shared.TokenContextKey).(string)
	if !ok || token == "" {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Session not found")
		return "", "", false
	}

	return login, token, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing a
// 400 on failure. Reports whether the request may proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: required fields are missing")
		return false
	}
	return true
}
