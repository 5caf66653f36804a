package api

import (
	"net/http"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// AuthHandler handles account registration and session opening.
type AuthHandler struct {
	service service.InteractionService
}

// NewAuthHandler creates a new AuthHandler with the given service.
func NewAuthHandler(svc service.InteractionService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.Login, req.Password, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AccountResponse{
		Login: account.Login,
		Name:  account.Name,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.service.OpenSession(r.Context(), req.Login, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to open session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
