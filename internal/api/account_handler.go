package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// AccountHandler handles profile edits, account removal and the public
// account queries.
type AccountHandler struct {
	service service.InteractionService
}

// NewAccountHandler creates a new AccountHandler with the given service.
func NewAccountHandler(svc service.InteractionService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// EditProfile handles PUT /profile.
func (h *AccountHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	var req EditProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.EditProfile(r.Context(), token, req.Attribute, req.Value); err != nil {
		HandleAPIError(w, r, err, "Failed to edit profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// Remove handles DELETE /profile. Removal cascades through communities,
// mailboxes and relation sets before the account record itself goes.
func (h *AccountHandler) Remove(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveAccount(r.Context(), token); err != nil {
		HandleAPIError(w, r, err, "Failed to remove account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// GetAttribute handles GET /users/{login}/attributes/{key}.
func (h *AccountHandler) GetAttribute(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")
	key := chi.URLParam(r, "key")

	value, err := h.service.Attribute(r.Context(), login, key)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read attribute")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AttributeResponse{
		Login:     login,
		Attribute: key,
		Value:     value,
	})
}

// GetFriends handles GET /users/{login}/friends.
func (h *AccountHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	friends, err := h.service.Friends(r.Context(), login)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list friends")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FriendsResponse{
		Login:   login,
		Friends: friends,
	})
}

// GetCommunities handles GET /users/{login}/communities.
func (h *AccountHandler) GetCommunities(w http.ResponseWriter, r *http.Request) {
	login := chi.URLParam(r, "login")

	communities, err := h.service.AccountCommunities(r.Context(), login)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list communities")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommunitiesResponse{
		Login:       login,
		Communities: communities,
	})
}
