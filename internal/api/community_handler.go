package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// CommunityHandler handles community creation, membership, broadcasts and the
// public community queries.
type CommunityHandler struct {
	service service.InteractionService
}

// NewCommunityHandler creates a new CommunityHandler with the given service.
func NewCommunityHandler(svc service.InteractionService) *CommunityHandler {
	return &CommunityHandler{service: svc}
}

// Create handles POST /communities.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	var req CreateCommunityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.CreateCommunity(r.Context(), token, req.Name, req.Description); err != nil {
		HandleAPIError(w, r, err, "Failed to create community")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, nil)
}

// Join handles POST /communities/{name}/join.
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")

	if err := h.service.JoinCommunity(r.Context(), token, name); err != nil {
		HandleAPIError(w, r, err, "Failed to join community")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// Broadcast handles POST /communities/{name}/messages. The sender must be a
// member; every current member receives the message, the sender included.
func (h *CommunityHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")

	var req BroadcastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.SendCommunityMessage(r.Context(), token, name, req.Body); err != nil {
		HandleAPIError(w, r, err, "Failed to send community message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, nil)
}

// ReadNext handles POST /communities/messages/next. Scans the account's
// communities in name order and consumes the first available message; 204
// when every queue is empty.
func (h *CommunityHandler) ReadNext(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	rendered, err := h.service.ReadCommunityMessage(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read community message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: rendered})
}

// Get handles GET /communities/{name}.
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	info, err := h.service.CommunityInfo(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read community")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommunityResponse{
		Name:        info.Name,
		Description: info.Description,
		Owner:       info.Owner,
		Members:     info.Members,
	})
}
