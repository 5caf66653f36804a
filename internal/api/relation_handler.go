package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// RelationHandler handles friendship, idol, crush and enemy declarations and
// the matching queries for the authenticated account.
type RelationHandler struct {
	service service.InteractionService
}

// NewRelationHandler creates a new RelationHandler with the given service.
func NewRelationHandler(svc service.InteractionService) *RelationHandler {
	return &RelationHandler{service: svc}
}

// declare runs one relation declaration for the acting session.
func (h *RelationHandler) declare(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, token, target string) error,
	failureMessage string,
) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	var req RelationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := op(r.Context(), token, req.Login); err != nil {
		HandleAPIError(w, r, err, failureMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// check answers one relation query for the acting session against the login
// in the URL path.
func (h *RelationHandler) check(
	w http.ResponseWriter,
	r *http.Request,
	relation string,
	op func(ctx context.Context, login, other string) (bool, error),
) {
	login, _, ok := sessionFromContext(w, r)
	if !ok {
		return
	}
	other := chi.URLParam(r, "login")

	holds, err := op(r.Context(), login, other)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to query relation")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RelationResponse{
		Login:    login,
		Other:    other,
		Relation: relation,
		Holds:    holds,
	})
}

// AddFriend handles POST /friends.
func (h *RelationHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	h.declare(w, r, h.service.AddFriend, "Failed to add friend")
}

// CheckFriend handles GET /friends/{login}.
func (h *RelationHandler) CheckFriend(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, "friend", h.service.IsFriend)
}

// AddIdol handles POST /idols.
func (h *RelationHandler) AddIdol(w http.ResponseWriter, r *http.Request) {
	h.declare(w, r, h.service.AddIdol, "Failed to add idol")
}

// CheckIdol handles GET /idols/{login}.
func (h *RelationHandler) CheckIdol(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, "idol", h.service.IsIdol)
}

// AddCrush handles POST /crushes. A mutual declaration triggers the system
// match notes inside the service before this returns.
func (h *RelationHandler) AddCrush(w http.ResponseWriter, r *http.Request) {
	h.declare(w, r, h.service.AddCrush, "Failed to add crush")
}

// CheckCrush handles GET /crushes/{login}.
func (h *RelationHandler) CheckCrush(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, "crush", h.service.IsCrush)
}

// AddEnemy handles POST /enemies.
func (h *RelationHandler) AddEnemy(w http.ResponseWriter, r *http.Request) {
	h.declare(w, r, h.service.AddEnemy, "Failed to add enemy")
}

// CheckEnemy handles GET /enemies/{login}.
func (h *RelationHandler) CheckEnemy(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, "enemy", h.service.IsEnemy)
}
