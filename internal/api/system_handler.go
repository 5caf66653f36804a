package api

import (
	"net/http"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// SystemHandler handles the administrative surface.
type SystemHandler struct {
	service service.InteractionService
}

// NewSystemHandler creates a new SystemHandler with the given service.
func NewSystemHandler(svc service.InteractionService) *SystemHandler {
	return &SystemHandler{service: svc}
}

// Reset handles POST /system/reset. It wipes every account, relation, mailbox
// and community. Exists for acceptance harnesses; keep it off public
// deployments.
func (h *SystemHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to reset")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
