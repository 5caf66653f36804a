package api

import (
	"net/http"

	"github.com/wbrmagalhaes/jackut-api/internal/api/shared"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
)

// MessageHandler handles direct messaging between accounts.
type MessageHandler struct {
	service service.InteractionService
}

// NewMessageHandler creates a new MessageHandler with the given service.
func NewMessageHandler(svc service.InteractionService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// Send handles POST /messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.SendMessage(r.Context(), token, req.Recipient, req.Body); err != nil {
		HandleAPIError(w, r, err, "Failed to send message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, nil)
}

// ReadNext handles POST /messages/next. Consumption is destructive, hence
// POST; an empty mailbox answers 204.
func (h *MessageHandler) ReadNext(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionFromContext(w, r)
	if !ok {
		return
	}

	rendered, err := h.service.ReadMessage(r.Context(), token)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: rendered})
}
