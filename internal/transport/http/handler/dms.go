package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chat-nosql/internal/application/dm"
	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// DmHandler handles direct-message threads.
type DmHandler struct {
	svc dm.Service
}

func NewDmHandler(svc dm.Service) *DmHandler { return &DmHandler{svc: svc} }

func (h *DmHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	receiverID := chi.URLParam(r, "receiverId")
	identity := middleware.IdentityFromContext(r.Context())

	msgs, err := h.svc.GetMessages(r.Context(), identity, receiverID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessagesEnvelope{Success: true, Messages: msgs})
}

func (h *DmHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	receiverID := chi.URLParam(r, "receiverId")
	identity := middleware.IdentityFromContext(r.Context())

	var req domain.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ts, err := h.svc.SendMessage(r.Context(), identity, receiverID, req.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, SendEnvelope{Success: true, Message: "DM sent", Timestamp: ts})
}
