package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chat-nosql/internal/application/channel"
	"github.com/go-chat-nosql/internal/domain"
	"github.com/go-chat-nosql/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// ChannelHandler handles channel listing, creation and channel messaging.
type ChannelHandler struct {
	svc channel.Service
}

func NewChannelHandler(svc channel.Service) *ChannelHandler { return &ChannelHandler{svc: svc} }

func (h *ChannelHandler) List(w http.ResponseWriter, r *http.Request) {
	channels, err := h.svc.ListChannels(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ChannelsEnvelope{Success: true, Channels: channels})
}

func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	identity := middleware.IdentityFromContext(r.Context())
	ch, err := h.svc.CreateChannel(r.Context(), req, identity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ChannelEnvelope{Success: true, Channel: ch})
}

func (h *ChannelHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	channelName := chi.URLParam(r, "channelName")
	identity := middleware.IdentityFromContext(r.Context())

	msgs, err := h.svc.GetMessages(r.Context(), channelName, identity)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessagesEnvelope{Success: true, Messages: msgs})
}

func (h *ChannelHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	channelName := chi.URLParam(r, "channelName")
	identity := middleware.IdentityFromContext(r.Context())

	var req domain.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ts, err := h.svc.SendMessage(r.Context(), channelName, identity, req.Content)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, SendEnvelope{Success: true, Message: "message sent", Timestamp: ts})
}
