package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chat-nosql/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthEnvelope wraps register/login responses.
type AuthEnvelope struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// ChannelsEnvelope wraps channel-listing responses.
type ChannelsEnvelope struct {
	Success  bool             `json:"success"`
	Channels []domain.Channel `json:"channels"`
}

// ChannelEnvelope wraps single-channel responses.
type ChannelEnvelope struct {
	Success bool            `json:"success"`
	Channel *domain.Channel `json:"channel,omitempty"`
}

// MessagesEnvelope wraps message-listing responses.
type MessagesEnvelope struct {
	Success  bool             `json:"success"`
	Messages []domain.Message `json:"messages"`
}

// SendEnvelope confirms a write with the new message's timestamp key.
type SendEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// UsersEnvelope wraps directory-listing responses.
type UsersEnvelope struct {
	Success bool                 `json:"success"`
	Users   []domain.UserSummary `json:"users"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Success: false, Message: msg})
}

// writeDomainError maps a service error to its HTTP status via the domain
// sentinels. This is the single translation point between the error taxonomy
// and the wire.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		// StoreUnavailable and anything unclassified. The wire message is
		// generic; details stay in the logs.
		writeError(w, http.StatusInternalServerError, "server error")
	}
}
