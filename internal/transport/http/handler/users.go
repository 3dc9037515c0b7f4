package handler

import (
	"net/http"

	"github.com/go-chat-nosql/internal/application/directory"
)

// UserHandler handles the user directory.
type UserHandler struct {
	svc directory.Service
}

func NewUserHandler(svc directory.Service) *UserHandler { return &UserHandler{svc: svc} }

// List returns every registered user, for guests and users alike. The
// directory carries no secrets; the viewer's own entry is not filtered
// server-side.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UsersEnvelope{Success: true, Users: users})
}
