package handler

import (
	"encoding/json"
	"net/http"

	"github.com/venuedesk/venuedesk/internal/api/apierr"
	"github.com/venuedesk/venuedesk/internal/api/request"
	"github.com/venuedesk/venuedesk/internal/api/response"
	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	sessions *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w)
}

// writeSession renders the current session snapshot
func (h *SessionHandler) writeSession(w http.ResponseWriter) {
	resp, err := response.SessionFromSnapshot(h.sessions.Snapshot())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Handle == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("handle is required"))
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	cred := identity.Credential{Handle: req.Handle, Secret: req.Secret}
	if _, err := h.sessions.Login(r.Context(), cred, role); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.writeSession(w)
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.writeSession(w)
}
