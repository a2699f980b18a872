// Package handlers contains the HTTP boundary. It translates wire payloads
// into core operations and core error kinds into status codes; all real
// decisions live in the users, sessions, and authz packages.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/accountd-dev/accountd/internal/server/sessions"
	"github.com/accountd-dev/accountd/pkg/api"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	logger  *slog.Logger
	manager *sessions.Service
}

// NewAuthHandler creates a new handler over the session manager.
func NewAuthHandler(logger *slog.Logger, manager *sessions.Service) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		manager: manager,
	}
}

// Login handles POST /api/v1/users/sessions
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(h.logger, w, "email and password are required", http.StatusBadRequest)
		return
	}

	token, expiresIn, err := h.manager.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, sessions.ErrInvalidCredentials) {
			// Same response for unknown email and wrong password
			h.logger.WarnContext(ctx, "login failed")
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "login error", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.SessionResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, http.StatusOK)
}

// Logout handles DELETE /api/v1/users/sessions
// Revocation is idempotent: an unknown or already revoked token still gets
// a 204.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := BearerToken(r)

	if err := h.manager.Logout(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "logout error", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
