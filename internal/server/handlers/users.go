package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/accountd-dev/accountd/internal/models"
	"github.com/accountd-dev/accountd/internal/server/authz"
	"github.com/accountd-dev/accountd/internal/server/users"
	"github.com/accountd-dev/accountd/internal/validation"
	"github.com/accountd-dev/accountd/pkg/api"
)

// UserHandler handles registration and user reads.
type UserHandler struct {
	logger   *slog.Logger
	registry *users.Service
}

// NewUserHandler creates a new handler over the user registry.
func NewUserHandler(logger *slog.Logger, registry *users.Service) *UserHandler {
	return &UserHandler{
		logger:   logger,
		registry: registry,
	}
}

// Register handles POST /api/v1/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.registry.Register(ctx, validation.Registration{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.WarnContext(ctx, "invalid registration", slog.Any("error", err))
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, users.ErrDuplicateEmail):
			h.logger.WarnContext(ctx, "duplicate email on registration")
			sendError(h.logger, w, "email already registered", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	sendJSON(h.logger, w, publicUserResponse(user.PublicView()), http.StatusCreated)
}

// Me handles GET /api/v1/users/me
// Requires the auth middleware to have resolved an identity.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := IdentityFromContext(ctx)
	if identity == nil {
		sendError(h.logger, w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := authz.Authorize(identity, authz.ActionViewSelf); err != nil {
		sendError(h.logger, w, "forbidden", http.StatusForbidden)
		return
	}

	sendJSON(h.logger, w, publicUserResponse(identity.User), http.StatusOK)
}

// List handles GET /api/v1/users
// Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity := IdentityFromContext(ctx)
	if identity == nil {
		sendError(h.logger, w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := authz.Authorize(identity, authz.ActionListUsers); err != nil {
		if errors.Is(err, authz.ErrForbidden) {
			h.logger.WarnContext(ctx, "list users denied",
				slog.String("user_id", identity.UserID),
				slog.String("role", string(identity.Role)))
			sendError(h.logger, w, "admin role required", http.StatusForbidden)
			return
		}
		sendError(h.logger, w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	views, err := h.registry.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.UserResponse, 0, len(views))
	for _, view := range views {
		resp = append(resp, publicUserResponse(view))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

func publicUserResponse(view models.PublicUser) api.UserResponse {
	return api.UserResponse{
		ID:        view.ID,
		Email:     view.Email,
		Username:  view.Username,
		FirstName: view.FirstName,
		LastName:  view.LastName,
	}
}
