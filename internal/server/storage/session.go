package storage

import (
	"context"

	"github.com/accountd-dev/accountd/internal/models"
)

// SessionStorage defines the active-session store.
type SessionStorage interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by id.
	// Returns ErrSessionNotFound if the session doesn't exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// GetUserSessions retrieves all sessions belonging to a user.
	// Returns an empty slice if the user has none.
	GetUserSessions(ctx context.Context, userID string) ([]*models.Session, error)

	// DeleteSession removes a session by id.
	// Returns ErrSessionNotFound if the session doesn't exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteUserSessions removes all sessions belonging to a user.
	// Returns the number of deleted sessions.
	DeleteUserSessions(ctx context.Context, userID string) (int, error)

	// DeleteExpiredSessions removes all sessions past their expiry.
	// Returns the number of deleted sessions.
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
