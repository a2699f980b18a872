package storage

import (
	"context"
	"time"
)

// SessionStorage defines the interface for caching the active session on
// the client. It stores the token as issued by the server; the server side
// stays authoritative, so a cached token may already be revoked.
type SessionStorage interface {
	// SaveSession stores the active session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the cached session.
	// Returns ErrSessionNotFound if no session is cached.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the cached session (logout)
	DeleteSession(ctx context.Context) error

	// HasSession reports whether a non-expired session is cached
	HasSession(ctx context.Context) (bool, error)
}

// SessionData is the locally cached view of a logged-in session.
type SessionData struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
