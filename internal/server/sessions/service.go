// Package sessions implements the session manager: it turns verified
// credentials into bearer tokens, resolves presented tokens back to
// identities, and revokes them on logout.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accountd-dev/accountd/internal/crypto"
	"github.com/accountd-dev/accountd/internal/models"
	"github.com/accountd-dev/accountd/internal/server/storage"
	"github.com/accountd-dev/accountd/internal/server/users"
)

var (
	// ErrInvalidCredentials indicates a failed login. It is deliberately the
	// same for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates a missing, unknown, expired, or revoked
	// session token
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Identity is a resolved, authenticated caller. Authorization decisions
// operate on this, never on raw credentials.
type Identity struct {
	UserID string
	Email  string
	Role   models.Role
	User   models.PublicUser
}

// IsAdmin reports whether the identity holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Service is the session manager.
type Service struct {
	logger   *slog.Logger
	registry *users.Service
	storage  storage.SessionStorage
	cfg      TokenConfig
}

// NewService creates a session manager. Identity lookups go through the user
// registry; session rows live in the given store.
func NewService(logger *slog.Logger, registry *users.Service, sessionStorage storage.SessionStorage, cfg TokenConfig) *Service {
	return &Service{
		logger:   logger,
		registry: registry,
		storage:  sessionStorage,
		cfg:      cfg,
	}
}

// Login verifies the email/password pair and, on success, creates a session
// and returns its bearer token plus the lifetime in seconds. Unknown email
// and wrong password are indistinguishable to the caller; the dummy bcrypt
// check keeps them close in timing too.
func (s *Service) Login(ctx context.Context, email, password string) (string, int64, error) {
	user, err := s.registry.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			crypto.CheckDummy(password)
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, fmt.Errorf("failed to look up user: %w", err)
	}

	if !crypto.CheckPassword(password, user.PasswordHash) {
		return "", 0, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	if err := s.storage.CreateSession(ctx, session); err != nil {
		return "", 0, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := signToken(s.cfg, session.ID, user.ID, now, session.ExpiresAt)
	if err != nil {
		// Don't leave an orphaned session behind.
		_ = s.storage.DeleteSession(ctx, session.ID)
		return "", 0, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("session_id", session.ID))

	return token, int64(s.cfg.TTL.Seconds()), nil
}

// Resolve maps a presented token to the identity that logged in. The session
// row is authoritative: a token whose row is gone (logout, expiry cleanup)
// fails with ErrUnauthenticated even if its signature is still valid.
func (s *Service) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := parseToken(s.cfg, token)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	session, err := s.storage.GetSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		_ = s.storage.DeleteSession(ctx, session.ID)
		return nil, ErrUnauthenticated
	}

	user, err := s.registry.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return &Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		User:   user.PublicView(),
	}, nil
}

// Logout revokes the session behind the token. Revoking an already-absent or
// malformed token is not an error; the token just stays unresolvable.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := parseToken(s.cfg, token)
	if err != nil {
		return nil
	}

	if err := s.storage.DeleteSession(ctx, claims.SessionID); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.InfoContext(ctx, "session revoked", slog.String("session_id", claims.SessionID))
	return nil
}

// PurgeExpired removes sessions past their expiry and returns how many were
// deleted.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	return s.storage.DeleteExpiredSessions(ctx)
}
