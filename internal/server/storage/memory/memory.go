// Package memory provides a mutex-guarded in-memory implementation of the
// storage interfaces. It backs unit tests and small deployments that don't
// need a database file; every New call is a fully isolated store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/accountd-dev/accountd/internal/models"
	"github.com/accountd-dev/accountd/internal/server/storage"
)

// Storage is an in-memory implementation of storage.UserStorage and
// storage.SessionStorage.
type Storage struct {
	mu       sync.RWMutex
	users    map[string]*models.User    // id -> user
	byEmail  map[string]string          // email -> id
	sessions map[string]*models.Session // id -> session
}

var (
	_ storage.UserStorage    = (*Storage)(nil)
	_ storage.SessionStorage = (*Storage)(nil)
)

// New creates an empty in-memory store.
func New() *Storage {
	return &Storage{
		users:    make(map[string]*models.User),
		byEmail:  make(map[string]string),
		sessions: make(map[string]*models.Session),
	}
}

// CreateUser persists a new user. The email-uniqueness check and the insert
// happen under one lock, so of two concurrent calls with the same email
// exactly one succeeds.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return storage.ErrEmailTaken
	}

	u := *user
	s.users[u.ID] = &u
	s.byEmail[u.Email] = u.ID
	return nil
}

// GetUserByEmail retrieves the full internal record by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	u := *s.users[id]
	return &u, nil
}

// GetUserByID retrieves the full internal record by id
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// ListUsers returns all users ordered by creation time
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		u := *user
		users = append(users, &u)
	}

	// Stable order for callers; map iteration is random.
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

// CreateSession persists a new session
func (s *Storage) CreateSession(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := *session
	s.sessions[sess.ID] = &sess
	return nil
}

// GetSession retrieves a session by id
func (s *Storage) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	sess := *session
	return &sess, nil
}

// GetUserSessions retrieves all sessions belonging to a user
func (s *Storage) GetUserSessions(ctx context.Context, userID string) ([]*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*models.Session, 0)
	for _, session := range s.sessions {
		if session.UserID == userID {
			sess := *session
			sessions = append(sessions, &sess)
		}
	}
	return sessions, nil
}

// DeleteSession removes a session by id
func (s *Storage) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return storage.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// DeleteUserSessions removes all sessions belonging to a user
func (s *Storage) DeleteUserSessions(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}

// DeleteExpiredSessions removes all sessions past their expiry
func (s *Storage) DeleteExpiredSessions(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	count := 0
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			count++
		}
	}
	return count, nil
}
