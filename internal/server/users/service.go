// Package users implements the user registry: registration with field
// validation and email uniqueness, internal lookups, and the public listing.
package users

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
	"github.com/accountd-dev/accountd/internal/validation"
)

var (
	// ErrInvalidInput indicates a missing or malformed registration field
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEmail indicates the email is already registered
	ErrDuplicateEmail = errors.New("email already registered")
)

// Service is the user registry.
type Service struct {
	logger  *slog.Logger
	storage storage.UserStorage
}

// NewService creates a new user registry backed by the given store.
func NewService(logger *slog.Logger, userStorage storage.UserStorage) *Service {
	return &Service{
		logger:  logger,
		storage: userStorage,
	}
}

// Register validates the submitted fields, hashes the password, and persists
// a new user. The password is hashed before the store is touched, so the
// CPU-heavy step never runs under a store lock. A registrant whose email is
// exactly "admin" receives the admin role.
func (s *Service) Register(ctx context.Context, reg validation.Registration) (*models.User, error) {
	if err := validation.ValidateRegistration(reg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := crypto.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     reg.Username,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         models.RoleForEmail(reg.Email),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))

	return user, nil
}

// FindByEmail returns the full internal record, password hash included. It
// exists for the session manager; never expose the result to callers.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.storage.GetUserByEmail(ctx, email)
}

// GetByID returns the full internal record by id.
func (s *Service) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.storage.GetUserByID(ctx, userID)
}

// List returns the public views of all users, ordered by creation time.
func (s *Service) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	views := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		views = append(views, user.PublicView())
	}
	return views, nil
}
