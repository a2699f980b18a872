package storage

import (
	"context"

	"github.com/accountd-dev/accountd/internal/models"
)

// UserStorage defines the user-record store. Implementations must enforce
// email uniqueness atomically: of two concurrent CreateUser calls with the
// same email, exactly one gets ErrEmailTaken.
type UserStorage interface {
	// CreateUser persists a new user.
	// Returns ErrEmailTaken if the email is already present.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves the full internal record by email.
	// Returns ErrUserNotFound if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves the full internal record by id.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// ListUsers returns all users ordered by creation time.
	ListUsers(ctx context.Context) ([]*models.User, error)
}
