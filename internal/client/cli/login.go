package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/accountd-dev/accountd/internal/client/storage"
	"github.com/accountd-dev/accountd/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Resolve the account so the cache knows who the token belongs to
	user, err := c.apiClient.Me(ctx, session.Token)
	if err != nil {
		return fmt.Errorf("failed to resolve session: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(session.ExpiresIn) * time.Second)
	err = c.sessions.SaveSession(ctx, &storage.SessionData{
		Token:     session.Token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	c.io.Println()
	c.io.Printf("Logged in as %s\n", user.Email)
	c.io.Printf("Session expires: %s\n", expiresAt.Format(time.RFC3339))

	return nil
}
