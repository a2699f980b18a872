package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/client/api"
	"github.com/accountd-dev/accountd/internal/client/storage"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in, run 'accountd-cli login' first")
		}
		return fmt.Errorf("failed to read cached session: %w", err)
	}

	user, err := c.apiClient.Me(ctx, session.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("session is no longer valid, run 'accountd-cli login' again")
		}
		return err
	}

	c.io.Printf("ID:         %s\n", user.ID)
	c.io.Printf("Email:      %s\n", user.Email)
	c.io.Printf("Username:   %s\n", user.Username)
	c.io.Printf("First name: %s\n", user.FirstName)
	c.io.Printf("Last name:  %s\n", user.LastName)

	return nil
}
