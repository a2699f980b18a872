package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/client/api"
	"github.com/accountd-dev/accountd/internal/client/storage"
)

func (c *Cli) runUsers(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("not logged in, run 'accountd-cli login' first")
		}
		return fmt.Errorf("failed to read cached session: %w", err)
	}

	users, err := c.apiClient.ListUsers(ctx, session.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("session is no longer valid, run 'accountd-cli login' again")
		}
		return err
	}

	if len(users) == 0 {
		c.io.Println("No registered accounts.")
		return nil
	}

	c.io.Printf("%-38s %-30s %s\n", "ID", "EMAIL", "USERNAME")
	for _, u := range users {
		c.io.Printf("%-38s %-30s %s\n", u.ID, u.Email, u.Username)
	}
	c.io.Println()
	c.io.Printf("Total: %d account(s)\n", len(users))

	return nil
}
