package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountd-dev/accountd/internal/client/api"
	"github.com/accountd-dev/accountd/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to read cached session: %w", err)
	}

	// A token the server already rejected is as logged-out as it gets
	if err := c.apiClient.Logout(ctx, session.Token); err != nil && !errors.Is(err, api.ErrUnauthorized) {
		return err
	}

	if err := c.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to clear cached session: %w", err)
	}

	c.io.Println("Logged out.")
	return nil
}
