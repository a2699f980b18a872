package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/accountd-dev/accountd/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'accountd-cli login' to open a session.")
			return nil
		}
		return fmt.Errorf("failed to read cached session: %w", err)
	}

	remaining := time.Until(session.ExpiresAt)

	c.io.Println("Status: Logged in")
	c.io.Printf("Email:   %s\n", session.Email)
	c.io.Printf("Expires: %s\n", session.ExpiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Session has expired. Please login again.")
	}

	return nil
}
