package cli

import (
	"context"
	"fmt"
	"os"
)

// Run dispatches a single command and exits non-zero on failure.
func (c *Cli) Run(ctx context.Context, command string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	case "users":
		err = c.runUsers(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
