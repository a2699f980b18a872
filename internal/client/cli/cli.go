// Package cli implements the interactive accountd client commands.
package cli

import (
	"fmt"
	"os"

	"github.com/accountd-dev/accountd/internal/client/api"
	"github.com/accountd-dev/accountd/internal/client/iocli"
	"github.com/accountd-dev/accountd/internal/client/storage"
)

type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	sessions  storage.SessionStorage
}

func New(io iocli.IO, apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		sessions:  sessions,
	}
}

func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Usage: accountd-cli [flags] <command>

Commands:
  register   Create a new account
  login      Open a session
  whoami     Show the account behind the current session
  users      List all accounts (admin only)
  logout     Destroy the current session
  status     Show local session status

Flags:
  -server    Server URL (default http://localhost:8080)
  -db        Path to the local session cache
  -version   Show version information
`)
}
