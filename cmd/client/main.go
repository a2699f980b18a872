package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/accountd-dev/accountd/internal/client/api"
	"github.com/accountd-dev/accountd/internal/client/cli"
	"github.com/accountd-dev/accountd/internal/client/iocli"
	"github.com/accountd-dev/accountd/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "accountd-client.db", "Path to local session cache")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	sessions, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			slog.Error("failed to close session cache", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	cli.New(iocli.NewStdio(), apiClient, sessions).Run(ctx, args[0])
}

func printVersion() {
	fmt.Printf("Accountd Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
