// Package main is the entry point for the habit-tracker-cli application.
// It builds the command tree (user, habit, record, stats, admin) and
// executes it against the configured database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/niyatanya/habit-tracker/cmd/habit-tracker-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := commands.NewCommandHandler()
	defer func() {
		if err := handler.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close database: %v\n", err)
		}
	}()

	if err := commands.NewRootCommand(handler).ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
