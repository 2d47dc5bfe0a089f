// Command migrate applies or rolls back the embedded schema migrations.
//
// Usage:
//
//	migrate up      apply all pending migrations
//	migrate down    roll back the most recent migration
//	migrate status  list migrations and whether they are applied
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flock-backend/internal/app"
	"github.com/heartmarshall/flock-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|status")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	switch cmd := os.Args[1]; cmd {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()), slog.Int("applied", applied))
			os.Exit(1)
		}
		logger.Info("migrate up completed", slog.Int("applied", applied))
	case "down":
		if err := migrator.Down(ctx); err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate down completed")
	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			logger.Error("migrate status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s  %s\n", s.Version, state, s.Source)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q: want up, down or status\n", cmd)
		os.Exit(2)
	}
}
