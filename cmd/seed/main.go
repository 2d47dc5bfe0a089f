// Command seed loads a demo church into an empty database: org units, a
// church admin, a platform superadmin and a few members with contribution
// history. Everything is written in one transaction.
//
// Flags:
//
//	--password  password for both seeded users (default: SEED_PASSWORD or "changeme123")
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	contributionrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/contribution"
	memberrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/member"
	userrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flock-backend/internal/app"
	"github.com/heartmarshall/flock-backend/internal/auth"
	"github.com/heartmarshall/flock-backend/internal/config"
)

func main() {
	defaultPassword := os.Getenv("SEED_PASSWORD")
	if defaultPassword == "" {
		defaultPassword = "changeme123"
	}
	passwordFlag := flag.String("password", defaultPassword, "password for the seeded users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost).Hash(*passwordFlag)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	s := &seeder{
		members: memberrepo.New(pool),
		ledgers: contributionrepo.New(pool),
		users:   userrepo.New(pool),
		now:     time.Now().UTC(),
	}

	var stats seedStats
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		var err error
		stats, err = s.run(ctx, hash)
		return err
	})
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.String("church_id", stats.churchID.String()),
		slog.Int("members", stats.members),
		slog.Int("contributions", stats.contributions),
		slog.String("admin_email", adminEmail),
		slog.String("superadmin_email", superAdminEmail),
	)
}
