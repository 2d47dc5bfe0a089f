// Package app wires configuration, storage, services and the HTTP transport
// into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	contributionrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/contribution"
	memberrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/member"
	userrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flock-backend/internal/auth"
	"github.com/heartmarshall/flock-backend/internal/config"
	authsvc "github.com/heartmarshall/flock-backend/internal/service/auth"
	"github.com/heartmarshall/flock-backend/internal/service/contribution"
	"github.com/heartmarshall/flock-backend/internal/service/member"
	"github.com/heartmarshall/flock-backend/internal/transport/dataloader"
	"github.com/heartmarshall/flock-backend/internal/transport/middleware"
	"github.com/heartmarshall/flock-backend/internal/transport/rest"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/flock-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// Run loads configuration, connects to PostgreSQL, builds the HTTP handler
// and serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, pool, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// NewHandler builds the services over pool and returns the routed handler
// wrapped in the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	members := memberrepo.New(pool)
	ledgers := contributionrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, auth.NewPasswordHasher(cfg.Auth.BcryptCost))

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Auth:   rest.NewAuthHandler(authService, logger),
		Members: rest.NewMemberHandler(
			contribution.NewService(logger, members, ledgers),
			member.NewService(logger, members),
			cfg.Pagination,
			logger,
		),
		LoginLimit: limiter.Limit("login", cfg.RateLimit.LoginPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit("api", cfg.RateLimit.RequestsPerMinute),
		middleware.Timeout(cfg.Server.RequestTimeout),
		middleware.Auth(authService),
		dataloader.Middleware(&dataloader.Repos{OrgUnit: members, Church: members}),
	)(router)
}
