// Package auth authenticates back-office users and validates their tokens.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -rm . userRepo
//go:generate moq -out jwt_manager_mock_test.go -rm . jwtManager
//go:generate moq -out password_hasher_mock_test.go -rm . passwordHasher

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(id domain.Identity) (string, time.Time, error)
	ValidateAccessToken(token string) (domain.Identity, error)
}

// passwordHasher verifies stored password hashes.
type passwordHasher interface {
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	jwt       jwtManager
	passwords passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	passwords passwordHasher,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		jwt:       jwt,
		passwords: passwords,
	}
}

// identityOf builds the token identity for a stored user.
func identityOf(u *domain.User) domain.Identity {
	id := domain.Identity{UserID: u.ID, Role: u.Role}
	if u.ChurchID != nil {
		id.ChurchID = *u.ChurchID
	}
	return id
}
