package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := s.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WarnContext(ctx, "login rejected", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(identityOf(user))
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return &LoginResult{AccessToken: token, ExpiresAt: expires, User: user}, nil
}

// ValidateToken checks an access token and returns the identity it carries.
// Any failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
