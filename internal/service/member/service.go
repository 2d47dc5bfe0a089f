// Package member provides the member directory.
package member

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

//go:generate moq -out member_repo_mock_test.go -rm . memberRepo

type memberRepo interface {
	List(ctx context.Context, scope domain.TenantScope, filter domain.MemberFilter, page domain.PageRequest) ([]domain.Member, int, error)
}

// Service lists members within a tenant scope.
type Service struct {
	members memberRepo
	log     *slog.Logger
}

// NewService creates a new Member service.
func NewService(log *slog.Logger, members memberRepo) *Service {
	return &Service{
		members: members,
		log:     log.With("service", "member"),
	}
}
