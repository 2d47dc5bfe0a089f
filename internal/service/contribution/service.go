// Package contribution assembles a member's giving history from the four
// contribution ledgers into one paginated report.
package contribution

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

//go:generate moq -out member_repo_mock_test.go -rm . memberRepo
//go:generate moq -out ledger_repo_mock_test.go -rm . ledgerRepo

type memberRepo interface {
	GetByID(ctx context.Context, scope domain.TenantScope, id uuid.UUID) (*domain.Member, error)
}

type ledgerRepo interface {
	ListByMember(ctx context.Context, kind domain.ContributionKind, churchID, memberID uuid.UUID) ([]domain.ContributionRecord, error)
}

// Service provides read-only contribution reporting.
type Service struct {
	members memberRepo
	ledgers ledgerRepo
	tracer  trace.Tracer
	log     *slog.Logger
}

// NewService creates a new Contribution service.
func NewService(log *slog.Logger, members memberRepo, ledgers ledgerRepo) *Service {
	return &Service{
		members: members,
		ledgers: ledgers,
		tracer:  otel.Tracer("github.com/heartmarshall/flock-backend/internal/service/contribution"),
		log:     log.With("service", "contribution"),
	}
}
