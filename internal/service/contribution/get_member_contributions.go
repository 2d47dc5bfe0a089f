package contribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// GetMemberContributions builds the contribution report for one member.
//
// The member is resolved under in.Scope; a member that does not exist and one
// that belongs to another church both yield domain.ErrNotFound. The four
// ledgers are then read concurrently. If any read fails the whole report
// fails with a *domain.RetrievalError and no partial totals are returned.
func (s *Service) GetMemberContributions(ctx context.Context, in GetMemberContributionsInput) (_ *Report, err error) {
	ctx, span := s.tracer.Start(ctx, "contribution.GetMemberContributions")
	defer func() {
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req := in.pageRequest()
	span.SetAttributes(
		attribute.String("member.id", in.MemberID),
		attribute.Int("page", req.Page),
		attribute.Int("limit", req.Limit),
	)

	memberID, err := uuid.Parse(in.MemberID)
	if err != nil {
		return nil, fmt.Errorf("member %q: %w", in.MemberID, domain.ErrNotFound)
	}

	member, err := s.members.GetByID(ctx, in.Scope, memberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewRetrievalError("get member", err)
	}
	// The scope is enforced again here in case a repository ignores it.
	if !in.Scope.Allows(member.ChurchID) {
		return nil, fmt.Errorf("member %s: %w", memberID, domain.ErrNotFound)
	}

	records, err := s.fetchAll(ctx, member)
	if err != nil {
		return nil, err
	}

	totals := domain.NewContributionTotals()
	var unified []domain.UnifiedContribution
	for _, kind := range domain.ContributionKinds() {
		for _, rec := range records[kind] {
			totals.Add(kind, rec.Amount)
			unified = append(unified, rec.Unify())
		}
	}

	// Stable sort keeps ledger order (and each ledger's own order) for equal dates.
	slices.SortStableFunc(unified, func(a, b domain.UnifiedContribution) int {
		return b.Date.Compare(a.Date)
	})

	page, info := domain.Paginate(unified, req)

	s.log.DebugContext(ctx, "contribution report built",
		slog.String("member_id", memberID.String()),
		slog.Int("total_items", info.TotalItems),
		slog.String("total", totals.Total.String()),
	)

	return &Report{
		Member:        member,
		Totals:        totals,
		Contributions: page,
		Pagination:    info,
	}, nil
}

// fetchAll reads every ledger for member concurrently. The first failure
// cancels the remaining reads.
func (s *Service) fetchAll(ctx context.Context, member *domain.Member) (map[domain.ContributionKind][]domain.ContributionRecord, error) {
	kinds := domain.ContributionKinds()
	results := make([][]domain.ContributionRecord, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			fctx, span := s.tracer.Start(gctx, "contribution.fetch",
				trace.WithAttributes(attribute.String("contribution.kind", kind.String())))
			defer span.End()

			recs, err := s.ledgers.ListByMember(fctx, kind, member.ChurchID, member.ID)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return domain.NewRetrievalError("list "+kind.Label()+" contributions", err)
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[domain.ContributionKind][]domain.ContributionRecord, len(kinds))
	for i, kind := range kinds {
		out[kind] = results[i]
	}
	return out, nil
}
