// Package contribution implements the four contribution ledgers
// (tithes, welfare, special funds, church projects) using PostgreSQL.
package contribution

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flock-backend/internal/domain"
)

// ledger maps a contribution kind to its table and variant-specific column.
type ledger struct {
	table  string
	detail string
	entity string
}

var ledgers = map[domain.ContributionKind]ledger{
	domain.ContributionKindTithe:         {table: "tithes", detail: "period", entity: "tithe"},
	domain.ContributionKindWelfare:       {table: "welfare_contributions", detail: "purpose", entity: "welfare_contribution"},
	domain.ContributionKindSpecialFund:   {table: "special_funds", detail: "fund_name", entity: "special_fund"},
	domain.ContributionKindChurchProject: {table: "church_project_contributions", detail: "project_name", entity: "church_project_contribution"},
}

func ledgerFor(kind domain.ContributionKind) (ledger, error) {
	l, ok := ledgers[kind]
	if !ok {
		return ledger{}, fmt.Errorf("contribution kind %q: %w", kind, domain.ErrValidation)
	}
	return l, nil
}

// Repo reads and writes contribution records.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contribution repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByMember returns every record of kind paid by memberID within churchID,
// ordered by paid_at, created_at, id ascending. The result is never nil.
//
// Amounts are read as text so NUMERIC values keep their exact scale.
func (r *Repo) ListByMember(ctx context.Context, kind domain.ContributionKind, churchID, memberID uuid.UUID) ([]domain.ContributionRecord, error) {
	l, err := ledgerFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("id", "church_id", "member_id", "amount::text", "paid_at", "payment_method", l.detail, "created_at").
		From(l.table).
		Where(sq.Eq{"member_id": memberID, "church_id": churchID}).
		OrderBy("paid_at ASC", "created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", l.entity, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, l.entity, memberID)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContributionRecord, error) {
		rec := domain.ContributionRecord{Kind: kind}
		var amount string
		if err := row.Scan(&rec.ID, &rec.ChurchID, &rec.MemberID, &amount, &rec.Date,
			&rec.PaymentMethod, &rec.Detail, &rec.CreatedAt); err != nil {
			return rec, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return rec, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		rec.Amount = d
		return rec, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, l.entity, memberID)
	}
	if records == nil {
		records = []domain.ContributionRecord{}
	}
	return records, nil
}

// Create inserts rec into the ledger of rec.Kind.
func (r *Repo) Create(ctx context.Context, rec domain.ContributionRecord) error {
	l, err := ledgerFor(rec.Kind)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder().
		Insert(l.table).
		Columns("id", "church_id", "member_id", "amount", "paid_at", "payment_method", l.detail, "created_at").
		Values(rec.ID, rec.ChurchID, rec.MemberID, sq.Expr("?::numeric", rec.Amount.String()),
			rec.Date, rec.PaymentMethod, rec.Detail, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", l.entity, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	return postgres.MapError(err, l.entity, rec.ID)
}
