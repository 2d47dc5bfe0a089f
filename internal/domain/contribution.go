package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContributionRecord is one stored tithe, welfare, special-fund or
// church-project payment. Detail carries the variant-specific column
// (period, purpose, fund name, project name) and is not used for totals.
type ContributionRecord struct {
	ID            uuid.UUID
	ChurchID      uuid.UUID
	MemberID      uuid.UUID
	Kind          ContributionKind
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod string
	Detail        *string
	CreatedAt     time.Time
}

// UnifiedContribution is the source-tagged projection shared by all four
// sources. It exists only in responses.
type UnifiedContribution struct {
	Type          string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod string
}

// Unify projects a record into the unified shape.
func (r ContributionRecord) Unify() UnifiedContribution {
	return UnifiedContribution{
		Type:          r.Kind.Label(),
		Amount:        r.Amount,
		Date:          r.Date,
		PaymentMethod: r.PaymentMethod,
	}
}

// ContributionTotals are the per-source sums and their grand total.
type ContributionTotals struct {
	Tithe         decimal.Decimal
	Welfare       decimal.Decimal
	SpecialFund   decimal.Decimal
	ChurchProject decimal.Decimal
	Total         decimal.Decimal
}

// NewContributionTotals returns all-zero totals.
func NewContributionTotals() ContributionTotals {
	return ContributionTotals{
		Tithe:         decimal.Zero,
		Welfare:       decimal.Zero,
		SpecialFund:   decimal.Zero,
		ChurchProject: decimal.Zero,
		Total:         decimal.Zero,
	}
}

// Add sums amount into the bucket of kind. Total is always recomputed from
// the four buckets so it can never drift from them.
func (t *ContributionTotals) Add(kind ContributionKind, amount decimal.Decimal) {
	switch kind {
	case ContributionKindTithe:
		t.Tithe = t.Tithe.Add(amount)
	case ContributionKindWelfare:
		t.Welfare = t.Welfare.Add(amount)
	case ContributionKindSpecialFund:
		t.SpecialFund = t.SpecialFund.Add(amount)
	case ContributionKindChurchProject:
		t.ChurchProject = t.ChurchProject.Add(amount)
	}
	t.Total = t.Tithe.Add(t.Welfare).Add(t.SpecialFund).Add(t.ChurchProject)
}
