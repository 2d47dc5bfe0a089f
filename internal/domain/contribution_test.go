package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestContributionTotals_Add(t *testing.T) {
	t.Parallel()

	totals := NewContributionTotals()
	totals.Add(ContributionKindTithe, decimal.RequireFromString("0.10"))
	totals.Add(ContributionKindTithe, decimal.RequireFromString("0.20"))
	totals.Add(ContributionKindWelfare, decimal.RequireFromString("30"))
	totals.Add(ContributionKindSpecialFund, decimal.RequireFromString("1.005"))
	totals.Add(ContributionKindChurchProject, decimal.Zero)

	if !totals.Tithe.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("Tithe = %s, want 0.3", totals.Tithe)
	}
	if !totals.Total.Equal(decimal.RequireFromString("31.305")) {
		t.Errorf("Total = %s, want 31.305", totals.Total)
	}

	sum := totals.Tithe.Add(totals.Welfare).Add(totals.SpecialFund).Add(totals.ChurchProject)
	if !totals.Total.Equal(sum) {
		t.Errorf("Total %s != sum of buckets %s", totals.Total, sum)
	}
}

func TestContributionRecord_Unify(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := ContributionRecord{
		Kind:          ContributionKindChurchProject,
		Amount:        decimal.NewFromInt(50),
		Date:          date,
		PaymentMethod: "mobile money",
	}

	got := rec.Unify()
	if got.Type != "Church Project" {
		t.Errorf("Type = %q", got.Type)
	}
	if !got.Amount.Equal(decimal.NewFromInt(50)) || !got.Date.Equal(date) || got.PaymentMethod != "mobile money" {
		t.Errorf("unexpected projection: %+v", got)
	}
}

func TestMember_FullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first, last, want string
	}{
		{"Ama", "Mensah", "Ama Mensah"},
		{"Ama", "", "Ama"},
		{"", "Mensah", "Mensah"},
	}
	for _, tt := range tests {
		m := Member{FirstName: tt.first, LastName: tt.last}
		if got := m.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}
