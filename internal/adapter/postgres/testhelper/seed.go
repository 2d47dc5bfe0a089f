package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedChurch creates a church with a unique name.
func SeedChurch(t *testing.T, pool *pgxpool.Pool) domain.Church {
	t.Helper()

	church := domain.Church{
		ID:        uuid.New(),
		Name:      "Church " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO churches (id, name, created_at) VALUES ($1, $2, $3)`,
		church.ID, church.Name, church.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChurch: %v", err)
	}
	return church
}

// SeedOrgUnit creates a cell, group or department inside churchID.
func SeedOrgUnit(t *testing.T, pool *pgxpool.Pool, churchID uuid.UUID, kind domain.OrgUnitKind) domain.OrgUnit {
	t.Helper()

	unit := domain.OrgUnit{
		ID:       uuid.New(),
		ChurchID: churchID,
		Kind:     kind,
		Name:     string(kind) + " " + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO org_units (id, church_id, kind, name) VALUES ($1, $2, $3, $4)`,
		unit.ID, unit.ChurchID, string(unit.Kind), unit.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrgUnit: %v", err)
	}
	return unit
}

// MemberOption customizes a seeded member.
type MemberOption func(m *domain.Member)

// WithCell assigns the member to a cell.
func WithCell(id uuid.UUID) MemberOption {
	return func(m *domain.Member) { m.CellID = &id }
}

// WithGroup assigns the member to a group.
func WithGroup(id uuid.UUID) MemberOption {
	return func(m *domain.Member) { m.GroupID = &id }
}

// WithDepartment assigns the member to a department.
func WithDepartment(id uuid.UUID) MemberOption {
	return func(m *domain.Member) { m.DepartmentID = &id }
}

// WithStatus overrides the default active status.
func WithStatus(s domain.MemberStatus) MemberOption {
	return func(m *domain.Member) { m.Status = s }
}

// WithName overrides the generated names.
func WithName(first, last string) MemberOption {
	return func(m *domain.Member) {
		m.FirstName = first
		m.LastName = last
	}
}

// SeedMember creates an active member of churchID.
func SeedMember(t *testing.T, pool *pgxpool.Pool, churchID uuid.UUID, opts ...MemberOption) domain.Member {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	email := "member-" + suffix + "@example.com"
	member := domain.Member{
		ID:        uuid.New(),
		ChurchID:  churchID,
		FirstName: "First" + suffix,
		LastName:  "Last" + suffix,
		Email:     &email,
		Status:    domain.MemberStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&member)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (id, church_id, first_name, last_name, email, phone, status,
		                      cell_id, group_id, department_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		member.ID, member.ChurchID, member.FirstName, member.LastName, member.Email, member.Phone,
		string(member.Status), member.CellID, member.GroupID, member.DepartmentID,
		member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
	return member
}

var contributionTables = map[domain.ContributionKind]string{
	domain.ContributionKindTithe:         "tithes",
	domain.ContributionKindWelfare:       "welfare_contributions",
	domain.ContributionKindSpecialFund:   "special_funds",
	domain.ContributionKindChurchProject: "church_project_contributions",
}

// SeedContribution inserts one record of kind for member. amount is a decimal string.
func SeedContribution(t *testing.T, pool *pgxpool.Pool, member domain.Member, kind domain.ContributionKind, amount string, paidAt time.Time) domain.ContributionRecord {
	t.Helper()

	rec := domain.ContributionRecord{
		ID:            uuid.New(),
		ChurchID:      member.ChurchID,
		MemberID:      member.ID,
		Kind:          kind,
		Amount:        decimal.RequireFromString(amount),
		Date:          paidAt.UTC().Truncate(time.Microsecond),
		PaymentMethod: "cash",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+contributionTables[kind]+` (id, church_id, member_id, amount, paid_at, payment_method, created_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)`,
		rec.ID, rec.ChurchID, rec.MemberID, rec.Amount.String(), rec.Date, rec.PaymentMethod, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContribution: %v", err)
	}
	return rec
}

// SeedUser creates a back-office user. churchID may be nil for platform roles.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, churchID *uuid.UUID, passwordHash string) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		ChurchID:     churchID,
		Email:        "user-" + suffix + "@example.com",
		Name:         "User " + suffix,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, church_id, email, name, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.ChurchID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}
