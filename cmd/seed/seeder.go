package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	contributionrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/contribution"
	memberrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/member"
	userrepo "github.com/heartmarshall/flock-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flock-backend/internal/domain"
)

const (
	adminEmail      = "admin@grace.example"
	superAdminEmail = "root@flock.example"
)

type seeder struct {
	members *memberrepo.Repo
	ledgers *contributionrepo.Repo
	users   *userrepo.Repo
	now     time.Time
}

type seedStats struct {
	churchID      uuid.UUID
	members       int
	contributions int
}

type demoGift struct {
	kind    domain.ContributionKind
	amount  string
	daysAgo int
	method  string
	detail  string
}

type demoMember struct {
	first, last string
	status      domain.MemberStatus
	unit        domain.OrgUnitKind
	gifts       []demoGift
}

var demoMembers = []demoMember{
	{"Ama", "Boateng", domain.MemberStatusActive, domain.OrgUnitKindCell, []demoGift{
		{domain.ContributionKindTithe, "100.00", 90, "cash", "January"},
		{domain.ContributionKindWelfare, "30.00", 60, "transfer", "Hospital visit"},
		{domain.ContributionKindTithe, "50.00", 30, "cash", "March"},
		{domain.ContributionKindSpecialFund, "75.50", 20, "card", "Harvest"},
		{domain.ContributionKindChurchProject, "200.00", 10, "transfer", "New roof"},
	}},
	{"Kofi", "Asante", domain.MemberStatusActive, domain.OrgUnitKindGroup, []demoGift{
		{domain.ContributionKindTithe, "80.00", 45, "mobile money", "February"},
		{domain.ContributionKindWelfare, "15.25", 45, "cash", "Funeral support"},
	}},
	{"Esi", "Owusu", domain.MemberStatusInactive, domain.OrgUnitKindDepartment, nil},
}

func (s *seeder) run(ctx context.Context, passwordHash string) (seedStats, error) {
	church := domain.Church{ID: uuid.New(), Name: "Grace Chapel", CreatedAt: s.now}
	if err := s.members.CreateChurch(ctx, church); err != nil {
		return seedStats{}, fmt.Errorf("create church: %w", err)
	}
	stats := seedStats{churchID: church.ID}

	units := map[domain.OrgUnitKind]uuid.UUID{}
	for kind, name := range map[domain.OrgUnitKind]string{
		domain.OrgUnitKindCell:       "North Cell",
		domain.OrgUnitKindGroup:      "Youth Fellowship",
		domain.OrgUnitKindDepartment: "Choir",
	} {
		u := domain.OrgUnit{ID: uuid.New(), ChurchID: church.ID, Kind: kind, Name: name}
		if err := s.members.CreateOrgUnit(ctx, u); err != nil {
			return seedStats{}, fmt.Errorf("create %s: %w", kind, err)
		}
		units[kind] = u.ID
	}

	for _, u := range []domain.User{
		{ID: uuid.New(), ChurchID: &church.ID, Email: adminEmail, Name: "Grace Admin", Role: domain.UserRoleChurchAdmin},
		{ID: uuid.New(), Email: superAdminEmail, Name: "Platform Admin", Role: domain.UserRoleSuperAdmin},
	} {
		u.PasswordHash = passwordHash
		u.CreatedAt = s.now
		if err := s.users.Create(ctx, u); err != nil {
			return seedStats{}, fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}

	for _, dm := range demoMembers {
		m := domain.Member{
			ID:        uuid.New(),
			ChurchID:  church.ID,
			FirstName: dm.first,
			LastName:  dm.last,
			Status:    dm.status,
			CreatedAt: s.now,
			UpdatedAt: s.now,
		}
		unitID := units[dm.unit]
		switch dm.unit {
		case domain.OrgUnitKindCell:
			m.CellID = &unitID
		case domain.OrgUnitKindGroup:
			m.GroupID = &unitID
		case domain.OrgUnitKindDepartment:
			m.DepartmentID = &unitID
		}
		if err := s.members.Create(ctx, m); err != nil {
			return seedStats{}, fmt.Errorf("create member %s: %w", m.FullName(), err)
		}
		stats.members++

		for _, g := range dm.gifts {
			detail := g.detail
			rec := domain.ContributionRecord{
				ID:            uuid.New(),
				ChurchID:      church.ID,
				MemberID:      m.ID,
				Kind:          g.kind,
				Amount:        decimal.RequireFromString(g.amount),
				Date:          s.now.AddDate(0, 0, -g.daysAgo),
				PaymentMethod: g.method,
				Detail:        &detail,
				CreatedAt:     s.now,
			}
			if err := s.ledgers.Create(ctx, rec); err != nil {
				return seedStats{}, fmt.Errorf("create %s for %s: %w", g.kind.Label(), m.FullName(), err)
			}
			stats.contributions++
		}
	}

	return stats, nil
}
