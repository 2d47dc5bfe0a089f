// Package member implements the Member repository using PostgreSQL.
package member

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flock-backend/internal/domain"
)

// Repo provides member and organization lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var memberColumns = []string{
	"m.id", "m.church_id", "m.first_name", "m.last_name", "m.email", "m.phone", "m.status",
	"m.cell_id", "m.group_id", "m.department_id", "m.created_at", "m.updated_at",
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

// GetByID returns a member visible under scope with its church, cell, group
// and department expanded. A member outside the scope is reported as
// domain.ErrNotFound, indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, scope domain.TenantScope, id uuid.UUID) (*domain.Member, error) {
	b := postgres.Builder().
		Select(memberColumns...).
		Columns(
			"c.name", "c.created_at",
			"cell.name", "grp.name", "dept.name",
		).
		From("members m").
		Join("churches c ON c.id = m.church_id").
		LeftJoin("org_units cell ON cell.id = m.cell_id").
		LeftJoin("org_units grp ON grp.id = m.group_id").
		LeftJoin("org_units dept ON dept.id = m.department_id").
		Where(sq.Eq{"m.id": id})
	b = postgres.WhereScope(b, "m.church_id", scope)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member query: %w", err)
	}

	var (
		m                           domain.Member
		status                      string
		church                      domain.Church
		cellName, grpName, deptName *string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.ChurchID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &status,
		&m.CellID, &m.GroupID, &m.DepartmentID, &m.CreatedAt, &m.UpdatedAt,
		&church.Name, &church.CreatedAt,
		&cellName, &grpName, &deptName,
	)
	if err != nil {
		return nil, postgres.MapError(err, "member", id)
	}

	m.Status = domain.MemberStatus(status)
	church.ID = m.ChurchID
	m.Church = &church
	m.Cell = orgUnit(m.CellID, m.ChurchID, domain.OrgUnitKindCell, cellName)
	m.Group = orgUnit(m.GroupID, m.ChurchID, domain.OrgUnitKindGroup, grpName)
	m.Department = orgUnit(m.DepartmentID, m.ChurchID, domain.OrgUnitKindDepartment, deptName)

	return &m, nil
}

func orgUnit(id *uuid.UUID, churchID uuid.UUID, kind domain.OrgUnitKind, name *string) *domain.OrgUnit {
	if id == nil || name == nil {
		return nil
	}
	return &domain.OrgUnit{ID: *id, ChurchID: churchID, Kind: kind, Name: *name}
}

// List returns one page of members visible under scope, ordered by
// last name, first name and id, along with the total matching count.
// Relations are not expanded.
func (r *Repo) List(ctx context.Context, scope domain.TenantScope, filter domain.MemberFilter, page domain.PageRequest) ([]domain.Member, int, error) {
	where := sq.And{}
	if !scope.IsAll() {
		where = append(where, sq.Eq{"m.church_id": scope.ChurchID()})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"m.status": string(*filter.Status)})
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").From("members m").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build member count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "member", uuid.Nil)
	}
	if total == 0 {
		return []domain.Member{}, 0, nil
	}

	query, args, err := postgres.Builder().
		Select(memberColumns...).
		From("members m").
		Where(where).
		OrderBy("m.last_name ASC", "m.first_name ASC", "m.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build member list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "member", uuid.Nil)
	}

	members, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, 0, postgres.MapError(err, "member", uuid.Nil)
	}

	return members, total, nil
}

func scanMember(row pgx.CollectableRow) (domain.Member, error) {
	var (
		m      domain.Member
		status string
	)
	err := row.Scan(
		&m.ID, &m.ChurchID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &status,
		&m.CellID, &m.GroupID, &m.DepartmentID, &m.CreatedAt, &m.UpdatedAt,
	)
	m.Status = domain.MemberStatus(status)
	return m, err
}

// ---------------------------------------------------------------------------
// Batch lookups (DataLoader)
// ---------------------------------------------------------------------------

// GetOrgUnitsByIDs returns the org units with the given ids. Missing ids are
// simply absent from the result.
func (r *Repo) GetOrgUnitsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OrgUnit, error) {
	if len(ids) == 0 {
		return []domain.OrgUnit{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "church_id", "kind", "name").
		From("org_units").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build org unit query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "org_unit", uuid.Nil)
	}

	units, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrgUnit, error) {
		var (
			u    domain.OrgUnit
			kind string
		)
		err := row.Scan(&u.ID, &u.ChurchID, &kind, &u.Name)
		u.Kind = domain.OrgUnitKind(kind)
		return u, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "org_unit", uuid.Nil)
	}
	return units, nil
}

// GetChurchesByIDs returns the churches with the given ids.
func (r *Repo) GetChurchesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Church, error) {
	if len(ids) == 0 {
		return []domain.Church{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "name", "created_at").
		From("churches").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build church query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "church", uuid.Nil)
	}

	churches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Church, error) {
		var c domain.Church
		err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "church", uuid.Nil)
	}
	return churches, nil
}

// ---------------------------------------------------------------------------
// Writes (seeding)
// ---------------------------------------------------------------------------

// CreateChurch inserts a church.
func (r *Repo) CreateChurch(ctx context.Context, c domain.Church) error {
	query, args, err := postgres.Builder().
		Insert("churches").
		Columns("id", "name", "created_at").
		Values(c.ID, c.Name, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build church insert: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	return postgres.MapError(err, "church", c.ID)
}

// CreateOrgUnit inserts a cell, group or department.
func (r *Repo) CreateOrgUnit(ctx context.Context, u domain.OrgUnit) error {
	query, args, err := postgres.Builder().
		Insert("org_units").
		Columns("id", "church_id", "kind", "name").
		Values(u.ID, u.ChurchID, string(u.Kind), u.Name).
		ToSql()
	if err != nil {
		return fmt.Errorf("build org unit insert: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	return postgres.MapError(err, "org_unit", u.ID)
}

// Create inserts a member. Relations on m are ignored; only the ids are stored.
func (r *Repo) Create(ctx context.Context, m domain.Member) error {
	query, args, err := postgres.Builder().
		Insert("members").
		Columns("id", "church_id", "first_name", "last_name", "email", "phone", "status",
			"cell_id", "group_id", "department_id", "created_at", "updated_at").
		Values(m.ID, m.ChurchID, m.FirstName, m.LastName, m.Email, m.Phone, string(m.Status),
			m.CellID, m.GroupID, m.DepartmentID, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build member insert: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	return postgres.MapError(err, "member", m.ID)
}
