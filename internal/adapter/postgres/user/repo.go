// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flock-backend/internal/domain"
)

// Repo provides back-office user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var userColumns = []string{"id", "church_id", "email", "name", "password_hash", "role", "created_at"}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := r.getOne(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address. Matching is case-insensitive.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.getOne(ctx, sq.Expr("lower(email) = ?", strings.ToLower(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, pred sq.Sqlizer) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(userColumns...).
		From("users").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var (
		u    domain.User
		role string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.ChurchID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

// Create inserts a new user. The email is stored lowercased.
func (r *Repo) Create(ctx context.Context, u domain.User) error {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.ChurchID, strings.ToLower(u.Email), u.Name, u.PasswordHash, string(u.Role), u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user insert: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	return postgres.MapError(err, "user", u.ID)
}
