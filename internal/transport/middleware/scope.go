package middleware

import (
	"context"

	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/pkg/ctxutil"
)

// ScopeFromCtx derives the tenant scope of the authenticated caller.
// Platform roles see every church; other roles see only their own.
// Returns domain.ErrUnauthorized for anonymous requests.
// Use in REST handlers, not as HTTP middleware.
func ScopeFromCtx(ctx context.Context) (domain.TenantScope, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.TenantScope{}, domain.ErrUnauthorized
	}

	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if role.IsPlatform() {
		return domain.AllChurches(), nil
	}

	churchID, ok := ctxutil.ChurchIDFromCtx(ctx)
	if !ok {
		return domain.TenantScope{}, domain.ErrForbidden
	}
	return domain.ScopeForRole(role, churchID), nil
}
