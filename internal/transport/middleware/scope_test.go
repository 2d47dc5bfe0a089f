package middleware

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/pkg/ctxutil"
)

func identityCtx(role domain.UserRole, churchID uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	ctx = ctxutil.WithUserRole(ctx, role.String())
	if churchID != uuid.Nil {
		ctx = ctxutil.WithChurchID(ctx, churchID)
	}
	return ctx
}

func TestScopeFromCtx_Anonymous(t *testing.T) {
	_, err := ScopeFromCtx(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestScopeFromCtx_PlatformRolesSeeAll(t *testing.T) {
	for _, role := range []domain.UserRole{domain.UserRoleSuperAdmin, domain.UserRoleSupportAdmin} {
		scope, err := ScopeFromCtx(identityCtx(role, uuid.Nil))
		require.NoError(t, err, role)
		assert.True(t, scope.IsAll(), role)
	}
}

func TestScopeFromCtx_ChurchRolesSeeOwnChurch(t *testing.T) {
	churchID := uuid.New()

	for _, role := range []domain.UserRole{domain.UserRoleChurchAdmin, domain.UserRoleStaff} {
		scope, err := ScopeFromCtx(identityCtx(role, churchID))
		require.NoError(t, err, role)
		assert.False(t, scope.IsAll())
		assert.Equal(t, churchID, scope.ChurchID())
		assert.False(t, scope.Allows(uuid.New()))
	}
}

func TestScopeFromCtx_ChurchRoleWithoutChurch(t *testing.T) {
	_, err := ScopeFromCtx(identityCtx(domain.UserRoleStaff, uuid.Nil))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
