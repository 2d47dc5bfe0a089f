package domain

import "github.com/google/uuid"

// TenantScope restricts lookups to one church, or to none for platform operators.
// The zero value matches nothing: a scoped lookup with a nil church finds no rows.
type TenantScope struct {
	allChurches bool
	churchID    uuid.UUID
}

// AllChurches returns a scope that sees every tenant.
func AllChurches() TenantScope {
	return TenantScope{allChurches: true}
}

// ChurchScope returns a scope limited to one church.
func ChurchScope(churchID uuid.UUID) TenantScope {
	return TenantScope{churchID: churchID}
}

// ScopeForRole builds the scope for a caller: platform roles see all churches,
// everyone else only their own.
func ScopeForRole(role UserRole, churchID uuid.UUID) TenantScope {
	if role.IsPlatform() {
		return AllChurches()
	}
	return ChurchScope(churchID)
}

// IsAll reports whether the scope spans every church.
func (s TenantScope) IsAll() bool { return s.allChurches }

// ChurchID returns the church the scope is limited to. It is meaningless when IsAll.
func (s TenantScope) ChurchID() uuid.UUID { return s.churchID }

// Allows reports whether a record owned by churchID is visible under the scope.
func (s TenantScope) Allows(churchID uuid.UUID) bool {
	if s.allChurches {
		return true
	}
	return s.churchID != uuid.Nil && s.churchID == churchID
}
