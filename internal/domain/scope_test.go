package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestScopeForRole(t *testing.T) {
	t.Parallel()

	church := uuid.New()
	other := uuid.New()

	for _, role := range []UserRole{UserRoleSuperAdmin, UserRoleSupportAdmin} {
		s := ScopeForRole(role, church)
		if !s.IsAll() {
			t.Errorf("%s: expected all-church scope", role)
		}
		if !s.Allows(other) {
			t.Errorf("%s: should see other churches", role)
		}
	}

	for _, role := range []UserRole{UserRoleChurchAdmin, UserRoleStaff, UserRole("")} {
		s := ScopeForRole(role, church)
		if s.IsAll() {
			t.Errorf("%s: expected church scope", role)
		}
		if s.ChurchID() != church {
			t.Errorf("%s: ChurchID = %s, want %s", role, s.ChurchID(), church)
		}
		if !s.Allows(church) || s.Allows(other) {
			t.Errorf("%s: scope must allow only its own church", role)
		}
	}
}

func TestTenantScope_ZeroValueMatchesNothing(t *testing.T) {
	t.Parallel()

	var s TenantScope
	if s.IsAll() {
		t.Fatal("zero scope must not span all churches")
	}
	if s.Allows(uuid.New()) || s.Allows(uuid.Nil) {
		t.Error("zero scope must allow nothing")
	}
}
