package domain

// UserRole represents the authorization level of a back-office user.
type UserRole string

const (
	UserRoleSuperAdmin   UserRole = "superadmin"
	UserRoleSupportAdmin UserRole = "supportadmin"
	UserRoleChurchAdmin  UserRole = "churchadmin"
	UserRoleStaff        UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleSupportAdmin, UserRoleChurchAdmin, UserRoleStaff:
		return true
	}
	return false
}

// IsPlatform reports whether the role belongs to platform operators,
// who see every church.
func (r UserRole) IsPlatform() bool {
	return r == UserRoleSuperAdmin || r == UserRoleSupportAdmin
}

// MemberStatus is the membership lifecycle state.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

func (s MemberStatus) String() string { return string(s) }

func (s MemberStatus) IsValid() bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive:
		return true
	}
	return false
}

// OrgUnitKind identifies which sub-structure of a church an OrgUnit is.
type OrgUnitKind string

const (
	OrgUnitKindCell       OrgUnitKind = "cell"
	OrgUnitKindGroup      OrgUnitKind = "group"
	OrgUnitKindDepartment OrgUnitKind = "department"
)

func (k OrgUnitKind) String() string { return string(k) }

func (k OrgUnitKind) IsValid() bool {
	switch k {
	case OrgUnitKindCell, OrgUnitKindGroup, OrgUnitKindDepartment:
		return true
	}
	return false
}

// ContributionKind is one of the four contribution sources tracked per member.
type ContributionKind string

const (
	ContributionKindTithe         ContributionKind = "TITHE"
	ContributionKindWelfare       ContributionKind = "WELFARE"
	ContributionKindSpecialFund   ContributionKind = "SPECIAL_FUND"
	ContributionKindChurchProject ContributionKind = "CHURCH_PROJECT"
)

// ContributionKinds returns every source in merge order. The order is part of
// the contract: ties on date keep this relative order.
func ContributionKinds() []ContributionKind {
	return []ContributionKind{
		ContributionKindTithe,
		ContributionKindWelfare,
		ContributionKindSpecialFund,
		ContributionKindChurchProject,
	}
}

func (k ContributionKind) String() string { return string(k) }

func (k ContributionKind) IsValid() bool {
	switch k {
	case ContributionKindTithe, ContributionKindWelfare,
		ContributionKindSpecialFund, ContributionKindChurchProject:
		return true
	}
	return false
}

// Label is the human-readable source tag used in unified listings.
func (k ContributionKind) Label() string {
	switch k {
	case ContributionKindTithe:
		return "Tithe"
	case ContributionKindWelfare:
		return "Welfare"
	case ContributionKindSpecialFund:
		return "Special Fund"
	case ContributionKindChurchProject:
		return "Church Project"
	}
	return string(k)
}
