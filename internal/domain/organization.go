package domain

import (
	"time"

	"github.com/google/uuid"
)

// Church is a tenant: an isolated congregation with its own members and money.
type Church struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// OrgUnit is a cell, group or department inside a church.
type OrgUnit struct {
	ID       uuid.UUID
	ChurchID uuid.UUID
	Kind     OrgUnitKind
	Name     string
}

// Member is a registered congregant of one church.
//
// CellID/GroupID/DepartmentID are the stored references; Church, Cell, Group
// and Department are the expanded relations, filled only by lookups that join them.
type Member struct {
	ID           uuid.UUID
	ChurchID     uuid.UUID
	FirstName    string
	LastName     string
	Email        *string
	Phone        *string
	Status       MemberStatus
	CellID       *uuid.UUID
	GroupID      *uuid.UUID
	DepartmentID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Church     *Church
	Cell       *OrgUnit
	Group      *OrgUnit
	Department *OrgUnit
}

// FullName returns the display name.
func (m *Member) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// MemberFilter narrows member listings. Nil fields match everything.
type MemberFilter struct {
	Status *MemberStatus
}
