package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account. Platform roles have no ChurchID.
type User struct {
	ID           uuid.UUID
	ChurchID     *uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// Identity is what an access token proves about its bearer.
type Identity struct {
	UserID   uuid.UUID
	Role     UserRole
	ChurchID uuid.UUID // uuid.Nil for platform users
}
