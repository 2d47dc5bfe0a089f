package auth

import (
	"time"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
