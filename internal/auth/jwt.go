package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// accessClaims extends standard JWT claims with the caller's role and tenant.
type accessClaims struct {
	jwt.RegisteredClaims
	Role     string `json:"role"`
	ChurchID string `json:"church_id,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for id. The subject is the
// user ID; role and church travel as custom claims.
func (m *JWTManager) GenerateAccessToken(id domain.Identity) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.accessTTL)

	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: string(id.Role),
	}
	if id.ChurchID != uuid.Nil {
		claims.ChurchID = id.ChurchID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expires, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the identity it carries. Church roles without a church claim are rejected.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, fmt.Errorf("invalid role %q", claims.Role)
	}

	id := domain.Identity{UserID: userID, Role: role}
	if claims.ChurchID != "" {
		if id.ChurchID, err = uuid.Parse(claims.ChurchID); err != nil {
			return domain.Identity{}, fmt.Errorf("invalid church UUID: %w", err)
		}
	}
	if !role.IsPlatform() && id.ChurchID == uuid.Nil {
		return domain.Identity{}, fmt.Errorf("role %s requires a church", role)
	}

	return id, nil
}
