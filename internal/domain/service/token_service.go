package service

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating session
// tokens. The token is carried in an HttpOnly cookie; the encoding is an
// implementation detail behind this interface.
type TokenService interface {
	// GenerateSessionToken creates a session token for a logged-in user.
	GenerateSessionToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateSessionToken checks a token string and returns its claims.
	ValidateSessionToken(token string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime, used to set
	// the cookie expiry alongside the token's own.
	SessionDuration() time.Duration
}
