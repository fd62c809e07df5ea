package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fitfamily/internal/domain/entity"
)

// Claims defines the custom claims carried by access tokens.
// The registered subject claim holds the user's email; possession of a valid
// token does not guarantee the user still exists, so callers must confirm
// the subject against the store.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Implementations are pure functions over the signing secret and the clock.
type TokenService interface {
	// Generate issues a signed token for the given user with a fixed TTL.
	Generate(user *entity.User) (string, error)

	// Validate parses and verifies a token string. It fails when the
	// signature is invalid, the claims are unparseable, or the token expired.
	Validate(tokenString string) (*Claims, error)
}
