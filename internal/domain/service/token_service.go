package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a bearer token.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	// Issue creates a token for userID that expires after TTL.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature, shape and expiry and returns the embedded claims.
	Verify(tokenString string) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
