// Package service defines the ports the usecases call out through.
package service

import (
	"time"

	"market/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher hashes and checks credential passwords for all four roles.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	SubjectID uuid.UUID   `json:"sid"`
	Role      entity.Role `json:"role"`
	Email     string      `json:"email"`
	Name      string      `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing tokens and resolving the caller behind them.
type TokenService interface {
	// GenerateToken creates an access token for a principal.
	GenerateToken(principal entity.Principal) (string, error)

	// ResolvePrincipal validates a token and returns the single principal it was issued for.
	ResolvePrincipal(tokenString string) (*entity.Principal, error)

	// TokenDuration returns the configured lifetime of access tokens.
	TokenDuration() time.Duration
}
