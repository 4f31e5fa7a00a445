// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "market"

// ErrInvalidToken is returned for tokens that fail signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed access token for one principal.
func (s *jwtService) GenerateToken(principal entity.Principal) (string, error) {
	if !principal.Role.IsValid() {
		return "", errors.Errorf("cannot issue token for role %q", principal.Role)
	}

	now := s.now()
	claims := &service.Claims{
		SubjectID: principal.Payload.SubjectID,
		Role:      principal.Role,
		Email:     principal.Payload.Email,
		Name:      principal.Payload.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   principal.Payload.SubjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// ResolvePrincipal validates a token and returns the principal it was issued for.
func (s *jwtService) ResolvePrincipal(tokenString string) (*entity.Principal, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || !claims.Role.IsValid() || claims.SubjectID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return &entity.Principal{
		Role: claims.Role,
		Payload: entity.PrincipalPayload{
			SubjectID: claims.SubjectID,
			Email:     claims.Email,
			Name:      claims.Name,
		},
	}, nil
}

// TokenDuration returns the configured lifetime of access tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
