package auth

import (
	"testing"
	"time"

	"market/config"
	"market/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndResolvePrincipal(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	roles := []entity.Role{entity.RoleAdmin, entity.RoleCustomer, entity.RoleGrower, entity.RoleDeliverer}
	for _, role := range roles {
		t.Run(role.String(), func(t *testing.T) {
			principal := entity.Principal{
				Role: role,
				Payload: entity.PrincipalPayload{
					SubjectID: uuid.New(),
					Email:     "someone@example.com",
					Name:      "Someone",
				},
			}

			token, err := svc.GenerateToken(principal)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			resolved, err := svc.ResolvePrincipal(token)
			require.NoError(t, err)
			assert.Equal(t, principal, *resolved)
		})
	}
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.GenerateToken(entity.Principal{Role: "merchant"})
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_is_also_long"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	foreign, err := otherSvc.GenerateToken(entity.Principal{
		Role:    entity.RoleAdmin,
		Payload: entity.PrincipalPayload{SubjectID: uuid.New()},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "signed with another secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ResolvePrincipal(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	svc := tokenSvc.(*jwtService)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.GenerateToken(entity.Principal{
		Role:    entity.RoleGrower,
		Payload: entity.PrincipalPayload{SubjectID: uuid.New()},
	})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ResolvePrincipal(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims := jwt.MapClaims{"role": "admin", "sid": uuid.NewString(), "iss": tokenIssuer}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ResolvePrincipal(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
