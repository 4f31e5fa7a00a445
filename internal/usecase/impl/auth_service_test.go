package impl

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        *authService
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	now            time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	f := authServiceFixtures{
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
		now:            time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	f.service = NewAuthService(AuthServiceParams{
		CredentialRepo: f.credentialRepo,
		Hasher:         f.hasher,
		TokenService:   f.tokenService,
		Logger:         newDiscardLogger(),
	}).(*authService)
	f.service.now = fixedClock(f.now)

	return f
}

func TestAuthService_Login(t *testing.T) {
	credential := &entity.Credential{
		Role:         entity.RoleGrower,
		SubjectID:    uuid.New(),
		Email:        "farm@example.com",
		Name:         "Green Farm",
		PasswordHash: "hashed",
	}

	t.Run("success", func(t *testing.T) {
		f := createTestAuthService(t)
		ctx := context.Background()

		f.credentialRepo.EXPECT().FindCredential(ctx, entity.RoleGrower, "farm@example.com").Return(credential, nil)
		f.hasher.EXPECT().Check("secret", "hashed").Return(true)
		f.tokenService.EXPECT().GenerateToken(credential.Principal()).Return("jwt", nil)
		f.tokenService.EXPECT().TokenDuration().Return(2 * time.Hour)

		out, err := f.service.Login(ctx, entity.RoleGrower, "  Farm@Example.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, f.now.Add(2*time.Hour), out.ExpiresAt)
		assert.Equal(t, entity.RoleGrower, out.Principal.Role)
		assert.Equal(t, credential.SubjectID, out.Principal.Payload.SubjectID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAuthService(t)

		f.credentialRepo.EXPECT().FindCredential(mock.Anything, entity.RoleGrower, "farm@example.com").Return(credential, nil)
		f.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := f.service.Login(context.Background(), entity.RoleGrower, "farm@example.com", "nope")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("no credential for that role", func(t *testing.T) {
		f := createTestAuthService(t)

		f.credentialRepo.EXPECT().FindCredential(mock.Anything, entity.RoleAdmin, "farm@example.com").Return(nil, repository.ErrCredentialNotFound)

		_, err := f.service.Login(context.Background(), entity.RoleAdmin, "farm@example.com", "secret")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown role", func(t *testing.T) {
		f := createTestAuthService(t)

		_, err := f.service.Login(context.Background(), entity.Role("owner"), "farm@example.com", "secret")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
	})
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	f := createTestAuthService(t)
	principal := &entity.Principal{Role: entity.RoleDeliverer, Payload: entity.PrincipalPayload{SubjectID: uuid.New()}}

	f.tokenService.EXPECT().ResolvePrincipal("good").Return(principal, nil)
	f.tokenService.EXPECT().ResolvePrincipal("bad").Return(nil, errors.New("token is expired"))

	got, err := f.service.ResolvePrincipal(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, principal, got)

	_, err = f.service.ResolvePrincipal(context.Background(), "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_RegisterCredential(t *testing.T) {
	input := &usecase.RegisterCredentialInput{
		Role:      entity.RoleAdmin,
		SubjectID: uuid.New(),
		Email:     "Admin@Market.test",
		Password:  "pw",
	}

	t.Run("stores hashed password", func(t *testing.T) {
		f := createTestAuthService(t)

		f.hasher.EXPECT().Hash("pw").Return("h", nil)
		f.credentialRepo.EXPECT().
			CreateCredential(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool {
				return c.PasswordHash == "h" && c.Email == "admin@market.test"
			})).
			Return(nil)

		credential, err := f.service.RegisterCredential(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, credential.Role)
	})

	t.Run("duplicate", func(t *testing.T) {
		f := createTestAuthService(t)

		f.hasher.EXPECT().Hash("pw").Return("h", nil)
		f.credentialRepo.EXPECT().CreateCredential(mock.Anything, mock.Anything).Return(repository.ErrDuplicateCredential)

		_, err := f.service.RegisterCredential(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrConflict))
	})
}
