package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
	now            func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks a password against the credential of the requested role.
func (srv *authService) Login(ctx context.Context, role entity.Role, email, password string) (*usecase.LoginOutput, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	email = normalizeEmail(email)
	credential, err := srv.credentialRepo.FindCredential(ctx, role, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("role", role.String()), slog.String("email", email), slog.Any("error", err))
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("role", role.String()), slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	principal := credential.Principal()
	token, err := srv.tokenService.GenerateToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Login succeeded",
		slog.String("role", role.String()),
		slog.String("subject_id", principal.Payload.SubjectID.String()),
	)

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: srv.now().Add(srv.tokenService.TokenDuration()),
		Principal: principal,
	}, nil
}

// ResolvePrincipal turns a bearer token into its single principal.
func (srv *authService) ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error) {
	principal, err := srv.tokenService.ResolvePrincipal(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	return principal, nil
}

// RegisterCredential stores a hashed password login for one role.
func (srv *authService) RegisterCredential(ctx context.Context, input *usecase.RegisterCredentialInput) (*entity.Credential, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if input.Password == "" || input.SubjectID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("subject and password are required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	credential := &entity.Credential{
		ID:           uuid.New(),
		Role:         input.Role,
		SubjectID:    input.SubjectID,
		Email:        normalizeEmail(input.Email),
		Name:         input.Name,
		PasswordHash: hash,
	}

	if err := srv.credentialRepo.CreateCredential(ctx, credential); err != nil {
		return nil, translate(err, "failed to create credential",
			errorMapping{repository.ErrDuplicateCredential, domainerrors.ErrConflict.WithDetails("credential already exists")})
	}

	return credential, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
