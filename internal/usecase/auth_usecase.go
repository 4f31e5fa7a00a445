package usecase

import (
	"context"
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginOutput is a signed token and who it was issued to.
type LoginOutput struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Principal entity.Principal `json:"principal"`
}

// RegisterCredentialInput creates login credentials for an existing account.
type RegisterCredentialInput struct {
	Role      entity.Role
	SubjectID uuid.UUID
	Email     string
	Name      string
	Password  string
}

// AuthUsecase defines sign-in for the four portals.
type AuthUsecase interface {
	Login(ctx context.Context, role entity.Role, email, password string) (*LoginOutput, error)

	// ResolvePrincipal turns a bearer token into the caller's role and identity in one call.
	ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error)

	RegisterCredential(ctx context.Context, input *RegisterCredentialInput) (*entity.Credential, error)
}
