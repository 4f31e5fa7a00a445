package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no credential exists for the role and email.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrDuplicateCredential is returned when the role already has a credential for the email.
	ErrDuplicateCredential = errors.New("credential already exists")
)

// CredentialRepository defines the interface for login credentials of all roles.
type CredentialRepository interface {
	// CreateCredential persists a new credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredential returns the credential of a role for an email.
	FindCredential(ctx context.Context, role entity.Role, email string) (*entity.Credential, error)
}
