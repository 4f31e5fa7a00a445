package postgres

import (
	"context"
	"strings"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// CreateCredential persists a new credential. Emails are stored lower-cased.
func (repo *credentialRepository) CreateCredential(ctx context.Context, credential *entity.Credential) error {
	credentialM := &model.CredentialModel{
		ID:           credential.ID,
		Role:         string(credential.Role),
		SubjectID:    credential.SubjectID,
		Email:        strings.ToLower(strings.TrimSpace(credential.Email)),
		Name:         credential.Name,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCredential
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required credential information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.Email = credentialM.Email
	credential.CreatedAt = credentialM.CreatedAt
	credential.UpdatedAt = credentialM.UpdatedAt

	return nil
}

// FindCredential returns the credential of a role for an email.
func (repo *credentialRepository) FindCredential(ctx context.Context, role entity.Role, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("role = ? AND email = ?", string(role), strings.ToLower(strings.TrimSpace(email))).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		ID:           credentialM.ID,
		Role:         entity.Role(credentialM.Role),
		SubjectID:    credentialM.SubjectID,
		Email:        credentialM.Email,
		Name:         credentialM.Name,
		PasswordHash: credentialM.PasswordHash,
		CreatedAt:    credentialM.CreatedAt,
		UpdatedAt:    credentialM.UpdatedAt,
	}, nil
}
