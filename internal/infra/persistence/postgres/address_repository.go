package postgres

import (
	"context"
	"strings"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindMatchingAddress returns the oldest address with the same match key.
func (repo *addressRepository) FindMatchingAddress(ctx context.Context, match entity.AddressMatch) (*entity.Address, error) {
	return repo.findMatching(repo.db.WithContext(ctx), match)
}

// FindMatchingAddressOnPrimary serialises concurrent creators of the same address with a
// transaction-scoped advisory lock, then re-reads on the primary.
func (repo *addressRepository) FindMatchingAddressOnPrimary(ctx context.Context, match entity.AddressMatch) (*entity.Address, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", addressLockKey(match)).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock address key")
	}

	return repo.findMatching(db.Clauses(clause.Locking{Strength: "UPDATE"}), match)
}

// FindAddressesByCustomer lists the saved addresses of a customer.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

func (repo *addressRepository) findMatching(db *gorm.DB, match entity.AddressMatch) (*entity.Address, error) {
	var addressM model.AddressModel

	query := db.Where("postal_code = ? AND address = ? AND city = ? AND country = ? AND type = ?",
		match.PostalCode, match.Address, match.City, match.Country, string(match.Type))
	if match.CustomerID == nil {
		query = query.Where("customer_id IS NULL")
	} else {
		query = query.Where("customer_id = ?", *match.CustomerID)
	}

	if err := query.Order("created_at ASC").First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find matching address")
	}

	return toAddressDomain(&addressM), nil
}

func addressLockKey(match entity.AddressMatch) string {
	scope := "anonymous"
	if match.CustomerID != nil {
		scope = match.CustomerID.String()
	}

	return strings.Join([]string{
		"address", scope, match.PostalCode, match.Address, match.City, match.Country, string(match.Type),
	}, "\x1f")
}

// --- Mapper Functions ---

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Name:       data.Name,
		Address:    data.Address,
		PostalCode: data.PostalCode,
		City:       data.City,
		Country:    data.Country,
		Type:       entity.AddressType(data.Type),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Name:       data.Name,
		Address:    data.Address,
		PostalCode: data.PostalCode,
		City:       data.City,
		Country:    data.Country,
		Type:       string(data.Type),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
