package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// CreateCustomer persists a new customer.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("customer email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a customer by id.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindCustomerByEmail retrieves a customer by email.
func (repo *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("email = ?", email))
}

// CreditWallet adds amount to the wallet balance.
func (repo *customerRepository) CreditWallet(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customerID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit wallet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// DebitWallet removes amount only when the balance covers it, in a single conditional UPDATE.
func (repo *customerRepository) DebitWallet(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND wallet_balance >= ?", customerID, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientWallet
		}

		return errors.Wrap(result.Error, "failed to debit wallet")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindCustomerByID(ctx, customerID); err != nil {
			return err
		}

		return repository.ErrInsufficientWallet
	}

	return nil
}

// CreateWalletTransaction records a wallet movement.
func (repo *customerRepository) CreateWalletTransaction(ctx context.Context, tx *entity.WalletTransaction) error {
	txM := &model.WalletTransactionModel{
		ID:              tx.ID,
		CustomerID:      tx.CustomerID,
		Amount:          tx.Amount,
		Reason:          tx.Reason,
		BasketSessionID: tx.BasketSessionID,
		CreatedBy:       tx.CreatedBy,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// ListWalletTransactions returns the wallet movements of a customer, newest first.
func (repo *customerRepository) ListWalletTransactions(ctx context.Context, customerID uuid.UUID) ([]*entity.WalletTransaction, error) {
	var txModels []*model.WalletTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txs := make([]*entity.WalletTransaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, &entity.WalletTransaction{
			ID:              txM.ID,
			CustomerID:      txM.CustomerID,
			Amount:          txM.Amount,
			Reason:          txM.Reason,
			BasketSessionID: txM.BasketSessionID,
			CreatedBy:       txM.CreatedBy,
			CreatedAt:       txM.CreatedAt,
		})
	}

	return txs, nil
}

func (repo *customerRepository) findOne(query *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		WalletBalance: data.WalletBalance,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		WalletBalance: data.WalletBalance,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
