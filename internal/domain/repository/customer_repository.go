package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInsufficientWallet is returned when a debit would make the wallet negative.
	ErrInsufficientWallet = errors.New("insufficient wallet balance")
)

// CustomerRepository defines the interface for customer and wallet persistence.
type CustomerRepository interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by id.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByEmail retrieves a customer by email.
	FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// CreditWallet adds a positive amount to the wallet balance.
	CreditWallet(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) error

	// DebitWallet removes amount from the wallet only if the balance covers it.
	// Returns ErrInsufficientWallet otherwise.
	DebitWallet(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) error

	// CreateWalletTransaction records a wallet movement.
	CreateWalletTransaction(ctx context.Context, tx *entity.WalletTransaction) error

	// ListWalletTransactions returns the wallet movements of a customer, newest first.
	ListWalletTransactions(ctx context.Context, customerID uuid.UUID) ([]*entity.WalletTransaction, error)
}
