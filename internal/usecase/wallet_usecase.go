package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocateCreditInput is an admin's wallet credit for a customer.
type AllocateCreditInput struct {
	AdminID    uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Reason     string
}

// WalletUsecase defines customer store-credit operations.
type WalletUsecase interface {
	// AllocateCredit adds a positive amount to a customer's wallet and records the movement.
	AllocateCredit(ctx context.Context, input *AllocateCreditInput) (*entity.WalletTransaction, error)

	GetBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error)

	ListTransactions(ctx context.Context, customerID uuid.UUID) ([]*entity.WalletTransaction, error)
}
