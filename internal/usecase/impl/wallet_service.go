package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const walletReasonAdminCredit = "admin credit"

// walletService implements the WalletUsecase interface.
type walletService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
	now          func() time.Time
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AllocateCredit adds store credit to a customer's wallet and records who granted it.
func (srv *walletService) AllocateCredit(ctx context.Context, input *usecase.AllocateCreditInput) (*entity.WalletTransaction, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrInvalidCreditAmount
	}

	reason := input.Reason
	if reason == "" {
		reason = walletReasonAdminCredit
	}

	adminID := input.AdminID
	tx := &entity.WalletTransaction{
		ID:         uuid.New(),
		CustomerID: input.CustomerID,
		Amount:     input.Amount,
		Reason:     reason,
		CreatedBy:  &adminID,
		CreatedAt:  srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		if err := customerRepo.CreditWallet(ctx, input.CustomerID, input.Amount); err != nil {
			return translate(err, "failed to credit wallet",
				errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
		}

		return errors.Wrap(customerRepo.CreateWalletTransaction(ctx, tx), "failed to record wallet transaction")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Wallet credit allocated",
		slog.String("customer_id", input.CustomerID.String()),
		slog.String("admin_id", adminID.String()),
		slog.String("amount", input.Amount.String()),
	)

	return tx, nil
}

// GetBalance returns the customer's current wallet balance.
func (srv *walletService) GetBalance(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return decimal.Zero, translate(err, "failed to find customer",
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
	}

	return customer.WalletBalance, nil
}

// ListTransactions returns the wallet history, newest first.
func (srv *walletService) ListTransactions(ctx context.Context, customerID uuid.UUID) ([]*entity.WalletTransaction, error) {
	txs, err := srv.customerRepo.ListWalletTransactions(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	return txs, nil
}
