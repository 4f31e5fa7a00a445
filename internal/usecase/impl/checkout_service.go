package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	walletReasonCheckout      = "checkout"
	walletReasonPaymentFailed = "checkout_payment_failed"
	anonymousEmailDomain      = "@guest.invalid"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager    repository.TransactionManager
	basketRepo   repository.BasketRepository
	checkoutRepo repository.CheckoutSessionRepository
	customerRepo repository.CustomerRepository
	provider     service.PaymentProvider
	checkout     config.CheckoutConfig
	logger       *slog.Logger
	now          func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BasketRepo   repository.BasketRepository
	CheckoutRepo repository.CheckoutSessionRepository
	CustomerRepo repository.CustomerRepository
	Provider     service.PaymentProvider
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	checkoutCfg := config.CheckoutConfig{AnonymousEmailPrefix: constants.DefaultAnonymousEmailPrefix}
	if params.Config != nil && params.Config.Checkout != nil {
		checkoutCfg = *params.Config.Checkout
	}

	return &checkoutService{
		txManager:    params.TxManager,
		basketRepo:   params.BasketRepo,
		checkoutRepo: params.CheckoutRepo,
		customerRepo: params.CustomerRepo,
		provider:     params.Provider,
		checkout:     checkoutCfg,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBasketSession persists the basket, its items and its address atomically.
func (srv *checkoutService) CreateBasketSession(ctx context.Context, input *usecase.CreateBasketInput) (*entity.BasketSession, error) {
	var created *entity.BasketSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		basket, err := srv.createBasketSession(ctx, repoFactory, input)
		if err != nil {
			return err
		}
		created = basket

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Basket session created",
		slog.String("basket_id", created.ID.String()),
		slog.Int64("order_index", created.OrderIndex),
		slog.String("total", created.Total.String()),
	)

	return created, nil
}

func (srv *checkoutService) createBasketSession(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CreateBasketInput) (*entity.BasketSession, error) {
	customerRepo := repoFactory.NewCustomerRepository()
	addressRepo := repoFactory.NewAddressRepository()
	basketRepo := repoFactory.NewBasketRepository()

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("basket has no items")
	}
	if input.DeliveryCost.IsNegative() || input.WalletAmountUsed.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amounts must not be negative")
	}

	customer, err := customerRepo.FindCustomerByID(ctx, input.CustomerID)
	if err != nil {
		return nil, translate(err, "failed to find customer",
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
	}
	scope := customer.AddressScope(srv.checkout.AnonymousEmailPrefix)

	items, err := srv.snapshotItems(ctx, repoFactory.NewProductRepository(), input.Items)
	if err != nil {
		return nil, err
	}

	total := input.DeliveryCost
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}

	walletUsed := decimal.Min(input.WalletAmountUsed, total)
	if walletUsed.GreaterThan(customer.WalletBalance) {
		return nil, domainerrors.ErrInsufficientWallet
	}

	basket := &entity.BasketSession{
		CustomerID:       customer.ID,
		Items:            items,
		Total:            total,
		PaymentStatus:    entity.PaymentStatusPending,
		DeliveryCost:     input.DeliveryCost,
		DeliveryDay:      input.DeliveryDay,
		WalletAmountUsed: walletUsed,
	}

	var candidate *entity.Address
	var match entity.AddressMatch
	if input.Address != nil {
		candidate = &entity.Address{
			CustomerID: scope,
			Name:       input.Address.Name,
			Address:    input.Address.Address,
			PostalCode: input.Address.PostalCode,
			City:       input.Address.City,
			Country:    input.Address.Country,
			Type:       input.Address.Type,
		}
		match = candidate.Match(scope)

		existing, err := findAddress(ctx, addressRepo.FindMatchingAddress, match)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			basket.AddressID = &existing.ID
		}
	}

	if err := basketRepo.CreateBasketSession(ctx, basket); err != nil {
		return nil, translate(err, "failed to create basket session",
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound},
			errorMapping{repository.ErrInvalidItemReference, domainerrors.ErrInvalidBasketItem})
	}

	if candidate != nil && basket.AddressID == nil {
		// Re-check on the primary under lock so concurrent checkouts share one row.
		address, err := findAddress(ctx, addressRepo.FindMatchingAddressOnPrimary, match)
		if err != nil {
			return nil, err
		}
		if address == nil {
			candidate.ID = uuid.New()
			candidate.Address = match.Address
			candidate.PostalCode = match.PostalCode
			candidate.City = match.City
			candidate.Country = match.Country
			if err := addressRepo.CreateAddress(ctx, candidate); err != nil {
				return nil, errors.Wrap(err, "failed to create address")
			}
			address = candidate
		}

		if err := basketRepo.AttachAddress(ctx, basket.ID, address.ID); err != nil {
			return nil, errors.Wrap(err, "failed to attach address")
		}
	}

	reloaded, err := basketRepo.FindBasketSessionByID(ctx, basket.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload basket session")
	}

	return reloaded, nil
}

// findAddress runs a matching lookup and treats "not found" as a nil address.
func findAddress(
	ctx context.Context,
	find func(context.Context, entity.AddressMatch) (*entity.Address, error),
	match entity.AddressMatch,
) (*entity.Address, error) {
	address, err := find(ctx, match)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matching address")
	}

	return address, nil
}

// snapshotItems resolves every requested line against the catalog and freezes its name and price.
func (srv *checkoutService) snapshotItems(ctx context.Context, productRepo repository.ProductRepository, inputs []usecase.BasketItemInput) ([]entity.BasketSessionItem, error) {
	products := make(map[uuid.UUID]*entity.Product)
	items := make([]entity.BasketSessionItem, 0, len(inputs))

	for i := range inputs {
		in := &inputs[i]
		if in.Quantity <= 0 {
			return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("quantity must be greater than zero")
		}

		item := entity.BasketSessionItem{
			Kind:         in.Kind,
			Quantity:     in.Quantity,
			Description:  in.Description,
			RefundStatus: entity.RefundStatusNone,
		}

		switch in.Kind {
		case entity.ItemKindLeaf:
			if in.VariantID == nil {
				return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("leaf item requires a variant")
			}
			variant, err := productRepo.FindVariantByID(ctx, *in.VariantID)
			if err != nil {
				return nil, translate(err, "failed to find variant",
					errorMapping{repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound})
			}
			if in.ProductID != nil && *in.ProductID != variant.ProductID {
				return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("variant does not belong to product")
			}

			product, ok := products[variant.ProductID]
			if !ok {
				product, err = productRepo.FindProductByID(ctx, variant.ProductID)
				if err != nil {
					return nil, translate(err, "failed to find product",
						errorMapping{repository.ErrProductNotFound, domainerrors.ErrProductNotFound})
				}
				products[variant.ProductID] = product
			}

			productID, variantID := variant.ProductID, variant.ID
			item.ProductID = &productID
			item.ProductVariantID = &variantID
			item.Name = variantLabel(product, variant)
			item.Price = variant.Price

		case entity.ItemKindComposite:
			if in.PanyenID == nil {
				return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("composite item requires a panyen")
			}
			panyen, err := productRepo.FindPanyenByID(ctx, *in.PanyenID)
			if err != nil {
				return nil, translate(err, "failed to find panyen",
					errorMapping{repository.ErrPanyenNotFound, domainerrors.ErrPanyenNotFound})
			}

			panyenID := panyen.ID
			item.PanyenID = &panyenID
			item.Name = panyen.Name
			item.Price = panyen.Price

		default:
			return nil, domainerrors.ErrInvalidBasketItem.WrapMessage("unknown item kind")
		}

		items = append(items, item)
	}

	return items, nil
}

func variantLabel(product *entity.Product, variant *entity.ProductVariant) string {
	if variant.OptionValue == "" {
		return product.Name
	}

	return product.Name + " - " + variant.OptionValue
}

// GetBasketSessions lists baskets matching the filter.
func (srv *checkoutService) GetBasketSessions(ctx context.Context, filter entity.BasketFilter) ([]*entity.BasketSession, error) {
	baskets, err := srv.basketRepo.ListBasketSessions(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list basket sessions")
	}

	return baskets, nil
}

// GetBasketSessionByID returns one basket.
func (srv *checkoutService) GetBasketSessionByID(ctx context.Context, id uuid.UUID) (*entity.BasketSession, error) {
	basket, err := srv.basketRepo.FindBasketSessionByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find basket session",
			errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
	}

	return basket, nil
}

// Checkout creates the basket, then takes the free path when the wallet covers the total.
// A guest customer is created in the same transaction as its basket.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	basketInput := input.Basket

	var basket *entity.BasketSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.CustomerID != nil {
			basketInput.CustomerID = *input.CustomerID
		} else {
			guest, err := srv.createGuestCustomer(ctx, repoFactory.NewCustomerRepository(), input.Basket.Address)
			if err != nil {
				return err
			}
			basketInput.CustomerID = guest.ID
			basketInput.WalletAmountUsed = decimal.Zero
		}

		created, err := srv.createBasketSession(ctx, repoFactory, &basketInput)
		if err != nil {
			return err
		}
		basket = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Basket session created",
		slog.String("basket_id", basket.ID.String()),
		slog.Int64("order_index", basket.OrderIndex),
		slog.Bool("guest", input.CustomerID == nil),
	)

	output := &usecase.CheckoutOutput{Basket: basket}
	if basket.IsCoveredByWallet() {
		output.Session, err = srv.CreateFreeCheckoutSession(ctx, basket.ID)
		output.Free = true
	} else {
		output.Session, err = srv.CreateCheckoutSession(ctx, basket.ID)
	}
	if err != nil {
		return nil, err
	}

	if output.Free {
		output.Basket.PaymentStatus = entity.PaymentStatusPaid
	}

	return output, nil
}

func (srv *checkoutService) createGuestCustomer(ctx context.Context, customerRepo repository.CustomerRepository, address *usecase.AddressInput) (*entity.Customer, error) {
	guest := &entity.Customer{
		ID:            uuid.New(),
		WalletBalance: decimal.Zero,
	}
	guest.Email = srv.checkout.AnonymousEmailPrefix + guest.ID.String() + anonymousEmailDomain
	if address != nil {
		guest.Name = address.Name
	}

	if err := customerRepo.CreateCustomer(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to create guest customer")
	}

	return guest, nil
}

// CreateCheckoutSession asks the provider for a payment page for the amount due.
func (srv *checkoutService) CreateCheckoutSession(ctx context.Context, basketID uuid.UUID) (*entity.CheckoutSession, error) {
	basket, err := srv.GetBasketSessionByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerrors.ErrBasketAlreadyPaid
	}
	if basket.IsCoveredByWallet() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("basket is fully covered by wallet credit")
	}

	customer, err := srv.customerRepo.FindCustomerByID(ctx, basket.CustomerID)
	if err != nil {
		return nil, translate(err, "failed to find customer",
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
	}

	session := &entity.CheckoutSession{
		ID:              uuid.New(),
		BasketSessionID: basket.ID,
		PaymentStatus:   entity.PaymentStatusPending,
		PaymentAmount:   basket.AmountDue(),
		Provider:        srv.provider.Name(),
	}

	request := service.PaymentRequest{
		CheckoutSessionID: session.ID,
		BasketSessionID:   basket.ID,
		Amount:            session.PaymentAmount,
		Currency:          srv.checkout.Currency,
		SuccessURL:        srv.checkout.SuccessURL,
		CancelURL:         srv.checkout.CancelURL,
	}
	if !customer.IsAnonymous(srv.checkout.AnonymousEmailPrefix) {
		request.CustomerEmail = customer.Email
	}

	providerSession, err := srv.provider.CreateSession(ctx, request)
	if err != nil {
		srv.log(ctx).Error("Payment provider rejected session",
			slog.String("basket_id", basket.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentProviderFailed.WrapMessage(err.Error())
	}
	session.ProviderSessionID = providerSession.ProviderSessionID
	session.RedirectURL = providerSession.RedirectURL
	session.WalletReserved = basket.WalletAmountUsed

	// The wallet share is reserved with the session and given back if the payment fails.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.debitWallet(ctx, repoFactory.NewCustomerRepository(), basket.CustomerID, basket.ID, session.WalletReserved); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.NewCheckoutSessionRepository().CreateCheckoutSession(ctx, session), "failed to create checkout session")
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// CreateFreeCheckoutSession settles the basket with wallet credit only.
func (srv *checkoutService) CreateFreeCheckoutSession(ctx context.Context, basketID uuid.UUID) (*entity.CheckoutSession, error) {
	var session *entity.CheckoutSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		basketRepo := repoFactory.NewBasketRepository()

		basket, err := basketRepo.FindBasketSessionByID(ctx, basketID)
		if err != nil {
			return translate(err, "failed to find basket session",
				errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
		}
		if basket.PaymentStatus == entity.PaymentStatusPaid {
			return domainerrors.ErrBasketAlreadyPaid
		}
		if !basket.IsCoveredByWallet() {
			return domainerrors.ErrWalletDoesNotCoverTotal
		}

		if err := srv.debitWallet(ctx, repoFactory.NewCustomerRepository(), basket.CustomerID, basket.ID, basket.WalletAmountUsed); err != nil {
			return err
		}

		paidAt := srv.now()
		session = &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: basket.ID,
			PaymentStatus:   entity.PaymentStatusPaid,
			PaymentAmount:   decimal.Zero,
			Provider:        constants.PaymentProviderWallet,
			PaidAt:          &paidAt,
		}
		if err := repoFactory.NewCheckoutSessionRepository().CreateCheckoutSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create checkout session")
		}

		return errors.Wrap(basketRepo.UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusPaid), "failed to mark basket paid")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Basket paid with wallet credit", slog.String("basket_id", basketID.String()))

	return session, nil
}

// debitWallet takes a basket's wallet share from the customer's balance and records it.
func (srv *checkoutService) debitWallet(ctx context.Context, customerRepo repository.CustomerRepository, customerID, basketID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}

	if err := customerRepo.DebitWallet(ctx, customerID, amount); err != nil {
		return translate(err, "failed to debit wallet",
			errorMapping{repository.ErrInsufficientWallet, domainerrors.ErrInsufficientWallet},
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
	}

	return srv.recordWalletMovement(ctx, customerRepo, customerID, basketID, amount.Neg(), walletReasonCheckout)
}

// releaseWallet gives a reserved wallet share back after a failed payment.
func (srv *checkoutService) releaseWallet(ctx context.Context, customerRepo repository.CustomerRepository, customerID, basketID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return nil
	}

	if err := customerRepo.CreditWallet(ctx, customerID, amount); err != nil {
		return translate(err, "failed to release wallet reservation",
			errorMapping{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound})
	}

	return srv.recordWalletMovement(ctx, customerRepo, customerID, basketID, amount, walletReasonPaymentFailed)
}

func (srv *checkoutService) recordWalletMovement(ctx context.Context, customerRepo repository.CustomerRepository, customerID, basketID uuid.UUID, amount decimal.Decimal, reason string) error {
	tx := &entity.WalletTransaction{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Amount:          amount,
		Reason:          reason,
		BasketSessionID: &basketID,
		CreatedAt:       srv.now(),
	}

	return errors.Wrap(customerRepo.CreateWalletTransaction(ctx, tx), "failed to record wallet transaction")
}

// GetCheckoutSessionByID returns one checkout session.
func (srv *checkoutService) GetCheckoutSessionByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error) {
	session, err := srv.checkoutRepo.FindCheckoutSessionByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find checkout session",
			errorMapping{repository.ErrCheckoutSessionNotFound, domainerrors.ErrCheckoutSessionNotFound})
	}

	return session, nil
}

// MarkCheckoutSessionAsPaid moves the session and its basket to paid together.
func (srv *checkoutService) MarkCheckoutSessionAsPaid(ctx context.Context, sessionID uuid.UUID, payload json.RawMessage) (*entity.CheckoutSession, error) {
	var result *entity.CheckoutSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		checkoutRepo := repoFactory.NewCheckoutSessionRepository()
		basketRepo := repoFactory.NewBasketRepository()

		session, err := checkoutRepo.FindCheckoutSessionByID(ctx, sessionID)
		if err != nil {
			return translate(err, "failed to find checkout session",
				errorMapping{repository.ErrCheckoutSessionNotFound, domainerrors.ErrCheckoutSessionNotFound})
		}

		if session.IsPaid() {
			if session.SamePayload(payload) {
				result = session

				return nil
			}

			return domainerrors.ErrCheckoutAlreadyPaid
		}

		if err := checkoutRepo.MarkPaid(ctx, session.ID, payload, srv.now()); err != nil {
			return translate(err, "failed to mark checkout session paid",
				errorMapping{repository.ErrCheckoutSessionAlreadyPaid, domainerrors.ErrCheckoutAlreadyPaid})
		}

		basket, err := basketRepo.FindBasketSessionByID(ctx, session.BasketSessionID)
		if err != nil {
			return translate(err, "failed to find basket session",
				errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
		}
		if err := basketRepo.UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusPaid); err != nil {
			return errors.Wrap(err, "failed to mark basket paid")
		}
		if session.PaymentStatus == entity.PaymentStatusFailed {
			srv.retakeWallet(ctx, repoFactory.NewCustomerRepository(), basket, session.WalletReserved)
		}

		result, err = checkoutRepo.FindCheckoutSessionByID(ctx, session.ID)

		return errors.Wrap(err, "failed to reload checkout session")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout session paid",
		slog.String("checkout_session_id", sessionID.String()),
		slog.String("basket_id", result.BasketSessionID.String()),
	)

	return result, nil
}

// retakeWallet debits again a reservation released by an earlier failure notice.
// The provider has collected the rest by now, so a short balance is logged rather than refused.
func (srv *checkoutService) retakeWallet(ctx context.Context, customerRepo repository.CustomerRepository, basket *entity.BasketSession, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}

	err := customerRepo.DebitWallet(ctx, basket.CustomerID, amount)
	if err == nil {
		err = srv.recordWalletMovement(ctx, customerRepo, basket.CustomerID, basket.ID, amount.Neg(), walletReasonCheckout)
	}
	if err != nil {
		srv.log(ctx).Error("Wallet share of a late payment could not be taken",
			slog.String("basket_id", basket.ID.String()),
			slog.String("amount", amount.String()),
			slog.Any("error", err),
		)
	}
}

// HandlePaymentWebhook applies a verified provider outcome.
func (srv *checkoutService) HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.provider.VerifyWebhook(payload, signature)
	if err != nil {
		srv.log(ctx).Warn("Rejected payment webhook", slog.Any("error", err))

		return domainerrors.ErrInvalidWebhookSignature
	}

	session, err := srv.checkoutRepo.FindCheckoutSessionByProviderID(ctx, event.ProviderSessionID)
	if err != nil {
		return translate(err, "failed to find checkout session",
			errorMapping{repository.ErrCheckoutSessionNotFound, domainerrors.ErrCheckoutSessionNotFound})
	}

	switch event.Type {
	case service.PaymentEventSucceeded:
		_, err = srv.MarkCheckoutSessionAsPaid(ctx, session.ID, event.Payload)

		return err
	case service.PaymentEventFailed:
		return srv.markCheckoutFailed(ctx, session)
	default:
		return errors.Errorf("unsupported payment event %q", event.Type)
	}
}

// markCheckoutFailed records a failed payment and gives the reserved wallet share back.
// Repeated failure notices and failures after payment change nothing.
func (srv *checkoutService) markCheckoutFailed(ctx context.Context, session *entity.CheckoutSession) error {
	released := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.NewCheckoutSessionRepository().MarkFailed(ctx, session.ID)
		if errors.Is(err, repository.ErrCheckoutSessionNotPending) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to mark checkout session failed")
		}

		basketRepo := repoFactory.NewBasketRepository()
		basket, err := basketRepo.FindBasketSessionByID(ctx, session.BasketSessionID)
		if err != nil {
			return translate(err, "failed to find basket session",
				errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
		}
		if err := basketRepo.UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusFailed); err != nil {
			return errors.Wrap(err, "failed to mark basket failed")
		}
		released = session.WalletReserved.IsPositive()

		return srv.releaseWallet(ctx, repoFactory.NewCustomerRepository(), basket.CustomerID, basket.ID, session.WalletReserved)
	})
	if err != nil {
		return err
	}

	if released {
		srv.log(ctx).Info("Wallet reservation released",
			slog.String("checkout_session_id", session.ID.String()),
			slog.String("amount", session.WalletReserved.String()),
		)
	}

	return nil
}

// SetDeliveryDate schedules a basket.
func (srv *checkoutService) SetDeliveryDate(ctx context.Context, basketID uuid.UUID, day time.Time) error {
	if err := srv.basketRepo.SetDeliveryDate(ctx, basketID, day); err != nil {
		return translate(err, "failed to set delivery date",
			errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
	}

	return nil
}

// MarkDelivered stamps a paid basket as handed over by the deliverer.
func (srv *checkoutService) MarkDelivered(ctx context.Context, basketID, delivererID uuid.UUID) (*entity.BasketSession, error) {
	basket, err := srv.GetBasketSessionByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket.PaymentStatus != entity.PaymentStatusPaid {
		return nil, domainerrors.ErrBasketNotPaid
	}

	if err := srv.basketRepo.MarkDelivered(ctx, basketID, delivererID, srv.now()); err != nil {
		return nil, translate(err, "failed to mark basket delivered",
			errorMapping{repository.ErrBasketAlreadyDelivered, domainerrors.ErrAlreadyDelivered},
			errorMapping{repository.ErrBasketNotFound, domainerrors.ErrBasketNotFound})
	}

	return srv.GetBasketSessionByID(ctx, basketID)
}

// UpdateBasketItemRefundStatus changes the refund status of an item of a paid basket.
func (srv *checkoutService) UpdateBasketItemRefundStatus(ctx context.Context, itemID uuid.UUID, status entity.RefundStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown refund status")
	}

	item, err := srv.basketRepo.FindBasketItemByID(ctx, itemID)
	if err != nil {
		return translate(err, "failed to find basket item",
			errorMapping{repository.ErrBasketItemNotFound, domainerrors.ErrBasketItemNotFound})
	}

	basket, err := srv.GetBasketSessionByID(ctx, item.BasketSessionID)
	if err != nil {
		return err
	}
	if basket.PaymentStatus != entity.PaymentStatusPaid {
		return domainerrors.ErrBasketNotPaid
	}

	if err := srv.basketRepo.UpdateItemRefundStatus(ctx, itemID, status); err != nil {
		return translate(err, "failed to update refund status",
			errorMapping{repository.ErrBasketItemNotFound, domainerrors.ErrBasketItemNotFound})
	}

	return nil
}
