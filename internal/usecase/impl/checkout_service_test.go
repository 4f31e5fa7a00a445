package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service      *checkoutService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	addressRepo  *mockRepo.MockAddressRepository
	basketRepo   *mockRepo.MockBasketRepository
	checkoutRepo *mockRepo.MockCheckoutSessionRepository
	customerRepo *mockRepo.MockCustomerRepository
	productRepo  *mockRepo.MockProductRepository
	provider     *mockSvc.MockPaymentProvider
	now          time.Time
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	f := checkoutServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		addressRepo:  mockRepo.NewMockAddressRepository(t),
		basketRepo:   mockRepo.NewMockBasketRepository(t),
		checkoutRepo: mockRepo.NewMockCheckoutSessionRepository(t),
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		provider:     mockSvc.NewMockPaymentProvider(t),
		now:          time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC),
	}

	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().NewAddressRepository().Return(f.addressRepo).Maybe()
	f.factory.EXPECT().NewBasketRepository().Return(f.basketRepo).Maybe()
	f.factory.EXPECT().NewCheckoutSessionRepository().Return(f.checkoutRepo).Maybe()
	f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo).Maybe()
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo).Maybe()

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:    f.txManager,
		BasketRepo:   f.basketRepo,
		CheckoutRepo: f.checkoutRepo,
		CustomerRepo: f.customerRepo,
		Provider:     f.provider,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	f.service = svc.(*checkoutService)
	f.service.now = fixedClock(f.now)

	return f
}

func decimalEq(want decimal.Decimal) any {
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}

type catalogFixture struct {
	product *entity.Product
	variant *entity.ProductVariant
}

func newCatalogFixture(price int64) catalogFixture {
	productID := uuid.New()
	variant := entity.ProductVariant{
		ID:          uuid.New(),
		ProductID:   productID,
		OptionValue: "1kg",
		Price:       decimal.NewFromInt(price),
	}

	return catalogFixture{
		product: &entity.Product{ID: productID, Name: "Tomatoes", Variants: []entity.ProductVariant{variant}},
		variant: &variant,
	}
}

func (c catalogFixture) expect(f checkoutServiceFixtures) {
	f.productRepo.EXPECT().FindVariantByID(mock.Anything, c.variant.ID).Return(c.variant, nil)
	f.productRepo.EXPECT().FindProductByID(mock.Anything, c.product.ID).Return(c.product, nil)
}

func (c catalogFixture) item(quantity int) usecase.BasketItemInput {
	return usecase.BasketItemInput{
		Kind:      entity.ItemKindLeaf,
		ProductID: &c.product.ID,
		VariantID: &c.variant.ID,
		Quantity:  quantity,
	}
}

func testAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Name:       "Home",
		Address:    " 12 rue des Lilas ",
		PostalCode: "75011",
		City:       "Paris",
		Country:    "FR",
		Type:       entity.AddressTypeDelivery,
	}
}

func TestCheckoutService_CreateBasketSession_ReusesMatchingAddress(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Email: "jane@example.com", WalletBalance: decimal.Zero}
	catalog := newCatalogFixture(3)
	existing := &entity.Address{ID: uuid.New(), CustomerID: &customer.ID}
	basketID := uuid.New()

	f.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	catalog.expect(f)
	f.addressRepo.EXPECT().
		FindMatchingAddress(ctx, mock.MatchedBy(func(m entity.AddressMatch) bool {
			return m.CustomerID != nil && *m.CustomerID == customer.ID && m.Address == "12 rue des Lilas"
		})).
		Return(existing, nil)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.MatchedBy(func(b *entity.BasketSession) bool {
			return b.AddressID != nil && *b.AddressID == existing.ID
		})).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = basketID
			b.OrderIndex = 7

			return nil
		})
	f.basketRepo.EXPECT().
		FindBasketSessionByID(ctx, basketID).
		Return(&entity.BasketSession{ID: basketID, OrderIndex: 7, AddressID: &existing.ID, Total: decimal.NewFromInt(11)}, nil)

	basket, err := f.service.CreateBasketSession(ctx, &usecase.CreateBasketInput{
		CustomerID:   customer.ID,
		Items:        []usecase.BasketItemInput{catalog.item(3)},
		Address:      testAddressInput(),
		DeliveryCost: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, *basket.AddressID)
	assert.Equal(t, int64(7), basket.OrderIndex)
}

func TestCheckoutService_CreateBasketSession_SnapshotsPricesAndTotal(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Email: "jane@example.com"}
	catalog := newCatalogFixture(3)
	panyen := &entity.Panyen{ID: uuid.New(), Name: "Summer box", Price: decimal.RequireFromString("12.50")}

	var created *entity.BasketSession
	f.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	catalog.expect(f)
	f.productRepo.EXPECT().FindPanyenByID(ctx, panyen.ID).Return(panyen, nil)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.AnythingOfType("*entity.BasketSession")).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = uuid.New()
			created = b

			return nil
		})
	f.basketRepo.EXPECT().
		FindBasketSessionByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.BasketSession, error) { return created, nil })

	basket, err := f.service.CreateBasketSession(ctx, &usecase.CreateBasketInput{
		CustomerID: customer.ID,
		Items: []usecase.BasketItemInput{
			catalog.item(2),
			{Kind: entity.ItemKindComposite, PanyenID: &panyen.ID, Quantity: 1},
		},
		DeliveryCost: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	require.Len(t, basket.Items, 2)
	assert.Equal(t, "Tomatoes - 1kg", basket.Items[0].Name)
	assert.True(t, basket.Items[0].Price.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Summer box", basket.Items[1].Name)
	assert.True(t, basket.Total.Equal(decimal.RequireFromString("22.50")), basket.Total.String())
	assert.Equal(t, entity.PaymentStatusPending, basket.PaymentStatus)
	assert.Nil(t, basket.AddressID)
}

func TestCheckoutService_CreateBasketSession_CreatesAddressAfterPrimaryRecheck(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Email: "jane@example.com"}
	catalog := newCatalogFixture(5)
	basketID := uuid.New()
	var createdAddress *entity.Address

	f.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	catalog.expect(f)
	f.addressRepo.EXPECT().FindMatchingAddress(ctx, mock.Anything).Return(nil, repository.ErrAddressNotFound)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.MatchedBy(func(b *entity.BasketSession) bool { return b.AddressID == nil })).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = basketID

			return nil
		})
	f.addressRepo.EXPECT().FindMatchingAddressOnPrimary(ctx, mock.Anything).Return(nil, repository.ErrAddressNotFound)
	f.addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, a *entity.Address) error {
			createdAddress = a

			return nil
		})
	f.basketRepo.EXPECT().
		AttachAddress(ctx, basketID, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, addressID uuid.UUID) error {
			assert.Equal(t, createdAddress.ID, addressID)

			return nil
		})
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basketID).Return(&entity.BasketSession{ID: basketID}, nil)

	_, err := f.service.CreateBasketSession(ctx, &usecase.CreateBasketInput{
		CustomerID: customer.ID,
		Items:      []usecase.BasketItemInput{catalog.item(1)},
		Address:    testAddressInput(),
	})
	require.NoError(t, err)
	require.NotNil(t, createdAddress)
	assert.Equal(t, "12 rue des Lilas", createdAddress.Address)
	assert.Equal(t, &customer.ID, createdAddress.CustomerID)
}

func TestCheckoutService_CreateBasketSession_AttachesAddressFoundOnPrimary(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Email: testAnonymousPrefix + "abc@guest.invalid"}
	catalog := newCatalogFixture(5)
	basketID := uuid.New()
	concurrent := &entity.Address{ID: uuid.New()}

	f.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	catalog.expect(f)
	anonymousScope := mock.MatchedBy(func(m entity.AddressMatch) bool { return m.CustomerID == nil })
	f.addressRepo.EXPECT().FindMatchingAddress(ctx, anonymousScope).Return(nil, repository.ErrAddressNotFound)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = basketID

			return nil
		})
	f.addressRepo.EXPECT().FindMatchingAddressOnPrimary(ctx, anonymousScope).Return(concurrent, nil)
	f.basketRepo.EXPECT().AttachAddress(ctx, basketID, concurrent.ID).Return(nil)
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basketID).Return(&entity.BasketSession{ID: basketID, AddressID: &concurrent.ID}, nil)

	basket, err := f.service.CreateBasketSession(ctx, &usecase.CreateBasketInput{
		CustomerID: customer.ID,
		Items:      []usecase.BasketItemInput{catalog.item(1)},
		Address:    testAddressInput(),
	})
	require.NoError(t, err)
	assert.Equal(t, concurrent.ID, *basket.AddressID)
}

func TestCheckoutService_CreateBasketSession_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		items   func(c catalogFixture) []usecase.BasketItemInput
		wallet  decimal.Decimal
		setup   func(f checkoutServiceFixtures, c catalogFixture)
		wantErr error
	}{
		{
			name:    "empty basket",
			items:   func(catalogFixture) []usecase.BasketItemInput { return nil },
			wantErr: domainerrors.ErrInvalidBasketItem,
		},
		{
			name:  "zero quantity",
			items: func(c catalogFixture) []usecase.BasketItemInput { return []usecase.BasketItemInput{c.item(0)} },
			setup: func(f checkoutServiceFixtures, _ catalogFixture) {
				f.customerRepo.EXPECT().FindCustomerByID(mock.Anything, mock.Anything).Return(&entity.Customer{ID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrInvalidBasketItem,
		},
		{
			name:  "unknown variant",
			items: func(c catalogFixture) []usecase.BasketItemInput { return []usecase.BasketItemInput{c.item(1)} },
			setup: func(f checkoutServiceFixtures, c catalogFixture) {
				f.customerRepo.EXPECT().FindCustomerByID(mock.Anything, mock.Anything).Return(&entity.Customer{ID: uuid.New()}, nil)
				f.productRepo.EXPECT().FindVariantByID(mock.Anything, c.variant.ID).Return(nil, repository.ErrVariantNotFound)
			},
			wantErr: domainerrors.ErrVariantNotFound,
		},
		{
			name:  "unknown customer",
			items: func(c catalogFixture) []usecase.BasketItemInput { return []usecase.BasketItemInput{c.item(1)} },
			setup: func(f checkoutServiceFixtures, _ catalogFixture) {
				f.customerRepo.EXPECT().FindCustomerByID(mock.Anything, mock.Anything).Return(nil, repository.ErrCustomerNotFound)
			},
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name:   "wallet above balance",
			items:  func(c catalogFixture) []usecase.BasketItemInput { return []usecase.BasketItemInput{c.item(2)} },
			wallet: decimal.NewFromInt(5),
			setup: func(f checkoutServiceFixtures, c catalogFixture) {
				f.customerRepo.EXPECT().FindCustomerByID(mock.Anything, mock.Anything).
					Return(&entity.Customer{ID: uuid.New(), WalletBalance: decimal.NewFromInt(1)}, nil)
				c.expect(f)
			},
			wantErr: domainerrors.ErrInsufficientWallet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCheckoutService(t)
			catalog := newCatalogFixture(3)
			if tt.setup != nil {
				tt.setup(f, catalog)
			}

			_, err := f.service.CreateBasketSession(context.Background(), &usecase.CreateBasketInput{
				CustomerID:       uuid.New(),
				Items:            tt.items(catalog),
				WalletAmountUsed: tt.wallet,
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckoutService_Checkout_WalletCoveredTakesFreePath(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: uuid.New(), Email: "jane@example.com", WalletBalance: decimal.NewFromInt(50)}
	catalog := newCatalogFixture(4)
	basketID := uuid.New()
	stored := &entity.BasketSession{
		ID:               basketID,
		CustomerID:       customer.ID,
		Total:            decimal.NewFromInt(8),
		WalletAmountUsed: decimal.NewFromInt(8),
		PaymentStatus:    entity.PaymentStatusPending,
	}

	f.customerRepo.EXPECT().FindCustomerByID(ctx, customer.ID).Return(customer, nil)
	catalog.expect(f)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.MatchedBy(func(b *entity.BasketSession) bool {
			return b.WalletAmountUsed.Equal(decimal.NewFromInt(8))
		})).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = basketID

			return nil
		})
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basketID).Return(stored, nil)
	f.customerRepo.EXPECT().DebitWallet(ctx, customer.ID, decimalEq(decimal.NewFromInt(8))).Return(nil)
	f.customerRepo.EXPECT().
		CreateWalletTransaction(ctx, mock.MatchedBy(func(tx *entity.WalletTransaction) bool {
			return tx.Amount.Equal(decimal.NewFromInt(-8)) && *tx.BasketSessionID == basketID
		})).
		Return(nil)
	f.checkoutRepo.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.Provider == constants.PaymentProviderWallet && s.IsPaid() && s.PaymentAmount.IsZero()
		})).
		Return(nil)
	f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basketID, entity.PaymentStatusPaid).Return(nil)

	// Capped at the total: the extra credit is not spent.
	out, err := f.service.Checkout(ctx, &usecase.CheckoutInput{
		CustomerID: &customer.ID,
		Basket: usecase.CreateBasketInput{
			Items:            []usecase.BasketItemInput{catalog.item(2)},
			WalletAmountUsed: decimal.NewFromInt(20),
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Free)
	assert.Equal(t, constants.PaymentProviderWallet, out.Session.Provider)
	assert.Equal(t, entity.PaymentStatusPaid, out.Basket.PaymentStatus)
	f.provider.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_AnonymousCustomerGoesToProvider(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	catalog := newCatalogFixture(6)
	basketID := uuid.New()
	var guest *entity.Customer

	f.customerRepo.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		RunAndReturn(func(_ context.Context, c *entity.Customer) error {
			guest = c

			return nil
		})
	f.customerRepo.EXPECT().
		FindCustomerByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Customer, error) { return guest, nil })
	catalog.expect(f)
	f.basketRepo.EXPECT().
		CreateBasketSession(ctx, mock.MatchedBy(func(b *entity.BasketSession) bool {
			return b.WalletAmountUsed.IsZero() && b.CustomerID == guest.ID
		})).
		RunAndReturn(func(_ context.Context, b *entity.BasketSession) error {
			b.ID = basketID

			return nil
		})
	f.basketRepo.EXPECT().
		FindBasketSessionByID(ctx, basketID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.BasketSession, error) {
			return &entity.BasketSession{
				ID:            basketID,
				CustomerID:    guest.ID,
				Total:         decimal.NewFromInt(6),
				PaymentStatus: entity.PaymentStatusPending,
			}, nil
		})
	f.provider.EXPECT().Name().Return(constants.PaymentProviderSandbox)
	f.provider.EXPECT().
		CreateSession(ctx, mock.MatchedBy(func(req service.PaymentRequest) bool {
			return req.CustomerEmail == "" && req.Amount.Equal(decimal.NewFromInt(6)) && req.BasketSessionID == basketID
		})).
		Return(&service.PaymentSession{ProviderSessionID: "ps_1", RedirectURL: "https://pay.test/ps_1"}, nil)
	f.checkoutRepo.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.ProviderSessionID == "ps_1" && s.PaymentStatus == entity.PaymentStatusPending && s.WalletReserved.IsZero()
		})).
		Return(nil)

	out, err := f.service.Checkout(ctx, &usecase.CheckoutInput{
		Basket: usecase.CreateBasketInput{
			Items:            []usecase.BasketItemInput{catalog.item(1)},
			WalletAmountUsed: decimal.NewFromInt(3),
		},
	})
	require.NoError(t, err)
	assert.False(t, out.Free)
	assert.Equal(t, "https://pay.test/ps_1", out.Session.RedirectURL)
	require.NotNil(t, guest)
	assert.True(t, guest.IsAnonymous(testAnonymousPrefix))
}

func TestCheckoutService_Checkout_GuestSharesBasketTransaction(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txCustomers := mockRepo.NewMockCustomerRepository(t)
	txProducts := mockRepo.NewMockProductRepository(t)
	catalog := newCatalogFixture(6)

	var created *entity.Customer
	rollback := errors.New("rolled back")
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			err := fn(factory)
			require.Error(t, err)
			require.NotNil(t, created, "guest must be written inside the basket transaction")

			return errors.Wrap(rollback, err.Error())
		}).
		Once()
	factory.EXPECT().NewCustomerRepository().Return(txCustomers)
	factory.EXPECT().NewAddressRepository().Return(mockRepo.NewMockAddressRepository(t))
	factory.EXPECT().NewBasketRepository().Return(mockRepo.NewMockBasketRepository(t))
	factory.EXPECT().NewProductRepository().Return(txProducts)
	txCustomers.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		RunAndReturn(func(_ context.Context, c *entity.Customer) error {
			created = c

			return nil
		})
	txCustomers.EXPECT().
		FindCustomerByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Customer, error) { return created, nil })
	txProducts.EXPECT().FindVariantByID(ctx, catalog.variant.ID).Return(nil, repository.ErrVariantNotFound)

	// Repositories outside the transaction carry no expectations.
	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager:    txManager,
		BasketRepo:   mockRepo.NewMockBasketRepository(t),
		CheckoutRepo: mockRepo.NewMockCheckoutSessionRepository(t),
		CustomerRepo: mockRepo.NewMockCustomerRepository(t),
		Provider:     mockSvc.NewMockPaymentProvider(t),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	_, err := svc.Checkout(ctx, &usecase.CheckoutInput{
		Basket: usecase.CreateBasketInput{Items: []usecase.BasketItemInput{catalog.item(1)}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rollback), "got %v", err)
}

func TestCheckoutService_CreateCheckoutSession_ProviderFailure(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	basket := &entity.BasketSession{ID: uuid.New(), CustomerID: uuid.New(), Total: decimal.NewFromInt(10)}
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
	f.customerRepo.EXPECT().FindCustomerByID(ctx, basket.CustomerID).Return(&entity.Customer{ID: basket.CustomerID}, nil)
	f.provider.EXPECT().Name().Return(constants.PaymentProviderHosted)
	f.provider.EXPECT().CreateSession(ctx, mock.Anything).Return(nil, errors.New("gateway timeout"))

	_, err := f.service.CreateCheckoutSession(ctx, basket.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentProviderFailed))
}

func TestCheckoutService_CreateCheckoutSession_ReservesWalletShare(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	basket := &entity.BasketSession{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		Total:            decimal.NewFromInt(10),
		WalletAmountUsed: decimal.NewFromInt(4),
		PaymentStatus:    entity.PaymentStatusPending,
	}
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
	f.customerRepo.EXPECT().FindCustomerByID(ctx, basket.CustomerID).Return(&entity.Customer{ID: basket.CustomerID, Email: "jane@example.com"}, nil)
	f.provider.EXPECT().Name().Return(constants.PaymentProviderHosted)
	f.provider.EXPECT().
		CreateSession(ctx, mock.MatchedBy(func(req service.PaymentRequest) bool { return req.Amount.Equal(decimal.NewFromInt(6)) })).
		Return(&service.PaymentSession{ProviderSessionID: "ps_2", RedirectURL: "https://pay.test/ps_2"}, nil)
	f.customerRepo.EXPECT().DebitWallet(ctx, basket.CustomerID, decimalEq(decimal.NewFromInt(4))).Return(nil)
	f.customerRepo.EXPECT().
		CreateWalletTransaction(ctx, mock.MatchedBy(func(tx *entity.WalletTransaction) bool {
			return tx.Amount.Equal(decimal.NewFromInt(-4)) && *tx.BasketSessionID == basket.ID && tx.Reason == walletReasonCheckout
		})).
		Return(nil)
	f.checkoutRepo.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(s *entity.CheckoutSession) bool {
			return s.WalletReserved.Equal(decimal.NewFromInt(4)) && s.PaymentAmount.Equal(decimal.NewFromInt(6))
		})).
		Return(nil)

	session, err := f.service.CreateCheckoutSession(ctx, basket.ID)
	require.NoError(t, err)
	assert.True(t, session.WalletReserved.Equal(decimal.NewFromInt(4)))
	assert.Equal(t, "https://pay.test/ps_2", session.RedirectURL)
}

func TestCheckoutService_CreateCheckoutSession_SpentWalletKeepsNoSession(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	basket := &entity.BasketSession{
		ID:               uuid.New(),
		CustomerID:       uuid.New(),
		Total:            decimal.NewFromInt(10),
		WalletAmountUsed: decimal.NewFromInt(4),
	}
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
	f.customerRepo.EXPECT().FindCustomerByID(ctx, basket.CustomerID).Return(&entity.Customer{ID: basket.CustomerID}, nil)
	f.provider.EXPECT().Name().Return(constants.PaymentProviderHosted)
	f.provider.EXPECT().CreateSession(ctx, mock.Anything).Return(&service.PaymentSession{ProviderSessionID: "ps_3"}, nil)
	f.customerRepo.EXPECT().DebitWallet(ctx, basket.CustomerID, mock.Anything).Return(repository.ErrInsufficientWallet)

	_, err := f.service.CreateCheckoutSession(ctx, basket.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientWallet), "got %v", err)
	f.checkoutRepo.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateCheckoutSession_RejectsSettledBaskets(t *testing.T) {
	tests := []struct {
		name    string
		basket  *entity.BasketSession
		wantErr error
	}{
		{
			name:    "already paid",
			basket:  &entity.BasketSession{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid, Total: decimal.NewFromInt(5)},
			wantErr: domainerrors.ErrBasketAlreadyPaid,
		},
		{
			name:    "covered by wallet",
			basket:  &entity.BasketSession{ID: uuid.New(), Total: decimal.NewFromInt(5), WalletAmountUsed: decimal.NewFromInt(5)},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCheckoutService(t)
			f.basketRepo.EXPECT().FindBasketSessionByID(mock.Anything, tt.basket.ID).Return(tt.basket, nil)

			_, err := f.service.CreateCheckoutSession(context.Background(), tt.basket.ID)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCheckoutService_CreateFreeCheckoutSession_NotCovered(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	basket := &entity.BasketSession{ID: uuid.New(), Total: decimal.NewFromInt(10), WalletAmountUsed: decimal.NewFromInt(4)}
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)

	_, err := f.service.CreateFreeCheckoutSession(ctx, basket.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrWalletDoesNotCoverTotal))
}

func TestCheckoutService_MarkCheckoutSessionAsPaid(t *testing.T) {
	payload := json.RawMessage(`{"type":"payment.succeeded","session_id":"ps_1"}`)

	t.Run("first confirmation settles basket without touching the reserved wallet", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: uuid.New(),
			PaymentStatus:   entity.PaymentStatusPending,
			WalletReserved:  decimal.NewFromInt(2),
		}
		basket := &entity.BasketSession{ID: session.BasketSessionID, CustomerID: uuid.New(), WalletAmountUsed: decimal.NewFromInt(2)}
		paid := *session
		paid.PaymentStatus = entity.PaymentStatusPaid
		paid.SuccessPayload = payload

		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil).Once()
		f.checkoutRepo.EXPECT().MarkPaid(ctx, session.ID, payload, f.now).Return(nil)
		f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
		f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusPaid).Return(nil)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(&paid, nil).Once()

		got, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, payload)
		require.NoError(t, err)
		assert.True(t, got.IsPaid())
		f.customerRepo.AssertNotCalled(t, "DebitWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payment after a failure takes the released share again", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: uuid.New(),
			PaymentStatus:   entity.PaymentStatusFailed,
			WalletReserved:  decimal.NewFromInt(2),
		}
		basket := &entity.BasketSession{ID: session.BasketSessionID, CustomerID: uuid.New(), WalletAmountUsed: decimal.NewFromInt(2)}
		paid := *session
		paid.PaymentStatus = entity.PaymentStatusPaid

		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil).Once()
		f.checkoutRepo.EXPECT().MarkPaid(ctx, session.ID, payload, f.now).Return(nil)
		f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
		f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusPaid).Return(nil)
		f.customerRepo.EXPECT().DebitWallet(ctx, basket.CustomerID, decimalEq(decimal.NewFromInt(2))).Return(nil)
		f.customerRepo.EXPECT().
			CreateWalletTransaction(ctx, mock.MatchedBy(func(tx *entity.WalletTransaction) bool {
				return tx.Amount.Equal(decimal.NewFromInt(-2)) && tx.Reason == walletReasonCheckout
			})).
			Return(nil)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(&paid, nil).Once()

		got, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, payload)
		require.NoError(t, err)
		assert.True(t, got.IsPaid())
	})

	t.Run("late payment with a spent wallet still settles", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: uuid.New(),
			PaymentStatus:   entity.PaymentStatusFailed,
			WalletReserved:  decimal.NewFromInt(2),
		}
		basket := &entity.BasketSession{ID: session.BasketSessionID, CustomerID: uuid.New()}
		paid := *session
		paid.PaymentStatus = entity.PaymentStatusPaid

		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil).Once()
		f.checkoutRepo.EXPECT().MarkPaid(ctx, session.ID, payload, f.now).Return(nil)
		f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
		f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusPaid).Return(nil)
		f.customerRepo.EXPECT().DebitWallet(ctx, basket.CustomerID, mock.Anything).Return(repository.ErrInsufficientWallet)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(&paid, nil).Once()

		_, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, payload)
		require.NoError(t, err)
	})

	t.Run("same payload is a no-op", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:             uuid.New(),
			PaymentStatus:  entity.PaymentStatusPaid,
			SuccessPayload: payload,
		}
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil)

		reformatted := json.RawMessage(`{ "type": "payment.succeeded", "session_id": "ps_1" }`)
		got, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, reformatted)
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("redelivery matches payload stored with reordered keys", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		// jsonb hands keys back sorted by length then bytes, with a space after each separator.
		session := &entity.CheckoutSession{
			ID:             uuid.New(),
			PaymentStatus:  entity.PaymentStatusPaid,
			SuccessPayload: json.RawMessage(`{"type": "payment.succeeded", "amount": "10.00", "session_id": "cs_1"}`),
		}
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil)

		raw := json.RawMessage(`{"type":"payment.succeeded","session_id":"cs_1","amount":"10.00"}`)
		got, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, raw)
		require.NoError(t, err)
		assert.Equal(t, session, got)
		f.checkoutRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("different payload is rejected", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:             uuid.New(),
			PaymentStatus:  entity.PaymentStatusPaid,
			SuccessPayload: payload,
		}
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(ctx, session.ID).Return(session, nil)

		_, err := f.service.MarkCheckoutSessionAsPaid(ctx, session.ID, json.RawMessage(`{"session_id":"other"}`))
		assert.True(t, errors.Is(err, domainerrors.ErrCheckoutAlreadyPaid))
	})

	t.Run("unknown session", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByID(mock.Anything, mock.Anything).Return(nil, repository.ErrCheckoutSessionNotFound)

		_, err := f.service.MarkCheckoutSessionAsPaid(context.Background(), uuid.New(), payload)
		assert.True(t, errors.Is(err, domainerrors.ErrCheckoutSessionNotFound))
	})
}

func TestCheckoutService_HandlePaymentWebhook(t *testing.T) {
	t.Run("invalid signature", func(t *testing.T) {
		f := createTestCheckoutService(t)
		f.provider.EXPECT().VerifyWebhook([]byte("{}"), "bad").Return(nil, errors.New("signature mismatch"))

		err := f.service.HandlePaymentWebhook(context.Background(), []byte("{}"), "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidWebhookSignature))
	})

	t.Run("failure after payment is ignored", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid, WalletReserved: decimal.NewFromInt(3)}
		f.provider.EXPECT().VerifyWebhook(mock.Anything, "sig").
			Return(&service.PaymentEvent{Type: service.PaymentEventFailed, ProviderSessionID: "ps_9"}, nil)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByProviderID(ctx, "ps_9").Return(session, nil)
		f.checkoutRepo.EXPECT().MarkFailed(ctx, session.ID).Return(repository.ErrCheckoutSessionNotPending)

		require.NoError(t, f.service.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
		f.customerRepo.AssertNotCalled(t, "CreditWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("failure marks session and basket failed and releases the wallet share", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: uuid.New(),
			PaymentStatus:   entity.PaymentStatusPending,
			WalletReserved:  decimal.NewFromInt(3),
		}
		basket := &entity.BasketSession{ID: session.BasketSessionID, CustomerID: uuid.New(), WalletAmountUsed: decimal.NewFromInt(3)}
		f.provider.EXPECT().VerifyWebhook(mock.Anything, "sig").
			Return(&service.PaymentEvent{Type: service.PaymentEventFailed, ProviderSessionID: "ps_9"}, nil)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByProviderID(ctx, "ps_9").Return(session, nil)
		f.checkoutRepo.EXPECT().MarkFailed(ctx, session.ID).Return(nil)
		f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil)
		f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusFailed).Return(nil)
		f.customerRepo.EXPECT().CreditWallet(ctx, basket.CustomerID, decimalEq(decimal.NewFromInt(3))).Return(nil).Once()
		f.customerRepo.EXPECT().
			CreateWalletTransaction(ctx, mock.MatchedBy(func(tx *entity.WalletTransaction) bool {
				return tx.Amount.Equal(decimal.NewFromInt(3)) && tx.Reason == walletReasonPaymentFailed
			})).
			Return(nil).
			Once()

		require.NoError(t, f.service.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
	})

	t.Run("repeated failure releases nothing twice", func(t *testing.T) {
		f := createTestCheckoutService(t)
		ctx := context.Background()

		session := &entity.CheckoutSession{
			ID:              uuid.New(),
			BasketSessionID: uuid.New(),
			PaymentStatus:   entity.PaymentStatusPending,
			WalletReserved:  decimal.NewFromInt(3),
		}
		basket := &entity.BasketSession{ID: session.BasketSessionID, CustomerID: uuid.New()}
		f.provider.EXPECT().VerifyWebhook(mock.Anything, "sig").
			Return(&service.PaymentEvent{Type: service.PaymentEventFailed, ProviderSessionID: "ps_9"}, nil)
		f.checkoutRepo.EXPECT().FindCheckoutSessionByProviderID(ctx, "ps_9").Return(session, nil)
		f.checkoutRepo.EXPECT().MarkFailed(ctx, session.ID).Return(nil).Once()
		f.checkoutRepo.EXPECT().MarkFailed(ctx, session.ID).Return(repository.ErrCheckoutSessionNotPending).Once()
		f.basketRepo.EXPECT().FindBasketSessionByID(ctx, basket.ID).Return(basket, nil).Once()
		f.basketRepo.EXPECT().UpdatePaymentStatus(ctx, basket.ID, entity.PaymentStatusFailed).Return(nil).Once()
		f.customerRepo.EXPECT().CreditWallet(ctx, basket.CustomerID, mock.Anything).Return(nil).Once()
		f.customerRepo.EXPECT().CreateWalletTransaction(ctx, mock.Anything).Return(nil).Once()

		require.NoError(t, f.service.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
		require.NoError(t, f.service.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
	})
}

func TestCheckoutService_MarkDelivered(t *testing.T) {
	t.Run("unpaid basket", func(t *testing.T) {
		f := createTestCheckoutService(t)
		basket := &entity.BasketSession{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPending}
		f.basketRepo.EXPECT().FindBasketSessionByID(mock.Anything, basket.ID).Return(basket, nil)

		_, err := f.service.MarkDelivered(context.Background(), basket.ID, uuid.New())
		assert.True(t, errors.Is(err, domainerrors.ErrBasketNotPaid))
	})

	t.Run("already delivered", func(t *testing.T) {
		f := createTestCheckoutService(t)
		delivererID := uuid.New()
		basket := &entity.BasketSession{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPaid}
		f.basketRepo.EXPECT().FindBasketSessionByID(mock.Anything, basket.ID).Return(basket, nil)
		f.basketRepo.EXPECT().MarkDelivered(mock.Anything, basket.ID, delivererID, f.now).Return(repository.ErrBasketAlreadyDelivered)

		_, err := f.service.MarkDelivered(context.Background(), basket.ID, delivererID)
		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyDelivered))
	})
}

func TestCheckoutService_UpdateBasketItemRefundStatus(t *testing.T) {
	f := createTestCheckoutService(t)
	ctx := context.Background()

	item := &entity.BasketSessionItem{ID: uuid.New(), BasketSessionID: uuid.New()}
	f.basketRepo.EXPECT().FindBasketItemByID(ctx, item.ID).Return(item, nil)
	f.basketRepo.EXPECT().FindBasketSessionByID(ctx, item.BasketSessionID).
		Return(&entity.BasketSession{ID: item.BasketSessionID, PaymentStatus: entity.PaymentStatusPaid}, nil)
	f.basketRepo.EXPECT().UpdateItemRefundStatus(ctx, item.ID, entity.RefundStatusRefunded).Return(nil)

	require.NoError(t, f.service.UpdateBasketItemRefundStatus(ctx, item.ID, entity.RefundStatusRefunded))

	err := f.service.UpdateBasketItemRefundStatus(ctx, item.ID, entity.RefundStatus("partial"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
