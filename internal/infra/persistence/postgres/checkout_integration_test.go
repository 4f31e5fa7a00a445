package postgres

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"
	"market/internal/usecase"
	"market/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCustomer(t *testing.T, db *gorm.DB) *entity.Customer {
	t.Helper()

	customer := &entity.Customer{Email: uuid.NewString() + "@example.test", Name: "Lise"}
	require.NoError(t, NewCustomerRepository(db).CreateCustomer(context.Background(), customer))

	return customer
}

func seedPanyen(t *testing.T, db *gorm.DB, f catalogFixture) model.PanyenModel {
	t.Helper()

	panyen := model.PanyenModel{
		Name:        "Weekly box",
		Price:       decimal.RequireFromString("15.00"),
		ShowInStore: true,
		Components:  []model.PanyenComponentModel{{VariantID: f.product.Variants[0].ID, Quantity: 2}},
	}
	require.NoError(t, db.Create(&panyen).Error)

	return panyen
}

func (f catalogFixture) leafItem(quantity int) entity.BasketSessionItem {
	variant := f.product.Variants[0]

	return entity.BasketSessionItem{
		Kind:             entity.ItemKindLeaf,
		ProductID:        &f.product.ID,
		ProductVariantID: &variant.ID,
		Quantity:         quantity,
		Name:             f.product.Name + " - " + variant.OptionValue,
		Price:            variant.Price,
	}
}

func newBasket(customerID uuid.UUID, items ...entity.BasketSessionItem) *entity.BasketSession {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}

	return &entity.BasketSession{
		CustomerID:    customerID,
		Items:         items,
		Total:         total,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func countBaskets(t *testing.T, db *gorm.DB, customerID uuid.UUID) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&model.BasketSessionModel{}).Where("customer_id = ?", customerID).Count(&n).Error)

	return n
}

func TestBasketRepository_CreateBasketSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	customer := seedCustomer(t, db)
	panyen := seedPanyen(t, db, f)
	repo := NewBasketRepository(db)

	t.Run("order index grows and items keep their references", func(t *testing.T) {
		composite := entity.BasketSessionItem{
			Kind:     entity.ItemKindComposite,
			PanyenID: &panyen.ID,
			Quantity: 1,
			Name:     panyen.Name,
			Price:    panyen.Price,
		}
		first := newBasket(customer.ID, f.leafItem(3), composite)
		require.NoError(t, repo.CreateBasketSession(ctx, first))
		second := newBasket(customer.ID, f.leafItem(1))
		require.NoError(t, repo.CreateBasketSession(ctx, second))

		assert.NotEqual(t, uuid.Nil, first.ID)
		assert.Positive(t, first.OrderIndex)
		assert.Greater(t, second.OrderIndex, first.OrderIndex)

		stored, err := repo.FindBasketSessionByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, first.OrderIndex, stored.OrderIndex)
		assert.True(t, stored.Total.Equal(decimal.RequireFromString("20.40")), stored.Total.String())
		require.Len(t, stored.Items, 2)

		leaf := stored.Items[0]
		assert.Equal(t, entity.ItemKindLeaf, leaf.Kind)
		assert.Equal(t, f.product.Variants[0].ID, *leaf.ProductVariantID)
		assert.Nil(t, leaf.PanyenID)
		assert.Equal(t, 3, leaf.Quantity)
		assert.Equal(t, entity.RefundStatusNone, leaf.RefundStatus)

		box := stored.Items[1]
		assert.Equal(t, entity.ItemKindComposite, box.Kind)
		assert.Equal(t, panyen.ID, *box.PanyenID)
		assert.Nil(t, box.ProductVariantID)
	})

	t.Run("unknown variant", func(t *testing.T) {
		item := f.leafItem(1)
		missing := uuid.New()
		item.ProductVariantID = &missing

		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewBasketRepository().CreateBasketSession(ctx, newBasket(customer.ID, item))
		})
		assert.ErrorIs(t, err, repository.ErrInvalidItemReference)
	})

	t.Run("unknown panyen", func(t *testing.T) {
		missing := uuid.New()
		item := entity.BasketSessionItem{Kind: entity.ItemKindComposite, PanyenID: &missing, Quantity: 1, Name: "Gone", Price: decimal.NewFromInt(1)}

		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewBasketRepository().CreateBasketSession(ctx, newBasket(customer.ID, item))
		})
		assert.ErrorIs(t, err, repository.ErrInvalidItemReference)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		other := seedCustomer(t, db)

		err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewBasketRepository().CreateBasketSession(ctx, newBasket(other.ID, f.leafItem(0)))
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidBasketItem), "got %v", err)

		// The basket row goes with its rejected items.
		assert.Zero(t, countBaskets(t, db, other.ID))
	})

	t.Run("unknown customer", func(t *testing.T) {
		err := repo.CreateBasketSession(ctx, newBasket(uuid.New(), f.leafItem(1)))
		assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
	})
}

func newIntegrationCheckoutService(db *gorm.DB) usecase.CheckoutUsecase {
	return impl.NewCheckoutService(impl.CheckoutServiceParams{
		TxManager:    NewTransactionManager(db),
		BasketRepo:   NewBasketRepository(db),
		CheckoutRepo: NewCheckoutSessionRepository(db),
		CustomerRepo: NewCustomerRepository(db),
		Config: &config.Config{
			Checkout: &config.CheckoutConfig{AnonymousEmailPrefix: "anonymous-session-"},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestCheckoutService_CreateBasketSession_ReusesStoredAddress(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	customer := seedCustomer(t, db)
	svc := newIntegrationCheckoutService(db)

	input := func(street string) *usecase.CreateBasketInput {
		return &usecase.CreateBasketInput{
			CustomerID: customer.ID,
			Items: []usecase.BasketItemInput{{
				Kind:      entity.ItemKindLeaf,
				ProductID: &f.product.ID,
				VariantID: &f.product.Variants[1].ID,
				Quantity:  2,
			}},
			Address: &usecase.AddressInput{
				Name:       "Maison",
				Address:    street,
				PostalCode: "97200",
				City:       "Fort-de-France",
				Country:    "MQ",
				Type:       entity.AddressTypeDelivery,
			},
			DeliveryCost: decimal.RequireFromString("3.50"),
		}
	}

	first, err := svc.CreateBasketSession(ctx, input("5 rue Victor Hugo"))
	require.NoError(t, err)
	second, err := svc.CreateBasketSession(ctx, input("  5 rue Victor Hugo "))
	require.NoError(t, err)

	require.NotNil(t, first.AddressID)
	require.NotNil(t, second.AddressID)
	assert.Equal(t, *first.AddressID, *second.AddressID)
	assert.Greater(t, second.OrderIndex, first.OrderIndex)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("9.90")), first.Total.String())

	var rows int64
	require.NoError(t, db.Model(&model.AddressModel{}).
		Where("customer_id = ? AND postal_code = ? AND city = ?", customer.ID, "97200", "Fort-de-France").
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestCheckoutSessionRepository_MarkPaid(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	customer := seedCustomer(t, db)

	basket := newBasket(customer.ID, f.leafItem(1))
	require.NoError(t, NewBasketRepository(db).CreateBasketSession(ctx, basket))

	repo := NewCheckoutSessionRepository(db)
	session := &entity.CheckoutSession{
		BasketSessionID:   basket.ID,
		PaymentStatus:     entity.PaymentStatusPending,
		PaymentAmount:     basket.Total,
		WalletReserved:    decimal.RequireFromString("0.50"),
		Provider:          "sandbox",
		ProviderSessionID: "cs_" + uuid.NewString(),
	}
	require.NoError(t, repo.CreateCheckoutSession(ctx, session))

	payload := json.RawMessage(`{"type":"payment.succeeded","session_id":"cs_1","amount":"10.00"}`)
	paidAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.MarkPaid(ctx, session.ID, payload, paidAt))

	stored, err := repo.FindCheckoutSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid())
	assert.True(t, stored.WalletReserved.Equal(decimal.RequireFromString("0.50")))
	require.NotNil(t, stored.PaidAt)
	assert.WithinDuration(t, paidAt, *stored.PaidAt, time.Second)

	// jsonb hands the payload back normalised, yet a redelivery still matches it.
	assert.JSONEq(t, string(payload), string(stored.SuccessPayload))
	assert.True(t, stored.SamePayload(payload))
	assert.False(t, stored.SamePayload(json.RawMessage(`{"type":"payment.succeeded","session_id":"cs_2","amount":"10.00"}`)))

	assert.ErrorIs(t, repo.MarkPaid(ctx, session.ID, payload, time.Now()), repository.ErrCheckoutSessionAlreadyPaid)
	assert.ErrorIs(t, repo.MarkFailed(ctx, session.ID), repository.ErrCheckoutSessionNotPending)
	assert.ErrorIs(t, repo.MarkPaid(ctx, uuid.New(), payload, time.Now()), repository.ErrCheckoutSessionNotFound)

	// The service sees the redelivery as the payment it already recorded.
	svc := newIntegrationCheckoutService(db)
	again, err := svc.MarkCheckoutSessionAsPaid(ctx, session.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, session.ID, again.ID)

	_, err = svc.MarkCheckoutSessionAsPaid(ctx, session.ID, json.RawMessage(`{"type":"payment.succeeded","session_id":"cs_2"}`))
	assert.True(t, errors.Is(err, domainerrors.ErrCheckoutAlreadyPaid), "got %v", err)
}

func TestCheckoutSessionRepository_MarkFailedOnce(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	customer := seedCustomer(t, db)

	basket := newBasket(customer.ID, f.leafItem(1))
	require.NoError(t, NewBasketRepository(db).CreateBasketSession(ctx, basket))

	repo := NewCheckoutSessionRepository(db)
	session := &entity.CheckoutSession{
		BasketSessionID:   basket.ID,
		PaymentStatus:     entity.PaymentStatusPending,
		PaymentAmount:     basket.Total,
		ProviderSessionID: "cs_" + uuid.NewString(),
	}
	require.NoError(t, repo.CreateCheckoutSession(ctx, session))

	require.NoError(t, repo.MarkFailed(ctx, session.ID))
	assert.ErrorIs(t, repo.MarkFailed(ctx, session.ID), repository.ErrCheckoutSessionNotPending)
	assert.ErrorIs(t, repo.MarkFailed(ctx, uuid.New()), repository.ErrCheckoutSessionNotFound)

	// A success arriving after the failure still settles the session.
	require.NoError(t, repo.MarkPaid(ctx, session.ID, json.RawMessage(`{"id":"evt_late"}`), time.Now()))
	stored, err := repo.FindCheckoutSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid())
}
