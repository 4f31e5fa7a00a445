package usecase

import (
	"context"
	"encoding/json"
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BasketItemInput is one requested basket line. Leaf items name a product variant,
// composite items name a panyen. Names and prices are snapshotted from the catalog.
type BasketItemInput struct {
	Kind        entity.ItemKind `json:"kind" validate:"required,oneof=leaf composite"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	VariantID   *uuid.UUID      `json:"variant_id,omitempty"`
	PanyenID    *uuid.UUID      `json:"panyen_id,omitempty"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	Description string          `json:"description,omitempty" validate:"max=500"`
}

// AddressInput is a delivery or billing address typed at checkout.
type AddressInput struct {
	Name       string             `json:"name" validate:"required,max=200"`
	Address    string             `json:"address" validate:"required,max=500"`
	PostalCode string             `json:"postal_code" validate:"required,max=20"`
	City       string             `json:"city" validate:"required,max=100"`
	Country    string             `json:"country" validate:"required,max=100"`
	Type       entity.AddressType `json:"type" validate:"required,oneof=customer delivery billing"`
}

// CreateBasketInput is everything needed to persist a basket session.
type CreateBasketInput struct {
	CustomerID       uuid.UUID         `json:"customer_id"`
	Items            []BasketItemInput `json:"items" validate:"required,min=1,dive"`
	Address          *AddressInput     `json:"address,omitempty" validate:"omitempty"`
	DeliveryCost     decimal.Decimal   `json:"delivery_cost"`
	DeliveryDay      *time.Time        `json:"delivery_day,omitempty"`
	WalletAmountUsed decimal.Decimal   `json:"wallet_amount_used"`
}

// CheckoutInput starts a checkout. A nil CustomerID is a guest checkout:
// an anonymous customer is created for it.
type CheckoutInput struct {
	CustomerID *uuid.UUID
	Basket     CreateBasketInput
}

// CheckoutOutput is the created basket and the session that collects its payment.
// Free is true when the wallet covered the total and no provider session was opened.
type CheckoutOutput struct {
	Basket  *entity.BasketSession   `json:"basket"`
	Session *entity.CheckoutSession `json:"session"`
	Free    bool                    `json:"free"`
}

// CheckoutUsecase defines basket creation, payment and fulfilment bookkeeping.
type CheckoutUsecase interface {
	// CreateBasketSession persists a basket, its items and its de-duplicated address in one transaction.
	CreateBasketSession(ctx context.Context, input *CreateBasketInput) (*entity.BasketSession, error)

	// GetBasketSessions lists baskets matching the filter.
	GetBasketSessions(ctx context.Context, filter entity.BasketFilter) ([]*entity.BasketSession, error)

	// GetBasketSessionByID returns one basket with items and address.
	GetBasketSessionByID(ctx context.Context, id uuid.UUID) (*entity.BasketSession, error)

	// Checkout creates the basket and routes it to the free or the paid checkout path.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)

	// CreateCheckoutSession opens a payment provider session for the amount not covered by the wallet.
	CreateCheckoutSession(ctx context.Context, basketID uuid.UUID) (*entity.CheckoutSession, error)

	// CreateFreeCheckoutSession settles a basket fully covered by wallet credit without the provider.
	CreateFreeCheckoutSession(ctx context.Context, basketID uuid.UUID) (*entity.CheckoutSession, error)

	// GetCheckoutSessionByID returns one checkout session.
	GetCheckoutSessionByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error)

	// MarkCheckoutSessionAsPaid is the single transition into the paid state.
	// Repeating it with the same payload is a no-op; a different payload is rejected.
	MarkCheckoutSessionAsPaid(ctx context.Context, sessionID uuid.UUID, payload json.RawMessage) (*entity.CheckoutSession, error)

	// HandlePaymentWebhook verifies a provider callback and applies its outcome.
	HandlePaymentWebhook(ctx context.Context, payload []byte, signature string) error

	// SetDeliveryDate schedules a basket for a delivery day.
	SetDeliveryDate(ctx context.Context, basketID uuid.UUID, day time.Time) error

	// MarkDelivered records the hand-over of a paid basket.
	MarkDelivered(ctx context.Context, basketID, delivererID uuid.UUID) (*entity.BasketSession, error)

	// UpdateBasketItemRefundStatus sets the refund status of one item of a paid basket.
	UpdateBasketItemRefundStatus(ctx context.Context, itemID uuid.UUID, status entity.RefundStatus) error
}
