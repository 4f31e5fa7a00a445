package repository

import (
	"context"
	"time"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for basket persistence.
var (
	// ErrBasketNotFound is returned when a basket session is not found.
	ErrBasketNotFound = errors.New("basket session not found")
	// ErrBasketItemNotFound is returned when a basket item is not found.
	ErrBasketItemNotFound = errors.New("basket item not found")
	// ErrBasketAlreadyDelivered is returned when marking a delivered basket again.
	ErrBasketAlreadyDelivered = errors.New("basket session already delivered")
	// ErrInvalidItemReference is returned when an item points to a missing product, variant or panyen.
	ErrInvalidItemReference = errors.New("basket item references an unknown product")
)

// BasketRepository defines the interface for basket session persistence.
type BasketRepository interface {
	// CreateBasketSession inserts the basket and its items. The order index is assigned by the store
	// and written back together with the generated ids.
	CreateBasketSession(ctx context.Context, basket *entity.BasketSession) error

	// AttachAddress links an address to a basket.
	AttachAddress(ctx context.Context, basketID, addressID uuid.UUID) error

	// FindBasketSessionByID returns the basket with its items and address.
	FindBasketSessionByID(ctx context.Context, id uuid.UUID) (*entity.BasketSession, error)

	// ListBasketSessions returns baskets matching the filter, newest first.
	ListBasketSessions(ctx context.Context, filter entity.BasketFilter) ([]*entity.BasketSession, error)

	// UpdatePaymentStatus sets the payment status of a basket.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// SetDeliveryDate sets the day a basket is delivered.
	SetDeliveryDate(ctx context.Context, id uuid.UUID, day time.Time) error

	// MarkDelivered stamps the basket as delivered. Returns ErrBasketAlreadyDelivered when it already is.
	MarkDelivered(ctx context.Context, id, delivererID uuid.UUID, at time.Time) error

	// FindBasketItemByID retrieves a single basket item.
	FindBasketItemByID(ctx context.Context, itemID uuid.UUID) (*entity.BasketSessionItem, error)

	// UpdateItemRefundStatus sets the refund status of one basket item.
	UpdateItemRefundStatus(ctx context.Context, itemID uuid.UUID, status entity.RefundStatus) error
}
