// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks payment of a basket or checkout session.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// RefundStatus tracks refund of a single basket item.
type RefundStatus string

const (
	RefundStatusNone     RefundStatus = "none"
	RefundStatusRefunded RefundStatus = "refunded"
)

// IsValid checks if the RefundStatus is a valid value.
func (s RefundStatus) IsValid() bool {
	return s == RefundStatusNone || s == RefundStatusRefunded
}

// ItemKind discriminates basket items.
type ItemKind string

const (
	// ItemKindLeaf is a regular product variant.
	ItemKindLeaf ItemKind = "leaf"
	// ItemKindComposite is a panyen.
	ItemKindComposite ItemKind = "composite"
)

// BasketSession is the server-persisted cart of one checkout attempt.
// It owns its items; its address may be shared with other sessions of the same customer.
type BasketSession struct {
	ID               uuid.UUID           `json:"id"`
	OrderIndex       int64               `json:"order_index"`
	CustomerID       uuid.UUID           `json:"customer_id"`
	Items            []BasketSessionItem `json:"items"`
	Total            decimal.Decimal     `json:"total"`
	PaymentStatus    PaymentStatus       `json:"payment_status"`
	AddressID        *uuid.UUID          `json:"address_id,omitempty"`
	Address          *Address            `json:"address,omitempty"`
	DeliveryCost     decimal.Decimal     `json:"delivery_cost"`
	DeliveryDay      *time.Time          `json:"delivery_day,omitempty"`
	Delivered        *time.Time          `json:"delivered,omitempty"`
	DeliveredBy      *uuid.UUID          `json:"delivered_by,omitempty"`
	WalletAmountUsed decimal.Decimal     `json:"wallet_amount_used"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// IsCoveredByWallet reports whether the wallet amount pays the whole total.
func (b *BasketSession) IsCoveredByWallet() bool {
	return b.WalletAmountUsed.GreaterThanOrEqual(b.Total)
}

// AmountDue is what the payment provider must collect.
func (b *BasketSession) AmountDue() decimal.Decimal {
	due := b.Total.Sub(b.WalletAmountUsed)
	if due.IsNegative() {
		return decimal.Zero
	}

	return due
}

// IsDelivered reports whether the basket has been handed over.
func (b *BasketSession) IsDelivered() bool {
	return b.Delivered != nil
}

// BasketSessionItem is one line of a basket. Price is a snapshot taken at purchase time.
//
// Leaf items carry ProductID and ProductVariantID; composite items carry PanyenID.
type BasketSessionItem struct {
	ID               uuid.UUID       `json:"id"`
	BasketSessionID  uuid.UUID       `json:"basket_session_id"`
	Kind             ItemKind        `json:"kind"`
	ProductID        *uuid.UUID      `json:"product_id,omitempty"`
	ProductVariantID *uuid.UUID      `json:"product_variant_id,omitempty"`
	PanyenID         *uuid.UUID      `json:"panyen_id,omitempty"`
	Quantity         int             `json:"quantity"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Description      string          `json:"description,omitempty"`
	RefundStatus     RefundStatus    `json:"refund_status"`
}

// LeafItem identifies a regular product variant in a basket.
type LeafItem struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
}

// CompositeItem identifies a panyen in a basket.
type CompositeItem struct {
	PanyenID uuid.UUID
}

// Leaf returns the leaf reference when the item is a leaf.
func (i *BasketSessionItem) Leaf() (LeafItem, bool) {
	if i.Kind != ItemKindLeaf || i.ProductID == nil || i.ProductVariantID == nil {
		return LeafItem{}, false
	}

	return LeafItem{ProductID: *i.ProductID, VariantID: *i.ProductVariantID}, true
}

// Composite returns the composite reference when the item is a panyen.
func (i *BasketSessionItem) Composite() (CompositeItem, bool) {
	if i.Kind != ItemKindComposite || i.PanyenID == nil {
		return CompositeItem{}, false
	}

	return CompositeItem{PanyenID: *i.PanyenID}, true
}

// LineTotal is price times quantity.
func (i *BasketSessionItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// BasketFilter narrows basket listings. Nil fields are ignored.
type BasketFilter struct {
	CustomerID    *uuid.UUID
	PaymentStatus *PaymentStatus
	DeliveryDay   *time.Time
	Delivered     *bool
	Limit         int
	Offset        int
}
