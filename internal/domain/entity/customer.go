// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a storefront buyer. Guest checkouts create customers whose email
// carries the anonymous session prefix.
type Customer struct {
	ID            uuid.UUID       `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsAnonymous reports whether the customer was created for a guest checkout.
func (c *Customer) IsAnonymous(anonymousPrefix string) bool {
	return anonymousPrefix != "" && strings.HasPrefix(c.Email, anonymousPrefix)
}

// AddressScope returns the customer id addresses are attached to, or nil for guests.
func (c *Customer) AddressScope(anonymousPrefix string) *uuid.UUID {
	if c.IsAnonymous(anonymousPrefix) {
		return nil
	}
	id := c.ID

	return &id
}

// WalletTransaction is one movement on a customer's store credit.
// Positive amounts are credits, negative amounts are debits.
type WalletTransaction struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason,omitempty"`
	BasketSessionID *uuid.UUID      `json:"basket_session_id,omitempty"`
	CreatedBy       *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
