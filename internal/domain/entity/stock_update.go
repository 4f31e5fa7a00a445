// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockUpdateStatus is the state of a grower stock/price validation request.
type StockUpdateStatus string

const (
	// StockUpdatePending awaits an admin decision.
	StockUpdatePending StockUpdateStatus = "PENDING"
	// StockUpdateApproved is terminal.
	StockUpdateApproved StockUpdateStatus = "APPROVED"
	// StockUpdateRejected is terminal.
	StockUpdateRejected StockUpdateStatus = "REJECTED"
)

// IsValid checks if the status is a known value.
func (s StockUpdateStatus) IsValid() bool {
	switch s {
	case StockUpdatePending, StockUpdateApproved, StockUpdateRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s StockUpdateStatus) IsTerminal() bool {
	return s == StockUpdateApproved || s == StockUpdateRejected
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Only PENDING -> APPROVED and PENDING -> REJECTED are legal.
func (s StockUpdateStatus) CanTransitionTo(next StockUpdateStatus) bool {
	return s == StockUpdatePending && next.IsTerminal()
}

// GrowerStockUpdate is a grower's stock/price change waiting for admin sign-off.
// VariantID anchors the request: at most one PENDING request exists per variant.
type GrowerStockUpdate struct {
	ID              uuid.UUID                     `json:"id"`
	GrowerID        uuid.UUID                     `json:"grower_id"`
	ProductID       uuid.UUID                     `json:"product_id"`
	VariantID       uuid.UUID                     `json:"variant_id"`
	NewStock        *int                          `json:"new_stock,omitempty"`
	PreviousStock   *int                          `json:"previous_stock,omitempty"`
	RequestedPrices map[uuid.UUID]decimal.Decimal `json:"requested_prices,omitempty"`
	PreviousPrices  map[uuid.UUID]decimal.Decimal `json:"previous_prices,omitempty"`
	Reason          string                        `json:"reason"`
	Status          StockUpdateStatus             `json:"status"`
	RequestDate     time.Time                     `json:"request_date"`
	AdminComment    string                        `json:"admin_comment,omitempty"`
	DecidedAt       *time.Time                    `json:"decided_at,omitempty"`
	DecidedBy       *uuid.UUID                    `json:"decided_by,omitempty"`
}

// IsPending reports whether the request still awaits a decision.
func (u *GrowerStockUpdate) IsPending() bool {
	return u.Status == StockUpdatePending
}
