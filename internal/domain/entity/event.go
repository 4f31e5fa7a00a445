// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockUpdateEvent is published when a validation request is created or decided.
type StockUpdateEvent struct {
	Type         string            `json:"type"` // constants.EventStockUpdateRequested or constants.EventStockUpdateDecided.
	RequestID    uuid.UUID         `json:"request_id"`
	GrowerID     uuid.UUID         `json:"grower_id"`
	ProductID    uuid.UUID         `json:"product_id"`
	VariantID    uuid.UUID         `json:"variant_id"`
	Status       StockUpdateStatus `json:"status"`
	Reason       string            `json:"reason,omitempty"`
	AdminComment string            `json:"admin_comment,omitempty"`
	OccurredAt   time.Time         `json:"occurred_at"`
}
