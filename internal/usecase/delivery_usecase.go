package usecase

import (
	"context"
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SlipLine is one printed line of a delivery slip.
type SlipLine struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// DeliverySlip is the document handed over with a basket.
type DeliverySlip struct {
	BasketID    uuid.UUID       `json:"basket_id"`
	OrderIndex  int64           `json:"order_index"`
	DeliveryDay *time.Time      `json:"delivery_day,omitempty"`
	Address     *entity.Address `json:"address,omitempty"`
	Lines       []SlipLine      `json:"lines"`
	Total       decimal.Decimal `json:"total"`
}

// DeliverySlipOutput is the slip and where its documents were stored.
type DeliverySlipOutput struct {
	Slip    DeliverySlip `json:"slip"`
	SlipKey string       `json:"slip_key"`
	QRKey   string       `json:"qr_key"`
}

// DeliveryUsecase defines the deliverer portal operations.
type DeliveryUsecase interface {
	// ListDeliveries returns the paid baskets scheduled for a day.
	ListDeliveries(ctx context.Context, day time.Time) ([]*entity.BasketSession, error)

	// GenerateDeliverySlip renders and stores the slip and its QR code.
	GenerateDeliverySlip(ctx context.Context, basketID uuid.UUID) (*DeliverySlipOutput, error)

	// ConfirmDeliveryByQR marks the basket encoded in a scanned QR code as delivered.
	ConfirmDeliveryByQR(ctx context.Context, delivererID uuid.UUID, qrPayload string) (*entity.BasketSession, error)
}
