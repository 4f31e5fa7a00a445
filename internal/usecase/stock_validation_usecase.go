package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateStockUpdateInput is a grower's request for admin sign-off.
// VariantID anchors the request; it defaults to the product's first variant.
// PreviousStock and PreviousPrices name the values a rejection restores when the
// edit was already applied; they default to the grower's current values.
type CreateStockUpdateInput struct {
	ProductID      uuid.UUID             `json:"product_id" validate:"required"`
	VariantID      *uuid.UUID            `json:"variant_id,omitempty"`
	NewStock       *int                  `json:"new_stock,omitempty" validate:"omitempty,gte=0"`
	Prices         []entity.VariantPrice `json:"prices,omitempty"`
	PreviousStock  *int                  `json:"previous_stock,omitempty" validate:"omitempty,gte=0"`
	PreviousPrices []entity.VariantPrice `json:"previous_prices,omitempty"`
	Reason         string                `json:"reason" validate:"max=1000"`
}

// StockValidationUsecase defines the PENDING -> APPROVED | REJECTED workflow.
type StockValidationUsecase interface {
	CreateRequest(ctx context.Context, growerID uuid.UUID, input *CreateStockUpdateInput) (*entity.GrowerStockUpdate, error)

	// Approve applies the requested stock and prices.
	Approve(ctx context.Context, adminID, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error)

	// Reject restores the stock and prices recorded when the request was made.
	Reject(ctx context.Context, adminID, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error)

	// Cancel deletes the grower's own pending request.
	Cancel(ctx context.Context, growerID, requestID uuid.UUID) error

	HasPendingUpdate(ctx context.Context, variantID uuid.UUID) (bool, error)

	// GetPendingUpdateForVariant returns nil without error when the variant has no pending request.
	GetPendingUpdateForVariant(ctx context.Context, variantID uuid.UUID) (*entity.GrowerStockUpdate, error)

	ListRequests(ctx context.Context, filter repository.StockUpdateFilter) ([]*entity.GrowerStockUpdate, error)
}
