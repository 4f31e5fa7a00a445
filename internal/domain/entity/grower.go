// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grower is a producer account that lists products and manages its own stock and prices.
type Grower struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	FarmName  string    `json:"farm_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GrowerProduct associates a grower with a product and carries the grower's total stock for it.
// There is at most one association per (GrowerID, ProductID).
type GrowerProduct struct {
	ID        uuid.UUID              `json:"id"`
	GrowerID  uuid.UUID              `json:"grower_id"`
	ProductID uuid.UUID              `json:"product_id"`
	Stock     int                    `json:"stock"`
	Variants  []GrowerProductVariant `json:"variants"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// GrowerProductVariant is the grower-specific price of one product variant.
type GrowerProductVariant struct {
	ID              uuid.UUID       `json:"id"`
	GrowerProductID uuid.UUID       `json:"grower_product_id"`
	VariantID       uuid.UUID       `json:"variant_id"`
	Price           decimal.Decimal `json:"price"`
}

// PriceOf returns the grower's price for a variant.
func (gp *GrowerProduct) PriceOf(variantID uuid.UUID) (decimal.Decimal, bool) {
	for _, v := range gp.Variants {
		if v.VariantID == variantID {
			return v.Price, true
		}
	}

	return decimal.Zero, false
}

// VariantPrice is one entry of a batched price update.
type VariantPrice struct {
	VariantID uuid.UUID       `json:"variant_id"`
	Price     decimal.Decimal `json:"price"`
}

// GrowerStockPageData is everything the grower stock editor needs for one product.
type GrowerStockPageData struct {
	Product       Product            `json:"product"`
	GrowerProduct *GrowerProduct     `json:"grower_product,omitempty"`
	GlobalStock   int                `json:"global_stock"`
	PendingUpdate *GrowerStockUpdate `json:"pending_update,omitempty"`
}
