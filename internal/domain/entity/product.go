// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry sold on the storefront.
// Products are never hard-deleted while a basket references them.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description,omitempty"`
	ShowInStore bool             `json:"show_in_store"`
	BaseUnitID  *uuid.UUID       `json:"base_unit_id,omitempty"`
	Variants    []ProductVariant `json:"variants"` // Ordered by Position.
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductVariant is one purchasable option of a product (e.g. "500 g", "1 kg").
type ProductVariant struct {
	ID                             uuid.UUID        `json:"id"`
	ProductID                      uuid.UUID        `json:"product_id"`
	Position                       int              `json:"position"`
	OptionSet                      string           `json:"option_set,omitempty"`
	OptionValue                    string           `json:"option_value,omitempty"`
	Quantity                       *decimal.Decimal `json:"quantity,omitempty"` // Set for unit-based variants.
	UnitID                         *uuid.UUID       `json:"unit_id,omitempty"`
	Price                          decimal.Decimal  `json:"price"`
	Stock                          int              `json:"stock"`
	VATRateID                      *uuid.UUID       `json:"vat_rate_id,omitempty"`
	ShowDescriptionOnPrintDelivery bool             `json:"show_description_on_print_delivery"`
}

// VariantIDs returns the ids of the product's variants in display order.
func (p *Product) VariantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Variants))
	for _, v := range p.Variants {
		ids = append(ids, v.ID)
	}

	return ids
}

// FindVariant returns the variant with the given id, or nil.
func (p *Product) FindVariant(id uuid.UUID) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}

	return nil
}

// StoreProduct is a storefront listing: a visible product with its stock across all growers.
type StoreProduct struct {
	Product     Product `json:"product"`
	GlobalStock int     `json:"global_stock"`
}

// ProductStock is a product's stock summed over all growers.
type ProductStock struct {
	ProductID   uuid.UUID `json:"product_id"`
	GlobalStock int       `json:"global_stock"`
}

// Panyen is a composite "basket of products" sold as one SKU.
// It has its own identity so basket items can reference it directly.
type Panyen struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Price       decimal.Decimal   `json:"price"`
	ShowInStore bool              `json:"show_in_store"`
	Components  []PanyenComponent `json:"components"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// PanyenComponent is one underlying variant bundled in a panyen.
type PanyenComponent struct {
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
}
