package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// GrowerStockUsecase defines how growers manage their stock and prices,
// and the storefront reads computed from them.
type GrowerStockUsecase interface {
	// AddGrowerProduct starts stocking a product at catalog prices.
	// An existing association is rejected unless forceReplace is set.
	AddGrowerProduct(ctx context.Context, growerID, productID uuid.UUID, stock int, forceReplace bool) (*entity.GrowerProduct, error)

	// RemoveGrowerProduct stops stocking a product.
	RemoveGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) error

	// UpdateGrowerProductStock sets the grower's total stock for a product.
	UpdateGrowerProductStock(ctx context.Context, growerID, productID uuid.UUID, stock int) error

	// UpdateMultipleVariantPrices sets several variant prices in one transaction.
	UpdateMultipleVariantPrices(ctx context.Context, growerID uuid.UUID, prices []entity.VariantPrice) error

	// GetGrowerStockPageData returns what the stock editor shows for one product.
	GetGrowerStockPageData(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerStockPageData, error)

	// ListGrowerProducts returns every product the grower stocks.
	ListGrowerProducts(ctx context.Context, growerID uuid.UUID) ([]*entity.GrowerProduct, error)

	// GetProductGlobalStock returns the product's stock summed over all growers.
	GetProductGlobalStock(ctx context.Context, productID uuid.UUID) (int, error)

	// ListStoreProducts returns the storefront listing.
	ListStoreProducts(ctx context.Context) ([]entity.StoreProduct, error)
}
