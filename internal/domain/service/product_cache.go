package service

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductCache holds computed storefront reads. Misses report ok=false with a nil error.
type ProductCache interface {
	GetStoreProducts(ctx context.Context) (products []entity.StoreProduct, ok bool, err error)
	SetStoreProducts(ctx context.Context, products []entity.StoreProduct) error

	GetGlobalStock(ctx context.Context, productID uuid.UUID) (stock int, ok bool, err error)
	SetGlobalStock(ctx context.Context, productID uuid.UUID, stock int) error

	// InvalidateProduct drops the product's global stock and the store product list.
	InvalidateProduct(ctx context.Context, productID uuid.UUID) error
}
