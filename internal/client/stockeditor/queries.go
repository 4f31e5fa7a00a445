package stockeditor

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/querycache"

	"github.com/google/uuid"
)

// Catalog is the part of the HTTP client the storefront reads call.
type Catalog interface {
	ListStoreProducts(ctx context.Context) ([]entity.StoreProduct, error)
	GetProductGlobalStock(ctx context.Context, productID uuid.UUID) (int, error)
}

// StoreProductsKey addresses the cached storefront listing.
func StoreProductsKey() querycache.Key {
	return querycache.Key{"store-products"}
}

// GlobalStockKey addresses the cached stock of a product summed over all growers.
func GlobalStockKey(productID uuid.UUID) querycache.Key {
	return querycache.Key{"product-global-stock", productID}
}

func growerPrefix(growerID uuid.UUID) querycache.Key {
	return querycache.Key{"grower-stock", growerID}
}

// StoreProducts reads the storefront listing through the cache.
// A successful Submit marks it stale so the next read goes to the API.
func StoreProducts(ctx context.Context, api Catalog, cache *querycache.Cache) ([]entity.StoreProduct, error) {
	products, err := querycache.Fetch(ctx, cache, StoreProductsKey(), api.ListStoreProducts)
	if err != nil {
		return nil, errors.Wrap(err, "load store products")
	}

	return products, nil
}

// ProductGlobalStock reads a product's global stock through the cache.
func ProductGlobalStock(ctx context.Context, api Catalog, cache *querycache.Cache, productID uuid.UUID) (int, error) {
	stock, err := querycache.Fetch(ctx, cache, GlobalStockKey(productID), func(ctx context.Context) (int, error) {
		return api.GetProductGlobalStock(ctx, productID)
	})
	if err != nil {
		return 0, errors.Wrap(err, "load global stock")
	}

	return stock, nil
}
