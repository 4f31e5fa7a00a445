package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
	// ErrPanyenNotFound is returned when a panyen is not found.
	ErrPanyenNotFound = errors.New("panyen not found")
)

// ProductRepository defines the interface for catalog reads.
type ProductRepository interface {
	// FindProductByID returns a product with its variants ordered by position.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindVariantByID returns a single variant.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// FindVariantsByIDs returns the variants found among ids, keyed by id.
	FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.ProductVariant, error)

	// ListStoreProducts returns the products shown in store with their variants.
	ListStoreProducts(ctx context.Context) ([]*entity.Product, error)

	// FindPanyenByID returns a panyen with its components.
	FindPanyenByID(ctx context.Context, id uuid.UUID) (*entity.Panyen, error)
}
