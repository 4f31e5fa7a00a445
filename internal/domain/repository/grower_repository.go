package repository

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for grower stock persistence.
var (
	// ErrGrowerNotFound is returned when a grower is not found.
	ErrGrowerNotFound = errors.New("grower not found")
	// ErrGrowerProductNotFound is returned when the grower does not stock the product.
	ErrGrowerProductNotFound = errors.New("grower product not found")
	// ErrDuplicateGrowerProduct is returned when the grower already stocks the product.
	ErrDuplicateGrowerProduct = errors.New("grower product already exists")
)

// GrowerRepository defines the interface for grower and grower stock persistence.
type GrowerRepository interface {
	// FindGrowerByID retrieves a grower by id.
	FindGrowerByID(ctx context.Context, id uuid.UUID) (*entity.Grower, error)

	// FindGrowerProduct returns the grower's association with a product, with variant prices.
	FindGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerProduct, error)

	// ListGrowerProducts returns every product association of a grower.
	ListGrowerProducts(ctx context.Context, growerID uuid.UUID) ([]*entity.GrowerProduct, error)

	// CreateGrowerProduct inserts the association and its variant prices.
	// Returns ErrDuplicateGrowerProduct when the grower already stocks the product.
	CreateGrowerProduct(ctx context.Context, gp *entity.GrowerProduct) error

	// ReplaceGrowerProduct overwrites the stock and variant prices of an existing association.
	ReplaceGrowerProduct(ctx context.Context, gp *entity.GrowerProduct) error

	// DeleteGrowerProduct removes the association and its variant prices.
	DeleteGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) error

	// UpdateGrowerProductStock sets the grower's stock for a product.
	UpdateGrowerProductStock(ctx context.Context, growerID, productID uuid.UUID, stock int) error

	// UpsertVariantPrice sets the grower's price for one variant of a product the grower stocks.
	UpsertVariantPrice(ctx context.Context, growerID uuid.UUID, price entity.VariantPrice) error

	// SumStockByProduct returns the stock of a product summed over all growers.
	SumStockByProduct(ctx context.Context, productID uuid.UUID) (int, error)

	// SumStockByProducts is SumStockByProduct for several products at once.
	SumStockByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
