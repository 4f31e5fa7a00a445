package repository

import (
	"context"
	"time"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for stock validation persistence.
var (
	// ErrStockUpdateNotFound is returned when a validation request is not found.
	ErrStockUpdateNotFound = errors.New("stock update request not found")
	// ErrStockUpdateNotPending is returned when a decided request is decided or cancelled again.
	ErrStockUpdateNotPending = errors.New("stock update request is not pending")
	// ErrPendingStockUpdateExists is returned when the variant already has a pending request.
	ErrPendingStockUpdateExists = errors.New("variant already has a pending stock update request")
)

// StockUpdateFilter narrows validation request listings. Nil fields are ignored.
type StockUpdateFilter struct {
	GrowerID  *uuid.UUID
	ProductID *uuid.UUID
	Status    *entity.StockUpdateStatus
	Limit     int
	Offset    int
}

// StockUpdateDecision is what an admin records on a pending request.
type StockUpdateDecision struct {
	Status    entity.StockUpdateStatus
	Comment   string
	DecidedBy uuid.UUID
	DecidedAt time.Time
}

// StockUpdateRepository defines the interface for grower stock validation requests.
type StockUpdateRepository interface {
	// CreateStockUpdate persists a PENDING request.
	// Returns ErrPendingStockUpdateExists when the variant already has one.
	CreateStockUpdate(ctx context.Context, update *entity.GrowerStockUpdate) error

	// FindStockUpdateByID retrieves a request by id.
	FindStockUpdateByID(ctx context.Context, id uuid.UUID) (*entity.GrowerStockUpdate, error)

	// FindPendingByVariant returns the PENDING request of a variant, or ErrStockUpdateNotFound.
	FindPendingByVariant(ctx context.Context, variantID uuid.UUID) (*entity.GrowerStockUpdate, error)

	// FindPendingByProduct returns the PENDING request of any variant of the product, or ErrStockUpdateNotFound.
	FindPendingByProduct(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerStockUpdate, error)

	// ExistsPendingByVariant reports whether the variant has a PENDING request.
	ExistsPendingByVariant(ctx context.Context, variantID uuid.UUID) (bool, error)

	// Decide moves a PENDING request to a terminal status.
	// Returns ErrStockUpdateNotPending when the request was already decided.
	Decide(ctx context.Context, id uuid.UUID, decision StockUpdateDecision) error

	// DeletePending removes a PENDING request owned by the grower.
	// Returns ErrStockUpdateNotPending when it was already decided.
	DeletePending(ctx context.Context, id, growerID uuid.UUID) error

	// ListStockUpdates returns requests matching the filter, newest first.
	ListStockUpdates(ctx context.Context, filter StockUpdateFilter) ([]*entity.GrowerStockUpdate, error)
}
