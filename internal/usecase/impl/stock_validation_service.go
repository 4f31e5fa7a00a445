package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// stockValidationService implements the StockValidationUsecase interface.
type stockValidationService struct {
	txManager       repository.TransactionManager
	stockUpdateRepo repository.StockUpdateRepository
	productRepo     repository.ProductRepository
	growerRepo      repository.GrowerRepository
	cache           service.ProductCache
	publisher       service.EventPublisher
	logger          *slog.Logger
	now             func() time.Time
}

// StockValidationServiceParams holds dependencies for StockValidationService, injected by Fx.
type StockValidationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	StockUpdateRepo repository.StockUpdateRepository
	ProductRepo     repository.ProductRepository
	GrowerRepo      repository.GrowerRepository
	Cache           service.ProductCache
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewStockValidationService is the constructor for stockValidationService.
func NewStockValidationService(params StockValidationServiceParams) usecase.StockValidationUsecase {
	return &stockValidationService{
		txManager:       params.TxManager,
		stockUpdateRepo: params.StockUpdateRepo,
		productRepo:     params.ProductRepo,
		growerRepo:      params.GrowerRepo,
		cache:           params.Cache,
		publisher:       params.Publisher,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *stockValidationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest files a PENDING request capturing the grower's previous values for rollback.
func (srv *stockValidationService) CreateRequest(ctx context.Context, growerID uuid.UUID, input *usecase.CreateStockUpdateInput) (*entity.GrowerStockUpdate, error) {
	if input.NewStock == nil && len(input.Prices) == 0 {
		return nil, domainerrors.ErrEmptyStockUpdate
	}
	if input.NewStock != nil && *input.NewStock < 0 {
		return nil, domainerrors.ErrNegativeStock
	}
	if input.PreviousStock != nil && *input.PreviousStock < 0 {
		return nil, domainerrors.ErrNegativeStock
	}
	for _, p := range slices.Concat(input.Prices, input.PreviousPrices) {
		if p.Price.IsNegative() {
			return nil, domainerrors.ErrNegativePrice
		}
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, translate(err, "failed to find product",
			errorMapping{repository.ErrProductNotFound, domainerrors.ErrProductNotFound})
	}

	anchor, err := anchorVariant(product, input.VariantID)
	if err != nil {
		return nil, err
	}

	gp, err := srv.growerRepo.FindGrowerProduct(ctx, growerID, product.ID)
	if err != nil {
		return nil, translate(err, "failed to find grower product",
			errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
	}

	update := &entity.GrowerStockUpdate{
		ID:          uuid.New(),
		GrowerID:    growerID,
		ProductID:   product.ID,
		VariantID:   anchor,
		Reason:      input.Reason,
		Status:      entity.StockUpdatePending,
		RequestDate: srv.now(),
	}
	if input.NewStock != nil {
		newStock, previous := *input.NewStock, gp.Stock
		if input.PreviousStock != nil {
			previous = *input.PreviousStock
		}
		update.NewStock = &newStock
		update.PreviousStock = &previous
	}
	if len(input.Prices) > 0 {
		claimed := make(map[uuid.UUID]decimal.Decimal, len(input.PreviousPrices))
		for _, p := range input.PreviousPrices {
			claimed[p.VariantID] = p.Price
		}

		update.RequestedPrices = make(map[uuid.UUID]decimal.Decimal, len(input.Prices))
		update.PreviousPrices = make(map[uuid.UUID]decimal.Decimal, len(input.Prices))
		for _, p := range input.Prices {
			variant := product.FindVariant(p.VariantID)
			if variant == nil {
				return nil, domainerrors.ErrVariantNotFound.WrapMessage("price targets a variant of another product")
			}
			previous, ok := claimed[p.VariantID]
			if !ok {
				previous, ok = gp.PriceOf(p.VariantID)
			}
			if !ok {
				previous = variant.Price
			}
			update.RequestedPrices[p.VariantID] = p.Price
			update.PreviousPrices[p.VariantID] = previous
		}
	}

	if err := srv.stockUpdateRepo.CreateStockUpdate(ctx, update); err != nil {
		return nil, translate(err, "failed to create stock update request",
			errorMapping{repository.ErrPendingStockUpdateExists, domainerrors.ErrPendingStockUpdateExists},
			errorMapping{repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound})
	}

	srv.log(ctx).Info("Stock update requested",
		slog.String("stock_update_id", update.ID.String()),
		slog.String("grower_id", growerID.String()),
		slog.String("variant_id", anchor.String()),
	)
	srv.publish(ctx, constants.EventStockUpdateRequested, update)

	return update, nil
}

// anchorVariant picks the variant the request is pinned to, defaulting to the first one.
func anchorVariant(product *entity.Product, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		if product.FindVariant(*requested) == nil {
			return uuid.Nil, domainerrors.ErrVariantNotFound
		}

		return *requested, nil
	}
	if len(product.Variants) == 0 {
		return uuid.Nil, domainerrors.ErrVariantNotFound.WrapMessage("product has no variants")
	}

	return product.Variants[0].ID, nil
}

// Approve keeps the requested values.
func (srv *stockValidationService) Approve(ctx context.Context, adminID, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error) {
	return srv.decide(ctx, adminID, requestID, comment, entity.StockUpdateApproved)
}

// Reject puts back the values recorded when the request was filed.
func (srv *stockValidationService) Reject(ctx context.Context, adminID, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error) {
	return srv.decide(ctx, adminID, requestID, comment, entity.StockUpdateRejected)
}

func (srv *stockValidationService) decide(
	ctx context.Context,
	adminID, requestID uuid.UUID,
	comment string,
	status entity.StockUpdateStatus,
) (*entity.GrowerStockUpdate, error) {
	var update *entity.GrowerStockUpdate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stockUpdateRepo := repoFactory.NewStockUpdateRepository()

		var err error
		update, err = stockUpdateRepo.FindStockUpdateByID(ctx, requestID)
		if err != nil {
			return translate(err, "failed to find stock update request",
				errorMapping{repository.ErrStockUpdateNotFound, domainerrors.ErrStockUpdateNotFound})
		}
		if !update.Status.CanTransitionTo(status) {
			return domainerrors.ErrStockUpdateNotPending
		}

		decision := repository.StockUpdateDecision{
			Status:    status,
			Comment:   comment,
			DecidedBy: adminID,
			DecidedAt: srv.now(),
		}
		if err := stockUpdateRepo.Decide(ctx, requestID, decision); err != nil {
			return translate(err, "failed to decide stock update request",
				errorMapping{repository.ErrStockUpdateNotPending, domainerrors.ErrStockUpdateNotPending},
				errorMapping{repository.ErrStockUpdateNotFound, domainerrors.ErrStockUpdateNotFound})
		}

		stock, prices := update.NewStock, update.RequestedPrices
		if status == entity.StockUpdateRejected {
			stock, prices = update.PreviousStock, update.PreviousPrices
		}
		if err := applyGrowerValues(ctx, repoFactory.NewGrowerRepository(), update, stock, prices); err != nil {
			return err
		}

		update.Status = decision.Status
		update.AdminComment = decision.Comment
		update.DecidedBy = &decision.DecidedBy
		update.DecidedAt = &decision.DecidedAt

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := srv.cache.InvalidateProduct(ctx, update.ProductID); err != nil {
		srv.log(ctx).Error("Failed to invalidate product cache",
			slog.String("product_id", update.ProductID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Stock update decided",
		slog.String("stock_update_id", update.ID.String()),
		slog.String("status", string(update.Status)),
		slog.String("admin_id", adminID.String()),
	)
	srv.publish(ctx, constants.EventStockUpdateDecided, update)

	return update, nil
}

func applyGrowerValues(
	ctx context.Context,
	growerRepo repository.GrowerRepository,
	update *entity.GrowerStockUpdate,
	stock *int,
	prices map[uuid.UUID]decimal.Decimal,
) error {
	if stock != nil {
		if err := growerRepo.UpdateGrowerProductStock(ctx, update.GrowerID, update.ProductID, *stock); err != nil {
			return translate(err, "failed to apply stock",
				errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
		}
	}

	for variantID, price := range prices {
		if err := growerRepo.UpsertVariantPrice(ctx, update.GrowerID, entity.VariantPrice{VariantID: variantID, Price: price}); err != nil {
			return translate(err, "failed to apply price",
				errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
		}
	}

	return nil
}

// Cancel deletes the grower's own PENDING request.
func (srv *stockValidationService) Cancel(ctx context.Context, growerID, requestID uuid.UUID) error {
	if err := srv.stockUpdateRepo.DeletePending(ctx, requestID, growerID); err != nil {
		return translate(err, "failed to cancel stock update request",
			errorMapping{repository.ErrStockUpdateNotFound, domainerrors.ErrStockUpdateNotFound},
			errorMapping{repository.ErrStockUpdateNotPending, domainerrors.ErrStockUpdateNotPending})
	}

	srv.log(ctx).Info("Stock update cancelled", slog.String("stock_update_id", requestID.String()))

	return nil
}

// HasPendingUpdate reports whether the variant is locked by a PENDING request.
func (srv *stockValidationService) HasPendingUpdate(ctx context.Context, variantID uuid.UUID) (bool, error) {
	exists, err := srv.stockUpdateRepo.ExistsPendingByVariant(ctx, variantID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check pending stock update")
	}

	return exists, nil
}

// GetPendingUpdateForVariant returns the PENDING request or nil when there is none.
func (srv *stockValidationService) GetPendingUpdateForVariant(ctx context.Context, variantID uuid.UUID) (*entity.GrowerStockUpdate, error) {
	update, err := srv.stockUpdateRepo.FindPendingByVariant(ctx, variantID)
	if errors.Is(err, repository.ErrStockUpdateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending stock update")
	}

	return update, nil
}

// ListRequests lists requests for the admin queue or a grower's history.
func (srv *stockValidationService) ListRequests(ctx context.Context, filter repository.StockUpdateFilter) ([]*entity.GrowerStockUpdate, error) {
	updates, err := srv.stockUpdateRepo.ListStockUpdates(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock update requests")
	}

	return updates, nil
}

// publish sends the event without failing the committed request.
func (srv *stockValidationService) publish(ctx context.Context, eventType string, update *entity.GrowerStockUpdate) {
	event := &entity.StockUpdateEvent{
		Type:         eventType,
		RequestID:    update.ID,
		GrowerID:     update.GrowerID,
		ProductID:    update.ProductID,
		VariantID:    update.VariantID,
		Status:       update.Status,
		Reason:       update.Reason,
		AdminComment: update.AdminComment,
		OccurredAt:   srv.now(),
	}

	if err := srv.publisher.PublishStockUpdateEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish stock update event",
			slog.String("stock_update_id", update.ID.String()),
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
