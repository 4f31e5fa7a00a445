package impl

import (
	"context"
	"log/slog"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// growerStockService implements the GrowerStockUsecase interface.
type growerStockService struct {
	txManager       repository.TransactionManager
	growerRepo      repository.GrowerRepository
	productRepo     repository.ProductRepository
	stockUpdateRepo repository.StockUpdateRepository
	cache           service.ProductCache
	logger          *slog.Logger
}

// GrowerStockServiceParams holds dependencies for GrowerStockService, injected by Fx.
type GrowerStockServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	GrowerRepo      repository.GrowerRepository
	ProductRepo     repository.ProductRepository
	StockUpdateRepo repository.StockUpdateRepository
	Cache           service.ProductCache
	Logger          *slog.Logger
}

// NewGrowerStockService is the constructor for growerStockService.
func NewGrowerStockService(params GrowerStockServiceParams) usecase.GrowerStockUsecase {
	return &growerStockService{
		txManager:       params.TxManager,
		growerRepo:      params.GrowerRepo,
		productRepo:     params.ProductRepo,
		stockUpdateRepo: params.StockUpdateRepo,
		cache:           params.Cache,
		logger:          params.Logger,
	}
}

func (srv *growerStockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddGrowerProduct links a product to a grower with catalog prices.
func (srv *growerStockService) AddGrowerProduct(ctx context.Context, growerID, productID uuid.UUID, stock int, forceReplace bool) (*entity.GrowerProduct, error) {
	if stock < 0 {
		return nil, domainerrors.ErrNegativeStock
	}

	var result *entity.GrowerProduct
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		growerRepo := repoFactory.NewGrowerRepository()

		if _, err := growerRepo.FindGrowerByID(ctx, growerID); err != nil {
			return translate(err, "failed to find grower",
				errorMapping{repository.ErrGrowerNotFound, domainerrors.ErrNotFound.WithDetails("grower not found")})
		}

		product, err := repoFactory.NewProductRepository().FindProductByID(ctx, productID)
		if err != nil {
			return translate(err, "failed to find product",
				errorMapping{repository.ErrProductNotFound, domainerrors.ErrProductNotFound})
		}

		gp := &entity.GrowerProduct{
			GrowerID:  growerID,
			ProductID: productID,
			Stock:     stock,
			Variants:  catalogPrices(product),
		}

		// Look up first: a unique violation would abort the surrounding transaction.
		existing, err := growerRepo.FindGrowerProduct(ctx, growerID, productID)
		switch {
		case err == nil:
			if !forceReplace {
				return domainerrors.ErrGrowerProductExists
			}
			gp.ID = existing.ID
			if err := growerRepo.ReplaceGrowerProduct(ctx, gp); err != nil {
				return errors.Wrap(err, "failed to replace grower product")
			}
		case errors.Is(err, repository.ErrGrowerProductNotFound):
			if err := growerRepo.CreateGrowerProduct(ctx, gp); err != nil {
				return translate(err, "failed to create grower product",
					errorMapping{repository.ErrDuplicateGrowerProduct, domainerrors.ErrGrowerProductExists})
			}
		default:
			return errors.Wrap(err, "failed to find grower product")
		}

		result = gp

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx, productID)
	srv.log(ctx).Info("Grower product added",
		slog.String("grower_id", growerID.String()),
		slog.String("product_id", productID.String()),
		slog.Bool("replaced", forceReplace),
	)

	return result, nil
}

func catalogPrices(product *entity.Product) []entity.GrowerProductVariant {
	variants := make([]entity.GrowerProductVariant, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, entity.GrowerProductVariant{VariantID: v.ID, Price: v.Price})
	}

	return variants
}

// RemoveGrowerProduct drops the association and its prices.
func (srv *growerStockService) RemoveGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) error {
	if err := srv.growerRepo.DeleteGrowerProduct(ctx, growerID, productID); err != nil {
		return translate(err, "failed to delete grower product",
			errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
	}

	srv.invalidate(ctx, productID)

	return nil
}

// UpdateGrowerProductStock sets the grower's stock for a product.
func (srv *growerStockService) UpdateGrowerProductStock(ctx context.Context, growerID, productID uuid.UUID, stock int) error {
	if stock < 0 {
		return domainerrors.ErrNegativeStock
	}

	if err := srv.growerRepo.UpdateGrowerProductStock(ctx, growerID, productID, stock); err != nil {
		return translate(err, "failed to update grower product stock",
			errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
	}

	srv.invalidate(ctx, productID)

	return nil
}

// UpdateMultipleVariantPrices writes all prices in one transaction.
func (srv *growerStockService) UpdateMultipleVariantPrices(ctx context.Context, growerID uuid.UUID, prices []entity.VariantPrice) error {
	if len(prices) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(prices))
	for _, p := range prices {
		if p.Price.IsNegative() {
			return domainerrors.ErrNegativePrice
		}
		ids = append(ids, p.VariantID)
	}

	affected := make(map[uuid.UUID]struct{})
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variants, err := repoFactory.NewProductRepository().FindVariantsByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to find variants")
		}

		growerRepo := repoFactory.NewGrowerRepository()
		for _, p := range prices {
			variant, ok := variants[p.VariantID]
			if !ok {
				return domainerrors.ErrVariantNotFound
			}
			if err := growerRepo.UpsertVariantPrice(ctx, growerID, p); err != nil {
				return translate(err, "failed to upsert variant price",
					errorMapping{repository.ErrGrowerProductNotFound, domainerrors.ErrGrowerProductNotFound})
			}
			affected[variant.ProductID] = struct{}{}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for productID := range affected {
		srv.invalidate(ctx, productID)
	}

	return nil
}

// GetGrowerStockPageData gathers what the stock editor shows for one product.
func (srv *growerStockService) GetGrowerStockPageData(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerStockPageData, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, translate(err, "failed to find product",
			errorMapping{repository.ErrProductNotFound, domainerrors.ErrProductNotFound})
	}

	data := &entity.GrowerStockPageData{Product: *product}

	gp, err := srv.growerRepo.FindGrowerProduct(ctx, growerID, productID)
	switch {
	case err == nil:
		data.GrowerProduct = gp
	case errors.Is(err, repository.ErrGrowerProductNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find grower product")
	}

	data.GlobalStock, err = srv.GetProductGlobalStock(ctx, productID)
	if err != nil {
		return nil, err
	}

	pending, err := srv.stockUpdateRepo.FindPendingByProduct(ctx, growerID, productID)
	switch {
	case err == nil:
		data.PendingUpdate = pending
	case errors.Is(err, repository.ErrStockUpdateNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find pending stock update")
	}

	return data, nil
}

// ListGrowerProducts returns every product the grower carries.
func (srv *growerStockService) ListGrowerProducts(ctx context.Context, growerID uuid.UUID) ([]*entity.GrowerProduct, error) {
	products, err := srv.growerRepo.ListGrowerProducts(ctx, growerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grower products")
	}

	return products, nil
}

// GetProductGlobalStock sums the product's stock over all growers.
func (srv *growerStockService) GetProductGlobalStock(ctx context.Context, productID uuid.UUID) (int, error) {
	stock, ok, err := srv.cache.GetGlobalStock(ctx, productID)
	if err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.String("product_id", productID.String()), slog.Any("error", err))
	}
	if ok {
		return stock, nil
	}

	stock, err = srv.growerRepo.SumStockByProduct(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum product stock")
	}

	if err := srv.cache.SetGlobalStock(ctx, productID, stock); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.String("product_id", productID.String()), slog.Any("error", err))
	}

	return stock, nil
}

// ListStoreProducts returns the storefront with global stock per product.
func (srv *growerStockService) ListStoreProducts(ctx context.Context) ([]entity.StoreProduct, error) {
	cached, ok, err := srv.cache.GetStoreProducts(ctx)
	if err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.Any("error", err))
	}
	if ok {
		return cached, nil
	}

	products, err := srv.productRepo.ListStoreProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	stocks, err := srv.growerRepo.SumStockByProducts(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum store product stock")
	}

	store := make([]entity.StoreProduct, 0, len(products))
	for _, p := range products {
		store = append(store, entity.StoreProduct{Product: *p, GlobalStock: stocks[p.ID]})
	}

	if err := srv.cache.SetStoreProducts(ctx, store); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Any("error", err))
	}

	return store, nil
}

// invalidate drops cached reads for the product. Errors are logged; stale entries still expire by TTL.
func (srv *growerStockService) invalidate(ctx context.Context, productID uuid.UUID) {
	if err := srv.cache.InvalidateProduct(ctx, productID); err != nil {
		srv.log(ctx).Error("Failed to invalidate product cache",
			slog.String("product_id", productID.String()),
			slog.Any("error", err),
		)
	}
}
