package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// growerStockServiceFixtures holds all test dependencies for grower stock service tests.
type growerStockServiceFixtures struct {
	service         *growerStockService
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	growerRepo      *mockRepo.MockGrowerRepository
	productRepo     *mockRepo.MockProductRepository
	stockUpdateRepo *mockRepo.MockStockUpdateRepository
	cache           *mockSvc.MockProductCache
}

func createTestGrowerStockService(t *testing.T) growerStockServiceFixtures {
	f := growerStockServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		factory:         mockRepo.NewMockRepositoryFactory(t),
		growerRepo:      mockRepo.NewMockGrowerRepository(t),
		productRepo:     mockRepo.NewMockProductRepository(t),
		stockUpdateRepo: mockRepo.NewMockStockUpdateRepository(t),
		cache:           mockSvc.NewMockProductCache(t),
	}

	expectTransaction(f.txManager, f.factory)
	f.factory.EXPECT().NewGrowerRepository().Return(f.growerRepo).Maybe()
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo).Maybe()

	f.service = NewGrowerStockService(GrowerStockServiceParams{
		TxManager:       f.txManager,
		GrowerRepo:      f.growerRepo,
		ProductRepo:     f.productRepo,
		StockUpdateRepo: f.stockUpdateRepo,
		Cache:           f.cache,
		Logger:          newDiscardLogger(),
	}).(*growerStockService)

	return f
}

func twoVariantProduct() *entity.Product {
	productID := uuid.New()

	return &entity.Product{
		ID:   productID,
		Name: "Apples",
		Variants: []entity.ProductVariant{
			{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(2)},
			{ID: uuid.New(), ProductID: productID, Price: decimal.NewFromInt(5)},
		},
	}
}

func TestGrowerStockService_AddGrowerProduct(t *testing.T) {
	growerID := uuid.New()

	t.Run("new association copies catalog prices", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		product := twoVariantProduct()

		f.growerRepo.EXPECT().FindGrowerByID(mock.Anything, growerID).Return(&entity.Grower{ID: growerID}, nil)
		f.productRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil)
		f.growerRepo.EXPECT().FindGrowerProduct(mock.Anything, growerID, product.ID).Return(nil, repository.ErrGrowerProductNotFound)
		f.growerRepo.EXPECT().CreateGrowerProduct(mock.Anything, mock.AnythingOfType("*entity.GrowerProduct")).Return(nil)
		f.cache.EXPECT().InvalidateProduct(mock.Anything, product.ID).Return(nil)

		gp, err := f.service.AddGrowerProduct(context.Background(), growerID, product.ID, 10, false)
		require.NoError(t, err)
		assert.Equal(t, 10, gp.Stock)
		require.Len(t, gp.Variants, 2)
		price, ok := gp.PriceOf(product.Variants[1].ID)
		assert.True(t, ok)
		assert.True(t, price.Equal(decimal.NewFromInt(5)))
	})

	t.Run("duplicate without force", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		product := twoVariantProduct()

		f.growerRepo.EXPECT().FindGrowerByID(mock.Anything, growerID).Return(&entity.Grower{ID: growerID}, nil)
		f.productRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil)
		f.growerRepo.EXPECT().FindGrowerProduct(mock.Anything, growerID, product.ID).Return(&entity.GrowerProduct{ID: uuid.New()}, nil)

		_, err := f.service.AddGrowerProduct(context.Background(), growerID, product.ID, 10, false)
		assert.True(t, errors.Is(err, domainerrors.ErrGrowerProductExists))
	})

	t.Run("duplicate with force replaces", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		product := twoVariantProduct()
		existing := &entity.GrowerProduct{ID: uuid.New(), Stock: 99}

		f.growerRepo.EXPECT().FindGrowerByID(mock.Anything, growerID).Return(&entity.Grower{ID: growerID}, nil)
		f.productRepo.EXPECT().FindProductByID(mock.Anything, product.ID).Return(product, nil)
		f.growerRepo.EXPECT().FindGrowerProduct(mock.Anything, growerID, product.ID).Return(existing, nil)
		f.growerRepo.EXPECT().
			ReplaceGrowerProduct(mock.Anything, mock.MatchedBy(func(gp *entity.GrowerProduct) bool {
				return gp.ID == existing.ID && gp.Stock == 3 && len(gp.Variants) == 2
			})).
			Return(nil)
		f.cache.EXPECT().InvalidateProduct(mock.Anything, product.ID).Return(nil)

		gp, err := f.service.AddGrowerProduct(context.Background(), growerID, product.ID, 3, true)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, gp.ID)
	})

	t.Run("negative stock", func(t *testing.T) {
		f := createTestGrowerStockService(t)

		_, err := f.service.AddGrowerProduct(context.Background(), growerID, uuid.New(), -1, false)
		assert.True(t, errors.Is(err, domainerrors.ErrNegativeStock))
	})
}

func TestGrowerStockService_UpdateGrowerProductStock(t *testing.T) {
	f := createTestGrowerStockService(t)
	ctx := context.Background()
	growerID, productID := uuid.New(), uuid.New()

	f.growerRepo.EXPECT().UpdateGrowerProductStock(ctx, growerID, productID, 0).Return(nil)
	f.cache.EXPECT().InvalidateProduct(ctx, productID).Return(errors.New("redis down"))

	// A cache failure does not fail the committed write.
	require.NoError(t, f.service.UpdateGrowerProductStock(ctx, growerID, productID, 0))

	err := f.service.UpdateGrowerProductStock(ctx, growerID, productID, -4)
	assert.True(t, errors.Is(err, domainerrors.ErrNegativeStock))
}

func TestGrowerStockService_UpdateMultipleVariantPrices(t *testing.T) {
	growerID := uuid.New()

	t.Run("invalidates each affected product once", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		product := twoVariantProduct()
		prices := []entity.VariantPrice{
			{VariantID: product.Variants[0].ID, Price: decimal.NewFromInt(3)},
			{VariantID: product.Variants[1].ID, Price: decimal.Zero},
		}
		variants := map[uuid.UUID]*entity.ProductVariant{
			product.Variants[0].ID: &product.Variants[0],
			product.Variants[1].ID: &product.Variants[1],
		}

		f.productRepo.EXPECT().FindVariantsByIDs(mock.Anything, []uuid.UUID{prices[0].VariantID, prices[1].VariantID}).Return(variants, nil)
		f.growerRepo.EXPECT().UpsertVariantPrice(mock.Anything, growerID, prices[0]).Return(nil)
		f.growerRepo.EXPECT().UpsertVariantPrice(mock.Anything, growerID, prices[1]).Return(nil)
		f.cache.EXPECT().InvalidateProduct(mock.Anything, product.ID).Return(nil).Once()

		require.NoError(t, f.service.UpdateMultipleVariantPrices(context.Background(), growerID, prices))
	})

	t.Run("negative price is rejected before any write", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		prices := []entity.VariantPrice{
			{VariantID: uuid.New(), Price: decimal.NewFromInt(1)},
			{VariantID: uuid.New(), Price: decimal.NewFromInt(-1)},
		}

		err := f.service.UpdateMultipleVariantPrices(context.Background(), growerID, prices)
		assert.True(t, errors.Is(err, domainerrors.ErrNegativePrice))
	})

	t.Run("unknown variant aborts the batch", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		prices := []entity.VariantPrice{{VariantID: uuid.New(), Price: decimal.NewFromInt(1)}}

		f.productRepo.EXPECT().FindVariantsByIDs(mock.Anything, mock.Anything).Return(map[uuid.UUID]*entity.ProductVariant{}, nil)

		err := f.service.UpdateMultipleVariantPrices(context.Background(), growerID, prices)
		assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
	})
}

func TestGrowerStockService_GetGrowerStockPageData(t *testing.T) {
	f := createTestGrowerStockService(t)
	ctx := context.Background()
	growerID := uuid.New()
	product := twoVariantProduct()
	pending := &entity.GrowerStockUpdate{ID: uuid.New(), Status: entity.StockUpdatePending}

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.growerRepo.EXPECT().FindGrowerProduct(ctx, growerID, product.ID).Return(nil, repository.ErrGrowerProductNotFound)
	f.cache.EXPECT().GetGlobalStock(ctx, product.ID).Return(0, false, nil)
	f.growerRepo.EXPECT().SumStockByProduct(ctx, product.ID).Return(42, nil)
	f.cache.EXPECT().SetGlobalStock(ctx, product.ID, 42).Return(nil)
	f.stockUpdateRepo.EXPECT().FindPendingByProduct(ctx, growerID, product.ID).Return(pending, nil)

	data, err := f.service.GetGrowerStockPageData(ctx, growerID, product.ID)
	require.NoError(t, err)
	assert.Nil(t, data.GrowerProduct)
	assert.Equal(t, 42, data.GlobalStock)
	assert.Equal(t, pending, data.PendingUpdate)
}

func TestGrowerStockService_GetProductGlobalStock_CacheHit(t *testing.T) {
	f := createTestGrowerStockService(t)
	productID := uuid.New()

	f.cache.EXPECT().GetGlobalStock(mock.Anything, productID).Return(17, true, nil)

	stock, err := f.service.GetProductGlobalStock(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 17, stock)
}

func TestGrowerStockService_ListStoreProducts(t *testing.T) {
	t.Run("miss builds from repositories and fills cache", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		ctx := context.Background()
		a, b := twoVariantProduct(), twoVariantProduct()

		f.cache.EXPECT().GetStoreProducts(ctx).Return(nil, false, errors.New("redis down"))
		f.productRepo.EXPECT().ListStoreProducts(ctx).Return([]*entity.Product{a, b}, nil)
		f.growerRepo.EXPECT().SumStockByProducts(ctx, []uuid.UUID{a.ID, b.ID}).Return(map[uuid.UUID]int{a.ID: 4}, nil)
		f.cache.EXPECT().SetStoreProducts(ctx, mock.Anything).Return(nil)

		store, err := f.service.ListStoreProducts(ctx)
		require.NoError(t, err)
		require.Len(t, store, 2)
		assert.Equal(t, 4, store[0].GlobalStock)
		assert.Equal(t, 0, store[1].GlobalStock)
	})

	t.Run("hit skips repositories", func(t *testing.T) {
		f := createTestGrowerStockService(t)
		cached := []entity.StoreProduct{{GlobalStock: 9}}
		f.cache.EXPECT().GetStoreProducts(mock.Anything).Return(cached, true, nil)

		store, err := f.service.ListStoreProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cached, store)
	})
}
