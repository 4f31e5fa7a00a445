package cache

import (
	"context"
	"testing"
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisProductCache_StoreProducts(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisProductCache(newRedisClient(t), time.Minute)

	_, ok, err := cache.GetStoreProducts(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	products := []entity.StoreProduct{
		{Product: entity.Product{ID: uuid.New(), Name: "Tomatoes", ShowInStore: true}, GlobalStock: 12},
	}
	require.NoError(t, cache.SetStoreProducts(ctx, products))

	got, ok, err := cache.GetStoreProducts(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, products[0].Product.ID, got[0].Product.ID)
	assert.Equal(t, 12, got[0].GlobalStock)
}

func TestRedisProductCache_InvalidateProduct(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisProductCache(newRedisClient(t), time.Minute)
	productID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, cache.SetGlobalStock(ctx, productID, 7))
	require.NoError(t, cache.SetGlobalStock(ctx, otherID, 3))
	require.NoError(t, cache.SetStoreProducts(ctx, []entity.StoreProduct{}))

	stock, ok, err := cache.GetGlobalStock(ctx, productID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, stock)

	require.NoError(t, cache.InvalidateProduct(ctx, productID))

	_, ok, err = cache.GetGlobalStock(ctx, productID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = cache.GetStoreProducts(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "store list is dropped with any product")

	stock, ok, err = cache.GetGlobalStock(ctx, otherID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, stock)
}

func TestNoopProductCache_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var cache noopProductCache

	require.NoError(t, cache.SetGlobalStock(ctx, uuid.New(), 1))
	_, ok, err := cache.GetGlobalStock(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = cache.GetStoreProducts(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
