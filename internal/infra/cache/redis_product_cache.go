// Package cache keeps computed storefront reads in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/domain/lifecycle"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix          = "market:"
	storeProductsKey   = keyPrefix + "store_products"
	globalStockKeyBase = keyPrefix + "global_stock:"
	defaultTTL         = 5 * time.Minute
)

func globalStockKey(productID uuid.UUID) string {
	return globalStockKeyBase + productID.String()
}

type redisProductCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisProductCache wraps an existing client. A non-positive ttl falls back to five minutes.
func NewRedisProductCache(client redis.UniversalClient, ttl time.Duration) service.ProductCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisProductCache{client: client, ttl: ttl}
}

func (c *redisProductCache) GetStoreProducts(ctx context.Context) ([]entity.StoreProduct, bool, error) {
	raw, err := c.client.Get(ctx, storeProductsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "read store products")
	}

	var products []entity.StoreProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, errors.Wrap(err, "decode store products")
	}

	return products, true, nil
}

func (c *redisProductCache) SetStoreProducts(ctx context.Context, products []entity.StoreProduct) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, storeProductsKey, raw, c.ttl).Err(), "write store products")
}

func (c *redisProductCache) GetGlobalStock(ctx context.Context, productID uuid.UUID) (int, bool, error) {
	raw, err := c.client.Get(ctx, globalStockKey(productID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "read global stock")
	}

	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Wrapf(err, "decode global stock %q", raw)
	}

	return stock, true, nil
}

func (c *redisProductCache) SetGlobalStock(ctx context.Context, productID uuid.UUID, stock int) error {
	return errors.Wrap(c.client.Set(ctx, globalStockKey(productID), stock, c.ttl).Err(), "write global stock")
}

func (c *redisProductCache) InvalidateProduct(ctx context.Context, productID uuid.UUID) error {
	return errors.Wrap(c.client.Del(ctx, globalStockKey(productID), storeProductsKey).Err(), "invalidate product")
}

// noopProductCache is used when Redis is not configured; every read misses.
type noopProductCache struct{}

func (noopProductCache) GetStoreProducts(context.Context) ([]entity.StoreProduct, bool, error) {
	return nil, false, nil
}

func (noopProductCache) SetStoreProducts(context.Context, []entity.StoreProduct) error { return nil }

func (noopProductCache) GetGlobalStock(context.Context, uuid.UUID) (int, bool, error) {
	return 0, false, nil
}

func (noopProductCache) SetGlobalStock(context.Context, uuid.UUID, int) error { return nil }

func (noopProductCache) InvalidateProduct(context.Context, uuid.UUID) error { return nil }

// Params holds dependencies for the product cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis when configured and registers ping/close hooks.
func New(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopProductCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisProductCache(client, cfg.TTL)
}

// Module provides the product cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
