package bootstrap

import (
	"context"
	"log/slog"

	"aerotrav/internal/infra/cache"
	"aerotrav/internal/pkg/config"
	"aerotrav/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewCheckoutGuard,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, err := cache.New(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewCheckoutGuard(cfg config.Config, rdb *redis.Client) commands.CheckoutGuard {
	if rdb == nil {
		slog.Info("redis not configured, checkout lock is process-local")
		return cache.NewLocalLocker()
	}
	return cache.NewRedisLocker(rdb, cfg.Checkout.LockTTL)
}
