package bootstrap

import (
	"context"

	"lift-reservation/internal/infra/cache"
	"lift-reservation/internal/pkg/config"
	"lift-reservation/internal/pkg/telemetry"
	"lift-reservation/internal/usecase/commands"
	"lift-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

// AvailabilityCache is read by availability queries and invalidated by commands.
type AvailabilityCache interface {
	queries.AvailabilityCache
	commands.AvailabilityInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
		func(c AvailabilityCache) queries.AvailabilityCache { return c },
		func(c AvailabilityCache) commands.AvailabilityInvalidator { return c },
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, tp *telemetry.Provider) (AvailabilityCache, error) {
	if !cfg.Redis.Enabled {
		return cache.NoopAvailabilityCache{}, nil
	}

	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis, tp.Enabled())
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL), nil
}
