package presence

import (
	"context"
	"log/slog"

	"huddle/config"
	"huddle/internal/domain/lifecycle"
	"huddle/internal/domain/repository"
	"huddle/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the location store, injected by Fx.
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStore selects the location store implementation from configuration: the
// Redis store when enabled, otherwise the in-process store.
func NewStore(params StoreParams) (repository.LocationRepository, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Using in-process location store")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis location store", slog.String("addr", cfg.Addr))

	return NewRedisStore(client, cfg, params.Logger), nil
}
