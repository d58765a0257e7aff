package distance_matrix_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"vivu/internal/config"
	"vivu/internal/services"
	mem "vivu/pkg/memcache"
)

var Module = fx.Provide(provideMatrixService)

const purgeInterval = time.Hour

func provideMatrixService(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) services.DistanceMatrixService {
	if !cfg.MatrixEnabled() {
		log.Info("MAPBOX_ACCESS_TOKEN not set, road distances disabled")
		return services.NewNoopMatrix()
	}

	cache := mem.NewTTLCache[services.PairKey, services.MatrixEdge]()
	client := services.NewMapboxMatrixClient(services.MapboxConfig{
		AccessToken: cfg.MapboxAccessToken,
		Profile:     cfg.MapboxProfile,
		CacheTTL:    cfg.MatrixCacheTTL,
		Timeout:     cfg.MatrixTimeout,
	}, cache, log.Named("mapbox"))

	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := cache.Purge(); n > 0 {
							log.Debug("matrix cache purged", zap.Int("expired", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(done)
			return nil
		},
	})
	return client
}
