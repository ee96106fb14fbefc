package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"phone-loan/config"
	"phone-loan/repository"
	"phone-loan/service"
)

// app holds the adapters selected by configuration.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	store    repository.ApplicationStore
	catalog  repository.DeviceCatalog
	registry *prometheus.Registry
	metrics  *service.Metrics
	closers  []func()
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	a.metrics = service.NewMetrics(a.registry)

	var catalog repository.DeviceCatalog
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.store = repository.NewApplicationStorePostgres(pool)
		catalog = repository.NewDeviceCatalogPostgres(pool)
		logger.Info("using postgres application store")
	} else {
		a.store = repository.NewApplicationStoreMemory()
		catalog = repository.NewDeviceCatalogMemory(nil)
		logger.Info("using in-memory application store")
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.RedisURL != "" {
		rc, err := repository.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { rc.Close() })
		cache = rc
		logger.Info("caching device catalog in redis")
	}
	a.catalog = repository.NewCachedDeviceCatalog(catalog, cache, cfg.CatalogCacheTTL, logger)

	return a, nil
}

func (a *app) newDraft() *service.ApplicationDraft {
	return service.NewApplicationDraft(a.store, a.catalog,
		service.WithCallTimeout(a.cfg.CallTimeout),
		service.WithLogger(a.logger),
		service.WithMetrics(a.metrics),
	)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
