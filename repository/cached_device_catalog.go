package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"phone-loan/domain"
)

const deviceCatalogCacheKey = "phone-loan:devices"

// CachedDeviceCatalog serves the device list from a cache, falling back to
// the wrapped catalog on a miss. Cache failures are logged and never fail
// a listing.
type CachedDeviceCatalog struct {
	inner  DeviceCatalog
	cache  CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedDeviceCatalog(inner DeviceCatalog, cache CacheRepository, ttl time.Duration, logger *slog.Logger) *CachedDeviceCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedDeviceCatalog{inner: inner, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedDeviceCatalog) ListDevices(ctx context.Context) ([]domain.Device, error) {
	if raw, ok := c.cache.Get(ctx, deviceCatalogCacheKey); ok {
		var devices []domain.Device
		if err := json.Unmarshal([]byte(raw), &devices); err == nil {
			return devices, nil
		}
		c.logger.Warn("discarding unreadable device catalog cache entry")
	}

	devices, err := c.inner.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(devices); err != nil {
		c.logger.Warn("failed to encode device catalog for cache", "error", err)
	} else if err := c.cache.Set(ctx, deviceCatalogCacheKey, string(raw), c.ttl); err != nil {
		c.logger.Warn("failed to cache device catalog", "error", err)
	}
	return devices, nil
}

// Invalidate drops the cached listing.
func (c *CachedDeviceCatalog) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, deviceCatalogCacheKey)
}
