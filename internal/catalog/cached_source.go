package catalog

import (
	"context"
	"time"

	"groeipaden_app/internal/models"
	"groeipaden_app/internal/services"
)

const cacheKey = "catalog:routes"

// CachedSource serves routes from Redis, falling back to Inner on a miss
type CachedSource struct {
	Cache *services.RedisCache
	Inner Source
	TTL   time.Duration
}

func (s CachedSource) Name() string { return "redis+" + s.Inner.Name() }

func (s CachedSource) Load(ctx context.Context) ([]models.Route, error) {
	return services.GetOrSet(s.Cache, ctx, cacheKey, s.TTL, func() ([]models.Route, error) {
		return s.Inner.Load(ctx)
	})
}

// Invalidate drops the cached dataset so the next Load reads Inner again
func (s CachedSource) Invalidate(ctx context.Context) error {
	return s.Cache.Delete(ctx, cacheKey)
}
