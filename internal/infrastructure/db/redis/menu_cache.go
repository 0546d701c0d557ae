package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const (
	menuCacheKey = "menu:catalog"
	menuCacheTTL = 5 * time.Minute
)

// MenuCache is a cache-aside store for the public menu listing. All failures
// degrade to a miss; the caller falls back to the repository.
type MenuCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewMenuCache(client *redis.Client, log zerolog.Logger) *MenuCache {
	return &MenuCache{client: client, log: log}
}

// Get returns the cached listing and whether it was present.
func (c *MenuCache) Get(ctx context.Context) ([]domain.MenuItem, bool) {
	raw, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("menu cache read failed")
		}
		return nil, false
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("menu cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

// Set stores the listing with a short TTL.
func (c *MenuCache) Set(ctx context.Context, items []domain.MenuItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("menu cache encode failed")
		return
	}
	if err := c.client.Set(ctx, menuCacheKey, raw, menuCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("menu cache write failed")
	}
}

// Invalidate drops the cached listing after a catalog mutation.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, menuCacheKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
