package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mawid/models"

	"github.com/go-redis/redis/v8"
)

// ViewCache caches derived availability views per month. The cache may serve
// a stale view between a concurrent reservation and the next invalidation;
// that is fine because the reserve transaction never consults it.
type ViewCache interface {
	Get(ctx context.Context, year, month int) (*models.AvailabilityView, bool)
	Set(ctx context.Context, view *models.AvailabilityView)
	Invalidate(ctx context.Context, year, month int)
}

type RedisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisViewCache(client *redis.Client, ttl time.Duration) ViewCache {
	return &RedisViewCache{client: client, ttl: ttl}
}

const viewKeyPrefix = "calendar:view:"

func viewKey(year, month int) string {
	return fmt.Sprintf("%s%s", viewKeyPrefix, models.MonthKey(year, month))
}

func (c *RedisViewCache) Get(ctx context.Context, year, month int) (*models.AvailabilityView, bool) {
	val, err := c.client.Get(ctx, viewKey(year, month)).Result()
	if err != nil {
		return nil, false
	}
	var view models.AvailabilityView
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, false // skip corrupt entries
	}
	return &view, true
}

func (c *RedisViewCache) Set(ctx context.Context, view *models.AvailabilityView) {
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	c.client.Set(ctx, viewKey(view.Year, view.Month), data, c.ttl)
}

func (c *RedisViewCache) Invalidate(ctx context.Context, year, month int) {
	c.client.Del(ctx, viewKey(year, month))
}
