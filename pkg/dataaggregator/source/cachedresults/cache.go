package cachedresults

import (
	"context"
	"time"

	"github.com/bluele/gcache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/linkalls/norikae/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

const defaultLocalSize = 1000

// Cache keeps JSON encoded lookup results. Redis backs it when a client is connected so every
// instance shares results, otherwise entries live in an in process LRU.
type Cache struct {
	Cache *cache.Cache[string]

	local gcache.Cache
}

func (c *Cache) Setup(defaultExpiration time.Duration, localSize int) {
	if redis_client.Client != nil {
		redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(defaultExpiration))
		c.Cache = cache.New[string](redisStore)

		log.Debug().Msg("Cached results stored in Redis")
		return
	}

	if localSize <= 0 {
		localSize = defaultLocalSize
	}
	c.local = gcache.New(localSize).LRU().Expiration(defaultExpiration).Build()

	log.Debug().Int("size", localSize).Msg("Cached results stored in process")
}

// Get returns the cached value, any error is a cache miss
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c.Cache != nil {
		return c.Cache.Get(ctx, key)
	}

	value, err := c.local.Get(key)
	if err != nil {
		return "", err
	}

	return value.(string), nil
}

func (c *Cache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if c.Cache != nil {
		return c.Cache.Set(ctx, key, value, store.WithExpiration(expiration))
	}

	return c.local.SetWithExpire(key, value, expiration)
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.Cache != nil {
		return c.Cache.Delete(ctx, key)
	}

	c.local.Remove(key)
	return nil
}
