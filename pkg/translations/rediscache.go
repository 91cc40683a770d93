package translations

import (
	"context"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"

	"github.com/opaltrip/opaltrip/pkg/trip"
)

const (
	cacheKeyPrefix = "station_translation:"
	cacheTTL       = 24 * time.Hour
)

// RedisCache stores computed translations so repeated journeys through the
// same stations skip the table lookups. Every operation is best effort;
// callers compute translations directly whenever the cache cannot answer.
type RedisCache struct {
	client *redis.Client
	cache  *cache.Cache[string]
}

// NewRedisCache wraps an established redis client. The client's lifecycle
// stays with the caller, which closes it on shutdown.
func NewRedisCache(client *redis.Client) *RedisCache {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(cacheTTL))

	return &RedisCache{
		client: client,
		cache:  cache.New[string](redisStore),
	}
}

// CacheKey builds the cache key for one translation input. Keys embed every
// input that affects the output so distinct requests never collide.
func CacheKey(name string, mode trip.TransportType, language string) string {
	return fmt.Sprintf("%s%s_%s_%s", cacheKeyPrefix, name, mode, language)
}

func (redisCache *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return redisCache.cache.Get(ctx, key)
}

func (redisCache *RedisCache) Set(ctx context.Context, key string, value string) error {
	return redisCache.cache.Set(ctx, key, value)
}

// GetBatch fetches many keys in a single round trip and returns the subset
// that was found. A non nil error means the cache is unavailable and the
// whole batch should be computed directly.
func (redisCache *RedisCache) GetBatch(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	values, err := redisCache.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	found := make(map[string]string, len(keys))
	for index, value := range values {
		if value == nil {
			continue
		}

		if text, ok := value.(string); ok {
			found[keys[index]] = text
		}
	}

	return found, nil
}

// Clear removes every cached translation and returns how many keys were
// deleted.
func (redisCache *RedisCache) Clear(ctx context.Context) (int64, error) {
	keys, err := redisCache.client.Keys(ctx, cacheKeyPrefix+"*").Result()
	if err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}

	return redisCache.client.Del(ctx, keys...).Result()
}
