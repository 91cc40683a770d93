package translations

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/opaltrip/opaltrip/pkg/trip"
)

// brokenRedisCache returns a cache whose client points at a port nothing
// listens on, so every operation fails fast.
func brokenRedisCache() *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})

	return NewRedisCache(client)
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("Central Station", trip.TransportTypeTrain, "zh")

	assert.Equal(t, "station_translation:Central Station_Train_zh", key)
}

func TestTranslateWithoutCache(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, nil)

	translated := translator.Translate(context.Background(), "Central Station", trip.TransportTypeTrain, "zh")

	assert.Equal(t, "中央站", translated)
}

func TestTranslateDefaultLanguageSkipsCache(t *testing.T) {
	store := loadTestStore(t)

	// A broken cache would stall the call if it were consulted.
	translator := NewTranslator(store, brokenRedisCache())

	start := time.Now()
	translated := translator.Translate(context.Background(), "Central Station", trip.TransportTypeTrain, "en")

	assert.Equal(t, "Central Station", translated)
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}

func TestTranslateFallsBackWhenCacheUnavailable(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, brokenRedisCache())

	translated := translator.Translate(context.Background(), "Central Station", trip.TransportTypeTrain, "zh")

	assert.Equal(t, "中央站", translated)
}

func TestTranslateBatchWithoutCache(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, nil)

	items := []BatchItem{
		{Name: "Central Station", Mode: trip.TransportTypeTrain},
		{Name: "Chatswood Station", Mode: trip.TransportTypeTrain},
		{Name: "Narnia Station", Mode: trip.TransportTypeTrain},
	}

	results := translator.TranslateBatch(context.Background(), items, "zh")

	assert.Equal(t, map[string]string{
		"Central Station":   "中央站",
		"Chatswood Station": "车士活站",
		"Narnia Station":    "Narnia Station",
	}, results)
}

func TestTranslateBatchMatchesSingleTranslations(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, nil)

	items := []BatchItem{
		{Name: "Central Station, Platform 16", Mode: trip.TransportTypeTrain},
		{Name: "Circular Quay, Wharf 3", Mode: trip.TransportTypeFerry},
		{Name: "Manly", Mode: trip.TransportTypeFerry},
	}

	batchResults := translator.TranslateBatch(context.Background(), items, "zh")

	for _, item := range items {
		single := translator.Translate(context.Background(), item.Name, item.Mode, "zh")

		assert.Equal(t, single, batchResults[item.Name], "batch and single translations should agree for %q", item.Name)
	}
}

func TestTranslateBatchDefaultLanguage(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, brokenRedisCache())

	items := []BatchItem{
		{Name: "Central Station", Mode: trip.TransportTypeTrain},
		{Name: "Manly", Mode: trip.TransportTypeFerry},
	}

	results := translator.TranslateBatch(context.Background(), items, "en")

	assert.Equal(t, map[string]string{
		"Central Station": "Central Station",
		"Manly":           "Manly",
	}, results)
}

func TestTranslateBatchFallsBackWhenCacheUnavailable(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, brokenRedisCache())

	items := []BatchItem{
		{Name: "Central Station", Mode: trip.TransportTypeTrain},
		{Name: "Town Hall Station", Mode: trip.TransportTypeTrain},
	}

	results := translator.TranslateBatch(context.Background(), items, "zh")

	assert.Equal(t, map[string]string{
		"Central Station":   "中央站",
		"Town Hall Station": "市政厅站",
	}, results)
}

func TestTranslateBatchDeduplicatesItems(t *testing.T) {
	store := loadTestStore(t)
	translator := NewTranslator(store, nil)

	items := []BatchItem{
		{Name: "Central Station", Mode: trip.TransportTypeTrain},
		{Name: "Central Station", Mode: trip.TransportTypeTrain},
		{Name: "", Mode: trip.TransportTypeTrain},
	}

	results := translator.TranslateBatch(context.Background(), items, "zh")

	assert.Equal(t, map[string]string{"Central Station": "中央站"}, results)
}
