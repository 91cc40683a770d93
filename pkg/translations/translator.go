package translations

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/opaltrip/opaltrip/pkg/trip"
	"github.com/opaltrip/opaltrip/pkg/util"
)

// Translator resolves display names through the cache, falling back to the
// store's direct computation on any miss or cache failure. A nil cache is
// valid and simply computes everything directly.
type Translator struct {
	store *Store
	cache *RedisCache
}

func NewTranslator(store *Store, cache *RedisCache) *Translator {
	return &Translator{
		store: store,
		cache: cache,
	}
}

// BatchItem is one name and the transport mode its translation table should
// come from.
type BatchItem struct {
	Name string
	Mode trip.TransportType
}

// Translate resolves a single name. The default language and unsupported
// languages return the name unchanged without touching the cache.
func (translator *Translator) Translate(ctx context.Context, name string, mode trip.TransportType, language string) string {
	if name == "" || !translatableLanguage(language) {
		return name
	}

	key := CacheKey(name, mode, language)

	if translator.cache != nil {
		if cached, err := translator.cache.Get(ctx, key); err == nil {
			return cached
		}
	}

	translated := translator.store.TranslateName(name, mode, language)

	if translator.cache != nil {
		if err := translator.cache.Set(ctx, key, translated); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("Failed to cache translation")
		}
	}

	return translated
}

// TranslateBatch resolves every item with a single cache round trip and
// returns a name to display name mapping. Cache misses are computed directly
// and written back; a cache infrastructure failure degrades the entire batch
// to direct computation without caching.
func (translator *Translator) TranslateBatch(ctx context.Context, items []BatchItem, language string) map[string]string {
	results := make(map[string]string, len(items))

	if !translatableLanguage(language) {
		for _, item := range items {
			results[item.Name] = item.Name
		}

		return results
	}

	itemsByKey := make(map[string]BatchItem, len(items))
	keys := make([]string, 0, len(items))

	for _, item := range items {
		if item.Name == "" {
			continue
		}

		key := CacheKey(item.Name, item.Mode, language)
		if _, seen := itemsByKey[key]; !seen {
			itemsByKey[key] = item
		}
		keys = append(keys, key)
	}
	keys = util.RemoveDuplicateStrings(keys, nil)

	cached := map[string]string{}
	cacheUsable := translator.cache != nil

	if cacheUsable {
		var err error

		cached, err = translator.cache.GetBatch(ctx, keys)
		if err != nil {
			log.Warn().Err(err).Msg("Translation cache unavailable, computing batch directly")

			cacheUsable = false
			cached = map[string]string{}
		}
	}

	for _, key := range keys {
		item := itemsByKey[key]

		if value, found := cached[key]; found {
			results[item.Name] = value

			continue
		}

		translated := translator.store.TranslateName(item.Name, item.Mode, language)
		results[item.Name] = translated

		if cacheUsable {
			if err := translator.cache.Set(ctx, key, translated); err != nil {
				log.Debug().Err(err).Str("key", key).Msg("Failed to cache translation")
			}
		}
	}

	return results
}

func translatableLanguage(language string) bool {
	return language != DefaultLanguage && slices.Contains(SupportedLanguages, language)
}
