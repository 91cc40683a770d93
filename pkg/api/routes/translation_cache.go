package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// clearTranslationCache deletes every cached station name translation.
// Translations recompute and re-populate the cache on demand, so this is the
// follow-up action after shipping updated translation data files.
func clearTranslationCache(dependencies Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if dependencies.TranslationCache == nil {
			c.SendStatus(fiber.StatusServiceUnavailable)
			return c.JSON(fiber.Map{
				"error": "Translation cache is not connected",
			})
		}

		cleared, err := dependencies.TranslationCache.Clear(c.Context())
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Could not clear translation cache",
			})
		}

		log.Info().Int64("cleared", cleared).Msg("Cleared translation cache")

		return c.JSON(fiber.Map{
			"message":            fmt.Sprintf("Successfully cleared %d translation cache entries", cleared),
			"cleared_keys_count": cleared,
		})
	}
}
