package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/opaltrip/opaltrip/pkg/formatter"
	"github.com/opaltrip/opaltrip/pkg/tfnsw"
	"github.com/opaltrip/opaltrip/pkg/translations"
)

// Dependencies carries the collaborators the route handlers work with. They
// are created once at startup and shared across requests.
type Dependencies struct {
	Upstream         *tfnsw.Client
	Formatter        *formatter.Formatter
	TranslationCache *translations.RedisCache
	RedisClient      *redis.Client
}

func SydneyRouter(router fiber.Router, dependencies Dependencies) {
	router.Get("/trip", getTripPlan(dependencies))
	router.Get("/alerts", getServiceAlerts(dependencies))
	router.Post("/clear-translation-cache", clearTranslationCache(dependencies))
}
