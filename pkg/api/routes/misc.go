package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": "v0.1",
	})
}

// Ping reports whether the translation cache's redis backend is reachable.
// The service keeps answering trip requests without it, so an unreachable
// cache is reported in the body rather than with an error status.
func Ping(redisClient *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.JSON(fiber.Map{
				"status":  "error",
				"message": "Redis is not configured",
			})
		}

		if err := redisClient.Ping(c.Context()).Err(); err != nil {
			return c.JSON(fiber.Map{
				"status":  "error",
				"message": fmt.Sprintf("Redis connection failed: %s", err),
			})
		}

		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Redis connection successful",
		})
	}
}
