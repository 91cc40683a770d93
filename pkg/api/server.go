package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/opaltrip/opaltrip/pkg/api/routes"
)

// SetupServer assembles the fiber application. Every collaborator is
// constructed by the caller and handed down explicitly, so the process owns
// exactly one upstream client and one redis client with a clear lifecycle.
func SetupServer(dependencies routes.Dependencies) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	webApp.Use(recover.New())
	webApp.Use(cors.New())
	webApp.Use(NewLogger())

	webApp.Get("/ping", routes.Ping(dependencies.RedisClient))

	group := webApp.Group("/api/v1")

	group.Get("version", routes.APIVersion)

	routes.SydneyRouter(group.Group("/sydney"), dependencies)

	return webApp
}
