package api

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/opaltrip/opaltrip/pkg/api/routes"
	"github.com/opaltrip/opaltrip/pkg/datasets"
	"github.com/opaltrip/opaltrip/pkg/fares"
	"github.com/opaltrip/opaltrip/pkg/formatter"
	"github.com/opaltrip/opaltrip/pkg/redis_client"
	"github.com/opaltrip/opaltrip/pkg/tfnsw"
	"github.com/opaltrip/opaltrip/pkg/translations"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the trip planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					tables, err := datasets.Load()
					if err != nil {
						return err
					}

					redisClient, err := redis_client.Connect()
					if err != nil {
						// The cache is an optimisation, so a missing redis
						// only costs repeated translation lookups.
						log.Warn().Err(err).Msg("Redis unavailable, translations will not be cached")
					}

					var translationCache *translations.RedisCache
					if redisClient != nil {
						translationCache = translations.NewRedisCache(redisClient)
					}

					fareEngine := fares.NewEngine(tables.Distances, tables.Holidays)
					translator := translations.NewTranslator(tables.Stations, translationCache)

					dependencies := routes.Dependencies{
						Upstream:         tfnsw.NewClient(),
						Formatter:        formatter.New(fareEngine, translator),
						TranslationCache: translationCache,
						RedisClient:      redisClient,
					}

					webApp := SetupServer(dependencies)

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					go func() {
						<-signals
						log.Info().Msg("Shutting down web api server")

						if err := webApp.Shutdown(); err != nil {
							log.Error().Err(err).Msg("Failed to shut down web server cleanly")
						}
					}()

					log.Info().Str("listen", c.String("listen")).Msg("Starting web api server")

					if err := webApp.Listen(c.String("listen")); err != nil {
						return err
					}

					if redisClient != nil {
						if err := redisClient.Close(); err != nil {
							log.Error().Err(err).Msg("Failed to close redis client")
						}
					}

					return nil
				},
			},
		},
	}
}
