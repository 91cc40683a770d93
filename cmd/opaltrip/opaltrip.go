package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/opaltrip/opaltrip/pkg/api"
	"github.com/opaltrip/opaltrip/pkg/datasets"

	_ "time/tzdata"
)

func main() {
	godotenv.Load()

	if os.Getenv("OPALTRIP_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("OPALTRIP_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "opaltrip",
		Description: "Trip planning backend-for-frontend for the Sydney public transport network",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			datasets.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
