package datasets

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/opaltrip/opaltrip/pkg/fares"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Inspect and validate the static data tables",
		Subcommands: []*cli.Command{
			{
				Name:  "validate",
				Usage: "load every data file and report its size",
				Action: func(c *cli.Context) error {
					tables, err := Load()
					if err != nil {
						return err
					}

					log.Info().
						Int("distances", tables.Distances.Count()).
						Ints("holidayyears", tables.Holidays.Years()).
						Int("stations", tables.Stations.Count()).
						Msg("All data tables loaded successfully")

					return nil
				},
			},
			{
				Name:  "inspect",
				Usage: "dump everything known about one station",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "station",
						Usage:    "station name, raw upstream names are cleaned first",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					tables, err := Load()
					if err != nil {
						return err
					}

					station := fares.CleanStationName(c.String("station"))
					fmt.Printf("Station: %s\n", station)

					fmt.Printf("Access fee: %.2f\n", fares.AccessFeeFor(station))

					fmt.Println("Distances:")
					pretty.Println(tables.Distances.DistancesFrom(station))

					fmt.Println("Translations:")
					pretty.Println(tables.Stations.TranslationsFor(station))

					return nil
				},
			},
		},
	}
}
