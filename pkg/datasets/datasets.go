package datasets

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/opaltrip/opaltrip/pkg/fares"
	"github.com/opaltrip/opaltrip/pkg/translations"
	"github.com/opaltrip/opaltrip/pkg/util"
)

const defaultDataDirectory = "data"

const (
	distancesFile = "distances.csv"
	holidaysFile  = "public-holidays.yaml"
	stationsDir   = "stations"
)

// Tables holds every static data table the service needs. They are loaded
// once at startup and read only afterwards.
type Tables struct {
	Distances *fares.DistanceTable
	Holidays  *fares.HolidayCalendar
	Stations  *translations.Store
}

// Directory returns the data directory, overridable with OPALTRIP_DATA_DIR.
func Directory() string {
	env := util.GetEnvironmentVariables()

	if env["OPALTRIP_DATA_DIR"] != "" {
		return env["OPALTRIP_DATA_DIR"]
	}

	return defaultDataDirectory
}

// Load reads every data file from the data directory.
func Load() (*Tables, error) {
	return LoadFrom(Directory())
}

// LoadFrom reads every data file from the given directory.
func LoadFrom(dir string) (*Tables, error) {
	distances, err := fares.NewDistanceTable(filepath.Join(dir, distancesFile))
	if err != nil {
		return nil, err
	}

	holidays, err := fares.NewHolidayCalendar(filepath.Join(dir, holidaysFile))
	if err != nil {
		return nil, err
	}

	stations, err := translations.NewStore(filepath.Join(dir, stationsDir))
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("distances", distances.Count()).
		Ints("holidayyears", holidays.Years()).
		Int("stations", stations.Count()).
		Str("directory", dir).
		Msg("Loaded data tables")

	return &Tables{
		Distances: distances,
		Holidays:  holidays,
		Stations:  stations,
	}, nil
}
