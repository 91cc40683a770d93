package fares

import (
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

const distanceKeySeparator = "->"

type distanceRecord struct {
	StationA   string  `csv:"station_a"`
	StationB   string  `csv:"station_b"`
	DistanceKm float64 `csv:"distance_km"`
}

// DistanceTable maps unordered station pairs to their over the track rail
// distance in kilometres. It is loaded once at startup and read only
// afterwards.
type DistanceTable struct {
	distances map[string]float64
}

// NewDistanceTable loads a distance table from a CSV file with the columns
// station_a, station_b and distance_km. Station names must already be in
// their cleaned form.
func NewDistanceTable(path string) (*DistanceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []distanceRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, err
	}

	table := &DistanceTable{
		distances: make(map[string]float64, len(records)),
	}
	for _, record := range records {
		table.distances[PairKey(record.StationA, record.StationB)] = record.DistanceKm
	}

	return table, nil
}

// PairKey joins two cleaned station names in lexicographic order so that both
// directions of travel resolve to the same entry.
func PairKey(a string, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + distanceKeySeparator + b
}

// Distance returns the track distance between two cleaned station names.
func (table *DistanceTable) Distance(origin string, destination string) (float64, bool) {
	distance, found := table.distances[PairKey(origin, destination)]

	return distance, found
}

// DistancesFrom returns the distance to every station paired with the given
// cleaned station name.
func (table *DistanceTable) DistancesFrom(station string) map[string]float64 {
	matches := map[string]float64{}

	for key, distance := range table.distances {
		a, b, found := strings.Cut(key, distanceKeySeparator)
		if !found {
			continue
		}

		if a == station {
			matches[b] = distance
		} else if b == station {
			matches[a] = distance
		}
	}

	return matches
}

// Count returns the number of station pairs in the table.
func (table *DistanceTable) Count() int {
	return len(table.distances)
}
