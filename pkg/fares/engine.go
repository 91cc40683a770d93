package fares

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/opaltrip/opaltrip/pkg/trip"
	"github.com/opaltrip/opaltrip/pkg/util"
	"github.com/rs/zerolog/log"
)

// Adult Opal rail fares in Australian dollars. Band boundaries are inclusive
// of their upper value, so a 10 km journey is charged at the 0-10 band.
var railFareBands = []fareBand{
	{Label: "0-10", UpperKm: 10, BaseFare: 4.13},
	{Label: "10-20", UpperKm: 20, BaseFare: 5.22},
	{Label: "20-35", UpperKm: 35, BaseFare: 6.05},
	{Label: "35-65", UpperKm: 65, BaseFare: 8.02},
	{Label: "65+", UpperKm: math.Inf(1), BaseFare: 10.34},
}

type fareBand struct {
	Label    string
	UpperKm  float64
	BaseFare float64
}

// Stations with gated access that charge a flat surcharge on entry or exit,
// keyed by cleaned station name. A journey between two of these stations
// pays the surcharge at both ends.
var stationAccessFees = map[string]float64{
	"Airport":               15.40,
	"Domestic Airport":      15.40,
	"International Airport": 15.40,
	"Sydney Airport":        15.40,
	"Mascot":                15.40,
}

// Off-peak base fares are discounted by 30%. Access fees are never
// discounted.
const offPeakDiscount = 0.30

// Peak windows apply Monday to Thursday only, in Sydney local time.
const (
	morningPeakStartMinute = 6*60 + 30
	morningPeakEndMinute   = 10 * 60
	eveningPeakStartMinute = 15 * 60
	eveningPeakEndMinute   = 19 * 60
)

var (
	platformSuffixRegex = regexp.MustCompile(`, Platform \d+`)
	parentheticalRegex  = regexp.MustCompile(`\s*\([^)]*\)`)
	trailingSuburbRegex = regexp.MustCompile(`, [A-Za-z ]+$`)
	stationSuffixRegex  = regexp.MustCompile(` Station$`)
)

// Engine computes Opal rail fares from the static distance table and holiday
// calendar.
type Engine struct {
	distances *DistanceTable
	holidays  *HolidayCalendar
}

func NewEngine(distances *DistanceTable, holidays *HolidayCalendar) *Engine {
	return &Engine{
		distances: distances,
		holidays:  holidays,
	}
}

// CleanStationName strips platform suffixes, parentheticals, a trailing
// suburb and the " Station" suffix from an upstream station name so that it
// matches the distance table entries.
//
//	"Central Station, Platform 16, Sydney" -> "Central"
//	"International Airport Station, Sydney Airport" -> "International Airport"
func CleanStationName(name string) string {
	cleaned := platformSuffixRegex.ReplaceAllString(name, "")
	cleaned = parentheticalRegex.ReplaceAllString(cleaned, "")
	cleaned = trailingSuburbRegex.ReplaceAllString(cleaned, "")
	cleaned = stationSuffixRegex.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// FareBandFor returns the band label and base fare for a track distance.
func FareBandFor(distanceKm float64) (string, float64) {
	for _, band := range railFareBands {
		if distanceKm <= band.UpperKm {
			return band.Label, band.BaseFare
		}
	}

	lastBand := railFareBands[len(railFareBands)-1]

	return lastBand.Label, lastBand.BaseFare
}

// AccessFeeFor returns the flat access surcharge for a station, zero when
// none applies.
func AccessFeeFor(name string) float64 {
	return stationAccessFees[CleanStationName(name)]
}

// IsOffPeak reports whether an instant falls in an off-peak fare period.
// Public holidays, Fridays, Saturdays and Sundays are off-peak all day.
// Monday to Thursday is peak during 06:30-10:00 and 15:00-19:00 Sydney time
// and off-peak otherwise. A date outside the holiday calendar cannot be
// confirmed as a holiday and falls through to the weekday rules.
func (engine *Engine) IsOffPeak(at time.Time) bool {
	sydneyTime := at.In(util.SydneyTimezone)

	switch engine.holidays.Status(sydneyTime) {
	case HolidayStatusHoliday:
		return true
	case HolidayStatusUnknownYear:
		log.Debug().Int("year", sydneyTime.Year()).Msg("Date outside holiday calendar, assuming not a holiday")
	}

	switch sydneyTime.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}

	minuteOfDay := sydneyTime.Hour()*60 + sydneyTime.Minute()
	morningPeak := minuteOfDay >= morningPeakStartMinute && minuteOfDay < morningPeakEndMinute
	eveningPeak := minuteOfDay >= eveningPeakStartMinute && minuteOfDay < eveningPeakEndMinute

	return !morningPeak && !eveningPeak
}

// Calculate produces the fare breakdown between two raw station names for a
// journey departing at the given instant. Fares are supplementary
// information, so an unresolvable station pair yields nil rather than an
// error.
func (engine *Engine) Calculate(origin string, destination string, departure time.Time) *trip.Fare {
	cleanOrigin := CleanStationName(origin)
	cleanDestination := CleanStationName(destination)

	distance, found := engine.distances.Distance(cleanOrigin, cleanDestination)
	if !found {
		log.Debug().
			Str("origin", cleanOrigin).
			Str("destination", cleanDestination).
			Msg("No track distance for station pair")

		return nil
	}

	bandLabel, baseFare := FareBandFor(distance)
	accessFee := roundToCents(AccessFeeFor(cleanOrigin) + AccessFeeFor(cleanDestination))

	fare := &trip.Fare{
		DistanceKm: distance,
		FareBand:   bandLabel,
		BaseFare:   baseFare,
		AccessFee:  accessFee,
		TotalFare:  roundToCents(baseFare + accessFee),
	}

	if engine.IsOffPeak(departure) {
		offPeakFare := roundToCents(baseFare * (1 - offPeakDiscount))
		totalOffPeakFare := roundToCents(offPeakFare + accessFee)

		fare.IsOffPeak = true
		fare.OffPeakFare = &offPeakFare
		fare.TotalOffPeakFare = &totalOffPeakFare
		fare.TotalFare = totalOffPeakFare
	}

	return fare
}

func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
