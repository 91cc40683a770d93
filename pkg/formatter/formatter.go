package formatter

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/iter"
	"golang.org/x/exp/slices"

	"github.com/opaltrip/opaltrip/pkg/fares"
	"github.com/opaltrip/opaltrip/pkg/tfnsw"
	"github.com/opaltrip/opaltrip/pkg/translations"
	"github.com/opaltrip/opaltrip/pkg/trip"
	"github.com/opaltrip/opaltrip/pkg/util"
)

// Formatter turns raw trip planner responses into the normalised journey
// model, attaching fares, realtime delays and translated station names.
type Formatter struct {
	fareEngine *fares.Engine
	translator *translations.Translator

	// now provides the reference instant for waiting times. Swappable in
	// tests.
	now func() time.Time
}

// New builds a formatter. Both dependencies may be nil, which disables fares
// or translations respectively.
func New(fareEngine *fares.Engine, translator *translations.Translator) *Formatter {
	return &Formatter{
		fareEngine: fareEngine,
		translator: translator,
		now:        time.Now,
	}
}

// FormatTripResponse normalises every journey of an upstream response.
// Journeys are independent of each other and formatted concurrently,
// preserving the upstream order.
func (formatter *Formatter) FormatTripResponse(ctx context.Context, response *tfnsw.TripPlanResponse, language string) *trip.PlanResult {
	result := &trip.PlanResult{Journeys: []trip.Journey{}}

	if response == nil || len(response.Journeys) == 0 {
		return result
	}

	result.Journeys = iter.Map(response.Journeys, func(rawJourney *tfnsw.Journey) trip.Journey {
		return formatter.formatJourney(ctx, *rawJourney, language)
	})

	return result
}

func (formatter *Formatter) formatJourney(ctx context.Context, rawJourney tfnsw.Journey, language string) trip.Journey {
	journey := trip.Journey{
		StartTime:    trip.Unknown,
		EndTime:      trip.Unknown,
		Legs:         []trip.Leg{},
		StopSequence: []trip.Stop{},
	}

	if len(rawJourney.Legs) == 0 {
		return journey
	}

	firstLeg := rawJourney.Legs[0]
	lastLeg := rawJourney.Legs[len(rawJourney.Legs)-1]

	var journeyStart, journeyEnd time.Time
	var haveStart, haveEnd bool

	if firstLeg.Origin != nil {
		journeyStart, haveStart = parseTime(firstLeg.Origin.DepartureTimePlanned)
		journey.StartTime = renderTime(firstLeg.Origin.DepartureTimePlanned)
	}
	if lastLeg.Destination != nil {
		journeyEnd, haveEnd = parseTime(lastLeg.Destination.ArrivalTimePlanned)
		journey.EndTime = renderTime(lastLeg.Destination.ArrivalTimePlanned)
	}

	if haveStart && haveEnd {
		journey.Duration = clampMinutes(util.MinutesBetween(journeyStart, journeyEnd))
	}

	journey.WaitingTime = formatter.waitingTime(firstLeg)

	// Off-peak eligibility is a function of the first leg's planned
	// departure, so no departure means no fare.
	if formatter.fareEngine != nil && haveStart && hasRailLeg(rawJourney.Legs) && firstLeg.Origin != nil && lastLeg.Destination != nil {
		journey.Fee = formatter.fareEngine.Calculate(firstLeg.Origin.Name, lastLeg.Destination.Name, journeyStart)
	}

	displayNames := formatter.translateJourneyNames(ctx, rawJourney.Legs, language)

	for index, rawLeg := range rawJourney.Legs {
		journey.Legs = append(journey.Legs, formatLeg(rawJourney.Legs, index, displayNames))
		journey.StopSequence = append(journey.StopSequence, formatStops(rawLeg, displayNames)...)
	}

	return journey
}

// waitingTime is the whole minutes until the first departure, preferring the
// realtime estimate over the plan. Negative once the journey has departed.
func (formatter *Formatter) waitingTime(firstLeg tfnsw.Leg) *int {
	if firstLeg.Origin == nil {
		return nil
	}

	departure := firstLeg.Origin.DepartureTimeEstimated
	if departure == "" {
		departure = firstLeg.Origin.DepartureTimePlanned
	}

	parsed, found := parseTime(departure)
	if !found {
		return nil
	}

	minutes := util.MinutesBetween(formatter.now(), parsed)

	return &minutes
}

func hasRailLeg(rawLegs []tfnsw.Leg) bool {
	for _, rawLeg := range rawLegs {
		if slices.Contains(tfnsw.RailProductClasses, rawLeg.Transportation.Product.Class) {
			return true
		}
	}

	return false
}

// translateJourneyNames collects every name appearing in the journey and
// resolves them in one batch.
func (formatter *Formatter) translateJourneyNames(ctx context.Context, rawLegs []tfnsw.Leg, language string) map[string]string {
	var items []translations.BatchItem

	for index, rawLeg := range rawLegs {
		originMode, destinationMode := legTranslationModes(rawLegs, index)

		if rawLeg.Origin != nil && rawLeg.Origin.Name != "" {
			items = append(items, translations.BatchItem{Name: rawLeg.Origin.Name, Mode: originMode})
		}
		if rawLeg.Destination != nil && rawLeg.Destination.Name != "" {
			items = append(items, translations.BatchItem{Name: rawLeg.Destination.Name, Mode: destinationMode})
		}

		legMode := trip.NormaliseTransportType(rawLeg.Transportation.Product.Name)
		for _, stop := range rawLeg.StopSequence {
			if name := stopName(stop); name != "" {
				items = append(items, translations.BatchItem{Name: name, Mode: legMode})
			}
		}
	}

	if formatter.translator == nil || len(items) == 0 {
		identity := make(map[string]string, len(items))
		for _, item := range items {
			identity[item.Name] = item.Name
		}

		return identity
	}

	return formatter.translator.TranslateBatch(ctx, items, language)
}

// legTranslationModes picks the translation tables for a leg's endpoints.
// Walking legs borrow the mode of the adjacent transit legs because their
// endpoint names belong to those networks.
func legTranslationModes(rawLegs []tfnsw.Leg, index int) (trip.TransportType, trip.TransportType) {
	mode := trip.NormaliseTransportType(rawLegs[index].Transportation.Product.Name)

	if mode != trip.TransportTypeFootpath {
		return mode, mode
	}

	originMode := mode
	destinationMode := mode

	if index > 0 {
		originMode = trip.NormaliseTransportType(rawLegs[index-1].Transportation.Product.Name)
	}
	if index < len(rawLegs)-1 {
		destinationMode = trip.NormaliseTransportType(rawLegs[index+1].Transportation.Product.Name)
	}

	return originMode, destinationMode
}

func formatLeg(rawLegs []tfnsw.Leg, index int, displayNames map[string]string) trip.Leg {
	rawLeg := rawLegs[index]

	mode := rawLeg.Transportation.Product.Name
	if mode == "" {
		mode = trip.Unknown
	}

	line := rawLeg.Transportation.DisassembledName
	if line == "" {
		line = rawLeg.Transportation.Number
	}
	if line == "" {
		line = trip.Unknown
	}

	leg := trip.Leg{
		Mode:        mode,
		Line:        line,
		Origin:      formatLocation(rawLeg.Origin, displayNames),
		Destination: formatLocation(rawLeg.Destination, displayNames),
	}

	if rawLeg.Origin != nil && rawLeg.Destination != nil {
		departure, haveDeparture := parseTime(rawLeg.Origin.DepartureTimePlanned)
		arrival, haveArrival := parseTime(rawLeg.Destination.ArrivalTimePlanned)

		if haveDeparture && haveArrival {
			leg.Duration = clampMinutes(util.MinutesBetween(departure, arrival))
		}
	}

	return leg
}

func formatLocation(stopEvent *tfnsw.StopEvent, displayNames map[string]string) trip.Location {
	location := trip.Location{
		Name:          trip.Unknown,
		DepartureTime: trip.Unknown,
		ArrivalTime:   trip.Unknown,
	}

	if stopEvent == nil {
		return location
	}

	if stopEvent.Name != "" {
		location.Name = displayName(stopEvent.Name, displayNames)
	}

	location.DepartureTime = renderTime(stopEvent.DepartureTimePlanned)
	location.ArrivalTime = renderTime(stopEvent.ArrivalTimePlanned)

	location.DepartureDelay = delayMinutes(stopEvent.DepartureTimePlanned, stopEvent.DepartureTimeEstimated)
	location.ArrivalDelay = delayMinutes(stopEvent.ArrivalTimePlanned, stopEvent.ArrivalTimeEstimated)

	return location
}

func formatStops(rawLeg tfnsw.Leg, displayNames map[string]string) []trip.Stop {
	stops := make([]trip.Stop, 0, len(rawLeg.StopSequence))

	for _, rawStop := range rawLeg.StopSequence {
		stop := trip.Stop{
			Name:        trip.Unknown,
			ArrivalTime: renderTime(rawStop.ArrivalTimePlanned),
		}

		if name := stopName(rawStop); name != "" {
			stop.Name = displayName(name, displayNames)
		}

		stops = append(stops, stop)
	}

	return stops
}

func stopName(rawStop tfnsw.SequencedStop) string {
	if rawStop.DisassembledName != "" {
		return rawStop.DisassembledName
	}

	return rawStop.Name
}

func displayName(name string, displayNames map[string]string) string {
	if translated, found := displayNames[name]; found && translated != "" {
		return translated
	}

	return name
}

// delayMinutes is the signed difference between the realtime estimate and
// the plan, absent rather than zero when either side is missing.
func delayMinutes(planned string, estimated string) *int {
	plannedTime, havePlanned := parseTime(planned)
	estimatedTime, haveEstimated := parseTime(estimated)

	if !havePlanned || !haveEstimated {
		return nil
	}

	minutes := util.MinutesBetween(plannedTime, estimatedTime)

	return &minutes
}

func parseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	parsed, err := util.ParseAPITime(value)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// renderTime converts an upstream timestamp to Sydney local time for
// display. Missing and malformed values render as the Unknown sentinel so
// responses stay structurally complete.
func renderTime(value string) string {
	parsed, found := parseTime(value)
	if !found {
		return trip.Unknown
	}

	return util.FormatSydneyTime(parsed)
}

func clampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}

	return minutes
}
