package util

import (
	"time"

	_ "time/tzdata"
)

// The upstream API reports ISO-8601 timestamps, usually with a Z suffix.
// Timestamps without any zone indicator are treated as Sydney local time.
const naiveDateTimeFormat = "2006-01-02T15:04:05"

// OutputDateTimeFormat renders timestamps in the service's home timezone with
// an explicit zone abbreviation.
const OutputDateTimeFormat = "2006-01-02 15:04:05 MST"

var SydneyTimezone *time.Location

func init() {
	location, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		// Cannot happen with the bundled tzdata.
		panic(err)
	}

	SydneyTimezone = location
}

// ParseAPITime parses an ISO-8601 timestamp as used by the trip planner API.
func ParseAPITime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	return time.ParseInLocation(naiveDateTimeFormat, value, SydneyTimezone)
}

// FormatSydneyTime renders a timestamp in Sydney local time.
func FormatSydneyTime(t time.Time) string {
	return t.In(SydneyTimezone).Format(OutputDateTimeFormat)
}

// MinutesBetween returns the whole minutes from start to end, truncated
// towards zero. It is negative when end is before start.
func MinutesBetween(start time.Time, end time.Time) int {
	return int(end.Sub(start).Minutes())
}
