package fares

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const YearMonthDayFormat = "2006-01-02"

// HolidayStatus is the outcome of a public holiday lookup. Dates in years the
// calendar does not cover are reported distinctly so that callers can fall
// back to weekday rules instead of silently treating them as regular days.
type HolidayStatus string

const (
	HolidayStatusHoliday     HolidayStatus = "Holiday"
	HolidayStatusNotHoliday  HolidayStatus = "NotHoliday"
	HolidayStatusUnknownYear HolidayStatus = "UnknownYear"
)

// HolidayCalendar holds the NSW public holidays keyed by year and then by
// holiday name.
type HolidayCalendar struct {
	years map[int]map[string]time.Time
}

// NewHolidayCalendar loads a holiday calendar from a YAML file shaped as
// year -> holiday name -> date.
func NewHolidayCalendar(path string) (*HolidayCalendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rawYears map[int]map[string]string
	if err := yaml.Unmarshal(data, &rawYears); err != nil {
		return nil, err
	}

	calendar := &HolidayCalendar{
		years: make(map[int]map[string]time.Time, len(rawYears)),
	}

	for year, holidays := range rawYears {
		calendar.years[year] = make(map[string]time.Time, len(holidays))

		for name, value := range holidays {
			date, err := time.Parse(YearMonthDayFormat, value)
			if err != nil {
				return nil, fmt.Errorf("holiday %q in %d: %w", name, year, err)
			}

			calendar.years[year][name] = date
		}
	}

	return calendar, nil
}

// Status looks up the calendar date of the given instant. The instant must
// already be in the timezone the calendar dates are meant for.
func (calendar *HolidayCalendar) Status(date time.Time) HolidayStatus {
	holidays, found := calendar.years[date.Year()]
	if !found {
		return HolidayStatusUnknownYear
	}

	formattedDate := date.Format(YearMonthDayFormat)

	for _, holiday := range holidays {
		if holiday.Format(YearMonthDayFormat) == formattedDate {
			return HolidayStatusHoliday
		}
	}

	return HolidayStatusNotHoliday
}

// Years returns the years the calendar covers in ascending order.
func (calendar *HolidayCalendar) Years() []int {
	years := make([]int, 0, len(calendar.years))
	for year := range calendar.years {
		years = append(years, year)
	}

	slices.Sort(years)

	return years
}
