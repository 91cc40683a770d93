package fares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opaltrip/opaltrip/pkg/util"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	return NewEngine(loadTestDistanceTable(t), loadTestHolidayCalendar(t))
}

func sydneyTime(t *testing.T, year int, month time.Month, day int, hour int, minute int) time.Time {
	t.Helper()

	return time.Date(year, month, day, hour, minute, 0, 0, util.SydneyTimezone)
}

func TestCleanStationName(t *testing.T) {
	testCases := []struct {
		Raw      string
		Expected string
	}{
		{"Central Station, Platform 16, Sydney", "Central"},
		{"Chatswood Station, Platform 1, Chatswood", "Chatswood"},
		{"International Airport Station, Sydney Airport", "International Airport"},
		{"Domestic Airport Station", "Domestic Airport"},
		{"Mascot Station, Mascot", "Mascot"},
		{"Parramatta (Wentworth St)", "Parramatta"},
		{"Town Hall Station", "Town Hall"},
		{"Central", "Central"},
		{"", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Raw, func(t *testing.T) {
			assert.Equal(t, testCase.Expected, CleanStationName(testCase.Raw))
		})
	}
}

func TestFareBandBoundaries(t *testing.T) {
	testCases := []struct {
		DistanceKm   float64
		ExpectedBand string
		ExpectedFare float64
	}{
		{0, "0-10", 4.13},
		{5.5, "0-10", 4.13},
		{10, "0-10", 4.13},
		{10.01, "10-20", 5.22},
		{20, "10-20", 5.22},
		{20.5, "20-35", 6.05},
		{35, "20-35", 6.05},
		{64.99, "35-65", 8.02},
		{65, "35-65", 8.02},
		{65.01, "65+", 10.34},
		{250, "65+", 10.34},
	}

	for _, testCase := range testCases {
		band, fare := FareBandFor(testCase.DistanceKm)

		assert.Equal(t, testCase.ExpectedBand, band, "band for %.2f km", testCase.DistanceKm)
		assert.Equal(t, testCase.ExpectedFare, fare, "fare for %.2f km", testCase.DistanceKm)
	}
}

func TestFareBandsIncreaseWithDistance(t *testing.T) {
	distances := []float64{1, 15, 25, 40, 70}

	previousFare := 0.0
	for _, distance := range distances {
		_, fare := FareBandFor(distance)

		assert.Greater(t, fare, previousFare, "fare for %.0f km should exceed the previous band", distance)
		previousFare = fare
	}
}

func TestAccessFeeFor(t *testing.T) {
	assert.Equal(t, 15.40, AccessFeeFor("International Airport Station, Sydney Airport"))
	assert.Equal(t, 15.40, AccessFeeFor("Mascot Station, Mascot"))
	assert.Equal(t, 0.0, AccessFeeFor("Central Station, Sydney"))
}

func TestIsOffPeak(t *testing.T) {
	engine := newTestEngine(t)

	testCases := []struct {
		Name     string
		At       time.Time
		Expected bool
	}{
		{"weekday morning peak", sydneyTime(t, 2026, 8, 24, 8, 0), false},
		{"weekday just before morning peak", sydneyTime(t, 2026, 8, 24, 6, 29), true},
		{"weekday morning peak start", sydneyTime(t, 2026, 8, 24, 6, 30), false},
		{"weekday morning peak end", sydneyTime(t, 2026, 8, 24, 10, 0), true},
		{"weekday midday", sydneyTime(t, 2026, 8, 24, 12, 30), true},
		{"weekday evening peak start", sydneyTime(t, 2026, 8, 24, 15, 0), false},
		{"weekday evening peak last minute", sydneyTime(t, 2026, 8, 24, 18, 59), false},
		{"weekday evening peak end", sydneyTime(t, 2026, 8, 24, 19, 0), true},
		{"weekday late night", sydneyTime(t, 2026, 8, 24, 23, 15), true},
		{"friday during peak hours", sydneyTime(t, 2026, 8, 21, 8, 0), true},
		{"saturday", sydneyTime(t, 2026, 8, 22, 8, 0), true},
		{"sunday", sydneyTime(t, 2026, 8, 23, 17, 0), true},
		{"public holiday on a monday", sydneyTime(t, 2026, 4, 6, 8, 0), true},
		{"unknown year weekday peak", sydneyTime(t, 2030, 1, 1, 8, 0), false},
		{"unknown year weekday midday", sydneyTime(t, 2030, 1, 1, 12, 0), true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert.Equal(t, testCase.Expected, engine.IsOffPeak(testCase.At))
		})
	}
}

func TestIsOffPeakConvertsToSydneyTime(t *testing.T) {
	engine := newTestEngine(t)

	// 22:00 UTC on a Sunday is 08:00 on Monday in Sydney, inside the
	// morning peak.
	utcInstant := time.Date(2026, 8, 23, 22, 0, 0, 0, time.UTC)

	assert.False(t, engine.IsOffPeak(utcInstant))
}

func TestCalculatePeakFare(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Central Station, Sydney", "Chatswood Station, Chatswood", sydneyTime(t, 2026, 8, 25, 8, 0))
	require.NotNil(t, fare)

	assert.Equal(t, 12.46, fare.DistanceKm)
	assert.Equal(t, "10-20", fare.FareBand)
	assert.False(t, fare.IsOffPeak)
	assert.Equal(t, 5.22, fare.BaseFare)
	assert.Equal(t, 0.0, fare.AccessFee)
	assert.Equal(t, 5.22, fare.TotalFare)
	assert.Nil(t, fare.OffPeakFare)
	assert.Nil(t, fare.TotalOffPeakFare)
}

func TestCalculateOffPeakFare(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Central Station, Platform 16, Sydney", "Chatswood Station, Platform 1, Chatswood", sydneyTime(t, 2026, 8, 22, 9, 0))
	require.NotNil(t, fare)

	assert.True(t, fare.IsOffPeak)
	assert.Equal(t, 5.22, fare.BaseFare)
	require.NotNil(t, fare.OffPeakFare)
	assert.Equal(t, 3.65, *fare.OffPeakFare)
	require.NotNil(t, fare.TotalOffPeakFare)
	assert.Equal(t, 3.65, *fare.TotalOffPeakFare)
	assert.Equal(t, *fare.TotalOffPeakFare, fare.TotalFare)
}

func TestCalculateAirportAccessFee(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Central Station, Sydney", "International Airport Station, Sydney Airport", sydneyTime(t, 2026, 8, 25, 8, 0))
	require.NotNil(t, fare)

	assert.Equal(t, "0-10", fare.FareBand)
	assert.Equal(t, 4.13, fare.BaseFare)
	assert.Equal(t, 15.40, fare.AccessFee)
	assert.Equal(t, 19.53, fare.TotalFare)
}

func TestCalculateAccessFeeChargedAtBothEnds(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Domestic Airport Station", "International Airport Station, Sydney Airport", sydneyTime(t, 2026, 8, 25, 8, 0))
	require.NotNil(t, fare)

	assert.Equal(t, 30.80, fare.AccessFee)
	assert.Equal(t, 34.93, fare.TotalFare)
}

func TestCalculateOffPeakNeverDiscountsAccessFee(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Central Station, Sydney", "International Airport Station, Sydney Airport", sydneyTime(t, 2026, 8, 22, 9, 0))
	require.NotNil(t, fare)

	require.NotNil(t, fare.OffPeakFare)
	assert.Equal(t, 2.89, *fare.OffPeakFare)
	assert.Equal(t, 15.40, fare.AccessFee)
	assert.Equal(t, 18.29, fare.TotalFare)
}

func TestCalculateUnknownPair(t *testing.T) {
	engine := newTestEngine(t)

	fare := engine.Calculate("Central Station, Sydney", "Narnia Station", sydneyTime(t, 2026, 8, 25, 8, 0))

	assert.Nil(t, fare)
}

func TestCalculateSymmetric(t *testing.T) {
	engine := newTestEngine(t)
	departure := sydneyTime(t, 2026, 8, 25, 8, 0)

	forward := engine.Calculate("Central Station, Sydney", "Parramatta Station, Parramatta", departure)
	reverse := engine.Calculate("Parramatta Station, Parramatta", "Central Station, Sydney", departure)

	require.NotNil(t, forward)
	require.NotNil(t, reverse)
	assert.Equal(t, forward, reverse)
}
