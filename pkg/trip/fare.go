package trip

// Fare is the Opal rail fare breakdown for a journey. All amounts are in
// Australian dollars rounded to cents.
type Fare struct {
	DistanceKm float64 `json:"distance_km" groups:"basic"`

	// FareBand is the distance band label the base fare was read from, for
	// example "10-20".
	FareBand string `json:"fare_band" groups:"basic"`

	// IsOffPeak reports whether the journey's planned departure falls in an
	// off-peak fare period.
	IsOffPeak bool `json:"is_off_peak" groups:"basic"`

	// BaseFare is the full adult peak fare for the band.
	BaseFare float64 `json:"base_fare" groups:"basic"`

	// OffPeakFare is the discounted base fare. Present only when IsOffPeak.
	OffPeakFare *float64 `json:"off_peak_fare,omitempty" groups:"basic"`

	// AccessFee is the sum of station access surcharges for both endpoints.
	// A journey between two gated stations pays the surcharge twice.
	AccessFee float64 `json:"access_fee" groups:"basic"`

	// TotalFare is the amount payable for this journey: the base fare plus
	// access fees, using the discounted base when IsOffPeak.
	TotalFare float64 `json:"total_fare" groups:"basic"`

	// TotalOffPeakFare is OffPeakFare plus access fees. Present only when
	// IsOffPeak, in which case it equals TotalFare.
	TotalOffPeakFare *float64 `json:"total_off_peak_fare,omitempty" groups:"basic"`
}
