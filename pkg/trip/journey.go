package trip

// Unknown is the sentinel rendered for any missing or unparseable field so
// that responses stay structurally complete.
const Unknown = "Unknown"

// PlanResult is the outer payload returned for a trip planning request.
type PlanResult struct {
	Journeys []Journey `json:"journeys" groups:"basic"`
}

// Journey is one normalised travel option. It is assembled fresh for every
// request and never mutated afterwards.
type Journey struct {
	// Duration is the total travel time in whole minutes, never negative.
	Duration int `json:"duration" groups:"basic"`

	// StartTime and EndTime are the planned journey bounds in Sydney local
	// time, or Unknown.
	StartTime string `json:"start_time" groups:"basic"`
	EndTime   string `json:"end_time" groups:"basic"`

	// WaitingTime is the whole minutes until the first departure relative to
	// the formatting instant, negative once the journey has already left. It
	// is absent when the first departure time is missing.
	WaitingTime *int `json:"waiting_time,omitempty" groups:"basic"`

	// Fee is the Opal rail fare breakdown. It is absent for journeys with no
	// heavy rail or metro leg and whenever the fare cannot be determined.
	Fee *Fare `json:"fee,omitempty" groups:"basic"`

	Legs         []Leg  `json:"legs" groups:"basic"`
	StopSequence []Stop `json:"stop_sequence" groups:"basic"`
}

// Leg is a single ride or walk within a journey.
type Leg struct {
	// Mode is the upstream product name, kept verbatim for display.
	Mode string `json:"mode" groups:"basic"`

	// Line is the route designation, for example "T1" or "F4".
	Line string `json:"line" groups:"basic"`

	// Duration is the planned leg travel time in whole minutes, zero when
	// either planned time is missing.
	Duration int `json:"duration" groups:"basic"`

	Origin      Location `json:"origin" groups:"basic"`
	Destination Location `json:"destination" groups:"basic"`
}

// Location is a leg endpoint with its planned times and realtime delays.
type Location struct {
	Name string `json:"name" groups:"basic"`

	DepartureTime string `json:"departure_time" groups:"basic"`
	ArrivalTime   string `json:"arrival_time" groups:"basic"`

	// Delays are the signed whole minute differences between the realtime
	// estimate and the plan. They are absent, not zero, when either side is
	// missing.
	DepartureDelay *int `json:"departure_delay,omitempty" groups:"basic"`
	ArrivalDelay   *int `json:"arrival_delay,omitempty" groups:"basic"`
}

// Stop is one entry of a journey's flattened stop sequence.
type Stop struct {
	Name        string `json:"name" groups:"basic"`
	ArrivalTime string `json:"arrival_time" groups:"basic"`
}
