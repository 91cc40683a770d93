package tfnsw

// Product classes used by the trip planner API.
const (
	ProductClassTrain     = 1
	ProductClassMetro     = 2
	ProductClassLightRail = 4
	ProductClassBus       = 5
	ProductClassCoach     = 7
	ProductClassFerry     = 9
	ProductClassSchoolBus = 11
	ProductClassFootpath  = 99
	ProductClassWalk      = 100
)

// RailProductClasses are the product classes eligible for Opal rail fares.
var RailProductClasses = []int{ProductClassTrain, ProductClassMetro}

// TripPlanResponse is the raw rapidJSON trip response, reduced to the fields
// the formatting pipeline consumes.
type TripPlanResponse struct {
	Journeys []Journey `json:"journeys"`
}

type Journey struct {
	Legs []Leg `json:"legs"`
}

type Leg struct {
	// Duration is the upstream's own figure in seconds. The formatter
	// recomputes leg durations from the planned times instead.
	Duration int `json:"duration"`

	Origin      *StopEvent `json:"origin"`
	Destination *StopEvent `json:"destination"`

	Transportation Transportation  `json:"transportation"`
	StopSequence   []SequencedStop `json:"stopSequence"`
}

// StopEvent is a stop with the planned and realtime estimated times of one
// arrival or departure.
type StopEvent struct {
	Name             string `json:"name"`
	DisassembledName string `json:"disassembledName"`

	DepartureTimePlanned   string `json:"departureTimePlanned"`
	DepartureTimeEstimated string `json:"departureTimeEstimated"`
	ArrivalTimePlanned     string `json:"arrivalTimePlanned"`
	ArrivalTimeEstimated   string `json:"arrivalTimeEstimated"`
}

type Transportation struct {
	Number           string  `json:"number"`
	DisassembledName string  `json:"disassembledName"`
	Product          Product `json:"product"`
}

type Product struct {
	Name  string `json:"name"`
	Class int    `json:"class"`
}

type SequencedStop struct {
	Name               string `json:"name"`
	DisassembledName   string `json:"disassembledName"`
	ArrivalTimePlanned string `json:"arrivalTimePlanned"`
}

type stopFinderResponse struct {
	Locations []StopFinderLocation `json:"locations"`
}

// StopFinderLocation is one candidate returned by the stop finder endpoint.
type StopFinderLocation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	MatchQuality int    `json:"matchQuality"`
	IsBest       bool   `json:"isBest"`
}

type addInfoResponse struct {
	Infos struct {
		Current []ServiceAlert `json:"current"`
	} `json:"infos"`
}

// ServiceAlert is a published disruption or maintenance notice.
type ServiceAlert struct {
	ID       string           `json:"id"`
	Priority string           `json:"priority"`
	Subtitle string           `json:"subtitle"`
	Content  string           `json:"content"`
	Affected AffectedEntities `json:"affected"`
}

type AffectedEntities struct {
	Stops []AffectedStop `json:"stops"`
	Lines []AffectedLine `json:"lines"`
}

type AffectedStop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AffectedLine struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}
