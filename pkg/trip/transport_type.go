package trip

import "strings"

// TransportType is the normalised transport mode of a journey leg. It selects
// the station translation table for the leg and is derived from the upstream
// product name in exactly one place, NormaliseTransportType.
type TransportType string

const (
	TransportTypeTrain         TransportType = "Train"
	TransportTypeMetro         TransportType = "Metro"
	TransportTypeFerry         TransportType = "Ferry"
	TransportTypeLightRail     TransportType = "LightRail"
	TransportTypeIntercityRail TransportType = "IntercityRail"
	TransportTypeFootpath      TransportType = "Footpath"
	TransportTypeUnknown       TransportType = "UNKNOWN"
)

// NormaliseTransportType maps a free text product name from the upstream API
// to a TransportType. Product names are matched case-insensitively and
// "TrainLink" must be tested before "Train" as the former contains the latter.
func NormaliseTransportType(productName string) TransportType {
	name := strings.ToLower(productName)

	switch {
	case name == "":
		return TransportTypeUnknown
	case strings.Contains(name, "footpath") || strings.Contains(name, "walk"):
		return TransportTypeFootpath
	case strings.Contains(name, "metro"):
		return TransportTypeMetro
	case strings.Contains(name, "trainlink"):
		return TransportTypeIntercityRail
	case strings.Contains(name, "train"):
		return TransportTypeTrain
	case strings.Contains(name, "ferry") || strings.Contains(name, "ferries"):
		return TransportTypeFerry
	case strings.Contains(name, "light rail") || strings.Contains(name, "lightrail"):
		return TransportTypeLightRail
	default:
		return TransportTypeUnknown
	}
}
