package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseTransportType(t *testing.T) {
	testCases := []struct {
		ProductName string
		Expected    TransportType
	}{
		{"Sydney Trains Network", TransportTypeTrain},
		{"Train", TransportTypeTrain},
		{"Sydney Metro", TransportTypeMetro},
		{"Metro", TransportTypeMetro},
		{"Sydney Ferries Network", TransportTypeFerry},
		{"Ferry", TransportTypeFerry},
		{"Light Rail", TransportTypeLightRail},
		{"Sydney Light Rail", TransportTypeLightRail},
		{"NSW TrainLink Network", TransportTypeIntercityRail},
		{"TrainLink", TransportTypeIntercityRail},
		{"footpath", TransportTypeFootpath},
		{"Walk", TransportTypeFootpath},
		{"Bus", TransportTypeUnknown},
		{"On Demand", TransportTypeUnknown},
		{"", TransportTypeUnknown},
	}

	for _, testCase := range testCases {
		t.Run(testCase.ProductName, func(t *testing.T) {
			assert.Equal(t, testCase.Expected, NormaliseTransportType(testCase.ProductName))
		})
	}
}

func TestNormaliseTransportTypeCaseInsensitive(t *testing.T) {
	assert.Equal(t, TransportTypeTrain, NormaliseTransportType("SYDNEY TRAINS"))
	assert.Equal(t, TransportTypeIntercityRail, NormaliseTransportType("nsw trainlink"))
	assert.Equal(t, TransportTypeLightRail, NormaliseTransportType("LIGHTRAIL"))
}
