package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforceBookends_AddsBothLegs(t *testing.T) {
	form := parisForm()
	in := TripItinerary{DailyItinerary: []DayItinerary{
		{Day: 1, Activities: activitiesAt("10:00")},
		{Day: 2, Activities: activitiesAt("11:00")},
	}}

	out := EnforceBookends(in, form)

	dep := out.DailyItinerary[0].Activities[0]
	assert.Equal(t, "06:00", dep.Time)
	assert.Equal(t, "Flight: NYC → Paris", dep.Name)
	assert.Equal(t, TypeFlight, dep.Type)
	assert.Equal(t, "2-3h", dep.Duration)
	assert.Equal(t, "NYC Airport", dep.Location)
	assert.Equal(t, 0.0, *dep.Cost)
	assert.Equal(t, "Departure flight", *dep.Notes)

	day2 := out.DailyItinerary[1].Activities
	ret := day2[len(day2)-1]
	assert.Equal(t, "18:00", ret.Time)
	assert.Equal(t, "Flight: Paris → NYC", ret.Name)
	assert.Equal(t, "Paris Airport", ret.Location)
	assert.Equal(t, "Return flight", *ret.Notes)
}

func TestEnforceBookends_DoesNotMutateInput(t *testing.T) {
	in := TripItinerary{DailyItinerary: []DayItinerary{{Day: 1, Activities: activitiesAt("10:00")}}}

	out := EnforceBookends(in, parisForm())

	assert.Len(t, in.DailyItinerary[0].Activities, 1)
	assert.Len(t, out.DailyItinerary[0].Activities, 3)
}

func TestEnforceBookends_KeepsExistingTransport(t *testing.T) {
	acts := []Activity{
		{Time: "07:00", Name: "Train in", Type: TypeTransport},
		{Time: "12:00", Name: "Lunch", Type: TypeDining},
		{Time: "20:00", Name: "Flight out", Type: TypeFlight},
	}
	in := TripItinerary{DailyItinerary: []DayItinerary{{Day: 1, Activities: acts}}}

	out := EnforceBookends(in, parisForm())

	assert.Equal(t, acts, out.DailyItinerary[0].Activities)
}

func TestEnforceBookends_SingleEmptyDayGetsBothLegs(t *testing.T) {
	in := TripItinerary{DailyItinerary: []DayItinerary{{Day: 1, Activities: []Activity{}}}}

	out := EnforceBookends(in, parisForm())

	acts := out.DailyItinerary[0].Activities
	require.Len(t, acts, 2)
	assert.Equal(t, "Departure flight", *acts[0].Notes)
	assert.Equal(t, "Return flight", *acts[1].Notes)
}

func TestEnforceBookends_NoDays(t *testing.T) {
	out := EnforceBookends(TripItinerary{}, parisForm())

	require.Len(t, out.DailyItinerary, 1)
	assert.Equal(t, "2025-03-01", out.DailyItinerary[0].Date)
	assert.Len(t, out.DailyItinerary[0].Activities, 2)
}
