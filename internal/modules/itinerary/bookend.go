package itinerary

// EnforceBookends returns a copy of it whose first activity of the first day and last activity
// of the last day are transport legs, synthesizing departure and return flights when they are not.
// The input is never modified.
func EnforceBookends(it TripItinerary, form TripFormData) TripItinerary {
	out := it.clone()
	if len(out.DailyItinerary) == 0 {
		start, _, err := form.DateRange()
		date := form.StartDate
		if err == nil {
			date = dateAt(start, 0)
		}
		out.DailyItinerary = []DayItinerary{{Day: 1, Date: date, Theme: "Day 1", Activities: []Activity{}}}
	}

	// Both ends are inspected before either is modified so a single empty day gets both legs.
	first := &out.DailyItinerary[0]
	last := &out.DailyItinerary[len(out.DailyItinerary)-1]
	needDeparture := len(first.Activities) == 0 || !first.Activities[0].Type.IsTransport()
	needReturn := len(last.Activities) == 0 || !last.Activities[len(last.Activities)-1].Type.IsTransport()

	if needDeparture {
		first.Activities = append([]Activity{departureFlight(form)}, first.Activities...)
	}
	if needReturn {
		last.Activities = append(last.Activities, returnFlight(form))
	}
	return out
}

func departureFlight(form TripFormData) Activity {
	return Activity{
		Time:     "06:00",
		Name:     "Flight: " + form.outboundRoute(),
		Type:     TypeFlight,
		Duration: "2-3h",
		Location: form.DepartureCity + " Airport",
		Cost:     ptr(0.0),
		Notes:    ptr("Departure flight"),
	}
}

func returnFlight(form TripFormData) Activity {
	return Activity{
		Time:     "18:00",
		Name:     "Flight: " + form.returnRoute(),
		Type:     TypeFlight,
		Duration: "2-3h",
		Location: form.DestinationCity + " Airport",
		Cost:     ptr(0.0),
		Notes:    ptr("Return flight"),
	}
}

func ptr[T any](v T) *T {
	return &v
}
