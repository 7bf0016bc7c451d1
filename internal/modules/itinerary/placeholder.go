// README: Placeholder itinerary generator used when no upstream plan is available.
package itinerary

import (
	"fmt"
	"time"
)

// Rand is the random source used by GeneratePlaceholder. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type activityTemplate struct {
	Name     string
	Type     ActivityType
	Duration string
	Cost     float64
}

var placeholderPool = [10]activityTemplate{
	{Name: "Local Café Breakfast", Type: TypeCafe, Duration: "1h", Cost: 15},
	{Name: "Old Town Walking Tour", Type: TypeSightseeing, Duration: "3h", Cost: 25},
	{Name: "City Museum Visit", Type: TypeSightseeing, Duration: "2h", Cost: 20},
	{Name: "Traditional Lunch", Type: TypeDining, Duration: "1h 30m", Cost: 30},
	{Name: "Central Market Exploration", Type: TypeShopping, Duration: "2h", Cost: 0},
	{Name: "Scenic Viewpoint", Type: TypeSightseeing, Duration: "1h", Cost: 0},
	{Name: "Cooking Class", Type: TypeActivity, Duration: "3h", Cost: 60},
	{Name: "Sunset Dinner", Type: TypeDining, Duration: "2h", Cost: 50},
	{Name: "Riverside Park Stroll", Type: TypeActivity, Duration: "1h 30m", Cost: 0},
	{Name: "Boutique Shopping", Type: TypeShopping, Duration: "2h", Cost: 40},
}

var placeholderSlots = [4]string{"09:00", "12:00", "15:00", "19:00"}

const placeholderLateSlot = "20:00"

var placeholderThemes = [6]string{
	"Arrival & Exploration",
	"Cultural Discovery",
	"Local Experiences",
	"Adventure Day",
	"Relaxation & Leisure",
	"Farewell Tour",
}

const (
	dailyCostPerComfort  = 80
	flightCostPerComfort = 150
	hotelCostPerComfort  = 60
)

// GeneratePlaceholder builds a complete synthetic itinerary from the form alone.
// Shape and cost totals are deterministic; activity picks and districts come from rng.
func GeneratePlaceholder(form TripFormData, rng Rand) TripItinerary {
	start, numDays, err := form.DateRange()
	if err != nil {
		start, numDays = time.Now().UTC().Truncate(24*time.Hour), 1
	}
	comfort := ClampComfortLevel(form.ComfortLevel)
	travelers := max(form.Travelers, 1)

	days := make([]DayItinerary, numDays)
	for i := range days {
		count := 3 + rng.IntN(2)
		acts := make([]Activity, 0, count)
		for j := 0; j < count; j++ {
			tpl := placeholderPool[rng.IntN(len(placeholderPool))]
			slot := placeholderLateSlot
			if j < len(placeholderSlots) {
				slot = placeholderSlots[j]
			}
			acts = append(acts, Activity{
				Time:     slot,
				Name:     tpl.Name,
				Type:     tpl.Type,
				Duration: tpl.Duration,
				Location: fmt.Sprintf("%s - District %d", form.DestinationCity, 1+rng.IntN(10)),
				Cost:     ptr(tpl.Cost),
				Notes:    ptr(fmt.Sprintf("Great pick for a %s trip", groupLabel(form.GroupType))),
			})
		}
		days[i] = DayItinerary{
			Day:        i + 1,
			Date:       dateAt(start, i),
			Theme:      placeholderThemes[i%len(placeholderThemes)],
			Activities: acts,
		}
	}

	nights := numDays - 1
	baseCost := float64(comfort * dailyCostPerComfort)
	flightCost := float64(comfort * flightCostPerComfort * travelers)
	hotelCost := float64(comfort * hotelCostPerComfort * nights)

	it := TripItinerary{
		Destination:       form.DestinationCity,
		Dates:             form.DisplayDates(),
		Travelers:         travelers,
		ComfortLevel:      comfort,
		ComfortLevelName:  ComfortLevelName(comfort),
		ComfortLevelEmoji: ComfortLevelEmoji(comfort),
		TotalCost:         baseCost*float64(numDays*travelers) + flightCost + hotelCost,
		DailyItinerary:    days,
		Flights: Flights{
			Outbound:  form.outboundRoute(),
			Return:    form.returnRoute(),
			TotalCost: flightCost,
		},
		Accommodation: Accommodation{
			Name:      fmt.Sprintf("%s Hotel in %s", ComfortLevelName(comfort), form.DestinationCity),
			Nights:    nights,
			TotalCost: hotelCost,
		},
	}
	return EnforceBookends(it, form)
}

func groupLabel(groupType string) string {
	if groupType == "" {
		return "solo"
	}
	return groupType
}
