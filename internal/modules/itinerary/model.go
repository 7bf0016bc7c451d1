// README: Itinerary aggregate, activity and trip form definitions.
package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for form dates and day dates.
const DateLayout = "2006-01-02"

type ActivityType string

const (
	TypeFlight        ActivityType = "flight"
	TypeTransport     ActivityType = "transport"
	TypeAccommodation ActivityType = "accommodation"
	TypeDining        ActivityType = "dining"
	TypeSightseeing   ActivityType = "sightseeing"
	TypeActivity      ActivityType = "activity"
	TypeShopping      ActivityType = "shopping"
	TypeCafe          ActivityType = "cafe"
)

var knownTypes = map[ActivityType]struct{}{
	TypeFlight:        {},
	TypeTransport:     {},
	TypeAccommodation: {},
	TypeDining:        {},
	TypeSightseeing:   {},
	TypeActivity:      {},
	TypeShopping:      {},
	TypeCafe:          {},
}

// ParseActivityType maps free text onto the fixed enum; anything unknown becomes TypeActivity.
func ParseActivityType(v string) ActivityType {
	t := ActivityType(strings.ToLower(strings.TrimSpace(v)))
	if _, ok := knownTypes[t]; ok {
		return t
	}
	return TypeActivity
}

func (t ActivityType) IsTransport() bool {
	return t == TypeFlight || t == TypeTransport
}

// Activity is one scheduled event within a day.
// Optional fields are nil when the upstream did not send them.
type Activity struct {
	Time     string       `json:"time"`
	Name     string       `json:"name"`
	Type     ActivityType `json:"type"`
	Duration string       `json:"duration"`
	Location string       `json:"location"`

	Cost             *float64 `json:"cost,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	BookingURL       *string  `json:"booking_url,omitempty"`
	ImageURL         *string  `json:"image_url,omitempty"`
	Amenities        []string `json:"amenities,omitzero"`
	FlightClass      *string  `json:"flight_class,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	Address          *string  `json:"address,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	Website          *string  `json:"website,omitempty"`
	ConfirmationCode *string  `json:"confirmation_code,omitempty"`
	Provider         *string  `json:"provider,omitempty"`
	Category         *string  `json:"category,omitempty"`
}

// CostValue returns the cost, or 0 when unknown.
func (a Activity) CostValue() float64 {
	if a.Cost == nil {
		return 0
	}
	return *a.Cost
}

func (a Activity) clone() Activity {
	c := a
	if a.Amenities != nil {
		c.Amenities = append([]string{}, a.Amenities...)
	}
	return c
}

type DayItinerary struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type Flights struct {
	Outbound  string  `json:"outbound"`
	Return    string  `json:"return"`
	TotalCost float64 `json:"total_cost"`
}

type Accommodation struct {
	Name      string  `json:"name"`
	Nights    int     `json:"nights"`
	TotalCost float64 `json:"total_cost"`
}

// TripItinerary is the aggregate returned to callers of the planner.
type TripItinerary struct {
	Destination       string         `json:"destination"`
	Dates             string         `json:"dates"`
	Travelers         int            `json:"travelers"`
	ComfortLevel      int            `json:"comfort_level"`
	ComfortLevelName  string         `json:"comfort_level_name"`
	ComfortLevelEmoji string         `json:"comfort_level_emoji"`
	TotalCost         float64        `json:"total_cost"`
	DailyItinerary    []DayItinerary `json:"daily_itinerary"`
	Flights           Flights        `json:"flights"`
	Accommodation     Accommodation  `json:"accommodation"`
}

// clone deep-copies the day and activity slices.
func (it TripItinerary) clone() TripItinerary {
	c := it
	c.DailyItinerary = make([]DayItinerary, len(it.DailyItinerary))
	for i, d := range it.DailyItinerary {
		nd := d
		nd.Activities = make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			nd.Activities[j] = a.clone()
		}
		c.DailyItinerary[i] = nd
	}
	return c
}

// TripFormData is what the multi-step form submits.
type TripFormData struct {
	DepartureCity   string   `json:"departure_city"`
	DestinationCity string   `json:"destination_city"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Travelers       int      `json:"travelers"`
	Preferences     []string `json:"preferences"`
	PassportCountry string   `json:"passport_country"`
	GroupType       string   `json:"group_type"`
	ComfortLevel    int      `json:"comfort_level"`
}

// Validate checks the fields the core depends on.
func (f TripFormData) Validate() error {
	if strings.TrimSpace(f.DepartureCity) == "" || strings.TrimSpace(f.DestinationCity) == "" {
		return fmt.Errorf("%w: departure and destination city are required", ErrInvalidForm)
	}
	if f.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidForm)
	}
	if f.ComfortLevel < 1 || f.ComfortLevel > 5 {
		return fmt.Errorf("%w: comfort_level must be between 1 and 5", ErrInvalidForm)
	}
	if _, _, err := f.DateRange(); err != nil {
		return err
	}
	return nil
}

// MaxTripDays is the longest trip, counted inclusively, that can be planned.
const MaxTripDays = 60

const secondsPerDay = 24 * 60 * 60

// DateRange returns the parsed start date and the inclusive number of days in the trip.
func (f TripFormData) DateRange() (time.Time, int, error) {
	start, err := time.Parse(DateLayout, f.StartDate)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: invalid start_date %q", ErrInvalidForm, f.StartDate)
	}
	end, err := time.Parse(DateLayout, f.EndDate)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: invalid end_date %q", ErrInvalidForm, f.EndDate)
	}
	if end.Before(start) {
		return time.Time{}, 0, fmt.Errorf("%w: end_date is before start_date", ErrInvalidForm)
	}
	days := int((end.Unix()-start.Unix())/secondsPerDay) + 1
	if days > MaxTripDays {
		return time.Time{}, 0, fmt.Errorf("%w: trip is longer than %d days", ErrInvalidForm, MaxTripDays)
	}
	return start, days, nil
}

// DisplayDates is the human readable date range shown on an itinerary.
func (f TripFormData) DisplayDates() string {
	return f.StartDate + " to " + f.EndDate
}

func (f TripFormData) outboundRoute() string {
	return f.DepartureCity + " → " + f.DestinationCity
}

func (f TripFormData) returnRoute() string {
	return f.DestinationCity + " → " + f.DepartureCity
}

func dateAt(start time.Time, offset int) string {
	return start.AddDate(0, 0, offset).Format(DateLayout)
}
