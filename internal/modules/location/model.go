// README: Geocoded places and distances between them.
package location

import "time"

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a resolved free-text location.
type Place struct {
	Query            string `json:"query"`
	FormattedAddress string `json:"formatted_address"`
	PlaceID          string `json:"place_id,omitempty"`
	Point
}

// Distance is the straight-line distance from an origin to one place.
type Distance struct {
	To Place   `json:"to"`
	KM float64 `json:"km"`
}

// Route is a travel estimate between two places for one mode of transport.
type Route struct {
	From           string        `json:"from"`
	To             string        `json:"to"`
	Mode           string        `json:"mode"`
	Duration       time.Duration `json:"-"`
	DurationText   string        `json:"duration"`
	DistanceMeters int           `json:"distance_meters"`
	DistanceText   string        `json:"distance"`
}
