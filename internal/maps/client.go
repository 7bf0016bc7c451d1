package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoResults is returned when Google has no match for a query.
var ErrNoResults = errors.New("no results")

// GeocodeResult is the best match for a free-text place name.
type GeocodeResult struct {
	FormattedAddress string
	Lat              float64
	Lng              float64
	PlaceID          string
}

// TravelEstimate summarises the first route leg between two places.
type TravelEstimate struct {
	Duration       time.Duration
	DistanceMeters int
	DistanceText   string
}

// Client wraps the Google Maps Geocoding and Directions APIs.
type Client struct {
	client *maps.Client
}

// NewClient creates a new Client with the given API Key.
func NewClient(apiKey string) (*Client, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{client: client}, nil
}

// Geocode resolves a place name to coordinates.
func (c *Client) Geocode(ctx context.Context, query string) (*GeocodeResult, error) {
	results, err := c.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("maps geocode error: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	r := results[0]
	return &GeocodeResult{
		FormattedAddress: r.FormattedAddress,
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
		PlaceID:          r.PlaceID,
	}, nil
}

// Travel returns the duration and distance from origin to destination.
// mode is one of driving, walking, bicycling or transit; empty means driving.
func (c *Client) Travel(ctx context.Context, origin, destination, mode string) (*TravelEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        travelMode(mode),
	}

	routes, _, err := c.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoResults
	}

	leg := routes[0].Legs[0]
	return &TravelEstimate{
		Duration:       leg.Duration,
		DistanceMeters: leg.Distance.Meters,
		DistanceText:   leg.Distance.HumanReadable,
	}, nil
}

func travelMode(mode string) maps.Mode {
	switch strings.ToLower(mode) {
	case "walking":
		return maps.TravelModeWalking
	case "bicycling":
		return maps.TravelModeBicycling
	case "transit":
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}
