// README: Activity normalizer; coerces loosely typed upstream records into Activity values.
package itinerary

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	defaultActivityTime     = "09:00"
	defaultActivityName     = "Activity"
	defaultActivityDuration = "1h"
)

// NormalizeActivity turns one upstream record into an Activity. It never fails: required
// fields that are missing or falsy get defaults, optional fields are copied only when present
// with a usable shape.
func NormalizeActivity(raw any, fallbackLocation string) Activity {
	rec, _ := raw.(map[string]any)

	a := Activity{
		Time:     requiredString(rec, "time", defaultActivityTime),
		Name:     requiredString(rec, "name", defaultActivityName),
		Type:     TypeActivity,
		Duration: requiredString(rec, "duration", defaultActivityDuration),
		Location: requiredString(rec, "location", fallbackLocation),
	}
	if t, ok := truthyString(rec["type"]); ok {
		a.Type = ParseActivityType(t)
	}

	a.Cost = optionalNumber(rec, "cost")
	a.Rating = optionalNumber(rec, "rating")
	a.Notes = optionalString(rec, "notes")
	a.BookingURL = optionalString(rec, "booking_url")
	a.ImageURL = optionalString(rec, "image_url")
	a.FlightClass = optionalString(rec, "flight_class")
	a.Address = optionalString(rec, "address")
	a.Phone = optionalString(rec, "phone")
	a.Website = optionalString(rec, "website")
	a.ConfirmationCode = optionalString(rec, "confirmation_code")
	a.Provider = optionalString(rec, "provider")
	a.Category = optionalString(rec, "category")
	a.Amenities = optionalStrings(rec, "amenities")
	return a
}

func requiredString(rec map[string]any, key, def string) string {
	if s, ok := truthyString(rec[key]); ok {
		return s
	}
	return def
}

// truthyString stringifies scalar values that are not falsy ("", 0, false, null).
func truthyString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, x != ""
	case float64:
		if x == 0 {
			return "", false
		}
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		if f, err := x.Float64(); err == nil && f == 0 {
			return "", false
		}
		return x.String(), true
	case bool:
		if !x {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

func optionalString(rec map[string]any, key string) *string {
	v, ok := rec[key]
	if !ok {
		return nil
	}
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		s = x.String()
	case bool:
		s = strconv.FormatBool(x)
	default:
		return nil
	}
	return &s
}

func optionalNumber(rec map[string]any, key string) *float64 {
	v, ok := rec[key]
	if !ok {
		return nil
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return nil
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = n
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// optionalStrings accepts only a list made entirely of strings.
func optionalStrings(rec map[string]any, key string) []string {
	switch x := rec[key].(type) {
	case []string:
		return append([]string{}, x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}
