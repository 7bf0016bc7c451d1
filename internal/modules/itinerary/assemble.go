// README: Itinerary assembler; maps every accepted upstream payload shape onto TripItinerary.
package itinerary

import (
	"fmt"
	"math"
	"time"
)

// payloadShape enumerates the upstream response layouts the assembler accepts.
type payloadShape int

const (
	shapeMalformed      payloadShape = iota
	shapeActivityArray               // [ {time, name, ...}, ... ]
	shapeWrappedPayload              // [ {...envelope...} ]
	shapeFlatStream                  // { data: [ {time, name, ...}, ... ] }
	shapeDataEnvelope                // { data: { daily_itinerary: [...] } }
	shapeDayList                     // { daily_itinerary | itinerary: [...] }
)

// tripSpan carries the form's parsed date range through assembly.
type tripSpan struct {
	start time.Time
	days  int
}

// Assemble builds a TripItinerary from an arbitrary decoded JSON payload. It fails with
// *MalformedResponseError when no accepted shape matches, and with ErrInvalidForm when the form
// dates cannot be parsed.
func Assemble(payload any, form TripFormData) (TripItinerary, error) {
	start, days, err := form.DateRange()
	if err != nil {
		return TripItinerary{}, err
	}
	return assemble(payload, form, tripSpan{start: start, days: days})
}

func assemble(payload any, form TripFormData, span tripSpan) (TripItinerary, error) {
	shape, inner, reason := classify(payload)
	switch shape {
	case shapeActivityArray:
		return assemble(map[string]any{"data": inner}, form, span)
	case shapeWrappedPayload:
		return assemble(inner, form, span)
	case shapeFlatStream:
		return assembleFlat(inner.([]any), form, span), nil
	case shapeDataEnvelope:
		rec, ok := inner.(map[string]any)
		if !ok {
			return TripItinerary{}, malformed("data field is neither a list nor an object")
		}
		return assembleDays(rec, form, span)
	case shapeDayList:
		return assembleDays(inner.(map[string]any), form, span)
	default:
		return TripItinerary{}, malformed(reason)
	}
}

// classify picks the variant for payload and returns the value that variant operates on.
func classify(payload any) (payloadShape, any, string) {
	switch p := payload.(type) {
	case []any:
		if len(p) == 0 {
			return shapeMalformed, nil, "empty array"
		}
		if looksLikeActivity(p[0]) {
			return shapeActivityArray, p, ""
		}
		return shapeWrappedPayload, p[0], ""
	case map[string]any:
		data, hasData := p["data"]
		_, hasDays := p["daily_itinerary"]
		if hasData && !hasDays {
			if list, ok := data.([]any); ok {
				return shapeFlatStream, list, ""
			}
			return shapeDataEnvelope, data, ""
		}
		return shapeDayList, p, ""
	case nil:
		return shapeMalformed, nil, "empty payload"
	default:
		return shapeMalformed, nil, fmt.Sprintf("payload is %T, not an object", payload)
	}
}

func looksLikeActivity(v any) bool {
	rec, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, hasTime := rec["time"]
	_, hasName := rec["name"]
	return hasTime && hasName
}

func assembleFlat(items []any, form TripFormData, span tripSpan) TripItinerary {
	acts := make([]Activity, len(items))
	for i, item := range items {
		acts[i] = NormalizeActivity(item, form.DestinationCity)
	}

	comfort := ClampComfortLevel(form.ComfortLevel)
	it := TripItinerary{
		Destination:       form.DestinationCity,
		Dates:             form.DisplayDates(),
		Travelers:         form.Travelers,
		ComfortLevel:      comfort,
		ComfortLevelName:  ComfortLevelName(comfort),
		ComfortLevelEmoji: ComfortLevelEmoji(comfort),
		TotalCost:         sumCosts(acts),
		DailyItinerary:    Bucketize(acts, span.start, span.days),
		Flights:           deriveFlights(acts, form),
		Accommodation:     deriveAccommodation(acts, form, span.days),
	}
	return EnforceBookends(it, form)
}

func assembleDays(rec map[string]any, form TripFormData, span tripSpan) (TripItinerary, error) {
	rawDays, ok := rec["daily_itinerary"]
	if !ok {
		rawDays, ok = rec["itinerary"]
	}
	if !ok {
		return TripItinerary{}, malformed("missing daily_itinerary")
	}
	list, ok := rawDays.([]any)
	if !ok {
		return TripItinerary{}, malformed("daily_itinerary is not a list")
	}
	if len(list) == 0 {
		return TripItinerary{}, malformed("daily_itinerary is empty")
	}

	days := make([]DayItinerary, len(list))
	var all []Activity
	for i, raw := range list {
		dayRec, _ := raw.(map[string]any)
		day := DayItinerary{
			// Supplied day and date values are overridden: numbering follows list position so
			// the sequence always starts at the form's start date and stays contiguous.
			Day:        i + 1,
			Date:       dateAt(span.start, i),
			Theme:      requiredString(dayRec, "theme", fmt.Sprintf("Day %d", i+1)),
			Activities: []Activity{},
		}
		if items, ok := dayRec["activities"].([]any); ok {
			for _, item := range items {
				day.Activities = append(day.Activities, NormalizeActivity(item, form.DestinationCity))
			}
		}
		all = append(all, day.Activities...)
		days[i] = day
	}

	comfort := form.ComfortLevel
	if v := optionalNumber(rec, "comfort_level"); v != nil {
		comfort = roundClamp(*v, 1, len(comfortTiers))
	}
	comfort = ClampComfortLevel(comfort)

	travelers := form.Travelers
	if v := optionalNumber(rec, "travelers"); v != nil && *v >= 1 {
		travelers = roundClamp(*v, 1, math.MaxInt32)
	}

	totalCost := sumCosts(all)
	if v := optionalNumber(rec, "total_cost"); v != nil {
		totalCost = *v
	}

	flights := deriveFlights(all, form)
	if frec, ok := rec["flights"].(map[string]any); ok {
		flights.Outbound = requiredString(frec, "outbound", flights.Outbound)
		flights.Return = requiredString(frec, "return", flights.Return)
		if v := optionalNumber(frec, "total_cost"); v != nil {
			flights.TotalCost = *v
		}
	}

	acc := deriveAccommodation(all, form, span.days)
	if arec, ok := rec["accommodation"].(map[string]any); ok {
		acc.Name = requiredString(arec, "name", acc.Name)
		if v := optionalNumber(arec, "nights"); v != nil && *v >= 0 {
			acc.Nights = roundClamp(*v, 0, max(span.days-1, 0))
		}
		if v := optionalNumber(arec, "total_cost"); v != nil {
			acc.TotalCost = *v
		}
	}

	it := TripItinerary{
		Destination:       requiredString(rec, "destination", form.DestinationCity),
		Dates:             requiredString(rec, "dates", form.DisplayDates()),
		Travelers:         travelers,
		ComfortLevel:      comfort,
		ComfortLevelName:  requiredString(rec, "comfort_level_name", ComfortLevelName(comfort)),
		ComfortLevelEmoji: requiredString(rec, "comfort_level_emoji", ComfortLevelEmoji(comfort)),
		TotalCost:         totalCost,
		DailyItinerary:    days,
		Flights:           flights,
		Accommodation:     acc,
	}
	return EnforceBookends(it, form), nil
}

// roundClamp rounds v to the nearest integer within [lo, hi].
func roundClamp(v float64, lo, hi int) int {
	r := math.Round(v)
	if r <= float64(lo) {
		return lo
	}
	if r >= float64(hi) {
		return hi
	}
	return int(r)
}

func sumCosts(acts []Activity) float64 {
	var total float64
	for _, a := range acts {
		total += a.CostValue()
	}
	return total
}

func deriveFlights(acts []Activity, form TripFormData) Flights {
	f := Flights{Outbound: form.outboundRoute(), Return: form.returnRoute()}
	var flights []Activity
	for _, a := range acts {
		if a.Type == TypeFlight {
			flights = append(flights, a)
			f.TotalCost += a.CostValue()
		}
	}
	if len(flights) > 0 {
		if loc := flights[0].Location; loc != "" {
			f.Outbound = loc
		}
		if loc := flights[len(flights)-1].Location; loc != "" {
			f.Return = loc
		}
	}
	return f
}

func deriveAccommodation(acts []Activity, form TripFormData, requestedDays int) Accommodation {
	acc := Accommodation{
		Name:   fmt.Sprintf("%s Hotel in %s", ComfortLevelName(form.ComfortLevel), form.DestinationCity),
		Nights: max(requestedDays-1, 0),
	}
	for _, a := range acts {
		if a.Type != TypeAccommodation {
			continue
		}
		acc.Name = a.Name
		acc.TotalCost = a.CostValue()
		if n, ok := leadingInt(a.Duration); ok && n > 0 {
			acc.Nights = n
		}
		break
	}
	return acc
}

// leadingInt reads the first run of digits in s, e.g. "3 nights" -> 3.
func leadingInt(s string) (int, bool) {
	n, found := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
