package ai

import (
	"fmt"
	"strings"

	"wanderplan/internal/modules/itinerary"
)

const systemPrompt = `Role: You are the trip planning engine for "Wanderplan".
You receive a traveller's form and answer with ONE JSON object, no prose.

RULES:
1. Produce exactly one entry in "daily_itinerary" per calendar day between the start and end date, inclusive.
2. Activities inside a day are in chronological order, "time" is 24h "HH:MM".
3. "type" is one of: flight, transport, accommodation, dining, sightseeing, activity, shopping, cafe.
4. Day 1 starts with the outbound flight. The last day ends with the return flight.
5. "cost" is a number in USD for the whole group. Omit optional fields you do not know; never invent booking codes.
6. Scale prices to the comfort level (1 = backpacker, 5 = luxury).

Output JSON Schema:
{
  "destination": "string",
  "total_cost": number,
  "daily_itinerary": [
    {
      "day": integer,
      "date": "YYYY-MM-DD",
      "theme": "string",
      "activities": [
        {
          "time": "HH:MM",
          "name": "string",
          "type": "string",
          "duration": "string (e.g. 2h 30m)",
          "location": "string",
          "cost": number,
          "notes": "string",
          "address": "string",
          "rating": number,
          "amenities": ["string"]
        }
      ]
    }
  ],
  "flights": {"outbound": "string", "return": "string", "total_cost": number},
  "accommodation": {"name": "string", "nights": integer, "total_cost": number}
}
`

// buildTripPrompt renders the per-request part of the prompt.
func buildTripPrompt(form itinerary.TripFormData) string {
	prefs := "none"
	if len(form.Preferences) > 0 {
		prefs = strings.Join(form.Preferences, ", ")
	}
	group := form.GroupType
	if group == "" {
		group = "unspecified"
	}
	passport := form.PassportCountry
	if passport == "" {
		passport = "unspecified"
	}

	return fmt.Sprintf(`Trip request:
- From: %s
- To: %s
- Dates: %s to %s
- Travelers: %d (%s)
- Passport: %s
- Comfort level: %d (%s)
- Interests: %s`,
		form.DepartureCity, form.DestinationCity,
		form.StartDate, form.EndDate,
		form.Travelers, group,
		passport,
		form.ComfortLevel, itinerary.ComfortLevelName(form.ComfortLevel),
		prefs,
	)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
