package planner

import (
	"context"
	"encoding/json"

	"wanderplan/internal/ai"
	"wanderplan/internal/modules/itinerary"
)

// GeminiSource asks an in-process model for the itinerary instead of a webhook.
type GeminiSource struct {
	gen ai.ItineraryGenerator
}

func NewGeminiSource(gen ai.ItineraryGenerator) *GeminiSource {
	return &GeminiSource{gen: gen}
}

func (g *GeminiSource) Name() string { return "gemini" }

func (g *GeminiSource) Fetch(ctx context.Context, form itinerary.TripFormData) (any, error) {
	text, err := g.gen.PlanItinerary(ctx, form)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, &itinerary.MalformedResponseError{Reason: "model output is not JSON"}
	}
	return payload, nil
}
