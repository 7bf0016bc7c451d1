package ai

import (
	"context"

	"wanderplan/internal/modules/itinerary"
)

// ItineraryGenerator produces a raw itinerary document for a trip form.
// The returned string is JSON in one of the shapes itinerary.Assemble accepts.
type ItineraryGenerator interface {
	PlanItinerary(ctx context.Context, form itinerary.TripFormData) (string, error)
}
