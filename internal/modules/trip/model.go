// README: Saved trip record, a named snapshot of a planned itinerary.
package trip

import (
	"time"

	"github.com/google/uuid"

	"wanderplan/internal/modules/itinerary"
)

type Trip struct {
	ID        uuid.UUID               `json:"id"`
	UserID    string                  `json:"user_id"`
	Name      string                  `json:"name"`
	PlanID    *uuid.UUID              `json:"plan_id,omitempty"`
	Form      itinerary.TripFormData  `json:"form"`
	Itinerary itinerary.TripItinerary `json:"itinerary"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Summary is the list view of a trip.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	TotalCost   float64   `json:"total_cost"`
	CreatedAt   time.Time `json:"created_at"`
}
