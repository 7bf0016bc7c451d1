// README: Plan results and the pluggable itinerary sources behind them.
package planner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderplan/internal/modules/itinerary"
)

type Outcome string

const (
	// OutcomeGenerated means the source answered and the payload was assembled.
	OutcomeGenerated Outcome = "generated"
	// OutcomePlaceholder means no source is configured.
	OutcomePlaceholder Outcome = "placeholder"
	// OutcomeTimedOut means the source timed out and a placeholder was served instead.
	OutcomeTimedOut Outcome = "timed_out"
)

type Result struct {
	PlanID    uuid.UUID               `json:"plan_id"`
	Outcome   Outcome                 `json:"outcome"`
	Source    string                  `json:"source"`
	Form      itinerary.TripFormData  `json:"form"`
	Itinerary itinerary.TripItinerary `json:"itinerary"`
	CreatedAt time.Time               `json:"created_at"`
}

// Source fetches a raw, untyped itinerary payload for a form.
type Source interface {
	Name() string
	Fetch(ctx context.Context, form itinerary.TripFormData) (any, error)
}

// NoSource is the explicit "nothing configured" variant. Plans built with it are placeholders.
type NoSource struct{}

func (NoSource) Name() string { return "none" }

func (NoSource) Fetch(context.Context, itinerary.TripFormData) (any, error) {
	return nil, ErrNetwork
}

// DraftStore keeps recent plan results so a client can fetch them again by ID.
type DraftStore interface {
	SaveDraft(ctx context.Context, r *Result) error
	GetDraft(ctx context.Context, id uuid.UUID) (*Result, error)
}
