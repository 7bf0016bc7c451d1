// README: Planner service resolves a trip form into an itinerary, degrading to a placeholder on timeouts.
package planner

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderplan/internal/modules/itinerary"
)

// DefaultTimeout bounds a single upstream call. The workflow behind the webhook
// stops itself at roughly 115s.
const DefaultTimeout = 120 * time.Second

const draftWriteTimeout = 2 * time.Second

type Deps struct {
	Source  Source
	Drafts  DraftStore
	Rand    itinerary.Rand
	Logger  *zap.Logger
	Timeout time.Duration
	Now     func() time.Time
}

type Service struct {
	source  Source
	drafts  DraftStore
	rng     itinerary.Rand
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// globalRand draws from the goroutine-safe top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func NewService(deps Deps) *Service {
	s := &Service{
		source:  deps.Source,
		drafts:  deps.Drafts,
		rng:     deps.Rand,
		log:     deps.Logger,
		timeout: deps.Timeout,
		now:     deps.Now,
	}
	if s.source == nil {
		s.source = NoSource{}
	}
	if s.rng == nil {
		s.rng = globalRand{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SourceName reports which upstream this service is wired to.
func (s *Service) SourceName() string {
	return s.source.Name()
}

// Plan builds an itinerary for form. Timeouts degrade to a placeholder without an error;
// upstream failures and malformed responses are returned to the caller.
func (s *Service) Plan(ctx context.Context, form itinerary.TripFormData) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	started := s.now()
	it, outcome, err := s.resolve(ctx, form)
	elapsed := s.now().Sub(started)
	if err != nil {
		s.log.Warn("plan failed",
			zap.String("source", s.source.Name()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	res := &Result{
		PlanID:    uuid.New(),
		Outcome:   outcome,
		Source:    s.source.Name(),
		Form:      form,
		Itinerary: it,
		CreatedAt: started.UTC(),
	}
	s.log.Info("plan resolved",
		zap.String("plan_id", res.PlanID.String()),
		zap.String("source", res.Source),
		zap.String("outcome", string(outcome)),
		zap.Int("days", len(it.DailyItinerary)),
		zap.Duration("elapsed", elapsed),
	)
	s.saveDraft(ctx, res)
	return res, nil
}

func (s *Service) resolve(ctx context.Context, form itinerary.TripFormData) (itinerary.TripItinerary, Outcome, error) {
	if _, ok := s.source.(NoSource); ok {
		return itinerary.GeneratePlaceholder(form, s.rng), OutcomePlaceholder, nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := s.source.Fetch(reqCtx, form)
	if err == nil {
		it, err := itinerary.Assemble(payload, form)
		if err != nil {
			return itinerary.TripItinerary{}, "", err
		}
		return it, OutcomeGenerated, nil
	}

	var upstream *UpstreamError
	var malformed *itinerary.MalformedResponseError
	switch {
	case ctx.Err() != nil:
		// The caller went away; there is nobody to serve a placeholder to.
		return itinerary.TripItinerary{}, "", ctx.Err()
	case errors.Is(err, ErrTimedOut), errors.Is(err, context.DeadlineExceeded):
		s.log.Info("itinerary source timed out, serving placeholder",
			zap.String("source", s.source.Name()),
			zap.Error(err),
		)
		return itinerary.GeneratePlaceholder(form, s.rng), OutcomeTimedOut, nil
	case errors.As(err, &upstream), errors.As(err, &malformed):
		return itinerary.TripItinerary{}, "", err
	default:
		return itinerary.TripItinerary{}, "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}

func (s *Service) saveDraft(ctx context.Context, res *Result) {
	if s.drafts == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), draftWriteTimeout)
	defer cancel()
	if err := s.drafts.SaveDraft(ctx, res); err != nil {
		s.log.Warn("save plan draft", zap.String("plan_id", res.PlanID.String()), zap.Error(err))
	}
}

// Draft returns a previously resolved plan.
func (s *Service) Draft(ctx context.Context, id uuid.UUID) (*Result, error) {
	if s.drafts == nil {
		return nil, ErrDraftNotFound
	}
	return s.drafts.GetDraft(ctx, id)
}
