// README: Trip service validates and persists itineraries a user chooses to keep.
package trip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/modules/planner"
)

var (
	ErrNotFound    = errors.New("trip not found")
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("trip storage is not configured")
)

const (
	maxNameLen       = 120
	defaultListLimit = 50
)

type Repository interface {
	Create(ctx context.Context, t *Trip) error
	Get(ctx context.Context, userID string, id uuid.UUID) (*Trip, error)
	List(ctx context.Context, userID string, limit int) ([]Summary, error)
	Rename(ctx context.Context, userID string, id uuid.UUID, name string, at time.Time) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// Drafts lets a trip be saved straight from a recent plan.
type Drafts interface {
	Draft(ctx context.Context, id uuid.UUID) (*planner.Result, error)
}

type Service struct {
	repo   Repository
	drafts Drafts
	now    func() time.Time
}

// NewService wires the trip repository and plan drafts. Without a repository every
// operation fails with ErrUnavailable.
func NewService(repo Repository, drafts Drafts) *Service {
	return &Service{repo: repo, drafts: drafts, now: time.Now}
}

// SaveCommand carries either a PlanID to copy from the draft cache, or a full form and itinerary.
type SaveCommand struct {
	UserID    string
	Name      string
	PlanID    *uuid.UUID
	Form      *itinerary.TripFormData
	Itinerary *itinerary.TripItinerary
}

func (s *Service) Save(ctx context.Context, cmd SaveCommand) (*Trip, error) {
	if s.repo == nil {
		return nil, ErrUnavailable
	}
	if cmd.UserID == "" {
		return nil, fmt.Errorf("%w: user is required", ErrBadRequest)
	}

	var form itinerary.TripFormData
	var it itinerary.TripItinerary
	switch {
	case cmd.Form != nil && cmd.Itinerary != nil:
		form, it = *cmd.Form, *cmd.Itinerary
	case cmd.PlanID != nil:
		if s.drafts == nil {
			return nil, fmt.Errorf("%w: plan drafts are unavailable", ErrBadRequest)
		}
		res, err := s.drafts.Draft(ctx, *cmd.PlanID)
		if errors.Is(err, planner.ErrDraftNotFound) {
			return nil, fmt.Errorf("%w: plan %s has expired", ErrNotFound, cmd.PlanID)
		}
		if err != nil {
			return nil, err
		}
		form, it = res.Form, res.Itinerary
	default:
		return nil, fmt.Errorf("%w: plan_id or form and itinerary are required", ErrBadRequest)
	}

	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if len(it.DailyItinerary) == 0 {
		return nil, fmt.Errorf("%w: itinerary has no days", ErrBadRequest)
	}

	name, err := tripName(cmd.Name, form)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	t := &Trip{
		ID:        uuid.New(),
		UserID:    cmd.UserID,
		Name:      name,
		PlanID:    cmd.PlanID,
		Form:      form,
		Itinerary: it,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Trip, error) {
	if s.repo == nil {
		return nil, ErrUnavailable
	}
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	if s.repo == nil {
		return nil, ErrUnavailable
	}
	return s.repo.List(ctx, userID, defaultListLimit)
}

func (s *Service) Rename(ctx context.Context, userID string, id uuid.UUID, name string) error {
	if s.repo == nil {
		return ErrUnavailable
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("%w: name is longer than %d characters", ErrBadRequest, maxNameLen)
	}
	return s.repo.Rename(ctx, userID, id, name, s.now().UTC())
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if s.repo == nil {
		return ErrUnavailable
	}
	return s.repo.Delete(ctx, userID, id)
}

func tripName(name string, form itinerary.TripFormData) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Trip to " + form.DestinationCity, nil
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "", fmt.Errorf("%w: name is longer than %d characters", ErrBadRequest, maxNameLen)
	}
	return name, nil
}
