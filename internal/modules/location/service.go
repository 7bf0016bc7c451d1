// README: Location service geocodes place names through a shared cache.
package location

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"wanderplan/internal/maps"
)

var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("location not found")
	ErrUnavailable = errors.New("geocoding is not configured")
)

const maxRankedPlaces = 10

// Geocoder is satisfied by *maps.Client.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*maps.GeocodeResult, error)
	Travel(ctx context.Context, origin, destination, mode string) (*maps.TravelEstimate, error)
}

type Cache interface {
	GetPlace(ctx context.Context, key string) (*Place, bool, error)
	SetPlace(ctx context.Context, key string, p *Place, ttl time.Duration) error
}

type Service struct {
	geocoder Geocoder
	cache    Cache
	ttl      time.Duration
	log      *zap.Logger
}

// NewService wires the geocoder and cache. Either may be nil: without a geocoder every
// lookup fails with ErrUnavailable, without a cache every lookup goes upstream.
func NewService(geocoder Geocoder, cache Cache, ttl time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{geocoder: geocoder, cache: cache, ttl: ttl, log: log}
}

func cacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Geocode resolves query, consulting the cache first.
func (s *Service) Geocode(ctx context.Context, query string) (*Place, error) {
	key := cacheKey(query)
	if key == "" {
		return nil, fmt.Errorf("%w: query is required", ErrBadRequest)
	}

	if s.cache != nil {
		p, ok, err := s.cache.GetPlace(ctx, key)
		if err != nil {
			s.log.Warn("geocode cache read", zap.String("query", key), zap.Error(err))
		} else if ok {
			return p, nil
		}
	}
	if s.geocoder == nil {
		return nil, ErrUnavailable
	}

	res, err := s.geocoder.Geocode(ctx, query)
	if errors.Is(err, maps.ErrNoResults) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	if err != nil {
		return nil, err
	}

	p := &Place{
		Query:            strings.TrimSpace(query),
		FormattedAddress: res.FormattedAddress,
		PlaceID:          res.PlaceID,
		Point:            Point{Lat: res.Lat, Lng: res.Lng},
	}
	if s.cache != nil {
		if err := s.cache.SetPlace(ctx, key, p, s.ttl); err != nil {
			s.log.Warn("geocode cache write", zap.String("query", key), zap.Error(err))
		}
	}
	return p, nil
}

// RankByDistance geocodes origin and every place, returning places nearest first.
func (s *Service) RankByDistance(ctx context.Context, origin string, places []string) ([]Distance, error) {
	if len(places) == 0 || len(places) > maxRankedPlaces {
		return nil, fmt.Errorf("%w: between 1 and %d places are required", ErrBadRequest, maxRankedPlaces)
	}
	from, err := s.Geocode(ctx, origin)
	if err != nil {
		return nil, err
	}

	out := make([]Distance, 0, len(places))
	for _, q := range places {
		to, err := s.Geocode(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, Distance{To: *to, KM: haversineKm(from.Point, to.Point)})
	}
	sortByDistance(out, func(d Distance) float64 { return d.KM })
	return out, nil
}

// Route estimates travel between two places.
func (s *Service) Route(ctx context.Context, from, to, mode string) (*Route, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrBadRequest)
	}
	if s.geocoder == nil {
		return nil, ErrUnavailable
	}
	if mode == "" {
		mode = "driving"
	}

	est, err := s.geocoder.Travel(ctx, from, to, mode)
	if errors.Is(err, maps.ErrNoResults) {
		return nil, fmt.Errorf("%w: no route from %q to %q", ErrNotFound, from, to)
	}
	if err != nil {
		return nil, err
	}
	return &Route{
		From:           from,
		To:             to,
		Mode:           mode,
		Duration:       est.Duration,
		DurationText:   est.Duration.Round(time.Minute).String(),
		DistanceMeters: est.DistanceMeters,
		DistanceText:   est.DistanceText,
	}, nil
}
