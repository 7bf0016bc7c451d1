// README: Location store is the process-wide geocode cache in Redis.
package location

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "location:geocode:"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// GetPlace returns the cached place for a normalised query, or ok=false on a miss.
func (s *Store) GetPlace(ctx context.Context, key string) (*Place, bool, error) {
	b, err := s.redis.Get(ctx, geocodeKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p Place
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *Store) SetPlace(ctx context.Context, key string, p *Place, ttl time.Duration) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, geocodeKeyPrefix+key, b, ttl).Err()
}
