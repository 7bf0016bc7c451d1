// README: Trip store backed by PostgreSQL; form and itinerary live in JSONB columns.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wanderplan/internal/modules/itinerary"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Trip) error {
	form, err := json.Marshal(t.Form)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	it, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO trips (
            id, user_id, name, plan_id,
            destination, start_date, end_date, total_cost,
            form, itinerary, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8,
            $9, $10, $11, $12
        )`,
		t.ID, t.UserID, t.Name, t.PlanID,
		t.Itinerary.Destination, t.Form.StartDate, t.Form.EndDate, t.Itinerary.TotalCost,
		form, it, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, userID string, id uuid.UUID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, user_id, name, plan_id, form, itinerary, created_at, updated_at
        FROM trips
        WHERE id = $1 AND user_id = $2`, id, userID,
	)

	var t Trip
	var form, it []byte
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.PlanID, &form, &it, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(form, &t.Form); err != nil {
		return nil, fmt.Errorf("decode form of trip %s: %w", id, err)
	}
	if err := json.Unmarshal(it, &t.Itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary of trip %s: %w", id, err)
	}
	return &t, nil
}

func (s *Store) List(ctx context.Context, userID string, limit int) ([]Summary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, destination, start_date, end_date, total_cost::float8, created_at
        FROM trips
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var sum Summary
		var start, end time.Time
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Destination, &start, &end, &sum.TotalCost, &sum.CreatedAt); err != nil {
			return nil, err
		}
		sum.StartDate = start.Format(itinerary.DateLayout)
		sum.EndDate = end.Format(itinerary.DateLayout)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) Rename(ctx context.Context, userID string, id uuid.UUID, name string, at time.Time) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE trips SET name = $3, updated_at = $4
        WHERE id = $1 AND user_id = $2`, id, userID, name, at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
