package trip

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("WANDER_TEST_DSN")
	if dsn == "" {
		t.Skip("WANDER_TEST_DSN not set; skipping DB-backed store tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE trips"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return NewStore(db)
}

func TestStore_RoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	planID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	trip := &Trip{
		ID:        uuid.New(),
		UserID:    "u1",
		Name:      "Trip to Paris",
		PlanID:    &planID,
		Form:      parisForm(),
		Itinerary: parisItinerary(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, store.Create(ctx, trip))

	got, err := store.Get(ctx, "u1", trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.Itinerary, got.Itinerary)
	assert.Equal(t, trip.Form, got.Form)
	assert.Equal(t, planID, *got.PlanID)
	assert.True(t, now.Equal(got.CreatedAt))

	list, err := store.List(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-03-01", list[0].StartDate)
	assert.Equal(t, "Paris", list[0].Destination)
	assert.InDelta(t, trip.Itinerary.TotalCost, list[0].TotalCost, 0.01)

	require.NoError(t, store.Rename(ctx, "u1", trip.ID, "Spring", now))
	assert.ErrorIs(t, store.Rename(ctx, "u2", trip.ID, "Nope", now), ErrNotFound)

	require.NoError(t, store.Delete(ctx, "u1", trip.ID))
	_, err = store.Get(ctx, "u1", trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_trips.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
