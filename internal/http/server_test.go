// README: End-to-end router tests over real module services with in-memory backends.
package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "wanderplan/internal/http"
	"wanderplan/internal/infra"
	"wanderplan/internal/modules/location"
	"wanderplan/internal/modules/planner"
	"wanderplan/internal/modules/trip"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (*infra.Identity, error) {
	return &infra.Identity{UID: token}, nil
}

type memDrafts struct {
	mu    sync.Mutex
	items map[uuid.UUID]*planner.Result
}

func (m *memDrafts) SaveDraft(_ context.Context, r *planner.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[r.PlanID] = r
	return nil
}

func (m *memDrafts) GetDraft(_ context.Context, id uuid.UUID) (*planner.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, planner.ErrDraftNotFound
	}
	return r, nil
}

type memTrips struct {
	mu    sync.Mutex
	trips map[uuid.UUID]*trip.Trip
}

func (m *memTrips) Create(_ context.Context, t *trip.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[t.ID] = t
	return nil
}

func (m *memTrips) Get(_ context.Context, userID string, id uuid.UUID) (*trip.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[id]
	if !ok || t.UserID != userID {
		return nil, trip.ErrNotFound
	}
	return t, nil
}

func (m *memTrips) List(_ context.Context, userID string, _ int) ([]trip.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []trip.Summary{}
	for _, t := range m.trips {
		if t.UserID == userID {
			out = append(out, trip.Summary{ID: t.ID, Name: t.Name})
		}
	}
	return out, nil
}

func (m *memTrips) Rename(_ context.Context, userID string, id uuid.UUID, name string, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[id]
	if !ok || t.UserID != userID {
		return trip.ErrNotFound
	}
	t.Name = name
	return nil
}

func (m *memTrips) Delete(_ context.Context, userID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trips[id]
	if !ok || t.UserID != userID {
		return trip.ErrNotFound
	}
	delete(m.trips, id)
	return nil
}

func newRouter(t *testing.T, src planner.Source) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	plans := planner.NewService(planner.Deps{
		Source: src,
		Drafts: &memDrafts{items: map[uuid.UUID]*planner.Result{}},
	})
	srv := httptransport.NewServer(httptransport.ServerDeps{
		Planner:           plans,
		Trips:             trip.NewService(&memTrips{trips: map[uuid.UUID]*trip.Trip{}}, plans),
		Location:          location.NewService(nil, nil, 0, nil),
		Verifier:          stubVerifier{},
		AllowedOrigins:    []string{"http://localhost:5173"},
		PlanRatePerMinute: 100,
	})
	return srv.Routes()
}

func do(h http.Handler, method, path string, body any, uid string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("Authorization", "Bearer "+uid)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

var parisBody = map[string]any{
	"departure_city":   "NYC",
	"destination_city": "Paris",
	"start_date":       "2025-03-01",
	"end_date":         "2025-03-03",
	"travelers":        2,
	"comfort_level":    3,
	"group_type":       "couple",
	"preferences":      []string{},
	"passport_country": "US",
}

type planResponse struct {
	PlanID    uuid.UUID       `json:"plan_id"`
	Outcome   string          `json:"outcome"`
	Itinerary json.RawMessage `json:"itinerary"`
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t, nil), http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCreatePlan_Placeholder(t *testing.T) {
	r := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/plans", parisBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		PlanID    uuid.UUID `json:"plan_id"`
		Outcome   string    `json:"outcome"`
		Itinerary struct {
			ComfortLevelName string `json:"comfort_level_name"`
			DailyItinerary   []struct {
				Day        int `json:"day"`
				Activities []struct {
					Type string `json:"type"`
				} `json:"activities"`
			} `json:"daily_itinerary"`
		} `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "placeholder", res.Outcome)
	assert.Equal(t, "Standard", res.Itinerary.ComfortLevelName)
	require.Len(t, res.Itinerary.DailyItinerary, 3)
	assert.Equal(t, "flight", res.Itinerary.DailyItinerary[0].Activities[0].Type)

	got := do(r, http.MethodGet, "/api/plans/"+res.PlanID.String(), nil, "")
	assert.Equal(t, http.StatusOK, got.Code)
}

func TestCreatePlan_Errors(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "workflow crashed"}`))
	}))
	defer upstream.Close()
	r := newRouter(t, planner.NewWebhookSource(upstream.URL, upstream.Client()))

	w := do(r, http.MethodPost, "/api/plans", parisBody, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error": "workflow crashed"}`, w.Body.String())

	bad := map[string]any{"departure_city": "NYC", "destination_city": "Paris", "travelers": 1, "comfort_level": 3}
	w = do(r, http.MethodPost, "/api/plans", bad, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPlan_Errors(t *testing.T) {
	r := newRouter(t, nil)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/plans/not-a-uuid", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/plans/"+uuid.NewString(), nil, "").Code)
}

func TestTrips_Lifecycle(t *testing.T) {
	r := newRouter(t, nil)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/trips", nil, "").Code)

	plan := do(r, http.MethodPost, "/api/plans", parisBody, "")
	require.Equal(t, http.StatusOK, plan.Code)
	var p planResponse
	require.NoError(t, json.Unmarshal(plan.Body.Bytes(), &p))

	created := do(r, http.MethodPost, "/api/trips", map[string]any{"plan_id": p.PlanID, "name": "Paris"}, "alice")
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	var saved trip.Trip
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &saved))
	assert.Equal(t, "alice", saved.UserID)
	assert.Len(t, saved.Itinerary.DailyItinerary, 3)

	path := "/api/trips/" + saved.ID.String()
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, nil, "bob").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, path, nil, "alice").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPatch, path, map[string]any{"name": "Spring"}, "alice").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, path, map[string]any{"name": ""}, "alice").Code)

	list := do(r, http.MethodGet, "/api/trips", nil, "alice")
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Spring")

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, path, nil, "alice").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, path, nil, "alice").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/trips/xyz", nil, "alice").Code)

	missing := do(r, http.MethodPost, "/api/trips", map[string]any{"plan_id": uuid.New()}, "alice")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestLocations_Unconfigured(t *testing.T) {
	r := newRouter(t, nil)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/locations/geocode?q=", nil, "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/locations/geocode?q=Paris", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/locations/distances?from=Paris", nil, "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/locations/route?from=Paris&to=Lyon", nil, "").Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/plans", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreatePlan_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := httptransport.NewServer(httptransport.ServerDeps{
		Planner:           planner.NewService(planner.Deps{}),
		PlanRatePerMinute: 1,
	}).Routes()

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/plans", parisBody, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/plans", parisBody, "").Code)
}

func TestCreatePlan_NonFiniteUpstreamCost(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"time": "09:00", "name": "Louvre", "cost": "NaN"}]`))
	}))
	defer upstream.Close()
	r := newRouter(t, planner.NewWebhookSource(upstream.URL, upstream.Client()))

	w := do(r, http.MethodPost, "/api/plans", parisBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Outcome   string `json:"outcome"`
		Itinerary struct {
			TotalCost float64 `json:"total_cost"`
		} `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "generated", res.Outcome)
	assert.Equal(t, 0.0, res.Itinerary.TotalCost)
}

func TestCreatePlan_OverlongTrip(t *testing.T) {
	body := map[string]any{}
	for k, v := range parisBody {
		body[k] = v
	}
	body["start_date"], body["end_date"] = "0001-01-01", "9999-12-31"

	w := do(newRouter(t, nil), http.MethodPost, "/api/plans", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrips_StorageUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	plans := planner.NewService(planner.Deps{})
	r := httptransport.NewServer(httptransport.ServerDeps{
		Planner:  plans,
		Trips:    trip.NewService(nil, plans),
		Location: location.NewService(nil, nil, 0, nil),
		Verifier: stubVerifier{},
	}).Routes()

	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/trips", nil, "alice").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/plans", parisBody, "").Code)
}
