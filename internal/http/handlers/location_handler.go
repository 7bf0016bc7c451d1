// README: Location handlers for geocoding and travel estimates.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/modules/location"
)

// LocationService is satisfied by *location.Service.
type LocationService interface {
	Geocode(ctx context.Context, query string) (*location.Place, error)
	RankByDistance(ctx context.Context, origin string, places []string) ([]location.Distance, error)
	Route(ctx context.Context, from, to, mode string) (*location.Route, error)
}

type LocationHandler struct {
	location LocationService
}

func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{location: svc}
}

// Geocode handles GET /api/locations/geocode?q=.
func (h *LocationHandler) Geocode(c *gin.Context) {
	p, err := h.location.Geocode(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Distances handles GET /api/locations/distances?from=&to=&to=.
func (h *LocationHandler) Distances(c *gin.Context) {
	ds, err := h.location.RankByDistance(c.Request.Context(), c.Query("from"), c.QueryArray("to"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"from": c.Query("from"), "distances": ds})
}

// Route handles GET /api/locations/route?from=&to=&mode=.
func (h *LocationHandler) Route(c *gin.Context) {
	r, err := h.location.Route(c.Request.Context(), c.Query("from"), c.Query("to"), c.Query("mode"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}
