// README: Saved-trip handlers; every route runs behind the auth middleware.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/internal/http/middleware"
	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/modules/trip"
)

// TripService is satisfied by *trip.Service.
type TripService interface {
	Save(ctx context.Context, cmd trip.SaveCommand) (*trip.Trip, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*trip.Trip, error)
	List(ctx context.Context, userID string) ([]trip.Summary, error)
	Rename(ctx context.Context, userID string, id uuid.UUID, name string) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type TripHandler struct {
	trips TripService
}

func NewTripHandler(svc TripService) *TripHandler {
	return &TripHandler{trips: svc}
}

type saveTripReq struct {
	Name      string                   `json:"name"`
	PlanID    *uuid.UUID               `json:"plan_id"`
	Form      *itinerary.TripFormData  `json:"form"`
	Itinerary *itinerary.TripItinerary `json:"itinerary"`
}

type renameTripReq struct {
	Name string `json:"name"`
}

func (h *TripHandler) Create(c *gin.Context) {
	var req saveTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.Save(c.Request.Context(), trip.SaveCommand{
		UserID:    middleware.CallerUID(c),
		Name:      req.Name,
		PlanID:    req.PlanID,
		Form:      req.Form,
		Itinerary: req.Itinerary,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, t)
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}

func (h *TripHandler) Get(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	t, err := h.trips.Get(c.Request.Context(), middleware.CallerUID(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

func (h *TripHandler) Rename(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	var req renameTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.trips.Rename(c.Request.Context(), middleware.CallerUID(c), id, req.Name); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}
	if err := h.trips.Delete(c.Request.Context(), middleware.CallerUID(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tripID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return uuid.Nil, false
	}
	return id, true
}
