// README: Plan handlers; run the planner and fetch cached drafts.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/modules/planner"
)

// Planner is satisfied by *planner.Service.
type Planner interface {
	Plan(ctx context.Context, form itinerary.TripFormData) (*planner.Result, error)
	Draft(ctx context.Context, id uuid.UUID) (*planner.Result, error)
}

type PlanHandler struct {
	planner Planner
}

func NewPlanHandler(p Planner) *PlanHandler {
	return &PlanHandler{planner: p}
}

func (h *PlanHandler) Create(c *gin.Context) {
	var form itinerary.TripFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.planner.Plan(c.Request.Context(), form)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid plan id")
		return
	}
	res, err := h.planner.Draft(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
