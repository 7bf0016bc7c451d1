// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/modules/location"
	"wanderplan/internal/modules/planner"
	"wanderplan/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module errors onto status codes. Unknown errors are
// recorded on the context for the logging middleware and reported generically.
func writeServiceError(c *gin.Context, err error) {
	var upstream *planner.UpstreamError
	var malformed *itinerary.MalformedResponseError
	switch {
	case errors.Is(err, itinerary.ErrInvalidForm),
		errors.Is(err, trip.ErrBadRequest),
		errors.Is(err, location.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrDraftNotFound),
		errors.Is(err, trip.ErrNotFound),
		errors.Is(err, location.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &upstream), errors.As(err, &malformed), errors.Is(err, planner.ErrNetwork):
		_ = c.Error(err)
		writeError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, location.ErrUnavailable), errors.Is(err, trip.ErrUnavailable):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.Error(err)
		writeError(c, http.StatusGatewayTimeout, "request timed out")
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
