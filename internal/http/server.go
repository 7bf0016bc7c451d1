// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"wanderplan/internal/http/handlers"
	"wanderplan/internal/http/middleware"
	"wanderplan/internal/infra"
)

type ServerDeps struct {
	Planner  handlers.Planner
	Trips    handlers.TripService
	Location handlers.LocationService
	Verifier infra.TokenVerifier
	Logger   *zap.Logger

	AllowedOrigins    []string
	PlanRatePerMinute int
}

type Server struct {
	plans    *handlers.PlanHandler
	trips    *handlers.TripHandler
	location *handlers.LocationHandler
	verifier infra.TokenVerifier
	log      *zap.Logger
	limiter  *middleware.RateLimiter
	origins  []string
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	verifier := deps.Verifier
	if verifier == nil {
		verifier = infra.DisabledVerifier{}
	}
	return &Server{
		plans:    handlers.NewPlanHandler(deps.Planner),
		trips:    handlers.NewTripHandler(deps.Trips),
		location: handlers.NewLocationHandler(deps.Location),
		verifier: verifier,
		log:      log,
		limiter:  middleware.NewRateLimiter(deps.PlanRatePerMinute),
		origins:  deps.AllowedOrigins,
	}
}

// Engine returns the gin router without the CORS wrapper.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(s.log), middleware.Logging(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.POST("/plans", s.limiter.Limit(), s.plans.Create)
	api.GET("/plans/:id", s.plans.Get)

	trips := api.Group("/trips", middleware.Auth(s.verifier))
	trips.POST("", s.trips.Create)
	trips.GET("", s.trips.List)
	trips.GET("/:id", s.trips.Get)
	trips.PATCH("/:id", s.trips.Rename)
	trips.DELETE("/:id", s.trips.Delete)

	locations := api.Group("/locations")
	locations.GET("/geocode", s.location.Geocode)
	locations.GET("/distances", s.location.Distances)
	locations.GET("/route", s.location.Route)

	return r
}

func (s *Server) Routes() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(s.Engine())
}
