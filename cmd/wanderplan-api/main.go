// README: Entry point; loads config, wires services and serves the HTTP API until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wanderplan/internal/ai"
	"wanderplan/internal/config"
	httptransport "wanderplan/internal/http"
	"wanderplan/internal/infra"
	"wanderplan/internal/maps"
	"wanderplan/internal/modules/location"
	"wanderplan/internal/modules/planner"
	"wanderplan/internal/modules/trip"
)

const (
	shutdownTimeout = 15 * time.Second
	connectTimeout  = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	connectCtx, cancelConnect := context.WithTimeout(ctx, connectTimeout)
	defer cancelConnect()

	var tripRepo trip.Repository
	dbPool, err := infra.NewDB(connectCtx, cfg.DB.DSN)
	if err != nil {
		logger.Warn("postgres unavailable; saved trips are disabled", zap.Error(err))
	} else {
		defer dbPool.Close()
		tripRepo = trip.NewStore(dbPool)
	}

	var (
		drafts   planner.DraftStore
		geoCache location.Cache
	)
	redisClient, err := infra.NewRedis(connectCtx, cfg.Redis.Addr)
	if err != nil {
		logger.Warn("redis unavailable; plan drafts and geocode caching are disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		drafts = planner.NewStore(redisClient, cfg.Planner.DraftTTL)
		geoCache = location.NewStore(redisClient)
	}

	var verifier infra.TokenVerifier = infra.DisabledVerifier{}
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return err
		}
	} else {
		logger.Warn("WANDER_FIREBASE_PROJECT_ID not set; saved trips are disabled")
	}

	source, closeSource, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	planSvc := planner.NewService(planner.Deps{
		Source:  source,
		Drafts:  drafts,
		Logger:  logger.Named("planner"),
		Timeout: cfg.Planner.Timeout,
	})
	logger.Info("planner ready", zap.String("source", planSvc.SourceName()))

	tripSvc := trip.NewService(tripRepo, planSvc)

	var geocoder location.Geocoder
	if cfg.Maps.APIKey != "" {
		client, err := maps.NewClient(cfg.Maps.APIKey)
		if err != nil {
			return err
		}
		geocoder = client
	}
	locationSvc := location.NewService(geocoder, geoCache, cfg.Maps.GeocodeTTL, logger.Named("location"))

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner:           planSvc,
		Trips:             tripSvc,
		Location:          locationSvc,
		Verifier:          verifier,
		Logger:            logger.Named("http"),
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		PlanRatePerMinute: cfg.Planner.RatePerMinute,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		// Planning can take the full upstream timeout.
		WriteTimeout: cfg.Planner.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(shutdownCtx)
}

// newSource picks the itinerary upstream: webhook first, then Gemini, else none.
func newSource(ctx context.Context, cfg config.Config) (planner.Source, func(), error) {
	switch {
	case cfg.Planner.WebhookURL != "":
		return planner.NewWebhookSource(cfg.Planner.WebhookURL, nil), func() {}, nil
	case cfg.AI.GeminiKey != "":
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			return nil, nil, err
		}
		return planner.NewGeminiSource(provider), provider.Close, nil
	default:
		return planner.NoSource{}, func() {}, nil
	}
}
