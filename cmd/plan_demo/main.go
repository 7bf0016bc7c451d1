// README: Plans one trip from flags with the configured source and prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"wanderplan/internal/ai"
	"wanderplan/internal/config"
	"wanderplan/internal/infra"
	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/modules/planner"
)

func main() {
	from := flag.String("from", "NYC", "departure city")
	to := flag.String("to", "Paris", "destination city")
	start := flag.String("start", time.Now().AddDate(0, 1, 0).Format(itinerary.DateLayout), "start date (YYYY-MM-DD)")
	days := flag.Int("days", 3, "trip length in days")
	travelers := flag.Int("travelers", 2, "number of travelers")
	comfort := flag.Int("comfort", 3, "comfort level 1-5")
	group := flag.String("group", "couple", "group type")
	prefs := flag.String("prefs", "", "comma separated interests")
	offline := flag.Bool("offline", false, "skip the configured source and build a placeholder")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := infra.NewLogger(cfg.Log.Level, "text")
	defer func() { _ = logger.Sync() }()

	startDate, err := time.Parse(itinerary.DateLayout, *start)
	if err != nil {
		log.Fatalf("invalid -start: %v", err)
	}
	form := itinerary.TripFormData{
		DepartureCity:   *from,
		DestinationCity: *to,
		StartDate:       *start,
		EndDate:         startDate.AddDate(0, 0, max(*days, 1)-1).Format(itinerary.DateLayout),
		Travelers:       *travelers,
		Preferences:     splitPrefs(*prefs),
		GroupType:       *group,
		ComfortLevel:    *comfort,
	}

	ctx := context.Background()
	var source planner.Source = planner.NoSource{}
	switch {
	case *offline:
	case cfg.Planner.WebhookURL != "":
		source = planner.NewWebhookSource(cfg.Planner.WebhookURL, nil)
	case cfg.AI.GeminiKey != "":
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to initialize AI provider: %v", err)
		}
		defer provider.Close()
		source = planner.NewGeminiSource(provider)
	}

	svc := planner.NewService(planner.Deps{Source: source, Logger: logger, Timeout: cfg.Planner.Timeout})
	res, err := svc.Plan(ctx, form)
	if err != nil {
		log.Fatalf("Error planning trip: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal(err)
	}
}

func splitPrefs(v string) []string {
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
