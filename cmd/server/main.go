package main

import (
	"github.com/sirupsen/logrus"

	"github.com/cinerec/backend/internal/api"
	"github.com/cinerec/backend/internal/config"
	"github.com/cinerec/backend/internal/engine"
	"github.com/cinerec/backend/internal/poster"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "recommender-api")

	entry.Info("Starting Movie Recommendation API Service")

	// 1. Config
	cfg := config.Load()

	// 2. Poster Lookup
	posters := poster.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL, cfg.TMDB.RequestTimeout)
	if !posters.Enabled() {
		entry.Warn("TMDB_API_KEY not set, poster lookups disabled")
	}

	// 3. Engine (loads corpus, builds both models)
	eng := engine.NewEngine(cfg, entry, posters)
	if err := eng.Reload(); err != nil {
		entry.Fatalf("Failed to build recommendation models: %v", err)
	}

	// 4. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("Movie Recommendation API ready on %s", cfg.Server.Port)
	if err := server.Start(cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}
