// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/estimo/docs" // Import generated swagger docs
	"github.com/tomtom215/estimo/internal/api"
	"github.com/tomtom215/estimo/internal/config"
	"github.com/tomtom215/estimo/internal/logging"
	"github.com/tomtom215/estimo/internal/recommend"
	"github.com/tomtom215/estimo/internal/snapshot"
	"github.com/tomtom215/estimo/internal/supervisor"
	"github.com/tomtom215/estimo/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.ToLogging())

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Data.CatalogPath).
		Str("artifact", cfg.Data.ArtifactPath).
		Str("image_db", cfg.Data.ImageDBPath).
		Msg("Starting Estimo")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := snapshot.NewStore()
	builder := snapshot.NewBuilder(cfg.Data.Sources(), cfg.Similarity, logging.WithComponent("snapshot"))

	initial, err := builder.Build(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model and catalog")
	}
	published := store.Swap(initial)
	summary := published.Summary()
	logging.Info().
		Uint64("generation", published.Generation()).
		Str("model_version", published.Model().Version()).
		Int("listings", summary.Loaded).
		Int("skipped", summary.Skipped).
		Msg("Snapshot published")

	engine, err := recommend.NewEngine(&cfg.Recommend, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	defer engine.Close()

	reloader := snapshot.NewReloader(builder, store, cfg.Reload.ToReloader(), logging.WithComponent("reload"),
		func(*snapshot.Snapshot) { engine.Invalidate() },
	)

	handler, err := api.NewHandler(api.Deps{
		Config:      cfg,
		Store:       store,
		Recommender: engine,
		Reloader:    reloader,
		Version:     version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler).SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	if cfg.Reload.Enabled {
		tree.AddDataService(services.NewReloadService(
			reloader,
			[]string{cfg.Data.CatalogPath, cfg.Data.ArtifactPath, cfg.Data.ImageDBPath},
			cfg.Reload.MinInterval,
			logging.WithComponent("reload-watcher"),
		))
		logging.Info().Dur("min_interval", cfg.Reload.MinInterval).Msg("Data file watcher enabled")
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for the supervisor to finish, either from a signal or an error.
	// The channel receives exactly one value.
	exitCode := 0
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		exitCode = 1
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Server stopped")
	if exitCode != 0 {
		engine.Close()
		os.Exit(exitCode)
	}
}
