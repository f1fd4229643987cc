// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the countries HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env file).
//  3. Build the GraphQL client and country repository.
//  4. Create the catalogue state store and start the first fetch.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/countries/internal/api"
	"github.com/taibuivan/countries/internal/core/country"
	"github.com/taibuivan/countries/internal/platform/config"
	"github.com/taibuivan/countries/internal/platform/constants"
	"github.com/taibuivan/countries/internal/platform/graphql"
	"github.com/taibuivan/countries/internal/platform/metrics"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("graphql_endpoint", cfg.GraphQLEndpoint),
		slog.Duration("fetch_timeout", cfg.FetchTimeout),
	)

	// Root scope for the catalogue store and background middleware. It ends
	// on SIGINT/SIGTERM, which cancels any fetch and closes live watchers.
	scope, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// ── 3. Metrics ────────────────────────────────────────────────────────
	var registry *metrics.Registry
	if cfg.MetricsEnabled {
		registry = metrics.New()
	}

	// ── 4. Catalogue ──────────────────────────────────────────────────────
	client := graphql.NewClient(cfg.GraphQLEndpoint,
		graphql.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
		graphql.WithUserAgent(constants.AppName+"/"+constants.AppVersion),
	)
	repository := country.NewGraphQLRepository(client)

	storeOptions := []country.StoreOption{country.WithFetchTimeout(cfg.FetchTimeout)}
	if registry != nil {
		storeOptions = append(storeOptions, country.WithRecorder(registry))
	}
	store := country.NewStateStore(scope, repository, log, storeOptions...)
	store.Load()

	countryService := country.NewService(store, log)

	// ── 5. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: countryService.Ready,
	}, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Country:   country.NewHandler(countryService, cfg),
	}

	server := api.NewServer(scope, cfg, log, registry, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-scope.Done():
		log.Info("shutdown signal received")
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
		stop()
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors must be returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
