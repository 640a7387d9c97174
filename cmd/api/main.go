// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

// Command api is the entry point for the Meliponário HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) — optional; skipped in offline mode.
//  4. Connect to Redis (durable fallback journal).
//  5. Run database migrations (idempotent, backend mode only).
//  6. Wire the query planner, mutation coordinator and geocoding chain.
//  7. Start HTTP server with graceful shutdown.
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
	"time"

	"github.com/rmonteiro/meliponario/internal/api"
	"github.com/rmonteiro/meliponario/internal/catalog"
	"github.com/rmonteiro/meliponario/internal/geocode"
	"github.com/rmonteiro/meliponario/internal/platform/config"
	"github.com/rmonteiro/meliponario/internal/platform/constants"
	"github.com/rmonteiro/meliponario/internal/platform/migration"
	pgstore "github.com/rmonteiro/meliponario/internal/platform/postgres"
	redisstore "github.com/rmonteiro/meliponario/internal/platform/redis"
	"github.com/rmonteiro/meliponario/internal/social"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "meliponario"))
	slog.SetDefault(log)

	log.Info("[Meliponário] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "meliponario"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("backend_configured", cfg.BackendConfigured()),
	)

	// Application context, cancelled on shutdown. Owns long-lived
	// background work such as the rate limiter cleanup routine.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL (optional) ──────────────────────────────────────────
	// An empty DATABASE_URL is not an error: the service starts in offline
	// mode, serving reads from the embedded dataset and journaling writes.
	var pool *pgxpool.Pool
	if cfg.BackendConfigured() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		// ── 4. Migrations ─────────────────────────────────────────────────
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	} else {
		log.Warn("no backend configured, starting in offline mode")
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	probe := func() bool { return pool != nil }

	var remoteSpecies catalog.SpeciesRepository
	var remoteBreeders catalog.BreederRepository
	var remoteSocial social.Repository
	if pool != nil {
		remoteSpecies = catalog.NewSpeciesRepository(pool)
		remoteBreeders = catalog.NewBreederRepository(pool)
		remoteSocial = social.NewPostgresRepository(pool)
	}

	planner := catalog.NewPlanner(catalog.PlannerConfig{
		RemoteSpecies:  remoteSpecies,
		RemoteBreeders: remoteBreeders,
		Probe:          probe,
		Logger:         log,
	})

	resolver := catalog.NewResolver(remoteSpecies, log)
	if pool != nil {
		// Best effort: the resolver rebuilds lazily on first use if the
		// backend is not reachable yet.
		if loadErr := resolver.Load(startupCtx); loadErr != nil {
			log.Warn("species identifier index load failed", slog.Any("error", loadErr))
		}
	}

	coordinator := social.NewCoordinator(social.CoordinatorConfig{
		Remote:   remoteSocial,
		Fallback: social.NewRedisRepository(rdb),
		Probe:    probe,
		Logger:   log,
	})

	geocodeResolver := geocode.NewResolver(
		geocode.NewPostalClient(cfg.PostalLookupBaseURL),
		geocode.NewGeocoderClient(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent),
		log,
	)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckFallback: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalog.NewHandler(planner, resolver, coordinator),
		Social:    social.NewHandler(coordinator),
		Geocode:   geocode.NewHandler(geocodeResolver),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	// Let background remote writes settle so optimistic mutations are not
	// silently dropped mid-flight.
	coordinator.Wait()

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
