// Copyright (c) 2026 Filmorate. All rights reserved.

// Command api is the entry point for the Filmorate HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Select the storage backend (PostgreSQL pool + migrations, or in-memory).
//  4. Connect to Redis when a ranking cache is configured.
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
	"time"

	"github.com/filmorate/filmorate/internal/api"
	"github.com/filmorate/filmorate/internal/film"
	"github.com/filmorate/filmorate/internal/platform/config"
	"github.com/filmorate/filmorate/internal/platform/constants"
	"github.com/filmorate/filmorate/internal/platform/migration"
	pgstore "github.com/filmorate/filmorate/internal/platform/postgres"
	redisstore "github.com/filmorate/filmorate/internal/platform/redis"
	"github.com/filmorate/filmorate/internal/reference"
	"github.com/filmorate/filmorate/internal/user"
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

	log.Info("service_initializing")

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
		slog.String("storage_backend", cfg.StorageBackend),
		slog.String("port", cfg.ServerPort),
	)

	// Application-lifetime context: owns background goroutines such as the
	// rate limiter cleanup.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Storage Backend ────────────────────────────────────────────────
	var (
		userRepo user.Repository
		filmRepo film.Repository
		refRepo  reference.Repository
		health   api.HealthDependencies
	)

	if cfg.UsePostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		userRepo = user.NewPostgresRepository(pool)
		filmRepo = film.NewPostgresRepository(pool)
		refRepo = reference.NewPostgresRepository(pool)

		health.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	} else {
		log.Info("memory_backend_selected")

		userRepo = user.NewMemoryRepository()
		filmRepo = film.NewMemoryRepository()
		refRepo = reference.NewMemoryRepository()
	}

	// ── 4. Ranking Cache (optional) ───────────────────────────────────────
	var rankingCache *film.RankingCache

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		rankingCache = film.NewRankingCache(rdb, log)
		health.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	referenceService := reference.NewService(refRepo)
	userService := user.NewService(userRepo)
	filmService := film.NewService(filmRepo, userService, referenceService, rankingCache)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		User:      user.NewHandler(userService),
		Film:      film.NewHandler(filmService),
		Reference: reference.NewHandler(referenceService),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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
