// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Manhwaverse HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the key-value store for the configured driver.
//  4. Load the catalog, trending selection, and bookmarks.
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

	"github.com/taibuivan/manhwaverse/internal/api"
	"github.com/taibuivan/manhwaverse/internal/catalog"
	"github.com/taibuivan/manhwaverse/internal/library"
	"github.com/taibuivan/manhwaverse/internal/platform/config"
	"github.com/taibuivan/manhwaverse/internal/platform/constants"
	"github.com/taibuivan/manhwaverse/internal/platform/kvstore"
	"github.com/taibuivan/manhwaverse/internal/platform/migration"
	pgstore "github.com/taibuivan/manhwaverse/internal/platform/postgres"
	redisstore "github.com/taibuivan/manhwaverse/internal/platform/redis"
	"github.com/taibuivan/manhwaverse/internal/platform/sec"
	"github.com/taibuivan/manhwaverse/internal/recommend"
	"github.com/taibuivan/manhwaverse/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "manhwaverse"))
	slog.SetDefault(log)

	log.Info("[Manhwaverse] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "manhwaverse"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Key-Value Store ────────────────────────────────────────────────
	// One Store interface, four interchangeable backends.
	var store kvstore.Store
	checkStore := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		pool, perr := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, perr, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		store = kvstore.NewPostgres(pool)
		checkStore = func() error { return pgstore.Ping(context.Background(), pool) }

	case config.DriverRedis:
		rdb, rerr := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, rerr, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		store = kvstore.NewRedis(rdb, "manhwaverse:")
		checkStore = func() error { return redisstore.Ping(context.Background(), rdb) }

	case config.DriverBadger:
		badgerStore, berr := kvstore.OpenBadger(cfg.DataDir, log)
		must(log, berr, "open badger store")
		defer func() {
			log.Info("closing badger store")
			if cerr := badgerStore.Close(); cerr != nil {
				log.Error("badger close error", slog.Any("error", cerr))
			}
		}()

		store = badgerStore

	case config.DriverMemory:
		log.Warn("memory_store_selected_nothing_will_persist")
		store = kvstore.NewMemory()
	}

	// ── 4. Persisted Aggregates ───────────────────────────────────────────
	// Each owns one disjoint store key; loading never fails (seed fallback).
	repository := catalog.NewRepository(store, log)
	repository.Load(startupCtx)

	trendingSet := library.NewTrendingSet(store, log)
	trendingSet.Load(startupCtx, catalog.DefaultTrendingIDs(repository.Titles()))

	bookmarkSet := library.NewBookmarkSet(store, log)
	bookmarkSet.Load(startupCtx)

	// ── 5. Auth Service ───────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	if !cfg.AdminEnabled() {
		log.Warn("admin_account_not_configured_catalog_is_read_only")
	}

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: checkStore,
		CheckCatalog: func() error {
			if repository.Degraded() {
				return errors.New("catalog persistence degraded: last store write failed")
			}
			return nil
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(repository, trendingSet, log)
	catalogHandler := catalog.NewHandler(catalogService)

	libraryHandler := library.NewHandler(trendingSet, bookmarkSet, catalogService)

	adminAccount := auth.AdminAccount{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}
	authService := auth.NewService(adminAccount, tokenService, constants.AdminTokenTTL, log)
	authHandler := auth.NewHandler(authService)

	var generator recommend.Generator
	if cfg.OpenAIAPIKey != "" {
		generator = recommend.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Info("recommendation_generator_configured", slog.String("model", cfg.OpenAIModel))
	}
	recommendService := recommend.NewService(generator, log)
	recommendHandler := recommend.NewHandler(recommendService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Catalog:   catalogHandler,
		Library:   libraryHandler,
		Recommend: recommendHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

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
