// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/dogmatch/internal/api"
	"github.com/tomtom215/dogmatch/internal/config"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/metrics"
	"github.com/tomtom215/dogmatch/internal/predictor"
	"github.com/tomtom215/dogmatch/internal/supervisor"
	"github.com/tomtom215/dogmatch/internal/supervisor/services"
)

// Version is the build version, set with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	start := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "dogmatch",
	})

	logging.Info().
		Str("version", Version).
		Str("api_version", cfg.API.Version).
		Str("environment", cfg.Server.Environment).
		Str("artifacts_dir", cfg.Artifacts.Dir).
		Bool("preload", cfg.Artifacts.Preload).
		Msg("Starting DogMatch")

	metrics.SetAppInfo(Version)
	logSecurityWarnings(cfg)

	var opts []predictor.Option
	if capacity := cfg.CacheCapacity(); capacity > 0 {
		opts = append(opts, predictor.WithCache(capacity, cfg.Cache.TTL))
		logging.Info().Int("capacity", capacity).Dur("ttl", cfg.Cache.TTL).Msg("Result cache enabled")
	}
	handle := predictor.NewHandle(cfg.Artifacts.Dir, opts...)

	router := api.NewRouter(api.NewHandler(handle, cfg), cfg)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Artifacts.Preload {
		tree.AddModelService(services.NewModelWarmupService(handle))
	} else {
		logging.Info().Msg("Artifact preload disabled, model loads on first request")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddAPIService(services.NewUptimeService(start, 15*time.Second))
	if cfg.CacheCapacity() > 0 {
		tree.AddAPIService(services.NewCacheSweepService(handle, cfg.Cache.TTL))
	}
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Dur("uptime", time.Since(start)).Msg("DogMatch stopped")
}

// logSecurityWarnings reports settings that are unsafe outside development.
func logSecurityWarnings(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (RATE_LIMIT_DISABLED=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production; set CORS_ORIGINS to specific origins")
	}
}
