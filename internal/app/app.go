// Package app wires the application dependencies and exposes the runnable
// operational modes:
//
//   - API mode: JSON HTTP server for analyze, history, stats, and clear
//   - Cleanup mode: periodic sweep of expired cache and history entries
//
// Each mode can run independently or combined based on deployment needs.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SanketKumarKar/FeelBack/internal/classify"
	"github.com/SanketKumarKar/FeelBack/internal/core/ports"
	"github.com/SanketKumarKar/FeelBack/internal/engine"
	"github.com/SanketKumarKar/FeelBack/internal/httpapi"
	"github.com/SanketKumarKar/FeelBack/internal/platform/config"
	"github.com/SanketKumarKar/FeelBack/internal/platform/observability"
	"github.com/SanketKumarKar/FeelBack/internal/platform/worker"
	db "github.com/SanketKumarKar/FeelBack/internal/storage"
)

// App holds the application dependencies and provides methods to run
// different modes.
type App struct {
	cfg      *config.Config
	database *db.DB
	logger   *zerolog.Logger
}

// New creates a new App instance. database may be nil when no store is
// configured; the engine then degrades to stateless analysis.
func New(cfg *config.Config, database *db.DB, logger *zerolog.Logger) *App {
	return &App{
		cfg:      cfg,
		database: database,
		logger:   logger,
	}
}

// store returns the key-value store port, or nil when disabled. The nil
// interface must be built from a nil check: a typed nil *db.DB inside a
// non-nil interface would defeat the engine's store == nil guard.
func (a *App) store() ports.KeyValueStore {
	if a.database == nil {
		return nil
	}

	return a.database
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.store(), a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunAPI trains the classifier and serves the emotion API until the context
// is canceled.
func (a *App) RunAPI(ctx context.Context) error {
	classifier := classify.New()
	classifier.Initialize()

	eng := engine.New(a.cfg, classifier, a.store(), a.logger)
	handler := httpapi.NewHandler(a.cfg, eng, a.logger)

	return httpapi.NewServer(handler, a.cfg.HTTPPort).Run(ctx)
}

// RunCleanup periodically deletes expired cache and history rows. Requires a
// configured store.
func (a *App) RunCleanup(ctx context.Context) error {
	return worker.TickerLoop(ctx, worker.TickerConfig{
		Name:       "cleanup",
		Interval:   a.cfg.CleanupInterval,
		RunOnStart: true,
		Logger:     a.logger,
		OnTick: func(tickCtx context.Context) {
			swept, err := a.database.DeleteExpired(tickCtx)
			if err != nil {
				a.logger.Error().Err(err).Msg("expired entry sweep failed")

				return
			}

			if swept > 0 {
				observability.ExpiredEntriesSwept.Add(float64(swept))
				a.logger.Info().Int64("swept", swept).Msg("expired entries removed")
			}
		},
	})
}
