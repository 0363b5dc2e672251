// Package cron runs the background maintenance jobs: resolution cache
// sweeping and archived upload cleanup.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/velotrack/sku-resolver/internal/domain/resolution"
	"github.com/velotrack/sku-resolver/pkg/metrics"
	"github.com/velotrack/sku-resolver/pkg/storage"
)

// Archived uploads are only kept for troubleshooting.
const uploadRetention = 30 * 24 * time.Hour

// Scheduler manages background jobs using robfig/cron.
type Scheduler struct {
	cron    *cron.Cron
	cache   *resolution.Cache
	store   storage.Storage
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewScheduler(cache *resolution.Cache, store storage.Storage, m *metrics.Metrics, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:    c,
		cache:   cache,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// Start registers and begins the scheduled jobs: cache sweep hourly, upload
// cleanup daily at 3:00 AM.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", s.sweepCache); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * *", s.cleanUploads); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) sweepCache() {
	removed := s.cache.Sweep()
	s.metrics.CacheSwept(removed)
	s.logger.Info("resolution cache swept",
		slog.Int("removed", removed),
		slog.Int("remaining", s.cache.Len()),
	)
}

func (s *Scheduler) cleanUploads() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := s.store.SweepUploads(ctx, uploadRetention)
	if err != nil {
		s.logger.Error("upload cleanup failed", slog.Any("error", err))
		return
	}
	s.logger.Info("archived uploads cleaned", slog.Int("removed", removed))
}
