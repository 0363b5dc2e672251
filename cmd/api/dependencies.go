package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/velotrack/sku-resolver/internal/domain/ingest/parser"
	"github.com/velotrack/sku-resolver/internal/domain/process"
	"github.com/velotrack/sku-resolver/internal/domain/report"
	"github.com/velotrack/sku-resolver/internal/domain/resolution"
	"github.com/velotrack/sku-resolver/internal/handler"
	"github.com/velotrack/sku-resolver/pkg/config"
	"github.com/velotrack/sku-resolver/pkg/cron"
	"github.com/velotrack/sku-resolver/pkg/metrics"
	"github.com/velotrack/sku-resolver/pkg/storage"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Metrics     *metrics.Metrics
	FileStorage storage.Storage
	Catalog     *resolution.Catalog
	Cache       *resolution.Cache
	Resolver    *resolution.Resolver
	Search      *resolution.CatalogSearch
	Processor   *process.Service
	Handler     *handler.Handler
	Scheduler   *cron.Scheduler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Observability.MetricsEnabled {
		deps.Metrics = metrics.New(prometheus.DefaultRegisterer)
	}

	fileStorage, err := storage.New(&storage.Config{
		Type:       cfg.Storage.Type,
		LocalPath:  cfg.Storage.LocalPath,
		S3Bucket:   cfg.Storage.S3Bucket,
		S3Region:   cfg.Storage.S3Region,
		S3Endpoint: cfg.Storage.S3Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	catalog, err := loadCatalog(cfg.Catalog.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	deps.Catalog = catalog
	logger.Info("product catalog loaded", slog.Int("entries", catalog.Len()))

	deps.Cache = resolution.NewCache(cfg.Cache.TTL)

	if cfg.Remote.Enabled {
		client := &http.Client{Timeout: cfg.Remote.Timeout}
		remote := resolution.NewRemoteResolver(client,
			resolution.NewPatternClassifier(catalog), logger,
			cfg.Remote.BaseURL, cfg.Remote.RequestWait).
			WithMetrics(deps.Metrics)
		deps.Resolver = resolution.NewResolver(catalog, deps.Cache, remote, logger)
	} else {
		logger.Info("remote lookups disabled, resolution is catalog and heuristics only")
		deps.Resolver = resolution.NewResolver(catalog, deps.Cache, nil, logger)
	}

	search, err := resolution.NewCatalogSearch(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog search index: %w", err)
	}
	deps.Search = search

	deps.Processor = process.NewService(parser.NewParser(logger), deps.Resolver, logger).
		WithMetrics(deps.Metrics)

	deps.Handler = handler.New(deps.Processor, report.NewWriter(logger), fileStorage,
		deps.Resolver, search, logger).
		WithLimits(cfg.Server.MaxUploadBytes, cfg.Server.ProcessTimeout)

	deps.Scheduler = cron.NewScheduler(deps.Cache, fileStorage, deps.Metrics, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// loadCatalog returns the built-in catalog, extended with extra CSV entries
// when a path is configured.
func loadCatalog(csvPath string) (*resolution.Catalog, error) {
	if csvPath == "" {
		return resolution.DefaultCatalog(), nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog csv: %w", err)
	}
	defer f.Close()

	return resolution.ExtendedCatalog(f)
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	if d.Search != nil {
		if err := d.Search.Close(); err != nil {
			d.Logger.Warn("failed to close search index", slog.Any("error", err))
		}
	}
	d.Logger.Info("cleanup completed")
}
