package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/ecopatrol-dashboard/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/ecopatrol-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/adapter/mapbox"
	s3adapter "github.com/couchcryptid/ecopatrol-dashboard/internal/adapter/s3"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/config"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/dashboard"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/dataset"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/domain"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/export"
	"github.com/couchcryptid/ecopatrol-dashboard/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()

	var source dataset.Source = dataset.Seed()
	if cfg.DatasetFile != "" {
		source = dataset.NewFile(cfg.DatasetFile)
		logger.Info("dataset file configured", "path", cfg.DatasetFile)
	}

	// Map chip place names (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		cached, err := mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		if err != nil {
			logger.Error("failed to create geocode cache", "error", err)
			os.Exit(1)
		}
		geocoder = cached
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	opts := export.Options{Delay: cfg.ExportDelay}
	if cfg.ArchiveEnabled {
		archiver, err := s3adapter.New(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3UseSSL, cfg.ArchiveBucket, logger)
		if err != nil {
			logger.Error("failed to create export archive", "error", err)
			os.Exit(1)
		}
		opts.Archiver = archiver
		logger.Info("export archive enabled", "endpoint", cfg.S3Endpoint, "bucket", cfg.ArchiveBucket)
	}

	var writer *kafkaadapter.Writer
	if cfg.PDFRequestsEnabled() {
		writer = kafkaadapter.NewWriter(cfg, logger)
		opts.PDFRequester = writer
		logger.Info("pdf requests enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.PDFRequestTopic)
	}

	exporter := export.NewExporter(source, opts, logger, metrics)
	builder := dashboard.NewBuilder(source, exporter, geocoder, cfg.ComputedShares(), logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Dashboard{
		Pages:          builder,
		State:          dashboard.NewState(),
		Exports:        exporter,
		Source:         source,
		ComputedShares: cfg.ComputedShares(),
	}, dataset.Readiness{Source: source}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
