package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/ecopatrol-dashboard/internal/export"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Category share modes.
const (
	SharesStatic   = "static"
	SharesComputed = "computed"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DatasetFile points at a YAML dataset; empty serves the built-in seed.
	DatasetFile    string
	CategoryShares string
	ExportDelay    time.Duration

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int

	// Export archive (S3-compatible object storage).
	ArchiveEnabled bool
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3UseSSL       bool
	ArchiveBucket  string

	// PDF render requests for the external backend. Publishing is enabled
	// when PDFRequestTopic is set.
	KafkaBrokers      []string
	PDFRequestTopic   string
	KafkaWriteTimeout time.Duration
}

// ComputedShares reports whether category shares come from the live collection.
func (c *Config) ComputedShares() bool {
	return c.CategoryShares == SharesComputed
}

// PDFRequestsEnabled reports whether PDF requests are published to Kafka.
func (c *Config) PDFRequestsEnabled() bool {
	return c.PDFRequestTopic != ""
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	exportDelay, err := parseDuration("EXPORT_DELAY", export.DefaultDelay.String(), true)
	if err != nil {
		return nil, err
	}
	mapboxTimeout, err := parseDuration("MAPBOX_TIMEOUT", "5s", false)
	if err != nil {
		return nil, err
	}
	kafkaWriteTimeout, err := parseDuration("KAFKA_WRITE_TIMEOUT", "5s", false)
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DatasetFile:    os.Getenv("DATASET_FILE"),
		CategoryShares: sharedcfg.EnvOrDefault("CATEGORY_SHARES", SharesStatic),
		ExportDelay:    exportDelay,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parsePositiveInt("MAPBOX_CACHE_SIZE", 1000),

		ArchiveEnabled: os.Getenv("ARCHIVE_ENABLED") == "true",
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:       os.Getenv("S3_USE_SSL") == "true",
		ArchiveBucket:  sharedcfg.EnvOrDefault("ARCHIVE_BUCKET", "ecopatrol-exports"),

		KafkaBrokers:      sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		PDFRequestTopic:   os.Getenv("PDF_REQUEST_TOPIC"),
		KafkaWriteTimeout: kafkaWriteTimeout,
	}

	if cfg.CategoryShares != SharesStatic && cfg.CategoryShares != SharesComputed {
		return nil, fmt.Errorf("invalid CATEGORY_SHARES %q (expected static or computed)", cfg.CategoryShares)
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	if cfg.ArchiveEnabled && cfg.S3Endpoint == "" {
		return nil, errors.New("ARCHIVE_ENABLED is true but S3_ENDPOINT is not set")
	}
	if cfg.PDFRequestsEnabled() && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when PDF_REQUEST_TOPIC is set")
	}

	return cfg, nil
}

// parseDuration reads a duration variable. Zero is accepted only when allowZero is set.
func parseDuration(key, def string, allowZero bool) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}
