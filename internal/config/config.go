package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Land/sea classification providers.
const (
	LandSeaMask = "mask" // local point-in-polygon against a GeoJSON landmass file
	LandSeaHTTP = "http" // remote boundary lookup service
	LandSeaOff  = "off"  // no classification, every row flagged Unknown
)

// Dashboard query cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheOff    = "off"
)

// Store drivers.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config holds all service settings, populated from environment variables.
// Both binaries share it; each reads the fields it needs.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Batch pipeline settings.
	InputPath    string
	CSVPath      string
	FallbackYear int

	// Store settings.
	StoreDriver string
	SQLitePath  string
	PostgresURL string

	// Land/sea classification settings.
	LandSeaProvider  string
	LandMaskPath     string
	LandSeaURL       string
	LandSeaTimeout   time.Duration
	LandSeaCacheSize int

	// Measurement feed settings (egress only, feature-flagged).
	KafkaFeedEnabled bool
	KafkaBrokers     []string
	KafkaFeedTopic   string

	// Dashboard query cache settings.
	CacheBackend    string
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // best effort; env vars win over .env entries

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	landSeaTimeout, err := parseDuration("LANDSEA_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDuration("CACHE_TTL", "5m")
	if err != nil {
		return nil, err
	}

	fallbackYear, err := parseInt("ETL_FALLBACK_YEAR", 2024)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseInt("LANDSEA_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	cacheMaxEntries, err := parseInt("CACHE_MAX_ENTRIES", 512)
	if err != nil {
		return nil, err
	}

	redisDB, err := parseInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		InputPath:    envOrDefault("ETL_INPUT", "data/pfas_records.jsonl"),
		CSVPath:      envOrDefault("ETL_CSV_OUT", "out/pfas_measurements.csv"),
		FallbackYear: fallbackYear,

		StoreDriver: envOrDefault("STORE_DRIVER", StoreSQLite),
		SQLitePath:  envOrDefault("SQLITE_PATH", "out/pfas.sqlite"),
		PostgresURL: os.Getenv("DATABASE_URL"),

		LandSeaProvider:  envOrDefault("LANDSEA_PROVIDER", LandSeaMask),
		LandMaskPath:     envOrDefault("LANDMASK_PATH", "data/landmask.geojson"),
		LandSeaURL:       os.Getenv("LANDSEA_URL"),
		LandSeaTimeout:   landSeaTimeout,
		LandSeaCacheSize: cacheSize,

		KafkaFeedEnabled: os.Getenv("KAFKA_FEED_ENABLED") == "true",
		KafkaBrokers:     splitCSV(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaFeedTopic:   envOrDefault("KAFKA_FEED_TOPIC", "pfas-measurements"),

		CacheBackend:    envOrDefault("CACHE_BACKEND", CacheMemory),
		CacheTTL:        cacheTTL,
		CacheMaxEntries: cacheMaxEntries,
		RedisAddr:       envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
	}

	if cfg.InputPath == "" {
		return nil, errors.New("ETL_INPUT is required")
	}
	if cfg.FallbackYear < 1000 || cfg.FallbackYear > 9999 {
		return nil, errors.New("ETL_FALLBACK_YEAR must be a 4-digit year")
	}
	switch cfg.StoreDriver {
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLITE_PATH is required")
		}
	case StorePostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	default:
		return nil, errors.New("STORE_DRIVER must be sqlite or postgres")
	}
	switch cfg.LandSeaProvider {
	case LandSeaMask:
		if cfg.LandMaskPath == "" {
			return nil, errors.New("LANDMASK_PATH is required when LANDSEA_PROVIDER is mask")
		}
	case LandSeaHTTP:
		if cfg.LandSeaURL == "" {
			return nil, errors.New("LANDSEA_URL is required when LANDSEA_PROVIDER is http")
		}
	case LandSeaOff:
	default:
		return nil, errors.New("LANDSEA_PROVIDER must be mask, http, or off")
	}
	switch cfg.CacheBackend {
	case CacheMemory, CacheRedis, CacheOff:
	default:
		return nil, errors.New("CACHE_BACKEND must be memory, redis, or off")
	}
	if cfg.KafkaFeedEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_FEED_ENABLED is true")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
