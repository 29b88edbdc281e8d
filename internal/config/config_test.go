package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "data/pfas_records.jsonl", cfg.InputPath)
	assert.Equal(t, "out/pfas_measurements.csv", cfg.CSVPath)
	assert.Equal(t, 2024, cfg.FallbackYear)

	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "out/pfas.sqlite", cfg.SQLitePath)

	assert.Equal(t, LandSeaMask, cfg.LandSeaProvider)
	assert.Equal(t, "data/landmask.geojson", cfg.LandMaskPath)
	assert.Equal(t, 5*time.Second, cfg.LandSeaTimeout)
	assert.Equal(t, 1000, cfg.LandSeaCacheSize)

	assert.False(t, cfg.KafkaFeedEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "pfas-measurements", cfg.KafkaFeedTopic)

	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 512, cfg.CacheMaxEntries)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("ETL_INPUT", "fixtures/records.jsonl")
	t.Setenv("ETL_CSV_OUT", "fixtures/out.csv")
	t.Setenv("ETL_FALLBACK_YEAR", "2025")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/pfas")
	t.Setenv("LANDSEA_PROVIDER", "http")
	t.Setenv("LANDSEA_URL", "https://boundary.example.org")
	t.Setenv("LANDSEA_TIMEOUT", "2s")
	t.Setenv("LANDSEA_CACHE_SIZE", "250")
	t.Setenv("KAFKA_FEED_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_FEED_TOPIC", "custom-feed")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_MAX_ENTRIES", "64")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "fixtures/records.jsonl", cfg.InputPath)
	assert.Equal(t, 2025, cfg.FallbackYear)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/pfas", cfg.PostgresURL)
	assert.Equal(t, LandSeaHTTP, cfg.LandSeaProvider)
	assert.Equal(t, "https://boundary.example.org", cfg.LandSeaURL)
	assert.Equal(t, 2*time.Second, cfg.LandSeaTimeout)
	assert.Equal(t, 250, cfg.LandSeaCacheSize)
	assert.True(t, cfg.KafkaFeedEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-feed", cfg.KafkaFeedTopic)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 64, cfg.CacheMaxEntries)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_PostgresWithoutURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_HTTPProviderWithoutURL(t *testing.T) {
	t.Setenv("LANDSEA_PROVIDER", "http")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANDSEA_URL")
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("LANDSEA_PROVIDER", "satellite")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANDSEA_PROVIDER")
}

func TestLoad_UnknownCacheBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
}

func TestLoad_InvalidFallbackYear(t *testing.T) {
	t.Setenv("ETL_FALLBACK_YEAR", "99")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ETL_FALLBACK_YEAR")
}
