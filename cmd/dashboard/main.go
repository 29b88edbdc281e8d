// Command dashboard serves the query API over the reduced measurement table.
// The table is read from the store once at boot; the process is ready when it
// is published.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/pfas-dashboard/internal/adapter/httpapi"
	"github.com/couchcryptid/pfas-dashboard/internal/adapter/store"
	"github.com/couchcryptid/pfas-dashboard/internal/config"
	"github.com/couchcryptid/pfas-dashboard/internal/dashboard"
	"github.com/couchcryptid/pfas-dashboard/internal/domain"
	"github.com/couchcryptid/pfas-dashboard/internal/observability"
)

func main() {
	if err := run(); err != nil {
		slog.Error("dashboard failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := buildCache(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if c, ok := cache.(interface{ Close() error }); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.Error("cache close failed", "error", err)
			}
		}()
	}

	rows, version, err := loadTable(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := httpapi.New(cfg, logger, metrics, cache)
	srv.SetTable(dashboard.NewTable(rows, version))

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

func loadTable(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]domain.Measurement, string, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		st, err := store.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite: %w", err)
		}
		defer st.Close()
		return st.LoadTable(ctx)
	case config.StorePostgres:
		st, err := store.OpenPostgres(ctx, cfg.PostgresURL, logger)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		defer st.Close()
		return st.LoadTable(ctx)
	default:
		return nil, "", fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func buildCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (dashboard.Cache, error) {
	switch cfg.CacheBackend {
	case config.CacheMemory:
		logger.Info("query cache enabled", "backend", "memory", "ttl", cfg.CacheTTL, "max_entries", cfg.CacheMaxEntries)
		return dashboard.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxEntries, nil), nil
	case config.CacheRedis:
		cache, err := dashboard.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("query cache enabled", "backend", "redis", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		return cache, nil
	case config.CacheOff:
		logger.Info("query cache disabled")
		return dashboard.NopCache{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
