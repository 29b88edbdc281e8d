// Command etl runs the batch pipeline once: it reads the exported PFAS
// records, flattens and enriches them, and refreshes every configured output
// artifact (store, CSV, optional Kafka feed).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/pfas-dashboard/internal/adapter/csvout"
	"github.com/couchcryptid/pfas-dashboard/internal/adapter/jsonl"
	kafkaadapter "github.com/couchcryptid/pfas-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/pfas-dashboard/internal/adapter/landsea"
	"github.com/couchcryptid/pfas-dashboard/internal/adapter/store"
	"github.com/couchcryptid/pfas-dashboard/internal/config"
	"github.com/couchcryptid/pfas-dashboard/internal/domain"
	"github.com/couchcryptid/pfas-dashboard/internal/observability"
	"github.com/couchcryptid/pfas-dashboard/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		slog.Error("etl failed", "error", err)
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

	classifier, err := buildClassifier(cfg, metrics, logger)
	if err != nil {
		return err
	}

	loaders, closers, err := buildLoaders(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Error("close failed", "error", err)
			}
		}
	}()

	reader := jsonl.NewReader(cfg.InputPath, logger)
	p := pipeline.New(reader, classifier, loaders, logger, metrics, cfg.FallbackYear)

	summary, err := p.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("run summary",
		"run_id", summary.RunID,
		"records", summary.RecordsRead,
		"skipped", summary.RecordsSkipped,
		"measurements", summary.Measurements,
		"flags", summary.FlagCounts,
	)
	return nil
}

// buildClassifier wires the land/sea provider selected by LANDSEA_PROVIDER.
// The HTTP provider sits behind a coordinate cache; "off" flags every row
// Unknown.
func buildClassifier(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (domain.LandSeaClassifier, error) {
	switch cfg.LandSeaProvider {
	case config.LandSeaMask:
		mask, err := landsea.LoadMask(cfg.LandMaskPath)
		if err != nil {
			return nil, fmt.Errorf("load land mask: %w", err)
		}
		logger.Info("land/sea mask loaded", "path", cfg.LandMaskPath)
		return mask, nil
	case config.LandSeaHTTP:
		client := landsea.NewClient(cfg.LandSeaURL, cfg.LandSeaTimeout, logger)
		cached := landsea.NewCachedClassifier(client, cfg.LandSeaCacheSize)
		cached.OnHit = func() { metrics.LandSeaCache.WithLabelValues("hit").Inc() }
		cached.OnMiss = func() { metrics.LandSeaCache.WithLabelValues("miss").Inc() }
		logger.Info("land/sea http lookups enabled", "url", cfg.LandSeaURL, "cache_size", cfg.LandSeaCacheSize)
		return cached, nil
	case config.LandSeaOff:
		logger.Info("land/sea classification disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown land/sea provider %q", cfg.LandSeaProvider)
	}
}

type closer interface {
	Close() error
}

// buildLoaders assembles the output artifacts: the dashboard store, the flat
// CSV, and the optional Kafka feed.
func buildLoaders(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]pipeline.Loader, []closer, error) {
	var loaders []pipeline.Loader
	var closers []closer

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		st, err := store.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		loaders = append(loaders, st)
		closers = append(closers, st)
	case config.StorePostgres:
		st, err := store.OpenPostgres(ctx, cfg.PostgresURL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		loaders = append(loaders, st)
		closers = append(closers, st)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	loaders = append(loaders, csvout.NewWriter(cfg.CSVPath, logger))

	if cfg.KafkaFeedEnabled {
		w := kafkaadapter.NewWriter(cfg, logger)
		loaders = append(loaders, w)
		closers = append(closers, w)
	}

	return loaders, closers, nil
}
