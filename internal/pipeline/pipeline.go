// Package pipeline orchestrates the one-shot batch ETL: extract source
// records, flatten and reconcile, classify land/sea, normalize units, assign
// PFA types, then load the finished table through every configured loader.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
	"github.com/couchcryptid/pfas-dashboard/internal/observability"
)

// Extractor reads all source records from the input artifact.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.SourceRecord, error)
}

// Loader persists the finished measurement table.
type Loader interface {
	Load(ctx context.Context, run domain.RunInfo, rows []domain.Measurement) error
}

// Summary reports what one run did.
type Summary struct {
	RunID          string
	RecordsRead    int
	RecordsSkipped int
	Measurements   int
	FlagCounts     map[string]int
	Duration       time.Duration
}

// Pipeline runs the batch transform. Single-threaded by design: one linear
// pass over an in-memory table, deterministic and idempotent — the same
// input always produces the same table.
type Pipeline struct {
	extractor    Extractor
	classifier   domain.LandSeaClassifier // nil means every row flags Unknown
	loaders      []Loader
	logger       *slog.Logger
	metrics      *observability.Metrics
	fallbackYear int
}

// New creates a Pipeline with the given stages and observability.
func New(e Extractor, classifier domain.LandSeaClassifier, loaders []Loader, logger *slog.Logger, metrics *observability.Metrics, fallbackYear int) *Pipeline {
	return &Pipeline{
		extractor:    e,
		classifier:   classifier,
		loaders:      loaders,
		logger:       logger,
		metrics:      metrics,
		fallbackYear: fallbackYear,
	}
}

// Run executes the pipeline once. Any error other than a per-row land/sea
// failure aborts the run; there is no partial output. Cancellation is honored
// between phases.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	p.logger.Info("pipeline started", "fallback_year", p.fallbackYear)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	records, err := p.extract(ctx)
	if err != nil {
		return Summary{}, err
	}

	rows, skipped, err := p.flatten(ctx, records)
	if err != nil {
		return Summary{}, err
	}

	if err := p.classify(ctx, rows); err != nil {
		return Summary{}, err
	}

	p.normalize(rows)

	run := domain.NewRunInfo(len(rows))
	if err := p.load(ctx, run, rows); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:          run.ID,
		RecordsRead:    len(records),
		RecordsSkipped: skipped,
		Measurements:   len(rows),
		FlagCounts:     countFlags(rows),
		Duration:       time.Since(start),
	}
	p.logger.Info("pipeline complete",
		"run_id", summary.RunID,
		"records", summary.RecordsRead,
		"skipped", summary.RecordsSkipped,
		"measurements", summary.Measurements,
		"duration", summary.Duration,
	)
	return summary, nil
}

func (p *Pipeline) extract(ctx context.Context) ([]domain.SourceRecord, error) {
	defer p.timePhase("extract")()

	records, err := p.extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	p.metrics.RecordsRead.Add(float64(len(records)))
	return records, nil
}

// flatten explodes every record's sub-measurement list into flat rows.
// Records with no measurements are excluded and counted; malformed
// pfas_values content aborts the run.
func (p *Pipeline) flatten(ctx context.Context, records []domain.SourceRecord) ([]domain.Measurement, int, error) {
	defer p.timePhase("flatten")()

	var rows []domain.Measurement
	skipped := 0
	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		recRows, err := domain.FlattenRecord(records[i], p.fallbackYear)
		if err != nil {
			return nil, 0, fmt.Errorf("flatten record %d: %w", i, err)
		}
		if len(recRows) == 0 {
			skipped++
			continue
		}
		rows = append(rows, recRows...)
	}

	p.metrics.RecordsSkipped.Add(float64(skipped))
	p.logger.Info("records flattened", "measurements", len(rows), "skipped_empty", skipped)
	return rows, skipped, nil
}

// classify derives the Oceanic/Terrestrial flag for every row. Per-row
// failures degrade to Unknown and never abort the run; classification must
// happen before unit normalization, which conditions on the terrestrial
// location type.
func (p *Pipeline) classify(ctx context.Context, rows []domain.Measurement) error {
	defer p.timePhase("classify")()

	for i := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows[i] = domain.ClassifyLandSea(ctx, rows[i], p.classifier, p.logger)
		p.metrics.LandSeaLookups.WithLabelValues(strings.ToLower(rows[i].Flag)).Inc()
	}
	return nil
}

// normalize applies unit conversion and PFA type assignment in one pass.
func (p *Pipeline) normalize(rows []domain.Measurement) {
	defer p.timePhase("normalize")()

	for i := range rows {
		rows[i] = domain.NormalizeUnits(rows[i])
		rows[i].PFAType = domain.ClassifyPFAType(rows[i].Substance)
	}
	p.metrics.MeasurementsProduced.Add(float64(len(rows)))
}

// load writes the finished table through every loader. Any loader failure
// fails the run; artifacts must not be partial.
func (p *Pipeline) load(ctx context.Context, run domain.RunInfo, rows []domain.Measurement) error {
	defer p.timePhase("load")()

	for _, l := range p.loaders {
		if err := l.Load(ctx, run, rows); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}
	return nil
}

func (p *Pipeline) timePhase(name string) func() {
	start := time.Now()
	return func() {
		p.metrics.PhaseDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

func countFlags(rows []domain.Measurement) map[string]int {
	counts := make(map[string]int, 3)
	for i := range rows {
		counts[rows[i].Flag]++
	}
	return counts
}
