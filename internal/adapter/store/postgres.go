package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

const postgresCreateMeasurements = `CREATE TABLE measurements (
	study_id TEXT,
	year INTEGER,
	date TEXT,
	name TEXT,
	category TEXT,
	lat DOUBLE PRECISION,
	lon DOUBLE PRECISION,
	city TEXT,
	country TEXT,
	type TEXT,
	sector TEXT,
	location_type TEXT,
	substance TEXT,
	value DOUBLE PRECISION,
	unit TEXT,
	month TEXT,
	flag TEXT,
	pfa_type TEXT
)`

const postgresCreateRuns = `CREATE TABLE etl_runs (
	run_id TEXT PRIMARY KEY,
	loaded_at TIMESTAMPTZ NOT NULL,
	row_count INTEGER NOT NULL
)`

// Postgres persists the measurement table in PostgreSQL via pgx, using
// CopyFrom for the bulk insert. It implements pipeline.Loader.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// OpenPostgres connects to the database at url.
func OpenPostgres(ctx context.Context, url string, logger *slog.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{pool: pool, logger: logger}, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Load replaces the measurement table with the given rows in one transaction.
func (p *Postgres) Load(ctx context.Context, run domain.RunInfo, rows []domain.Measurement) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin refresh: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	stmts := []string{
		"DROP TABLE IF EXISTS measurements",
		"DROP TABLE IF EXISTS etl_runs",
		postgresCreateMeasurements,
		postgresCreateRuns,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("prepare tables: %w", err)
		}
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"measurements"},
		measurementColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return rowValues(rows[i]), nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy measurements: %w", err)
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copy measurements: wrote %d of %d rows", copied, len(rows))
	}

	for _, col := range indexedColumns {
		ddl := fmt.Sprintf("CREATE INDEX idx_measurements_%s ON measurements (%s)", col, col)
		if _, err := tx.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create index on %s: %w", col, err)
		}
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO etl_runs (run_id, loaded_at, row_count) VALUES ($1, $2, $3)",
		run.ID, run.LoadedAt, run.Rows,
	); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit refresh: %w", err)
	}

	p.logger.Info("postgres refresh complete", "rows", len(rows), "run_id", run.ID)
	return nil
}

// LoadTable reads the reduced measurement table and its version (the run ID
// of the load that produced it) for the dashboard.
func (p *Postgres) LoadTable(ctx context.Context) ([]domain.Measurement, string, error) {
	var version string
	err := p.pool.QueryRow(ctx,
		"SELECT run_id FROM etl_runs ORDER BY loaded_at DESC LIMIT 1",
	).Scan(&version)
	if err != nil {
		return nil, "", fmt.Errorf("read table version: %w", err)
	}

	query := "SELECT " + strings.Join([]string{
		"study_id", "year", "name", "lat", "lon", "city", "country",
		"location_type", "substance", "value", "month", "flag", "pfa_type",
	}, ", ") + " FROM measurements"

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, "", fmt.Errorf("read measurements: %w", err)
	}
	defer rows.Close()

	var out []domain.Measurement
	for rows.Next() {
		var m domain.Measurement
		if err := rows.Scan(&m.StudyID, &m.Year, &m.Name, &m.Lat, &m.Lon,
			&m.City, &m.Country, &m.LocationType, &m.Substance, &m.Value,
			&m.Month, &m.Flag, &m.PFAType); err != nil {
			return nil, "", fmt.Errorf("scan measurement: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("iterate measurements: %w", err)
	}

	return out, version, nil
}
