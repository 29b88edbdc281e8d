package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

const sqliteCreateMeasurements = `CREATE TABLE measurements (
	study_id TEXT,
	year INTEGER,
	date TEXT,
	name TEXT,
	category TEXT,
	lat REAL,
	lon REAL,
	city TEXT,
	country TEXT,
	type TEXT,
	sector TEXT,
	location_type TEXT,
	substance TEXT,
	value REAL,
	unit TEXT,
	month TEXT,
	flag TEXT,
	pfa_type TEXT
)`

const sqliteCreateRuns = `CREATE TABLE etl_runs (
	run_id TEXT PRIMARY KEY,
	loaded_at TEXT NOT NULL,
	row_count INTEGER NOT NULL
)`

// SQLite persists the measurement table in a local SQLite file using the
// cgo-free modernc driver. It implements pipeline.Loader.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the SQLite artifact at path.
func OpenSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The loader is single-writer and the dashboard a single reader; one
	// connection avoids SQLITE_BUSY during the refresh transaction.
	db.SetMaxOpenConns(1)
	return &SQLite{db: db, logger: logger}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load replaces the measurement table with the given rows in one transaction.
func (s *SQLite) Load(ctx context.Context, run domain.RunInfo, rows []domain.Measurement) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin refresh: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmts := []string{
		"DROP TABLE IF EXISTS measurements",
		"DROP TABLE IF EXISTS etl_runs",
		sqliteCreateMeasurements,
		sqliteCreateRuns,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("prepare tables: %w", err)
		}
	}

	insert := fmt.Sprintf("INSERT INTO measurements (%s) VALUES (%s)",
		strings.Join(measurementColumns, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(measurementColumns)), ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range rows {
		if _, err := stmt.ExecContext(ctx, rowValues(rows[i])...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	for _, col := range indexedColumns {
		ddl := fmt.Sprintf("CREATE INDEX idx_measurements_%s ON measurements (%s)", col, col)
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create index on %s: %w", col, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO etl_runs (run_id, loaded_at, row_count) VALUES (?, ?, ?)",
		run.ID, run.LoadedAt.Format("2006-01-02T15:04:05Z07:00"), run.Rows,
	); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit refresh: %w", err)
	}

	s.logger.Info("sqlite refresh complete", "rows", len(rows), "run_id", run.ID)
	return nil
}

// LoadTable reads the reduced measurement table and its version (the run ID
// of the load that produced it) for the dashboard.
func (s *SQLite) LoadTable(ctx context.Context) ([]domain.Measurement, string, error) {
	var version string
	err := s.db.QueryRowContext(ctx,
		"SELECT run_id FROM etl_runs ORDER BY loaded_at DESC LIMIT 1",
	).Scan(&version)
	if err != nil {
		return nil, "", fmt.Errorf("read table version: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT study_id, year, name, lat, lon,
		city, country, location_type, substance, value, month, flag, pfa_type
		FROM measurements`)
	if err != nil {
		return nil, "", fmt.Errorf("read measurements: %w", err)
	}
	defer rows.Close()

	var out []domain.Measurement
	for rows.Next() {
		var m domain.Measurement
		var lat, lon, value sql.NullFloat64
		if err := rows.Scan(&m.StudyID, &m.Year, &m.Name, &lat, &lon,
			&m.City, &m.Country, &m.LocationType, &m.Substance, &value,
			&m.Month, &m.Flag, &m.PFAType); err != nil {
			return nil, "", fmt.Errorf("scan measurement: %w", err)
		}
		m.Lat = floatPtr(lat)
		m.Lon = floatPtr(lon)
		m.Value = floatPtr(value)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("iterate measurements: %w", err)
	}

	return out, version, nil
}
