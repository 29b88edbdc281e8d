// Command validate performs end-to-end integrity checks across the pipeline
// artifacts: the JSONL source export, the flattened CSV, and optionally the
// SQLite store the dashboard reads. It recomputes the transform through the
// actual domain package and verifies row counts, column values, and the
// invariants every published row must satisfy.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -records data/pfas_records.jsonl \
//	  -csv out/pfas_measurements.csv \
//	  -sqlite out/pfas.sqlite
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/couchcryptid/pfas-dashboard/internal/adapter/store"
	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	records := flag.String("records", "", "path to the JSONL source export")
	csvPath := flag.String("csv", "", "path to the flattened CSV artifact")
	sqlitePath := flag.String("sqlite", "", "path to the SQLite store (optional)")
	flag.Parse()

	if *records == "" || *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*records, *csvPath, *sqlitePath))
}

func run(recordsPath, csvPath, sqlitePath string) int {
	fmt.Println("=== PFAS Artifact Integrity Validation ===")
	fmt.Println()

	source, err := loadJSONL(recordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load source records: %v\n", err)
		return 1
	}

	header, rows, err := loadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	expected, skipped, err := recompute(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: recompute from source: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSchema(header),
		validateParity(expected, rows),
		validateInvariants(rows),
	}
	if sqlitePath != "" {
		phases = append(phases, validateStore(sqlitePath, len(rows)))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d source, %d skipped (empty), %d expected rows, %d CSV rows\n",
		len(source), skipped, len(expected), len(rows))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

func loadJSONL(path string) ([]domain.SourceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []domain.SourceRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 20*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec domain.SourceRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

// csvRow is a parsed CSV row keyed by column name.
type csvRow struct {
	lineNum int
	fields  map[string]string
}

func loadCSV(path string) ([]string, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty file %s", path)
	}

	header := all[0]
	var rows []csvRow
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = row[j]
			}
		}
		rows = append(rows, csvRow{lineNum: i + 2, fields: fields})
	}
	return header, rows, nil
}

// recompute runs the domain transform over the source records the way the
// pipeline does, with land/sea classification off. Everything except the
// flag column is deterministic from the source alone.
func recompute(records []domain.SourceRecord) ([]domain.Measurement, int, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out []domain.Measurement
	skipped := 0
	for i := range records {
		rows, err := domain.FlattenRecord(records[i], domain.FallbackYear)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", i, err)
		}
		if len(rows) == 0 {
			skipped++
			continue
		}
		for _, m := range rows {
			m = domain.ClassifyLandSea(context.Background(), m, nil, logger)
			m = domain.NormalizeUnits(m)
			m.PFAType = domain.ClassifyPFAType(m.Substance)
			out = append(out, m)
		}
	}
	return out, skipped, nil
}

// ── Phase 1: Schema ──

func validateSchema(header []string) *phase {
	p := &phase{name: "Phase 1: Schema (CSV header)"}

	if len(header) != len(domain.Columns) {
		p.errorf("header has %d columns, want %d", len(header), len(domain.Columns))
		return p
	}
	for i, want := range domain.Columns {
		if header[i] != want {
			p.errorf("column %d: got %q, want %q", i, header[i], want)
		}
	}
	return p
}

// ── Phase 2: Parity ──
// Recomputed rows must match the CSV cell for cell, except the land/sea flag
// which depends on the classifier the run used.

func validateParity(expected []domain.Measurement, rows []csvRow) *phase {
	p := &phase{name: "Phase 2: Parity (recompute vs CSV)"}

	if len(expected) != len(rows) {
		p.errorf("recomputed %d rows, CSV has %d", len(expected), len(rows))
		return p
	}

	for i := range expected {
		m := &expected[i]
		row := rows[i]
		checkField(p, row, "study_id", m.StudyID)
		checkField(p, row, "year", strconv.Itoa(m.Year))
		checkField(p, row, "country", m.Country)
		checkField(p, row, "city", m.City)
		checkField(p, row, "measurement location type", m.LocationType)
		checkField(p, row, "substance", m.Substance)
		checkField(p, row, "measurement units", m.Unit)
		checkField(p, row, "month", m.Month)
		checkField(p, row, "PFA type", m.PFAType)
		checkFloat(p, row, "value", m.Value)
		checkFloat(p, row, "lat", m.Lat)
		checkFloat(p, row, "lon", m.Lon)
	}
	return p
}

func checkField(p *phase, row csvRow, col, want string) {
	if got := row.fields[col]; got != want {
		p.errorf("line %d: %s: got %q, want %q", row.lineNum, col, got, want)
	}
}

func checkFloat(p *phase, row csvRow, col string, want *float64) {
	got := row.fields[col]
	if want == nil {
		if got != "" {
			p.errorf("line %d: %s: got %q, want empty", row.lineNum, col, got)
		}
		return
	}
	v, err := strconv.ParseFloat(got, 64)
	if err != nil {
		p.errorf("line %d: %s: unparseable %q", row.lineNum, col, got)
		return
	}
	if math.Abs(v-*want) > 1e-9 {
		p.errorf("line %d: %s: got %v, want %v", row.lineNum, col, v, *want)
	}
}

// ── Phase 3: Invariants ──
// Column-level rules every published row must satisfy regardless of input.

func validateInvariants(rows []csvRow) *phase {
	p := &phase{name: "Phase 3: Invariants (published rows)"}

	months := map[string]struct{}{}
	for _, m := range domain.MonthOrder {
		months[m] = struct{}{}
	}
	pfaTypes := map[string]struct{}{}
	for _, v := range domain.PFATypes {
		pfaTypes[v] = struct{}{}
	}
	flags := map[string]struct{}{
		domain.FlagOceanic:     {},
		domain.FlagTerrestrial: {},
		domain.FlagUnknown:     {},
	}

	for _, row := range rows {
		if y, err := strconv.Atoi(row.fields["year"]); err != nil {
			p.errorf("line %d: year %q not numeric", row.lineNum, row.fields["year"])
		} else if y == 0 || y == 1900 {
			p.errorf("line %d: sentinel year %d leaked through", row.lineNum, y)
		}
		if _, ok := months[row.fields["month"]]; !ok {
			p.errorf("line %d: unknown month %q", row.lineNum, row.fields["month"])
		}
		if row.fields["measurement units"] != domain.UnitMassPerVolume {
			p.errorf("line %d: unit %q, every published row must carry %q",
				row.lineNum, row.fields["measurement units"], domain.UnitMassPerVolume)
		}
		if _, ok := pfaTypes[row.fields["PFA type"]]; !ok {
			p.errorf("line %d: unknown PFA type %q", row.lineNum, row.fields["PFA type"])
		}
		if _, ok := flags[row.fields["Oceanic Terrestrial Flag"]]; !ok {
			p.errorf("line %d: unknown flag %q", row.lineNum, row.fields["Oceanic Terrestrial Flag"])
		}
		if row.fields["substance"] == "" {
			p.errorf("line %d: empty substance", row.lineNum)
		}
	}
	return p
}

// ── Phase 4: Store ──
// The SQLite reduced table must carry the same number of rows as the CSV and
// a non-empty version.

func validateStore(path string, wantRows int) *phase {
	p := &phase{name: "Phase 4: Store (SQLite reduced table)"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.OpenSQLite(path, logger)
	if err != nil {
		p.errorf("open: %v", err)
		return p
	}
	defer st.Close()

	rows, version, err := st.LoadTable(context.Background())
	if err != nil {
		p.errorf("load table: %v", err)
		return p
	}
	if len(rows) != wantRows {
		p.errorf("store has %d rows, CSV has %d", len(rows), wantRows)
	}
	if version == "" {
		p.errorf("store has no run version")
	}
	return p
}
