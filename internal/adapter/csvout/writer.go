// Package csvout writes the flattened measurement table as a reference CSV.
package csvout

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// Writer persists the full 18-column table as CSV. The same rows always
// produce a byte-identical file, which makes the artifact useful for
// regression diffing. It implements pipeline.Loader.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a CSV loader writing to path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Load writes the header row plus one line per measurement.
func (w *Writer) Load(_ context.Context, run domain.RunInfo, rows []domain.Measurement) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range rows {
		if err := cw.Write(record(rows[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	w.logger.Info("csv written", "path", w.path, "rows", len(rows), "run_id", run.ID)
	return nil
}

func record(m domain.Measurement) []string {
	return []string{
		m.StudyID,
		strconv.Itoa(m.Year),
		m.Date,
		m.Name,
		m.Category,
		formatFloat(m.Lat),
		formatFloat(m.Lon),
		m.City,
		m.Country,
		m.Type,
		m.Sector,
		m.LocationType,
		m.Substance,
		formatFloat(m.Value),
		m.Unit,
		m.Month,
		m.Flag,
		m.PFAType,
	}
}

// formatFloat renders floats the way pandas does in to_csv: missing is
// empty, integral values keep a trailing ".0", everything else uses the
// shortest exact representation.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	if *v == math.Trunc(*v) && math.Abs(*v) < 1e15 {
		return strconv.FormatFloat(*v, 'f', 1, 64)
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
