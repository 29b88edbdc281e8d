// Package jsonl reads source records from a JSON Lines artifact.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// Records with large pfas_values arrays can run to hundreds of kilobytes on
// one line.
const maxLineBytes = 20 * 1024 * 1024

// Reader extracts source records from a JSONL file.
// It implements pipeline.Extractor.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a JSONL extractor for the given input path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Extract reads every record from the input file. A line that is not valid
// JSON fails the whole run; batch extraction has no partial-row salvage.
func (r *Reader) Extract(ctx context.Context) ([]domain.SourceRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var records []domain.SourceRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec domain.SourceRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	r.logger.Info("input read", "path", r.path, "records", len(records))
	return records, nil
}
