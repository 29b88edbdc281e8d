// Command genmock generates mock PFAS source data for the ETL and dashboard
// test suites. It writes a JSONL input fixture plus the expected flattened
// table, produced through the actual domain package so the fixture tracks
// real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -records-out data/mock/pfas_records.jsonl \
//	  -expected-out data/mock/pfas_measurements.json \
//	  -count 200
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type site struct {
	country string
	city    string
	lat     float64
	lon     float64
	matrix  string
}

var sites = []site{
	{"France", "Paris", 48.8566, 2.3522, "Terrestrial"},
	{"France", "Brest", 48.3904, -4.4861, "Oceanic"},
	{"Germany", "Cologne", 50.9375, 6.9603, "Terrestrial"},
	{"Spain", "Vigo", 42.2406, -8.7207, "Oceanic"},
	{"Netherlands", "Rotterdam", 51.9244, 4.4777, "Terrestrial"},
	{"Norway", "Bergen", 60.3913, 5.3221, "Oceanic"},
}

var substances = []string{
	"PFOA", "PFOS", "PFBS", "PFNA", "PFHxS", "GenX", "6:2 FTS",
	"PTFE", "Unknown PFAS mixture",
}

func run() error {
	recordsOut := flag.String("records-out", "", "output path for the JSONL source fixture")
	expectedOut := flag.String("expected-out", "", "output path for the expected flattened table")
	count := flag.Int("count", 200, "number of source records")
	seed := flag.Int64("seed", 42, "rng seed")
	flag.Parse()

	if *recordsOut == "" || *expectedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -records-out, -expected-out")
	}

	// Fixed clock for reproducible run metadata.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.January, 15, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	rng := rand.New(rand.NewSource(*seed))
	records := generate(rng, *count)

	if err := writeJSONL(*recordsOut, records); err != nil {
		return fmt.Errorf("writing source fixture: %w", err)
	}
	log.Printf("wrote %d source records: %s", len(records), *recordsOut)

	expected, skipped, err := flattenAll(records)
	if err != nil {
		return fmt.Errorf("flattening: %w", err)
	}
	if err := writeJSON(*expectedOut, expected); err != nil {
		return fmt.Errorf("writing expected fixture: %w", err)
	}
	log.Printf("wrote %d expected measurements (%d records skipped): %s",
		len(expected), skipped, *expectedOut)

	printStats(expected)
	return nil
}

// generate produces source records covering the edge cases the pipeline has
// to handle: sentinel years, missing dates, missing coordinates, empty
// pfas_values, quoted numbers, and per-sub-measurement matrix overrides.
func generate(rng *rand.Rand, count int) []domain.SourceRecord {
	records := make([]domain.SourceRecord, 0, count)
	for i := 0; i < count; i++ {
		s := sites[rng.Intn(len(sites))]
		year := 2015 + rng.Intn(10)
		date := fmt.Sprintf("%d-%02d-%02d", year, 1+rng.Intn(12), 1+rng.Intn(28))

		rec := domain.SourceRecord{
			DatasetID: fmt.Sprintf("study-%04d", i),
			Year:      year,
			Date:      date,
			Name:      fmt.Sprintf("%s monitoring %d", s.city, year),
			Category:  "environmental monitoring",
			Lat:       ptr(s.lat + rng.Float64()*0.2 - 0.1),
			Lon:       ptr(s.lon + rng.Float64()*0.2 - 0.1),
			City:      s.city,
			Country:   s.country,
			Type:      "spot sample",
			Sector:    "public",
			Matrix:    s.matrix,
			Unit:      pick(rng, "ng/kg", "ng/L"),
			CASID:     fmt.Sprintf("335-67-%d", rng.Intn(9)),
			PFASValues: subMeasurements(rng, 1+rng.Intn(4), func() string {
				return substances[rng.Intn(len(substances))]
			}),
		}

		// Sprinkle in the awkward shapes.
		switch i % 10 {
		case 3:
			rec.Year = 1900 // sentinel
		case 4:
			rec.Year = 0 // sentinel
			rec.Date = ""
		case 5:
			rec.Lat, rec.Lon = nil, nil
		case 6:
			rec.PFASValues = "[]"
		case 7:
			rec.Date = "summer"
		}
		records = append(records, rec)
	}
	return records
}

// subMeasurements serializes n random sub-measurements, occasionally with a
// quoted value or a matrix override, the way the upstream exporter does.
func subMeasurements(rng *rand.Rand, n int, substance func() string) string {
	type sub struct {
		Substance string `json:"substance"`
		Value     any    `json:"value"`
		Unit      string `json:"unit"`
		Matrix    string `json:"matrix,omitempty"`
	}
	subs := make([]sub, 0, n)
	for i := 0; i < n; i++ {
		v := float64(rng.Intn(10000)) / 100
		s := sub{Substance: substance(), Value: v, Unit: pick(rng, "ng/kg", "ng/L")}
		if rng.Intn(5) == 0 {
			s.Value = fmt.Sprintf("%.2f", v) // quoted number
		}
		if rng.Intn(8) == 0 {
			s.Matrix = pick(rng, "Oceanic", "Terrestrial")
		}
		subs = append(subs, s)
	}
	data, err := json.Marshal(subs)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// flattenAll runs the domain transform the same way the pipeline does, with
// land/sea classification off so expectations never depend on a mask file.
func flattenAll(records []domain.SourceRecord) ([]domain.Measurement, int, error) {
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

func writeJSONL(path string, records []domain.SourceRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printStats(rows []domain.Measurement) {
	types := map[string]int{}
	countries := map[string]int{}
	for i := range rows {
		types[rows[i].PFAType]++
		countries[rows[i].Country]++
	}
	log.Printf("pfa types: %v", types)
	log.Printf("countries: %v", countries)
}

func ptr(v float64) *float64 { return &v }

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}
