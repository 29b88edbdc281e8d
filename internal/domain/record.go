package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceRecord is one study/sample event as exported upstream, one JSONL line
// each. PFASValues holds the serialized sub-measurement array; everything else
// is context that gets denormalized onto the flattened rows.
type SourceRecord struct {
	DatasetID   string   `json:"dataset_id"`
	Year        int      `json:"year"`
	Date        string   `json:"date"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Type        string   `json:"type"`
	Sector      string   `json:"sector"`
	Matrix      string   `json:"matrix"`
	Unit        string   `json:"unit"`
	CASID       string   `json:"cas_id"`
	SourceText  string   `json:"source_text"`
	SourceURL   string   `json:"source_url"`
	DatasetName string   `json:"dataset_name"`
	Details     string   `json:"details"`
	PFASValues  string   `json:"pfas_values"`
}

// SubMeasurement is one element of a record's pfas_values array: a single
// substance observation. The optional matrix tag overrides the parent
// record's matrix when present. Unit and cas_id are superseded by the parent
// during reconciliation.
type SubMeasurement struct {
	Substance string     `json:"substance"`
	Value     *FlexFloat `json:"value"`
	Unit      string     `json:"unit"`
	CASID     string     `json:"cas_id"`
	Matrix    string     `json:"matrix"`
}

// FlexFloat is a float64 that also accepts JSON-quoted numbers, which some
// upstream exporters emit ("value":"5.0").
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("parse value: empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", s, err)
	}
	*f = FlexFloat(v)
	return nil
}

// Measurement is the canonical flat row: one sub-measurement joined with its
// parent record's context, plus the derived month, land/sea flag, and PFA
// type columns. JSON tags match the published column names so serialized
// output lines up with the table schema.
type Measurement struct {
	StudyID      string   `json:"study_id"`
	Year         int      `json:"year"`
	Date         string   `json:"date"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Type         string   `json:"type"`
	Sector       string   `json:"sector"`
	LocationType string   `json:"measurement location type"`
	Substance    string   `json:"substance"`
	Value        *float64 `json:"value"`
	Unit         string   `json:"measurement units"`
	Month        string   `json:"month"`
	Flag         string   `json:"Oceanic Terrestrial Flag"`
	PFAType      string   `json:"PFA type"`
}

// Columns is the full flat table schema in its fixed order: the 15 reconciled
// columns followed by the three derived ones.
var Columns = []string{
	"study_id", "year", "date", "name", "category", "lat", "lon", "city",
	"country", "type", "sector", "measurement location type", "substance",
	"value", "measurement units", "month", "Oceanic Terrestrial Flag",
	"PFA type",
}

// ReducedColumns is the dashboard-facing subset: the full schema minus the
// columns the dashboard never reads (sector, measurement units, category,
// date, type).
var ReducedColumns = []string{
	"study_id", "year", "name", "lat", "lon", "city", "country",
	"measurement location type", "substance", "value", "month",
	"Oceanic Terrestrial Flag", "PFA type",
}
