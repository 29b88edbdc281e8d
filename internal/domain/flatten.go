package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FallbackYear replaces the upstream "year unknown" sentinels (0 and 1900).
const FallbackYear = 2024

var monthNames = map[string]string{
	"01": "January", "02": "February", "03": "March", "04": "April",
	"05": "May", "06": "June", "07": "July", "08": "August",
	"09": "September", "10": "October", "11": "November", "12": "December",
}

// MonthOrder lists month names in calendar order with the "Unknown" bucket
// last, the order time-series output is sorted in.
var MonthOrder = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December", "Unknown",
}

// FlattenRecord explodes a source record's pfas_values array into flat
// measurement rows, one per sub-measurement, each carrying the parent's
// contextual fields. Records with an empty array are excluded entirely and
// produce (nil, nil). Malformed pfas_values content is a hard error; batch
// runs fail rather than salvage partial rows.
//
// fallbackYear replaces the 0/1900 year sentinels; pass FallbackYear unless
// configured otherwise.
func FlattenRecord(rec SourceRecord, fallbackYear int) ([]Measurement, error) {
	raw := strings.TrimSpace(rec.PFASValues)
	if raw == "" || raw == "[]" {
		return nil, nil
	}

	var subs []SubMeasurement
	if err := json.Unmarshal([]byte(raw), &subs); err != nil {
		return nil, fmt.Errorf("parse pfas_values for dataset %q: %w", rec.DatasetID, err)
	}
	if len(subs) == 0 {
		return nil, nil
	}

	rows := make([]Measurement, 0, len(subs))
	for _, sub := range subs {
		rows = append(rows, reconcile(rec, sub, fallbackYear))
	}
	return rows, nil
}

// reconcile joins one sub-measurement back onto its parent record, applying
// the target schema's renames and field precedence: the parent's unit wins
// over the sub-measurement's (the sub unit is only a fallback), while a
// sub-measurement matrix tag overrides the parent's.
func reconcile(rec SourceRecord, sub SubMeasurement, fallbackYear int) Measurement {
	unit := rec.Unit
	if unit == "" {
		unit = sub.Unit
	}
	matrix := sub.Matrix
	if matrix == "" {
		matrix = rec.Matrix
	}

	return Measurement{
		StudyID:      rec.DatasetID,
		Year:         coerceYear(rec.Year, fallbackYear),
		Date:         rec.Date,
		Name:         rec.Name,
		Category:     rec.Category,
		Lat:          rec.Lat,
		Lon:          rec.Lon,
		City:         rec.City,
		Country:      rec.Country,
		Type:         rec.Type,
		Sector:       rec.Sector,
		LocationType: matrix,
		Substance:    sub.Substance,
		Value:        (*float64)(sub.Value),
		Unit:         unit,
		Month:        MonthName(rec.Date),
	}
}

// coerceYear maps the 0 and 1900 sentinels to the fallback year; every other
// year passes through unchanged.
func coerceYear(year, fallbackYear int) int {
	if year == 0 || year == 1900 {
		return fallbackYear
	}
	return year
}

// MonthName derives a month name from the second dash-separated token of a
// YYYY-MM-DD date string. Missing dates, short dates, and tokens that are not
// zero-padded "01".."12" all map to "Unknown".
func MonthName(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return "Unknown"
	}
	if name, ok := monthNames[parts[1]]; ok {
		return name
	}
	return "Unknown"
}
