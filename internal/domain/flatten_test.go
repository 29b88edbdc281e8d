package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func testRecord() SourceRecord {
	return SourceRecord{
		DatasetID:   "ds-001",
		Year:        2023,
		Date:        "2023-06-15",
		Name:        "River Thames sampling",
		Category:    "Surface water",
		Lat:         float64Ptr(51.5),
		Lon:         float64Ptr(-0.12),
		City:        "London",
		Country:     "United Kingdom",
		Type:        "Measurement",
		Sector:      "Water treatment",
		Matrix:      "Terrestrial",
		Unit:        "ng/kg",
		CASID:       "335-67-1",
		SourceText:  "municipal survey",
		SourceURL:   "https://example.org/survey",
		DatasetName: "UK PFAS survey",
		Details:     "quarterly sampling round",
		PFASValues:  `[{"substance":"PFOA","value":5,"unit":"ng/kg"},{"substance":"GenX","value":2,"unit":"ng/kg"}]`,
	}
}

func TestFlattenRecord(t *testing.T) {
	t.Run("one row per sub-measurement", func(t *testing.T) {
		rows, err := FlattenRecord(testRecord(), FallbackYear)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "PFOA", rows[0].Substance)
		assert.Equal(t, "GenX", rows[1].Substance)
		for _, row := range rows {
			assert.Equal(t, "ds-001", row.StudyID)
			assert.Equal(t, 2023, row.Year)
			assert.Equal(t, "London", row.City)
			assert.Equal(t, "United Kingdom", row.Country)
			assert.Equal(t, "Terrestrial", row.LocationType)
			assert.Equal(t, "ng/kg", row.Unit)
			assert.Equal(t, "June", row.Month)
		}
		require.NotNil(t, rows[0].Value)
		assert.Equal(t, 5.0, *rows[0].Value)
	})

	t.Run("empty array record fully excluded", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = "[]"
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty string record fully excluded", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = ""
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("malformed pfas_values is fatal", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = `[{"substance":"PFOA","value":`
		_, err := FlattenRecord(rec, FallbackYear)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ds-001")
	})

	t.Run("quoted numeric value accepted", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = `[{"substance":"PFOS","value":"7.25","unit":"ng/L"}]`
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].Value)
		assert.Equal(t, 7.25, *rows[0].Value)
	})

	t.Run("null value kept as missing", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = `[{"substance":"PFOS","value":null,"unit":"ng/L"}]`
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].Value)
	})

	t.Run("parent unit wins over sub-measurement unit", func(t *testing.T) {
		rec := testRecord()
		rec.Unit = "ng/L"
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		assert.Equal(t, "ng/L", rows[0].Unit)
	})

	t.Run("sub-measurement unit used when parent has none", func(t *testing.T) {
		rec := testRecord()
		rec.Unit = ""
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		assert.Equal(t, "ng/kg", rows[0].Unit)
	})

	t.Run("sub-measurement matrix overrides parent", func(t *testing.T) {
		rec := testRecord()
		rec.PFASValues = `[{"substance":"PFOA","value":1,"unit":"ng/kg","matrix":"Oceanic"}]`
		rows, err := FlattenRecord(rec, FallbackYear)
		require.NoError(t, err)
		assert.Equal(t, "Oceanic", rows[0].LocationType)
	})
}

func TestCoerceYear(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		expected int
	}{
		{"zero sentinel", 0, 2024},
		{"1900 sentinel", 1900, 2024},
		{"regular year", 2019, 2019},
		{"fallback year itself", 2024, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, coerceYear(tt.year, FallbackYear))
		})
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected string
	}{
		{"january", "2023-01-05", "January"},
		{"september", "2021-09-30", "September"},
		{"december", "2022-12-01", "December"},
		{"no dashes", "20230105", "Unknown"},
		{"empty date", "", "Unknown"},
		{"non-padded month", "2023-1-05", "Unknown"},
		{"month out of range", "2023-13-05", "Unknown"},
		{"year only", "2023", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthName(tt.date))
		})
	}
}
