// Package store persists the flattened measurement table. Loads are full
// refreshes: the previous table is dropped and rebuilt inside one
// transaction, so readers never observe a partial artifact, and a run
// metadata row records the run ID that the dashboard uses as table version.
package store

import (
	"database/sql"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// measurementColumns is the physical column order of the measurements table.
// It mirrors domain.Columns with SQL-safe names.
var measurementColumns = []string{
	"study_id", "year", "date", "name", "category", "lat", "lon", "city",
	"country", "type", "sector", "location_type", "substance", "value",
	"unit", "month", "flag", "pfa_type",
}

// indexedColumns are the dashboard's filter columns.
var indexedColumns = []string{"year", "country", "pfa_type", "location_type"}

// rowValues flattens one measurement into driver arguments in
// measurementColumns order.
func rowValues(m domain.Measurement) []any {
	return []any{
		m.StudyID, m.Year, m.Date, m.Name, m.Category,
		nullableFloat(m.Lat), nullableFloat(m.Lon),
		m.City, m.Country, m.Type, m.Sector, m.LocationType,
		m.Substance, nullableFloat(m.Value), m.Unit, m.Month, m.Flag, m.PFAType,
	}
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
