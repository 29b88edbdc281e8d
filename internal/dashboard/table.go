// Package dashboard holds the in-memory reduced measurement table and the
// aggregations behind the query API. The table is loaded once from the store
// at boot and treated as immutable; every query filters and groups over it
// in-process. The table version is the ETL run ID that produced it, which
// doubles as the cache-busting component of query fingerprints.
package dashboard

import (
	"sort"
	"strconv"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// All is the sentinel filter value meaning "do not filter on this column".
// A missing query parameter is equivalent.
const All = "All"

// Filter narrows the table on up to four columns. Zero value means no
// filtering at all.
type Filter struct {
	Year         string
	Country      string
	PFAType      string
	LocationType string
}

func active(v string) bool { return v != "" && v != All }

func (f Filter) matches(m domain.Measurement) bool {
	if active(f.Year) && strconv.Itoa(m.Year) != f.Year {
		return false
	}
	if active(f.Country) && m.Country != f.Country {
		return false
	}
	if active(f.PFAType) && m.PFAType != f.PFAType {
		return false
	}
	if active(f.LocationType) && m.LocationType != f.LocationType {
		return false
	}
	return true
}

// matchesLocation applies only the year and country filters. Charts that
// break down by PFA type or location type scope to a place and time but never
// to the dimensions they plot.
func (f Filter) matchesLocation(m domain.Measurement) bool {
	if active(f.Year) && strconv.Itoa(m.Year) != f.Year {
		return false
	}
	if active(f.Country) && m.Country != f.Country {
		return false
	}
	return true
}

// Table is the immutable reduced measurement table a dashboard process
// serves from.
type Table struct {
	rows    []domain.Measurement
	version string
}

// NewTable wraps rows loaded from the store. version is the run ID of the
// ETL run that produced them.
func NewTable(rows []domain.Measurement, version string) *Table {
	return &Table{rows: rows, version: version}
}

func (t *Table) Version() string { return t.version }

func (t *Table) Len() int { return len(t.rows) }

// filter returns the rows matching f. With every filter set to All this is
// the whole table.
func (t *Table) filter(f Filter) []domain.Measurement {
	if !active(f.Year) && !active(f.Country) && !active(f.PFAType) && !active(f.LocationType) {
		return t.rows
	}
	var out []domain.Measurement
	for i := range t.rows {
		if f.matches(t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

func (t *Table) filterLocation(f Filter) []domain.Measurement {
	if !active(f.Year) && !active(f.Country) {
		return t.rows
	}
	var out []domain.Measurement
	for i := range t.rows {
		if f.matchesLocation(t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

// FilterOptions lists the distinct values of each filterable column, each
// list ending with the All sentinel so clients can render dropdowns directly.
type FilterOptions struct {
	Years         []string `json:"years"`
	Countries     []string `json:"countries"`
	PFATypes      []string `json:"pfa_types"`
	LocationTypes []string `json:"location_types"`
}

// FilterOptions scans the whole table once. Values are sorted for
// deterministic output, years numerically ascending.
func (t *Table) FilterOptions() FilterOptions {
	years := map[string]struct{}{}
	countries := map[string]struct{}{}
	pfaTypes := map[string]struct{}{}
	locationTypes := map[string]struct{}{}
	for i := range t.rows {
		m := &t.rows[i]
		years[strconv.Itoa(m.Year)] = struct{}{}
		countries[m.Country] = struct{}{}
		pfaTypes[m.PFAType] = struct{}{}
		locationTypes[m.LocationType] = struct{}{}
	}
	opts := FilterOptions{
		Years:         sortedKeys(years),
		Countries:     sortedKeys(countries),
		PFATypes:      sortedKeys(pfaTypes),
		LocationTypes: sortedKeys(locationTypes),
	}
	sort.Slice(opts.Years, func(i, j int) bool {
		a, _ := strconv.Atoi(opts.Years[i])
		b, _ := strconv.Atoi(opts.Years[j])
		return a < b
	})
	opts.Years = append(opts.Years, All)
	opts.Countries = append(opts.Countries, All)
	opts.PFATypes = append(opts.PFATypes, All)
	opts.LocationTypes = append(opts.LocationTypes, All)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
