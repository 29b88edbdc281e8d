package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

// Agg selects how grouped values are reduced: summing the non-null values or
// counting them.
type Agg string

const (
	AggSum   Agg = "sum"
	AggCount Agg = "count"
)

// ParseAgg maps the agg query parameter. Empty means count, the dashboard
// default.
func ParseAgg(s string) (Agg, error) {
	switch s {
	case "", string(AggCount):
		return AggCount, nil
	case string(AggSum):
		return AggSum, nil
	default:
		return "", fmt.Errorf("unknown agg %q", s)
	}
}

// accumulator folds values under one group key. Null values contribute to
// neither sum nor count.
type accumulator struct {
	sum   float64
	count int
}

func (a *accumulator) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

func (a accumulator) value(agg Agg) float64 {
	if agg == AggSum {
		return a.sum
	}
	return float64(a.count)
}

// median of the non-null values; 0 when there are none.
func median(values []*float64) float64 {
	var present []float64
	for _, v := range values {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) == 0 {
		return 0
	}
	sort.Float64s(present)
	mid := len(present) / 2
	if len(present)%2 == 1 {
		return present[mid]
	}
	return (present[mid-1] + present[mid]) / 2
}

// Headline is the sidebar summary block.
type Headline struct {
	UniqueSubstances int     `json:"unique_substances"`
	MedianValue      float64 `json:"median_value"`
	Samples          int     `json:"samples"`
	Studies          int     `json:"studies"`
	PctTerrestrial   float64 `json:"pct_terrestrial"`
}

// Headline computes the summary figures for the filtered rows. The
// terrestrial percentage is flag-based and rounded to three decimals; an
// empty selection yields the zero Headline.
func (t *Table) Headline(f Filter) Headline {
	rows := t.filter(f)
	if len(rows) == 0 {
		return Headline{}
	}

	substances := map[string]struct{}{}
	studies := map[string]struct{}{}
	values := make([]*float64, 0, len(rows))
	terrestrial := 0
	for i := range rows {
		substances[rows[i].Substance] = struct{}{}
		studies[rows[i].StudyID] = struct{}{}
		values = append(values, rows[i].Value)
		if rows[i].Flag == domain.FlagTerrestrial {
			terrestrial++
		}
	}

	return Headline{
		UniqueSubstances: len(substances),
		MedianValue:      median(values),
		Samples:          len(rows),
		Studies:          len(studies),
		PctTerrestrial:   round3(float64(terrestrial) / float64(len(rows)) * 100),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// TypeAggregate is one slice of the PFA type breakdown.
type TypeAggregate struct {
	PFAType string  `json:"pfa_type"`
	Value   float64 `json:"value"`
}

// PFATypeBreakdown groups the filtered rows by PFA type, sorted by type name.
func (t *Table) PFATypeBreakdown(f Filter, agg Agg) []TypeAggregate {
	groups := map[string]*accumulator{}
	for _, m := range t.filter(f) {
		acc, ok := groups[m.PFAType]
		if !ok {
			acc = &accumulator{}
			groups[m.PFAType] = acc
		}
		acc.add(m.Value)
	}

	out := make([]TypeAggregate, 0, len(groups))
	for name, acc := range groups {
		out = append(out, TypeAggregate{PFAType: name, Value: acc.value(agg)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PFAType < out[j].PFAType })
	return out
}

// LocationTypeAggregate is one cell of the location-type radar breakdown.
type LocationTypeAggregate struct {
	PFAType      string  `json:"pfa_type"`
	LocationType string  `json:"location_type"`
	Value        float64 `json:"value"`
}

// LocationTypeBreakdown groups by (PFA type, location type) under the
// location-scope filters only: the chart plots both dimensions itself, so
// filtering on them would blank it.
func (t *Table) LocationTypeBreakdown(f Filter, agg Agg) []LocationTypeAggregate {
	type key struct{ pfaType, locationType string }
	groups := map[key]*accumulator{}
	for _, m := range t.filterLocation(f) {
		k := key{m.PFAType, m.LocationType}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.add(m.Value)
	}

	out := make([]LocationTypeAggregate, 0, len(groups))
	for k, acc := range groups {
		out = append(out, LocationTypeAggregate{
			PFAType:      k.pfaType,
			LocationType: k.locationType,
			Value:        acc.value(agg),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PFAType != out[j].PFAType {
			return out[i].PFAType < out[j].PFAType
		}
		return out[i].LocationType < out[j].LocationType
	})
	return out
}

// SubstanceAggregate is one row of the top-substances ranking.
type SubstanceAggregate struct {
	Substance string  `json:"substance"`
	PFAType   string  `json:"pfa_type"`
	Value     float64 `json:"value"`
}

// Ranking sizes. MaxTopN caps the n parameter of TopSubstances.
const (
	DefaultTopN = 5
	MaxTopN     = 10
)

// TopSubstances ranks (substance, PFA type) groups by aggregated value,
// descending, and returns the top n. Groups tied with the cut-off value are
// all kept, so the result may exceed n.
func (t *Table) TopSubstances(f Filter, agg Agg, n int) []SubstanceAggregate {
	if n <= 0 {
		n = DefaultTopN
	}
	if n > MaxTopN {
		n = MaxTopN
	}

	type key struct{ substance, pfaType string }
	groups := map[key]*accumulator{}
	for _, m := range t.filter(f) {
		k := key{m.Substance, m.PFAType}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.add(m.Value)
	}

	ranked := make([]SubstanceAggregate, 0, len(groups))
	for k, acc := range groups {
		ranked = append(ranked, SubstanceAggregate{
			Substance: k.substance,
			PFAType:   k.pfaType,
			Value:     acc.value(agg),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Substance < ranked[j].Substance
	})
	return keepTies(ranked, n, func(s SubstanceAggregate) float64 { return s.Value })
}

// keepTies truncates a descending-sorted ranking to n entries plus every
// entry tied with the nth value.
func keepTies[T any](ranked []T, n int, value func(T) float64) []T {
	if len(ranked) <= n {
		return ranked
	}
	cutoff := value(ranked[n-1])
	end := n
	for end < len(ranked) && value(ranked[end]) == cutoff {
		end++
	}
	return ranked[:end]
}

// SeriesPoint is one (bucket, PFA type) point of a time series.
type SeriesPoint struct {
	Bucket  string  `json:"bucket"`
	PFAType string  `json:"pfa_type"`
	Value   float64 `json:"value"`
}

// Series buckets. SeriesByMonth orders January through December then Unknown.
const (
	SeriesByYear  = "year"
	SeriesByMonth = "month"
)

// Series groups by (year|month, PFA type). Year buckets sort numerically
// ascending, month buckets follow calendar order with Unknown last.
func (t *Table) Series(f Filter, by string, agg Agg) ([]SeriesPoint, error) {
	if by != SeriesByYear && by != SeriesByMonth {
		return nil, fmt.Errorf("unknown series bucket %q", by)
	}

	type key struct{ bucket, pfaType string }
	groups := map[key]*accumulator{}
	for _, m := range t.filter(f) {
		bucket := m.Month
		if by == SeriesByYear {
			bucket = strconv.Itoa(m.Year)
		}
		k := key{bucket, m.PFAType}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.add(m.Value)
	}

	out := make([]SeriesPoint, 0, len(groups))
	for k, acc := range groups {
		out = append(out, SeriesPoint{Bucket: k.bucket, PFAType: k.pfaType, Value: acc.value(agg)})
	}

	rank := func(bucket string) int {
		if by == SeriesByYear {
			y, _ := strconv.Atoi(bucket)
			return y
		}
		for i, name := range domain.MonthOrder {
			if name == bucket {
				return i
			}
		}
		return len(domain.MonthOrder)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Bucket), rank(out[j].Bucket)
		if ri != rj {
			return ri < rj
		}
		return out[i].PFAType < out[j].PFAType
	})
	return out, nil
}

// CityAggregate is one bar of the worst-locations chart.
type CityAggregate struct {
	City  string  `json:"city"`
	Value float64 `json:"value"`
}

// TopCities ranks cities by aggregated value under the location-scope
// filters, top 5 keeping boundary ties.
func (t *Table) TopCities(f Filter, agg Agg) []CityAggregate {
	groups := map[string]*accumulator{}
	for _, m := range t.filterLocation(f) {
		acc, ok := groups[m.City]
		if !ok {
			acc = &accumulator{}
			groups[m.City] = acc
		}
		acc.add(m.Value)
	}

	ranked := make([]CityAggregate, 0, len(groups))
	for city, acc := range groups {
		ranked = append(ranked, CityAggregate{City: city, Value: acc.value(agg)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].City < ranked[j].City
	})
	return keepTies(ranked, DefaultTopN, func(c CityAggregate) float64 { return c.Value })
}

// StudyPoint is one bubble of the per-study scatter: how many distinct
// substances a study measured, the median value, and how many samples back it.
type StudyPoint struct {
	StudyID     string  `json:"study_id"`
	Flag        string  `json:"flag"`
	Substances  int     `json:"substances"`
	MedianValue float64 `json:"median_value"`
	Samples     int     `json:"samples"`
}

// StudyScatter groups the filtered rows by (study, land/sea flag).
func (t *Table) StudyScatter(f Filter) []StudyPoint {
	type key struct{ studyID, flag string }
	type group struct {
		substances map[string]struct{}
		values     []*float64
	}
	groups := map[key]*group{}
	for _, m := range t.filter(f) {
		k := key{m.StudyID, m.Flag}
		g, ok := groups[k]
		if !ok {
			g = &group{substances: map[string]struct{}{}}
			groups[k] = g
		}
		g.substances[m.Substance] = struct{}{}
		g.values = append(g.values, m.Value)
	}

	out := make([]StudyPoint, 0, len(groups))
	for k, g := range groups {
		out = append(out, StudyPoint{
			StudyID:     k.studyID,
			Flag:        k.flag,
			Substances:  len(g.substances),
			MedianValue: median(g.values),
			Samples:     len(g.values),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudyID != out[j].StudyID {
			return out[i].StudyID < out[j].StudyID
		}
		return out[i].Flag < out[j].Flag
	})
	return out
}

// MapPoint is one plotted sample.
type MapPoint struct {
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	PFAType      string  `json:"pfa_type"`
	LocationType string  `json:"location_type"`
	Value        float64 `json:"value"`
}

// MapView is the map payload: the points plus where to center the viewport.
type MapView struct {
	CenterLat float64    `json:"center_lat"`
	CenterLon float64    `json:"center_lon"`
	Points    []MapPoint `json:"points"`
}

// Default map center when no specific country is selected, roughly the
// middle of Europe.
const (
	defaultCenterLat = 46
	defaultCenterLon = 1
)

// MapPoints returns the filtered rows that have a value and both coordinates.
// When a specific country is selected the center is the median of the plotted
// coordinates, otherwise the European default.
func (t *Table) MapPoints(f Filter) MapView {
	var points []MapPoint
	var lats, lons []*float64
	for _, m := range t.filter(f) {
		if m.Value == nil || m.Lat == nil || m.Lon == nil {
			continue
		}
		points = append(points, MapPoint{
			Lat:          *m.Lat,
			Lon:          *m.Lon,
			PFAType:      m.PFAType,
			LocationType: m.LocationType,
			Value:        *m.Value,
		})
		lats = append(lats, m.Lat)
		lons = append(lons, m.Lon)
	}

	view := MapView{CenterLat: defaultCenterLat, CenterLon: defaultCenterLon, Points: points}
	if active(f.Country) && len(points) > 0 {
		view.CenterLat = median(lats)
		view.CenterLon = median(lons)
	}
	return view
}
