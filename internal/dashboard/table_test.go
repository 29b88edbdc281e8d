package dashboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/pfas-dashboard/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }

// testTable is a small fixture spanning two years, two countries, three
// substances, and both land/sea flags, with one null value and one row
// missing coordinates.
func testTable(t *testing.T) *Table {
	t.Helper()
	rows := []domain.Measurement{
		{
			StudyID: "s1", Year: 2019, Month: "June", Country: "France", City: "Paris",
			Substance: "PFOA", PFAType: domain.PFATypePerfluoroalkyl,
			LocationType: "Terrestrial", Flag: domain.FlagTerrestrial,
			Value: float64Ptr(10), Lat: float64Ptr(48.85), Lon: float64Ptr(2.35),
		},
		{
			StudyID: "s1", Year: 2019, Month: "June", Country: "France", City: "Paris",
			Substance: "GenX", PFAType: domain.PFATypePolyfluoroalkyl,
			LocationType: "Terrestrial", Flag: domain.FlagTerrestrial,
			Value: float64Ptr(2), Lat: float64Ptr(48.85), Lon: float64Ptr(2.35),
		},
		{
			StudyID: "s2", Year: 2019, Month: "Unknown", Country: "France", City: "Brest",
			Substance: "PFOS", PFAType: domain.PFATypePerfluoroalkyl,
			LocationType: "Oceanic", Flag: domain.FlagOceanic,
			Value: nil, Lat: float64Ptr(48.39), Lon: float64Ptr(-4.49),
		},
		{
			StudyID: "s3", Year: 2020, Month: "January", Country: "Spain", City: "Vigo",
			Substance: "PFOS", PFAType: domain.PFATypePerfluoroalkyl,
			LocationType: "Oceanic", Flag: domain.FlagOceanic,
			Value: float64Ptr(4), Lat: float64Ptr(42.24), Lon: float64Ptr(-8.72),
		},
		{
			StudyID: "s3", Year: 2020, Month: "January", Country: "Spain", City: "Vigo",
			Substance: "PFOA", PFAType: domain.PFATypePerfluoroalkyl,
			LocationType: "Oceanic", Flag: domain.FlagOceanic,
			Value: float64Ptr(6), Lat: nil, Lon: nil,
		},
	}
	return NewTable(rows, "run-1")
}

func TestFilterOptions(t *testing.T) {
	opts := testTable(t).FilterOptions()

	assert.Equal(t, []string{"2019", "2020", "All"}, opts.Years)
	assert.Equal(t, []string{"France", "Spain", "All"}, opts.Countries)
	assert.Equal(t, []string{
		domain.PFATypePerfluoroalkyl, domain.PFATypePolyfluoroalkyl, "All",
	}, opts.PFATypes)
	assert.Equal(t, []string{"Oceanic", "Terrestrial", "All"}, opts.LocationTypes)
}

func TestFilterMatching(t *testing.T) {
	tbl := testTable(t)

	t.Run("all sentinels pass the full table through", func(t *testing.T) {
		assert.Len(t, tbl.filter(Filter{Year: All, Country: All, PFAType: All, LocationType: All}), 5)
		assert.Len(t, tbl.filter(Filter{}), 5, "missing params behave as All")
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		got := tbl.filter(Filter{Year: "2019", Country: "France", LocationType: "Terrestrial"})
		require.Len(t, got, 2)
		for _, m := range got {
			assert.Equal(t, "s1", m.StudyID)
		}
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		assert.Empty(t, tbl.filter(Filter{Year: "2019", Country: "Spain"}))
	})

	t.Run("location scope ignores type filters", func(t *testing.T) {
		got := tbl.filterLocation(Filter{Country: "Spain", PFAType: "nonexistent"})
		assert.Len(t, got, 2)
	})
}

func TestHeadline(t *testing.T) {
	tbl := testTable(t)

	t.Run("full table", func(t *testing.T) {
		h := tbl.Headline(Filter{})
		assert.Equal(t, 3, h.UniqueSubstances)
		assert.Equal(t, 5, h.Samples)
		assert.Equal(t, 3, h.Studies)
		assert.InDelta(t, 5.0, h.MedianValue, 1e-9, "median of 10,2,4,6 ignoring the null")
		assert.InDelta(t, 40.0, h.PctTerrestrial, 1e-9)
	})

	t.Run("percentage rounded to three decimals", func(t *testing.T) {
		rows := []domain.Measurement{
			{StudyID: "a", Flag: domain.FlagTerrestrial},
			{StudyID: "b", Flag: domain.FlagOceanic},
			{StudyID: "c", Flag: domain.FlagOceanic},
		}
		h := NewTable(rows, "v").Headline(Filter{})
		assert.Equal(t, 33.333, h.PctTerrestrial)
	})

	t.Run("all values null yields zero median", func(t *testing.T) {
		h := tbl.Headline(Filter{Year: "2019", LocationType: "Oceanic"})
		assert.Equal(t, 1, h.Samples)
		assert.Zero(t, h.MedianValue)
	})

	t.Run("empty selection yields zero headline", func(t *testing.T) {
		assert.Equal(t, Headline{}, tbl.Headline(Filter{Country: "Norway"}))
	})
}

func TestPFATypeBreakdown(t *testing.T) {
	tbl := testTable(t)

	t.Run("count skips null values", func(t *testing.T) {
		got := tbl.PFATypeBreakdown(Filter{}, AggCount)
		want := []TypeAggregate{
			{PFAType: domain.PFATypePerfluoroalkyl, Value: 3},
			{PFAType: domain.PFATypePolyfluoroalkyl, Value: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sum", func(t *testing.T) {
		got := tbl.PFATypeBreakdown(Filter{}, AggSum)
		want := []TypeAggregate{
			{PFAType: domain.PFATypePerfluoroalkyl, Value: 20},
			{PFAType: domain.PFATypePolyfluoroalkyl, Value: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLocationTypeBreakdown(t *testing.T) {
	got := testTable(t).LocationTypeBreakdown(Filter{Country: "France", PFAType: "ignored"}, AggSum)
	want := []LocationTypeAggregate{
		{PFAType: domain.PFATypePerfluoroalkyl, LocationType: "Oceanic", Value: 0},
		{PFAType: domain.PFATypePerfluoroalkyl, LocationType: "Terrestrial", Value: 10},
		{PFAType: domain.PFATypePolyfluoroalkyl, LocationType: "Terrestrial", Value: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestTopSubstances(t *testing.T) {
	tbl := testTable(t)

	t.Run("ranked descending by sum", func(t *testing.T) {
		got := tbl.TopSubstances(Filter{}, AggSum, 2)
		want := []SubstanceAggregate{
			{Substance: "PFOA", PFAType: domain.PFATypePerfluoroalkyl, Value: 16},
			{Substance: "PFOS", PFAType: domain.PFATypePerfluoroalkyl, Value: 4},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ranking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("boundary ties are kept", func(t *testing.T) {
		rows := []domain.Measurement{
			{Substance: "A", Value: float64Ptr(9)},
			{Substance: "B", Value: float64Ptr(5)},
			{Substance: "C", Value: float64Ptr(5)},
			{Substance: "D", Value: float64Ptr(1)},
		}
		got := NewTable(rows, "v").TopSubstances(Filter{}, AggSum, 2)
		require.Len(t, got, 3, "C ties with B at the cut-off")
		assert.Equal(t, "A", got[0].Substance)
	})

	t.Run("n is clamped", func(t *testing.T) {
		got := tbl.TopSubstances(Filter{}, AggCount, 50)
		assert.LessOrEqual(t, len(got), MaxTopN)
		got = tbl.TopSubstances(Filter{}, AggCount, 0)
		assert.LessOrEqual(t, len(got), DefaultTopN)
	})
}

func TestSeries(t *testing.T) {
	tbl := testTable(t)

	t.Run("by year ascending", func(t *testing.T) {
		got, err := tbl.Series(Filter{}, SeriesByYear, AggCount)
		require.NoError(t, err)
		want := []SeriesPoint{
			{Bucket: "2019", PFAType: domain.PFATypePerfluoroalkyl, Value: 1},
			{Bucket: "2019", PFAType: domain.PFATypePolyfluoroalkyl, Value: 1},
			{Bucket: "2020", PFAType: domain.PFATypePerfluoroalkyl, Value: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("months in calendar order with Unknown last", func(t *testing.T) {
		got, err := tbl.Series(Filter{}, SeriesByMonth, AggSum)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "January", got[0].Bucket)
		assert.Equal(t, "June", got[1].Bucket)
		assert.Equal(t, "Unknown", got[3].Bucket)
	})

	t.Run("unknown bucket rejected", func(t *testing.T) {
		_, err := tbl.Series(Filter{}, "week", AggCount)
		assert.Error(t, err)
	})
}

func TestTopCities(t *testing.T) {
	got := testTable(t).TopCities(Filter{Country: "France"}, AggSum)
	want := []CityAggregate{
		{City: "Paris", Value: 12},
		{City: "Brest", Value: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cities mismatch (-want +got):\n%s", diff)
	}
}

func TestStudyScatter(t *testing.T) {
	got := testTable(t).StudyScatter(Filter{})
	want := []StudyPoint{
		{StudyID: "s1", Flag: domain.FlagTerrestrial, Substances: 2, MedianValue: 6, Samples: 2},
		{StudyID: "s2", Flag: domain.FlagOceanic, Substances: 1, MedianValue: 0, Samples: 1},
		{StudyID: "s3", Flag: domain.FlagOceanic, Substances: 2, MedianValue: 5, Samples: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scatter mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPoints(t *testing.T) {
	tbl := testTable(t)

	t.Run("drops rows missing value or coordinates", func(t *testing.T) {
		view := tbl.MapPoints(Filter{})
		assert.Len(t, view.Points, 3, "null value and nil coords excluded")
	})

	t.Run("default center without a country filter", func(t *testing.T) {
		view := tbl.MapPoints(Filter{})
		assert.Equal(t, float64(46), view.CenterLat)
		assert.Equal(t, float64(1), view.CenterLon)
	})

	t.Run("median center for a specific country", func(t *testing.T) {
		view := tbl.MapPoints(Filter{Country: "France"})
		require.Len(t, view.Points, 2)
		assert.InDelta(t, 48.85, view.CenterLat, 1e-9)
		assert.InDelta(t, 2.35, view.CenterLon, 1e-9)
	})

	t.Run("empty selection keeps default center", func(t *testing.T) {
		view := tbl.MapPoints(Filter{Country: "Norway"})
		assert.Empty(t, view.Points)
		assert.Equal(t, float64(46), view.CenterLat)
	})
}
