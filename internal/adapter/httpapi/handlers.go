package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/couchcryptid/pfas-dashboard/internal/dashboard"
)

// filterFromQuery reads the four filter parameters. A missing parameter is
// the All sentinel.
func filterFromQuery(c *gin.Context) dashboard.Filter {
	return dashboard.Filter{
		Year:         c.DefaultQuery("year", dashboard.All),
		Country:      c.DefaultQuery("country", dashboard.All),
		PFAType:      c.DefaultQuery("pfa_type", dashboard.All),
		LocationType: c.DefaultQuery("location_type", dashboard.All),
	}
}

func filterParams(f dashboard.Filter) map[string]string {
	return map[string]string{
		"year":          f.Year,
		"country":       f.Country,
		"pfa_type":      f.PFAType,
		"location_type": f.LocationType,
	}
}

func aggFromQuery(c *gin.Context) (dashboard.Agg, bool) {
	agg, err := dashboard.ParseAgg(c.Query("agg"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return agg, true
}

// GET /api/v1/filters
func (s *Server) handleFilters(c *gin.Context) {
	s.serve(c, "filters", nil, func(tbl *dashboard.Table) (any, int) {
		return tbl.FilterOptions(), tbl.Len()
	})
}

// GET /api/v1/headline
func (s *Server) handleHeadline(c *gin.Context) {
	f := filterFromQuery(c)
	s.serve(c, "headline", filterParams(f), func(tbl *dashboard.Table) (any, int) {
		h := tbl.Headline(f)
		return h, h.Samples
	})
}

// GET /api/v1/breakdown/pfa-type
func (s *Server) handlePFATypeBreakdown(c *gin.Context) {
	f := filterFromQuery(c)
	agg, ok := aggFromQuery(c)
	if !ok {
		return
	}
	params := filterParams(f)
	params["agg"] = string(agg)
	s.serve(c, "breakdown/pfa-type", params, func(tbl *dashboard.Table) (any, int) {
		groups := tbl.PFATypeBreakdown(f, agg)
		return groups, len(groups)
	})
}

// GET /api/v1/breakdown/location-type
func (s *Server) handleLocationTypeBreakdown(c *gin.Context) {
	f := filterFromQuery(c)
	agg, ok := aggFromQuery(c)
	if !ok {
		return
	}
	params := map[string]string{
		"year":    f.Year,
		"country": f.Country,
		"agg":     string(agg),
	}
	s.serve(c, "breakdown/location-type", params, func(tbl *dashboard.Table) (any, int) {
		groups := tbl.LocationTypeBreakdown(f, agg)
		return groups, len(groups)
	})
}

// GET /api/v1/substances/top
func (s *Server) handleTopSubstances(c *gin.Context) {
	f := filterFromQuery(c)
	agg, ok := aggFromQuery(c)
	if !ok {
		return
	}
	n := dashboard.DefaultTopN
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		n = parsed
	}
	params := filterParams(f)
	params["agg"] = string(agg)
	params["n"] = strconv.Itoa(n)
	s.serve(c, "substances/top", params, func(tbl *dashboard.Table) (any, int) {
		ranked := tbl.TopSubstances(f, agg, n)
		return ranked, len(ranked)
	})
}

// GET /api/v1/series
func (s *Server) handleSeries(c *gin.Context) {
	f := filterFromQuery(c)
	agg, ok := aggFromQuery(c)
	if !ok {
		return
	}
	by := c.DefaultQuery("by", dashboard.SeriesByYear)
	if by != dashboard.SeriesByYear && by != dashboard.SeriesByMonth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be year or month"})
		return
	}
	params := filterParams(f)
	params["agg"] = string(agg)
	params["by"] = by
	s.serve(c, "series", params, func(tbl *dashboard.Table) (any, int) {
		points, err := tbl.Series(f, by, agg)
		if err != nil {
			return nil, 0
		}
		return points, len(points)
	})
}

// GET /api/v1/cities/top
func (s *Server) handleTopCities(c *gin.Context) {
	f := filterFromQuery(c)
	agg, ok := aggFromQuery(c)
	if !ok {
		return
	}
	params := map[string]string{
		"year":    f.Year,
		"country": f.Country,
		"agg":     string(agg),
	}
	s.serve(c, "cities/top", params, func(tbl *dashboard.Table) (any, int) {
		ranked := tbl.TopCities(f, agg)
		return ranked, len(ranked)
	})
}

// GET /api/v1/studies/scatter
func (s *Server) handleStudyScatter(c *gin.Context) {
	f := filterFromQuery(c)
	s.serve(c, "studies/scatter", filterParams(f), func(tbl *dashboard.Table) (any, int) {
		points := tbl.StudyScatter(f)
		return points, len(points)
	})
}

// GET /api/v1/map/points
func (s *Server) handleMapPoints(c *gin.Context) {
	f := filterFromQuery(c)
	s.serve(c, "map/points", filterParams(f), func(tbl *dashboard.Table) (any, int) {
		view := tbl.MapPoints(f)
		return view, len(view.Points)
	})
}
