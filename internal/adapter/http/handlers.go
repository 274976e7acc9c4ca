package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monsoonviz/rainfall-dashboard/internal/aggregate"
	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
)

// handleYears returns the observed forecast years, ascending.
// GET /api/v1/years
func (s *Server) handleYears(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	years := snap.Years()
	c.JSON(http.StatusOK, gin.H{"data": years, "meta": gin.H{"count": len(years)}})
}

// handleRegions returns the observed region names, sorted.
// GET /api/v1/regions
func (s *Server) handleRegions(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	regions := snap.Regions()
	c.JSON(http.StatusOK, gin.H{"data": regions, "meta": gin.H{"count": len(regions)}})
}

// handleBoundaries returns the displayable boundary collection verbatim.
// GET /api/v1/boundaries
func (s *Server) handleBoundaries(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snap.Boundaries)
}

// handleMap returns per-region yearly totals for the choropleth.
// GET /api/v1/map/:year
func (s *Server) handleMap(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	year, ok := s.yearParam(c, c.Param("year"))
	if !ok {
		return
	}

	defer s.observe("map", time.Now())
	rows, err := aggregate.YearlyRegionTotals(snap, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": rows,
		"meta": gin.H{"year": year, "count": len(rows)},
	})
}

// handleMonthly returns the Jan..Dec series for one region and year.
// GET /api/v1/regions/:region/monthly?year=Y
func (s *Server) handleMonthly(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	region := c.Param("region")
	year, ok := s.yearParam(c, c.Query("year"))
	if !ok {
		return
	}

	defer s.observe("monthly", time.Now())
	series, err := aggregate.MonthlySeries(snap, region, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": series,
		"meta": gin.H{"region": region, "year": year, "no_data": len(series) == 0},
	})
}

// handleYearly returns one region's multi-year totals.
// GET /api/v1/regions/:region/yearly
func (s *Server) handleYearly(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	region := c.Param("region")

	defer s.observe("yearly", time.Now())
	series, err := aggregate.YearlySeries(snap, region)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": series,
		"meta": gin.H{"region": region, "count": len(series)},
	})
}

// handleComparison returns the year-over-year metric block.
// GET /api/v1/regions/:region/comparison?year=Y
func (s *Server) handleComparison(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	region := c.Param("region")
	year, ok := s.yearParam(c, c.Query("year"))
	if !ok {
		return
	}

	defer s.observe("comparison", time.Now())
	cmp, err := aggregate.YearOverYearComparison(snap, region, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cmp, "meta": gin.H{"region": region, "year": year}})
}

// handleDashboard returns everything one selection change needs in a single
// payload: map rows, monthly series, yearly series, and the comparison.
// GET /api/v1/dashboard?year=Y&region=R
func (s *Server) handleDashboard(c *gin.Context) {
	snap, ok := s.snapshot(c)
	if !ok {
		return
	}
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}
	year, ok := s.yearParam(c, c.Query("year"))
	if !ok {
		return
	}

	defer s.observe("dashboard", time.Now())

	mapRows, err := aggregate.YearlyRegionTotals(snap, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}
	monthly, err := aggregate.MonthlySeries(snap, region, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}
	yearly, err := aggregate.YearlySeries(snap, region)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}
	cmp, err := aggregate.YearOverYearComparison(snap, region, year)
	if err != nil {
		s.renderAggregateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"map":        mapRows,
			"monthly":    monthly,
			"yearly":     yearly,
			"comparison": cmp,
		},
		"meta": gin.H{"region": region, "year": year, "no_monthly_data": len(monthly) == 0},
	})
}

// snapshot fetches the current snapshot or answers 503 when nothing has
// been loaded yet.
func (s *Server) snapshot(c *gin.Context) (*domain.Snapshot, bool) {
	snap := s.provider.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
		return nil, false
	}
	return snap, true
}

// yearParam parses a year value or answers 400.
func (s *Server) yearParam(c *gin.Context, raw string) (int, bool) {
	year, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return 0, false
	}
	return year, true
}

// renderAggregateError maps SelectionError to 400 and everything else to 500.
func (s *Server) renderAggregateError(c *gin.Context, err error) {
	var selErr *domain.SelectionError
	if errors.As(err, &selErr) {
		s.metrics.SelectionErrors.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": selErr.Error()})
		return
	}
	s.logger.Error("aggregation failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func (s *Server) observe(operation string, start time.Time) {
	s.metrics.AggregationRequests.WithLabelValues(operation).Inc()
	s.metrics.AggregationDuration.Observe(time.Since(start).Seconds())
}
