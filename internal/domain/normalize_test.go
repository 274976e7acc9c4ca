package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRegionName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"J&K capitalization fixed", "Jammu And Kashmir", "Jammu and Kashmir"},
		{"already harmonized", "Jammu and Kashmir", "Jammu and Kashmir"},
		{"ordinary state untouched", "Kerala", "Kerala"},
		{"merged UT untouched by rename", MergedUT, MergedUT},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRegionName(tt.input))
		})
	}
}

func TestSplitMergedRegions(t *testing.T) {
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("merged row expands into both constituents", func(t *testing.T) {
		in := []RainfallRecord{NewRainfallRecord(MergedUT, feb, 20)}
		out := SplitMergedRegions(in)

		require.Len(t, out, 2)
		assert.Equal(t, "Dadra and Nagar Haveli", out[0].Region)
		assert.Equal(t, "Daman and Diu", out[1].Region)
		for _, rec := range out {
			assert.Equal(t, feb, rec.Date)
			assert.Equal(t, 20.0, rec.Rainfall)
			assert.Equal(t, 2025, rec.Year)
			assert.Equal(t, "Feb", rec.MonthAbbrev)
		}
	})

	t.Run("no merged row survives", func(t *testing.T) {
		in := []RainfallRecord{
			NewRainfallRecord("Kerala", feb, 5),
			NewRainfallRecord(MergedUT, feb, 20),
			NewRainfallRecord(MergedUT, feb.AddDate(0, 0, 1), 7),
		}
		out := SplitMergedRegions(in)

		require.Len(t, out, 5)
		for _, rec := range out {
			assert.NotEqual(t, MergedUT, rec.Region)
		}
	})

	t.Run("split totals match the merged total per date", func(t *testing.T) {
		in := []RainfallRecord{
			NewRainfallRecord(MergedUT, feb, 20),
			NewRainfallRecord(MergedUT, feb.AddDate(0, 1, 0), 13.5),
		}
		out := SplitMergedRegions(in)

		perDate := make(map[time.Time]map[string]float64)
		for _, rec := range out {
			if perDate[rec.Date] == nil {
				perDate[rec.Date] = make(map[string]float64)
			}
			perDate[rec.Date][rec.Region] += rec.Rainfall
		}
		for _, merged := range in {
			byRegion := perDate[merged.Date]
			require.Len(t, byRegion, 2)
			assert.Equal(t, merged.Rainfall, byRegion["Dadra and Nagar Haveli"])
			assert.Equal(t, merged.Rainfall, byRegion["Daman and Diu"])
		}
	})

	t.Run("other regions pass through unchanged", func(t *testing.T) {
		in := []RainfallRecord{NewRainfallRecord("Goa", feb, 3)}
		out := SplitMergedRegions(in)
		assert.Equal(t, in, out)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitMergedRegions(nil))
	})
}

func TestIsExcludedBoundary(t *testing.T) {
	assert.True(t, IsExcludedBoundary("Andaman and Nicobar Islands"))
	assert.True(t, IsExcludedBoundary("Lakshadweep"))
	assert.False(t, IsExcludedBoundary("Kerala"))
	assert.False(t, IsExcludedBoundary(RegionLadakh))
}

func TestApplyLadakhProxy(t *testing.T) {
	t.Run("copies J&K total when Ladakh absent", func(t *testing.T) {
		totals := map[string]float64{RegionJammuKashmir: 50}
		ApplyLadakhProxy(totals)
		assert.Equal(t, 50.0, totals[RegionLadakh])
	})

	t.Run("leaves real Ladakh total intact", func(t *testing.T) {
		totals := map[string]float64{RegionJammuKashmir: 50, RegionLadakh: 12}
		ApplyLadakhProxy(totals)
		assert.Equal(t, 12.0, totals[RegionLadakh])
	})

	t.Run("no J&K data means no proxy", func(t *testing.T) {
		totals := map[string]float64{"Kerala": 300}
		ApplyLadakhProxy(totals)
		_, ok := totals[RegionLadakh]
		assert.False(t, ok)
	})
}

func TestMonthAbbrev(t *testing.T) {
	assert.Equal(t, "Jan", MonthAbbrev(1))
	assert.Equal(t, "Dec", MonthAbbrev(12))
	assert.Equal(t, "", MonthAbbrev(0))
	assert.Equal(t, "", MonthAbbrev(13))
}

func TestMonthOrder(t *testing.T) {
	order := MonthOrder()
	require.Len(t, order, 12)
	assert.Equal(t, "Jan", order[0])
	assert.Equal(t, "Dec", order[11])

	// Callers get their own copy.
	order[0] = "mutated"
	assert.Equal(t, "Jan", MonthOrder()[0])
}
