// Package aggregate derives the dashboard views from a loaded snapshot.
// Every operation is a pure function of (snapshot, selection): calling one
// twice with the same arguments yields identical results, and nothing in the
// snapshot is mutated.
package aggregate

import (
	"strconv"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
)

// RegionTotal is one choropleth row. Total is nil for boundary regions with
// no data in the selected year; callers must distinguish "no data" from a
// genuine zero-rainfall total.
type RegionTotal struct {
	Region string   `json:"region"`
	Total  *float64 `json:"total"`
}

// MonthTotal is one point on the monthly trend line.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// YearTotal is one point on the multi-year trend line.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// Comparison is the year-over-year metric block. Diff and PctChange are nil
// when the previous year has no data, so callers can render a "no previous
// year" state instead of dividing by zero.
type Comparison struct {
	Year          int      `json:"year"`
	CurrentTotal  float64  `json:"current_total"`
	PreviousYear  int      `json:"previous_year"`
	PreviousTotal float64  `json:"previous_total"`
	Diff          *float64 `json:"diff"`
	PctChange     *float64 `json:"pct_change"`
}

// YearlyRegionTotals sums the selected year's rainfall per region, applies
// the Ladakh proxy for that year, and left-joins against the displayable
// boundary regions. The result has exactly one row per boundary region,
// sorted by name; regions without data carry a nil total.
func YearlyRegionTotals(snap *domain.Snapshot, year int) ([]RegionTotal, error) {
	if err := validateYear(snap, year); err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, rec := range snap.Records {
		if rec.Year == year {
			totals[rec.Region] += rec.Rainfall
		}
	}
	domain.ApplyLadakhProxy(totals)

	regions := snap.BoundaryRegions()
	out := make([]RegionTotal, 0, len(regions))
	for _, region := range regions {
		row := RegionTotal{Region: region}
		if total, ok := totals[region]; ok {
			t := total
			row.Total = &t
		}
		out = append(out, row)
	}
	return out, nil
}

// MonthlySeries sums rainfall per month for one (region, year). When the
// pair has at least one record the result holds all 12 months in calendar
// order, with 0 for silent months; a pair with no records at all yields an
// empty series, signaling "no data" to the caller.
func MonthlySeries(snap *domain.Snapshot, region string, year int) ([]MonthTotal, error) {
	if err := validateRegion(snap, region); err != nil {
		return nil, err
	}
	if err := validateYear(snap, year); err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	found := false
	for _, rec := range snap.Records {
		if rec.Region == region && rec.Year == year {
			totals[rec.MonthAbbrev] += rec.Rainfall
			found = true
		}
	}
	if !found {
		return nil, nil
	}

	out := make([]MonthTotal, 0, 12)
	for _, month := range domain.MonthOrder() {
		out = append(out, MonthTotal{Month: month, Total: totals[month]})
	}
	return out, nil
}

// YearlySeries sums rainfall per year for one region, ascending, with one
// entry per year the region has data for.
func YearlySeries(snap *domain.Snapshot, region string) ([]YearTotal, error) {
	if err := validateRegion(snap, region); err != nil {
		return nil, err
	}

	totals := make(map[int]float64)
	for _, rec := range snap.Records {
		if rec.Region == region {
			totals[rec.Year] += rec.Rainfall
		}
	}

	out := make([]YearTotal, 0, len(totals))
	for _, year := range snap.Years() {
		if total, ok := totals[year]; ok {
			out = append(out, YearTotal{Year: year, Total: total})
		}
	}
	return out, nil
}

// YearOverYearComparison totals one region's rainfall for the selected year
// and the year before it. Years without rows total 0 here; only a positive
// previous total produces the derived diff and percent change.
func YearOverYearComparison(snap *domain.Snapshot, region string, year int) (Comparison, error) {
	if err := validateRegion(snap, region); err != nil {
		return Comparison{}, err
	}
	if err := validateYear(snap, year); err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{Year: year, PreviousYear: year - 1}
	for _, rec := range snap.Records {
		if rec.Region != region {
			continue
		}
		switch rec.Year {
		case year:
			cmp.CurrentTotal += rec.Rainfall
		case year - 1:
			cmp.PreviousTotal += rec.Rainfall
		}
	}

	if cmp.PreviousTotal > 0 {
		diff := cmp.CurrentTotal - cmp.PreviousTotal
		pct := diff / cmp.PreviousTotal * 100
		cmp.Diff = &diff
		cmp.PctChange = &pct
	}
	return cmp, nil
}

func validateYear(snap *domain.Snapshot, year int) error {
	if !snap.HasYear(year) {
		return &domain.SelectionError{Kind: "year", Value: strconv.Itoa(year)}
	}
	return nil
}

func validateRegion(snap *domain.Snapshot, region string) error {
	if !snap.HasRegion(region) {
		return &domain.SelectionError{Kind: "region", Value: region}
	}
	return nil
}
