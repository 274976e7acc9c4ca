// Command validate performs offline integrity checks on a forecast CSV and
// boundary GeoJSON pair before they are deployed: both files parse, the
// merged-UT expansion is exhaustive and value-preserving, forecast regions
// harmonize with boundary regions, and every region covers every observed
// year. It prints a PASS/FAIL line per phase and exits nonzero on failure.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -forecast data/forecast_results.csv \
//	  -boundary data/india_states.geojson
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
	"github.com/monsoonviz/rainfall-dashboard/internal/loader"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	forecastPath := flag.String("forecast", "", "path to the forecast CSV")
	boundaryPath := flag.String("boundary", "", "path to the boundary GeoJSON")
	flag.Parse()

	if *forecastPath == "" || *boundaryPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*forecastPath, *boundaryPath); code != 0 {
		os.Exit(code)
	}
}

func run(forecastPath, boundaryPath string) int {
	fmt.Println("=== Rainfall Input Integrity Validation ===")
	fmt.Println()

	records, err := loader.LoadRainfall(forecastPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load forecast: %v\n", err)
		return 1
	}
	fmt.Printf("forecast: %d records\n", len(records))

	boundaries, err := loader.LoadBoundaries(boundaryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load boundaries: %v\n", err)
		return 1
	}
	fmt.Printf("boundary: %d displayable features\n", len(boundaries.Features))

	rawMergedTotals, err := rawMergedUTTotals(forecastPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: re-read forecast: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateMergedExpansion(records, rawMergedTotals),
		validateHarmonization(records, boundaries),
		validateYearCoverage(records),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-34s %s\n", p.name, status)
		for _, e := range p.errors {
			fmt.Printf("    - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	fmt.Println()
	fmt.Println("all phases passed")
	return 0
}

// rawMergedUTTotals re-reads the CSV without harmonization and sums the
// merged-UT rows per date, keyed by the date string.
func rawMergedUTTotals(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	totals := make(map[string]float64)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if strings.TrimSpace(row[idx["state_name"]]) != domain.MergedUT {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx["predicted_rainfall"]]), 64)
		if err != nil {
			return nil, err
		}
		totals[strings.TrimSpace(row[idx["date"]])] += v
	}
	return totals, nil
}

// validateMergedExpansion checks that no merged-UT record survived the load
// and that each constituent region's per-date totals equal the raw merged
// totals.
func validateMergedExpansion(records []domain.RainfallRecord, rawTotals map[string]float64) *phase {
	p := &phase{name: "merged-UT expansion"}

	splitTotals := map[string]map[string]float64{
		"Dadra and Nagar Haveli": {},
		"Daman and Diu":          {},
	}
	for _, rec := range records {
		if rec.Region == domain.MergedUT {
			p.errorf("merged-UT record survived the split: %s", rec.Date.Format("2006-01-02"))
			continue
		}
		if perDate, ok := splitTotals[rec.Region]; ok {
			perDate[rec.Date.Format("2006-01-02")] += rec.Rainfall
		}
	}

	for region, perDate := range splitTotals {
		for date, want := range rawTotals {
			if got, ok := perDate[date]; !ok {
				p.errorf("%s missing split row for %s", region, date)
			} else if math.Abs(got-want) > 1e-9 {
				p.errorf("%s total for %s is %.4f, merged row had %.4f", region, date, got, want)
			}
		}
	}
	return p
}

// validateHarmonization checks that every forecast region can be drawn: each
// record region must name a displayable boundary feature.
func validateHarmonization(records []domain.RainfallRecord, boundaries domain.BoundaryCollection) *phase {
	p := &phase{name: "region harmonization"}

	boundarySet := make(map[string]struct{})
	for _, region := range boundaries.Regions() {
		boundarySet[region] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, rec := range records {
		if _, done := seen[rec.Region]; done {
			continue
		}
		seen[rec.Region] = struct{}{}
		if _, ok := boundarySet[rec.Region]; !ok {
			p.errorf("forecast region %q has no boundary feature", rec.Region)
		}
	}
	return p
}

// validateYearCoverage checks that every observed region has data in every
// observed year, so the dashboard never mixes regions with different year
// ranges.
func validateYearCoverage(records []domain.RainfallRecord) *phase {
	p := &phase{name: "year coverage"}

	snap := domain.NewSnapshot(records, domain.BoundaryCollection{})
	covered := make(map[string]map[int]struct{})
	for _, rec := range records {
		if covered[rec.Region] == nil {
			covered[rec.Region] = make(map[int]struct{})
		}
		covered[rec.Region][rec.Year] = struct{}{}
	}

	for _, region := range snap.Regions() {
		for _, year := range snap.Years() {
			if _, ok := covered[region][year]; !ok {
				p.errorf("region %q has no data for %d", region, year)
			}
		}
	}
	return p
}
