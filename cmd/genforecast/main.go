// Command genforecast writes deterministic mock input files for local
// development and demos: a forecast CSV in the raw (pre-harmonization)
// upstream format and a matching boundary GeoJSON with placeholder
// geometry. Region names intentionally include the raw "Jammu And Kashmir"
// spelling, the merged union territory, and the excluded islands so the
// loaders' harmonization rules all fire on generated data.
//
// Usage:
//
//	go run ./cmd/genforecast \
//	  -out-csv data/forecast_results.csv \
//	  -out-geojson data/india_states.geojson \
//	  -start-year 2024 -end-year 2030 -seed 1
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
)

// forecastRegions mirrors the raw upstream spellings, before the loader's
// rename and split rules run. Ladakh is deliberately absent: the real
// forecast has no rows for it, which is what the proxy rule exists for.
var forecastRegions = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jammu And Kashmir",
	"Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
	"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
	domain.MergedUT,
	"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"NCT of Delhi", "Puducherry", "Chandigarh",
}

// boundaryRegions uses the harmonized spellings the boundary file carries,
// including regions the forecast lacks and the islands the loader drops.
var boundaryRegions = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jammu and Kashmir",
	"Jharkhand", "Karnataka", "Kerala", "Ladakh", "Madhya Pradesh",
	"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha",
	"Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
	"Dadra and Nagar Haveli", "Daman and Diu",
	"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"NCT of Delhi", "Puducherry", "Chandigarh",
	"Andaman and Nicobar Islands", "Lakshadweep",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outCSV := flag.String("out-csv", "", "output path for the forecast CSV")
	outGeoJSON := flag.String("out-geojson", "", "output path for the boundary GeoJSON")
	startYear := flag.Int("start-year", 2024, "first forecast year")
	endYear := flag.Int("end-year", 2030, "last forecast year")
	seed := flag.Int64("seed", 1, "RNG seed for reproducible output")
	flag.Parse()

	if *outCSV == "" || *outGeoJSON == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -out-csv, -out-geojson")
	}
	if *endYear < *startYear {
		return fmt.Errorf("-end-year %d precedes -start-year %d", *endYear, *startYear)
	}

	rng := rand.New(rand.NewSource(*seed))

	rows, err := writeForecastCSV(*outCSV, *startYear, *endYear, rng)
	if err != nil {
		return fmt.Errorf("writing forecast CSV: %w", err)
	}
	log.Printf("wrote %s: %d rows, %d regions, years %d-%d",
		*outCSV, rows, len(forecastRegions), *startYear, *endYear)

	if err := writeBoundaryGeoJSON(*outGeoJSON); err != nil {
		return fmt.Errorf("writing boundary GeoJSON: %w", err)
	}
	log.Printf("wrote %s: %d features", *outGeoJSON, len(boundaryRegions))
	return nil
}

// writeForecastCSV emits one row per (region, month). Rainfall follows a
// rough monsoon curve peaking in July, scaled by a per-region wetness factor.
func writeForecastCSV(path string, startYear, endYear int, rng *rand.Rand) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"state_name", "date", "predicted_rainfall"}); err != nil {
		return 0, err
	}

	rows := 0
	for _, region := range forecastRegions {
		wetness := 0.3 + rng.Float64()*1.7
		for year := startYear; year <= endYear; year++ {
			for month := 1; month <= 12; month++ {
				date := time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
				rainfall := monthlyRainfall(month, wetness, rng)
				record := []string{
					region,
					date.Format("2006-01-02"),
					fmt.Sprintf("%.1f", rainfall),
				}
				if err := w.Write(record); err != nil {
					return rows, err
				}
				rows++
			}
		}
	}

	w.Flush()
	return rows, w.Error()
}

// monthlyRainfall peaks around July and bottoms out in winter, with noise.
func monthlyRainfall(month int, wetness float64, rng *rand.Rand) float64 {
	seasonal := math.Sin(float64(month-4) / 12.0 * 2 * math.Pi)
	base := 40 + 260*math.Max(0, seasonal)
	noise := rng.Float64() * 30
	return math.Max(0, (base+noise)*wetness)
}

type geoFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// writeBoundaryGeoJSON emits a FeatureCollection with one placeholder square
// per region. Real deployments point the service at an actual boundary file;
// the loader treats geometry as opaque either way.
func writeBoundaryGeoJSON(path string) error {
	coll := geoCollection{Type: "FeatureCollection"}
	for i, region := range boundaryRegions {
		lon := 68.0 + float64(i%6)*4
		lat := 8.0 + float64(i/6)*4
		geometry := fmt.Sprintf(
			`{"type":"Polygon","coordinates":[[[%.1f,%.1f],[%.1f,%.1f],[%.1f,%.1f],[%.1f,%.1f],[%.1f,%.1f]]]}`,
			lon, lat, lon+3, lat, lon+3, lat+3, lon, lat+3, lon, lat,
		)
		coll.Features = append(coll.Features, geoFeature{
			Type:       "Feature",
			Properties: map[string]any{"st_nm": region},
			Geometry:   json.RawMessage(geometry),
		})
	}

	data, err := json.MarshalIndent(coll, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
