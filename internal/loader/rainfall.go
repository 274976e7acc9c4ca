package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
)

// Required forecast columns, located by header name. Extra columns are ignored.
const (
	colRegion   = "state_name"
	colDate     = "date"
	colRainfall = "predicted_rainfall"
)

const dateLayout = "2006-01-02"

// LoadRainfall parses the forecast CSV into harmonized rainfall records:
// rows are parsed, the J&K rename applied, then merged-UT rows split. The
// result is a pure function of the file contents; row order carries no
// meaning downstream. Any malformed row aborts the load with a ParseError.
func LoadRainfall(path string) ([]domain.RainfallRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open forecast file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, &domain.ParseError{File: path, Msg: "missing header row", Err: err}
	}

	idx, err := columnIndex(path, header)
	if err != nil {
		return nil, err
	}

	var records []domain.RainfallRecord
	for row := 2; ; row++ {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.ParseError{File: path, Row: row, Msg: "malformed CSV row", Err: err}
		}

		rec, err := parseRow(path, row, idx, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return domain.SplitMergedRegions(records), nil
}

// columnIndex maps the required column names to their positions in the header.
func columnIndex(path string, header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colRegion, colDate, colRainfall} {
		if _, ok := idx[required]; !ok {
			return nil, &domain.ParseError{File: path, Field: required, Msg: "required column missing"}
		}
	}
	return idx, nil
}

func parseRow(path string, row int, idx map[string]int, fields []string) (domain.RainfallRecord, error) {
	region := strings.TrimSpace(fields[idx[colRegion]])
	if region == "" {
		return domain.RainfallRecord{}, &domain.ParseError{
			File: path, Row: row, Field: colRegion, Msg: "empty region name",
		}
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(fields[idx[colDate]]))
	if err != nil {
		return domain.RainfallRecord{}, &domain.ParseError{
			File: path, Row: row, Field: colDate,
			Msg: fmt.Sprintf("cannot parse %q as a date", fields[idx[colDate]]), Err: err,
		}
	}

	rainfall, err := strconv.ParseFloat(strings.TrimSpace(fields[idx[colRainfall]]), 64)
	if err != nil {
		return domain.RainfallRecord{}, &domain.ParseError{
			File: path, Row: row, Field: colRainfall,
			Msg: fmt.Sprintf("cannot parse %q as a number", fields[idx[colRainfall]]), Err: err,
		}
	}
	if rainfall < 0 {
		return domain.RainfallRecord{}, &domain.ParseError{
			File: path, Row: row, Field: colRainfall, Msg: "rainfall must be non-negative",
		}
	}

	return domain.NewRainfallRecord(domain.NormalizeRegionName(region), date, rainfall), nil
}
