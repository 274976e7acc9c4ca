package domain

import (
	"encoding/json"
	"time"
)

// RainfallRecord is one forecast row after parsing and name harmonization.
type RainfallRecord struct {
	Region   string    `json:"region"`
	Date     time.Time `json:"date"`
	Rainfall float64   `json:"rainfall_mm"`

	// Derived from Date at load time.
	Year        int    `json:"year"`
	MonthNumber int    `json:"month"`
	MonthAbbrev string `json:"month_abbrev"`
}

// NewRainfallRecord builds a record with its derived calendar fields.
// The date is treated as date-only in UTC.
func NewRainfallRecord(region string, date time.Time, rainfall float64) RainfallRecord {
	d := date.UTC()
	return RainfallRecord{
		Region:      region,
		Date:        time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Rainfall:    rainfall,
		Year:        d.Year(),
		MonthNumber: int(d.Month()),
		MonthAbbrev: MonthAbbrev(int(d.Month())),
	}
}

// BoundaryFeature is one region outline from the boundary collection.
// Properties and Geometry are opaque payloads preserved byte-for-byte so the
// presentation layer receives exactly what the boundary file contained.
type BoundaryFeature struct {
	Type       string          `json:"type"`
	Properties json.RawMessage `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`

	// Region is extracted from the "st_nm" property at load time.
	Region string `json:"-"`
}

// BoundaryCollection is the displayable subset of the boundary file.
type BoundaryCollection struct {
	Type     string            `json:"type"`
	Features []BoundaryFeature `json:"features"`
}

// Regions returns the region name of every feature, in file order.
func (c BoundaryCollection) Regions() []string {
	names := make([]string, 0, len(c.Features))
	for _, f := range c.Features {
		names = append(names, f.Region)
	}
	return names
}

// monthAbbrevs holds the canonical three-letter labels, Jan..Dec.
var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthAbbrev returns the three-letter label for a 1-based month number,
// or "" when the number is out of range.
func MonthAbbrev(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthAbbrevs[month-1]
}

// MonthOrder returns the canonical calendar ordering Jan..Dec.
func MonthOrder() []string {
	order := make([]string, len(monthAbbrevs))
	copy(order, monthAbbrevs[:])
	return order
}
