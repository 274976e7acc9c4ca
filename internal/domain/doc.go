// Package domain models forecasted rainfall data for Indian states and
// union territories.
//
// # Data Sources
//
// Forecast rows come from a precomputed model-output CSV with one row per
// (state, date): columns "state_name", "date" (YYYY-MM-DD), and
// "predicted_rainfall" (millimeters, non-negative). The forecast horizon is
// whatever the file contains; nothing in this package assumes a fixed year
// range.
//
// State boundaries come from a GeoJSON FeatureCollection in which every
// feature names its region in the "st_nm" property. Geometry payloads are
// carried through untouched; this package never inspects coordinates.
//
// # Name Harmonization
//
// The forecast file and the boundary file disagree about administrative
// names, so region names are harmonized at load time:
//
//	Rename:  "Jammu And Kashmir" → "Jammu and Kashmir" (capitalization only).
//	Split:   "The Dadra And Nagar Haveli And Daman And Diu" rows are expanded
//	         into one row each for "Dadra and Nagar Haveli" and "Daman and Diu",
//	         preserving date and rainfall; the merged row is dropped. The
//	         boundary file predates the 2020 merger of the two UTs.
//	Exclude: boundary features for "Andaman and Nicobar Islands" and
//	         "Lakshadweep" are dropped from the displayable set.
//	Proxy:   the forecast has no "Ladakh" rows, but the boundary file has the
//	         region. When a year's totals include "Jammu and Kashmir" and not
//	         "Ladakh", Ladakh borrows the J&K total for that year. Applied per
//	         aggregated year only, never to the underlying records, so monthly
//	         and year-over-year views for Ladakh stay empty.
//
// # Derived Fields
//
// Year, month number, and the three-letter month label are derived from the
// record date using the proleptic Gregorian calendar in UTC. Dates carry no
// time component.
package domain
