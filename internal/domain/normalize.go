package domain

const (
	// MergedUT is the pre-2020 combined union territory name used by the
	// forecast file. The boundary file draws its two constituents separately.
	MergedUT = "The Dadra And Nagar Haveli And Daman And Diu"

	// RegionJammuKashmir and RegionLadakh participate in the proxy rule.
	RegionJammuKashmir = "Jammu and Kashmir"
	RegionLadakh       = "Ladakh"
)

// mergedUTParts are the two regions a MergedUT row expands into.
var mergedUTParts = [2]string{"Dadra and Nagar Haveli", "Daman and Diu"}

// regionRenames maps forecast-file spellings to boundary-file spellings.
var regionRenames = map[string]string{
	"Jammu And Kashmir": "Jammu and Kashmir",
}

// excludedBoundaryRegions are island territories dropped from the displayable
// boundary set.
var excludedBoundaryRegions = map[string]struct{}{
	"Andaman and Nicobar Islands": {},
	"Lakshadweep":                 {},
}

// NormalizeRegionName maps a forecast-file region name onto the boundary
// file's spelling. Names without a rename rule pass through unchanged.
func NormalizeRegionName(name string) string {
	if renamed, ok := regionRenames[name]; ok {
		return renamed
	}
	return name
}

// SplitMergedRegions expands every MergedUT record into one record per
// constituent region, preserving date and rainfall, and drops the merged
// originals. Records for other regions pass through unchanged.
func SplitMergedRegions(records []RainfallRecord) []RainfallRecord {
	out := make([]RainfallRecord, 0, len(records))
	for _, rec := range records {
		if rec.Region != MergedUT {
			out = append(out, rec)
			continue
		}
		for _, part := range mergedUTParts {
			split := rec
			split.Region = part
			out = append(out, split)
		}
	}
	return out
}

// IsExcludedBoundary reports whether a boundary region is withheld from the
// displayable set.
func IsExcludedBoundary(region string) bool {
	_, ok := excludedBoundaryRegions[region]
	return ok
}

// ApplyLadakhProxy copies the Jammu and Kashmir total onto Ladakh when a
// year's totals have the former but not the latter. The input map is the
// aggregate for a single year; the rule must be re-evaluated per year, so
// callers pass freshly computed totals each time.
func ApplyLadakhProxy(totals map[string]float64) {
	jk, hasJK := totals[RegionJammuKashmir]
	if !hasJK {
		return
	}
	if _, hasLadakh := totals[RegionLadakh]; hasLadakh {
		return
	}
	totals[RegionLadakh] = jk
}
