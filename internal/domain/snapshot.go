package domain

import (
	"sort"
	"time"
)

// Snapshot is an immutable view of both loaded inputs plus the observed
// value sets the presentation layer fills its selectors from. Aggregations
// read snapshots and never mutate them, so one snapshot can back any number
// of concurrent selection changes.
type Snapshot struct {
	Records    []RainfallRecord
	Boundaries BoundaryCollection
	LoadedAt   time.Time

	years   map[int]struct{}
	regions map[string]struct{}
}

// NewSnapshot indexes the observed years and regions and stamps the snapshot
// with the current clock time.
func NewSnapshot(records []RainfallRecord, boundaries BoundaryCollection) *Snapshot {
	s := &Snapshot{
		Records:    records,
		Boundaries: boundaries,
		LoadedAt:   clock.Now(),
		years:      make(map[int]struct{}),
		regions:    make(map[string]struct{}),
	}
	for _, rec := range records {
		s.years[rec.Year] = struct{}{}
		s.regions[rec.Region] = struct{}{}
	}
	return s
}

// Years returns every year observed in the records, ascending.
func (s *Snapshot) Years() []int {
	years := make([]int, 0, len(s.years))
	for y := range s.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Regions returns every region observed in the records, sorted. Ladakh is
// absent here even though the map can show a proxied value for it; the
// selectors only offer regions with real data.
func (s *Snapshot) Regions() []string {
	regions := make([]string, 0, len(s.regions))
	for r := range s.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// BoundaryRegions returns the displayable boundary region names, sorted.
func (s *Snapshot) BoundaryRegions() []string {
	regions := s.Boundaries.Regions()
	sort.Strings(regions)
	return regions
}

// HasYear reports whether any record falls in the given year.
func (s *Snapshot) HasYear(year int) bool {
	_, ok := s.years[year]
	return ok
}

// HasRegion reports whether any record names the given region.
func (s *Snapshot) HasRegion(region string) bool {
	_, ok := s.regions[region]
	return ok
}
