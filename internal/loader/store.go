package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/monsoonviz/rainfall-dashboard/internal/domain"
	"github.com/monsoonviz/rainfall-dashboard/internal/observability"
)

// Store owns the current immutable snapshot of both input files. Loads are
// pure functions of the files, so the snapshot doubles as a cache: when
// reload checking is on, the store re-stats the files on access and reloads
// only when a modification time moved. A failed reload keeps serving the
// previous snapshot.
type Store struct {
	forecastPath string
	boundaryPath string
	reloadCheck  bool
	logger       *slog.Logger
	metrics      *observability.Metrics

	mu          sync.Mutex
	snap        *domain.Snapshot
	forecastMod time.Time
	boundaryMod time.Time
}

// NewStore creates a Store for the given input files. Call Load before
// serving traffic.
func NewStore(forecastPath, boundaryPath string, reloadCheck bool, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		forecastPath: forecastPath,
		boundaryPath: boundaryPath,
		reloadCheck:  reloadCheck,
		logger:       logger,
		metrics:      metrics,
	}
}

// Load parses both input files and installs a fresh snapshot. Any parse
// failure leaves the previous snapshot (if any) in place.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() error {
	records, err := LoadRainfall(s.forecastPath)
	if err != nil {
		s.metrics.SnapshotErrors.Inc()
		return fmt.Errorf("load rainfall: %w", err)
	}

	boundaries, err := LoadBoundaries(s.boundaryPath)
	if err != nil {
		s.metrics.SnapshotErrors.Inc()
		return fmt.Errorf("load boundaries: %w", err)
	}

	forecastMod, err := fileModTime(s.forecastPath)
	if err != nil {
		s.metrics.SnapshotErrors.Inc()
		return err
	}
	boundaryMod, err := fileModTime(s.boundaryPath)
	if err != nil {
		s.metrics.SnapshotErrors.Inc()
		return err
	}

	s.snap = domain.NewSnapshot(records, boundaries)
	s.forecastMod = forecastMod
	s.boundaryMod = boundaryMod

	s.metrics.SnapshotLoads.Inc()
	s.metrics.RecordsLoaded.Set(float64(len(records)))
	s.metrics.BoundariesLoaded.Set(float64(len(boundaries.Features)))

	s.logger.Info("snapshot loaded",
		"records", len(records),
		"boundaries", len(boundaries.Features),
		"years", s.snap.Years(),
	)
	return nil
}

// Snapshot returns the current snapshot, reloading first if reload checking
// is enabled and either input file changed on disk.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reloadCheck && s.snap != nil && s.inputsChangedLocked() {
		if err := s.loadLocked(); err != nil {
			s.logger.Warn("snapshot reload failed, serving previous snapshot", "error", err)
		}
	}
	return s.snap
}

// CheckReadiness returns nil once an initial snapshot has been loaded.
func (s *Store) CheckReadiness(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		return errors.New("input files have not been loaded yet")
	}
	return nil
}

func (s *Store) inputsChangedLocked() bool {
	forecastMod, err := fileModTime(s.forecastPath)
	if err != nil {
		return false
	}
	boundaryMod, err := fileModTime(s.boundaryPath)
	if err != nil {
		return false
	}
	return !forecastMod.Equal(s.forecastMod) || !boundaryMod.Equal(s.boundaryMod)
}

func fileModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}
