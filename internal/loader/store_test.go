package loader

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsoonviz/rainfall-dashboard/internal/observability"
)

const (
	storeForecastCSV = "state_name,date,predicted_rainfall\nKerala,2025-06-15,100\n"
	storeBoundary    = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"st_nm":"Kerala"},"geometry":null}]}`
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, reloadCheck bool) (*Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	forecastPath := filepath.Join(dir, "forecast.csv")
	boundaryPath := filepath.Join(dir, "states.geojson")
	require.NoError(t, os.WriteFile(forecastPath, []byte(storeForecastCSV), 0o644))
	require.NoError(t, os.WriteFile(boundaryPath, []byte(storeBoundary), 0o644))

	store := NewStore(forecastPath, boundaryPath, reloadCheck, discardLogger(), observability.NewMetricsForTesting())
	return store, forecastPath, boundaryPath
}

func TestStore_LoadAndReadiness(t *testing.T) {
	store, _, _ := newTestStore(t, false)

	require.Error(t, store.CheckReadiness(context.Background()))
	assert.Nil(t, store.Snapshot())

	require.NoError(t, store.Load())
	require.NoError(t, store.CheckReadiness(context.Background()))

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, []int{2025}, snap.Years())
	assert.Equal(t, []string{"Kerala"}, snap.Regions())
}

func TestStore_LoadFailurePropagates(t *testing.T) {
	store, forecastPath, _ := newTestStore(t, false)
	require.NoError(t, os.WriteFile(forecastPath, []byte("state_name,date\n"), 0o644))

	require.Error(t, store.Load())
	require.Error(t, store.CheckReadiness(context.Background()))
}

func TestStore_ReloadsWhenInputChanges(t *testing.T) {
	store, forecastPath, _ := newTestStore(t, true)
	require.NoError(t, store.Load())

	updated := storeForecastCSV + "Kerala,2026-06-15,150\n"
	require.NoError(t, os.WriteFile(forecastPath, []byte(updated), 0o644))
	// Force a visible mtime change even on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(forecastPath, future, future))

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, []int{2025, 2026}, snap.Years())
}

func TestStore_NoReloadWhenDisabled(t *testing.T) {
	store, forecastPath, _ := newTestStore(t, false)
	require.NoError(t, store.Load())

	updated := storeForecastCSV + "Kerala,2026-06-15,150\n"
	require.NoError(t, os.WriteFile(forecastPath, []byte(updated), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(forecastPath, future, future))

	snap := store.Snapshot()
	assert.Equal(t, []int{2025}, snap.Years())
}

func TestStore_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	store, forecastPath, _ := newTestStore(t, true)
	require.NoError(t, store.Load())

	require.NoError(t, os.WriteFile(forecastPath, []byte("{broken"), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(forecastPath, future, future))

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, []int{2025}, snap.Years())
}

func TestStore_UnchangedInputNotReparsed(t *testing.T) {
	store, _, _ := newTestStore(t, true)
	require.NoError(t, store.Load())

	first := store.Snapshot()
	second := store.Snapshot()
	assert.Same(t, first, second)
}
