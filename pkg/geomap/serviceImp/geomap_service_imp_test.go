package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jagung/entities"
	repoImp "jagung/pkg/datastore/repositoryImp"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/tabular"
)

const (
	testLat = -3.316
	testLon = 114.602
)

func newFixture(t *testing.T) (*geoSvc, repository.TableStore) {
	t.Helper()
	dir := t.TempDir()
	store := repoImp.New(filepath.Join(dir, "data"), filepath.Join(dir, "users.csv"))
	return New(store, testLat, testLon).(*geoSvc), store
}

func saveBlok(t *testing.T, store repository.TableStore, rows ...[]string) {
	t.Helper()
	tb := tabular.New(entities.Schemas[entities.TableBlok]...)
	for _, r := range rows {
		tb.Append(r)
	}
	require.NoError(t, store.Save(entities.TableBlok, tb))
}

func TestMarkersFromStoredBlocks(t *testing.T) {
	svc, store := newFixture(t)
	saveBlok(t, store,
		[]string{"B01", "2.5", "Tambahrejo", "-3.31", "114.60", "6.7", "", "Tinggi", "Tumbuh", ""},
		[]string{"B02", "1.0", "Blora", "-3.32", "114.61", "7.0", "", "Sedang", "Panen", ""},
	)

	view, err := svc.Markers("", "")
	require.NoError(t, err)
	assert.False(t, view.Placeholder)
	require.Len(t, view.Markers, 2)
	assert.Equal(t, "B01", view.Markers[0].BlockID)
	assert.Equal(t, -3.31, view.Markers[0].Lat)
	assert.InDelta(t, -3.315, view.CenterLat, 1e-9)
}

func TestMarkersFilters(t *testing.T) {
	svc, store := newFixture(t)
	saveBlok(t, store,
		[]string{"B01", "2.5", "", "-3.31", "114.60", "", "", "Tinggi", "Tumbuh", ""},
		[]string{"B02", "1.0", "", "-3.32", "114.61", "", "", "Sedang", "Panen", ""},
	)

	view, err := svc.Markers("Panen", "")
	require.NoError(t, err)
	require.Len(t, view.Markers, 1)
	assert.Equal(t, "B02", view.Markers[0].BlockID)

	view, err = svc.Markers("Panen", "Tinggi")
	require.NoError(t, err)
	assert.Empty(t, view.Markers)
}

func TestMarkersJitterMissingCoordinates(t *testing.T) {
	svc, store := newFixture(t)
	saveBlok(t, store,
		[]string{"B01", "2.5", "", "", "not a number", "", "", "Tinggi", "Tumbuh", ""},
	)

	view, err := svc.Markers("", "")
	require.NoError(t, err)
	require.Len(t, view.Markers, 1)
	assert.InDelta(t, testLat, view.Markers[0].Lat, 0.011)
	assert.InDelta(t, testLon, view.Markers[0].Lon, 0.011)
}

func TestMarkersPlaceholderWhenEmpty(t *testing.T) {
	svc, _ := newFixture(t)

	view, err := svc.Markers("", "")
	require.NoError(t, err)
	assert.True(t, view.Placeholder)
	require.Len(t, view.Markers, 6)
	assert.Equal(t, "B01", view.Markers[0].BlockID)
	assert.Equal(t, "Tumbuh", view.Markers[0].StatusTanam)
}
