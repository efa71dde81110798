package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jagung/entities"
	"jagung/pkg/dashboard/service"
	"jagung/pkg/datastore/repository"
	repoImp "jagung/pkg/datastore/repositoryImp"
	"jagung/pkg/tabular"
)

func newFixture(t *testing.T) (service.DashboardService, repository.TableStore) {
	t.Helper()
	dir := t.TempDir()
	store := repoImp.New(filepath.Join(dir, "data"), filepath.Join(dir, "users.csv"))
	return New(store), store
}

func saveRows(t *testing.T, store repository.TableStore, name string, rows ...[]string) {
	t.Helper()
	tb := tabular.New(entities.Schemas[name]...)
	for _, r := range rows {
		tb.Append(r)
	}
	require.NoError(t, store.Save(name, tb))
}

func blokRow(id, luas, ph, kesuburan, status string) []string {
	return []string{id, luas, "Tambahrejo", "", "", ph, "", kesuburan, status, ""}
}

func TestMetricsCoercion(t *testing.T) {
	svc, store := newFixture(t)

	saveRows(t, store, entities.TableBlok,
		blokRow("B01", "2.0", "6.0", "Tinggi", "Tumbuh"),
		blokRow("B02", "4.0", "7.0", "Sedang", "Panen"),
		blokRow("B03", "", "bad", "Tinggi", "Tumbuh"),
	)
	saveRows(t, store, entities.TablePanen,
		[]string{"B01", "2024-08-10", "100", "A", "3500", "KUD"},
		[]string{"B02", "2024-08-12", "bad", "B", "3000", "KUD"},
		[]string{"B03", "2024-09-01", "50", "A", "3500", "Pasar"},
	)
	saveRows(t, store, entities.TableKeuangan,
		[]string{"B01", "100", "300", "200"},
		[]string{"B02", "50", "x", "-25"},
	)
	saveRows(t, store, entities.TableTanaman,
		[]string{"B01", "Hibrida", "2024-05-01", "500", "100", "BISI-18", "toko"},
		[]string{"B02", "Hibrida", "2024-05-02", "400", "80", "NK-212", "toko"},
		[]string{"B03", "Manis", "2024-05-03", "300", "60", "Talenta", "toko"},
	)
	saveRows(t, store, entities.TableTenagaKerja,
		[]string{"Asep", "B01", "tanam", "8", "90000"},
		[]string{"Budi", "B02", "panen", "6", "80000"},
	)

	m, err := svc.Metrics()
	require.NoError(t, err)

	assert.Equal(t, 3, m.TotalBlocks)
	// "bad" is excluded from the mean, not counted as zero.
	require.NotNil(t, m.AvgPH)
	assert.InDelta(t, 6.5, *m.AvgPH, 1e-9)
	// "bad" is counted as zero in the sum.
	assert.Equal(t, 150.0, m.TotalHarvestKg)
	assert.Equal(t, 175.0, m.TotalNetProfit)
	require.NotNil(t, m.AvgAreaHa)
	assert.InDelta(t, 3.0, *m.AvgAreaHa, 1e-9)
	assert.Equal(t, 2, m.DistinctCornTypes)
	assert.Equal(t, 2, m.TotalWorkers)
}

func TestMetricsEmptyTables(t *testing.T) {
	svc, _ := newFixture(t)
	m, err := svc.Metrics()
	require.NoError(t, err)
	assert.Zero(t, m.TotalBlocks)
	assert.Nil(t, m.AvgPH)
	assert.Zero(t, m.TotalHarvestKg)
}

func TestDistributions(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TableBlok,
		blokRow("B01", "1", "6", "Tinggi", "Tumbuh"),
		blokRow("B02", "1", "6", "Tinggi", "Panen"),
		blokRow("B03", "1", "6", "Rendah", "Tumbuh"),
	)

	fert, err := svc.FertilityDistribution()
	require.NoError(t, err)
	assert.Equal(t, []service.CategoryCount{{Label: "Tinggi", Count: 2}, {Label: "Rendah", Count: 1}}, fert)

	status, err := svc.StatusDistribution()
	require.NoError(t, err)
	assert.Equal(t, []service.CategoryCount{{Label: "Tumbuh", Count: 2}, {Label: "Panen", Count: 1}}, status)
}

func TestMonthlyHarvestTrend(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TablePanen,
		[]string{"B01", "2024-09-05", "40", "", "", ""},
		[]string{"B01", "2024-08-10", "100", "", "", ""},
		[]string{"B02", "2024-08-25", "60", "", "", ""},
		[]string{"B03", "not a date", "999", "", "", ""},
	)

	trend, err := svc.MonthlyHarvestTrend()
	require.NoError(t, err)
	assert.Equal(t, []service.MonthlyTotal{
		{Month: "2024-08", TotalKg: 160},
		{Month: "2024-09", TotalKg: 40},
	}, trend)
}

func TestProfitBreakdown(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TableKeuangan,
		[]string{"B01", "100", "300", "200"},
		[]string{"B02", "x", "", "-10"},
	)

	rows, err := svc.ProfitBreakdown()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, service.BlockProfit{BlockID: "B01", Income: 300, Cost: 100, NetProfit: 200}, rows[0])
	assert.Equal(t, service.BlockProfit{BlockID: "B02", Income: 0, Cost: 0, NetProfit: -10}, rows[1])
}

func TestBlockSummaryJoin(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TableBlok,
		blokRow("B01", "2.5", "6.7", "Tinggi", "Tumbuh"),
		blokRow("B02", "1.0", "7.1", "Sedang", "Panen"),
	)
	saveRows(t, store, entities.TablePanen,
		[]string{"B01", "2024-08-10", "100", "", "", ""},
		[]string{"B01", "2024-09-01", "40", "", "", ""},
		[]string{"B09", "2024-09-02", "77", "", "", ""}, // orphan reference, tolerated
	)
	saveRows(t, store, entities.TableKeuangan,
		[]string{"B01", "100", "300", "200"},
	)

	sum, err := svc.BlockSummary()
	require.NoError(t, err)
	require.Len(t, sum, 2)

	assert.Equal(t, "B01", sum[0].BlockID)
	assert.Equal(t, 140.0, sum[0].HarvestKg)
	assert.Equal(t, 200.0, sum[0].NetProfit)

	// No harvest or finance rows: zeros, not absent.
	assert.Equal(t, "B02", sum[1].BlockID)
	assert.Zero(t, sum[1].HarvestKg)
	assert.Zero(t, sum[1].NetProfit)
}

func TestSaveBlockSummaryUpdatesCoreFieldsOnly(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TableBlok,
		blokRow("B01", "2.5", "6.7", "Tinggi", "Tumbuh"),
	)

	out, err := svc.SaveBlockSummary([]service.SummaryEdit{
		{BlockID: "B01", AreaHa: "3.0", PH: "6.9", Kesuburan: "Sedang", StatusTanam: "Panen"},
		{BlockID: "B02", AreaHa: "1.5", PH: "7.0", Kesuburan: "Rendah", StatusTanam: "Bera"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "3.0", out[0].AreaHa)
	assert.Equal(t, "B02", out[1].BlockID)

	blok, err := store.Load(entities.TableBlok)
	require.NoError(t, err)
	require.Equal(t, 2, blok.Len())
	// Non-core fields of the existing block survive the write-back.
	assert.Equal(t, "Tambahrejo", blok.Cell(0, entities.ColLokasi))
	assert.Equal(t, "6.9", blok.Cell(0, entities.ColPH))
}

func TestDeleteBlocksCascades(t *testing.T) {
	svc, store := newFixture(t)
	saveRows(t, store, entities.TableBlok,
		blokRow("B01", "1", "6", "Tinggi", "Tumbuh"),
		blokRow("B02", "1", "6", "Tinggi", "Tumbuh"),
	)
	saveRows(t, store, entities.TablePanen,
		[]string{"B01", "2024-08-10", "100", "", "", ""},
		[]string{"B02", "2024-08-11", "50", "", "", ""},
	)
	saveRows(t, store, entities.TableKeuangan,
		[]string{"B01", "100", "300", "200"},
	)

	n, err := svc.DeleteBlocks([]string{"B01"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, name := range []string{entities.TableBlok, entities.TablePanen, entities.TableKeuangan} {
		tb, err := store.Load(name)
		require.NoError(t, err)
		for _, id := range tb.Column(entities.ColBlokID) {
			assert.NotEqual(t, "B01", id)
		}
	}
	panen, _ := store.Load(entities.TablePanen)
	assert.Equal(t, 1, panen.Len())
}
