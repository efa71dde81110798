package serviceImp

import (
	"sort"

	"jagung/entities"
	"jagung/pkg/dashboard/service"
	"jagung/pkg/datastore/repository"
	"jagung/pkg/tabular"
)

type dashSvc struct{ store repository.TableStore }

func New(store repository.TableStore) service.DashboardService { return &dashSvc{store} }

func (s *dashSvc) Metrics() (service.Metrics, error) {
	blok, err := s.store.Load(entities.TableBlok)
	if err != nil {
		return service.Metrics{}, err
	}
	panen, err := s.store.Load(entities.TablePanen)
	if err != nil {
		return service.Metrics{}, err
	}
	keu, err := s.store.Load(entities.TableKeuangan)
	if err != nil {
		return service.Metrics{}, err
	}
	tanaman, err := s.store.Load(entities.TableTanaman)
	if err != nil {
		return service.Metrics{}, err
	}
	tenaga, err := s.store.Load(entities.TableTenagaKerja)
	if err != nil {
		return service.Metrics{}, err
	}

	m := service.Metrics{
		TotalBlocks:    blok.Len(),
		TotalHarvestKg: tabular.Sum(panen.Column(entities.ColHasilPanen)),
		TotalNetProfit: tabular.Sum(keu.Column(entities.ColLaba)),
		TotalWorkers:   tenaga.Len(),
	}
	if avg, ok := tabular.Mean(blok.Column(entities.ColPH)); ok {
		m.AvgPH = &avg
	}
	if avg, ok := tabular.Mean(blok.Column(entities.ColLuas)); ok {
		m.AvgAreaHa = &avg
	}

	seen := map[string]bool{}
	for _, v := range tanaman.Column(entities.ColJenisJagung) {
		if v != "" {
			seen[v] = true
		}
	}
	m.DistinctCornTypes = len(seen)
	return m, nil
}

func (s *dashSvc) FertilityDistribution() ([]service.CategoryCount, error) {
	return s.countBlokBy(entities.ColKesuburan)
}

func (s *dashSvc) StatusDistribution() ([]service.CategoryCount, error) {
	return s.countBlokBy(entities.ColStatusTanam)
}

func (s *dashSvc) countBlokBy(col string) ([]service.CategoryCount, error) {
	blok, err := s.store.Load(entities.TableBlok)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, v := range blok.Column(col) {
		if v != "" {
			counts[v]++
		}
	}
	out := make([]service.CategoryCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, service.CategoryCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out, nil
}

func (s *dashSvc) MonthlyHarvestTrend() ([]service.MonthlyTotal, error) {
	panen, err := s.store.Load(entities.TablePanen)
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	for i := 0; i < panen.Len(); i++ {
		d, ok := tabular.ParseDate(panen.Cell(i, entities.ColTanggalPanen))
		if !ok {
			continue // unparsable dates fall out of the trend
		}
		kg, _ := tabular.ParseNumber(panen.Cell(i, entities.ColHasilPanen))
		sums[d.Format("2006-01")] += kg
	}
	out := make([]service.MonthlyTotal, 0, len(sums))
	for month, kg := range sums {
		out = append(out, service.MonthlyTotal{Month: month, TotalKg: kg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (s *dashSvc) ProfitBreakdown() ([]service.BlockProfit, error) {
	keu, err := s.store.Load(entities.TableKeuangan)
	if err != nil {
		return nil, err
	}
	out := make([]service.BlockProfit, 0, keu.Len())
	for i := 0; i < keu.Len(); i++ {
		income, _ := tabular.ParseNumber(keu.Cell(i, entities.ColPemasukan))
		cost, _ := tabular.ParseNumber(keu.Cell(i, entities.ColBiaya))
		net, _ := tabular.ParseNumber(keu.Cell(i, entities.ColLaba))
		out = append(out, service.BlockProfit{
			BlockID: keu.Cell(i, entities.ColBlokID),
			Income:  income, Cost: cost, NetProfit: net,
		})
	}
	return out, nil
}

func (s *dashSvc) BlockSummary() ([]service.BlockSummary, error) {
	blok, err := s.store.Load(entities.TableBlok)
	if err != nil {
		return nil, err
	}
	panen, err := s.store.Load(entities.TablePanen)
	if err != nil {
		return nil, err
	}
	keu, err := s.store.Load(entities.TableKeuangan)
	if err != nil {
		return nil, err
	}

	harvestBy := sumBy(panen, entities.ColBlokID, entities.ColHasilPanen)
	profitBy := sumBy(keu, entities.ColBlokID, entities.ColLaba)

	out := make([]service.BlockSummary, 0, blok.Len())
	for i := 0; i < blok.Len(); i++ {
		id := blok.Cell(i, entities.ColBlokID)
		out = append(out, service.BlockSummary{
			BlockID:     id,
			AreaHa:      blok.Cell(i, entities.ColLuas),
			PH:          blok.Cell(i, entities.ColPH),
			Kesuburan:   blok.Cell(i, entities.ColKesuburan),
			StatusTanam: blok.Cell(i, entities.ColStatusTanam),
			HarvestKg:   harvestBy[id],
			NetProfit:   profitBy[id],
		})
	}
	return out, nil
}

// sumBy groups valueCol by keyCol; non-numeric cells count as 0.
func sumBy(t tabular.Table, keyCol, valueCol string) map[string]float64 {
	out := map[string]float64{}
	for i := 0; i < t.Len(); i++ {
		v, _ := tabular.ParseNumber(t.Cell(i, valueCol))
		out[t.Cell(i, keyCol)] += v
	}
	return out
}

func (s *dashSvc) SaveBlockSummary(edits []service.SummaryEdit) ([]service.BlockSummary, error) {
	blok, err := s.store.Load(entities.TableBlok)
	if err != nil {
		return nil, err
	}
	rowFor := map[string]int{}
	for i := 0; i < blok.Len(); i++ {
		rowFor[blok.Cell(i, entities.ColBlokID)] = i
	}
	set := func(row int, col, v string) {
		blok.Rows[row][blok.ColumnIndex(col)] = v
	}
	for _, e := range edits {
		if e.BlockID == "" {
			continue
		}
		i, ok := rowFor[e.BlockID]
		if !ok {
			blok.Append([]string{e.BlockID})
			i = blok.Len() - 1
			rowFor[e.BlockID] = i
		}
		set(i, entities.ColLuas, e.AreaHa)
		set(i, entities.ColPH, e.PH)
		set(i, entities.ColKesuburan, e.Kesuburan)
		set(i, entities.ColStatusTanam, e.StatusTanam)
	}
	if err := s.store.Save(entities.TableBlok, blok); err != nil {
		return nil, err
	}
	return s.BlockSummary()
}

func (s *dashSvc) DeleteBlocks(ids []string) (int, error) {
	doomed := map[string]bool{}
	for _, id := range ids {
		doomed[id] = true
	}
	removed := 0
	for _, name := range []string{entities.TableBlok, entities.TablePanen, entities.TableKeuangan} {
		t, err := s.store.Load(name)
		if err != nil {
			return removed, err
		}
		idx := t.ColumnIndex(entities.ColBlokID)
		if idx < 0 {
			continue
		}
		kept := t.Filter(func(row []string) bool { return !doomed[row[idx]] })
		if kept.Len() == t.Len() {
			continue
		}
		if name == entities.TableBlok {
			removed = t.Len() - kept.Len()
		}
		if err := s.store.Save(name, kept); err != nil {
			return removed, err
		}
	}
	return removed, nil
}
