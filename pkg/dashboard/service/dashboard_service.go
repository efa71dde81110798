package service

// Metrics are the headline figures on the dashboard page. AvgPH and
// AvgAreaHa are nil when no block carries a numeric value; the totals
// coerce non-numeric cells to 0 instead.
type Metrics struct {
	TotalBlocks       int      `json:"total_blocks"`
	AvgPH             *float64 `json:"avg_ph"`
	TotalHarvestKg    float64  `json:"total_harvest_kg"`
	TotalNetProfit    float64  `json:"total_net_profit"`
	AvgAreaHa         *float64 `json:"avg_area_ha"`
	DistinctCornTypes int      `json:"distinct_corn_types"`
	TotalWorkers      int      `json:"total_workers"`
}

// CategoryCount backs the fertility pie and the planting-status bars.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MonthlyTotal is one point of the harvest trend line, in chronological
// order. Month is formatted YYYY-MM.
type MonthlyTotal struct {
	Month   string  `json:"month"`
	TotalKg float64 `json:"total_kg"`
}

// BlockProfit mirrors one finance row with its amounts coerced.
type BlockProfit struct {
	BlockID   string  `json:"block_id"`
	Income    float64 `json:"income"`
	Cost      float64 `json:"cost"`
	NetProfit float64 `json:"net_profit"`
}

// BlockSummary joins a block's core fields with its harvest and profit
// sums; blocks without matching rows show 0. Area and PH stay raw so
// non-numeric cells survive the round trip through the editor.
type BlockSummary struct {
	BlockID     string  `json:"block_id"`
	AreaHa      string  `json:"area_ha"`
	PH          string  `json:"ph"`
	Kesuburan   string  `json:"fertility"`
	StatusTanam string  `json:"planting_status"`
	HarvestKg   float64 `json:"harvest_kg"`
	NetProfit   float64 `json:"net_profit"`
}

// SummaryEdit carries the editable core fields back from the summary
// grid. The derived sums are not writable.
type SummaryEdit struct {
	BlockID     string `json:"block_id"`
	AreaHa      string `json:"area_ha"`
	PH          string `json:"ph"`
	Kesuburan   string `json:"fertility"`
	StatusTanam string `json:"planting_status"`
}

// DashboardService computes the aggregates; it owns no state beyond
// the table store and re-reads its inputs on every call.
type DashboardService interface {
	Metrics() (Metrics, error)
	FertilityDistribution() ([]CategoryCount, error)
	StatusDistribution() ([]CategoryCount, error)
	MonthlyHarvestTrend() ([]MonthlyTotal, error)
	ProfitBreakdown() ([]BlockProfit, error)
	BlockSummary() ([]BlockSummary, error)

	// SaveBlockSummary updates block core fields from the edited grid
	// and returns the freshly recomputed summary.
	SaveBlockSummary(edits []SummaryEdit) ([]BlockSummary, error)
	// DeleteBlocks removes the given block IDs from the block, harvest
	// and finance tables.
	DeleteBlocks(ids []string) (int, error)
}
