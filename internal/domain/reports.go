package domain

// InventoryRankItem is one row of the inventory top-N report. Percentage is
// the share of the date's total qualifying inventory, rounded to 2 decimals.
type InventoryRankItem struct {
	ProductName    string  `json:"product_name"`
	InventoryLevel float64 `json:"inventory_level"`
	Percentage     float64 `json:"percentage"`
	Rank           int     `json:"rank"`
}

// InventorySlice is a distribution row for pie-chart rendering: same data
// as the ranked report without the rank column.
type InventorySlice struct {
	ProductName    string  `json:"product_name"`
	InventoryLevel float64 `json:"inventory_level"`
	Percentage     float64 `json:"percentage"`
}

// InventorySummary aggregates one date's qualifying inventory.
type InventorySummary struct {
	TotalInventory  float64 `json:"total_inventory"`
	Top15Total      float64 `json:"top15_total"`
	Top15Percentage float64 `json:"top15_percentage"`
	ProductCount    int     `json:"product_count"`
}

// Summary is the date-range overview for the dashboard cards.
type Summary struct {
	TotalProducts          int     `json:"total_products"`
	Days                   int     `json:"days"`
	TotalSales             float64 `json:"total_sales"`
	TotalProduction        float64 `json:"total_production"`
	SalesToProductionRatio float64 `json:"sales_to_production_ratio"`
}

// SalesPricePoint is one day of the dual-axis sales and price trend.
// AvgPrice is amount over volume for the day, 0 when nothing sold.
type SalesPricePoint struct {
	RecordDate  string  `json:"record_date"`
	TotalSales  float64 `json:"total_sales"`
	TotalAmount float64 `json:"total_amount"`
	AvgPrice    float64 `json:"avg_price"`
}

// PriceTrendPoint is one adjustment of the per-product price trend chart.
type PriceTrendPoint struct {
	AdjustmentDate  string  `json:"adjustment_date"`
	ProductName     string  `json:"product_name"`
	CurrentPrice    float64 `json:"current_price"`
	PriceDifference float64 `json:"price_difference"`
}

// ProductInventory is a raw qualifying inventory row before percentage
// and rank are computed.
type ProductInventory struct {
	ProductName    string
	InventoryLevel float64
}

// DailyVolume is a per-day filtered sum of one metric column, as returned
// by the repository GROUP BY queries.
type DailyVolume struct {
	RecordDate string
	Volume     float64
}

// RangeTotals carries the independent filtered sums over a date range.
type RangeTotals struct {
	TotalSales      float64
	TotalProduction float64
	TotalProducts   int
}
