package domain

// DailyMetric holds one day of production/sales/inventory numbers for a
// product. Numeric fields are nullable: a value only counts towards an
// aggregate when present and greater than zero.
type DailyMetric struct {
	ProductID        int64    `json:"product_id"`
	RecordDate       string   `json:"record_date"`
	ProductionVolume *float64 `json:"production_volume"`
	SalesVolume      *float64 `json:"sales_volume"`
	InventoryLevel   *float64 `json:"inventory_level"`
	AveragePrice     *float64 `json:"average_price"`
	SalesAmount      *float64 `json:"sales_amount"`
}
