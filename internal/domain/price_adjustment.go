package domain

// PriceAdjustment is one row of an adjustment sheet after normalization.
// Name and category are denormalized on purpose: the sheet is the source of
// truth for how the product was labeled on that date.
type PriceAdjustment struct {
	ID              int64    `json:"id,omitempty"`
	AdjustmentDate  string   `json:"adjustment_date"`
	ProductID       int64    `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Specification   *string  `json:"specification"`
	AdjustmentCount int      `json:"adjustment_count"`
	PreviousPrice   *float64 `json:"previous_price"`
	CurrentPrice    float64  `json:"current_price"`
	PriceDifference float64  `json:"price_difference"`
	Category        *string  `json:"category"`
}
