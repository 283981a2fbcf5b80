package domain

// Product is the catalog entry every metric and price adjustment hangs off.
// Identity is by name: ingestion creates a product on first reference.
type Product struct {
	ID       int64   `json:"product_id"`
	Name     string  `json:"product_name"`
	Category *string `json:"category"`
}
