package entity

import "time"

// Stock bucket thresholds used by product listing filters.
const (
	// InStockThreshold is the minimum stock count considered "in stock".
	InStockThreshold = 10
)

// Product is a catalog item. Price is non-negative; stock defaults to zero.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"` // Free text, not validated against Category records.
	ImageURL    string    `json:"imageUrl"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
