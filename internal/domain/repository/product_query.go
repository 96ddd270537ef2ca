package repository

import "strings"

// MaxListResults caps every product listing; there is no further pagination.
const MaxListResults = 1000

// StockStatus classifies a product's stock count into a bucket.
type StockStatus string

const (
	StockStatusNone       StockStatus = ""             // No stock filtering.
	StockStatusInStock    StockStatus = "in_stock"     // stock >= 10
	StockStatusLowStock   StockStatus = "low_stock"    // 0 < stock < 10
	StockStatusOutOfStock StockStatus = "out_of_stock" // stock == 0
)

// SortOption selects the listing order.
type SortOption string

const (
	SortDefault   SortOption = ""           // Newest first.
	SortNewest    SortOption = "newest"     // Newest first.
	SortPriceAsc  SortOption = "price_asc"  // Ascending price.
	SortPriceDesc SortOption = "price_desc" // Descending price.
)

// ProductQuery is the store-agnostic filter/sort specification for product
// listings. All clauses are ANDed together; the search clause internally ORs
// its three field matches (name, description, category).
type ProductQuery struct {
	// Search is a case-insensitive substring term. Each literal space acts as
	// a wildcard gap: "power tool" matches any value containing "power", then
	// anything, then "tool".
	Search string

	// Category is an exact-match filter when non-empty.
	Category string

	// MinPrice and MaxPrice are inclusive bounds; either may be set alone.
	MinPrice *float64
	MaxPrice *float64

	StockStatus StockStatus
	SortBy      SortOption
}

// SearchPattern returns the regular-expression body for the search term, with
// each space replaced by a wildcard gap. Case insensitivity is applied by the
// store adapter. Empty when no search term is set.
func (q ProductQuery) SearchPattern() string {
	if q.Search == "" {
		return ""
	}

	return strings.ReplaceAll(q.Search, " ", ".*")
}
