package entity

import "time"

// Category is an independent catalog grouping. Products reference categories by
// free-text name only; there is no foreign-key enforcement between the two.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
