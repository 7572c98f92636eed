package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	InStock     bool       `json:"inStock"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ProductInput is a validated, normalized create or update payload.
// Description and InStock are nil when the client did not send them.
type ProductInput struct {
	Name        string `validate:"required"`
	Description *string
	Price       float64 `validate:"required,gt=0"`
	Category    string  `validate:"required,oneof=electronics clothing books home"`
	InStock     *bool
}

// AllowedCategories lists the categories accepted on writes.
var AllowedCategories = []string{"electronics", "clothing", "books", "home"}

// SeedProducts returns the records the catalog starts with.
// "kitchen" is outside AllowedCategories and is kept as-is.
func SeedProducts() []Product {
	return []Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "kitchen", InStock: false},
	}
}
