package models

// ListQuery holds the filters and paging of GET /api/products.
type ListQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	InStock  string `query:"instock"`
	Page     int    `query:"page" validate:"min=1"`
	Limit    int    `query:"limit" validate:"min=1"`
}

// DefaultListQuery returns a ListQuery with the first page of ten items.
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 1, Limit: 10}
}

// SearchQuery holds the parameters of GET /api/products/search.
type SearchQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
}

// Pagination describes one page of a filtered product list.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalProducts   int  `json:"totalProducts"`
	TotalPages      int  `json:"totalPages"`
	ProductsPerPage int  `json:"productsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ProductPage is a slice of products plus its pagination metadata.
type ProductPage struct {
	Products   []Product
	Pagination Pagination
}

// PriceRange is the lowest and highest price in the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductStats summarizes the catalog.
type ProductStats struct {
	TotalProducts     int            `json:"totalProducts"`
	InStock           int            `json:"inStock"`
	OutOfStock        int            `json:"outOfStock"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`
	AveragePrice      float64        `json:"averagePrice"`
	PriceRange        PriceRange     `json:"priceRange"`
}
