package request

// ProductRequest represents a create or update product request
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Gender      string  `json:"gender"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

// ListProductsQuery represents catalog listing query parameters
type ListProductsQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Gender    string `form:"gender"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
