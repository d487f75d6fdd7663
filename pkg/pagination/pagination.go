package pagination

import "math"

// Params represents input parameters for page-based pagination
type Params struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Default returns default pagination values
func Default() *Params {
	return &Params{Page: 1, PerPage: 10}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 10
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset calculates the offset for SQL queries
func (p *Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page describes one page of a listing
type Page struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NewPage builds page metadata from the request params and total count
func NewPage(page, perPage int, total int64) *Page {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return &Page{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Result pairs a page of items with its metadata
type Result[T any] struct {
	Items      []T   `json:"items"`
	Pagination *Page `json:"pagination"`
}

// NewResult creates a paginated result
func NewResult[T any](items []T, page *Page) *Result[T] {
	return &Result[T]{Items: items, Pagination: page}
}
