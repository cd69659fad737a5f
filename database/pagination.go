package database

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination describes the page of results returned by a list query.
type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	PageCount       int   `json:"pageCount"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPagination normalizes page/limit and computes the derived fields.
// Pages are 1-based; pageCount is ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	pageCount := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		PageCount:       pageCount,
		HasNextPage:     page < pageCount,
		HasPreviousPage: page > 1 && total > 0,
	}
}

// Offset returns the row offset for the normalized page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListOptions carries the common list-query parameters.
type ListOptions struct {
	Page  int
	Limit int
	// Published filters by publish flag when non-nil (blogs only).
	Published *bool
	// Search is an unanchored case-insensitive pattern matched against the
	// entity's text columns.
	Search string
}
