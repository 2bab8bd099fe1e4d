package pagination

import (
	"gorm.io/gorm"
	"gorm.io/hints"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Params is a 1-based page request for list endpoints.
type Params struct {
	Page    int
	PerPage int
}

// Normalize floors page and per_page at their minimums.
func Normalize(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the row offset for the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is the envelope returned by list endpoints. Total counts every row
// matching the filters, ignoring the page window.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// TotalPages computes ceil(total / perPage).
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Find counts the rows matching the conditions on base, then fetches the
// requested window. A page past the end yields an empty item list with the
// true total.
func Find[T any](base *gorm.DB, p Params) (*Page[T], error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, p.PerPage)
	err := base.Session(&gorm.Session{}).
		Clauses(hints.CommentBefore("select", "page window")).
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: TotalPages(total, p.PerPage),
	}, nil
}

// Wrap builds an envelope around items already projected by the caller,
// for endpoints that post-process rows into response DTOs.
func Wrap[T any](items []T, total int64, p Params) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: TotalPages(total, p.PerPage),
	}
}
