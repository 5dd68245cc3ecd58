package repositories

import "gorm.io/gorm"

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 12

// Pagination carries page navigation metadata alongside a page of results.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination normalizes page/perPage and computes the page count for the
// given total.
func NewPagination(page, perPage int, total int64) Pagination {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Paginate is a GORM scope applying the offset/limit for one page.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}
