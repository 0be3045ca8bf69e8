// Package query translates list-request parameters (free-text search,
// exact-match filter, sort token, page/pageSize) into gorm clauses. The
// pipeline order is fixed: search, filter, sort, paginate.
package query

import (
	"strings"

	"gorm.io/gorm"
)

// DefaultPageSize applies to both resource kinds. The source drifted to
// 10 for posts and 100 for movies; one policy is kept instead.
const DefaultPageSize = 20

const DefaultPage = 1

// Params carries the optional list-request parameters after parsing.
// Zero Page together with zero PageSize disables pagination entirely.
type Params struct {
	Search   string
	Filter   string
	Sort     string
	Page     int
	PageSize int
}

// Spec describes how one resource kind answers list queries.
type Spec struct {
	// SearchColumn is matched by case-insensitive substring against Search.
	SearchColumn string
	// FilterColumn is matched by case-insensitive equality against Filter.
	// Empty means the kind has no exact-match filter.
	FilterColumn string
	// SortKeys maps recognized sort tokens to ORDER BY expressions.
	SortKeys map[string]string
	// DefaultOrder applies when the sort token is absent or unrecognized.
	DefaultOrder string
}

// Apply composes the pipeline onto db in the fixed order.
func (s Spec) Apply(db *gorm.DB, p Params) *gorm.DB {
	if search := strings.TrimSpace(p.Search); search != "" {
		db = db.Where("LOWER("+s.SearchColumn+") LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if filter := strings.TrimSpace(p.Filter); filter != "" && s.FilterColumn != "" {
		db = db.Where(s.FilterColumn+" IS NOT NULL AND LOWER("+s.FilterColumn+") = ?", strings.ToLower(filter))
	}

	db = db.Order(s.Order(p.Sort))

	if p.Page > 0 && p.PageSize > 0 {
		db = db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
	}

	return db
}

// Order resolves a sort token to an ORDER BY expression, falling back to
// DefaultOrder for unrecognized or absent tokens.
func (s Spec) Order(sort string) string {
	if expr, ok := s.SortKeys[strings.ToLower(sort)]; ok {
		return expr
	}
	return s.DefaultOrder
}
