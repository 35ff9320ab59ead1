package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// Result is the pagination metadata returned with paged lists.
type Result struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
}

// FromContext extracts and clamps page/limit from the request query.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "10"), DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Paginate applies limit/offset to a GORM query and returns the page metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (Result, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Result{}, err
	}

	offset := (q.Page - 1) * q.Limit
	if err := db.Offset(offset).Limit(q.Limit).Find(dest).Error; err != nil {
		return Result{}, err
	}

	return Make(total, q), nil
}

// Make computes page metadata for a known total.
func Make(total int64, q Query) Result {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Result{
		Total:       total,
		TotalPages:  totalPages,
		Page:        q.Page,
		Limit:       q.Limit,
		HasNextPage: q.Page < totalPages,
	}
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
