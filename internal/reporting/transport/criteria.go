// Package transport parses reporting requests and shapes their responses.
package transport

import (
	"strconv"
	"strings"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	defaultWindow   = 30 // days
)

// dateLayouts are accepted for start_date/end_date query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseCriteria reads the shared filter parameters from the query string.
// Malformed dates are coerced to "no constraint" rather than rejected.
func ParseCriteria(c *gin.Context) query.Criteria {
	return query.Criteria{
		ClientID:   strings.TrimSpace(c.Query("client_id")),
		SalesRepID: strings.TrimSpace(c.Query("sales_rep_id")),
		StartDate:  parseDate(c.Query("start_date")),
		EndDate:    parseDate(c.Query("end_date")),
		Search:     strings.TrimSpace(c.Query("search")),
	}
}

// WithDefaultWindow fills in the trailing default window for endpoints that
// always aggregate over an explicit date range.
func WithDefaultWindow(criteria query.Criteria, now time.Time) query.Criteria {
	if criteria.StartDate == nil {
		start := now.AddDate(0, 0, -defaultWindow)
		criteria.StartDate = &start
	}
	if criteria.EndDate == nil {
		end := now
		criteria.EndDate = &end
	}
	return criteria
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed
		}
	}
	return nil
}

// Pagination carries the coerced page parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceiling(total / PageSize).
func (p Pagination) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// ParsePagination reads page/page_size, silently falling back to defaults
// for missing, malformed or non-positive values.
func ParsePagination(c *gin.Context) Pagination {
	return Pagination{
		Page:     positiveInt(c.Query("page"), defaultPage),
		PageSize: positiveInt(c.Query("page_size"), defaultPageSize),
	}
}

func positiveInt(raw string, fallback int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
