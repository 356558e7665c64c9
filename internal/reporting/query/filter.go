// Package query builds the SQL predicate and projection shared by the KPI,
// table and export readers. User-supplied values are only ever bound
// parameters; the rendered SQL text contains no interpolated input.
package query

import (
	"fmt"
	"strings"
	"time"
)

// Criteria is the set of optional filter constraints applied uniformly
// across reporting endpoints. Every field is independently optional; an
// absent field imposes no constraint.
type Criteria struct {
	ClientID   string
	SalesRepID string
	StartDate  *time.Time // inclusive lower bound on lead creation
	EndDate    *time.Time // exclusive upper bound on lead creation
	Search     string
}

// IsZero reports whether no filter field is set.
func (c Criteria) IsZero() bool {
	return c.ClientID == "" && c.SalesRepID == "" &&
		c.StartDate == nil && c.EndDate == nil && c.Search == ""
}

// placeholderMarker is replaced with the condition's positional parameter
// when the predicate is rendered. A template may repeat the marker to reuse
// one bound value in several positions (the free-text search does).
const placeholderMarker = "{}"

// Condition pairs a SQL template with the single value bound to its
// placeholder marker.
type Condition struct {
	Template string
	Value    interface{}
}

// Conditions maps the present criteria fields to their SQL conditions, in a
// fixed order so identical criteria always render identical SQL.
func Conditions(c Criteria) []Condition {
	conditions := make([]Condition, 0, 5)

	if c.ClientID != "" {
		// Compared as text so a malformed id filters to no rows instead of
		// failing the uuid cast.
		conditions = append(conditions, Condition{
			Template: "l.client_id::text = {}",
			Value:    c.ClientID,
		})
	}
	if c.SalesRepID != "" {
		conditions = append(conditions, Condition{
			Template: "l.sales_rep_id::text = {}",
			Value:    c.SalesRepID,
		})
	}
	if c.StartDate != nil {
		conditions = append(conditions, Condition{
			Template: "l.created_at >= {}",
			Value:    *c.StartDate,
		})
	}
	if c.EndDate != nil {
		conditions = append(conditions, Condition{
			Template: "l.created_at < {}",
			Value:    *c.EndDate,
		})
	}
	if c.Search != "" {
		conditions = append(conditions, Condition{
			Template: "(l.full_name ILIKE {} OR l.whatsapp ILIKE {} OR l.interest ILIKE {} OR c.name ILIKE {})",
			Value:    "%" + c.Search + "%",
		})
	}

	return conditions
}

// Render joins the conditions with AND, numbering placeholders from
// firstArg, and returns the predicate text with its bound values.
// An empty condition list renders to an empty predicate.
func Render(conditions []Condition, firstArg int) (string, []interface{}) {
	if len(conditions) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(conditions))
	args := make([]interface{}, 0, len(conditions))
	for i, cond := range conditions {
		placeholder := fmt.Sprintf("$%d", firstArg+i)
		parts = append(parts, strings.ReplaceAll(cond.Template, placeholderMarker, placeholder))
		args = append(args, cond.Value)
	}

	return strings.Join(parts, " AND "), args
}

// Where renders the criteria as a full WHERE clause (empty string when no
// field is set) with parameters numbered from $1.
func Where(c Criteria) (string, []interface{}) {
	predicate, args := Render(Conditions(c), 1)
	if predicate == "" {
		return "", nil
	}
	return "WHERE " + predicate, args
}
