package repository

import (
	"context"
	"fmt"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"

	"github.com/google/uuid"
)

// ClientLeadCount is one leads-per-client rollup row.
type ClientLeadCount struct {
	ClientID   uuid.UUID
	ClientName string
	LeadCount  int
}

// GetLeadsPerClient counts matching leads grouped by client, ordered by
// descending count. The caller is expected to have defaulted the date window
// on the criteria.
func (r *Repository) GetLeadsPerClient(ctx context.Context, c query.Criteria) ([]ClientLeadCount, error) {
	where, args := query.Where(c)
	sql := fmt.Sprintf(`
		SELECT c.id, c.name, COUNT(*) AS lead_count
		FROM leads l
		JOIN clients c ON c.id = l.client_id
		%s
		GROUP BY c.id, c.name
		ORDER BY lead_count DESC, c.name ASC
	`, where)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ClientLeadCount, 0)
	for rows.Next() {
		var item ClientLeadCount
		if err := rows.Scan(&item.ClientID, &item.ClientName, &item.LeadCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SalesRepLeadCount is one leads-per-sales-rep rollup row, keyed by the
// (client, sales rep) pair. SalesRepID and SalesRepName stay nil for leads
// with no assigned rep.
type SalesRepLeadCount struct {
	ClientID     uuid.UUID
	ClientName   string
	SalesRepID   *uuid.UUID
	SalesRepName *string
	LeadCount    int
}

// GetLeadsPerSalesRep counts matching leads grouped by (client, sales rep),
// ordered by descending count with name tiebreaks.
func (r *Repository) GetLeadsPerSalesRep(ctx context.Context, c query.Criteria) ([]SalesRepLeadCount, error) {
	where, args := query.Where(c)
	sql := fmt.Sprintf(`
		SELECT c.id, c.name, sr.id, sr.name, COUNT(*) AS lead_count
		FROM leads l
		JOIN clients c ON c.id = l.client_id
		LEFT JOIN sales_reps sr ON sr.id = l.sales_rep_id
		%s
		GROUP BY c.id, c.name, sr.id, sr.name
		ORDER BY lead_count DESC, c.name ASC, COALESCE(sr.name, 'Unassigned') ASC
	`, where)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SalesRepLeadCount, 0)
	for rows.Next() {
		var item SalesRepLeadCount
		if err := rows.Scan(&item.ClientID, &item.ClientName, &item.SalesRepID, &item.SalesRepName, &item.LeadCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DailyLeadCount is one time-series bucket: leads created on a calendar day.
type DailyLeadCount struct {
	Date      time.Time
	LeadCount int
}

// GetLeadsOverTime buckets matching leads by creation day, ascending.
func (r *Repository) GetLeadsOverTime(ctx context.Context, c query.Criteria) ([]DailyLeadCount, error) {
	where, args := query.Where(c)
	sql := fmt.Sprintf(`
		SELECT DATE(l.created_at) AS day, COUNT(*) AS lead_count
		FROM leads l
		JOIN clients c ON c.id = l.client_id
		%s
		GROUP BY DATE(l.created_at)
		ORDER BY day ASC
	`, where)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DailyLeadCount, 0)
	for rows.Next() {
		var item DailyLeadCount
		if err := rows.Scan(&item.Date, &item.LeadCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FilterOption is a selectable id/name pair for the filter bar.
type FilterOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListClients returns all clients ordered by name.
func (r *Repository) ListClients(ctx context.Context) ([]FilterOption, error) {
	return r.listOptions(ctx, `SELECT id, name FROM clients ORDER BY name ASC`)
}

// ListSalesReps returns all sales reps ordered by name.
func (r *Repository) ListSalesReps(ctx context.Context) ([]FilterOption, error) {
	return r.listOptions(ctx, `SELECT id, name FROM sales_reps ORDER BY name ASC`)
}

func (r *Repository) listOptions(ctx context.Context, sql string) ([]FilterOption, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]FilterOption, 0)
	for rows.Next() {
		var item FilterOption
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
