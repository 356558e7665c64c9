// Package repository provides data access for the reporting dashboard.
package repository

import (
	"context"
	"fmt"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Repository runs the reporting queries against the shared pool.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a reporting repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListLeads returns the full deduplicated projection for the criteria,
// ordered most recent first. Used by exports, which never paginate.
func (r *Repository) ListLeads(ctx context.Context, c query.Criteria) ([]query.LeadRow, error) {
	sql, args := query.ProjectionSQL(c, false)
	return r.queryLeads(ctx, sql, args)
}

// ListLeadsPage returns one page of the projection plus the total matching
// lead count. The count and page queries share the same predicate and join
// structure and run concurrently; both must succeed.
func (r *Repository) ListLeadsPage(ctx context.Context, c query.Criteria, limit, offset int) ([]query.LeadRow, int, error) {
	pageSQL, pageArgs := query.ProjectionSQL(c, true)
	pageArgs = append(pageArgs, limit, offset)
	countSQL, countArgs := query.CountSQL(c)

	var (
		rows  []query.LeadRow
		total int
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		result, err := r.queryLeads(groupCtx, pageSQL, pageArgs)
		if err != nil {
			return err
		}
		rows = result
		return nil
	})
	group.Go(func() error {
		return r.pool.QueryRow(groupCtx, countSQL, countArgs...).Scan(&total)
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository) queryLeads(ctx context.Context, sql string, args []interface{}) ([]query.LeadRow, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]query.LeadRow, 0)
	for rows.Next() {
		var item query.LeadRow
		if err := rows.Scan(
			&item.ID, &item.CreatedAt, &item.FullName, &item.WhatsApp, &item.Interest,
			&item.ClientName, &item.SalesRepName, &item.AIReportSentAt, &item.SalesRepRepliedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// KPISummary aggregates the dashboard headline numbers for the criteria.
type KPISummary struct {
	TotalLeads         int
	Leads7Days         int
	Leads30Days        int
	AvgResponseMinutes *float64
	SlowResponseCount  int
}

// GetKPISummary computes the headline KPIs in one round trip. The response
// average stays NULL (not zero) when no event has both timestamps set, and
// negative intervals are deliberately left unclamped.
func (r *Repository) GetKPISummary(ctx context.Context, c query.Criteria, now time.Time) (KPISummary, error) {
	where, args := query.Where(c)
	cutoff7 := len(args) + 1
	cutoff30 := len(args) + 2
	args = append(args, now.AddDate(0, 0, -7), now.AddDate(0, 0, -30))

	sql := fmt.Sprintf(`
		WITH filtered AS (
			SELECT l.id, l.created_at
			FROM leads l
			JOIN clients c ON c.id = l.client_id
			%[1]s
		),
		filtered_events AS (
			SELECT le.ai_report_sent_at, le.sales_rep_replied_at
			FROM lead_events le
			JOIN leads l ON l.id = le.lead_id
			JOIN clients c ON c.id = l.client_id
			%[1]s
		)
		SELECT
			(SELECT COUNT(*) FROM filtered) AS total_leads,
			(SELECT COUNT(*) FROM filtered WHERE created_at >= $%[2]d) AS leads_7_days,
			(SELECT COUNT(*) FROM filtered WHERE created_at >= $%[3]d) AS leads_30_days,
			(
				SELECT ROUND(AVG(EXTRACT(EPOCH FROM (sales_rep_replied_at - ai_report_sent_at)) / 60)::numeric, 2)::float8
				FROM filtered_events
				WHERE ai_report_sent_at IS NOT NULL AND sales_rep_replied_at IS NOT NULL
			) AS avg_response_minutes,
			(
				SELECT COUNT(*)
				FROM filtered_events
				WHERE ai_report_sent_at IS NOT NULL AND sales_rep_replied_at IS NOT NULL
					AND sales_rep_replied_at - ai_report_sent_at > interval '60 minutes'
			) AS slow_response_count
	`, where, cutoff7, cutoff30)

	var summary KPISummary
	err := r.pool.QueryRow(ctx, sql, args...).Scan(
		&summary.TotalLeads,
		&summary.Leads7Days,
		&summary.Leads30Days,
		&summary.AvgResponseMinutes,
		&summary.SlowResponseCount,
	)
	if err != nil {
		return KPISummary{}, err
	}
	return summary, nil
}
