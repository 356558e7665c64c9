package query

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LeadRow is the joined, deduplicated projection combining lead, client,
// sales rep and latest lead-event data. Nullable fields stay pointers so the
// transport layer can render the display sentinels.
type LeadRow struct {
	ID                uuid.UUID
	CreatedAt         time.Time
	FullName          string
	WhatsApp          string
	Interest          *string
	ClientName        string
	SalesRepName      *string
	AIReportSentAt    *time.Time
	SalesRepRepliedAt *time.Time
}

// projectionJoins is the join structure every reporting query shares: leads
// must resolve their client (inner join), while sales rep and events are
// optional.
const projectionJoins = `
	FROM leads l
	JOIN clients c ON c.id = l.client_id
	LEFT JOIN sales_reps sr ON sr.id = l.sales_rep_id
	LEFT JOIN lead_events le ON le.lead_id = l.id`

// ProjectionSQL builds the deduplicated projection query for the given
// criteria. DISTINCT ON picks exactly one row per lead, keeping the event
// with the latest occurrence timestamp (nulls last), before the outer sort
// and pagination are applied. withPage appends LIMIT/OFFSET placeholders
// continuing the predicate's numbering.
func ProjectionSQL(c Criteria, withPage bool) (string, []interface{}) {
	where, args := Where(c)

	sql := fmt.Sprintf(`
		SELECT id, created_at, full_name, whatsapp, interest,
			client_name, sales_rep_name, ai_report_sent_at, sales_rep_replied_at
		FROM (
			SELECT DISTINCT ON (l.id)
				l.id, l.created_at, l.full_name, l.whatsapp, l.interest,
				c.name AS client_name,
				sr.name AS sales_rep_name,
				le.ai_report_sent_at,
				le.sales_rep_replied_at
			%s
			%s
			ORDER BY l.id, le.occurred_at DESC NULLS LAST
		) AS unique_leads
		ORDER BY created_at DESC, id DESC`, projectionJoins, where)

	if withPage {
		sql += fmt.Sprintf("\n\t\tLIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	}

	return sql, args
}

// CountSQL builds the matching-lead count for the same criteria and join
// structure as the projection, counting distinct leads so the total always
// equals the post-deduplication row count.
func CountSQL(c Criteria) (string, []interface{}) {
	where, args := Where(c)
	sql := fmt.Sprintf("SELECT COUNT(DISTINCT l.id)%s\n\t%s", projectionJoins, where)
	return sql, args
}
