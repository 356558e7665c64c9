package query

import (
	"strings"
	"testing"
)

func TestProjectionSQL_DeduplicatesBeforeOuterOrdering(t *testing.T) {
	sql, args := ProjectionSQL(Criteria{}, false)

	if !strings.Contains(sql, "DISTINCT ON (l.id)") {
		t.Fatalf("projection must deduplicate per lead: %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY l.id, le.occurred_at DESC NULLS LAST") {
		t.Fatalf("inner ordering must pick the latest event with nulls last: %q", sql)
	}
	// The recency sort applies only to the wrapped, already-deduplicated rows.
	inner := strings.Index(sql, "ORDER BY l.id")
	outer := strings.Index(sql, "ORDER BY created_at DESC, id DESC")
	if outer < inner {
		t.Fatalf("outer ordering must follow deduplication: %q", sql)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args without filters, got %d", len(args))
	}
	if strings.Contains(sql, "LIMIT") {
		t.Fatalf("unpaginated projection must not limit rows: %q", sql)
	}
}

func TestProjectionSQL_PagePlaceholdersContinuePredicateNumbering(t *testing.T) {
	sql, args := ProjectionSQL(Criteria{ClientID: "c", Search: "x"}, true)

	if len(args) != 2 {
		t.Fatalf("expected 2 predicate args, got %d", len(args))
	}
	if !strings.Contains(sql, "LIMIT $3 OFFSET $4") {
		t.Fatalf("expected page placeholders after predicate args: %q", sql)
	}
}

func TestCountSQL_CountsDistinctLeadsOverSameJoins(t *testing.T) {
	sql, args := CountSQL(Criteria{Search: "x"})

	if !strings.Contains(sql, "COUNT(DISTINCT l.id)") {
		t.Fatalf("count must reflect post-deduplication leads: %q", sql)
	}
	for _, join := range []string{"JOIN clients c", "LEFT JOIN sales_reps sr", "LEFT JOIN lead_events le"} {
		if !strings.Contains(sql, join) {
			t.Fatalf("count query missing join %q: %q", join, sql)
		}
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}
