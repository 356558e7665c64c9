package transport

import (
	"testing"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"
	"esensi_dashboard_backend/internal/reporting/repository"

	"github.com/google/uuid"
)

func TestToKPISummaryResponse(t *testing.T) {
	avg := 42.5
	summary := repository.KPISummary{
		TotalLeads:         120,
		Leads7Days:         14,
		Leads30Days:        55,
		AvgResponseMinutes: &avg,
		SlowResponseCount:  3,
	}

	response := ToKPISummaryResponse(summary)

	if response.TotalLeads != 120 || response.Leads7Days != 14 || response.Leads30Days != 55 {
		t.Fatalf("unexpected counts: %+v", response)
	}
	if response.AvgResponseMinutes == nil || *response.AvgResponseMinutes != 42.5 {
		t.Fatalf("expected average 42.5, got %v", response.AvgResponseMinutes)
	}
	if response.SlowResponseCount != 3 {
		t.Fatalf("expected slow count 3, got %d", response.SlowResponseCount)
	}
	if response.QualifiedRatio != 0 {
		t.Fatalf("expected qualified ratio 0, got %v", response.QualifiedRatio)
	}
}

func TestToKPISummaryResponse_NullAveragePreserved(t *testing.T) {
	response := ToKPISummaryResponse(repository.KPISummary{TotalLeads: 1})

	if response.AvgResponseMinutes != nil {
		t.Fatalf("expected nil average, got %v", *response.AvgResponseMinutes)
	}
}

func TestToSalesRepLeadCountResponses_SubstitutesUnassigned(t *testing.T) {
	name := "Maria"
	repID := uuid.New()
	items := []repository.SalesRepLeadCount{
		{ClientID: uuid.New(), ClientName: "Acme", SalesRepID: &repID, SalesRepName: &name, LeadCount: 5},
		{ClientID: uuid.New(), ClientName: "Beta", SalesRepID: nil, SalesRepName: nil, LeadCount: 2},
	}

	result := ToSalesRepLeadCountResponses(items)

	if len(result) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result))
	}
	if result[0].SalesRepName != "Maria" {
		t.Fatalf("expected Maria, got %q", result[0].SalesRepName)
	}
	if result[1].SalesRepName != "Unassigned" {
		t.Fatalf("expected Unassigned, got %q", result[1].SalesRepName)
	}
	if result[1].SalesRepID != nil {
		t.Fatalf("expected nil rep id for unassigned row")
	}
}

func TestToChartResponse(t *testing.T) {
	items := []repository.DailyLeadCount{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), LeadCount: 3},
		{Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), LeadCount: 7},
	}

	response := ToChartResponse(items)

	if len(response.Labels) != 2 || len(response.Data) != 2 || len(response.Raw) != 2 {
		t.Fatalf("unexpected lengths: %+v", response)
	}
	if response.Labels[0] != "Jan 5" || response.Labels[1] != "Jan 6" {
		t.Fatalf("unexpected labels: %v", response.Labels)
	}
	if response.Data[0] != 3 || response.Data[1] != 7 {
		t.Fatalf("unexpected data points: %v", response.Data)
	}
	if response.Raw[0].Date != "2024-01-05" || response.Raw[0].LeadCount != 3 {
		t.Fatalf("unexpected raw bucket: %+v", response.Raw[0])
	}
}

func TestToChartResponse_EmptySeries(t *testing.T) {
	response := ToChartResponse(nil)

	if len(response.Labels) != 0 || len(response.Data) != 0 || len(response.Raw) != 0 {
		t.Fatalf("expected empty series, got %+v", response)
	}
}

func TestToLeadResponses(t *testing.T) {
	loc := jakarta(t)
	interest := "solar panels"
	sent := time.Date(2024, 2, 10, 3, 30, 0, 0, time.UTC)
	rows := []query.LeadRow{
		{
			ID:             uuid.New(),
			CreatedAt:      time.Date(2024, 2, 10, 1, 0, 0, 0, time.UTC),
			FullName:       "Budi Santoso",
			WhatsApp:       "+628111222333",
			Interest:       &interest,
			ClientName:     "Acme",
			SalesRepName:   nil,
			AIReportSentAt: &sent,
		},
	}

	result := ToLeadResponses(rows, loc)

	if len(result) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result))
	}
	row := result[0]
	if row.CreatedAt != "Feb 10, 2024, 08:00 AM" {
		t.Fatalf("unexpected created_at display: %q", row.CreatedAt)
	}
	if row.Interest != "solar panels" {
		t.Fatalf("unexpected interest: %q", row.Interest)
	}
	if row.SalesRepName != "Unassigned" {
		t.Fatalf("expected Unassigned, got %q", row.SalesRepName)
	}
	if row.AIReportSentAt != "Feb 10, 2024, 10:30 AM" {
		t.Fatalf("unexpected ai_report_sent_at display: %q", row.AIReportSentAt)
	}
	if row.SalesRepRepliedAt != "N/A" {
		t.Fatalf("expected N/A for missing reply, got %q", row.SalesRepRepliedAt)
	}
}
