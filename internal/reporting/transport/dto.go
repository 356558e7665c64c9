package transport

import (
	"time"

	"esensi_dashboard_backend/internal/reporting/query"
	"esensi_dashboard_backend/internal/reporting/repository"

	"github.com/google/uuid"
)

// KPISummaryResponse is the headline KPI payload. AvgResponseMinutes stays
// null when no lead event carries both timestamps. QualifiedRatio is a
// placeholder the UI expects; it is not computed server-side.
type KPISummaryResponse struct {
	TotalLeads         int      `json:"totalLeads"`
	Leads7Days         int      `json:"leads7Days"`
	Leads30Days        int      `json:"leads30Days"`
	AvgResponseMinutes *float64 `json:"avgResponseMinutes"`
	SlowResponseCount  int      `json:"slowResponseCount"`
	QualifiedRatio     float64  `json:"qualifiedRatio"`
}

// ToKPISummaryResponse maps the repository aggregate to the API payload.
func ToKPISummaryResponse(summary repository.KPISummary) KPISummaryResponse {
	return KPISummaryResponse{
		TotalLeads:         summary.TotalLeads,
		Leads7Days:         summary.Leads7Days,
		Leads30Days:        summary.Leads30Days,
		AvgResponseMinutes: summary.AvgResponseMinutes,
		SlowResponseCount:  summary.SlowResponseCount,
		QualifiedRatio:     0,
	}
}

// ClientLeadCountResponse is one leads-per-client rollup row.
type ClientLeadCountResponse struct {
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	LeadCount  int       `json:"lead_count"`
}

// ToClientLeadCountResponses maps the per-client rollup.
func ToClientLeadCountResponses(items []repository.ClientLeadCount) []ClientLeadCountResponse {
	result := make([]ClientLeadCountResponse, len(items))
	for i, item := range items {
		result[i] = ClientLeadCountResponse{
			ClientID:   item.ClientID,
			ClientName: item.ClientName,
			LeadCount:  item.LeadCount,
		}
	}
	return result
}

// SalesRepLeadCountResponse is one leads-per-sales-rep rollup row.
type SalesRepLeadCountResponse struct {
	ClientID     uuid.UUID  `json:"client_id"`
	ClientName   string     `json:"client_name"`
	SalesRepID   *uuid.UUID `json:"sales_rep_id"`
	SalesRepName string     `json:"sales_rep_name"`
	LeadCount    int        `json:"lead_count"`
}

// ToSalesRepLeadCountResponses maps the per-rep rollup, substituting the
// unassigned sentinel for missing reps.
func ToSalesRepLeadCountResponses(items []repository.SalesRepLeadCount) []SalesRepLeadCountResponse {
	result := make([]SalesRepLeadCountResponse, len(items))
	for i, item := range items {
		result[i] = SalesRepLeadCountResponse{
			ClientID:     item.ClientID,
			ClientName:   item.ClientName,
			SalesRepID:   item.SalesRepID,
			SalesRepName: SalesRepDisplay(item.SalesRepName),
			LeadCount:    item.LeadCount,
		}
	}
	return result
}

// ChartResponse is the leads-over-time payload shaped for Chart.js, with the
// raw buckets included for additional client-side processing.
type ChartResponse struct {
	Labels []string           `json:"labels"`
	Data   []int              `json:"data"`
	Raw    []ChartRawResponse `json:"raw"`
}

// ChartRawResponse is one raw time-series bucket.
type ChartRawResponse struct {
	Date      string `json:"date"`
	LeadCount int    `json:"lead_count"`
}

// ToChartResponse maps the daily buckets to chart labels and data points.
func ToChartResponse(items []repository.DailyLeadCount) ChartResponse {
	response := ChartResponse{
		Labels: make([]string, len(items)),
		Data:   make([]int, len(items)),
		Raw:    make([]ChartRawResponse, len(items)),
	}
	for i, item := range items {
		response.Labels[i] = ShortDate(item.Date)
		response.Data[i] = item.LeadCount
		response.Raw[i] = ChartRawResponse{
			Date:      item.Date.Format("2006-01-02"),
			LeadCount: item.LeadCount,
		}
	}
	return response
}

// LeadResponse is one table row with display-formatted timestamps.
type LeadResponse struct {
	ID                uuid.UUID `json:"id"`
	CreatedAt         string    `json:"created_at"`
	FullName          string    `json:"full_name"`
	WhatsApp          string    `json:"whatsapp"`
	Interest          string    `json:"interest"`
	ClientName        string    `json:"client_name"`
	SalesRepName      string    `json:"sales_rep_name"`
	AIReportSentAt    string    `json:"ai_report_sent_at"`
	SalesRepRepliedAt string    `json:"sales_rep_replied_at"`
}

// ToLeadResponses maps projection rows for the table.
func ToLeadResponses(rows []query.LeadRow, loc *time.Location) []LeadResponse {
	result := make([]LeadResponse, len(rows))
	for i, row := range rows {
		result[i] = LeadResponse{
			ID:                row.ID,
			CreatedAt:         FormatTime(row.CreatedAt, loc),
			FullName:          row.FullName,
			WhatsApp:          row.WhatsApp,
			Interest:          TextDisplay(row.Interest),
			ClientName:        row.ClientName,
			SalesRepName:      SalesRepDisplay(row.SalesRepName),
			AIReportSentAt:    FormatTimestamp(row.AIReportSentAt, loc),
			SalesRepRepliedAt: FormatTimestamp(row.SalesRepRepliedAt, loc),
		}
	}
	return result
}

// PaginationResponse is the table pagination metadata.
type PaginationResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// TableResponse is the paginated lead table payload.
type TableResponse struct {
	Leads      []LeadResponse     `json:"leads"`
	Pagination PaginationResponse `json:"pagination"`
}
