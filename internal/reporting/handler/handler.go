// Package handler serves the KPI, chart, table and filter endpoints.
package handler

import (
	"time"

	"esensi_dashboard_backend/internal/reporting/repository"
	"esensi_dashboard_backend/internal/reporting/transport"
	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/httpkit"
	"esensi_dashboard_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// Handler holds the reporting endpoints' dependencies.
type Handler struct {
	repo    *repository.Repository
	display config.DisplayConfig
	log     *logger.Logger
}

// New creates the reporting handler.
func New(repo *repository.Repository, display config.DisplayConfig, log *logger.Logger) *Handler {
	return &Handler{repo: repo, display: display, log: log}
}

// HandleKPISummary serves GET /api/kpi/summary.
func (h *Handler) HandleKPISummary(c *gin.Context) {
	criteria := transport.ParseCriteria(c)

	summary, err := h.repo.GetKPISummary(c.Request.Context(), criteria, time.Now())
	if err != nil {
		h.fail(c, "Failed to fetch KPI summary", err)
		return
	}

	httpkit.OK(c, transport.ToKPISummaryResponse(summary))
}

// HandleLeadsPerClient serves GET /api/kpi/leads-per-client.
func (h *Handler) HandleLeadsPerClient(c *gin.Context) {
	criteria := transport.WithDefaultWindow(transport.ParseCriteria(c), time.Now())

	items, err := h.repo.GetLeadsPerClient(c.Request.Context(), criteria)
	if err != nil {
		h.fail(c, "Failed to fetch leads per client", err)
		return
	}

	httpkit.OK(c, transport.ToClientLeadCountResponses(items))
}

// HandleLeadsPerSalesRep serves GET /api/kpi/leads-per-sales-rep.
func (h *Handler) HandleLeadsPerSalesRep(c *gin.Context) {
	criteria := transport.WithDefaultWindow(transport.ParseCriteria(c), time.Now())

	items, err := h.repo.GetLeadsPerSalesRep(c.Request.Context(), criteria)
	if err != nil {
		h.fail(c, "Failed to fetch leads per sales rep", err)
		return
	}

	httpkit.OK(c, transport.ToSalesRepLeadCountResponses(items))
}

// HandleLeadsOverTime serves GET /api/chart/leads-over-time.
func (h *Handler) HandleLeadsOverTime(c *gin.Context) {
	criteria := transport.WithDefaultWindow(transport.ParseCriteria(c), time.Now())

	items, err := h.repo.GetLeadsOverTime(c.Request.Context(), criteria)
	if err != nil {
		h.fail(c, "Failed to fetch chart data", err)
		return
	}

	httpkit.OK(c, transport.ToChartResponse(items))
}

// HandleRecentLeads serves GET /api/table/recent-leads.
func (h *Handler) HandleRecentLeads(c *gin.Context) {
	criteria := transport.ParseCriteria(c)
	page := transport.ParsePagination(c)

	rows, total, err := h.repo.ListLeadsPage(c.Request.Context(), criteria, page.PageSize, page.Offset())
	if err != nil {
		h.fail(c, "Failed to fetch recent leads", err)
		return
	}

	httpkit.OK(c, transport.TableResponse{
		Leads: transport.ToLeadResponses(rows, h.display.GetDisplayLocation()),
		Pagination: transport.PaginationResponse{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      total,
			TotalPages: page.TotalPages(total),
		},
	})
}

// HandleListClients serves GET /api/filters/clients.
func (h *Handler) HandleListClients(c *gin.Context) {
	items, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch clients", err)
		return
	}
	httpkit.OK(c, items)
}

// HandleListSalesReps serves GET /api/filters/sales-reps.
func (h *Handler) HandleListSalesReps(c *gin.Context) {
	items, err := h.repo.ListSalesReps(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch sales reps", err)
		return
	}
	httpkit.OK(c, items)
}

func (h *Handler) fail(c *gin.Context, label string, err error) {
	h.log.HTTPError(c.Request.Method, c.Request.URL.Path, 500, err, c.ClientIP())
	httpkit.HandleError(c, label, err)
}
