// Package reporting implements the dashboard's read-only reporting module:
// KPI aggregates, the leads-over-time chart, the paginated lead table and
// the filter option lists. All routes require an authenticated session.
package reporting

import (
	apphttp "esensi_dashboard_backend/internal/http"
	"esensi_dashboard_backend/internal/reporting/handler"
	"esensi_dashboard_backend/internal/reporting/repository"
	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the reporting bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repository
}

// NewModule creates and initializes the reporting module.
func NewModule(pool *pgxpool.Pool, display config.DisplayConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	h := handler.New(repo, display, log)

	return &Module{
		handler: h,
		repo:    repo,
	}
}

// Repository exposes the reporting repository for modules that reuse the
// same projection (exports).
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "reporting"
}

// RegisterRoutes mounts reporting routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	kpi := ctx.Protected.Group("/kpi")
	kpi.GET("/summary", m.handler.HandleKPISummary)
	kpi.GET("/leads-per-client", m.handler.HandleLeadsPerClient)
	kpi.GET("/leads-per-sales-rep", m.handler.HandleLeadsPerSalesRep)

	chart := ctx.Protected.Group("/chart")
	chart.GET("/leads-over-time", m.handler.HandleLeadsOverTime)

	table := ctx.Protected.Group("/table")
	table.GET("/recent-leads", m.handler.HandleRecentLeads)

	filters := ctx.Protected.Group("/filters")
	filters.GET("/clients", m.handler.HandleListClients)
	filters.GET("/sales-reps", m.handler.HandleListSalesReps)
}

var _ apphttp.Module = (*Module)(nil)
