// Package exports implements the CSV and spreadsheet lead export module.
package exports

import (
	apphttp "esensi_dashboard_backend/internal/http"
	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/logger"
)

// Module is the exports bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the exports module. It reads through the
// reporting projection so exports and the table always agree.
func NewModule(leads LeadLister, display config.DisplayConfig, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(leads, display, log)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "exports"
}

// RegisterRoutes mounts export routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/export")
	group.GET("/csv", m.handler.HandleExportCSV)
	group.GET("/excel", m.handler.HandleExportExcel)
}

var _ apphttp.Module = (*Module)(nil)
