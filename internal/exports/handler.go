package exports

import (
	"context"
	"fmt"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"
	"esensi_dashboard_backend/internal/reporting/transport"
	"esensi_dashboard_backend/platform/config"
	"esensi_dashboard_backend/platform/httpkit"
	"esensi_dashboard_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LeadLister reads the full deduplicated lead projection for a set of
// filters. Implemented by the reporting repository.
type LeadLister interface {
	ListLeads(ctx context.Context, c query.Criteria) ([]query.LeadRow, error)
}

// Handler serves the CSV and spreadsheet export endpoints. Exports always
// cover the full filtered set; pagination parameters are ignored.
type Handler struct {
	leads   LeadLister
	display config.DisplayConfig
	log     *logger.Logger
}

// NewHandler creates the export handler.
func NewHandler(leads LeadLister, display config.DisplayConfig, log *logger.Logger) *Handler {
	return &Handler{leads: leads, display: display, log: log}
}

// HandleExportCSV serves GET /api/export/csv.
func (h *Handler) HandleExportCSV(c *gin.Context) {
	criteria := transport.ParseCriteria(c)

	rows, err := h.leads.ListLeads(c.Request.Context(), criteria)
	if err != nil {
		h.fail(c, "Failed to export CSV", err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", attachmentName("csv"))

	if err := WriteCSV(c.Writer, rows, h.display.GetDisplayLocation()); err != nil {
		// Headers are already flushed; log and drop the connection.
		h.log.HTTPError(c.Request.Method, c.Request.URL.Path, 500, err, c.ClientIP())
	}
}

// HandleExportExcel serves GET /api/export/excel.
func (h *Handler) HandleExportExcel(c *gin.Context) {
	criteria := transport.ParseCriteria(c)

	rows, err := h.leads.ListLeads(c.Request.Context(), criteria)
	if err != nil {
		h.fail(c, "Failed to export Excel", err)
		return
	}

	workbook, err := BuildWorkbook(rows, h.display.GetDisplayLocation())
	if err != nil {
		h.fail(c, "Failed to export Excel", err)
		return
	}
	defer workbook.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", attachmentName("xlsx"))

	if err := workbook.Write(c.Writer); err != nil {
		h.log.HTTPError(c.Request.Method, c.Request.URL.Path, 500, err, c.ClientIP())
	}
}

// attachmentName embeds a generation timestamp so repeated downloads never
// collide in the client's cache.
func attachmentName(ext string) string {
	return fmt.Sprintf("attachment; filename=leads-export-%d.%s", time.Now().UnixMilli(), ext)
}

func (h *Handler) fail(c *gin.Context, label string, err error) {
	h.log.HTTPError(c.Request.Method, c.Request.URL.Path, 500, err, c.ClientIP())
	httpkit.HandleError(c, label, err)
}
