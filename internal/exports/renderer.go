package exports

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"
	"esensi_dashboard_backend/internal/reporting/transport"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Leads"

// exportHeaders is the fixed column order shared by both export formats.
var exportHeaders = []string{
	"ID",
	"Created At",
	"Full Name",
	"WhatsApp",
	"Interest",
	"Client",
	"Sales Rep",
	"AI Report Sent",
	"Sales Rep Replied",
}

// columnWidths sizes the spreadsheet columns, indexed like exportHeaders.
var columnWidths = []float64{20, 20, 25, 20, 30, 25, 25, 20, 20}

// leadRecord renders one projection row with the same display formatting the
// table endpoint uses.
func leadRecord(row query.LeadRow, loc *time.Location) []string {
	return []string{
		row.ID.String(),
		transport.FormatTime(row.CreatedAt, loc),
		row.FullName,
		row.WhatsApp,
		transport.TextDisplay(row.Interest),
		row.ClientName,
		transport.SalesRepDisplay(row.SalesRepName),
		transport.FormatTimestamp(row.AIReportSentAt, loc),
		transport.FormatTimestamp(row.SalesRepRepliedAt, loc),
	}
}

// WriteCSV streams the full export as CSV: a fixed header row, then one line
// per lead. Fields containing commas or quotes are quoted per RFC 4180.
func WriteCSV(w io.Writer, rows []query.LeadRow, loc *time.Location) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(leadRecord(row, loc)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// BuildWorkbook renders the export as a spreadsheet: a bold header row with
// a shaded background, then one data row per lead with values identical to
// the CSV output.
func BuildWorkbook(rows []query.LeadRow, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeaders))
	for i, name := range exportHeaders {
		header[i] = name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		record := leadRecord(row, loc)
		values := make([]interface{}, len(record))
		for j, value := range record {
			values[j] = value
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return f, nil
}
