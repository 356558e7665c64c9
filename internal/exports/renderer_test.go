package exports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"esensi_dashboard_backend/internal/reporting/query"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

func displayLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func sampleRows() []query.LeadRow {
	interest := "solar, home battery"
	rep := "Maria"
	sent := time.Date(2024, 2, 10, 3, 30, 0, 0, time.UTC)
	return []query.LeadRow{
		{
			ID:             uuid.MustParse("6f1a3c2e-9d4b-4f6a-8c1d-0b2e4a6c8e01"),
			CreatedAt:      time.Date(2024, 2, 10, 1, 0, 0, 0, time.UTC),
			FullName:       "Budi Santoso",
			WhatsApp:       "+628111222333",
			Interest:       &interest,
			ClientName:     "Acme",
			SalesRepName:   &rep,
			AIReportSentAt: &sent,
		},
		{
			ID:         uuid.MustParse("7a2b4d3f-0e5c-4a7b-9d2e-1c3f5b7d9f02"),
			CreatedAt:  time.Date(2024, 2, 11, 9, 15, 0, 0, time.UTC),
			FullName:   "Siti Rahma",
			WhatsApp:   "+628999888777",
			ClientName: "Beta",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows(), displayLocation(t)); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Created At,Full Name,WhatsApp,Interest,Client,Sales Rep,AI Report Sent,Sales Rep Replied" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	// The interest field contains a comma and must be quoted.
	if !strings.Contains(lines[1], `"solar, home battery"`) {
		t.Fatalf("expected quoted interest field, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "Feb 10, 2024, 08:00 AM") {
		t.Fatalf("expected display-formatted created_at, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Unassigned") {
		t.Fatalf("expected unassigned sentinel, got %q", lines[2])
	}
	if !strings.Contains(lines[2], "N/A") {
		t.Fatalf("expected missing timestamp sentinel, got %q", lines[2])
	}
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, displayLocation(t)); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if got := strings.TrimRight(buf.String(), "\n"); !strings.HasPrefix(got, "ID,Created At") {
		t.Fatalf("expected header row, got %q", got)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("expected a single line, got %q", buf.String())
	}
}

func TestWriteCSV_Deterministic(t *testing.T) {
	loc := displayLocation(t)
	rows := sampleRows()

	var first, second bytes.Buffer
	if err := WriteCSV(&first, rows, loc); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if err := WriteCSV(&second, rows, loc); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestBuildWorkbook(t *testing.T) {
	loc := displayLocation(t)
	f, err := BuildWorkbook(sampleRows(), loc)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Leads" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	for i, want := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		got, err := f.GetCellValue("Leads", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Fatalf("header cell %s: expected %q, got %q", cell, want, got)
		}
	}

	name, err := f.GetCellValue("Leads", "C2")
	if err != nil {
		t.Fatalf("GetCellValue(C2): %v", err)
	}
	if name != "Budi Santoso" {
		t.Fatalf("expected first data row in row 2, got %q", name)
	}
	rep, err := f.GetCellValue("Leads", "G3")
	if err != nil {
		t.Fatalf("GetCellValue(G3): %v", err)
	}
	if rep != "Unassigned" {
		t.Fatalf("expected unassigned sentinel, got %q", rep)
	}
}
