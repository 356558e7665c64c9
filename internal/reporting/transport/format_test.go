package transport

import (
	"testing"
	"time"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return loc
}

func TestFormatTimestamp_NilRendersMissingSentinel(t *testing.T) {
	if got := FormatTimestamp(nil, jakarta(t)); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
}

func TestFormatTimestamp_ConvertsToDisplayTimezone(t *testing.T) {
	value := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	got := FormatTimestamp(&value, jakarta(t))

	// Jakarta is UTC+7, so 10:00 UTC renders as 5 PM.
	if got != "Jan 5, 2024, 05:00 PM" {
		t.Fatalf("unexpected display format: %q", got)
	}
}

func TestShortDate(t *testing.T) {
	value := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	if got := ShortDate(value); got != "Jan 5" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestSalesRepDisplay(t *testing.T) {
	if got := SalesRepDisplay(nil); got != "Unassigned" {
		t.Fatalf("expected Unassigned for nil, got %q", got)
	}
	name := "Maria"
	if got := SalesRepDisplay(&name); got != "Maria" {
		t.Fatalf("expected Maria, got %q", got)
	}
}

func TestTextDisplay(t *testing.T) {
	if got := TextDisplay(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}
	value := "solar panels"
	if got := TextDisplay(&value); got != "solar panels" {
		t.Fatalf("unexpected text: %q", got)
	}
}
