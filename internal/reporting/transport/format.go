package transport

import "time"

// Display sentinels shared by the table and both export formats.
const (
	MissingTimestamp = "N/A"
	UnassignedRep    = "Unassigned"
)

// displayLayout matches the dashboard's en-US locale rendering.
const displayLayout = "Jan 2, 2006, 03:04 PM"

// shortDateLayout is the chart axis label format.
const shortDateLayout = "Jan 2"

// FormatTimestamp renders a timestamp for display in the configured
// timezone; nil renders the missing sentinel.
func FormatTimestamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return MissingTimestamp
	}
	return t.In(loc).Format(displayLayout)
}

// FormatTime renders a non-null timestamp for display.
func FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(displayLayout)
}

// ShortDate renders a chart axis label such as "Jan 5". The value is a
// calendar day from the store, so it is formatted without timezone
// conversion.
func ShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// SalesRepDisplay renders a nullable sales rep name, substituting the
// unassigned sentinel.
func SalesRepDisplay(name *string) string {
	if name == nil || *name == "" {
		return UnassignedRep
	}
	return *name
}

// TextDisplay renders a nullable free-text field as an empty string.
func TextDisplay(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
