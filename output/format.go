package output

import (
	"fmt"
	"time"

	"timecards/internal/timeutil"
	"timecards/report"
	"timecards/timecard"
)

// DefaultDateLayout mirrors the en-US short date used for week headings.
const DefaultDateLayout = "1/2/2006"

// DefaultTimestampLayout mirrors the en-US date and time used for the footer.
const DefaultTimestampLayout = "1/2/2006, 3:04:05 PM"

// TableHeaders are the entry table columns in render order.
var TableHeaders = []string{"Date", "Contractor", "Job #", "Address", "Wage Type", "Hours"}

func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f hrs", hours)
}

// WeekHeading is the sub-heading for window week (zero based).
func WeekHeading(week int, window report.Window, dateLayout string) string {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}
	return fmt.Sprintf("Week %d: %s – %s", week+1, window.Start.Format(dateLayout), window.End.Format(dateLayout))
}

// EntryCells returns the table cells for entry in TableHeaders order.
func EntryCells(entry timecard.Entry) []string {
	return []string{
		timeutil.FormatDate(entry.Date),
		entry.Contractor,
		entry.JobNumber,
		entry.Address,
		entry.WageType,
		FormatHours(entry.Hours),
	}
}

// SummaryLines renders the totals block: a header, one line per recognized
// wage type with a nonzero total, and the grand total.
func SummaryLines(week int, totals report.Totals) []string {
	lines := []string{fmt.Sprintf("Week %d Totals:", week+1)}
	for _, wageType := range timecard.WageTypes {
		if hours := totals.ByType[wageType]; hours > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", wageType, FormatHours(hours)))
		}
	}
	return append(lines, "Total: "+FormatHours(totals.Total))
}

func FormatTimestamp(generatedAt time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return "Generated on: " + generatedAt.Format(layout)
}
