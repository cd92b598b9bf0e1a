package importer

import (
	"strings"
	"time"

	"timecards/timecard"
)

// ParseEntry maps a record to a timecard entry. It returns false when the
// record has no name or no parseable date; such rows are skipped silently.
func ParseEntry(record Record, columns Columns) (timecard.Entry, bool) {
	columns = columns.withDefaults()

	name := record.Get(columns.Name)
	if name == "" {
		return timecard.Entry{}, false
	}
	date, ok := ParseDate(record.Get(columns.Date))
	if !ok {
		return timecard.Entry{}, false
	}

	return timecard.Entry{
		RowNumber:  record.RowNumber,
		Name:       name,
		Date:       date,
		Hours:      RoundToQuarter(ParseHours(record.Get(columns.Hours))),
		WageType:   record.Get(columns.WageType),
		Contractor: record.Get(columns.Contractor),
		JobNumber:  record.Get(columns.JobNumber),
		Address:    record.Get(columns.Address),
	}, true
}

// RecordDate parses only the date column of record.
func RecordDate(record Record, columns Columns) (time.Time, bool) {
	return ParseDate(record.Get(columns.withDefaults().Date))
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
