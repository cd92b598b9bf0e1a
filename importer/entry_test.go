package importer

import (
	"testing"

	"timecards/timecard"
)

func newTimecardRecord(row int, values map[string]string) Record {
	normalized := make(map[string]string, len(values))
	for key, value := range values {
		normalized[normalizeHeader(key)] = value
	}
	return Record{RowNumber: row, Values: normalized}
}

func TestParseEntry_MapsAllColumns(t *testing.T) {
	t.Parallel()

	record := newTimecardRecord(2, map[string]string{
		"Name":         " Jane Doe ",
		"Date":         "3/5/2026",
		"Hours Worked": "7.9",
		"Contractor":   "Acme",
		"Job #":        "1042",
		"Address":      "12 Main St",
		"Wage Type":    "Overtime",
	})

	entry, ok := ParseEntry(record, DefaultColumns())
	if !ok {
		t.Fatalf("expected entry to be parsed")
	}

	want := timecard.Entry{
		RowNumber:  2,
		Name:       "Jane Doe",
		Hours:      8,
		WageType:   timecard.WageOvertime,
		Contractor: "Acme",
		JobNumber:  "1042",
		Address:    "12 Main St",
	}
	want.Date = entry.Date
	if entry != want {
		t.Fatalf("unexpected entry:\nwant %+v\ngot  %+v", want, entry)
	}
	if entry.Date.Format("2006-01-02") != "2026-03-05" {
		t.Fatalf("unexpected date: %s", entry.Date)
	}
}

func TestParseEntry_SkipsMissingNameOrDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "missing name", values: map[string]string{"Date": "2026-03-05", "Hours Worked": "8"}},
		{name: "blank name", values: map[string]string{"Name": "   ", "Date": "2026-03-05"}},
		{name: "missing date", values: map[string]string{"Name": "Jane Doe", "Hours Worked": "8"}},
		{name: "bad date", values: map[string]string{"Name": "Jane Doe", "Date": "someday"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := ParseEntry(newTimecardRecord(2, tc.values), DefaultColumns()); ok {
				t.Fatalf("expected record to be skipped")
			}
		})
	}
}

func TestParseEntry_NonNumericHoursAreZero(t *testing.T) {
	t.Parallel()

	record := newTimecardRecord(3, map[string]string{"Name": "Jane Doe", "Date": "2026-03-05", "Hours Worked": "abc"})
	entry, ok := ParseEntry(record, DefaultColumns())
	if !ok {
		t.Fatalf("expected entry to be parsed")
	}
	if entry.Hours != 0 {
		t.Fatalf("expected zero hours, got %v", entry.Hours)
	}
	if entry.Contractor != "" || entry.WageType != "" {
		t.Fatalf("expected missing optional columns to be empty: %+v", entry)
	}
}

func TestParseEntry_CustomColumns(t *testing.T) {
	t.Parallel()

	record := newTimecardRecord(2, map[string]string{"Employee": "Amy Alpha", "Work Date": "2026-03-02", "Hours Worked": "4"})
	columns := Columns{Name: "employee", Date: "work_date"}

	entry, ok := ParseEntry(record, columns)
	if !ok {
		t.Fatalf("expected entry to be parsed")
	}
	if entry.Name != "Amy Alpha" || entry.Hours != 4 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}
