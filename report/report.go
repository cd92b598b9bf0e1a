package report

import (
	"errors"
	"time"

	"golang.org/x/text/language"

	"timecards/importer"
	"timecards/timecard"
)

var ErrNoValidDates = errors.New("no valid dates found")

const (
	Week1 = 0
	Week2 = 1
)

type Options struct {
	Columns importer.Columns
	// Locale drives the collation used for employee ordering. Defaults to en-US.
	Locale language.Tag
}

// Employee holds one employee's entries per reporting window.
type Employee struct {
	Name  string
	Weeks [2][]timecard.Entry
}

func (e Employee) Totals(week int) Totals {
	return ComputeTotals(e.Weeks[week])
}

type Report struct {
	Windows   [2]Window
	Employees []Employee

	RowsRead          int
	RowsSkipped       int
	RowsOutsideWindow int
	EntriesPlaced     int
}

// Build groups records by employee and reporting window. Rows without a name
// or a parseable date are skipped, rows outside both windows are dropped, and
// every employee ends up with at least one entry per window.
func Build(records []importer.Record, options Options) (*Report, error) {
	locale := options.Locale
	if locale == language.Und {
		locale = language.AmericanEnglish
	}

	minDate, ok := earliestDate(records, options.Columns)
	if !ok {
		return nil, ErrNoValidDates
	}

	result := &Report{
		Windows:  WeekWindows(minDate),
		RowsRead: len(records),
	}

	indexByName := make(map[string]int)
	for _, record := range records {
		entry, ok := importer.ParseEntry(record, options.Columns)
		if !ok {
			result.RowsSkipped++
			continue
		}

		index, seen := indexByName[entry.Name]
		if !seen {
			index = len(result.Employees)
			indexByName[entry.Name] = index
			result.Employees = append(result.Employees, Employee{Name: entry.Name})
		}

		week, ok := result.classify(entry)
		if !ok {
			result.RowsOutsideWindow++
			continue
		}
		result.Employees[index].Weeks[week] = append(result.Employees[index].Weeks[week], entry)
		result.EntriesPlaced++
	}

	for i := range result.Employees {
		employee := &result.Employees[i]
		for week := range employee.Weeks {
			if len(employee.Weeks[week]) == 0 {
				employee.Weeks[week] = []timecard.Entry{timecard.Placeholder(employee.Name, result.Windows[week].Start)}
			}
		}
	}

	SortEmployees(result.Employees, locale)
	return result, nil
}

func (r *Report) classify(entry timecard.Entry) (int, bool) {
	for week, window := range r.Windows {
		if window.Contains(entry.Date) {
			return week, true
		}
	}
	return 0, false
}

func earliestDate(records []importer.Record, columns importer.Columns) (minDate time.Time, found bool) {
	for _, record := range records {
		date, ok := importer.RecordDate(record, columns)
		if !ok {
			continue
		}
		if !found || date.Before(minDate) {
			minDate = date
			found = true
		}
	}
	return minDate, found
}
