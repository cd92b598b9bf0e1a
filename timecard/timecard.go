package timecard

import "time"

const (
	WageHourly    = "Hourly"
	WageOvertime  = "Overtime"
	WageVacation  = "Vacation"
	WageHoliday   = "Holiday"
	WagePaternity = "Paternity"
)

// WageTypes lists the recognized wage types in the order they are totaled and rendered.
var WageTypes = []string{WageHourly, WageOvertime, WageVacation, WageHoliday, WagePaternity}

// Entry is one normalized timecard row. Dates are calendar dates at UTC midnight.
type Entry struct {
	RowNumber   int
	Name        string
	Date        time.Time
	Hours       float64
	WageType    string
	Contractor  string
	JobNumber   string
	Address     string
	Placeholder bool
}

// IsRecognizedWageType reports whether value is one of WageTypes.
func IsRecognizedWageType(value string) bool {
	for _, wageType := range WageTypes {
		if wageType == value {
			return true
		}
	}
	return false
}

// Placeholder returns the zero-hour shop entry used when an employee has no
// entries in a reporting window.
func Placeholder(name string, date time.Time) Entry {
	return Entry{
		Name:        name,
		Date:        date,
		Hours:       0,
		WageType:    WageHourly,
		Contractor:  "Shop",
		JobNumber:   "000",
		Address:     "Shop",
		Placeholder: true,
	}
}
