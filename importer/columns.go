package importer

// Columns names the input header for every timecard field. Lookups go through
// header normalization, so "Hours Worked", "hours_worked" and "HoursWorked"
// all match the same column.
type Columns struct {
	Name       string
	Date       string
	Hours      string
	Contractor string
	JobNumber  string
	Address    string
	WageType   string
}

func DefaultColumns() Columns {
	return Columns{
		Name:       "Name",
		Date:       "Date",
		Hours:      "Hours Worked",
		Contractor: "Contractor",
		JobNumber:  "Job #",
		Address:    "Address",
		WageType:   "Wage Type",
	}
}

// withDefaults fills blank column names from DefaultColumns.
func (c Columns) withDefaults() Columns {
	defaults := DefaultColumns()
	return Columns{
		Name:       fallback(c.Name, defaults.Name),
		Date:       fallback(c.Date, defaults.Date),
		Hours:      fallback(c.Hours, defaults.Hours),
		Contractor: fallback(c.Contractor, defaults.Contractor),
		JobNumber:  fallback(c.JobNumber, defaults.JobNumber),
		Address:    fallback(c.Address, defaults.Address),
		WageType:   fallback(c.WageType, defaults.WageType),
	}
}
