package timeutil

import "time"

// ISODate is the canonical calendar date layout used for entry dates.
const ISODate = "2006-01-02"

// CalendarDate drops the clock and zone of value, keeping its wall-clock
// year, month and day as a UTC midnight.
func CalendarDate(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Sunday on or before value.
func StartOfWeek(value time.Time) time.Time {
	day := CalendarDate(value)
	return AddDays(day, -int(day.Weekday()))
}

func AddDays(value time.Time, days int) time.Time {
	return value.AddDate(0, 0, days)
}

func FormatDate(value time.Time) string {
	return value.Format(ISODate)
}
