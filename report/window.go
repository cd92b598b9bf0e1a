package report

import (
	"time"

	"timecards/internal/timeutil"
)

// WindowDays is the length of one reporting window.
const WindowDays = 7

// Window is an inclusive range of calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// WeekWindows returns the two contiguous reporting windows. The first starts on
// the Sunday on or before minDate.
func WeekWindows(minDate time.Time) [2]Window {
	week1Start := timeutil.StartOfWeek(minDate)
	week1End := timeutil.AddDays(week1Start, WindowDays-1)
	week2Start := timeutil.AddDays(week1End, 1)
	week2End := timeutil.AddDays(week2Start, WindowDays-1)

	return [2]Window{
		{Start: week1Start, End: week1End},
		{Start: week2Start, End: week2End},
	}
}
