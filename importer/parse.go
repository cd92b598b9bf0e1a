package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"timecards/internal/timeutil"
)

var dateLayouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"1/2/2006",
	"1/2/06",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"2006/1/2",
	"1-2-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	"Monday, January 2, 2006",
}

// leadingNumber matches the numeric prefix of values such as "7.5 hrs".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseDate parses a date cell into a calendar date. Any time of day is dropped.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return timeutil.CalendarDate(parsed), true
		}
	}
	return time.Time{}, false
}

// ParseHours reads the leading number of value. Missing, non-numeric and
// negative values count as zero hours.
func ParseHours(value string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(value))
	if match == "" {
		return 0
	}

	hours, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		return 0
	}
	return hours
}

// RoundToQuarter rounds hours to the nearest 0.25, halves rounding up.
func RoundToQuarter(hours float64) float64 {
	return math.Floor(hours*4+0.5) / 4
}
