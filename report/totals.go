package report

import "timecards/timecard"

// Totals holds summed hours per recognized wage type and across all entries.
type Totals struct {
	ByType map[string]float64
	Total  float64
}

// ComputeTotals sums entry hours. Unrecognized wage types count toward Total only.
func ComputeTotals(entries []timecard.Entry) Totals {
	totals := Totals{ByType: make(map[string]float64, len(timecard.WageTypes))}
	for _, wageType := range timecard.WageTypes {
		totals.ByType[wageType] = 0
	}

	for _, entry := range entries {
		totals.Total += entry.Hours
		if timecard.IsRecognizedWageType(entry.WageType) {
			totals.ByType[entry.WageType] += entry.Hours
		}
	}
	return totals
}
