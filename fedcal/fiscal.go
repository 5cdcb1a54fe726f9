package fedcal

import "time"

// =============================================================================
// FISCAL CALENDAR - Pure, total functions
// =============================================================================
// The federal fiscal year N runs October 1 of N-1 through September 30 of N.
// Quarters: Q1 Oct-Dec, Q2 Jan-Mar, Q3 Apr-Jun, Q4 Jul-Sep.

// FiscalYear returns the federal fiscal year containing the date.
func FiscalYear(d Date) int {
	if d.Month() >= time.October {
		return d.Year() + 1
	}
	return d.Year()
}

// FiscalQuarter returns the fiscal quarter (1-4) containing the date.
func FiscalQuarter(d Date) int {
	switch d.Month() {
	case time.October, time.November, time.December:
		return 1
	case time.January, time.February, time.March:
		return 2
	case time.April, time.May, time.June:
		return 3
	default:
		return 4
	}
}

// FiscalYearPeriod returns the inclusive date range of a fiscal year.
func FiscalYearPeriod(fy int) Period {
	return Period{
		Start: NewDate(fy-1, time.October, 1),
		End:   NewDate(fy, time.September, 30),
	}
}

// FiscalQuarterPeriod returns the inclusive date range of a fiscal quarter.
func FiscalQuarterPeriod(fy, quarter int) Period {
	start := NewDate(fy-1, time.October, 1).AddMonths(3 * (quarter - 1))
	return Period{Start: start, End: start.AddMonths(3).AddDays(-1)}
}

// AddMonths is defined here rather than date.go because only the fiscal
// calendar needs month arithmetic; day-of-month normalization quirks of
// AddDate never apply to first-of-month anchors.
func (d Date) AddMonths(n int) Date { return DateOf(d.Time.AddDate(0, n, 0)) }
