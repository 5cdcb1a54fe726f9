/*
Package fedcal is the core resolution engine for U.S. federal calendar
semantics.

PURPOSE:
  Given a civil date, the engine answers questions a consumer of federal
  time-series data needs answered deterministically:
  - What was each executive department's appropriations status?
  - Is the date an observed federal holiday or business day?
  - Which fiscal year and quarter does it fall in?
  - Is it a civilian or military payday, and is a military passday likely?

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: a day-granularity civil date (UTC midnight, no sub-day semantics)
  - Period: an inclusive [Start, End] date range

DESIGN PRINCIPLES:
  1. Immutability: fact tables are loaded once and never mutated
  2. Determinism: overlap resolution follows an explicit precedence order
  3. Honesty: estimates (passdays, proclamation guesses) are structurally
     separate from confirmed facts and carry confidences, never bare bools

SEE ALSO:
  - status.go: appropriations status periods and the status resolver
  - holiday.go: observed holiday calendar and proclamation guessing
  - engine.go: the Engine tying the fact tables and resolvers together
*/
package fedcal

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Day-granularity civil date
// =============================================================================

// Date is a civil calendar date. The embedded time is always UTC midnight;
// constructors normalize, so two Dates for the same day compare Equal.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an arbitrary time to its civil date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in ISO "2006-01-02" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// MustDate is for static reference data; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return DateOf(d.Time.AddDate(0, 0, n)) }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// DaysBetween returns the signed day count from `from` to `to`.
func DaysBetween(from, to Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is an inclusive [Start, End] range of dates.
type Period struct {
	Start Date
	End   Date
}

func NewPeriod(start, end Date) (Period, error) {
	if end.Before(start) {
		return Period{}, &InvalidPeriodError{Start: start, End: end}
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Overlaps reports whether two inclusive periods share at least one day.
func (p Period) Overlaps(other Period) bool {
	return p.Start.BeforeOrEqual(other.End) && other.Start.BeforeOrEqual(p.End)
}

// Days returns every date in the period, in order.
func (p Period) Days() []Date {
	var days []Date
	for cur := p.Start; cur.BeforeOrEqual(p.End); cur = cur.AddDays(1) {
		days = append(days, cur)
	}
	return days
}

// Len returns the number of days in the period.
func (p Period) Len() int { return DaysBetween(p.Start, p.End) + 1 }

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
