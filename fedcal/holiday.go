/*
holiday.go - Observed federal holiday calendar

PURPOSE:
  Determines whether a date is an observed federal holiday. Covers the
  eleven statutory holidays (5 U.S.C. 6103) plus one-off holidays granted by
  presidential proclamation (mostly Christmas Eves), which are supplied via
  the fact tables.

OBSERVANCE RULE (OPM):
  A fixed-date holiday falling on Saturday is observed the preceding Friday;
  on Sunday, the following Monday. Weekday-anchored holidays (third Monday,
  fourth Thursday, ...) never shift.

SPECULATION:
  Future Christmas Eve proclamations are a guess, not a fact. They are only
  available through the explicitly separate GuessProclamation call, which
  returns a confidence-bearing Estimate rather than a boolean.
*/
package fedcal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// HOLIDAY RECORDS
// =============================================================================

type HolidayKind int

const (
	// Statutory holidays are fixed in 5 U.S.C. 6103.
	Statutory HolidayKind = iota
	// Proclaimed holidays are one-off executive-order holidays.
	Proclaimed
)

func (k HolidayKind) String() string {
	if k == Proclaimed {
		return "proclaimed"
	}
	return "statutory"
}

// HolidayRecord is one holiday occurrence. Date is the legal date; Observed
// is the day federal employees are actually off, derived via the weekend
// shift rule. For weekday-anchored holidays the two are equal.
type HolidayRecord struct {
	Date     Date
	Name     string
	Kind     HolidayKind
	Observed Date
}

// ObservedDate applies the OPM weekend shift rule to a legal holiday date.
func ObservedDate(legal Date) Date {
	switch legal.Weekday() {
	case time.Saturday:
		return legal.AddDays(-1)
	case time.Sunday:
		return legal.AddDays(1)
	default:
		return legal
	}
}

// =============================================================================
// STATUTORY CALENDAR - Pure generation per year
// =============================================================================

// First observances of the statutory holidays added after the engine's
// 1970 floor.
const (
	mlkFirstYear        = 1986
	juneteenthFirstYear = 2021
)

func fixedHoliday(year int, month time.Month, day int, name string) HolidayRecord {
	legal := NewDate(year, month, day)
	return HolidayRecord{Date: legal, Name: name, Kind: Statutory, Observed: ObservedDate(legal)}
}

func floatingHoliday(legal Date, name string) HolidayRecord {
	return HolidayRecord{Date: legal, Name: name, Kind: Statutory, Observed: legal}
}

// nthWeekday returns the nth (1-based) given weekday of a month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	first := NewDate(year, month, 1)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDays(offset + (n-1)*7)
}

// lastWeekday returns the last given weekday of a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	last := NewDate(year, month+1, 1).AddDays(-1)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDays(-offset)
}

// StatutoryHolidays returns the statutory federal holidays for a year,
// ordered by observed date. Uniform Monday Holiday Act placements are used
// for all years in coverage.
func StatutoryHolidays(year int) []HolidayRecord {
	hols := []HolidayRecord{
		fixedHoliday(year, time.January, 1, "New Year's Day"),
		floatingHoliday(nthWeekday(year, time.February, time.Monday, 3), "Washington's Birthday"),
		floatingHoliday(lastWeekday(year, time.May, time.Monday), "Memorial Day"),
		fixedHoliday(year, time.July, 4, "Independence Day"),
		floatingHoliday(nthWeekday(year, time.September, time.Monday, 1), "Labor Day"),
		floatingHoliday(nthWeekday(year, time.October, time.Monday, 2), "Columbus Day"),
		fixedHoliday(year, time.November, 11, "Veterans Day"),
		floatingHoliday(nthWeekday(year, time.November, time.Thursday, 4), "Thanksgiving Day"),
		fixedHoliday(year, time.December, 25, "Christmas Day"),
	}
	if year >= mlkFirstYear {
		hols = append(hols, floatingHoliday(
			nthWeekday(year, time.January, time.Monday, 3), "Birthday of Martin Luther King, Jr."))
	}
	if year >= juneteenthFirstYear {
		hols = append(hols, fixedHoliday(year, time.June, 19, "Juneteenth National Independence Day"))
	}
	sort.Slice(hols, func(i, j int) bool { return hols[i].Observed.Before(hols[j].Observed) })
	return hols
}

// =============================================================================
// ENGINE SURFACE
// =============================================================================

// Holiday reports whether the date is an observed federal holiday, and the
// matching record if so. Lookup is by observed date: a Saturday July 4th
// reports the preceding Friday as the holiday, not the Saturday.
func (e *Engine) Holiday(d Date) (HolidayRecord, bool) {
	// An observed date can spill into an adjacent year (e.g. New Year's Day
	// on a Saturday is observed December 31), so check the neighbors too.
	for _, year := range [3]int{d.Year(), d.Year() + 1, d.Year() - 1} {
		for _, h := range e.HolidaysInYear(year) {
			if h.Observed.Equal(d) {
				return h, true
			}
		}
	}
	return HolidayRecord{}, false
}

// IsHoliday is the boolean form of Holiday.
func (e *Engine) IsHoliday(d Date) bool {
	_, ok := e.Holiday(d)
	return ok
}

// HolidaysInYear returns all statutory and proclaimed holidays whose legal
// date falls in the year, ordered by observed date.
func (e *Engine) HolidaysInYear(year int) []HolidayRecord {
	hols := StatutoryHolidays(year)
	for _, p := range e.tables.proclaimed {
		if p.Date.Year() == year {
			hols = append(hols, p)
		}
	}
	sort.Slice(hols, func(i, j int) bool { return hols[i].Observed.Before(hols[j].Observed) })
	return hols
}

// IsBusinessDay reports whether the date is a federal business day: a
// weekday that is not an observed holiday.
func (e *Engine) IsBusinessDay(d Date) bool {
	return !d.IsWeekend() && !e.IsHoliday(d)
}

// PriorBusinessDay returns the closest business day strictly before d.
func (e *Engine) PriorBusinessDay(d Date) Date {
	cur := d.AddDays(-1)
	for !e.IsBusinessDay(cur) {
		cur = cur.AddDays(-1)
	}
	return cur
}

// =============================================================================
// PROCLAMATION GUESSING - Opt-in speculation
// =============================================================================

// Estimate is a speculative result. Confidence is in [0, 1]; Basis explains
// what the guess is anchored on. Estimates are never folded into the
// confirmed holiday or payday surfaces.
type Estimate struct {
	Likely     bool
	Confidence decimal.Decimal
	Basis      string
}

// Historically most Christmas Eve proclamations landed when Christmas fell
// on a Tuesday or Friday, turning the Eve into a four-day weekend.
var proclamationGuessConfidence = decimal.RequireFromString("0.75")

// GuessProclamation estimates whether a future date may be proclaimed a
// one-off holiday. Only Christmas Eves after the last recorded proclamation
// are ever likely; everything else returns a zero-confidence estimate.
func (e *Engine) GuessProclamation(d Date) Estimate {
	if d.Month() != time.December || d.Day() != 24 {
		return Estimate{Basis: "only Christmas Eve proclamations are modeled"}
	}
	if d.Year() <= e.tables.lastProclaimedYear {
		return Estimate{Basis: "within recorded history; use Holiday instead"}
	}
	christmas := NewDate(d.Year(), time.December, 25)
	if wd := christmas.Weekday(); wd == time.Tuesday || wd == time.Friday {
		return Estimate{
			Likely:     true,
			Confidence: proclamationGuessConfidence,
			Basis:      "Christmas falls on " + wd.String(),
		}
	}
	return Estimate{Basis: "Christmas weekday does not fit the proclamation pattern"}
}
