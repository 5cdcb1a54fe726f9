/*
payday.go - Civilian and military payday calendars

PURPOSE:
  Civilian federal employees are paid biweekly on Fridays; the engine anchors
  the cycle at a known payday and checks 14-day congruence within the rule's
  applicable range.

  Military pay lands on the 1st and 15th. When the scheduled day is not a
  business day, pay arrives on the closest preceding business day, so the
  result is structured (scheduled day + shifted flag), not a bare boolean.

  Passdays (non-duty days commanders grant around holidays) are estimates
  by nature and are returned as confidence-bearing Estimates.
*/
package fedcal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PAYDAY RULES - Static reference data
// =============================================================================

type Population int

const (
	Civilian Population = iota
	Military
)

func (p Population) String() string {
	if p == Military {
		return "military"
	}
	return "civilian"
}

type PaySchedule int

const (
	// Biweekly pay recurs every CycleDays from Anchor.
	Biweekly PaySchedule = iota
	// Semimonthly pay lands on the 1st and 15th; Anchor and CycleDays are
	// unused.
	Semimonthly
)

// PaydayRule is one population's pay cadence within an applicable range.
// Rules are loaded once and immutable thereafter.
type PaydayRule struct {
	Population Population
	Schedule   PaySchedule
	Anchor     Date
	CycleDays  int
	Applicable Period // End zero = open-ended
}

func (r PaydayRule) applies(d Date) bool {
	if d.Before(r.Applicable.Start) {
		return false
	}
	return r.Applicable.End.IsZero() || d.BeforeOrEqual(r.Applicable.End)
}

// =============================================================================
// CIVILIAN PAYDAYS
// =============================================================================

// IsCivilianPayday reports whether the date is a civilian biweekly payday
// under any applicable rule. The cadence is exact reference data, so the
// result is a plain boolean.
func (e *Engine) IsCivilianPayday(d Date) bool {
	for _, r := range e.tables.rules {
		if r.Population != Civilian || r.Schedule != Biweekly || !r.applies(d) {
			continue
		}
		days := DaysBetween(r.Anchor, d)
		if days >= 0 && days%r.CycleDays == 0 {
			return true
		}
	}
	return false
}

// CivilianPaydaysIn returns every civilian payday inside the period by
// jumping cycle-to-cycle from the first payday on or after the start.
func (e *Engine) CivilianPaydaysIn(p Period) []Date {
	var out []Date
	for _, r := range e.tables.rules {
		if r.Population != Civilian || r.Schedule != Biweekly {
			continue
		}
		offset := DaysBetween(r.Anchor, p.Start)
		if rem := ((offset % r.CycleDays) + r.CycleDays) % r.CycleDays; rem != 0 {
			offset += r.CycleDays - rem
		}
		for d := r.Anchor.AddDays(offset); d.BeforeOrEqual(p.End); d = d.AddDays(r.CycleDays) {
			if r.applies(d) && DaysBetween(r.Anchor, d) >= 0 {
				out = append(out, d)
			}
		}
	}
	return out
}

// =============================================================================
// MILITARY PAYDAYS
// =============================================================================

// MilPayday is a confirmed military payday determination. Scheduled is the
// statutory 1st/15th the pay belongs to; Actual is the business day the pay
// lands on; Shifted is true when Actual precedes Scheduled.
type MilPayday struct {
	IsPayday  bool
	Scheduled Date
	Actual    Date
	Shifted   bool
}

// Pay shifted off a weekend or holiday lands within a few days of the
// scheduled date; the lookback bounds the search.
const milShiftLookbackDays = 3

// MilitaryPayday reports whether the date is a military payday under the
// semimonthly schedule, accounting for the shift of weekend/holiday paydays
// to the preceding business day.
func (e *Engine) MilitaryPayday(d Date) MilPayday {
	ruled := false
	for _, r := range e.tables.rules {
		if r.Population == Military && r.Schedule == Semimonthly && r.applies(d) {
			ruled = true
			break
		}
	}
	if !ruled {
		return MilPayday{}
	}

	if isScheduledMilDay(d) {
		if e.IsBusinessDay(d) {
			return MilPayday{IsPayday: true, Scheduled: d, Actual: d}
		}
		// pay moved earlier
		return MilPayday{Scheduled: d, Actual: e.PriorBusinessDay(d)}
	}

	// d may carry the pay of an upcoming non-business 1st/15th.
	for offset := 1; offset <= milShiftLookbackDays; offset++ {
		scheduled := d.AddDays(offset)
		if !isScheduledMilDay(scheduled) || e.IsBusinessDay(scheduled) {
			continue
		}
		if e.PriorBusinessDay(scheduled).Equal(d) {
			return MilPayday{IsPayday: true, Scheduled: scheduled, Actual: d, Shifted: true}
		}
	}
	return MilPayday{}
}

func isScheduledMilDay(d Date) bool {
	return d.Day() == 1 || d.Day() == 15
}

// =============================================================================
// PASSDAY ESTIMATION
// =============================================================================

// Passday grants vary by command; the heuristic models the most common
// placements around an observed holiday:
//   - Monday holiday    -> preceding Friday
//   - Friday holiday    -> following Monday
//   - Tuesday holiday   -> preceding Monday
//   - Thursday holiday  -> following Friday
//   - Wednesday holiday -> following Thursday
// Only business days that are not themselves holidays are candidates.
var passdayConfidence = decimal.RequireFromString("0.6")

// PassdayEstimate estimates whether the date is likely a military passday.
func (e *Engine) PassdayEstimate(d Date) Estimate {
	if !e.IsBusinessDay(d) {
		return Estimate{Basis: "not a business day"}
	}

	type candidate struct {
		offset  int // days from d to the holiday that would justify the pass
		weekday string
	}
	var candidates []candidate
	switch d.Weekday().String() {
	case "Friday":
		candidates = []candidate{{3, "Monday"}, {-1, "Thursday"}}
	case "Monday":
		candidates = []candidate{{-3, "Friday"}, {1, "Tuesday"}}
	case "Thursday":
		candidates = []candidate{{-1, "Wednesday"}}
	default:
		return Estimate{Basis: "weekday not adjacent to a holiday pass pattern"}
	}

	for _, p := range candidates {
		target := d.AddDays(p.offset)
		if target.Weekday().String() != p.weekday {
			continue
		}
		if h, ok := e.Holiday(target); ok {
			return Estimate{
				Likely:     true,
				Confidence: passdayConfidence,
				Basis:      fmt.Sprintf("%s observed %s %s", h.Name, p.weekday, target),
			}
		}
	}
	return Estimate{Basis: "no adjacent holiday"}
}
