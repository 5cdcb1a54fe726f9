/*
facade.go - Timestamp-like and index-like query surfaces

PURPOSE:
  Consumers coming from time-series tooling want values that behave like a
  timestamp or a date index with federal semantics bolted on. Stamp and
  Range provide that surface by composition: each wraps a plain value plus
  the engine, keeping the resolution core independent of any host library's
  type hierarchy.
*/
package fedcal

import "sort"

// Stamp is a single date bound to an engine.
type Stamp struct {
	Date Date

	eng *Engine
}

// Stamp binds a date to the engine.
func (e *Engine) Stamp(d Date) Stamp {
	return Stamp{Date: d, eng: e}
}

// AddDays returns a new Stamp; the engine binding carries over.
func (s Stamp) AddDays(n int) Stamp {
	return Stamp{Date: s.Date.AddDays(n), eng: s.eng}
}

func (s Stamp) Facts() (DateFacts, error) { return s.eng.Facts(s.Date) }

func (s Stamp) Status(dept Department) (Status, error) {
	return s.eng.ResolveStatus(s.Date, dept)
}

func (s Stamp) IsHoliday() bool { return s.eng.IsHoliday(s.Date) }

func (s Stamp) IsBusinessDay() bool { return s.eng.IsBusinessDay(s.Date) }

func (s Stamp) FiscalYear() int { return FiscalYear(s.Date) }

func (s Stamp) FiscalQuarter() int { return FiscalQuarter(s.Date) }

func (s Stamp) IsCivilianPayday() bool { return s.eng.IsCivilianPayday(s.Date) }

func (s Stamp) MilitaryPayday() MilPayday { return s.eng.MilitaryPayday(s.Date) }

func (s Stamp) PassdayEstimate() Estimate { return s.eng.PassdayEstimate(s.Date) }

func (s Stamp) GuessProclamation() Estimate { return s.eng.GuessProclamation(s.Date) }

func (s Stamp) String() string { return s.Date.String() }

// =============================================================================
// RANGE - Index-like batch surface
// =============================================================================

// Range is an inclusive date range bound to an engine. Its queries resolve
// in batch against the fact tables.
type Range struct {
	Period Period

	eng *Engine
}

// Range binds a period to the engine.
func (e *Engine) Range(start, end Date) (Range, error) {
	p, err := NewPeriod(start, end)
	if err != nil {
		return Range{}, err
	}
	return Range{Period: p, eng: e}, nil
}

// Dates enumerates the range.
func (r Range) Dates() []Date { return r.Period.Days() }

// Stamps enumerates the range as engine-bound stamps.
func (r Range) Stamps() []Stamp {
	days := r.Period.Days()
	out := make([]Stamp, len(days))
	for i, d := range days {
		out[i] = Stamp{Date: d, eng: r.eng}
	}
	return out
}

// Facts batch-resolves the full fact set for the range.
func (r Range) Facts() ([]DateFacts, error) { return r.eng.FactsRange(r.Period) }

// Statuses batch-resolves one department across the range.
func (r Range) Statuses(dept Department) ([]Status, error) {
	facts, err := r.Facts()
	if err != nil {
		return nil, err
	}
	out := make([]Status, len(facts))
	for i, f := range facts {
		status, ok := f.Statuses[dept]
		if !ok && !dept.Valid() {
			return nil, &InvalidEntityError{Identifier: dept.Abbrev()}
		}
		if !ok {
			status = FullAppropriations // entity did not exist yet
		}
		out[i] = status
	}
	return out, nil
}

// Holidays returns the observed holidays falling inside the range.
func (r Range) Holidays() []HolidayRecord {
	var out []HolidayRecord
	for year := r.Period.Start.Year() - 1; year <= r.Period.End.Year()+1; year++ {
		for _, h := range r.eng.HolidaysInYear(year) {
			if r.Period.Contains(h.Observed) {
				out = append(out, h)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Observed.Before(out[j].Observed) })
	return out
}

// BusinessDays returns the federal business days inside the range.
func (r Range) BusinessDays() []Date {
	var out []Date
	for _, d := range r.Period.Days() {
		if r.eng.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// CivilianPaydays returns the civilian paydays inside the range.
func (r Range) CivilianPaydays() []Date { return r.eng.CivilianPaydaysIn(r.Period) }

// MilitaryPaydays returns the dates inside the range on which military pay
// actually lands (shifts included).
func (r Range) MilitaryPaydays() []MilPayday {
	var out []MilPayday
	for _, d := range r.Period.Days() {
		if mp := r.eng.MilitaryPayday(d); mp.IsPayday {
			out = append(out, mp)
		}
	}
	return out
}
