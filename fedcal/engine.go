/*
engine.go - The resolution engine and its per-date output

PURPOSE:
  Engine binds the immutable fact tables to the resolvers and exposes the
  query surface: single-status resolution, full per-date fact resolution,
  and batch range resolution.

RESOLUTION OUTPUT:
  DateFacts is a transient value object: it holds copies of whatever it
  resolved, never references into the tables, so callers can retain it
  freely.

CONCURRENCY:
  Engine is safe for concurrent use. Everything it reads is frozen at
  construction.
*/
package fedcal

// Engine resolves dates against a fixed set of fact tables.
type Engine struct {
	tables *Tables
}

// NewEngine wraps validated tables. Tables must come from NewTables.
func NewEngine(tables *Tables) *Engine {
	return &Engine{tables: tables}
}

// Tables exposes the engine's reference data (read-only accessors).
func (e *Engine) Tables() *Tables { return e.tables }

// =============================================================================
// STATUS RESOLUTION
// =============================================================================

// ResolveStatus resolves one department's appropriations status on a date.
func (e *Engine) ResolveStatus(d Date, dept Department) (Status, error) {
	status, _, err := e.ResolvePeriod(d, dept)
	return status, err
}

// ResolvePeriod resolves a status along with the winning fact-table record.
// The record is nil when the baseline (full appropriations) applies.
func (e *Engine) ResolvePeriod(d Date, dept Department) (Status, *StatusPeriod, error) {
	if !dept.Valid() {
		return 0, nil, &InvalidEntityError{Identifier: dept.Abbrev()}
	}
	if d.Before(e.tables.coverageStart) {
		return 0, nil, &OutOfCoverageError{Date: d, CoverageStart: e.tables.coverageStart}
	}

	var matches []StatusPeriod
	for _, p := range e.tables.periods[dept] {
		if d.Before(p.Start) {
			break // periods are sorted by start
		}
		if p.Contains(d) {
			matches = append(matches, p)
		}
	}
	return pickStatus(d, dept, matches)
}

// ResolveAll resolves every department's status on a date.
func (e *Engine) ResolveAll(d Date) (map[Department]Status, error) {
	out := make(map[Department]Status, int(numDepartments))
	for _, dept := range AllDepartments() {
		status, err := e.ResolveStatus(d, dept)
		if err != nil {
			return nil, err
		}
		out[dept] = status
	}
	return out, nil
}

// =============================================================================
// DATE FACTS - Full per-date resolution
// =============================================================================

// DateFacts is everything the engine knows about one date. It holds copies,
// not references, of any queried fact.
type DateFacts struct {
	Date Date

	// Statuses maps every department existing on the date to its status.
	Statuses map[Department]Status

	// DataIncomplete marks dates before the CR tables begin, where a
	// baseline status cannot distinguish full-year appropriations from a
	// continuing resolution.
	DataIncomplete bool

	IsHoliday     bool
	Holiday       *HolidayRecord
	IsBusinessDay bool

	FiscalYear    int
	FiscalQuarter int

	IsCivilianPayday bool
	MilitaryPayday   MilPayday
	Passday          Estimate
}

// Facts resolves the full fact set for one date.
func (e *Engine) Facts(d Date) (DateFacts, error) {
	facts, err := e.FactsRange(Period{Start: d, End: d})
	if err != nil {
		return DateFacts{}, err
	}
	return facts[0], nil
}

// FactsRange resolves facts for every date in the period. The fact tables
// are filtered to the period once up front and candidate records are walked
// alongside the dates, so cost does not multiply per element the way
// repeated scalar lookups would.
func (e *Engine) FactsRange(p Period) ([]DateFacts, error) {
	if p.End.Before(p.Start) {
		return nil, &InvalidPeriodError{Start: p.Start, End: p.End}
	}
	if p.Start.Before(e.tables.coverageStart) {
		return nil, &OutOfCoverageError{Date: p.Start, CoverageStart: e.tables.coverageStart}
	}

	// Pre-filter each department's records to those touching the period.
	candidates := make(map[Department][]StatusPeriod, int(numDepartments))
	for _, dept := range AllDepartments() {
		for _, rec := range e.tables.periods[dept] {
			if rec.OverlapsPeriod(p) {
				candidates[dept] = append(candidates[dept], rec)
			}
		}
	}

	// Pre-compute the observed-holiday calendar spanning the period.
	holidays := make(map[Date]HolidayRecord)
	for year := p.Start.Year() - 1; year <= p.End.Year()+1; year++ {
		for _, h := range e.HolidaysInYear(year) {
			holidays[h.Observed] = h
		}
	}

	out := make([]DateFacts, 0, p.Len())
	for d := p.Start; d.BeforeOrEqual(p.End); d = d.AddDays(1) {
		facts := DateFacts{
			Date:           d,
			Statuses:       make(map[Department]Status, int(numDepartments)),
			DataIncomplete: d.Before(e.tables.crDataStart),
			FiscalYear:     FiscalYear(d),
			FiscalQuarter:  FiscalQuarter(d),
		}

		for _, dept := range AllDepartments() {
			if !dept.ExistsOn(d) {
				continue
			}
			var matches []StatusPeriod
			for _, rec := range candidates[dept] {
				if d.Before(rec.Start) {
					break
				}
				if rec.Contains(d) {
					matches = append(matches, rec)
				}
			}
			status, _, err := pickStatus(d, dept, matches)
			if err != nil {
				return nil, err
			}
			facts.Statuses[dept] = status
		}

		if h, ok := holidays[d]; ok {
			rec := h
			facts.IsHoliday = true
			facts.Holiday = &rec
		}
		facts.IsBusinessDay = !d.IsWeekend() && !facts.IsHoliday
		facts.IsCivilianPayday = e.IsCivilianPayday(d)
		facts.MilitaryPayday = e.MilitaryPayday(d)
		facts.Passday = e.PassdayEstimate(d)

		out = append(out, facts)
	}
	return out, nil
}
