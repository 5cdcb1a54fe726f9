/*
tables.go - Immutable fact tables and load-time validation

PURPOSE:
  Tables is the read-only reference data the engine resolves against:
  status periods, proclaimed holidays, and payday rules, plus the coverage
  boundaries. It is explicitly constructed and injected into the Engine
  (no package-level globals), so tests can run against synthetic tables.

LIFECYCLE:
  Built once at process start (from the compiled-in dataset in the facts
  package, or from a SQLite source in store/sqlite), validated, then never
  mutated. Concurrent readers need no locking.
*/
package fedcal

import (
	"fmt"
)

// TablesConfig is the raw input to NewTables.
type TablesConfig struct {
	// CoverageStart is the earliest date status resolution supports.
	CoverageStart Date

	// CRDataStart is the earliest date with continuing-resolution records.
	// Between CoverageStart and CRDataStart a baseline resolution cannot
	// distinguish full-year appropriations from a CR, and facade output is
	// marked DataIncomplete.
	CRDataStart Date

	StatusPeriods []StatusPeriod
	Proclaimed    []HolidayRecord
	PaydayRules   []PaydayRule
}

// Tables is validated, immutable reference data.
type Tables struct {
	coverageStart Date
	crDataStart   Date

	// periods are per-entity, sorted by start date.
	periods map[Department][]StatusPeriod

	proclaimed         []HolidayRecord
	lastProclaimedYear int

	rules []PaydayRule
}

// NewTables validates the raw data and freezes it. All slices are copied;
// the caller's data is not retained.
func NewTables(cfg TablesConfig) (*Tables, error) {
	if cfg.CoverageStart.IsZero() {
		return nil, fmt.Errorf("%w: coverage start required", ErrInvalidTables)
	}

	t := &Tables{
		coverageStart: cfg.CoverageStart,
		crDataStart:   cfg.CRDataStart,
		periods:       make(map[Department][]StatusPeriod),
	}

	for _, p := range cfg.StatusPeriods {
		if !p.Entity.Valid() {
			return nil, fmt.Errorf("%w: status period with unknown entity %d", ErrInvalidTables, p.Entity)
		}
		if p.Start.IsZero() {
			return nil, fmt.Errorf("%w: status period for %s without start date", ErrInvalidTables, p.Entity)
		}
		if !p.End.IsZero() && p.End.Before(p.Start) {
			return nil, fmt.Errorf("%w: status period for %s ends %s before start %s",
				ErrInvalidTables, p.Entity, p.End, p.Start)
		}
		t.periods[p.Entity] = append(t.periods[p.Entity], p)
	}
	for dept := range t.periods {
		sortPeriods(t.periods[dept])
	}

	observed := make(map[Date]string, len(cfg.Proclaimed))
	for _, h := range cfg.Proclaimed {
		rec := h
		if rec.Observed.IsZero() {
			rec.Observed = ObservedDate(rec.Date)
		}
		rec.Kind = Proclaimed
		if prev, dup := observed[rec.Observed]; dup {
			return nil, fmt.Errorf("%w: duplicate observed holiday %s (%s, %s)",
				ErrInvalidTables, rec.Observed, prev, rec.Name)
		}
		if name, taken := statutoryObservance(rec.Observed); taken {
			return nil, fmt.Errorf("%w: proclaimed holiday %s (%s) collides with the %s observance",
				ErrInvalidTables, rec.Name, rec.Observed, name)
		}
		observed[rec.Observed] = rec.Name
		t.proclaimed = append(t.proclaimed, rec)
		if y := rec.Date.Year(); y > t.lastProclaimedYear {
			t.lastProclaimedYear = y
		}
	}

	for _, r := range cfg.PaydayRules {
		if r.Schedule == Biweekly {
			if r.CycleDays <= 0 {
				return nil, fmt.Errorf("%w: biweekly rule with cycle %d", ErrInvalidTables, r.CycleDays)
			}
			if r.Anchor.IsZero() {
				return nil, fmt.Errorf("%w: biweekly rule without anchor", ErrInvalidTables)
			}
		}
		if r.Applicable.Start.IsZero() {
			return nil, fmt.Errorf("%w: payday rule without applicable start", ErrInvalidTables)
		}
		t.rules = append(t.rules, r)
	}

	return t, nil
}

// statutoryObservance reports whether a statutory holiday is observed on
// the date. Observed dates can spill into an adjacent year (New Year's Day
// on a Saturday is observed December 31), so the neighbors are checked too.
func statutoryObservance(d Date) (string, bool) {
	for _, year := range [3]int{d.Year(), d.Year() + 1, d.Year() - 1} {
		for _, h := range StatutoryHolidays(year) {
			if h.Observed.Equal(d) {
				return h.Name, true
			}
		}
	}
	return "", false
}

// CoverageStart is the earliest date status resolution supports.
func (t *Tables) CoverageStart() Date { return t.coverageStart }

// CRDataStart is the earliest date with continuing-resolution records.
func (t *Tables) CRDataStart() Date { return t.crDataStart }

// StatusPeriods returns a flattened copy of every status period.
func (t *Tables) StatusPeriods() []StatusPeriod {
	var out []StatusPeriod
	for d := Department(0); d < numDepartments; d++ {
		out = append(out, t.periods[d]...)
	}
	return out
}

// PeriodsFor returns a copy of the entity's periods, sorted by start.
func (t *Tables) PeriodsFor(dept Department) []StatusPeriod {
	src := t.periods[dept]
	out := make([]StatusPeriod, len(src))
	copy(out, src)
	return out
}

// ProclaimedHolidays returns a copy of the proclaimed holiday records.
func (t *Tables) ProclaimedHolidays() []HolidayRecord {
	out := make([]HolidayRecord, len(t.proclaimed))
	copy(out, t.proclaimed)
	return out
}

// PaydayRules returns a copy of the payday rules.
func (t *Tables) PaydayRules() []PaydayRule {
	out := make([]PaydayRule, len(t.rules))
	copy(out, t.rules)
	return out
}
