/*
status.go - Appropriations status periods and the status resolver

PURPOSE:
  Resolves a (date, department) pair against the historical record of
  appropriations gaps, shutdowns, and continuing resolutions into a single
  deterministic status.

RESOLUTION RULES:
  1. Dates before the coverage floor (start of FY1975) are an error.
  2. No matching period means the baseline: full-year appropriations.
  3. Overlapping periods resolve by precedence:
       Shutdown > Gap > ContinuingResolution > FullAppropriations
     (a recorded shutdown nested inside a broader CR wins for its dates).
  4. Overlapping periods of EQUAL precedence whose citations disagree are a
     DataConflictError. The engine refuses to guess between sources.

SEE ALSO:
  - tables.go: how periods are loaded and validated
  - engine.go: the public ResolveStatus / ResolvePeriod entry points
*/
package fedcal

import "sort"

// =============================================================================
// STATUS - Appropriations status enum
// =============================================================================

// Status is a department's appropriations status on a given date.
type Status int

const (
	// FullAppropriations: operating under an enacted full-year appropriation.
	// This is the baseline when no period is recorded.
	FullAppropriations Status = iota

	// ContinuingResolution: operating under temporary appropriations.
	ContinuingResolution

	// Gap: an appropriations lapse without a shutdown of operations.
	Gap

	// Shutdown: an appropriations lapse with operations shut down.
	Shutdown
)

var statusNames = map[Status]string{
	FullAppropriations:   "full_appropriations",
	ContinuingResolution: "continuing_resolution",
	Gap:                  "gap",
	Shutdown:             "shutdown",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Precedence orders overlapping statuses; a higher value wins.
func (s Status) Precedence() int { return int(s) }

// =============================================================================
// STATUS PERIOD - One fact-table record
// =============================================================================

// StatusPeriod records one entity's status over an inclusive date range.
// A zero End means the period is open-ended.
type StatusPeriod struct {
	Entity   Department
	Start    Date
	End      Date // inclusive; zero = open-ended
	Status   Status
	Citation string
}

func (p StatusPeriod) Contains(d Date) bool {
	if d.Before(p.Start) {
		return false
	}
	return p.End.IsZero() || d.BeforeOrEqual(p.End)
}

// OverlapsPeriod reports whether the record touches any day of the range.
func (p StatusPeriod) OverlapsPeriod(r Period) bool {
	if r.End.Before(p.Start) {
		return false
	}
	return p.End.IsZero() || r.Start.BeforeOrEqual(p.End)
}

// sortPeriods orders records by start date, then entity, for stable output
// and the two-pointer sweep used in range resolution.
func sortPeriods(periods []StatusPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		if !periods[i].Start.Equal(periods[j].Start) {
			return periods[i].Start.Before(periods[j].Start)
		}
		return periods[i].Entity < periods[j].Entity
	})
}

// =============================================================================
// OVERLAP RESOLUTION
// =============================================================================

// pickStatus merges the periods containing a date into one winner.
// matches may be empty (baseline applies). The returned period is nil when
// the baseline applies.
func pickStatus(d Date, entity Department, matches []StatusPeriod) (Status, *StatusPeriod, error) {
	if len(matches) == 0 {
		return FullAppropriations, nil, nil
	}

	best := matches[0]
	ties := []StatusPeriod{best}
	for _, m := range matches[1:] {
		switch {
		case m.Status.Precedence() > best.Status.Precedence():
			best = m
			ties = ties[:0]
			ties = append(ties, m)
		case m.Status.Precedence() == best.Status.Precedence():
			ties = append(ties, m)
		}
	}

	// Equal-precedence overlap is only acceptable when every record agrees
	// on its source. Distinct citations mean ambiguous history.
	if len(ties) > 1 {
		citations := distinctCitations(ties)
		if len(citations) > 1 {
			return 0, nil, &DataConflictError{
				Date:      d,
				Entity:    entity,
				Status:    best.Status,
				Citations: citations,
			}
		}
		// Duplicated records from one source: prefer the earliest start so
		// ResolvePeriod output is stable.
		for _, t := range ties {
			if t.Start.Before(best.Start) {
				best = t
			}
		}
	}

	winner := best
	return winner.Status, &winner, nil
}

func distinctCitations(periods []StatusPeriod) []string {
	seen := make(map[string]bool, len(periods))
	var out []string
	for _, p := range periods {
		if !seen[p.Citation] {
			seen[p.Citation] = true
			out = append(out, p.Citation)
		}
	}
	sort.Strings(out)
	return out
}
