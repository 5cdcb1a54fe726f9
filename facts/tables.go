/*
tables.go - Expansion of the raw interval data into engine fact tables

PURPOSE:
  The gap and CR data are recorded the way the sources publish them: one
  interval per stretch of unchanged coverage, naming affected or exempt
  departments. Build expands those intervals into per-department
  StatusPeriod records, attaches citations, and clamps out departments that
  did not exist yet (DHS before 2002-11-25).
*/
package facts

import (
	"fmt"

	"github.com/govcal/fedcal-engine/fedcal"
)

const (
	// coverageStart is the start of FY1975, the earliest fiscal year with
	// complete gap/shutdown data.
	coverageStart = "1974-10-01"

	// crDataStart is the first day of FY1999, where CR records begin.
	crDataStart = "1998-10-01"
)

// Builtin assembles the compiled-in fact tables.
func Builtin() (*fedcal.Tables, error) {
	return fedcal.NewTables(fedcal.TablesConfig{
		CoverageStart: fedcal.MustDate(coverageStart),
		CRDataStart:   fedcal.MustDate(crDataStart),
		StatusPeriods: buildStatusPeriods(),
		Proclaimed:    proclaimedRecords(),
		PaydayRules:   paydayRules(),
	})
}

// MustBuiltin is for main wiring and tests; the compiled-in data set is
// validated by facts package tests, so a failure here is a programmer error.
func MustBuiltin() *fedcal.Tables {
	t, err := Builtin()
	if err != nil {
		panic(err)
	}
	return t
}

func buildStatusPeriods() []fedcal.StatusPeriod {
	var out []fedcal.StatusPeriod

	for _, g := range appropriationsGaps {
		status := fedcal.Gap
		if g.shutdown {
			status = fedcal.Shutdown
		}
		start, end := fedcal.MustDate(g.start), fedcal.MustDate(g.end)
		citation := fmt.Sprintf("CRS funding gap table, FY%d", fedcal.FiscalYear(start))
		out = append(out, expand(g.affected, g.exempt, start, end, status, citation)...)
	}

	for _, cr := range continuingResolutions {
		start, end := fedcal.MustDate(cr.start), fedcal.MustDate(cr.end)
		citation := fmt.Sprintf("CRS appropriations status table, FY%d", fedcal.FiscalYear(start))
		out = append(out, expand(nil, cr.exempt, start, end, fedcal.ContinuingResolution, citation)...)
	}

	return out
}

// expand turns one interval into per-department records. affected nil means
// every department except the exempt set. Departments not yet in existence
// are dropped; a department formed mid-interval gets a clamped start.
func expand(affected, exempt []fedcal.Department, start, end fedcal.Date, status fedcal.Status, citation string) []fedcal.StatusPeriod {
	roster := affected
	if roster == nil {
		exempted := make(map[fedcal.Department]bool, len(exempt))
		for _, d := range exempt {
			exempted[d] = true
		}
		for _, d := range fedcal.AllDepartments() {
			if !exempted[d] {
				roster = append(roster, d)
			}
		}
	}

	out := make([]fedcal.StatusPeriod, 0, len(roster))
	for _, dept := range roster {
		recStart := start
		if !dept.ExistsOn(recStart) {
			if !dept.ExistsOn(end) {
				continue
			}
			recStart = fedcal.DHSFormed
		}
		out = append(out, fedcal.StatusPeriod{
			Entity:   dept,
			Start:    recStart,
			End:      end,
			Status:   status,
			Citation: citation,
		})
	}
	return out
}
