/*
Package facts carries the compiled-in historical reference data the engine
resolves against: appropriations gaps and shutdowns (complete from FY1975),
continuing-resolution intervals (complete from FY1999), proclaimed one-off
holidays, and payday rules.

Budget data were accumulated from the Congressional Research Service
appropriations status tables and cross-referenced against GAO records; the
data are in the public domain.
*/
package facts

import "github.com/govcal/fedcal-engine/fedcal"

// gapRecord is one appropriations lapse. When affected is nil the lapse
// covered every department existing at the time except those in exempt.
type gapRecord struct {
	start, end string
	shutdown   bool
	affected   []fedcal.Department
	exempt     []fedcal.Department
}

// Appropriations gaps and shutdowns, FY1977-FY2019. Two sub-day 2020 lapses
// are omitted: they had no operational impact. Departments that did not yet
// exist (DHS before 2002-11-25) are excluded during expansion in tables.go,
// so records here only name the modern roster.
var appropriationsGaps = []gapRecord{
	{start: "1976-10-01", end: "1976-10-10", affected: depts(fedcal.DOL, fedcal.ED, fedcal.HHS)},
	{start: "1977-10-01", end: "1977-10-12", affected: depts(fedcal.DOL, fedcal.ED, fedcal.HHS)},
	{start: "1977-11-10", end: "1977-11-29", affected: depts(fedcal.DOL, fedcal.ED, fedcal.HHS)},
	{start: "1978-10-01", end: "1978-10-17", affected: depts(fedcal.DOD, fedcal.DOL, fedcal.ED, fedcal.HHS)},
	{start: "1979-10-01", end: "1979-10-11"},
	{start: "1981-11-21", end: "1981-11-21", shutdown: true},
	{start: "1982-12-18", end: "1982-12-20"},
	{start: "1983-11-11", end: "1983-11-13"},
	{start: "1984-10-04", end: "1984-10-15", shutdown: true,
		affected: depts(fedcal.DOJ, fedcal.DOS, fedcal.HUD, fedcal.IA)},
	{start: "1986-10-17", end: "1986-10-17", shutdown: true},
	{start: "1987-12-19", end: "1987-12-19"},
	{start: "1990-10-06", end: "1990-10-08"},
	{start: "1995-11-14", end: "1995-11-18", shutdown: true,
		exempt: depts(fedcal.DOE, fedcal.USDA)},
	{start: "1995-12-16", end: "1996-01-05", shutdown: true,
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.USDA, fedcal.USDT)},
	{start: "2013-10-01", end: "2013-10-16", shutdown: true},
	{start: "2018-01-21", end: "2018-01-21", shutdown: true},
	{start: "2018-12-22", end: "2019-02-09", shutdown: true,
		exempt: depts(fedcal.DOD, fedcal.DOE, fedcal.DOL, fedcal.ED, fedcal.HHS, fedcal.VA)},
}

func depts(ds ...fedcal.Department) []fedcal.Department { return ds }
