package fedcal

import (
	"strings"
	"time"
)

// =============================================================================
// DEPARTMENTS - Executive branch entities tracked by the engine
// =============================================================================

// Department identifies a top-level executive department (plus the two
// catch-all entities used in appropriations reporting: Independent Agencies
// and the Executive Office of the President). Judiciary and legislative
// budgets are not tracked.
type Department int

const (
	DHS Department = iota
	DOC
	DOD
	DOE
	DOI
	DOJ
	DOL
	DOS
	DOT
	ED
	HHS
	HUD
	IA
	PRES
	USDA
	USDT
	VA

	numDepartments
)

type deptInfo struct {
	abbrev string
	full   string
	short  string
}

var deptInfos = [numDepartments]deptInfo{
	DHS:  {"DHS", "Department of Homeland Security", "Homeland Security"},
	DOC:  {"DoC", "Department of Commerce", "Commerce"},
	DOD:  {"DoD", "Department of Defense", "Defense"},
	DOE:  {"DoE", "Department of Energy", "Energy"},
	DOI:  {"DoI", "Department of the Interior", "Interior"},
	DOJ:  {"DoJ", "Department of Justice", "Justice"},
	DOL:  {"DoL", "Department of Labor", "Labor"},
	DOS:  {"DoS", "Department of State", "State"},
	DOT:  {"DoT", "Department of Transportation", "Transportation"},
	ED:   {"ED", "Department of Education", "Education"},
	HHS:  {"HHS", "Department of Health and Human Services", "Health and Human Services"},
	HUD:  {"HUD", "Department of Housing and Urban Development", "Housing and Urban Development"},
	IA:   {"IA", "Independent Agencies", "Independent Agencies"},
	PRES: {"PRES", "Executive Office of the President", "Office of the President"},
	USDA: {"USDA", "Department of Agriculture", "Agriculture"},
	USDT: {"USDT", "Department of the Treasury", "Treasury"},
	VA:   {"VA", "Department of Veterans Affairs", "Veterans Affairs"},
}

// DHSFormed is the date DHS came into existence; before it the department
// has no appropriations history at all.
var DHSFormed = NewDate(2002, time.November, 25)

func (d Department) Valid() bool { return d >= 0 && d < numDepartments }

func (d Department) Abbrev() string {
	if !d.Valid() {
		return "?"
	}
	return deptInfos[d].abbrev
}

func (d Department) Full() string {
	if !d.Valid() {
		return "unknown department"
	}
	return deptInfos[d].full
}

func (d Department) Short() string {
	if !d.Valid() {
		return "unknown"
	}
	return deptInfos[d].short
}

func (d Department) String() string { return d.Abbrev() }

// ExistsOn reports whether the department existed on the given date.
// Only DHS has a formation date inside the engine's coverage window.
func (d Department) ExistsOn(date Date) bool {
	if d == DHS {
		return date.AfterOrEqual(DHSFormed)
	}
	return d.Valid()
}

// AllDepartments returns the full roster in stable (declaration) order.
func AllDepartments() []Department {
	depts := make([]Department, 0, numDepartments)
	for d := Department(0); d < numDepartments; d++ {
		depts = append(depts, d)
	}
	return depts
}

// DepartmentFromAbbrev resolves a department identifier from its
// abbreviation (e.g. "DoJ"). Matching is case-insensitive since the
// abbreviations double as URL path segments in the HTTP API.
func DepartmentFromAbbrev(abbrev string) (Department, error) {
	for d := Department(0); d < numDepartments; d++ {
		if strings.EqualFold(deptInfos[d].abbrev, abbrev) {
			return d, nil
		}
	}
	return -1, &InvalidEntityError{Identifier: abbrev}
}
