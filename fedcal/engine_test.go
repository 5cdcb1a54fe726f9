package fedcal_test

import (
	"errors"
	"testing"

	"github.com/govcal/fedcal-engine/facts"
	"github.com/govcal/fedcal-engine/fedcal"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// builtinEngine resolves against the compiled-in historical dataset.
func builtinEngine(t *testing.T) *fedcal.Engine {
	t.Helper()
	tables, err := facts.Builtin()
	if err != nil {
		t.Fatalf("compiled-in tables failed validation: %v", err)
	}
	return fedcal.NewEngine(tables)
}

// syntheticEngine builds an engine over a small hand-made fact set so tests
// can exercise resolution rules independent of the historical record.
func syntheticEngine(t *testing.T, periods []fedcal.StatusPeriod) *fedcal.Engine {
	t.Helper()
	tables, err := fedcal.NewTables(fedcal.TablesConfig{
		CoverageStart: fedcal.MustDate("2000-01-01"),
		CRDataStart:   fedcal.MustDate("2000-01-01"),
		StatusPeriods: periods,
	})
	if err != nil {
		t.Fatalf("synthetic tables failed validation: %v", err)
	}
	return fedcal.NewEngine(tables)
}

func span(entity fedcal.Department, start, end string, status fedcal.Status, citation string) fedcal.StatusPeriod {
	p := fedcal.StatusPeriod{
		Entity:   entity,
		Start:    fedcal.MustDate(start),
		Status:   status,
		Citation: citation,
	}
	if end != "" {
		p.End = fedcal.MustDate(end)
	}
	return p
}

// =============================================================================
// RESOLUTION RULE TESTS (synthetic data)
// =============================================================================

func TestResolveStatus_BaselineWhenNoPeriodMatches(t *testing.T) {
	eng := syntheticEngine(t, nil)

	status, err := eng.ResolveStatus(fedcal.MustDate("2010-06-15"), fedcal.DOJ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.FullAppropriations {
		t.Errorf("expected baseline full appropriations, got %s", status)
	}
}

func TestResolveStatus_PrecedenceShutdownOverCR(t *testing.T) {
	// GIVEN: A shutdown recorded inside a broader CR interval
	// WHEN: Resolving a date inside both
	// THEN: The shutdown wins; CR applies outside the shutdown

	eng := syntheticEngine(t, []fedcal.StatusPeriod{
		span(fedcal.DOJ, "2010-10-01", "2010-12-31", fedcal.ContinuingResolution, "status table"),
		span(fedcal.DOJ, "2010-11-10", "2010-11-20", fedcal.Shutdown, "gap table"),
	})

	status, period, err := eng.ResolvePeriod(fedcal.MustDate("2010-11-15"), fedcal.DOJ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.Shutdown {
		t.Errorf("inside the lapse: expected shutdown, got %s", status)
	}
	if period == nil || period.Citation != "gap table" {
		t.Errorf("expected the gap-table record to win, got %+v", period)
	}

	status, err = eng.ResolveStatus(fedcal.MustDate("2010-11-25"), fedcal.DOJ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.ContinuingResolution {
		t.Errorf("outside the lapse: expected CR, got %s", status)
	}
}

func TestResolveStatus_PrecedenceGapOverCR(t *testing.T) {
	eng := syntheticEngine(t, []fedcal.StatusPeriod{
		span(fedcal.DOE, "2010-10-01", "2010-12-31", fedcal.ContinuingResolution, "status table"),
		span(fedcal.DOE, "2010-10-05", "2010-10-07", fedcal.Gap, "gap table"),
	})

	status, err := eng.ResolveStatus(fedcal.MustDate("2010-10-06"), fedcal.DOE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.Gap {
		t.Errorf("expected gap, got %s", status)
	}
}

func TestResolveStatus_EqualPrecedenceConflict(t *testing.T) {
	// GIVEN: Two overlapping gap records from different sources
	// THEN: Resolution refuses to guess and reports both citations

	eng := syntheticEngine(t, []fedcal.StatusPeriod{
		span(fedcal.USDA, "2010-10-01", "2010-10-10", fedcal.Gap, "source A"),
		span(fedcal.USDA, "2010-10-05", "2010-10-15", fedcal.Gap, "source B"),
	})

	_, err := eng.ResolveStatus(fedcal.MustDate("2010-10-07"), fedcal.USDA)
	if !errors.Is(err, fedcal.ErrDataConflict) {
		t.Fatalf("expected ErrDataConflict, got %v", err)
	}

	var conflict *fedcal.DataConflictError
	if !errors.As(err, &conflict) {
		t.Fatal("expected *DataConflictError")
	}
	if conflict.Entity != fedcal.USDA || conflict.Status != fedcal.Gap {
		t.Errorf("conflict context wrong: %+v", conflict)
	}
	if len(conflict.Citations) != 2 {
		t.Errorf("expected both citations, got %v", conflict.Citations)
	}

	// Outside the overlap either record alone resolves fine.
	if _, err := eng.ResolveStatus(fedcal.MustDate("2010-10-02"), fedcal.USDA); err != nil {
		t.Errorf("non-overlapping date should resolve: %v", err)
	}
}

func TestResolveStatus_SameSourceDuplicatesAreNotConflicts(t *testing.T) {
	eng := syntheticEngine(t, []fedcal.StatusPeriod{
		span(fedcal.VA, "2010-10-01", "2010-10-10", fedcal.ContinuingResolution, "status table"),
		span(fedcal.VA, "2010-10-08", "2010-10-20", fedcal.ContinuingResolution, "status table"),
	})

	status, period, err := eng.ResolvePeriod(fedcal.MustDate("2010-10-09"), fedcal.VA)
	if err != nil {
		t.Fatalf("duplicated single-source records must resolve: %v", err)
	}
	if status != fedcal.ContinuingResolution {
		t.Errorf("expected CR, got %s", status)
	}
	// The earlier record wins for stable output.
	if period == nil || !period.Start.Equal(fedcal.MustDate("2010-10-01")) {
		t.Errorf("expected the earlier record, got %+v", period)
	}
}

func TestResolveStatus_OpenEndedPeriod(t *testing.T) {
	eng := syntheticEngine(t, []fedcal.StatusPeriod{
		span(fedcal.DOD, "2010-10-01", "", fedcal.ContinuingResolution, "status table"),
	})

	status, err := eng.ResolveStatus(fedcal.MustDate("2050-01-01"), fedcal.DOD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.ContinuingResolution {
		t.Errorf("open-ended period must match far-future dates, got %s", status)
	}
}

func TestResolveStatus_BeforeCoverage(t *testing.T) {
	eng := syntheticEngine(t, nil)

	_, err := eng.ResolveStatus(fedcal.MustDate("1999-12-31"), fedcal.DOJ)
	if !errors.Is(err, fedcal.ErrOutOfCoverage) {
		t.Fatalf("expected ErrOutOfCoverage, got %v", err)
	}

	var oc *fedcal.OutOfCoverageError
	if !errors.As(err, &oc) {
		t.Fatal("expected *OutOfCoverageError")
	}
	if !oc.CoverageStart.Equal(fedcal.MustDate("2000-01-01")) {
		t.Errorf("coverage start in error = %s", oc.CoverageStart)
	}
	if !fedcal.IsClientError(err) {
		t.Error("out-of-coverage must classify as a client error")
	}
}

func TestResolveStatus_UnknownEntity(t *testing.T) {
	eng := syntheticEngine(t, nil)

	_, err := eng.ResolveStatus(fedcal.MustDate("2010-01-01"), fedcal.Department(99))
	if !errors.Is(err, fedcal.ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity, got %v", err)
	}
	if !fedcal.IsNotFound(err) {
		t.Error("unknown entity must classify as not-found")
	}
}

func TestResolveAll_CoversEveryDepartment(t *testing.T) {
	eng := syntheticEngine(t, nil)

	statuses, err := eng.ResolveAll(fedcal.MustDate("2010-01-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != len(fedcal.AllDepartments()) {
		t.Errorf("expected %d entries, got %d", len(fedcal.AllDepartments()), len(statuses))
	}
}

// =============================================================================
// HISTORICAL RECORD TESTS (compiled-in data)
// =============================================================================

func TestBuiltin_Shutdown2018_PartialByDepartment(t *testing.T) {
	// The FY2019 lapse shut down DOJ while DOD already had full-year
	// appropriations enacted.
	eng := builtinEngine(t)
	d := fedcal.MustDate("2018-12-28")

	doj, err := eng.ResolveStatus(d, fedcal.DOJ)
	if err != nil {
		t.Fatalf("DOJ: %v", err)
	}
	if doj != fedcal.Shutdown {
		t.Errorf("DOJ on %s = %s, want shutdown", d, doj)
	}

	dod, err := eng.ResolveStatus(d, fedcal.DOD)
	if err != nil {
		t.Fatalf("DOD: %v", err)
	}
	if dod != fedcal.FullAppropriations {
		t.Errorf("DOD on %s = %s, want full_appropriations", d, dod)
	}
}

func TestBuiltin_Shutdown2013_Governmentwide(t *testing.T) {
	eng := builtinEngine(t)

	statuses, err := eng.ResolveAll(fedcal.MustDate("2013-10-05"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for dept, status := range statuses {
		if status != fedcal.Shutdown {
			t.Errorf("%s on 2013-10-05 = %s, want shutdown", dept, status)
		}
	}
}

func TestBuiltin_CR2024(t *testing.T) {
	eng := builtinEngine(t)

	status, err := eng.ResolveStatus(fedcal.MustDate("2023-11-15"), fedcal.DOT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.ContinuingResolution {
		t.Errorf("DOT on 2023-11-15 = %s, want continuing_resolution", status)
	}
}

func TestBuiltin_DHSBeforeFormation(t *testing.T) {
	// DHS did not exist in October 2002: status resolution falls back to
	// the baseline and per-date facts omit the department entirely.
	eng := builtinEngine(t)
	d := fedcal.MustDate("2002-10-25")

	status, err := eng.ResolveStatus(d, fedcal.DHS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != fedcal.FullAppropriations {
		t.Errorf("pre-formation DHS = %s, want baseline", status)
	}

	df, err := eng.Facts(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := df.Statuses[fedcal.DHS]; present {
		t.Error("pre-formation DHS must be omitted from per-date facts")
	}
	if len(df.Statuses) != len(fedcal.AllDepartments())-1 {
		t.Errorf("expected %d statuses, got %d", len(fedcal.AllDepartments())-1, len(df.Statuses))
	}
}

func TestBuiltin_BeforeCoverageFloor(t *testing.T) {
	eng := builtinEngine(t)

	_, err := eng.ResolveStatus(fedcal.MustDate("1974-09-30"), fedcal.DOD)
	if !errors.Is(err, fedcal.ErrOutOfCoverage) {
		t.Fatalf("expected ErrOutOfCoverage before FY1975, got %v", err)
	}

	// The floor itself resolves.
	if _, err := eng.ResolveStatus(fedcal.MustDate("1974-10-01"), fedcal.DOD); err != nil {
		t.Errorf("coverage floor must resolve: %v", err)
	}
}

func TestBuiltin_NoConflictsAcrossRecordedHistory(t *testing.T) {
	// The compiled-in record must never trip the conflict detector: the
	// gap and CR tables overlap by construction (CRs bracket lapses), but
	// only across precedence levels.
	if testing.Short() {
		t.Skip("scans five decades of dates")
	}
	eng := builtinEngine(t)

	start := eng.Tables().CoverageStart()
	end := fedcal.MustDate("2024-09-30")
	if _, err := eng.FactsRange(fedcal.Period{Start: start, End: end}); err != nil {
		t.Fatalf("historical record failed to resolve: %v", err)
	}
}

func TestBuiltin_DataIncompleteBeforeCRRecords(t *testing.T) {
	eng := builtinEngine(t)

	early, err := eng.Facts(fedcal.MustDate("1990-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !early.DataIncomplete {
		t.Error("dates before the CR tables must be marked incomplete")
	}

	modern, err := eng.Facts(fedcal.MustDate("2005-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modern.DataIncomplete {
		t.Error("dates inside the CR tables must not be marked incomplete")
	}
}
