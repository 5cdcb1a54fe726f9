package facts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govcal/fedcal-engine/facts"
	"github.com/govcal/fedcal-engine/fedcal"
)

func TestBuiltin_PassesValidation(t *testing.T) {
	tables, err := facts.Builtin()
	require.NoError(t, err)

	assert.Equal(t, "1974-10-01", tables.CoverageStart().String())
	assert.Equal(t, "1998-10-01", tables.CRDataStart().String())
	assert.NotEmpty(t, tables.StatusPeriods())
	assert.NotEmpty(t, tables.ProclaimedHolidays())
	assert.Len(t, tables.PaydayRules(), 2)
}

func TestBuiltin_ExpansionRespectsExemptions(t *testing.T) {
	// The 2018-12-22 lapse exempted the departments with enacted FY2019
	// appropriations: they must have no record covering the lapse.
	tables := facts.MustBuiltin()
	inLapse := fedcal.MustDate("2019-01-15")

	for _, p := range tables.PeriodsFor(fedcal.DOD) {
		if p.Contains(inLapse) {
			t.Errorf("DOD was exempt from the FY2019 lapse but has record %+v", p)
		}
	}

	var dojShutdown bool
	for _, p := range tables.PeriodsFor(fedcal.DOJ) {
		if p.Contains(inLapse) && p.Status == fedcal.Shutdown {
			dojShutdown = true
		}
	}
	assert.True(t, dojShutdown, "DOJ must carry the FY2019 shutdown record")
}

func TestBuiltin_DHSRecordsClampedToFormation(t *testing.T) {
	tables := facts.MustBuiltin()

	for _, p := range tables.PeriodsFor(fedcal.DHS) {
		assert.True(t, p.Start.AfterOrEqual(fedcal.DHSFormed),
			"DHS record %s starts before the department existed", p.Start)
	}

	// The CR running across the formation date must cover DHS from the
	// formation day, clamped out of the earlier stretch.
	var clamped bool
	for _, p := range tables.PeriodsFor(fedcal.DHS) {
		if p.Start.Equal(fedcal.DHSFormed) && p.Status == fedcal.ContinuingResolution {
			clamped = true
		}
	}
	assert.True(t, clamped, "expected a CR record clamped to the DHS formation date")
}

func TestBuiltin_CitationsNameTheSourceTable(t *testing.T) {
	tables := facts.MustBuiltin()

	for _, p := range tables.StatusPeriods() {
		require.NotEmpty(t, p.Citation, "record %s/%s has no citation", p.Entity, p.Start)
		switch p.Status {
		case fedcal.Gap, fedcal.Shutdown:
			assert.Contains(t, p.Citation, "funding gap table")
		case fedcal.ContinuingResolution:
			assert.Contains(t, p.Citation, "appropriations status table")
		}
	}
}

func TestBuiltin_GovernmentwideShutdown2013(t *testing.T) {
	tables := facts.MustBuiltin()
	inLapse := fedcal.MustDate("2013-10-10")

	for _, dept := range fedcal.AllDepartments() {
		var covered bool
		for _, p := range tables.PeriodsFor(dept) {
			if p.Contains(inLapse) && p.Status == fedcal.Shutdown {
				covered = true
			}
		}
		assert.True(t, covered, "%s missing from the 2013 shutdown", dept)
	}
}

func TestBuiltin_PaydayRules(t *testing.T) {
	tables := facts.MustBuiltin()

	var civilian, military bool
	for _, r := range tables.PaydayRules() {
		switch r.Population {
		case fedcal.Civilian:
			civilian = true
			assert.Equal(t, fedcal.Biweekly, r.Schedule)
			assert.Equal(t, 14, r.CycleDays)
			assert.Equal(t, "1969-12-19", r.Anchor.String())
			assert.True(t, r.Applicable.End.IsZero(), "civilian rule must be open-ended")
		case fedcal.Military:
			military = true
			assert.Equal(t, fedcal.Semimonthly, r.Schedule)
		}
	}
	assert.True(t, civilian && military)
}
