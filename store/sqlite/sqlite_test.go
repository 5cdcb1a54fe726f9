package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govcal/fedcal-engine/facts"
	"github.com/govcal/fedcal-engine/fedcal"
	"github.com/govcal/fedcal-engine/store/sqlite"
)

func newSeededStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Seed(context.Background(), facts.MustBuiltin()))
	return store
}

func TestLoadTables_UnseededDatabase(t *testing.T) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadTables(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not seeded")
}

func TestSeedAndLoad_Roundtrip(t *testing.T) {
	store := newSeededStore(t)
	builtin := facts.MustBuiltin()

	loaded, err := store.LoadTables(context.Background())
	require.NoError(t, err)

	assert.True(t, loaded.CoverageStart().Equal(builtin.CoverageStart()))
	assert.True(t, loaded.CRDataStart().Equal(builtin.CRDataStart()))
	assert.Len(t, loaded.StatusPeriods(), len(builtin.StatusPeriods()))
	assert.Len(t, loaded.ProclaimedHolidays(), len(builtin.ProclaimedHolidays()))
	assert.Len(t, loaded.PaydayRules(), len(builtin.PaydayRules()))
}

func TestSeedAndLoad_ResolvesLikeBuiltin(t *testing.T) {
	// An engine over the reloaded tables must answer exactly like one over
	// the compiled-in tables.
	store := newSeededStore(t)

	loaded, err := store.LoadTables(context.Background())
	require.NoError(t, err)

	fromDB := fedcal.NewEngine(loaded)
	fromCode := fedcal.NewEngine(facts.MustBuiltin())

	dates := []string{"2013-10-05", "2018-12-28", "2023-11-15", "1995-12-20", "2024-06-15"}
	for _, raw := range dates {
		d := fedcal.MustDate(raw)
		for _, dept := range fedcal.AllDepartments() {
			want, err := fromCode.ResolveStatus(d, dept)
			require.NoError(t, err)
			got, err := fromDB.ResolveStatus(d, dept)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s on %s", dept, d)
		}
	}

	assert.Equal(t, fromCode.IsHoliday(fedcal.MustDate("2018-12-24")),
		fromDB.IsHoliday(fedcal.MustDate("2018-12-24")))
	assert.Equal(t, fromCode.IsCivilianPayday(fedcal.MustDate("2024-01-05")),
		fromDB.IsCivilianPayday(fedcal.MustDate("2024-01-05")))
}

func TestSeed_ReplacesExistingData(t *testing.T) {
	store := newSeededStore(t)
	ctx := context.Background()

	// Seeding twice must not duplicate rows.
	require.NoError(t, store.Seed(ctx, facts.MustBuiltin()))

	loaded, err := store.LoadTables(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.StatusPeriods(), len(facts.MustBuiltin().StatusPeriods()))
}
