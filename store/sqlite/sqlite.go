/*
Package sqlite provides a SQLite-backed source for the engine's fact tables.

PURPOSE:
  The compiled-in dataset in the facts package is the default, but revised
  reference data (a newly recorded shutdown, a proclaimed holiday) should be
  shippable without a rebuild. This store loads a full fact-table set from a
  SQLite database at process start, and can seed a database from an existing
  table set so operators start from the compiled-in data.

KEY TABLES:
  meta:           coverage boundaries (coverage_start, cr_data_start)
  status_periods: one row per entity per status interval
  holidays:       proclaimed one-off holidays (statutory ones are computed)
  payday_rules:   pay cadences per population

READ-MOSTLY:
  The database is read once at startup into an immutable fedcal.Tables; the
  process never queries it again. There is no write path besides Seed.

USAGE:
  src, err := sqlite.New("./facts.db")
  defer src.Close()
  tables, err := src.LoadTables(ctx)
  engine := fedcal.NewEngine(tables)

SEE ALSO:
  - facts: the compiled-in dataset used when no database is given
  - fedcal/tables.go: validation applied to whatever this store loads
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/govcal/fedcal-engine/fedcal"
)

// Store is a SQLite fact-table source.
type Store struct {
	db *sql.DB
}

// New opens (or creates) a fact database. Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS status_periods (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		entity     TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT,              -- NULL = open-ended
		status     TEXT NOT NULL,
		citation   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_status_periods_entity_start
		ON status_periods(entity, start_date);

	CREATE TABLE IF NOT EXISTS holidays (
		date     TEXT NOT NULL,
		name     TEXT NOT NULL,
		observed TEXT NOT NULL UNIQUE  -- one record per observed day
	);

	CREATE TABLE IF NOT EXISTS payday_rules (
		population TEXT NOT NULL,
		schedule   TEXT NOT NULL,
		anchor     TEXT,
		cycle_days INTEGER NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		end_date   TEXT               -- NULL = open-ended
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// LOAD
// =============================================================================

// LoadTables reads and validates the full fact-table set.
func (s *Store) LoadTables(ctx context.Context) (*fedcal.Tables, error) {
	cfg := fedcal.TablesConfig{}

	coverage, err := s.metaDate(ctx, "coverage_start")
	if err != nil {
		return nil, err
	}
	cfg.CoverageStart = coverage
	if cfg.CRDataStart, err = s.metaDate(ctx, "cr_data_start"); err != nil {
		return nil, err
	}

	if cfg.StatusPeriods, err = s.loadStatusPeriods(ctx); err != nil {
		return nil, err
	}
	if cfg.Proclaimed, err = s.loadHolidays(ctx); err != nil {
		return nil, err
	}
	if cfg.PaydayRules, err = s.loadPaydayRules(ctx); err != nil {
		return nil, err
	}

	return fedcal.NewTables(cfg)
}

func (s *Store) metaDate(ctx context.Context, key string) (fedcal.Date, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return fedcal.Date{}, fmt.Errorf("meta key %q missing: database not seeded", key)
	}
	if err != nil {
		return fedcal.Date{}, fmt.Errorf("read meta %q: %w", key, err)
	}
	return fedcal.ParseDate(value)
}

func (s *Store) loadStatusPeriods(ctx context.Context) ([]fedcal.StatusPeriod, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entity, start_date, end_date, status, citation
		 FROM status_periods ORDER BY entity, start_date`)
	if err != nil {
		return nil, fmt.Errorf("query status periods: %w", err)
	}
	defer rows.Close()

	var out []fedcal.StatusPeriod
	for rows.Next() {
		var entity, start, status, citation string
		var end sql.NullString
		if err := rows.Scan(&entity, &start, &end, &status, &citation); err != nil {
			return nil, err
		}

		rec := fedcal.StatusPeriod{Citation: citation}
		if rec.Entity, err = fedcal.DepartmentFromAbbrev(entity); err != nil {
			return nil, err
		}
		if rec.Start, err = fedcal.ParseDate(start); err != nil {
			return nil, err
		}
		if end.Valid {
			if rec.End, err = fedcal.ParseDate(end.String); err != nil {
				return nil, err
			}
		}
		if rec.Status, err = parseStatus(status); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) loadHolidays(ctx context.Context) ([]fedcal.HolidayRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, name, observed FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query holidays: %w", err)
	}
	defer rows.Close()

	var out []fedcal.HolidayRecord
	for rows.Next() {
		var date, name, observed string
		if err := rows.Scan(&date, &name, &observed); err != nil {
			return nil, err
		}
		rec := fedcal.HolidayRecord{Name: name, Kind: fedcal.Proclaimed}
		if rec.Date, err = fedcal.ParseDate(date); err != nil {
			return nil, err
		}
		if rec.Observed, err = fedcal.ParseDate(observed); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) loadPaydayRules(ctx context.Context) ([]fedcal.PaydayRule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT population, schedule, anchor, cycle_days, start_date, end_date
		 FROM payday_rules`)
	if err != nil {
		return nil, fmt.Errorf("query payday rules: %w", err)
	}
	defer rows.Close()

	var out []fedcal.PaydayRule
	for rows.Next() {
		var population, schedule, start string
		var anchor, end sql.NullString
		var cycleDays int
		if err := rows.Scan(&population, &schedule, &anchor, &cycleDays, &start, &end); err != nil {
			return nil, err
		}

		rule := fedcal.PaydayRule{CycleDays: cycleDays}
		switch population {
		case "civilian":
			rule.Population = fedcal.Civilian
		case "military":
			rule.Population = fedcal.Military
		default:
			return nil, fmt.Errorf("unknown payday population %q", population)
		}
		switch schedule {
		case "biweekly":
			rule.Schedule = fedcal.Biweekly
		case "semimonthly":
			rule.Schedule = fedcal.Semimonthly
		default:
			return nil, fmt.Errorf("unknown payday schedule %q", schedule)
		}
		if anchor.Valid {
			if rule.Anchor, err = fedcal.ParseDate(anchor.String); err != nil {
				return nil, err
			}
		}
		if rule.Applicable.Start, err = fedcal.ParseDate(start); err != nil {
			return nil, err
		}
		if end.Valid {
			if rule.Applicable.End, err = fedcal.ParseDate(end.String); err != nil {
				return nil, err
			}
		}
		out = append(out, rule)
	}
	return out, rows.Err()
}

func parseStatus(s string) (fedcal.Status, error) {
	switch s {
	case "full_appropriations":
		return fedcal.FullAppropriations, nil
	case "continuing_resolution":
		return fedcal.ContinuingResolution, nil
	case "gap":
		return fedcal.Gap, nil
	case "shutdown":
		return fedcal.Shutdown, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

// =============================================================================
// SEED
// =============================================================================

// Seed writes a full fact-table set into the database, replacing whatever
// is there. Used to bootstrap an operator database from the compiled-in
// dataset.
func (s *Store) Seed(ctx context.Context, tables *fedcal.Tables) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM meta`, `DELETE FROM status_periods`,
		`DELETE FROM holidays`, `DELETE FROM payday_rules`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('coverage_start', ?), ('cr_data_start', ?)`,
		tables.CoverageStart().String(), tables.CRDataStart().String()); err != nil {
		return err
	}

	for _, p := range tables.StatusPeriods() {
		var end interface{}
		if !p.End.IsZero() {
			end = p.End.String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO status_periods (entity, start_date, end_date, status, citation)
			 VALUES (?, ?, ?, ?, ?)`,
			p.Entity.Abbrev(), p.Start.String(), end, p.Status.String(), p.Citation); err != nil {
			return err
		}
	}

	for _, h := range tables.ProclaimedHolidays() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO holidays (date, name, observed) VALUES (?, ?, ?)`,
			h.Date.String(), h.Name, h.Observed.String()); err != nil {
			return err
		}
	}

	for _, r := range tables.PaydayRules() {
		var anchor, end interface{}
		if !r.Anchor.IsZero() {
			anchor = r.Anchor.String()
		}
		if !r.Applicable.End.IsZero() {
			end = r.Applicable.End.String()
		}
		schedule := "biweekly"
		if r.Schedule == fedcal.Semimonthly {
			schedule = "semimonthly"
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO payday_rules (population, schedule, anchor, cycle_days, start_date, end_date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.Population.String(), schedule, anchor, r.CycleDays,
			r.Applicable.Start.String(), end); err != nil {
			return err
		}
	}

	return tx.Commit()
}
