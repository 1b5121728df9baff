/*
Package sqlite provides a SQLite-backed implementation of holiday.Store.

PURPOSE:
  Persists holiday definitions, not resolved dates: each row stores a
  rule (fixed / annual / nth_weekday) plus observance and weight, and
  the domain layer resolves dates per year. In production the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLE:
  holidays: rule rows, company-scoped; company_id '' marks global rows

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/calendar.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  cal, err := holiday.CalendarFor(ctx, store, "acme")

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - holiday/store.go:        Interface definition
  - holiday/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/holiday"
)

// Store implements holiday.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ holiday.Store = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Holiday rule definitions (company-specific and global)
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		rule_kind TEXT NOT NULL,
		fixed_date TEXT,
		month INTEGER,
		day INTEGER,
		weekday INTEGER,
		occurrence INTEGER,
		zone TEXT NOT NULL DEFAULT '',
		observance TEXT NOT NULL DEFAULT 'exact',
		weight TEXT NOT NULL DEFAULT '1',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_company
		ON holidays(company_id);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(company_id, name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAY STORE (holiday.Store interface)
// =============================================================================

// SaveHoliday inserts or updates a holiday by ID.
func (s *Store) SaveHoliday(ctx context.Context, h holiday.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO holidays
		(id, company_id, name, rule_kind, fixed_date, month, day, weekday, occurrence,
		 zone, observance, weight, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			company_id = excluded.company_id,
			name = excluded.name,
			rule_kind = excluded.rule_kind,
			fixed_date = excluded.fixed_date,
			month = excluded.month,
			day = excluded.day,
			weekday = excluded.weekday,
			occurrence = excluded.occurrence,
			zone = excluded.zone,
			observance = excluded.observance,
			weight = excluded.weight
	`

	row := toRow(h)
	_, err := s.db.ExecContext(ctx, query,
		row.id, row.companyID, row.name, row.ruleKind,
		row.fixedDate, row.month, row.day, row.weekday, row.occurrence,
		row.zone, row.observance, row.weight,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

// GetHoliday retrieves a holiday by ID. Returns nil when absent.
func (s *Store) GetHoliday(ctx context.Context, id string) (*holiday.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, company_id, name, rule_kind, fixed_date, month, day, weekday, occurrence,
		       zone, observance, weight
		FROM holidays WHERE id = ?
	`

	holidays, err := s.queryHolidays(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(holidays) == 0 {
		return nil, nil
	}
	return &holidays[0], nil
}

// ListHolidays returns the company's holidays plus the global set.
func (s *Store) ListHolidays(ctx context.Context, companyID string) ([]holiday.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, company_id, name, rule_kind, fixed_date, month, day, weekday, occurrence,
		       zone, observance, weight
		FROM holidays
		WHERE company_id = ? OR company_id = ''
		ORDER BY name ASC, id ASC
	`

	return s.queryHolidays(ctx, query, companyID)
}

// DeleteHoliday removes a holiday by ID.
func (s *Store) DeleteHoliday(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	return err
}

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM holidays")
	return err
}

func (s *Store) queryHolidays(ctx context.Context, query string, args ...any) ([]holiday.Holiday, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// =============================================================================
// ROW MAPPING
// =============================================================================

type holidayRow struct {
	id         string
	companyID  string
	name       string
	ruleKind   string
	fixedDate  sql.NullString
	month      sql.NullInt64
	day        sql.NullInt64
	weekday    sql.NullInt64
	occurrence sql.NullInt64
	zone       string
	observance string
	weight     string
}

func toRow(h holiday.Holiday) holidayRow {
	row := holidayRow{
		id:         h.ID,
		companyID:  h.CompanyID,
		name:       h.Name,
		ruleKind:   string(h.Rule.Kind),
		observance: string(h.Observance),
		weight:     h.Weight.String(),
	}

	switch h.Rule.Kind {
	case holiday.RuleFixed:
		row.fixedDate = sql.NullString{String: h.Rule.Fixed.String(), Valid: true}
	case holiday.RuleAnnual:
		row.month = sql.NullInt64{Int64: int64(h.Rule.Annual.Month()), Valid: true}
		row.day = sql.NullInt64{Int64: int64(h.Rule.Annual.Day()), Valid: true}
		row.zone = h.Rule.Annual.Zone()
	case holiday.RuleNthWeekday:
		row.month = sql.NullInt64{Int64: int64(h.Rule.Month), Valid: true}
		row.weekday = sql.NullInt64{Int64: int64(h.Rule.Weekday), Valid: true}
		row.occurrence = sql.NullInt64{Int64: int64(h.Rule.Occurrence), Valid: true}
	}
	return row
}

func scanHoliday(rows *sql.Rows) (holiday.Holiday, error) {
	var row holidayRow
	if err := rows.Scan(
		&row.id, &row.companyID, &row.name, &row.ruleKind,
		&row.fixedDate, &row.month, &row.day, &row.weekday, &row.occurrence,
		&row.zone, &row.observance, &row.weight,
	); err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to scan holiday: %w", err)
	}

	rule, err := rowToRule(row)
	if err != nil {
		return holiday.Holiday{}, err
	}

	weight, err := decimal.NewFromString(row.weight)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("invalid stored weight %q: %w", row.weight, err)
	}

	return holiday.Holiday{
		ID:         row.id,
		CompanyID:  row.companyID,
		Name:       row.name,
		Rule:       rule,
		Observance: holiday.Observance(row.observance),
		Weight:     weight,
	}, nil
}

func rowToRule(row holidayRow) (holiday.Rule, error) {
	switch holiday.RuleKind(row.ruleKind) {
	case holiday.RuleFixed:
		t, err := time.Parse("2006-01-02", row.fixedDate.String)
		if err != nil {
			return holiday.Rule{}, fmt.Errorf("invalid stored date %q: %w", row.fixedDate.String, err)
		}
		return holiday.FixedRule(calendar.FromTime(t)), nil

	case holiday.RuleAnnual:
		rd, err := calendar.NewRecurringDateIn(time.Month(row.month.Int64), int(row.day.Int64), row.zone)
		if err != nil {
			return holiday.Rule{}, err
		}
		return holiday.AnnualRule(rd), nil

	case holiday.RuleNthWeekday:
		return holiday.NthWeekdayRule(
			time.Month(row.month.Int64),
			time.Weekday(row.weekday.Int64),
			int(row.occurrence.Int64),
		), nil

	default:
		return holiday.Rule{}, fmt.Errorf("unknown rule kind %q", row.ruleKind)
	}
}
