// Package store persists calculator scenarios in a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/nestegg/internal/scenario"
)

// LastName is the reserved name under which the last evaluated scenario is kept.
const LastName = "last"

var (
	// ErrNotFound is returned when no scenario has the requested name.
	ErrNotFound = errors.New("scenario not found")
	// ErrReservedName is returned for empty or reserved scenario names.
	ErrReservedName = errors.New("scenario name is empty or reserved")
)

// Saved is a stored scenario with its metadata.
type Saved struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Scenario  scenario.Scenario `json:"scenario"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Store provides SQLite-backed scenario storage.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a named scenario, keeping its id when the name already exists.
func (s *Store) Save(name string, sc scenario.Scenario) error {
	name = strings.TrimSpace(name)
	if name == "" || name == LastName {
		return ErrReservedName
	}
	return s.upsert(name, sc)
}

// SaveLast remembers sc as the most recently evaluated scenario.
func (s *Store) SaveLast(sc scenario.Scenario) error {
	return s.upsert(LastName, sc)
}

// LoadLast returns the last evaluated scenario, or ErrNotFound.
func (s *Store) LoadLast() (scenario.Scenario, error) {
	saved, err := s.Get(LastName)
	if err != nil {
		return scenario.Scenario{}, err
	}
	return saved.Scenario, nil
}

// ClearLast forgets the last evaluated scenario. It is not an error if none exists.
func (s *Store) ClearLast() error {
	_, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", LastName)
	if err != nil {
		return fmt.Errorf("clearing last scenario: %w", err)
	}
	return nil
}

func (s *Store) upsert(name string, sc scenario.Scenario) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	var goal sql.NullFloat64
	if sc.Goal != nil {
		goal = sql.NullFloat64{Float64: *sc.Goal, Valid: true}
	}
	// A blank fallback is NaN, which SQLite can only hold as NULL.
	fallback := sql.NullFloat64{Float64: sc.FallbackYears, Valid: !math.IsNaN(sc.FallbackYears)}

	_, err := s.db.Exec(`INSERT INTO scenarios
		(id, name, principal, current_age, annual_rate_pct, monthly_contribution,
		 target_age, goal, fallback_years, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 principal = excluded.principal,
		 current_age = excluded.current_age,
		 annual_rate_pct = excluded.annual_rate_pct,
		 monthly_contribution = excluded.monthly_contribution,
		 target_age = excluded.target_age,
		 goal = excluded.goal,
		 fallback_years = excluded.fallback_years,
		 updated_at = excluded.updated_at`,
		uuid.NewString(), name, sc.Principal, sc.CurrentAge, sc.AnnualRatePct, sc.MonthlyContribution,
		sc.TargetAge, goal, fallback, now, now,
	)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return nil
}

const selectColumns = `id, name, principal, current_age, annual_rate_pct, monthly_contribution,
	target_age, goal, fallback_years, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(r rowScanner) (Saved, error) {
	var sv Saved
	var goal, fallback sql.NullFloat64
	var created, updated string

	err := r.Scan(&sv.ID, &sv.Name, &sv.Scenario.Principal, &sv.Scenario.CurrentAge,
		&sv.Scenario.AnnualRatePct, &sv.Scenario.MonthlyContribution, &sv.Scenario.TargetAge,
		&goal, &fallback, &created, &updated)
	if err != nil {
		return Saved{}, err
	}

	if goal.Valid {
		g := goal.Float64
		sv.Scenario.Goal = &g
	}
	sv.Scenario.FallbackYears = math.NaN()
	if fallback.Valid {
		sv.Scenario.FallbackYears = fallback.Float64
	}
	sv.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	sv.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return sv, nil
}

// Get returns the scenario stored under name.
func (s *Store) Get(name string) (Saved, error) {
	name = strings.TrimSpace(name)
	row := s.db.QueryRow("SELECT "+selectColumns+" FROM scenarios WHERE name = ?", name)
	sv, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Saved{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return Saved{}, fmt.Errorf("loading scenario %q: %w", name, err)
	}
	return sv, nil
}

// List returns all named scenarios ordered by name. The last-evaluated entry is excluded.
func (s *Store) List() ([]Saved, error) {
	rows, err := s.db.Query("SELECT "+selectColumns+" FROM scenarios WHERE name != ? ORDER BY name", LastName)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Saved
	for rows.Next() {
		sv, err := scanSaved(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// Delete removes a named scenario.
func (s *Store) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == LastName {
		return ErrReservedName
	}
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting scenario %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of named scenarios.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios WHERE name != ?", LastName).Scan(&count)
	return count, err
}
