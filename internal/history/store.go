// internal/history/store.go
//
// SQLite-backed run history.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, FKs).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Persisting one row per completed puzzle run and serving recent-run
//     and aggregate-stat queries.

package history

import (
	"context"
	"crypto/rand"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// Run is one persisted puzzle run.
type Run struct {
	ID        string    `json:"id"`
	Solution  string    `json:"solution"`
	Status    string    `json:"status"` // "won" | "lost"
	Attempts  int       `json:"attempts"`
	ElapsedMs int64     `json:"elapsedMs"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats aggregates the whole runs table.
type Stats struct {
	Runs        int     `json:"runs"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"winRate"`
	MeanWin     float64 `json:"meanWinGuesses"`
	BestAttempt int     `json:"bestAttempt"`
}

// Store wraps the runs table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if missing) the SQLite database at dsn, applies
// migrations, and returns a ready Store.
func Open(dsn string) (*Store, error) {
	// Ensure directory exists for ./data/app.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral database, useful in tests.
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	// Each pooled connection would otherwise get its own empty in-memory
	// database; pin the pool to a single connection so the schema is shared.
	db.SetMaxOpenConns(1)
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// migrate applies embedded SQL migrations in lexical order, recording each
// applied file in _migrations so reruns are no-ops.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	entries, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlText, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlText)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

// Insert persists one run. A zero r.ID gets a fresh identifier; a zero
// r.CreatedAt gets the current UTC time.
func (s *Store) Insert(ctx context.Context, r Run) error {
	if r.ID == "" {
		r.ID = randomID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO runs (id, solution, status, attempts, elapsed_ms, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Solution, r.Status, r.Attempts, r.ElapsedMs, r.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// Recent returns the most recent runs, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, solution, status, attempts, elapsed_ms, created_at
        FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Solution, &r.Status, &r.Attempts, &r.ElapsedMs, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Aggregate computes whole-table statistics.
func (s *Store) Aggregate(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(CASE WHEN status='won' THEN 1 ELSE 0 END), 0),
               COALESCE(AVG(CASE WHEN status='won' THEN attempts END), 0),
               COALESCE(MIN(CASE WHEN status='won' THEN attempts END), 0)
        FROM runs`).Scan(&st.Runs, &st.Wins, &st.MeanWin, &st.BestAttempt)
	if err != nil {
		return Stats{}, err
	}
	if st.Runs > 0 {
		st.WinRate = float64(st.Wins) / float64(st.Runs)
	}
	return st, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
