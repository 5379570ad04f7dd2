// Package history keeps every command line entered, in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	entered_at TEXT    NOT NULL,
	verb       TEXT    NOT NULL,
	line       TEXT    NOT NULL,
	ok         INTEGER NOT NULL
);
`

// Entry is one recorded command line.
type Entry struct {
	ID        int64
	EnteredAt time.Time
	Verb      string
	Line      string
	OK        bool
}

// Store is the history database handle.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Record appends one line.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.EnteredAt.IsZero() {
		e.EnteredAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (entered_at, verb, line, ok) VALUES (?, ?, ?, ?)`,
		e.EnteredAt.UTC().Format(time.RFC3339Nano), e.Verb, e.Line, e.OK)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// Recent returns up to limit of the latest entries, oldest first. A limit of
// zero or less returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entered_at, verb, line, ok FROM (
			SELECT * FROM history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return scanRows(rows, scanEntry)
}

// Prune deletes all but the newest keep entries.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}
	return res.RowsAffected()
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var e Entry
	var at string
	if err := rows.Scan(&e.ID, &at, &e.Verb, &e.Line, &e.OK); err != nil {
		return Entry{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Entry{}, fmt.Errorf("history entry %d: bad timestamp %q", e.ID, at)
	}
	e.EnteredAt = t
	return e, nil
}

// scanRows scans all rows into a slice using the provided scanner.
func scanRows[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
