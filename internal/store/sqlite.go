package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unitlog/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is the durable EntryStore backed by a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the log database at the given path.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening log db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Append inserts one entry inside a transaction so a failed write leaves
// the log untouched.
func (s *SQLite) Append(e model.LogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO entries (date, meal, category, food, units, notes, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Date, string(e.Meal), e.Category, e.Food, e.Units, e.Notes,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}

	return tx.Commit()
}

// ReadAll returns every logged entry, oldest date first, insertion order
// within a date.
func (s *SQLite) ReadAll() ([]model.LogEntry, error) {
	rows, err := s.db.Query(`SELECT date, meal, category, food, units, notes
		FROM entries ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		var meal string
		if err := rows.Scan(&e.Date, &meal, &e.Category, &e.Food, &e.Units, &e.Notes); err != nil {
			return nil, err
		}
		e.Meal = model.Meal(meal)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of logged entries.
func (s *SQLite) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}
