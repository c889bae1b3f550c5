package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

const schema = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLite persists values in a single-table SQLite database.
type SQLite struct {
	db *sql.DB
}

var (
	_ Storage = (*SQLite)(nil)
	_ Closer  = (*SQLite)(nil)
)

// NewSQLite opens (or creates) the database at path. Use ":memory:" for a
// throwaway database.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite storage requires a path")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %q: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range append(pragmas, schema) {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	return &SQLite{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, themeerrors.NewStorageError("get", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return themeerrors.NewStorageError("set", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *SQLite) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return themeerrors.NewStorageError("remove", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
