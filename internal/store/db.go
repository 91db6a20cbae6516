// Package store persists metadata about corner table generation runs —
// when a run started and finished, what reference state it used, how far
// it searched, and where it wrote the table — to a local SQLite database.
// It has no bearing on the correctness of the table itself; it exists so
// a user running `cornertable generate` repeatedly has a history to
// inspect.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection to the run-metadata database.
type DB struct {
	*sql.DB
	path string
}

// DefaultPath returns the default database path under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("store: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".cornertable")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create config directory: %w", err)
	}
	return filepath.Join(dir, "runs.db"), nil
}

// Open opens (creating if necessary) the SQLite database at path and
// applies any pending schema migrations.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
