package store

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_initial.sql
var migration001 string

// migrations is an ordered list of schema migrations.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

func applyMigrations(db *sql.DB) error {
	currentVersion := 0

	var tableExists int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'schema_version'
	`).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("store: check schema_version table: %w", err)
	}

	if tableExists > 0 {
		if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion); err != nil {
			return fmt.Errorf("store: read current schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("store: apply migration %d: %w", m.version, err)
		}
	}

	return nil
}

// MigrateUp applies all pending schema migrations.
func (db *DB) MigrateUp() error {
	return applyMigrations(db.DB)
}

// CurrentVersion returns the highest applied schema version.
func (db *DB) CurrentVersion() (int, error) {
	var tableExists int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'schema_version'
	`).Scan(&tableExists)
	if err != nil {
		return 0, fmt.Errorf("store: check schema_version table: %w", err)
	}
	if tableExists == 0 {
		return 0, nil
	}

	var version int
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("store: read current schema version: %w", err)
	}
	return version, nil
}
