package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migrations is the ordered chain of schema migrations. Each entry runs
// inside its own transaction; the schema_version table records which
// have been applied. Never reorder or edit an applied migration, append
// a new one instead.
var migrations = []func(tx *sql.Tx) error{
	migrate1Baseline,
}

// LatestSchemaVersion returns the version the schema reaches after all
// migrations have run.
func LatestSchemaVersion() int {
	return len(migrations)
}

// SchemaVersion reports the currently applied schema version. A
// database without a schema_version table is at version 0.
// PRE: db is a valid database connection
// POST: Returns 0 for an unmigrated database, never an error for one
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("schema version probe: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}
	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("schema version read: %w", err)
	}
	return int(version.Int64), nil
}

// MigrateDB brings the database schema up to the latest version.
// PRE: db is a valid database connection; path names the database file
// POST: All pending migrations are applied in order, WAL mode and
//
//	foreign keys are enabled; running again is a no-op
func MigrateDB(db *sql.DB, path string) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL DEFAULT (datetime('now')))"); err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for v := current; v < len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d begin: %w", v+1, err)
		}
		if err := migrations[v](tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", v+1, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", v+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d record: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d commit: %w", v+1, err)
		}
		slog.Info("schema_migrated", "version", v+1, "db", path)
	}

	return nil
}

// migrate1Baseline creates the roster and schedule tables.
func migrate1Baseline(tx *sql.Tx) error {
	schema := `
	CREATE TABLE IF NOT EXISTS trainer (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		weekly_days TEXT
	);

	CREATE TABLE IF NOT EXISTS class (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		trainer_id INTEGER NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL DEFAULT 0,
		active INTEGER NOT NULL DEFAULT 1,
		weekly_days TEXT
	);

	CREATE TABLE IF NOT EXISTS schedule (
		id TEXT PRIMARY KEY,
		entity_id INTEGER NOT NULL,
		entity_type TEXT NOT NULL,
		day TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active'
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_entity ON schedule(entity_type, entity_id);
	CREATE INDEX IF NOT EXISTS idx_schedule_day ON schedule(day);
	`
	_, err := tx.Exec(schema)
	return err
}
