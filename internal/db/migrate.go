package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// SchemaVersion identifies the layout of the record tables. A database
// written with a different version is discarded and recreated empty.
const SchemaVersion = 1

// Migrate creates the record tables, dropping them first when the stored
// schema version does not match SchemaVersion. Tables left behind without
// any recorded version are treated as foreign and dropped too.
func Migrate(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, createMetaTable); err != nil {
		return fmt.Errorf("creating schema_meta: %w", err)
	}

	version, err := storedVersion(ctx, db)
	if err != nil {
		return err
	}
	if version != SchemaVersion {
		if err := dropRecordTables(ctx, db); err != nil {
			return fmt.Errorf("discarding schema v%d: %w", version, err)
		}
	}

	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO schema_meta (key, value) VALUES ('schema_version', ?)`,
		strconv.Itoa(SchemaVersion),
	); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}

// StoredVersion returns the schema version recorded in the database, or 0
// when none has been written yet.
func StoredVersion(ctx context.Context, conn DBTX) (int, error) {
	return storedVersion(ctx, conn)
}

func storedVersion(ctx context.Context, conn DBTX) (int, error) {
	var raw string
	err := conn.QueryRowContext(ctx, `SELECT value FROM schema_meta WHERE key = 'schema_version'`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		// Unreadable version: treat as foreign so the tables get rebuilt.
		return -1, nil
	}
	return v, nil
}

func dropRecordTables(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting drop transaction: %w", err)
	}
	for _, table := range []string{"record_events", "record_settings"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("dropping %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing drop: %w", err)
	}
	return nil
}

const createMetaTable = `CREATE TABLE IF NOT EXISTS schema_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS record_settings (
		id             TEXT PRIMARY KEY,
		rounding_grain INTEGER NOT NULL,
		goal_minutes   REAL NOT NULL,
		test_mode      INTEGER NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS record_events (
		ts   INTEGER PRIMARY KEY,
		kind TEXT NOT NULL,
		task TEXT NOT NULL DEFAULT ''
	)`,
}
