package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT 0
		);`,
		// Every write is also appended here so older blobs can be restored.
		`CREATE TABLE IF NOT EXISTS kv_revisions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			written_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_kv_revisions_key_id ON kv_revisions(key, id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Databases created before revision tracking lack updated_at.
	alterStmts := []string{
		`ALTER TABLE kv ADD COLUMN updated_at INTEGER NOT NULL DEFAULT 0;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
