package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

const defaultPostgresDSN = "postgres://localhost/era?sslmode=disable"

// PostgresKV stores the blob in a Postgres table. It keeps no revisions.
type PostgresKV struct {
	db *sql.DB
}

var _ KV = (*PostgresKV)(nil)

// OpenPostgresKV connects to dsn (defaultPostgresDSN when empty) and ensures the table exists.
func OpenPostgresKV(ctx context.Context, dsn string) (*PostgresKV, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS era_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure era_kv table: %w", err)
	}
	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM era_kv WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO era_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv upsert: %w", err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	return p.db.Close()
}
