package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type BlobRepo struct {
	db querier
}

func NewBlobRepo(db querier) *BlobRepo {
	return &BlobRepo{db: db}
}

func (r *BlobRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

func (r *BlobRepo) Upsert(ctx context.Context, key string, value string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, at.UnixMilli())
	if err != nil {
		return fmt.Errorf("kv upsert: %w", err)
	}
	return nil
}
