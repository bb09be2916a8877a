package storage

import (
	"context"
	"database/sql"
	"time"
)

// KV is the medium the tracker persists into: one opaque string payload per key.
type KV interface {
	// Get returns the payload stored under key; ok is false when nothing was stored yet.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// Historian is implemented by media that keep earlier payloads of a key.
type Historian interface {
	// Revisions lists the newest revisions of key first.
	Revisions(ctx context.Context, key string, limit int) ([]Revision, error)
	// Revision returns nil, nil when id is unknown.
	Revision(ctx context.Context, id int64) (*Revision, error)
}

type Revision struct {
	ID        int64
	Key       string
	Value     string
	WrittenAt time.Time
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
