package storage

import (
	"context"
	"database/sql"
	"time"
)

// DefaultHistory is how many revisions per key SQLiteKV keeps unless told otherwise.
const DefaultHistory = 20

// SQLiteKV is the default medium: a kv table plus a bounded revision log.
type SQLiteKV struct {
	db        *sql.DB
	blobs     *BlobRepo
	revisions *RevisionRepo
	keep      int
	now       func() time.Time
}

var (
	_ KV        = (*SQLiteKV)(nil)
	_ Historian = (*SQLiteKV)(nil)
)

func NewSQLiteKV(db *sql.DB, keep int) *SQLiteKV {
	return &SQLiteKV{
		db:        db,
		blobs:     NewBlobRepo(db),
		revisions: NewRevisionRepo(db),
		keep:      keep,
		now:       time.Now,
	}
}

// OpenSQLiteKV opens the database at path and wraps it.
func OpenSQLiteKV(ctx context.Context, path string, keep int) (*SQLiteKV, error) {
	resolved, err := ResolveDBPath(path)
	if err != nil {
		return nil, err
	}
	db, err := Open(ctx, resolved)
	if err != nil {
		return nil, err
	}
	return NewSQLiteKV(db, keep), nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	return s.blobs.Get(ctx, key)
}

// Set writes the value and its revision atomically. No revision is added when
// value matches the newest one already kept for key.
func (s *SQLiteKV) Set(ctx context.Context, key string, value string) error {
	at := s.now()
	return WithTx(ctx, s.db, func(blobs *BlobRepo, revisions *RevisionRepo) error {
		if err := blobs.Upsert(ctx, key, value, at); err != nil {
			return err
		}
		if s.keep == 0 {
			return nil
		}
		newest, err := revisions.List(ctx, key, 1)
		if err != nil {
			return err
		}
		if len(newest) == 1 && newest[0].Value == value {
			return nil
		}
		if _, err := revisions.Insert(ctx, key, value, at); err != nil {
			return err
		}
		if s.keep < 0 {
			return nil
		}
		return revisions.Prune(ctx, key, s.keep)
	})
}

func (s *SQLiteKV) Revisions(ctx context.Context, key string, limit int) ([]Revision, error) {
	return s.revisions.List(ctx, key, limit)
}

func (s *SQLiteKV) Revision(ctx context.Context, id int64) (*Revision, error) {
	return s.revisions.Get(ctx, id)
}

func (s *SQLiteKV) DB() *sql.DB { return s.db }

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
