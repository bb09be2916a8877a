package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type RevisionRepo struct {
	db querier
}

func NewRevisionRepo(db querier) *RevisionRepo {
	return &RevisionRepo{db: db}
}

func (r *RevisionRepo) Insert(ctx context.Context, key string, value string, writtenAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_revisions (key, value, written_at)
		VALUES (?, ?, ?)
	`, key, value, writtenAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("revision insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("revision last insert id: %w", err)
	}
	return id, nil
}

// Prune keeps only the newest keep revisions of key.
func (r *RevisionRepo) Prune(ctx context.Context, key string, keep int) error {
	if keep <= 0 {
		_, err := r.db.ExecContext(ctx, `DELETE FROM kv_revisions WHERE key = ?`, key)
		if err != nil {
			return fmt.Errorf("revision prune: %w", err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM kv_revisions
		WHERE key = ? AND id NOT IN (
			SELECT id FROM kv_revisions WHERE key = ? ORDER BY id DESC LIMIT ?
		)
	`, key, key, keep)
	if err != nil {
		return fmt.Errorf("revision prune: %w", err)
	}
	return nil
}

func (r *RevisionRepo) List(ctx context.Context, key string, limit int) ([]Revision, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, key, value, written_at
		FROM kv_revisions
		WHERE key = ?
		ORDER BY id DESC
		LIMIT ?
	`, key, limit)
	if err != nil {
		return nil, fmt.Errorf("revision list: %w", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revision rows: %w", err)
	}
	return out, nil
}

func (r *RevisionRepo) Get(ctx context.Context, id int64) (*Revision, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, key, value, written_at
		FROM kv_revisions
		WHERE id = ?
	`, id)
	rev, err := scanRevision(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rev, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRevision(row scanner) (*Revision, error) {
	var (
		rev       Revision
		writtenAt int64
	)
	if err := row.Scan(&rev.ID, &rev.Key, &rev.Value, &writtenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("revision scan: %w", err)
	}
	rev.WrittenAt = time.UnixMilli(writtenAt).UTC()
	return &rev, nil
}
