package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryKV keeps everything in process memory. Used by tests and the "memory" driver.
type MemoryKV struct {
	mu        sync.Mutex
	values    map[string]string
	revisions []Revision
	nextID    int64
	keep      int
}

var (
	_ KV        = (*MemoryKV)(nil)
	_ Historian = (*MemoryKV)(nil)
)

func NewMemoryKV(keep int) *MemoryKV {
	return &MemoryKV{values: map[string]string{}, keep: keep}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	if m.keep == 0 || m.newestLocked(key) == value {
		return nil
	}
	m.nextID++
	m.revisions = append(m.revisions, Revision{ID: m.nextID, Key: key, Value: value, WrittenAt: time.Now().UTC()})
	if m.keep > 0 {
		m.pruneLocked(key)
	}
	return nil
}

// newestLocked returns the value of the latest revision of key, or "" when there is none.
func (m *MemoryKV) newestLocked(key string) string {
	for i := len(m.revisions) - 1; i >= 0; i-- {
		if m.revisions[i].Key == key {
			return m.revisions[i].Value
		}
	}
	return ""
}

func (m *MemoryKV) pruneLocked(key string) {
	total := 0
	for _, r := range m.revisions {
		if r.Key == key {
			total++
		}
	}
	drop := total - m.keep
	if drop <= 0 {
		return
	}
	kept := make([]Revision, 0, len(m.revisions)-drop)
	for _, r := range m.revisions {
		if r.Key == key && drop > 0 {
			drop--
			continue
		}
		kept = append(kept, r)
	}
	m.revisions = kept
}

func (m *MemoryKV) Revisions(_ context.Context, key string, limit int) ([]Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Revision
	for i := len(m.revisions) - 1; i >= 0; i-- {
		if m.revisions[i].Key != key {
			continue
		}
		out = append(out, m.revisions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MemoryKV) Revision(_ context.Context, id int64) (*Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.revisions {
		if m.revisions[i].ID == id {
			r := m.revisions[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *MemoryKV) Close() error { return nil }
