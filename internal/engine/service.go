package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"eratracker/internal/storage"
)

// RandSource picks affirmation messages. *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Service owns the tracker state. Every mutator holds mu for its whole
// read-modify-write, including the save, so mutators never interleave.
type Service struct {
	mu sync.Mutex

	kv     storage.KV
	store  *Store
	state  *State
	now    func() time.Time
	loc    *time.Location
	rng    RandSource
	logger *zap.Logger
	target int
	key    string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithRand(r RandSource) Option {
	return func(s *Service) { s.rng = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithGemTarget(n int) Option {
	return func(s *Service) { s.target = n }
}

func WithStateKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// NewService loads the state from kv, makes sure today's record and card exist, and saves.
// When the stored payload was unreadable the startup save is skipped, so only a
// real mutation replaces it.
func NewService(ctx context.Context, kv storage.KV, opts ...Option) *Service {
	s := &Service{
		kv:     kv,
		now:    time.Now,
		loc:    time.Local,
		rng:    globalRand{},
		logger: zap.NewNop(),
		target: DefaultGemTarget,
		key:    DefaultStateKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.target < 1 {
		s.target = DefaultGemTarget
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.store = NewStore(kv, s.key, s.target, s.logger)
	s.state = s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.todayLocked()
	s.state.ensureDay(today)
	s.assignIfAbsentLocked(today)
	if s.store.Malformed() {
		return s
	}
	s.commitLocked(ctx, "open", today)
	return s
}

func (s *Service) GemTarget() int           { return s.target }
func (s *Service) Location() *time.Location { return s.loc }
func (s *Service) Logger() *zap.Logger      { return s.logger }

// TodayKey is the day key of the service clock in the configured zone.
func (s *Service) TodayKey() string {
	return DayKey(s.now(), s.loc)
}

func (s *Service) todayLocked() string {
	return DayKey(s.now(), s.loc)
}

// commitLocked flushes the state. A failed save is already logged by the store.
func (s *Service) commitLocked(ctx context.Context, op string, day string) {
	ok := s.store.Save(ctx, s.state)
	s.logger.Debug("state mutated", zap.String("op", op), zap.String("day", day), zap.Bool("persisted", ok))
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Day returns a copy of the record for key. It never creates the record.
func (s *Service) Day(key string) DayRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.state.day(key)
}

// ErrNoHistory is returned when the medium keeps no revisions.
var ErrNoHistory = errors.New("storage medium keeps no history")

// History lists the newest persisted revisions of the state blob.
func (s *Service) History(ctx context.Context, limit int) ([]storage.Revision, error) {
	h, ok := s.kv.(storage.Historian)
	if !ok {
		return nil, ErrNoHistory
	}
	return h.Revisions(ctx, s.store.Key(), limit)
}

// RestoreRevision replaces the in-memory state with an earlier revision and saves it.
func (s *Service) RestoreRevision(ctx context.Context, id int64) error {
	h, ok := s.kv.(storage.Historian)
	if !ok {
		return ErrNoHistory
	}
	rev, err := h.Revision(ctx, id)
	if err != nil {
		return err
	}
	if rev == nil || rev.Key != s.store.Key() {
		return fmt.Errorf("revision %d not found", id)
	}
	return s.Restore(ctx, rev.Value)
}

// Restore replaces the in-memory state with the given blob. A malformed blob is
// rejected and leaves the current state untouched.
func (s *Service) Restore(ctx context.Context, payload string) error {
	st, err := Decode([]byte(payload), s.target)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	today := s.todayLocked()
	s.state.ensureDay(today)
	s.assignIfAbsentLocked(today)
	s.commitLocked(ctx, "restore", today)
	return nil
}
