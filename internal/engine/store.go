package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"eratracker/internal/storage"
)

// Store reads and writes the state blob. Failures are logged, never returned:
// the in-memory state stays authoritative for the session.
type Store struct {
	kv        storage.KV
	key       string
	gemTarget int
	logger    *zap.Logger

	// last is the payload most recently read from or written to the medium.
	last      string
	malformed bool
}

// MalformedSuffix is appended to the state key to hold an unreadable payload
// found at load time.
const MalformedSuffix = ".malformed"

func NewStore(kv storage.KV, key string, gemTarget int, logger *zap.Logger) *Store {
	if key == "" {
		key = DefaultStateKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, key: key, gemTarget: gemTarget, logger: logger}
}

func (s *Store) Key() string { return s.key }

// Malformed reports whether the last Load found a payload it could not decode.
func (s *Store) Malformed() bool { return s.malformed }

// Load returns the persisted state, or the empty default when it is missing or unreadable.
// An unreadable payload is copied to the key plus MalformedSuffix before anything overwrites it.
func (s *Store) Load(ctx context.Context) *State {
	s.malformed = false
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("load state failed; starting empty", zap.String("key", s.key), zap.Error(err))
		return NewState()
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return NewState()
	}
	st, err := Decode([]byte(raw), s.gemTarget)
	if err != nil {
		s.malformed = true
		s.logger.Warn("stored state is malformed; starting empty", zap.String("key", s.key), zap.Error(err))
		if err := s.kv.Set(ctx, s.key+MalformedSuffix, raw); err != nil {
			s.logger.Warn("preserve malformed state failed", zap.String("key", s.key+MalformedSuffix), zap.Error(err))
		}
		return NewState()
	}
	s.last = raw
	return st
}

// Save writes the full state. It reports whether the medium holds it afterwards.
// A payload identical to the last one read or written is not written again.
func (s *Store) Save(ctx context.Context, st *State) bool {
	data, err := Encode(st)
	if err != nil {
		s.logger.Warn("encode state failed", zap.String("key", s.key), zap.Error(err))
		return false
	}
	payload := string(data)
	if payload == s.last {
		return true
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		s.logger.Warn("save state failed", zap.String("key", s.key), zap.Error(err))
		return false
	}
	s.last = payload
	s.malformed = false
	return true
}
