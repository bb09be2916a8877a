package engine

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ensureDay returns the record for key, inserting a default one when absent
// and back-filling fields an older blob may lack.
func (s *State) ensureDay(key string) *DayRecord {
	if s.Days == nil {
		s.Days = map[string]*DayRecord{}
	}
	d, ok := s.Days[key]
	if !ok || d == nil {
		d = newDayRecord()
		s.Days[key] = d
		return d
	}
	d.backfill()
	return d
}

// day returns a normalized copy of the record for key without inserting it.
func (s *State) day(key string) *DayRecord {
	if d, ok := s.Days[key]; ok && d != nil {
		return d.clone()
	}
	return newDayRecord()
}

func (d *DayRecord) backfill() {
	if d.GemFacets < 0 {
		d.GemFacets = 0
	}
	if d.AuraNumbers == nil {
		d.AuraNumbers = []int{}
	}
	if d.AuraLogRaw == nil {
		d.AuraLogRaw = []string{}
	}
	// auraNumbers is a set kept in first-seen order.
	seen := make(map[int]bool, len(d.AuraNumbers))
	uniq := d.AuraNumbers[:0]
	for _, n := range d.AuraNumbers {
		if seen[n] {
			continue
		}
		seen[n] = true
		uniq = append(uniq, n)
	}
	d.AuraNumbers = uniq
}

// normalize is the versioned default-merge run on every decoded blob.
func (s *State) normalize() {
	s.Version = CurrentVersion
	if s.Days == nil {
		s.Days = map[string]*DayRecord{}
	}
	for k := range s.Days {
		s.ensureDay(k)
	}

	s.Wall.BricksInCurrent = clamp(s.Wall.BricksInCurrent, 0, BrickCapacity)
	if s.Wall.WallsCompleted < 0 {
		s.Wall.WallsCompleted = 0
	}

	s.Shrine.Level = clamp(s.Shrine.Level, 0, len(ShrineItems))
	s.Shrine.Placed = canonicalPlacement(s.Shrine.Placed, s.Shrine.Level)
}

// canonicalPlacement drops unknown or locked ids and orders the rest by shrine order.
func canonicalPlacement(placed []string, level int) []string {
	out := []string{}
	for i, item := range ShrineItems {
		if !ItemUnlocked(level, i) {
			break
		}
		if slices.Contains(placed, item.ID) {
			out = append(out, item.ID)
		}
	}
	return out
}

type legacyGem struct {
	Wins  int    `json:"wins"`
	Notes string `json:"notes"`
}

type legacyGarden struct {
	Bloomed bool `json:"bloomed"`
}

type legacyBricks struct {
	CurrentBricks  int `json:"currentBricks"`
	WallsCompleted int `json:"wallsCompleted"`
}

type legacyAura struct {
	Numbers []int    `json:"numbers"`
	Log     []string `json:"log"`
	Note    string   `json:"note"`
}

type legacyTarot struct {
	CardID *string `json:"cardId"`
}

// wireBlob accepts both the current shape and the version 1 browser shape.
type wireBlob struct {
	State

	Gem    map[string]legacyGem    `json:"gem"`
	Garden map[string]legacyGarden `json:"garden"`
	Bricks *legacyBricks           `json:"bricks"`
	Aura   map[string]legacyAura   `json:"aura"`
	Tarot  map[string]legacyTarot  `json:"tarot"`
}

func (w *wireBlob) isLegacy() bool {
	if w.Days != nil {
		return false
	}
	return w.Gem != nil || w.Garden != nil || w.Bricks != nil || w.Aura != nil || w.Tarot != nil
}

// Decode parses a persisted blob into a normalized state.
// gemTarget back-fills gemCompleted for version 1 blobs.
func Decode(data []byte, gemTarget int) (*State, error) {
	var w wireBlob
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	st := &w.State
	if w.isLegacy() {
		st = w.upgrade(gemTarget)
	}
	st.normalize()
	return st, nil
}

// Encode serializes the state. Map keys come out sorted so equal states encode identically.
func Encode(s *State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

func (w *wireBlob) upgrade(gemTarget int) *State {
	st := NewState()
	for k, g := range w.Gem {
		d := st.ensureDay(k)
		d.GemFacets = max(0, g.Wins)
		d.GemNotes = g.Notes
		// Past fills never advanced a shrine, so only the flag is restored.
		d.GemCompleted = gemTarget > 0 && d.GemFacets >= gemTarget
	}
	for k, g := range w.Garden {
		st.ensureDay(k).Bloom = g.Bloomed
	}
	for k, a := range w.Aura {
		d := st.ensureDay(k)
		d.AuraNumbers = append([]int{}, a.Numbers...)
		d.AuraLogRaw = append([]string{}, a.Log...)
		d.AuraNote = a.Note
	}
	for k, t := range w.Tarot {
		d := st.ensureDay(k)
		if t.CardID != nil && *t.CardID != "" {
			id := *t.CardID
			d.TarotID = &id
		}
	}
	if w.Bricks != nil {
		st.Wall = WallState{
			BricksInCurrent: w.Bricks.CurrentBricks,
			WallsCompleted:  w.Bricks.WallsCompleted,
		}
	}
	return st
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
