package engine

import (
	"context"
	"slices"
)

type ShrineItem struct {
	ID    string
	Name  string
	Glyph string
}

// ShrineItems unlock in order, one per filled gem.
var ShrineItems = []ShrineItem{
	{ID: "candle", Name: "Candle", Glyph: "🕯"},
	{ID: "crystal", Name: "Crystal", Glyph: "🔮"},
	{ID: "feather", Name: "Feather", Glyph: "🪶"},
	{ID: "shell", Name: "Shell", Glyph: "🐚"},
	{ID: "rose", Name: "Rose", Glyph: "🌹"},
	{ID: "mirror", Name: "Mirror", Glyph: "🪞"},
	{ID: "lantern", Name: "Lantern", Glyph: "🏮"},
	{ID: "crown", Name: "Crown", Glyph: "👑"},
}

// ItemUnlocked reports whether the item at index i is usable at level.
func ItemUnlocked(level int, i int) bool {
	return level > i
}

func shrineIndex(id string) int {
	return slices.IndexFunc(ShrineItems, func(it ShrineItem) bool { return it.ID == id })
}

// advanceShrine raises the level by one unless every item is already unlocked.
// It is only called from the gem completion edge.
func (s *State) advanceShrine() bool {
	if s.Shrine.Level >= len(ShrineItems) {
		return false
	}
	s.Shrine.Level++
	return true
}

type ShrineResult struct {
	ItemID  string
	Known   bool
	Locked  bool
	Changed bool
	Placed  bool
}

// Err explains a no-op toggle to surfaces that want to show a reason.
func (r ShrineResult) Err() error {
	if !r.Known {
		return RejectionError{Action: "place " + r.ItemID, Reason: "no such shrine item"}
	}
	if r.Locked {
		return LockedError{ItemID: r.ItemID, RequiredLevel: shrineIndex(r.ItemID) + 1}
	}
	return nil
}

// TogglePlacement flips an unlocked item in or out of the shrine. Unknown or
// locked items leave the state untouched.
func (s *Service) TogglePlacement(ctx context.Context, id string) ShrineResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := ShrineResult{ItemID: id}
	i := shrineIndex(id)
	if i < 0 {
		return res
	}
	res.Known = true
	if !ItemUnlocked(s.state.Shrine.Level, i) {
		res.Locked = true
		return res
	}

	placed := s.state.Shrine.Placed
	if slices.Contains(placed, id) {
		placed = slices.DeleteFunc(slices.Clone(placed), func(p string) bool { return p == id })
	} else {
		placed = append(slices.Clone(placed), id)
		res.Placed = true
	}
	s.state.Shrine.Placed = canonicalPlacement(placed, s.state.Shrine.Level)
	res.Changed = true
	s.commitLocked(ctx, "shrine.toggle", s.todayLocked())
	return res
}

type ShrineSlot struct {
	Item     ShrineItem
	Unlocked bool
	Placed   bool
}

type ShrineView struct {
	Level int
	Slots []ShrineSlot
}

func (s *Service) Shrine() ShrineView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ShrineView{Level: s.state.Shrine.Level}
	for i, it := range ShrineItems {
		v.Slots = append(v.Slots, ShrineSlot{
			Item:     it,
			Unlocked: ItemUnlocked(s.state.Shrine.Level, i),
			Placed:   slices.Contains(s.state.Shrine.Placed, it.ID),
		})
	}
	return v
}
