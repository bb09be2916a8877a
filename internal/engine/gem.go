package engine

import (
	"context"
	"strings"
)

type GemResult struct {
	Day       string
	Facets    int
	Target    int
	Percent   int
	Completed bool
	// JustCompleted is true only for the call that first filled today's gem.
	JustCompleted  bool
	ShrineLevel    int
	ShrineAdvanced bool
}

// AddWin adds one facet to today's gem.
func (s *Service) AddWin(ctx context.Context) GemResult {
	return s.updateFacets(ctx, "gem.add", func(cur int) int { return cur + 1 })
}

// SetWins sets today's facets to max(0, n).
func (s *Service) SetWins(ctx context.Context, n int) GemResult {
	return s.updateFacets(ctx, "gem.set", func(int) int { return n })
}

// FillGem sets today's facets to the target.
func (s *Service) FillGem(ctx context.Context) GemResult {
	return s.updateFacets(ctx, "gem.fill", func(int) int { return s.target })
}

// ResetToday zeroes today's facets and clears the gem notes. gemCompleted stays
// set, so refilling the same day does not advance the shrine a second time.
func (s *Service) ResetToday(ctx context.Context) GemResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	d := s.state.ensureDay(today)
	d.GemFacets = 0
	d.GemNotes = ""
	s.commitLocked(ctx, "gem.reset", today)
	return s.gemResultLocked(today, d, false, false)
}

func (s *Service) SetGemNotes(ctx context.Context, notes string) {
	s.setNotes(ctx, "gem.notes", func(d *DayRecord) { d.GemNotes = normalizeNotes(notes) })
}

func (s *Service) updateFacets(ctx context.Context, op string, next func(cur int) int) GemResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	d := s.state.ensureDay(today)
	just, advanced := applyFacets(s.state, d, next(d.GemFacets), s.target)
	s.commitLocked(ctx, op, today)
	return s.gemResultLocked(today, d, just, advanced)
}

// applyFacets stores the new facet count (clamped at zero) and runs the
// completion edge trigger: only a crossing from below the target to at or
// above it, on a day that has never completed, marks the day and advances the
// shrine by one level.
func applyFacets(st *State, d *DayRecord, facets int, target int) (justCompleted bool, shrineAdvanced bool) {
	wasFull := d.GemFacets >= target
	d.GemFacets = max(0, facets)
	isFull := d.GemFacets >= target

	if wasFull || !isFull || d.GemCompleted {
		return false, false
	}
	d.GemCompleted = true
	return true, st.advanceShrine()
}

func (s *Service) gemResultLocked(day string, d *DayRecord, just bool, advanced bool) GemResult {
	return GemResult{
		Day:            day,
		Facets:         d.GemFacets,
		Target:         s.target,
		Percent:        GemPercent(d.GemFacets, s.target),
		Completed:      d.GemCompleted,
		JustCompleted:  just,
		ShrineLevel:    s.state.Shrine.Level,
		ShrineAdvanced: advanced,
	}
}

type GemView struct {
	Facets    int
	Target    int
	Percent   int
	Completed bool
	Notes     string
}

func (s *Service) Gem() GemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.state.day(s.todayLocked())
	return GemView{
		Facets:    d.GemFacets,
		Target:    s.target,
		Percent:   GemPercent(d.GemFacets, s.target),
		Completed: d.GemCompleted,
		Notes:     d.GemNotes,
	}
}

// setNotes applies a notes edit to today's record.
func (s *Service) setNotes(ctx context.Context, op string, apply func(d *DayRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	apply(s.state.ensureDay(today))
	s.commitLocked(ctx, op, today)
}

func normalizeNotes(notes string) string {
	return strings.TrimRight(notes, " \t\r\n")
}
