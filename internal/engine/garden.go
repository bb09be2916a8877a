package engine

import (
	"context"
	"fmt"
	"slices"
)

type GardenResult struct {
	Day   string
	Bloom bool
	Week  int
}

// ToggleTodayBloom flips today's bloom.
func (s *Service) ToggleTodayBloom(ctx context.Context) GardenResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	d := s.state.ensureDay(today)
	d.Bloom = !d.Bloom
	s.commitLocked(ctx, "garden.toggle", today)
	return GardenResult{Day: today, Bloom: d.Bloom, Week: s.state.weeklyBloomCount(today)}
}

// ToggleBloom flips the bloom of any day inside the garden window.
// Days before the window or after today are rejected.
func (s *Service) ToggleBloom(ctx context.Context, key string) (GardenResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	if !slices.Contains(RecentDayKeys(today, BloomWindow), key) {
		return GardenResult{}, RejectionError{
			Action: "toggle bloom",
			Reason: fmt.Sprintf("%s is not one of the last %d days", key, BloomWindow),
		}
	}
	d := s.state.ensureDay(key)
	d.Bloom = !d.Bloom
	s.commitLocked(ctx, "garden.toggle", key)
	return GardenResult{Day: key, Bloom: d.Bloom, Week: s.state.weeklyBloomCount(today)}, nil
}

// BloomToday marks today bloomed. Idempotent.
func (s *Service) BloomToday(ctx context.Context) GardenResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	d := s.state.ensureDay(today)
	d.Bloom = true
	s.commitLocked(ctx, "garden.bloom", today)
	return GardenResult{Day: today, Bloom: true, Week: s.state.weeklyBloomCount(today)}
}

// ResetRecentWindow clears bloom on the last days calendar days that already
// have a record and returns how many records it touched. It creates nothing.
func (s *Service) ResetRecentWindow(ctx context.Context, days int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	n := 0
	for _, key := range RecentDayKeys(today, days) {
		d, ok := s.state.Days[key]
		if !ok || d == nil {
			continue
		}
		d.Bloom = false
		n++
	}
	s.commitLocked(ctx, "garden.reset", today)
	return n
}

func (s *Service) SetGardenNotes(ctx context.Context, notes string) {
	s.setNotes(ctx, "garden.notes", func(d *DayRecord) { d.GardenNotes = normalizeNotes(notes) })
}

// WeeklyBloomCount counts blooms over the last BloomWindow days, today included.
func (s *Service) WeeklyBloomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.weeklyBloomCount(s.todayLocked())
}

func (st *State) weeklyBloomCount(today string) int {
	return st.SumOverRange(today, BloomWindow, FieldBlooms)
}

type GardenDay struct {
	Key   string
	Bloom bool
	Today bool
}

type GardenView struct {
	// Days runs oldest to newest, ending with today.
	Days  []GardenDay
	Count int
	Notes string
}

func (s *Service) Garden() GardenView {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	keys := RecentDayKeys(today, BloomWindow)
	slices.Reverse(keys)

	v := GardenView{Notes: s.state.day(today).GardenNotes}
	for _, k := range keys {
		d := s.state.day(k)
		v.Days = append(v.Days, GardenDay{Key: k, Bloom: d.Bloom, Today: k == today})
		if d.Bloom {
			v.Count++
		}
	}
	return v
}
