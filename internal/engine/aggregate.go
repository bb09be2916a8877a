package engine

import "strconv"

// Field selects what an aggregation sums.
type Field int

const (
	FieldBlooms Field = iota
	FieldWins
)

func (f Field) String() string {
	switch f {
	case FieldBlooms:
		return "blooms"
	case FieldWins:
		return "wins"
	default:
		return "field(" + strconv.Itoa(int(f)) + ")"
	}
}

func (f Field) of(d *DayRecord) int {
	if d == nil {
		return 0
	}
	switch f {
	case FieldBlooms:
		if d.Bloom {
			return 1
		}
	case FieldWins:
		return max(0, d.GemFacets)
	}
	return 0
}

// All aggregations below are read-only: missing days count as zero and are
// never inserted.

// SumOverRange sums field over the days calendar days ending at today.
func (s *State) SumOverRange(today string, days int, field Field) int {
	total := 0
	for _, k := range RecentDayKeys(today, days) {
		total += field.of(s.Days[k])
	}
	return total
}

// SumOverCalendarMonth sums field over every recorded day in today's month.
func (s *State) SumOverCalendarMonth(today string, field Field) int {
	return s.sumMatching(today, field, true)
}

// SumOverCalendarYear sums field over every recorded day in today's year.
func (s *State) SumOverCalendarYear(today string, field Field) int {
	return s.sumMatching(today, field, false)
}

func (s *State) sumMatching(today string, field Field, month bool) int {
	t, err := ParseDayKey(today)
	if err != nil {
		return 0
	}
	total := 0
	for k, d := range s.Days {
		kt, err := ParseDayKey(k)
		if err != nil || kt.Year() != t.Year() {
			continue
		}
		if month && kt.Month() != t.Month() {
			continue
		}
		total += field.of(d)
	}
	return total
}

// DaysWithAtLeastOneWin counts days in the window with gemFacets > 0.
func (s *State) DaysWithAtLeastOneWin(today string, days int) int {
	n := 0
	for _, k := range RecentDayKeys(today, days) {
		if d := s.Days[k]; d != nil && d.GemFacets > 0 {
			n++
		}
	}
	return n
}

func (s *Service) SumOverRange(days int, field Field) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SumOverRange(s.todayLocked(), days, field)
}

func (s *Service) SumOverCalendarMonth(field Field) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SumOverCalendarMonth(s.todayLocked(), field)
}

func (s *Service) SumOverCalendarYear(field Field) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SumOverCalendarYear(s.todayLocked(), field)
}

func (s *Service) DaysWithAtLeastOneWin(days int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DaysWithAtLeastOneWin(s.todayLocked(), days)
}

type Stats struct {
	Today        string
	WindowDays   int
	WindowWins   int
	WindowBlooms int
	ActiveDays   int
	WeekBlooms   int
	MonthWins    int
	MonthBlooms  int
	YearWins     int
	YearBlooms   int
	Walls        int
	TotalBricks  int
	ShrineLevel  int
	Chapter      string
}

// Stats gathers every aggregate in one consistent read. days sets the window.
func (s *Service) Stats(days int) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked(days)
}

func (s *Service) statsLocked(days int) Stats {
	today := s.todayLocked()
	st := s.state
	out := Stats{
		Today:        today,
		WindowDays:   days,
		WindowWins:   st.SumOverRange(today, days, FieldWins),
		WindowBlooms: st.SumOverRange(today, days, FieldBlooms),
		ActiveDays:   st.DaysWithAtLeastOneWin(today, days),
		WeekBlooms:   st.SumOverRange(today, BloomWindow, FieldBlooms),
		MonthWins:    st.SumOverCalendarMonth(today, FieldWins),
		MonthBlooms:  st.SumOverCalendarMonth(today, FieldBlooms),
		YearWins:     st.SumOverCalendarYear(today, FieldWins),
		YearBlooms:   st.SumOverCalendarYear(today, FieldBlooms),
		Walls:        st.Wall.WallsCompleted,
		TotalBricks:  TotalBricks(st.Wall),
		ShrineLevel:  st.Shrine.Level,
	}
	out.Chapter = ChapterTitle(ChapterInput{
		MonthWins:   out.MonthWins,
		MonthBlooms: out.MonthBlooms,
		Walls:       out.Walls,
	})
	return out
}
