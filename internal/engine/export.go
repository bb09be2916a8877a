package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Export renders a plain-text report of today and the running totals for
// copy and paste. It reads the state and never changes it.
func (s *Service) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	d := s.state.day(today)
	st := s.statsLocked(BloomWindow)

	var b strings.Builder
	fmt.Fprintf(&b, "Era Tracker report for %s\n", today)
	fmt.Fprintf(&b, "Chapter: %s\n", st.Chapter)

	b.WriteString("\nToday\n")
	gem := fmt.Sprintf("%d / %d (%d%%)", d.GemFacets, s.target, GemPercent(d.GemFacets, s.target))
	if d.GemCompleted {
		gem += ", complete"
	}
	fmt.Fprintf(&b, "  Gem: %s\n", gem)
	bloom := "not bloomed"
	if d.Bloom {
		bloom = "bloomed"
	}
	fmt.Fprintf(&b, "  Garden: %s (%d of last %d days)\n", bloom, st.WeekBlooms, BloomWindow)
	fmt.Fprintf(&b, "  Wall: %d / %d bricks, %d walls completed (%d total)\n",
		s.state.Wall.BricksInCurrent, BrickCapacity, st.Walls, st.TotalBricks)
	if d.TarotID != nil {
		c, _ := CardByID(*d.TarotID)
		fmt.Fprintf(&b, "  Tarot: %s %s, %s\n", c.Glyph, c.Title, c.Tagline)
	}
	fmt.Fprintf(&b, "  Aura: %s\n", auraSummary(auraView(d)))
	fmt.Fprintf(&b, "  Shrine: level %d of %d, placed %s\n",
		st.ShrineLevel, len(ShrineItems), joinOrNone(s.state.Shrine.Placed))
	for _, n := range []struct{ label, text string }{
		{"Gem notes", d.GemNotes},
		{"Garden notes", d.GardenNotes},
		{"Brick notes", d.BrickNotes},
	} {
		if n.text != "" {
			fmt.Fprintf(&b, "  %s: %s\n", n.label, strings.ReplaceAll(n.text, "\n", " / "))
		}
	}

	b.WriteString("\nTotals\n")
	fmt.Fprintf(&b, "  Wins this week: %d over %d active days\n", st.WindowWins, st.ActiveDays)
	fmt.Fprintf(&b, "  Wins this month: %d\n", st.MonthWins)
	fmt.Fprintf(&b, "  Blooms this month: %d\n", st.MonthBlooms)
	fmt.Fprintf(&b, "  Wins this year: %d\n", st.YearWins)
	fmt.Fprintf(&b, "  Blooms this year: %d\n", st.YearBlooms)
	return b.String()
}

func auraSummary(v AuraView) string {
	if len(v.Numbers) == 0 {
		return "no numbers logged"
	}
	parts := make([]string, len(v.Numbers))
	for i, n := range v.Numbers {
		parts[i] = strconv.Itoa(n)
	}
	out := strings.Join(parts, ", ")
	if v.HasDominant {
		out += fmt.Sprintf(" (dominant %d)", v.Dominant)
	}
	return out
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
