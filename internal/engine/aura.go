package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// AuraDomain is the set of base digits the orb recognizes, in tie-break order.
var AuraDomain = []int{2, 3, 4, 5}

const (
	NeutralAuraColor = "#D9D9D9"
	FallbackMessage  = "A gentle message arrives."
)

var auraColors = map[int]string{
	2: "#FFA07A",
	3: "#B0306A",
	4: "#8E7CC3",
	5: "#7393B3",
}

var auraMessages = map[int][]string{
	2: {
		"Support is near — small steady steps matter.",
		"A reminder to breathe and accept help.",
		"Balance and gentle structure are supporting you.",
	},
	3: {
		"Creative energy spark — try a tiny experiment.",
		"Play opens new doors; curiosity leads.",
		"Communication blossoms; say one kind truth.",
	},
	4: {
		"Grounding energy — build one reliable habit.",
		"Practical care brings comfort later.",
		"Tend the foundation: rest, food, shelter, rhythm.",
	},
	5: {
		"Change approaches — stay curious and adaptive.",
		"A small pivot opens surprising options.",
		"Movement and exploration are favored this day.",
	},
}

func InAuraDomain(n int) bool {
	return slices.Contains(AuraDomain, n)
}

// AuraColor returns the hex colour of a base digit, or the neutral colour.
func AuraColor(digit int) string {
	if c, ok := auraColors[digit]; ok {
		return c
	}
	return NeutralAuraColor
}

// Messages returns the affirmation table entry for a digit.
func Messages(digit int, ok bool) []string {
	if ok {
		if m, found := auraMessages[digit]; found {
			return m
		}
	}
	return []string{FallbackMessage}
}

type AuraResult struct {
	Token   string
	Digit   int
	HasBase bool
	Added   bool
	Message string
	Line    string
	Logged  bool
}

// LogToken appends one typed token to today's aura log. Empty input is ignored.
func (s *Service) LogToken(ctx context.Context, raw string) AuraResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := NormalizeToken(raw)
	if token == "" {
		return AuraResult{}
	}
	today := s.todayLocked()
	res := s.logTokenLocked(today, token)
	s.commitLocked(ctx, "aura.log", today)
	return res
}

// LogInput splits raw into tokens and logs each one, saving once.
func (s *Service) LogInput(ctx context.Context, raw string) []AuraResult {
	tokens := SplitTokens(raw)
	if len(tokens) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.todayLocked()
	out := make([]AuraResult, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, s.logTokenLocked(today, tok))
	}
	s.commitLocked(ctx, "aura.log", today)
	return out
}

func (s *Service) logTokenLocked(today string, token string) AuraResult {
	d := s.state.ensureDay(today)
	d.AuraLogRaw = append(d.AuraLogRaw, token)

	res := AuraResult{Token: token, Logged: true}
	res.Digit, res.HasBase = BaseDigit(token)
	if res.HasBase && !slices.Contains(d.AuraNumbers, res.Digit) {
		d.AuraNumbers = append(d.AuraNumbers, res.Digit)
		res.Added = true
	}

	choices := Messages(res.Digit, res.HasBase)
	res.Message = choices[s.rng.IntN(len(choices))]
	res.Line = fmt.Sprintf("[%s] %s: %s\n", s.now().In(s.loc).Format("15:04"), token, res.Message)
	d.AuraNote += res.Line
	return res
}

// DominantTheme counts base digits over a raw log. The strictly most frequent
// digit wins and ties go to the lowest digit. ok is false when nothing counts.
func DominantTheme(log []string) (int, bool) {
	counts := map[int]int{}
	for _, tok := range log {
		if n, ok := BaseDigit(tok); ok {
			counts[n]++
		}
	}
	best, bestCount := 0, 0
	for _, n := range AuraDomain {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	return best, bestCount > 0
}

type AuraView struct {
	// Numbers holds distinct base digits in first-seen order.
	Numbers     []int
	Dominant    int
	HasDominant bool
	// Color is the dominant colour, or neutral.
	Color string
	// Colors are blend stops, one per distinct digit in log order.
	Colors []string
	Note   string
	Log    []string
}

func (s *Service) Aura() AuraView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return auraView(s.state.day(s.todayLocked()))
}

// AuraFor is the aura of any day. It does not create a record.
func (s *Service) AuraFor(key string) AuraView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return auraView(s.state.day(key))
}

func auraView(d *DayRecord) AuraView {
	v := AuraView{
		Numbers: d.AuraNumbers,
		Note:    d.AuraNote,
		Log:     d.AuraLogRaw,
		Color:   NeutralAuraColor,
		Colors:  []string{},
	}
	v.Dominant, v.HasDominant = DominantTheme(d.AuraLogRaw)
	if v.HasDominant {
		v.Color = AuraColor(v.Dominant)
	}
	for _, n := range d.AuraNumbers {
		v.Colors = append(v.Colors, AuraColor(n))
	}
	return v
}

// JournalLines splits the aura note into its entries.
func (v AuraView) JournalLines() []string {
	return strings.FieldsFunc(v.Note, func(r rune) bool { return r == '\n' })
}
