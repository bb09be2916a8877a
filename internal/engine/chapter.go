package engine

type ChapterInput struct {
	MonthWins   int
	MonthBlooms int
	Walls       int
}

// ChapterRule names the era a month belongs to when Match holds.
type ChapterRule struct {
	ID    string
	Title string
	Match func(ChapterInput) bool
}

const QuietPrologue = "The Quiet Prologue"

// ChapterRules are evaluated in order; the first match wins. The last rule
// matches everything.
var ChapterRules = []ChapterRule{
	{ID: "coronation", Title: "The Coronation Era", Match: func(c ChapterInput) bool {
		return c.MonthWins >= 160 && c.MonthBlooms >= 20 && c.Walls >= 3
	}},
	{ID: "golden", Title: "The Golden Era", Match: func(c ChapterInput) bool {
		return c.MonthWins >= 100 && c.MonthBlooms >= 15
	}},
	{ID: "architect", Title: "The Architect Era", Match: func(c ChapterInput) bool {
		return c.Walls >= 2
	}},
	{ID: "blooming", Title: "The Blooming Era", Match: func(c ChapterInput) bool {
		return c.MonthBlooms >= 10
	}},
	{ID: "spark", Title: "The Spark Era", Match: func(c ChapterInput) bool {
		return c.MonthWins >= 40
	}},
	{ID: "awakening", Title: "The Awakening Era", Match: func(c ChapterInput) bool {
		return c.MonthWins > 0 || c.MonthBlooms > 0
	}},
	{ID: "prologue", Title: QuietPrologue, Match: func(ChapterInput) bool { return true }},
}

func ChapterTitle(in ChapterInput) string {
	for _, r := range ChapterRules {
		if r.Match(in) {
			return r.Title
		}
	}
	return QuietPrologue
}
