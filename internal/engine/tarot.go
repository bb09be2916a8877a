package engine

import "context"

type Card struct {
	ID      string
	Title   string
	Glyph   string
	Tagline string
	Meaning string
}

// Cards is the daily deck. Its order is part of the card hash: append only.
var Cards = []Card{
	{ID: "sun", Title: "The Sun", Glyph: "☼", Tagline: "Warmth, clarity", Meaning: "A day of warmth, clarity, and small victories. Focus on what brings light."},
	{ID: "moon", Title: "The Moon", Glyph: "◐", Tagline: "Intuition, rest", Meaning: "Trust your inner guide. Slow down and listen, dreams carry hints."},
	{ID: "star", Title: "The Star", Glyph: "✦", Tagline: "Hope, healing", Meaning: "Gentle healing energy. Replenish yourself and share soft light."},
	{ID: "hermit", Title: "The Hermit", Glyph: "◎", Tagline: "Focus, study", Meaning: "A small retreat fuels insight. Take a quiet hour for deep work."},
	{ID: "empress", Title: "The Empress", Glyph: "♁", Tagline: "Nurture, steadiness", Meaning: "Tend to your environment and body. Comfort creates momentum."},
	{ID: "magus", Title: "The Magus", Glyph: "✶", Tagline: "Craft, speak", Meaning: "Your words and craft have effect. Try a clear small action."},
	{ID: "temperance", Title: "Temperance", Glyph: "△", Tagline: "Balance", Meaning: "Small balance shifts accumulate. Mix routine with small joys."},
	{ID: "strength", Title: "Strength", Glyph: "♯", Tagline: "Gentle power", Meaning: "Soft discipline wins. Show up and honor limits kindly."},
}

// TarotIndex is the sum of the key's bytes mod the deck size. It depends on the
// date alone, so every implementation reading the same blob draws the same card.
func TarotIndex(key string) int {
	sum := 0
	for i := 0; i < len(key); i++ {
		sum += int(key[i])
	}
	return sum % len(Cards)
}

// CardByID looks up a card. An id no longer in the deck resolves to the first
// card with ok=false; the stored id is left alone.
func CardByID(id string) (Card, bool) {
	for _, c := range Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Cards[0], false
}

// AssignIfAbsent draws the card for key unless one is already stored, and
// returns the card id the day ends up with.
func (s *Service) AssignIfAbsent(ctx context.Context, key string) (string, error) {
	if _, err := ParseDayKey(key); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.state.ensureDay(key)
	if d.TarotID != nil {
		return *d.TarotID, nil
	}
	id := s.assignIfAbsentLocked(key)
	s.commitLocked(ctx, "tarot.assign", key)
	return id, nil
}

func (s *Service) assignIfAbsentLocked(key string) string {
	d := s.state.ensureDay(key)
	if d.TarotID == nil {
		id := Cards[TarotIndex(key)].ID
		d.TarotID = &id
	}
	return *d.TarotID
}

// Tarot returns today's card. NewService has already drawn it.
func (s *Service) Tarot() Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.state.day(s.todayLocked())
	if d.TarotID == nil {
		return Cards[TarotIndex(s.todayLocked())]
	}
	c, _ := CardByID(*d.TarotID)
	return c
}
