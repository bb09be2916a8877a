package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eratracker/internal/engine"
	"eratracker/internal/storage"
)

func newTestBoard(t *testing.T) (boardModel, *engine.Service) {
	t.Helper()
	now := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	svc := engine.NewService(context.Background(), storage.NewMemoryKV(0),
		engine.WithClock(func() time.Time { return now }),
		engine.WithLocation(time.UTC),
	)
	return newBoardModel(context.Background(), svc), svc
}

func press(t *testing.T, m boardModel, key string) (boardModel, tea.Msg) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	var out tea.Msg
	if cmd != nil {
		out = cmd()
	}
	return next.(boardModel), out
}

func TestBoardKeysMutateService(t *testing.T) {
	m, svc := newTestBoard(t)

	m, msg := press(t, m, "w")
	_, ok := msg.(actionMsg)
	require.True(t, ok)
	assert.Equal(t, 1, svc.Gem().Facets)

	press(t, m, "b")
	assert.True(t, svc.Day("2026-10-15").Bloom)

	press(t, m, "n")
	assert.Equal(t, 1, svc.Wall().Bricks)

	_, msg = press(t, m, "c")
	assert.Error(t, msg.(actionMsg).err)
}

func TestBoardResetNeedsSecondPress(t *testing.T) {
	m, svc := newTestBoard(t)
	svc.SetBricks(context.Background(), 6)

	m, msg := press(t, m, "X")
	assert.Nil(t, msg)
	assert.Equal(t, "X", m.confirm)
	assert.Equal(t, 6, svc.Wall().Bricks)

	m, _ = press(t, m, "X")
	assert.Empty(t, m.confirm)
	assert.Equal(t, 0, svc.Wall().Bricks)

	m, _ = press(t, m, "R")
	m, _ = press(t, m, "w")
	assert.Empty(t, m.confirm)
	assert.Equal(t, 1, svc.Gem().Facets)
}

func TestBoardAuraEntry(t *testing.T) {
	m, svc := newTestBoard(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = next.(boardModel)
	require.True(t, m.typing)
	for _, r := range "222 4" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(boardModel)
	}
	m, msg := press(t, m, "enter")
	assert.False(t, m.typing)
	require.IsType(t, actionMsg{}, msg)
	assert.Equal(t, []int{2, 4}, svc.Aura().Numbers)
}

func TestBoardLockedShrineReportsReason(t *testing.T) {
	m, _ := newTestBoard(t)
	_, msg := press(t, m, "1")
	err := msg.(actionMsg).err
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candle")
}

func TestBoardView(t *testing.T) {
	m, _ := newTestBoard(t)
	assert.Contains(t, m.View(), "loading")

	next, _ := m.Update(m.loadCmd()())
	view := next.(boardModel).View()
	assert.Contains(t, view, "The Hermit")
	assert.Contains(t, view, "The Quiet Prologue")
	assert.True(t, strings.Contains(view, "0 / 8"))
}
