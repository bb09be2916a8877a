package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

// snapshot is one consistent read of everything the board shows.
type snapshot struct {
	today  string
	gem    engine.GemView
	garden engine.GardenView
	wall   engine.WallView
	card   engine.Card
	aura   engine.AuraView
	shrine engine.ShrineView
	stats  engine.Stats
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap *snapshot

	// confirm holds the key of a destructive action waiting for its second press.
	confirm string
	input   textinput.Model
	typing  bool

	lastLog string
	loading bool
}

type loadedMsg struct {
	snap *snapshot
}

type actionMsg struct {
	log string
	err error
}

// resets are the destructive keys that need a second press.
var resets = map[string]string{
	"R": "reset today's gem",
	"G": "clear blooms for the week",
	"X": "reset the current wall",
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	in := textinput.New()
	in.Placeholder = "222, 33 | 5"
	in.CharLimit = 120
	in.Width = 30
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		input:   in,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: &snapshot{
			today:  m.svc.TodayKey(),
			gem:    m.svc.Gem(),
			garden: m.svc.Garden(),
			wall:   m.svc.Wall(),
			card:   m.svc.Tarot(),
			aura:   m.svc.Aura(),
			shrine: m.svc.Shrine(),
			stats:  m.svc.Stats(engine.BloomWindow),
		}}
	}
}

func (m boardModel) actionCmd(do func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		log, err := do()
		return actionMsg{log: log, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.snap = msg.snap
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = ui.IconWarn + " " + msg.err.Error()
		} else {
			m.lastLog = msg.log
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.typing {
			return m.updateInput(msg)
		}
		return m.updateKey(msg.String())
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		m.input.SetValue("")
		m.lastLog = "Aura entry cancelled."
		return m, nil
	case tea.KeyEnter:
		raw := m.input.Value()
		m.typing = false
		m.input.Blur()
		m.input.SetValue("")
		return m, m.actionCmd(func() (string, error) {
			res := m.svc.LogInput(m.ctx, raw)
			if len(res) == 0 {
				return "Nothing logged.", nil
			}
			return strings.TrimSpace(res[len(res)-1].Line), nil
		})
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateKey(key string) (tea.Model, tea.Cmd) {
	pending := m.confirm
	m.confirm = ""

	if label, ok := resets[key]; ok {
		if pending != key {
			m.confirm = key
			m.lastLog = fmt.Sprintf("Press %s again to %s.", key, label)
			return m, nil
		}
		return m, m.resetCmd(key)
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, m.loadCmd()
	case "w":
		return m, m.actionCmd(func() (string, error) {
			return gemLog(m.svc.AddWin(m.ctx)), nil
		})
	case "f":
		return m, m.actionCmd(func() (string, error) {
			return gemLog(m.svc.FillGem(m.ctx)), nil
		})
	case "b":
		return m, m.actionCmd(func() (string, error) {
			res := m.svc.ToggleTodayBloom(m.ctx)
			if res.Bloom {
				return fmt.Sprintf("%s Bloomed. %d of %d this week.", ui.IconGarden, res.Week, engine.BloomWindow), nil
			}
			return fmt.Sprintf("%s Unbloomed. %d of %d this week.", ui.IconSprout, res.Week, engine.BloomWindow), nil
		})
	case "n":
		return m, m.actionCmd(func() (string, error) {
			res := m.svc.AddBrick(m.ctx)
			if !res.Changed {
				return "Wall is full. Press c to complete it.", nil
			}
			return fmt.Sprintf("%s Brick %d of %d.", ui.IconWall, res.Bricks, engine.BrickCapacity), nil
		})
	case "c":
		return m, m.actionCmd(func() (string, error) {
			res, err := m.svc.CompleteWall(m.ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s Wall %d complete.", ui.IconDone, res.Walls), nil
		})
	case "a":
		m.typing = true
		m.lastLog = "Type aura numbers, enter to log, esc to cancel."
		return m, m.input.Focus()
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(engine.ShrineItems) {
		id := engine.ShrineItems[n-1].ID
		return m, m.actionCmd(func() (string, error) {
			res := m.svc.TogglePlacement(m.ctx, id)
			if err := res.Err(); err != nil {
				return "", err
			}
			if res.Placed {
				return "Placed " + id + ".", nil
			}
			return "Removed " + id + ".", nil
		})
	}
	return m, nil
}

func (m boardModel) resetCmd(key string) tea.Cmd {
	return m.actionCmd(func() (string, error) {
		switch key {
		case "R":
			m.svc.ResetToday(m.ctx)
			return "Gem reset for today.", nil
		case "G":
			n := m.svc.ResetRecentWindow(m.ctx, engine.BloomWindow)
			return fmt.Sprintf("Cleared blooms on %d days.", n), nil
		case "X":
			m.svc.ResetWall(m.ctx)
			return "Current wall reset.", nil
		}
		return "", errors.New("unknown reset")
	})
}

func gemLog(res engine.GemResult) string {
	msg := fmt.Sprintf("%s %d / %d (%d%%)", ui.IconGem, res.Facets, res.Target, res.Percent)
	if res.JustCompleted {
		msg += " " + ui.BadgeGemFull
	}
	if res.ShrineAdvanced {
		msg += " " + ui.BadgeUnlock
	}
	return msg
}

func (m boardModel) View() string {
	if m.snap == nil {
		return "Era Tracker, loading…\n"
	}
	s := m.snap

	header := ui.Heading(ui.IconChapter, s.stats.Chapter) + "  " + ui.Muted.Render(s.today)
	if m.loading {
		header += ui.Muted.Render("  refreshing…")
	}

	left := []string{
		ui.PanelTitle.Render(ui.IconGem + " Gem"),
		fmt.Sprintf("%s %d / %d", ui.Bar(s.gem.Facets, s.gem.Target, 16), s.gem.Facets, s.gem.Target),
		"",
		ui.PanelTitle.Render(ui.IconGarden + " Garden"),
		ui.Plots(gardenBlooms(s.garden)),
		fmt.Sprintf("%d of %d this week", s.garden.Count, engine.BloomWindow),
		"",
		ui.PanelTitle.Render(ui.IconWall + " Wall"),
		fmt.Sprintf("%s %d / %d", ui.Bar(s.wall.Bricks, s.wall.Capacity, 12), s.wall.Bricks, s.wall.Capacity),
		fmt.Sprintf("%d walls, %d bricks total", s.wall.Walls, s.wall.Total),
	}

	right := []string{
		ui.PanelTitle.Render(ui.IconTarot + " " + s.card.Glyph + " " + s.card.Title),
		ui.Muted.Render(s.card.Tagline),
		"",
		ui.PanelTitle.Render(ui.IconAura + " Aura"),
		renderAura(s.aura),
		"",
		ui.PanelTitle.Render(ui.IconShrine + " Shrine"),
		renderShrine(s.shrine),
	}
	if m.typing {
		right = append(right, "", m.input.View())
	}

	body := joinColumns(strings.Join(left, "\n"), strings.Join(right, "\n"), m.leftWidth())
	keys := ui.Muted.Render("w win · f fill · b bloom · n brick · c complete · a aura · 1-8 shrine · R/G/X reset · r refresh · q quit")
	return header + "\n\n" + body + "\n" + keys + "\n" + m.lastLog + "\n"
}

func (m boardModel) leftWidth() int {
	w := 34
	if m.width > 0 {
		w = min(w, m.width/2)
		w = max(w, 20)
	}
	return w
}

func gardenBlooms(v engine.GardenView) []bool {
	out := make([]bool, len(v.Days))
	for i, d := range v.Days {
		out[i] = d.Bloom
	}
	return out
}

func renderAura(v engine.AuraView) string {
	if len(v.Numbers) == 0 {
		return ui.Muted.Render("No aura numbers logged today")
	}
	parts := make([]string, len(v.Numbers))
	for i, n := range v.Numbers {
		parts[i] = ui.Swatch(engine.AuraColor(n), "●"+strconv.Itoa(n))
	}
	line := strings.Join(parts, " ")
	if v.HasDominant {
		line += "  " + ui.Swatch(v.Color, fmt.Sprintf("dominant %d", v.Dominant))
	}
	return line
}

func renderShrine(v engine.ShrineView) string {
	parts := make([]string, len(v.Slots))
	for i, slot := range v.Slots {
		switch {
		case !slot.Unlocked:
			parts[i] = fmt.Sprintf("%d%s", i+1, ui.IconLock)
		case slot.Placed:
			parts[i] = fmt.Sprintf("%d%s", i+1, slot.Item.Glyph)
		default:
			parts[i] = ui.Muted.Render(fmt.Sprintf("%d·", i+1))
		}
	}
	return fmt.Sprintf("level %d  %s", v.Level, strings.Join(parts, " "))
}

func joinColumns(left string, right string, leftW int) string {
	linesLeft := strings.Split(left, "\n")
	linesRight := strings.Split(right, "\n")
	n := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}
	return body.String()
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
