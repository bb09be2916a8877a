package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Era theme (CLI + TUI).
// Kept small: reusable styles and one icon per widget.

const (
	IconGem     = "💎"
	IconGarden  = "🌷"
	IconSprout  = "🌱"
	IconWall    = "🧱"
	IconTarot   = "🔮"
	IconAura    = "🪽"
	IconShrine  = "⛩️"
	IconChapter = "📖"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconLock    = "🔒"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeGemFull = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("GEM COMPLETE")
	BadgeUnlock  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("SHRINE UNLOCK")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Swatch renders a block in a hex colour, as used for aura digits.
func Swatch(hex string, text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(text)
}

// Bar renders a fixed-width progress bar.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = max(0, min(value, total))
	filled := min(width, value*width/total)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Plots renders garden days as flowers and sprouts, oldest first.
func Plots(blooms []bool) string {
	var b strings.Builder
	for i, on := range blooms {
		if i > 0 {
			b.WriteString(" ")
		}
		if on {
			b.WriteString(IconGarden)
		} else {
			b.WriteString(IconSprout)
		}
	}
	return b.String()
}
