package root

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func printGem(w io.Writer, res engine.GemResult) {
	line := fmt.Sprintf("%s %s %d / %d (%d%%)",
		ui.IconGem, ui.Bar(res.Facets, res.Target, 16), res.Facets, res.Target, res.Percent)
	fmt.Fprintln(w, line)
	if res.JustCompleted {
		fmt.Fprintln(w, ui.BadgeGemFull)
	}
	if res.ShrineAdvanced {
		item := engine.ShrineItems[res.ShrineLevel-1]
		fmt.Fprintf(w, "%s %s %s unlocked\n", ui.BadgeUnlock, item.Glyph, item.Name)
	}
}

func printGarden(w io.Writer, v engine.GardenView) {
	blooms := make([]bool, len(v.Days))
	for i, d := range v.Days {
		blooms[i] = d.Bloom
	}
	fmt.Fprintln(w, ui.Plots(blooms))
	fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("%d of %d days bloomed", v.Count, engine.BloomWindow)))
}

func printWall(w io.Writer, v engine.WallView) {
	fmt.Fprintf(w, "%s %s %d / %d\n", ui.IconWall, ui.Bar(v.Bricks, v.Capacity, 12), v.Bricks, v.Capacity)
	fmt.Fprintln(w, ui.Muted.Render(fmt.Sprintf("%d walls completed, %d bricks total", v.Walls, v.Total)))
}

func printCard(w io.Writer, c engine.Card, full bool) {
	fmt.Fprintf(w, "%s %s %s %s\n", ui.IconTarot, c.Glyph, ui.H2.Render(c.Title), ui.Muted.Render(c.Tagline))
	if full {
		fmt.Fprintln(w, c.Meaning)
	}
}

func printAura(w io.Writer, v engine.AuraView, journal bool) {
	if len(v.Numbers) == 0 {
		fmt.Fprintln(w, ui.IconAura+" "+ui.Muted.Render("No aura numbers logged today"))
	} else {
		parts := make([]string, len(v.Numbers))
		for i, n := range v.Numbers {
			parts[i] = ui.Swatch(engine.AuraColor(n), strconv.Itoa(n))
		}
		line := ui.IconAura + " Today: " + strings.Join(parts, ", ")
		if v.HasDominant {
			line += "  " + ui.Swatch(v.Color, fmt.Sprintf("(dominant %d %s)", v.Dominant, v.Color))
		}
		fmt.Fprintln(w, line)
	}
	if journal {
		for _, l := range v.JournalLines() {
			fmt.Fprintln(w, ui.Muted.Render(l))
		}
	}
}

func printShrine(w io.Writer, v engine.ShrineView) {
	fmt.Fprintln(w, ui.LabelValue("Level", fmt.Sprintf("%d of %d", v.Level, len(engine.ShrineItems))))
	for i, s := range v.Slots {
		state := ui.Muted.Render("unplaced")
		switch {
		case !s.Unlocked:
			state = ui.IconLock + " " + ui.Muted.Render(fmt.Sprintf("unlocks at level %d", i+1))
		case s.Placed:
			state = ui.Good.Render("placed")
		}
		fmt.Fprintf(w, "%d. %s %-8s %s\n", i+1, s.Item.Glyph, s.Item.ID, state)
	}
}

func notesArg(args []string) string {
	return strings.Join(args, " ")
}
