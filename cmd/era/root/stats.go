package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show window, month and year totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				st := svc.Stats(days)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconChapter, st.Chapter))
				fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("Last %d days", st.WindowDays)))
				fmt.Fprintln(out, ui.LabelValue("Wins", st.WindowWins))
				fmt.Fprintln(out, ui.LabelValue("Blooms", st.WindowBlooms))
				fmt.Fprintln(out, ui.LabelValue("Days with a win", st.ActiveDays))
				fmt.Fprintln(out, ui.H2.Render("This month"))
				fmt.Fprintln(out, ui.LabelValue("Wins", st.MonthWins))
				fmt.Fprintln(out, ui.LabelValue("Blooms", st.MonthBlooms))
				fmt.Fprintln(out, ui.H2.Render("This year"))
				fmt.Fprintln(out, ui.LabelValue("Wins", st.YearWins))
				fmt.Fprintln(out, ui.LabelValue("Blooms", st.YearBlooms))
				fmt.Fprintln(out, ui.H2.Render("Always"))
				fmt.Fprintln(out, ui.LabelValue("Walls", st.Walls))
				fmt.Fprintln(out, ui.LabelValue("Bricks", st.TotalBricks))
				fmt.Fprintln(out, ui.LabelValue("Shrine level", st.ShrineLevel))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", engine.BloomWindow, "window size in days")
	return cmd
}
