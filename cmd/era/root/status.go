package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's widgets and the current chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				out := cmd.OutOrStdout()
				st := svc.Stats(engine.BloomWindow)

				fmt.Fprintln(out, ui.Heading(ui.IconChapter, st.Chapter)+"  "+ui.Muted.Render(st.Today))
				fmt.Fprintln(out, "")

				g := svc.Gem()
				printGem(out, engine.GemResult{Facets: g.Facets, Target: g.Target, Percent: g.Percent})
				if g.Completed {
					fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" gem completed today"))
				}
				printGarden(out, svc.Garden())
				printWall(out, svc.Wall())
				printCard(out, svc.Tarot(), false)
				printAura(out, svc.Aura(), false)
				fmt.Fprintf(out, "%s %s\n", ui.IconShrine, ui.LabelValue("Shrine level", svc.Shrine().Level))
				return nil
			})
		},
	}
	return cmd
}
