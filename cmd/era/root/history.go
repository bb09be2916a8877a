package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved revisions of the tracker state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				revs, err := svc.History(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
				if len(revs) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(no revisions)"))
					return nil
				}
				for _, r := range revs {
					fmt.Fprintf(out, "%s %s %s\n",
						ui.Key.Render(fmt.Sprintf("#%d", r.ID)),
						r.WrittenAt.In(svc.Location()).Format("2006-01-02 15:04:05"),
						ui.Muted.Render(fmt.Sprintf("(%d bytes)", len(r.Value))))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "revisions to show")
	return cmd
}
