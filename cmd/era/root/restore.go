package root

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <revision>",
		Short: "Restore the tracker state from an earlier revision",
		Long: `Restore the tracker state from a revision listed by "era history".

The revision is loaded, normalised and saved as the newest state. The state it
replaces stays in the history, so a restore can itself be undone.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("revision is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("revision must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(cmd, "restore"); err != nil {
				return err
			}
			id, _ := strconv.ParseInt(args[0], 10, 64)
			return withService(cmd.Context(), func(svc *engine.Service) error {
				if err := svc.RestoreRevision(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s revision #%d\n", ui.Warn.Render(ui.IconScroll+" Restored"), id)
				g := svc.Gem()
				printGem(cmd.OutOrStdout(), engine.GemResult{Facets: g.Facets, Target: g.Target, Percent: g.Percent})
				return nil
			})
		},
	}
	addYesFlag(cmd)
	return cmd
}
