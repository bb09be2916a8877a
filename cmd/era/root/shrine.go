package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newShrineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shrine",
		Short: "Show shrine items; each filled gem unlocks the next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printShrine(cmd.OutOrStdout(), svc.Shrine())
				return nil
			})
		},
	}

	place := &cobra.Command{
		Use:   "place <item>",
		Short: "Place or remove an unlocked item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				res := svc.TogglePlacement(cmd.Context(), args[0])
				if err := res.Err(); err != nil {
					return err
				}
				verb := "Removed"
				if res.Placed {
					verb = "Placed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(verb), res.ItemID)
				printShrine(cmd.OutOrStdout(), svc.Shrine())
				return nil
			})
		},
	}

	cmd.AddCommand(place)
	return cmd
}
