package root

import (
	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				return tui.RunBoard(cmd.Context(), svc, cmd.OutOrStdout())
			})
		},
	}
}
