package root

import (
	"github.com/spf13/cobra"

	"eratracker/internal/engine"
)

func newTarotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tarot",
		Short: "Show today's card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printCard(cmd.OutOrStdout(), svc.Tarot(), true)
				return nil
			})
		},
	}
}
