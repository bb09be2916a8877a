package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print a plain-text report for copy and paste",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				fmt.Fprint(cmd.OutOrStdout(), svc.Export())
				return nil
			})
		},
	}
}
