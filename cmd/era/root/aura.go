package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newAuraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aura",
		Short: "Log angel numbers and read the aura orb",
	}

	log := &cobra.Command{
		Use:   "log <tokens...>",
		Short: "Log numbers such as 222, 33 or 5 (commas, pipes and spaces separate)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				results := svc.LogInput(cmd.Context(), strings.Join(args, " "))
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to log."))
					return nil
				}
				for _, r := range results {
					fmt.Fprint(cmd.OutOrStdout(), r.Line)
				}
				printAura(cmd.OutOrStdout(), svc.Aura(), false)
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show today's numbers, dominant colour and journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printAura(cmd.OutOrStdout(), svc.Aura(), true)
				return nil
			})
		},
	}

	cmd.AddCommand(log, show)
	return cmd
}
