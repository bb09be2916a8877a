package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newGemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gem",
		Short: "Log wins toward today's gem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				g := svc.Gem()
				printGem(cmd.OutOrStdout(), engine.GemResult{Facets: g.Facets, Target: g.Target, Percent: g.Percent})
				if g.Notes != "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(g.Notes))
				}
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add one win",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printGem(cmd.OutOrStdout(), svc.AddWin(cmd.Context()))
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set <n>",
		Short: "Set today's wins (negative values store 0)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("wins must be an integer: %q", args[0])
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printGem(cmd.OutOrStdout(), svc.SetWins(cmd.Context(), n))
				return nil
			})
		},
	}

	fill := &cobra.Command{
		Use:   "fill",
		Short: "Fill today's gem to the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printGem(cmd.OutOrStdout(), svc.FillGem(cmd.Context()))
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Reset today's wins and gem notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(cmd, "reset today's gem"); err != nil {
				return err
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				printGem(cmd.OutOrStdout(), svc.ResetToday(cmd.Context()))
				return nil
			})
		},
	}
	addYesFlag(reset)

	note := &cobra.Command{
		Use:   "note <text...>",
		Short: "Replace today's gem notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.SetGemNotes(cmd.Context(), notesArg(args))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Gem notes saved."))
				return nil
			})
		},
	}

	cmd.AddCommand(add, set, fill, reset, note)
	return cmd
}
