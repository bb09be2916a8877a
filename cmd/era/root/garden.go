package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newGardenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Show the last seven days of blooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				v := svc.Garden()
				printGarden(cmd.OutOrStdout(), v)
				if v.Notes != "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(v.Notes))
				}
				return nil
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle [YYYY-MM-DD]",
		Short: "Toggle the bloom of today or one of the last seven days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				var (
					res engine.GardenResult
					err error
				)
				if len(args) == 0 {
					res = svc.ToggleTodayBloom(cmd.Context())
				} else {
					res, err = svc.ToggleBloom(cmd.Context(), args[0])
					if err != nil {
						return err
					}
				}
				state := ui.Muted.Render("not bloomed")
				if res.Bloom {
					state = ui.Good.Render("bloomed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconGarden, res.Day, state)
				printGarden(cmd.OutOrStdout(), svc.Garden())
				return nil
			})
		},
	}

	bloom := &cobra.Command{
		Use:   "bloom",
		Short: "Mark today bloomed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.BloomToday(cmd.Context())
				printGarden(cmd.OutOrStdout(), svc.Garden())
				return nil
			})
		},
	}

	resetWeek := &cobra.Command{
		Use:   "reset-week",
		Short: "Clear blooms on the last seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(cmd, "reset the garden week"); err != nil {
				return err
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				n := svc.ResetRecentWindow(cmd.Context(), engine.BloomWindow)
				fmt.Fprintf(cmd.OutOrStdout(), "%s cleared %d days\n", ui.Warn.Render(ui.IconSprout+" Garden reset:"), n)
				return nil
			})
		},
	}
	addYesFlag(resetWeek)

	note := &cobra.Command{
		Use:   "note <text...>",
		Short: "Replace today's garden notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.SetGardenNotes(cmd.Context(), notesArg(args))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Garden notes saved."))
				return nil
			})
		},
	}

	cmd.AddCommand(toggle, bloom, resetWeek, note)
	return cmd
}
