package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"eratracker/internal/engine"
	"eratracker/internal/ui"
)

func newWallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wall",
		Short: "Place bricks and complete walls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				v := svc.Wall()
				printWall(cmd.OutOrStdout(), v)
				if v.Notes != "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(v.Notes))
				}
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Place one brick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				res := svc.AddBrick(cmd.Context())
				if !res.Changed {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Wall is full. Run `era wall complete`."))
				}
				printWall(cmd.OutOrStdout(), svc.Wall())
				return nil
			})
		},
	}

	set := &cobra.Command{
		Use:   "set <n>",
		Short: "Set the bricks in the current wall (clamped to 0..12)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bricks must be an integer: %q", args[0])
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.SetBricks(cmd.Context(), n)
				printWall(cmd.OutOrStdout(), svc.Wall())
				return nil
			})
		},
	}

	complete := &cobra.Command{
		Use:   "complete",
		Short: "Complete a full wall and start a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				res, err := svc.CompleteWall(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s wall #%d\n", ui.Good.Render(ui.IconDone+" Completed"), res.Walls)
				printWall(cmd.OutOrStdout(), svc.Wall())
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Empty the current wall (completed walls are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(cmd, "reset the wall"); err != nil {
				return err
			}
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.ResetWall(cmd.Context())
				printWall(cmd.OutOrStdout(), svc.Wall())
				return nil
			})
		},
	}
	addYesFlag(reset)

	note := &cobra.Command{
		Use:   "note <text...>",
		Short: "Replace today's brick notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(svc *engine.Service) error {
				svc.SetBrickNotes(cmd.Context(), notesArg(args))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Brick notes saved."))
				return nil
			})
		},
	}

	cmd.AddCommand(add, set, complete, reset, note)
	return cmd
}
