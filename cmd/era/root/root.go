package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eratracker/internal/config"
	"eratracker/internal/engine"
	"eratracker/internal/logging"
	"eratracker/internal/ui"
)

const Version = "0.2.0"

var (
	cfgPath string
	verbose bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "era",
		Short:         "Era Tracker: daily gem, garden, wall, tarot, aura and shrine",
		Long:          "Era Tracker is a local-first CLI/TUI for small daily rituals: wins toward a gem, a weekly garden, a brick wall, a daily card and an aura log.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			c, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("config %s: %w", path, err)
			}
			cfg = c

			build := logging.New
			if cmd.Name() == "board" {
				build = logging.ForBoard
			}
			l, err := build(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			logger = l
			logger.Debug("config loaded", zap.String("path", path), zap.String("driver", cfg.Storage.Driver))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.config/era/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newStatusCmd(),
		newGemCmd(),
		newGardenCmd(),
		newWallCmd(),
		newTarotCmd(),
		newAuraCmd(),
		newShrineCmd(),
		newStatsCmd(),
		newExportCmd(),
		newHistoryCmd(),
		newRestoreCmd(),
		newBoardCmd(),
		newConfigCmd(),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for refused requests and 1 for everything else.
func exitCode(err error) int {
	var rej engine.RejectionError
	if errors.As(err, &rej) {
		return 2
	}
	return 1
}

func addYesFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("yes", false, "confirm the destructive action")
}

// requireYes refuses destructive commands that were not confirmed with --yes.
func requireYes(cmd *cobra.Command, action string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		return engine.RejectionError{Action: action, Reason: "pass --yes to confirm"}
	}
	return nil
}
