// Package cmd provides Cobra CLI commands for dumbtile.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "dumbtile",
		Short: "A bspwm-like binary space partitioning tiling layout",
		Long: `dumbtile - a binary space partitioning tiling layout engine.

Every new window splits the focused window in half, along its longer side.
Removing or swapping windows rebuilds the tree from the window order.

Use 'dumbtile frames' to compute frames for a window list, 'dumbtile replay'
to check scripted sessions, or 'dumbtile play' to try the layout interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.ConfigDir, "config-dir", "", "directory holding config.toml (default $XDG_CONFIG_HOME/dumbtile)")
	flags.StringVar(&rootOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&rootOpts.LogFormat, "log-format", "", "log format: console or json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
