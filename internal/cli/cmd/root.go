// Package cmd provides Cobra CLI commands for hdmiprobe.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hdmiprobe/internal/cli"
	"github.com/bnema/hdmiprobe/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "hdmiprobe",
		Short: "Diagnose HDMI cable and display capabilities",
		Long: `Hdmiprobe - find out what your HDMI link can actually carry.

A terminal diagnostic for HDMI cables and displays. It enumerates what
the OS reports about connected displays, probes which common resolutions
and refresh rates are available, computes the bandwidth each signal
needs, and watches the connection for dropouts.

Features:
  - Full capability suite with a single command (hdmiprobe test)
  - Resolution and refresh rate probing against the OS mode catalog
  - Bandwidth math per HDMI revision (1.4 / 2.0 / 2.1)
  - Timed signal stability sampling with live progress
  - JSON reports and a browsable history of past runs

Use 'hdmiprobe test' for the full diagnostic, or explore the
subcommands for individual probes like bandwidth math and display
detection.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

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
