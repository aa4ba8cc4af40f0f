// Package cmd implements the sheetsnap CLI commands.
//
// sheetsnap renders scripted action-sheet scenarios to SVG frames
// without a display, for previewing sheet configurations and keeping
// reference images alongside a project.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version and build time printed by the version
// command.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

var rootCmd = &cobra.Command{
	Use:   "sheetsnap",
	Short: "Render action-sheet scenarios to SVG frames",
	Long: `sheetsnap drives an action sheet through a scripted scenario on a
headless host and writes the captured frames as SVG files.

A scenario is a YAML file describing the screen, the sheet with its
actions, and a script of taps, waits, and captures. Run
"sheetsnap init" to scaffold a starter project with a scenario.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
