package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/sheet/cmd/sheetsnap/internal/scenario"
)

var renderCmd = &cobra.Command{
	Use:   "render <scenario.yaml>",
	Short: "Render a scenario to SVG frames",
	Long: `Render loads a scenario file, drives the sheet through its script on
a headless host, and writes every captured frame as an SVG file.

Frames are numbered in capture order: 01-presented.svg, 02-pressed.svg,
and so on. Relative theme paths in the scenario resolve against the
scenario file's directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		sc, err := scenario.Load(data)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		frames, err := scenario.Run(sc, filepath.Dir(path), out)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d frames to %s\n", frames, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "frames", "Output directory for captured frames")
}
