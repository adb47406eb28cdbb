// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okkura/contribsum/internal/domain"
	"github.com/okkura/contribsum/internal/heatmap"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Renders calendar heatmap SVGs from a JSON summary",
	Long: `Reads the JSON summary produced by fetch, aligns the contribution
calendar to full weeks, and writes one SVG heatmap per theme (light and
dark). An empty calendar produces a "No data" placeholder image.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		inJSON, _ := cmd.Flags().GetString("in-json")
		outDir, _ := cmd.Flags().GetString("out-dir")

		data, err := os.ReadFile(inJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", inJSON, err)
			os.Exit(1)
		}
		var summary domain.ContributionSummary
		if err := json.Unmarshal(data, &summary); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %s: %v\n", inJSON, err)
			os.Exit(1)
		}
		if err := summary.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid summary %s: %v\n", inJSON, err)
			os.Exit(1)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", outDir, err)
			os.Exit(1)
		}
		builder := heatmap.NewBuilder([]heatmap.Theme{heatmap.Light, heatmap.Dark}, logger)
		if err := builder.RenderAll(summary.CalendarDays, outDir); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render heatmaps: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote heatmaps to %s\n", outDir)
	},
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
	heatmapCmd.Flags().String("in-json", "data/contributions.json", "Path of the JSON summary")
	heatmapCmd.Flags().String("out-dir", "assets", "Directory for the heatmap SVGs")
}
