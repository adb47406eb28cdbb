// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okkura/contribsum/internal/readme"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Splices the summary into a README between markers",
	Long: `Replaces the region between the summary markers in the target README
with the generated Markdown summary and the heatmap embed line. A README
without markers gets the marked region appended.`,
	Run: func(cmd *cobra.Command, args []string) {
		summaryPath, _ := cmd.Flags().GetString("summary")
		readmePath, _ := cmd.Flags().GetString("readme")
		imagePath, _ := cmd.Flags().GetString("image")

		if err := readme.Update(readmePath, summaryPath, imagePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to update %s: %v\n", readmePath, err)
			os.Exit(1)
		}

		fmt.Println("README updated.")
	},
}

func init() {
	rootCmd.AddCommand(readmeCmd)
	readmeCmd.Flags().String("summary", "data/summary.md", "Path of the Markdown summary")
	readmeCmd.Flags().String("readme", "README.md", "Path of the README to patch")
	readmeCmd.Flags().String("image", "assets/contributions_light.svg", "Heatmap image path to embed")
}
