// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/okkura/contribsum/internal/config"
	"github.com/okkura/contribsum/internal/gateway"
	"github.com/okkura/contribsum/internal/markdown"
	"github.com/okkura/contribsum/internal/usecase"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches and summarizes GitHub contribution activity",
	Long: `Fetches contribution activity for a GitHub user via the GraphQL API,
and writes a JSON summary plus a Markdown summary. Without --user the
token owner's profile (last 12 months) is queried.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := newLogger(cmd)

		cfg := config.Load(logger)
		if cfg.Token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}

		user, _ := cmd.Flags().GetString("user")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		outJSON, _ := cmd.Flags().GetString("out-json")
		outMD, _ := cmd.Flags().GetString("out-md")

		// Default to the trailing year when a user is given without a range.
		const inputDateLayout = "2006/01/02"
		to := time.Now().UTC().Truncate(24 * time.Hour)
		from := to.AddDate(-1, 0, 0)
		if fromStr != "" {
			fromTime, err := time.Parse(inputDateLayout, fromStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid --from date format. Please use YYYY/MM/DD. Error: %v\n", err)
				os.Exit(1)
			}
			from = fromTime
		}
		if toStr != "" {
			toTime, err := time.Parse(inputDateLayout, toStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid --to date format. Please use YYYY/MM/DD. Error: %v\n", err)
				os.Exit(1)
			}
			to = toTime
		}

		// Inject dependencies and run the main business logic.
		githubGateway := gateway.NewGitHubGateway(cfg.Token, cfg.Endpoint, logger)
		summarizer := usecase.NewSummarizer(githubGateway, logger)

		summary, err := summarizer.Summarize(ctx, user, from, to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch contributions: %v\n", err)
			os.Exit(1)
		}

		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal summary to JSON: %v\n", err)
			os.Exit(1)
		}
		if err := writeOutput(outJSON, append(jsonData, '\n')); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outJSON, err)
			os.Exit(1)
		}
		if err := writeOutput(outMD, []byte(markdown.Render(summary))); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outMD, err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %s and %s\n", outJSON, outMD)
	},
}

// writeOutput writes a generated file, creating its directory if missing.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringP("user", "u", "", "Target GitHub user name (defaults to the token owner)")
	fetchCmd.Flags().String("from", "", "Start date for the summary (YYYY/MM/DD)")
	fetchCmd.Flags().String("to", "", "End date for the summary (YYYY/MM/DD)")
	fetchCmd.Flags().String("out-json", "data/contributions.json", "Path for the JSON summary")
	fetchCmd.Flags().String("out-md", "data/summary.md", "Path for the Markdown summary")
}
