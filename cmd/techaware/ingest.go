// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/techaware/internal/arxiv"
	"github.com/pdiddy/techaware/internal/enrich"
	"github.com/pdiddy/techaware/internal/ingest"
	"github.com/pdiddy/techaware/internal/papers"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch recent papers from arXiv and enrich them",
	Long: `Ingest runs the pipeline once: fetch recent papers from the configured
arXiv categories, summarize each new one with Claude, derive tags and impact
suggestions, and merge the results into data/papers.json. Papers already in
the collection are skipped without a model call.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().Int("max-results", 0, "maximum papers to fetch (default 20)")
	ingestCmd.Flags().Int("days-back", 0, "how many days back to fetch (default 7)")
	ingestCmd.Flags().StringSlice("categories", nil, "arXiv categories to fetch (default cs.AI,cs.LG,cs.CV,cs.CL)")
	ingestCmd.Flags().String("rules", "", "YAML tag-rule file overriding the built-in keyword table")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	runner, store, err := buildRunner(cmd)
	if err != nil {
		return err
	}
	store.Load(os.Stderr)

	maxResults, _ := cmd.Flags().GetInt("max-results")
	daysBack, _ := cmd.Flags().GetInt("days-back")
	categories, _ := cmd.Flags().GetStringSlice("categories")

	result, err := runner.Run(context.Background(), ingest.Options{
		Categories: categories,
		MaxResults: maxResults,
		DaysBack:   daysBack,
	}, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("fetched %d, new %d, total %d\n", result.Fetched, result.New, result.Total)
	return nil
}

// buildRunner assembles the full pipeline from configuration. Shared by
// the ingest subcommand and the serve ingestion endpoint.
func buildRunner(cmd *cobra.Command) (*ingest.Runner, *papers.Store, error) {
	summarizer, err := enrich.NewClaudeSummarizer(summarizerConfig())
	if err != nil {
		return nil, nil, err
	}

	var rules []enrich.TagRule
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" {
		rulesFile = summarizerConfig().RulesFile
	}
	if rulesFile != "" {
		if rules, err = enrich.LoadTagRules(rulesFile); err != nil {
			return nil, nil, err
		}
	}

	fetchCfg := fetchConfig()
	store := papers.NewStore(storeConfig())
	runner := ingest.NewRunner(arxiv.NewClient(fetchCfg), summarizer, store, fetchCfg, rules)
	return runner, store, nil
}
