// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/techaware/internal/arxiv"
	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "Query the local paper collection",
	Long: `Papers reads data/papers.json and answers the same queries the HTTP API
serves: filtered lists, single lookups, the daily top, tags, and collection
status.`,
}

var papersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List papers with optional filters",
	RunE:  runPapersList,
}

var papersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one paper by ID or arXiv ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runPapersShow,
}

var papersTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the highest-scored papers",
	RunE:  runPapersTop,
}

var papersTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags in the collection",
	RunE:  runPapersTags,
}

var papersStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show collection statistics",
	RunE:  runPapersStatus,
}

func init() {
	papersListCmd.Flags().String("search", "", "match title or abstract")
	papersListCmd.Flags().StringSlice("tag", nil, "filter by tag (repeatable)")
	papersListCmd.Flags().String("category", "", "filter by category")
	papersListCmd.Flags().String("since", "", "only papers published on or after this date (YYYY-MM-DD)")
	papersListCmd.Flags().String("sort", "recent", "sort order: recent, relevant, score")
	papersListCmd.Flags().Int("page", 1, "page number")
	papersListCmd.Flags().Int("limit", 10, "papers per page")
	papersListCmd.Flags().Bool("json", false, "output JSON")

	papersTopCmd.Flags().Int("n", 3, "number of papers")
	papersTopCmd.Flags().Bool("live", false, "fetch today's top papers from arXiv instead of the local collection")
	papersTopCmd.Flags().Bool("json", false, "output JSON")
	papersShowCmd.Flags().Bool("json", false, "output JSON")

	papersCmd.AddCommand(papersListCmd, papersShowCmd, papersTopCmd, papersTagsCmd, papersStatusCmd)
	rootCmd.AddCommand(papersCmd)
}

func loadStore() *papers.Store {
	store := papers.NewStore(storeConfig())
	store.Load(os.Stderr)
	return store
}

func runPapersList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	category, _ := cmd.Flags().GetString("category")
	since, _ := cmd.Flags().GetString("since")
	sortMode, _ := cmd.Flags().GetString("sort")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	result := loadStore().Retrieve(papers.QueryOptions{
		Search:   search,
		Tags:     tags,
		Category: category,
		Since:    since,
		Sort:     sortMode,
		Page:     page,
		Limit:    limit,
	})

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(result)
	}

	if result.Total == 0 {
		fmt.Println("No papers found.")
		return nil
	}
	printPaperTable(os.Stdout, result.Papers)
	fmt.Printf("\nPage %d of %d (%d papers)\n", result.Page, result.Pages, result.Total)
	return nil
}

func runPapersShow(cmd *cobra.Command, args []string) error {
	paper, err := loadStore().Get(args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(paper)
	}

	fmt.Printf("%s\n", paper.Title)
	fmt.Printf("  arXiv:     %s\n", paper.ArxivID)
	fmt.Printf("  Authors:   %s\n", strings.Join(paper.Authors, ", "))
	fmt.Printf("  Category:  %s\n", paper.Category)
	fmt.Printf("  Published: %s\n", paper.PublishedAt)
	fmt.Printf("  Score:     %.0f\n", paper.Score)
	fmt.Printf("  Tags:      %s\n", strings.Join(paper.Tags, ", "))
	fmt.Printf("  PDF:       %s\n", paper.PDFURL)
	if paper.SummaryShort != "" {
		fmt.Printf("\n%s\n", paper.SummaryShort)
	}
	for _, impact := range paper.ImpactSuggestions {
		fmt.Printf("  - %s\n", impact)
	}
	return nil
}

func runPapersTop(cmd *cobra.Command, args []string) error {
	n, _ := cmd.Flags().GetInt("n")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if live, _ := cmd.Flags().GetBool("live"); live {
		cfg := fetchConfig()
		raw, err := arxiv.NewClient(cfg).TopToday(context.Background(), cfg, n)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(raw)
		}
		for _, p := range raw {
			fmt.Printf("%-12s  %-60s  %.0f\n", p.ArxivID, p.Title, p.Score)
		}
		return nil
	}

	top := loadStore().Top(n)
	if jsonOutput {
		return printJSON(top)
	}
	printPaperTable(os.Stdout, top)
	return nil
}

func runPapersTags(cmd *cobra.Command, args []string) error {
	for _, tag := range loadStore().AllTags() {
		fmt.Println(tag)
	}
	return nil
}

func runPapersStatus(cmd *cobra.Command, args []string) error {
	st := loadStore().Status()

	fmt.Printf("Papers:     %d\n", st.PapersCount)
	if st.LatestPaper != "" {
		fmt.Printf("Latest:     %s\n", st.LatestPaper)
	}
	if len(st.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(st.Categories, ", "))
	}
	if st.DateRange.Earliest != "" {
		fmt.Printf("Range:      %s to %s\n", st.DateRange.Earliest, st.DateRange.Latest)
	}
	return nil
}

func printPaperTable(w io.Writer, list []types.Paper) {
	fmt.Fprintf(w, "%-12s  %-50s  %-26s  %-10s  %s\n",
		"ArXiv", "Title", "Category", "Published", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, p := range list {
		title := p.Title
		// Truncate on runes so non-ASCII titles stay valid UTF-8.
		if runes := []rune(title); len(runes) > 50 {
			title = string(runes[:47]) + "..."
		}
		fmt.Fprintf(w, "%-12s  %-50s  %-26s  %-10s  %.0f\n",
			p.ArxivID, title, p.Category, p.PublishedAt, p.Score)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
