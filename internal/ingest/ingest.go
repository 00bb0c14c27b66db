// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest drives the fetch, enrich, persist pipeline: recent
// papers come in from arXiv, each new one gets a summary and heuristic
// tags, and the merged collection is written back in one piece.
package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/techaware/internal/arxiv"
	"github.com/pdiddy/techaware/internal/enrich"
	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

// sampleSize bounds the processed-paper sample returned to callers.
const sampleSize = 5

// Fetcher retrieves recent raw papers. *arxiv.Client is the production
// implementation; tests supply a stub.
type Fetcher interface {
	FetchRecent(ctx context.Context, cfg types.FetchConfig) ([]arxiv.RawPaper, error)
}

// Options selects what a single ingestion run fetches. Zero values fall
// back to the fetch configuration defaults.
type Options struct {
	Categories []string
	MaxResults int
	DaysBack   int
}

// Result reports the outcome of one ingestion run. Sample holds up to
// five of the newly processed records.
type Result struct {
	Fetched int           `json:"fetched"`
	New     int           `json:"new_papers"`
	Total   int           `json:"total_papers"`
	Sample  []types.Paper `json:"papers"`
}

// Runner binds the pipeline stages together for repeated runs.
type Runner struct {
	fetcher    Fetcher
	summarizer enrich.Summarizer
	store      *papers.Store
	fetchCfg   types.FetchConfig
	tagRules   []enrich.TagRule
}

// NewRunner assembles a pipeline. tagRules may be nil to use the
// built-in keyword table.
func NewRunner(fetcher Fetcher, summarizer enrich.Summarizer, store *papers.Store, fetchCfg types.FetchConfig, tagRules []enrich.TagRule) *Runner {
	return &Runner{
		fetcher:    fetcher,
		summarizer: summarizer,
		store:      store,
		fetchCfg:   fetchCfg,
		tagRules:   tagRules,
	}
}

// Run executes one ingestion pass, writing progress to w. Papers already
// in the collection are skipped before any model call. A fetch or
// summarization failure aborts the run before anything is persisted, so
// the collection on disk is never a partial merge.
func (r *Runner) Run(ctx context.Context, opts Options, w io.Writer) (Result, error) {
	cfg := r.fetchCfg
	if len(opts.Categories) > 0 {
		cfg.Categories = opts.Categories
	}
	if opts.MaxResults > 0 {
		cfg.MaxResults = opts.MaxResults
	}
	if opts.DaysBack > 0 {
		cfg.DaysBack = opts.DaysBack
	}

	fmt.Fprintf(w, "fetching up to %d papers from arXiv\n", cfg.MaxResults)
	raw, err := r.fetcher.FetchRecent(ctx, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("fetching papers: %w", err)
	}
	if len(raw) == 0 {
		fmt.Fprintln(w, "no papers found")
		return Result{Sample: []types.Paper{}}, nil
	}
	fmt.Fprintf(w, "found %d papers\n", len(raw))

	existing := r.store.Papers()
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.ArxivID] = true
	}

	rules := r.tagRules
	if rules == nil {
		rules = enrich.DefaultTagRules()
	}

	var processed []types.Paper
	for i, rp := range raw {
		if known[rp.ArxivID] {
			continue
		}
		fmt.Fprintf(w, "[%d/%d] processing: %s\n", i+1, len(raw), truncate(rp.Title, 50))

		summary, err := r.summarizer.Summarize(ctx, rp.Abstract)
		if err != nil {
			return Result{}, fmt.Errorf("summarizing %s: %w", rp.ArxivID, err)
		}

		category := enrich.InferCategory(rp.Title, rp.Abstract)
		processed = append(processed, types.Paper{
			ID:                rp.ArxivID,
			ArxivID:           rp.ArxivID,
			Title:             rp.Title,
			Authors:           rp.Authors,
			Abstract:          rp.Abstract,
			Category:          arxiv.CategoryLabel(rp.CategoryCode),
			PublishedAt:       rp.PublishedAt,
			PDFURL:            rp.PDFURL,
			SummaryShort:      summary,
			ImpactSuggestions: enrich.SuggestImpact(category),
			Tags:              enrich.ExtractTagsWith(rules, rp.Title, rp.Abstract),
			Score:             rp.Score,
		})
	}

	merged, sum := papers.Merge(existing, processed, r.store.Window())
	if err := r.store.Save(merged); err != nil {
		return Result{}, fmt.Errorf("persisting collection: %w", err)
	}

	fmt.Fprintf(w, "ingestion complete: %d new, %d total\n", sum.New, sum.Total)

	sample := processed
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	if sample == nil {
		sample = []types.Paper{}
	}
	return Result{
		Fetched: len(raw),
		New:     sum.New,
		Total:   sum.Total,
		Sample:  sample,
	}, nil
}

// truncate shortens s to n runes. Cutting on bytes could split a
// multibyte character in non-ASCII titles.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
