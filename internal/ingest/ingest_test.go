// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/techaware/internal/arxiv"
	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

type stubFetcher struct {
	papers []arxiv.RawPaper
	err    error
}

func (f *stubFetcher) FetchRecent(_ context.Context, _ types.FetchConfig) ([]arxiv.RawPaper, error) {
	return f.papers, f.err
}

type stubSummarizer struct {
	calls int
	err   error
}

func (s *stubSummarizer) Summarize(_ context.Context, text string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "summary of: " + text[:min(20, len(text))], nil
}

func rawPaper(id, title, published string) arxiv.RawPaper {
	return arxiv.RawPaper{
		ArxivID:      id,
		Title:        title,
		Authors:      []string{"Doe, J."},
		Abstract:     "We study " + strings.ToLower(title) + " with transformer models.",
		CategoryCode: "cs.LG",
		PublishedAt:  published,
		PDFURL:       "https://arxiv.org/pdf/" + id,
		Score:        75,
	}
}

func newRunner(t *testing.T, fetcher Fetcher, summarizer *stubSummarizer) (*Runner, *papers.Store) {
	t.Helper()
	store := papers.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	return NewRunner(fetcher, summarizer, store, types.FetchConfig{MaxResults: 10}, nil), store
}

func TestRunProcessesNewPapers(t *testing.T) {
	fetcher := &stubFetcher{papers: []arxiv.RawPaper{
		rawPaper("2408.00001", "Attention Scaling Laws", "2026-08-20"),
		rawPaper("2408.00002", "Private Aggregation Protocols", "2026-08-19"),
	}}
	sum := &stubSummarizer{}
	runner, store := newRunner(t, fetcher, sum)

	var buf bytes.Buffer
	res, err := runner.Run(context.Background(), Options{}, &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Fetched != 2 || res.New != 2 || res.Total != 2 {
		t.Errorf("result = %+v", res)
	}
	if len(res.Sample) != 2 {
		t.Errorf("sample has %d papers, want 2", len(res.Sample))
	}
	if sum.calls != 2 {
		t.Errorf("summarizer called %d times, want 2", sum.calls)
	}

	got, err := store.Get("2408.00001")
	if err != nil {
		t.Fatalf("persisted paper missing: %v", err)
	}
	if got.ID != got.ArxivID {
		t.Errorf("record ID %q should equal arXiv ID %q", got.ID, got.ArxivID)
	}
	if got.Category != "Machine Learning" {
		t.Errorf("category = %q", got.Category)
	}
	if got.SummaryShort == "" || len(got.Tags) == 0 || len(got.ImpactSuggestions) == 0 {
		t.Errorf("enrichment missing: %+v", got)
	}

	if !strings.Contains(buf.String(), "[1/2] processing: Attention Scaling Laws") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestRunSkipsKnownPapersBeforeSummarizing(t *testing.T) {
	fetcher := &stubFetcher{papers: []arxiv.RawPaper{
		rawPaper("2408.00001", "Attention Scaling Laws", "2026-08-20"),
		rawPaper("2408.00002", "Private Aggregation Protocols", "2026-08-19"),
	}}
	sum := &stubSummarizer{}
	runner, _ := newRunner(t, fetcher, sum)

	if _, err := runner.Run(context.Background(), Options{}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	// Second run over the same feed: nothing new, no model calls.
	res, err := runner.Run(context.Background(), Options{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.New != 0 || res.Total != 2 {
		t.Errorf("second run result = %+v", res)
	}
	if sum.calls != 2 {
		t.Errorf("summarizer called %d times across both runs, want 2", sum.calls)
	}
}

func TestRunFetchErrorAbortsWithoutPersisting(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("arxiv unreachable")}
	runner, store := newRunner(t, fetcher, &stubSummarizer{})

	_, err := runner.Run(context.Background(), Options{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "fetching papers") {
		t.Fatalf("error = %v", err)
	}
	if len(store.Papers()) != 0 {
		t.Error("collection changed after a failed fetch")
	}
}

func TestRunSummarizeErrorAbortsWithoutPersisting(t *testing.T) {
	fetcher := &stubFetcher{papers: []arxiv.RawPaper{
		rawPaper("2408.00001", "Attention Scaling Laws", "2026-08-20"),
	}}
	runner, store := newRunner(t, fetcher, &stubSummarizer{err: errors.New("model overloaded")})

	_, err := runner.Run(context.Background(), Options{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "summarizing 2408.00001") {
		t.Fatalf("error = %v", err)
	}
	if len(store.Papers()) != 0 {
		t.Error("collection changed after a failed summarization")
	}
}

func TestRunEmptyFeed(t *testing.T) {
	runner, store := newRunner(t, &stubFetcher{}, &stubSummarizer{})

	res, err := runner.Run(context.Background(), Options{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Fetched != 0 || res.New != 0 {
		t.Errorf("result = %+v", res)
	}
	if len(store.Papers()) != 0 {
		t.Error("empty feed should not touch the collection")
	}
}

func TestRunOptionOverrides(t *testing.T) {
	var seen types.FetchConfig
	fetcher := fetcherFunc(func(_ context.Context, cfg types.FetchConfig) ([]arxiv.RawPaper, error) {
		seen = cfg
		return nil, nil
	})
	store := papers.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	base := types.FetchConfig{Categories: []string{"cs.AI"}, MaxResults: 20, DaysBack: 7}
	runner := NewRunner(fetcher, &stubSummarizer{}, store, base, nil)

	opts := Options{Categories: []string{"cs.CV"}, MaxResults: 5, DaysBack: 2}
	if _, err := runner.Run(context.Background(), opts, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	if len(seen.Categories) != 1 || seen.Categories[0] != "cs.CV" {
		t.Errorf("categories = %v", seen.Categories)
	}
	if seen.MaxResults != 5 || seen.DaysBack != 2 {
		t.Errorf("overrides not applied: %+v", seen)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short stays intact", "Attention Scaling Laws", 50, "Attention Scaling Laws"},
		{"exact length stays intact", "abcde", 5, "abcde"},
		{"ascii cut", "abcdefgh", 5, "abcde..."},
		{"multibyte cut lands on a rune boundary", "深層学習による時系列予測の高速化", 5, "深層学習に..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.n, got)
			}
		})
	}
}

type fetcherFunc func(context.Context, types.FetchConfig) ([]arxiv.RawPaper, error)

func (f fetcherFunc) FetchRecent(ctx context.Context, cfg types.FetchConfig) ([]arxiv.RawPaper, error) {
	return f(ctx, cfg)
}
