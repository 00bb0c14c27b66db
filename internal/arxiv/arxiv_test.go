// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdiddy/techaware/pkg/types"
)

func testCfg() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		Categories:      []string{"cs.AI", "cs.LG"},
		MaxResults:      20,
		DaysBack:        7,
		RequestInterval: time.Millisecond,
	}
}

// --- query building ---

func TestBuildCategoryQuery(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{"single", []string{"cs.AI"}, "cat:cs.AI"},
		{"multiple", []string{"cs.AI", "cs.LG", "cs.CV"}, "cat:cs.AI OR cat:cs.LG OR cat:cs.CV"},
		{"skips blanks", []string{"cs.AI", " ", ""}, "cat:cs.AI"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildCategoryQuery(tt.categories); got != tt.want {
				t.Errorf("buildCategoryQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- ID extraction ---

func TestExtractArxivID(t *testing.T) {
	tests := []struct {
		name  string
		idURL string
		want  string
	}{
		{"with version", "http://arxiv.org/abs/2401.12345v1", "2401.12345"},
		{"higher version", "http://arxiv.org/abs/2401.12345v12", "2401.12345"},
		{"no version", "http://arxiv.org/abs/2401.12345", "2401.12345"},
		{"not an abs url", "http://example.com/paper/123", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractArxivID(tt.idURL); got != tt.want {
				t.Errorf("extractArxivID(%q) = %q, want %q", tt.idURL, got, tt.want)
			}
		})
	}
}

// --- scoring ---

func TestRelevanceScore(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	midAbstract := 1000 // in the [500, 2000] sweet spot

	tests := []struct {
		name        string
		published   time.Time
		authors     int
		abstractLen int
		want        float64
	}{
		// 50 base + 30 recency + 10 authors + 10 abstract, clamped to 100.
		{"fresh paper clamps at 100", now, 5, midAbstract, 100},
		// 50 + (30-10) + 4 + 10.
		{"ten days old", now.AddDate(0, 0, -10), 2, midAbstract, 84},
		// 50 + 0 + 2 + 5: recency bonus floors at zero.
		{"old paper", now.AddDate(0, 0, -60), 1, 300, 57},
		// Long abstracts get no length bonus: 50 + 30 + 2 + 0 = 82.
		{"long abstract", now, 1, 5000, 82},
		// Author bonus caps at 10: 50 + 30 + 10 + 10 = 100.
		{"many authors", now, 40, midAbstract, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relevanceScore(tt.published, tt.authors, tt.abstractLen, now)
			if got != tt.want {
				t.Errorf("relevanceScore() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %v outside [0, 100]", got)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel("cs.CV"); got != "Computer Vision" {
		t.Errorf("CategoryLabel(cs.CV) = %q", got)
	}
	if got := CategoryLabel("math.CO"); got != "Computer Science" {
		t.Errorf("unknown code should map to default, got %q", got)
	}
}

// --- FetchRecent against a stub API ---

func atomFixture(now time.Time) string {
	recent := now.AddDate(0, 0, -2).Format(time.RFC3339)
	stale := now.AddDate(0, 0, -30).Format(time.RFC3339)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.12345v2</id>
    <title>Efficient  Attention
      Mechanisms</title>
    <summary> We propose a novel attention mechanism. </summary>
    <published>%s</published>
    <author><name>Smith, J.</name></author>
    <author><name>Johnson, A.</name></author>
    <link href="http://arxiv.org/pdf/2401.12345v2" title="pdf" type="application/pdf"/>
    <primary_category term="cs.LG"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2312.00001v1</id>
    <title>An Older Paper</title>
    <summary>Outside the lookback window.</summary>
    <published>%s</published>
    <author><name>Chen, L.</name></author>
    <primary_category term="cs.AI"/>
  </entry>
  <entry>
    <id>http://example.com/not-arxiv</id>
    <title>Malformed Entry</title>
    <summary>No arXiv ID.</summary>
    <published>%s</published>
  </entry>
</feed>`, recent, stale, recent)
}

func TestFetchRecent(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		fmt.Fprint(w, atomFixture(time.Now().UTC()))
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	c := NewClient(testCfg())
	papers, err := c.FetchRecent(context.Background(), testCfg())
	if err != nil {
		t.Fatalf("FetchRecent() error = %v", err)
	}

	if gotQuery != "cat:cs.AI OR cat:cs.LG" {
		t.Errorf("search_query = %q", gotQuery)
	}

	// The stale entry and the malformed entry are dropped.
	if len(papers) != 1 {
		t.Fatalf("len(papers) = %d, want 1", len(papers))
	}

	p := papers[0]
	if p.ArxivID != "2401.12345" {
		t.Errorf("ArxivID = %q, want version suffix stripped", p.ArxivID)
	}
	if p.Title != "Efficient Attention Mechanisms" {
		t.Errorf("Title = %q, want collapsed whitespace", p.Title)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Smith, J." {
		t.Errorf("Authors = %v", p.Authors)
	}
	if p.CategoryCode != "cs.LG" {
		t.Errorf("CategoryCode = %q", p.CategoryCode)
	}
	if p.PDFURL != "http://arxiv.org/pdf/2401.12345v2" {
		t.Errorf("PDFURL = %q", p.PDFURL)
	}
	if p.Score < 0 || p.Score > 100 {
		t.Errorf("Score = %v outside [0, 100]", p.Score)
	}
}

func TestTopToday(t *testing.T) {
	now := time.Now().UTC()
	recent := now.Add(-2 * time.Hour).Format(time.RFC3339)
	fixture := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <title>Solo Author Paper</title>
    <summary>Short.</summary>
    <published>%s</published>
    <author><name>Doe, J.</name></author>
    <primary_category term="cs.AI"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00002v1</id>
    <title>Big Team Paper</title>
    <summary>Short.</summary>
    <published>%s</published>
    <author><name>A</name></author>
    <author><name>B</name></author>
    <author><name>C</name></author>
    <author><name>D</name></author>
    <author><name>E</name></author>
    <primary_category term="cs.AI"/>
  </entry>
</feed>`, recent, recent)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, fixture)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	c := NewClient(testCfg())
	top, err := c.TopToday(context.Background(), testCfg(), 1)
	if err != nil {
		t.Fatalf("TopToday() error = %v", err)
	}

	if len(top) != 1 {
		t.Fatalf("len = %d, want 1", len(top))
	}
	// More authors means a higher score, so the team paper wins.
	if top[0].ArxivID != "2401.00002" {
		t.Errorf("top paper = %s", top[0].ArxivID)
	}
}

func TestFetchRecentServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	defer func() { arxivAPIBase = old }()

	c := NewClient(testCfg())
	if _, err := c.FetchRecent(context.Background(), testCfg()); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestFetchRecentNoCategories(t *testing.T) {
	cfg := testCfg()
	cfg.Categories = nil
	c := NewClient(cfg)
	if _, err := c.FetchRecent(context.Background(), cfg); err == nil {
		t.Fatal("expected error for empty category list")
	}
}
