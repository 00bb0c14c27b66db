// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv fetches recent paper metadata from the arXiv API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/techaware/internal/httputil"
	"github.com/pdiddy/techaware/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

const dateFmt = "2006-01-02"

// RawPaper is one fetched arXiv entry before enrichment.
type RawPaper struct {
	ArxivID      string
	Title        string
	Authors      []string
	Abstract     string
	CategoryCode string
	PublishedAt  string
	PDFURL       string
	Score        float64
}

// Client queries the arXiv API. Requests are spaced by a rate limiter per
// the arXiv API terms of use, and 429 responses are retried with backoff.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// NewClient builds a Client from the fetch configuration.
func NewClient(cfg types.FetchConfig) *Client {
	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		userAgent:  cfg.UserAgent,
	}
}

// FetchRecent queries arXiv for papers in the configured categories,
// sorted by submission date descending, and drops entries published
// before the lookback window. Each returned record carries a computed
// relevance score. Errors propagate; a failed fetch is fatal to the
// ingestion run that requested it.
func (c *Client) FetchRecent(ctx context.Context, cfg types.FetchConfig) ([]RawPaper, error) {
	q := buildCategoryQuery(cfg.Categories)
	if q == "" {
		return nil, fmt.Errorf("no arXiv categories configured")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}
	daysBack := cfg.DaysBack
	if daysBack <= 0 {
		daysBack = 7
	}

	reqURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d&sortBy=submittedDate&sortOrder=descending",
		arxivAPIBase, url.QueryEscape(q), maxResults)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -daysBack)

	var papers []RawPaper
	for _, entry := range feed.Entries {
		arxivID := extractArxivID(entry.ID)
		if arxivID == "" {
			continue
		}

		published, parseErr := time.Parse(time.RFC3339, entry.Published)
		if parseErr != nil || published.Before(cutoff) {
			continue
		}

		p := RawPaper{
			ArxivID:      arxivID,
			Title:        strings.Join(strings.Fields(entry.Title), " "),
			Abstract:     strings.TrimSpace(entry.Summary),
			CategoryCode: entry.PrimaryCategory.Term,
			PublishedAt:  published.Format(dateFmt),
			PDFURL:       pdfLink(entry, arxivID),
		}
		for _, a := range entry.Authors {
			p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
		}
		p.Score = relevanceScore(published, len(p.Authors), len(p.Abstract), now)

		papers = append(papers, p)
	}
	return papers, nil
}

// TopToday fetches papers published in the last day and returns the n
// highest scored.
func (c *Client) TopToday(ctx context.Context, cfg types.FetchConfig, n int) ([]RawPaper, error) {
	cfg.DaysBack = 1
	papers, err := c.FetchRecent(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].Score > papers[j].Score
	})
	if n > 0 && n < len(papers) {
		papers = papers[:n]
	}
	return papers, nil
}

// buildCategoryQuery constructs the search_query parameter, e.g.
// "cat:cs.AI OR cat:cs.LG".
func buildCategoryQuery(categories []string) string {
	var parts []string
	for _, cat := range categories {
		cat = strings.TrimSpace(cat)
		if cat != "" {
			parts = append(parts, "cat:"+cat)
		}
	}
	return strings.Join(parts, " OR ")
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID              string        `xml:"id"`
	Title           string        `xml:"title"`
	Summary         string        `xml:"summary"`
	Published       string        `xml:"published"`
	Authors         []arxivAuthor `xml:"author"`
	Links           []arxivLink   `xml:"link"`
	PrimaryCategory arxivCategory `xml:"primary_category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// pdfLink returns the entry's PDF link, falling back to the canonical
// arxiv.org URL derived from the ID.
func pdfLink(entry arxivEntry, arxivID string) string {
	for _, l := range entry.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			return l.Href
		}
	}
	return "https://arxiv.org/pdf/" + arxivID
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2401.12345v1" → "2401.12345").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
