// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/techaware/pkg/types"
)

// Sort modes accepted by Retrieve. "relevant" is an alias for "recent"
// until a real relevance signal exists.
const (
	SortRecent   = "recent"
	SortScore    = "score"
	SortRelevant = "relevant"
)

// DefaultLimit is the page size used when the caller passes none.
const DefaultLimit = 10

// AllCategories is the sentinel category value meaning "no filter".
const AllCategories = "All Categories"

// QueryOptions narrows and orders a collection read. Zero values mean
// "no filter"; Page and Limit below their minimums are normalized.
type QueryOptions struct {
	Search   string
	Tags     []string
	Category string
	Since    string
	Sort     string
	Page     int
	Limit    int
}

// PageResult is one page of a filtered collection read.
type PageResult struct {
	Papers []types.Paper `json:"papers"`
	Total  int           `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
	Pages  int           `json:"pages"`
}

// Retrieve filters, sorts, and paginates the current snapshot. Filters
// apply in a fixed order (search, tags, category, since) before sorting,
// so Total always reflects the filtered count, not the page size.
func (s *Store) Retrieve(opts QueryOptions) PageResult {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := s.filter(opts)
	sortPapers(filtered, opts.Sort)

	total := len(filtered)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return PageResult{
		Papers: filtered[start:end],
		Total:  total,
		Page:   page,
		Limit:  limit,
		Pages:  pages,
	}
}

func (s *Store) filter(opts QueryOptions) []types.Paper {
	list := s.Papers()
	filtered := make([]types.Paper, 0, len(list))
	search := strings.ToLower(opts.Search)

	for _, p := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Abstract), search) {
			continue
		}
		if len(opts.Tags) > 0 && !hasAnyTag(p.Tags, opts.Tags) {
			continue
		}
		if opts.Category != "" && opts.Category != AllCategories && p.Category != opts.Category {
			continue
		}
		if opts.Since != "" && p.PublishedAt < opts.Since {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func sortPapers(list []types.Paper, mode string) {
	switch mode {
	case SortScore:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Score > list[j].Score
		})
	default:
		// recent, relevant, and anything else: newest first.
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PublishedAt > list[j].PublishedAt
		})
	}
}

// Get looks a paper up by internal ID or arXiv ID.
func (s *Store) Get(id string) (types.Paper, error) {
	for _, p := range s.Papers() {
		if p.ID == id || p.ArxivID == id {
			return p, nil
		}
	}
	return types.Paper{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Top returns the n highest-scored papers.
func (s *Store) Top(n int) []types.Paper {
	list := s.Papers()
	sorted := make([]types.Paper, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// AllTags returns every distinct tag across the collection, sorted.
func (s *Store) AllTags() []string {
	seen := make(map[string]bool)
	for _, p := range s.Papers() {
		for _, tag := range p.Tags {
			seen[tag] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
