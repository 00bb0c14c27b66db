// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"sort"

	"github.com/pdiddy/techaware/pkg/types"
)

// MergeSummary counts the outcome of folding a batch into the collection.
type MergeSummary struct {
	New   int `json:"new"`
	Total int `json:"total"`
}

// Merge folds a freshly ingested batch into the existing collection.
// Records are deduplicated by ID with the existing record winning, the
// result is sorted newest first, and the collection is truncated to the
// window bound. Neither input slice is modified.
func Merge(existing, batch []types.Paper, window int) ([]types.Paper, MergeSummary) {
	if window <= 0 {
		window = DefaultWindowSize
	}

	merged := make([]types.Paper, 0, len(existing)+len(batch))
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		merged = append(merged, p)
		seen[p.ID] = true
	}

	added := 0
	for _, p := range batch {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
		added++
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].PublishedAt != merged[j].PublishedAt {
			return merged[i].PublishedAt > merged[j].PublishedAt
		}
		return merged[i].ID < merged[j].ID
	})

	if len(merged) > window {
		merged = merged[:window]
	}
	return merged, MergeSummary{New: added, Total: len(merged)}
}
