// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "time"

// relevanceScore computes the heuristic relevance score for a fetched
// paper. Base 50, plus a recency bonus (up to +30, one point per day
// under 30 days old), an author-count bonus (up to +10, two points per
// author), and an abstract-length bonus (+10 for 500-2000 chars, +5 for
// shorter, nothing for longer). Clamped to [0, 100].
func relevanceScore(published time.Time, authorCount, abstractLen int, now time.Time) float64 {
	score := 50.0

	daysOld := int(now.Sub(published).Hours() / 24)
	if bonus := 30 - daysOld; bonus > 0 {
		score += float64(bonus)
	}

	authorBonus := 2 * authorCount
	if authorBonus > 10 {
		authorBonus = 10
	}
	score += float64(authorBonus)

	switch {
	case abstractLen >= 500 && abstractLen <= 2000:
		score += 10
	case abstractLen < 500:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// categoryLabels maps arXiv category codes to the human-readable labels
// stored on records. Unknown codes fall back to defaultCategoryLabel.
var categoryLabels = map[string]string{
	"cs.AI": "Artificial Intelligence",
	"cs.LG": "Machine Learning",
	"cs.CV": "Computer Vision",
	"cs.CL": "Natural Language Processing",
	"cs.NE": "Neural Networks",
	"cs.RO": "Robotics",
	"cs.CR": "Privacy & Security",
	"cs.DC": "Distributed Computing",
	"cs.SE": "Software Engineering",
}

const defaultCategoryLabel = "Computer Science"

// CategoryLabel maps an arXiv category code to its display label.
func CategoryLabel(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return defaultCategoryLabel
}
