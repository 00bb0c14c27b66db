// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the TechAware pipeline.
package types

// Paper is one enriched research-paper record. The JSON field names are
// the on-disk contract for data/papers.json and the API responses.
type Paper struct {
	// ID is the stable record identifier, derived from the arXiv ID.
	ID string `json:"id" yaml:"id"`

	// ArxivID is the arXiv identifier without version suffix (e.g. "2401.12345").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Category is the human-readable category label mapped from the
	// arXiv category code (e.g. "Machine Learning").
	Category string `json:"category" yaml:"category"`

	// PublishedAt is the publication date in YYYY-MM-DD form. The
	// collection is ordered by comparing these strings directly.
	PublishedAt string `json:"published_at" yaml:"published_at"`

	// PDFURL is the source document URL.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	// SummaryShort is the AI-generated summary of the abstract.
	SummaryShort string `json:"summary_short" yaml:"summary_short"`

	// ImpactSuggestions holds up to two category-derived impact strings.
	ImpactSuggestions []string `json:"impact_suggestions" yaml:"impact_suggestions"`

	// Tags holds 1-5 keyword-derived tags. Never empty; enrichment falls
	// back to a single default tag when nothing matches.
	Tags []string `json:"tags" yaml:"tags"`

	// Score is the relevance score in [0, 100], computed at fetch time
	// from recency, author count, and abstract length.
	Score float64 `json:"score" yaml:"score"`
}
