// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich turns fetched paper metadata into enriched records:
// an AI-generated summary plus keyword-derived category, impact, and tags.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/techaware/pkg/types"
)

const (
	defaultModel         = "claude-sonnet-4-5-20250929"
	defaultMaxInputChars = 1024
	defaultMaxTokens     = 512
)

const summarySystemPrompt = `You summarize research-paper abstracts for a general technical audience.
Write two to three plain-language sentences covering the problem, the approach,
and the headline result. Respond with the summary only.`

// Summarizer produces a short summary of a paper abstract. Implementations
// wrap an external model; tests supply a stub.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ClaudeSummarizer summarizes text with the Anthropic API. The client is
// created once in the constructor and reused for every call.
type ClaudeSummarizer struct {
	client        anthropic.Client
	model         string
	maxInputChars int
	maxTokens     int
}

// NewClaudeSummarizer builds a summarizer from the configuration. The API
// key is required; model and bounds fall back to defaults.
func NewClaudeSummarizer(cfg types.SummarizerConfig) (*ClaudeSummarizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required (set .secrets/anthropic-api-key or summarizer.api_key)")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxInput := cfg.MaxInputChars
	if maxInput <= 0 {
		maxInput = defaultMaxInputChars
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &ClaudeSummarizer{
		client:        anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:         model,
		maxInputChars: maxInput,
		maxTokens:     maxTokens,
	}, nil
}

// Summarize submits the text (truncated to the configured bound) and
// returns the model's summary.
func (s *ClaudeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("nothing to summarize")
	}
	if len(text) > s.maxInputChars {
		text = text[:s.maxInputChars]
	}

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: summarySystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarization call: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	summary := strings.TrimSpace(out.String())
	if summary == "" {
		return "", fmt.Errorf("model returned an empty summary")
	}
	return summary, nil
}
