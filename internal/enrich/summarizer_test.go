// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"testing"

	"github.com/pdiddy/techaware/pkg/types"
)

func TestNewClaudeSummarizerRequiresAPIKey(t *testing.T) {
	if _, err := NewClaudeSummarizer(types.SummarizerConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewClaudeSummarizerDefaults(t *testing.T) {
	s, err := NewClaudeSummarizer(types.SummarizerConfig{
		AIConfig: types.AIConfig{APIKey: "test-key"},
	})
	if err != nil {
		t.Fatalf("NewClaudeSummarizer() error = %v", err)
	}

	if s.model != defaultModel {
		t.Errorf("model = %q, want %q", s.model, defaultModel)
	}
	if s.maxInputChars != defaultMaxInputChars || s.maxTokens != defaultMaxTokens {
		t.Errorf("bounds = %d, %d", s.maxInputChars, s.maxTokens)
	}
}

func TestNewClaudeSummarizerOverrides(t *testing.T) {
	s, err := NewClaudeSummarizer(types.SummarizerConfig{
		AIConfig:      types.AIConfig{APIKey: "test-key", Model: "claude-haiku-4-5"},
		MaxInputChars: 2048,
		MaxTokens:     256,
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.model != "claude-haiku-4-5" || s.maxInputChars != 2048 || s.maxTokens != 256 {
		t.Errorf("config not applied: %q, %d, %d", s.model, s.maxInputChars, s.maxTokens)
	}
}

func TestSummarizeRejectsEmptyInput(t *testing.T) {
	s, err := NewClaudeSummarizer(types.SummarizerConfig{
		AIConfig: types.AIConfig{APIKey: "test-key"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Summarize(context.Background(), "   "); err == nil {
		t.Error("expected error for blank input")
	}
}
