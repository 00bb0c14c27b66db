// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/techaware/pkg/types"
)

func TestPrintPaperTableTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("深", 60)
	var buf bytes.Buffer
	printPaperTable(&buf, []types.Paper{{
		ArxivID:     "2408.00001",
		Title:       long,
		Category:    "Machine Learning",
		PublishedAt: "2026-08-20",
		Score:       95,
	}})

	out := buf.String()
	if !utf8.ValidString(out) {
		t.Fatalf("table output is not valid UTF-8: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("深", 47)+"...") {
		t.Errorf("title not truncated to 47 runes:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("深", 48)) {
		t.Errorf("truncated title kept more than 47 runes:\n%s", out)
	}
}

func TestPrintPaperTableKeepsShortTitles(t *testing.T) {
	var buf bytes.Buffer
	printPaperTable(&buf, []types.Paper{{
		ArxivID:     "2408.00002",
		Title:       "Private Aggregation Protocols",
		Category:    "Privacy & Security",
		PublishedAt: "2026-08-19",
		Score:       88,
	}})

	if !strings.Contains(buf.String(), "Private Aggregation Protocols") {
		t.Errorf("short title altered:\n%s", buf.String())
	}
}
