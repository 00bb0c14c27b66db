// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheduler

import (
	"testing"

	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

type recordingDigester struct {
	got []types.Paper
}

func (d *recordingDigester) SendDigest(list []types.Paper) int {
	d.got = list
	return len(list)
}

func newTestStore(t *testing.T, n int) *papers.Store {
	t.Helper()
	store := papers.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	var list []types.Paper
	for i := 0; i < n; i++ {
		list = append(list, types.Paper{
			ID:          string(rune('a' + i)),
			Title:       "Paper",
			PublishedAt: "2026-08-20",
			Score:       float64(100 - i),
		})
	}
	if err := store.Save(list); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestNewRejectsBadSchedule(t *testing.T) {
	store := newTestStore(t, 0)
	_, err := New(store, &recordingDigester{}, types.BotConfig{DigestSchedule: "not a cron expr"})
	if err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestNewAcceptsDefaultSchedule(t *testing.T) {
	store := newTestStore(t, 0)
	if _, err := New(store, &recordingDigester{}, types.BotConfig{}); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestRunDigestSendsTopPapers(t *testing.T) {
	store := newTestStore(t, 8)
	d := &recordingDigester{}
	s, err := New(store, d, types.BotConfig{DigestSize: 3})
	if err != nil {
		t.Fatal(err)
	}

	s.runDigest()

	if len(d.got) != 3 {
		t.Fatalf("digest got %d papers, want 3", len(d.got))
	}
	// Highest scores first.
	if d.got[0].Score != 100 || d.got[2].Score != 98 {
		t.Errorf("digest scores = %v, %v, %v", d.got[0].Score, d.got[1].Score, d.got[2].Score)
	}
}

func TestRunDigestDefaultSize(t *testing.T) {
	store := newTestStore(t, 8)
	d := &recordingDigester{}
	s, err := New(store, d, types.BotConfig{})
	if err != nil {
		t.Fatal(err)
	}

	s.runDigest()
	if len(d.got) != 5 {
		t.Errorf("digest got %d papers, want the default 5", len(d.got))
	}
}
