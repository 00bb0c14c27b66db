// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers owns the persisted paper collection: loading and saving
// the flat JSON file, merging freshly ingested batches, and answering
// filtered, sorted, paginated queries.
package papers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/techaware/pkg/types"
)

const papersFile = "papers.json"

// DefaultWindowSize bounds the collection to the most recent records.
const DefaultWindowSize = 100

// ErrNotFound reports a failed single-record lookup. Distinct from an
// empty query result.
var ErrNotFound = errors.New("paper not found")

// Store owns the in-memory paper collection backing all reads. The
// collection is an immutable snapshot swapped wholesale on load and
// save, so concurrent readers never observe a partially built list.
// Writers (ingestion runs) are expected to be serialized externally;
// two concurrent runs race on the file with last-writer-wins.
type Store struct {
	path     string
	window   int
	snapshot atomic.Pointer[[]types.Paper]
	saveMu   sync.Mutex
}

// NewStore creates a Store over dataDir/papers.json. The collection is
// empty until Load is called.
func NewStore(cfg types.StoreConfig) *Store {
	window := cfg.WindowSize
	if window <= 0 {
		window = DefaultWindowSize
	}
	s := &Store{
		path:   filepath.Join(cfg.DataDir, papersFile),
		window: window,
	}
	empty := []types.Paper{}
	s.snapshot.Store(&empty)
	return s
}

// Path returns the location of the persisted collection.
func (s *Store) Path() string { return s.path }

// Window returns the retained-window bound.
func (s *Store) Window() int { return s.window }

// Load discards the in-memory collection and rebuilds it wholesale from
// the persisted file. A missing or unreadable file is recovered locally:
// the built-in seed collection is installed and a warning is written to
// w. Load never fails.
func (s *Store) Load(w io.Writer) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: reading %s: %v; using seed collection\n", s.path, err)
		} else {
			fmt.Fprintf(w, "no collection at %s; using seed collection\n", s.path)
		}
		s.install(seedPapers())
		return
	}

	var list []types.Paper
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(w, "warning: parsing %s: %v; using seed collection\n", s.path, err)
		s.install(seedPapers())
		return
	}
	s.install(list)
}

// Reload is Load under its API-facing name.
func (s *Store) Reload(w io.Writer) { s.Load(w) }

// Save overwrites the persisted file with the given collection and swaps
// it in as the new in-memory snapshot. The write goes through a temp
// file and rename so the file on disk is always either the old or the
// new collection, never a partial one.
func (s *Store) Save(list []types.Paper) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	s.install(list)
	return nil
}

// Papers returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Papers() []types.Paper {
	return *s.snapshot.Load()
}

func (s *Store) install(list []types.Paper) {
	if list == nil {
		list = []types.Paper{}
	}
	s.snapshot.Store(&list)
}

// Status summarizes the persisted collection for the ingestion status
// endpoint.
type Status struct {
	PapersCount int       `json:"papers_count"`
	LatestPaper string    `json:"latest_paper,omitempty"`
	Categories  []string  `json:"categories"`
	DateRange   DateRange `json:"date_range"`
}

// DateRange holds the earliest and latest publication dates in the
// collection.
type DateRange struct {
	Earliest string `json:"earliest,omitempty"`
	Latest   string `json:"latest,omitempty"`
}

// Status reports collection statistics.
func (s *Store) Status() Status {
	list := s.Papers()
	st := Status{PapersCount: len(list), Categories: []string{}}
	if len(list) == 0 {
		return st
	}

	st.LatestPaper = list[0].Title
	seen := make(map[string]bool)
	for _, p := range list {
		if !seen[p.Category] {
			seen[p.Category] = true
			st.Categories = append(st.Categories, p.Category)
		}
		if st.DateRange.Earliest == "" || p.PublishedAt < st.DateRange.Earliest {
			st.DateRange.Earliest = p.PublishedAt
		}
		if p.PublishedAt > st.DateRange.Latest {
			st.DateRange.Latest = p.PublishedAt
		}
	}
	return st
}
