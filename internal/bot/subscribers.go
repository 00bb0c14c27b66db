// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bot delivers daily research digests over Telegram and manages
// the subscriber list behind them.
package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const subscriptionsFile = "subscriptions.json"

// Subscriber is one Telegram user on the digest list.
type Subscriber struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	SubscribedAt string `json:"subscribed_at"`
}

// Subscribers is the persisted digest list, a JSON object keyed by user
// ID and rewritten wholesale on every change.
type Subscribers struct {
	path string

	mu  sync.Mutex
	set map[string]Subscriber
}

// NewSubscribers creates a list over dataDir/subscriptions.json.
func NewSubscribers(dataDir string) *Subscribers {
	return &Subscribers{
		path: filepath.Join(dataDir, subscriptionsFile),
		set:  make(map[string]Subscriber),
	}
}

// Load reads the persisted list. A missing file means an empty list.
func (s *Subscribers) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.set = make(map[string]Subscriber)
			return nil
		}
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	set := make(map[string]Subscriber)
	if err := json.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.set = set
	return nil
}

// Add puts a subscriber on the list. It reports false when the user was
// already subscribed, in which case nothing is written.
func (s *Subscribers) Add(sub Subscriber) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.set[sub.UserID]; ok {
		return false, nil
	}
	s.set[sub.UserID] = sub
	if err := s.save(); err != nil {
		delete(s.set, sub.UserID)
		return false, err
	}
	return true, nil
}

// Remove drops a subscriber. It reports false when the user was not on
// the list.
func (s *Subscribers) Remove(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.set[userID]
	if !ok {
		return false, nil
	}
	delete(s.set, userID)
	if err := s.save(); err != nil {
		s.set[userID] = sub
		return false, err
	}
	return true, nil
}

// Get returns the subscriber record for a user, if present.
func (s *Subscribers) Get(userID string) (Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.set[userID]
	return sub, ok
}

// Count returns the list size.
func (s *Subscribers) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.set)
}

// IDs returns all subscribed user IDs, sorted.
func (s *Subscribers) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.set))
	for id := range s.set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// save writes the whole list. Callers hold the mutex.
func (s *Subscribers) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.MarshalIndent(s.set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling subscriptions: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
