// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scheduler triggers the daily digest on a cron schedule.
package scheduler

import (
	"fmt"
	"time"

	"github.com/phuslu/log"
	"github.com/robfig/cron/v3"

	"github.com/pdiddy/techaware/internal/papers"
	"github.com/pdiddy/techaware/pkg/types"
)

// DefaultSchedule fires at 09:00 UTC every day.
const DefaultSchedule = "0 9 * * *"

const defaultDigestSize = 5

// Digester delivers a digest to its audience. *bot.Bot is the
// production implementation.
type Digester interface {
	SendDigest(list []types.Paper) int
}

// Scheduler runs the digest job on a UTC cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	store      *papers.Store
	digester   Digester
	digestSize int
}

// New builds a scheduler from the bot configuration. The schedule is
// validated up front so a bad cron expression fails at startup, not at
// nine the next morning.
func New(store *papers.Store, digester Digester, cfg types.BotConfig) (*Scheduler, error) {
	schedule := cfg.DigestSchedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	size := cfg.DigestSize
	if size <= 0 {
		size = defaultDigestSize
	}

	s := &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		store:      store,
		digester:   digester,
		digestSize: size,
	}
	if _, err := s.cron.AddFunc(schedule, s.runDigest); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	log.Info().Str("schedule", schedule).Int("digest_size", size).Msg("digest scheduler configured")
	return s, nil
}

// Start begins firing jobs. It returns immediately.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runDigest() {
	top := s.store.Top(s.digestSize)
	sent := s.digester.SendDigest(top)
	log.Info().Int("papers", len(top)).Int("sent", sent).Msg("digest job finished")
}
