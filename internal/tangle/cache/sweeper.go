package cache

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/clock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSweepSchedule runs the sweeper once a minute.
const DefaultSweepSchedule = "@every 60s"

type (
	// Sweepable is a cache that can drop stale entries.
	Sweepable interface {
		Sweep(now time.Time) (payloads, hashes int)
	}
)

// Sweeper periodically purges stale cache entries.
type Sweeper struct {
	target Sweepable
	clock  clock.Clock
	logger *zap.Logger
	cron   *cron.Cron
}

// NewSweeper schedules target.Sweep on the given cron schedule. The sweeper is idle until Start.
func NewSweeper(target Sweepable, clk clock.Clock, schedule string, logger *zap.Logger) (*Sweeper, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	s := &Sweeper{
		target: target,
		clock:  clk,
		logger: logger,
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("schedule sweeper %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins the schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce performs a single sweep pass.
func (s *Sweeper) RunOnce() {
	started := s.clock.Now()
	payloads, hashes := s.target.Sweep(started)
	if payloads > 0 || hashes > 0 {
		s.logger.Debug("evicted stale cache entries",
			zap.Int("payloads", payloads),
			zap.Int("hash_sets", hashes),
		)
	}
}
