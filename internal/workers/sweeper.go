// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package workers

import (
	"context"
	"time"

	"github.com/vinevault/vinevault/internal/logger"
	"github.com/vinevault/vinevault/internal/metrics"
	"github.com/vinevault/vinevault/internal/store"
)

// sessionSweeper periodically deletes expired session records so the store
// does not accumulate tokens that the provider no longer honors.
type sessionSweeper struct {
	ctx      context.Context
	interval time.Duration
	logger   *logger.Logger

	// deleteExpired and now are fields so tests can substitute them.
	deleteExpired func(ctx context.Context, now time.Time) (int64, error)
	now           func() time.Time
}

// NewSessionSweeper constructs a sweeper that runs until ctx is cancelled.
func NewSessionSweeper(ctx context.Context, sessions store.SessionRepository, interval time.Duration, log *logger.Logger) Worker {
	return &sessionSweeper{
		ctx:           ctx,
		interval:      interval,
		logger:        log,
		deleteExpired: sessions.DeleteExpired,
		now:           time.Now,
	}
}

// Run starts the sweep loop in its own goroutine.
func (s *sessionSweeper) Run() {
	go s.loop()
}

func (s *sessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debug().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *sessionSweeper) sweep() {
	deleted, err := s.deleteExpired(s.ctx, s.now())
	if err != nil {
		s.logger.Err(err).Msg("session sweep failed")
		return
	}

	if deleted > 0 {
		metrics.SessionsSweptTotal.Add(float64(deleted))
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}
