// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vinevault/vinevault/internal/logger"
)

// recordingSessionRepo records DeleteExpired calls.
type recordingSessionRepo struct {
	mu      sync.Mutex
	calls   int
	deleted int64
	err     error
}

func (r *recordingSessionRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.deleted, r.err
}

func (r *recordingSessionRepo) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestSessionSweeper_SweepDeletesExpired(t *testing.T) {
	repo := &recordingSessionRepo{deleted: 3}
	s := &sessionSweeper{
		ctx:      context.Background(),
		interval: time.Hour,
		logger:   logger.Nop(),
		now:      time.Now,
	}
	s.deleteExpired = repo.DeleteExpired

	s.sweep()

	if repo.callCount() != 1 {
		t.Fatalf("expected 1 sweep call, got %d", repo.callCount())
	}
}

func TestSessionSweeper_SweepErrorDoesNotPanic(t *testing.T) {
	repo := &recordingSessionRepo{err: errors.New("db gone away")}
	s := &sessionSweeper{
		ctx:      context.Background(),
		interval: time.Hour,
		logger:   logger.Nop(),
		now:      time.Now,
	}
	s.deleteExpired = repo.DeleteExpired

	s.sweep()

	if repo.callCount() != 1 {
		t.Fatalf("expected 1 sweep call, got %d", repo.callCount())
	}
}

func TestSessionSweeper_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := &recordingSessionRepo{}

	s := &sessionSweeper{
		ctx:      ctx,
		interval: 5 * time.Millisecond,
		logger:   logger.Nop(),
		now:      time.Now,
	}
	s.deleteExpired = repo.DeleteExpired

	done := make(chan struct{})
	go func() {
		s.loop()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
