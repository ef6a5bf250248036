package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler is the single timing facility shared by the lobby countdown and
// room deletion. Repeating tasks run until Stop; one-shot tasks are keyed so
// that a key has at most one pending task.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

// NewScheduler creates a scheduler whose tasks stop when ctx is cancelled or
// Stop is called.
func NewScheduler(ctx context.Context, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		ctx:     ctx,
		cancel:  cancel,
		log:     logger,
		pending: make(map[string]*time.Timer),
	}
}

// Every runs fn once per interval on its own goroutine. A slow fn delays the
// following run instead of overlapping it.
func (s *Scheduler) Every(interval time.Duration, fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.run("every", fn)
			}
		}
	}()
}

// After schedules fn to run once after delay under key. It returns false and
// schedules nothing if key already has a pending task or the scheduler is
// stopped.
func (s *Scheduler) After(key string, delay time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx.Err() != nil {
		return false
	}
	if _, ok := s.pending[key]; ok {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.pending[key] != timer {
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		s.mu.Unlock()

		s.run(key, fn)
	})
	s.pending[key] = timer
	return true
}

// Cancel drops the pending task for key. It never waits: a task that already
// started keeps running, so tasks must re-check their own preconditions.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.pending[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.pending, key)
	return true
}

// Pending reports whether key has a task waiting to fire.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels every pending one-shot task and waits for repeating tasks to
// return.
func (s *Scheduler) Stop() {
	s.cancel()

	s.mu.Lock()
	for key, timer := range s.pending {
		timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) run(key string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Recovered from panic in scheduled task", "task", key, "panic", r)
		}
	}()
	fn()
}
