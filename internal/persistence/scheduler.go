package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/thenoetrevino/kanbanned/internal/models"
)

// Timer is the part of *time.Timer the scheduler needs
type Timer interface {
	Stop() bool
}

// AfterFunc starts a timer that calls f once d has elapsed
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SaveFunc performs one immediate save
type SaveFunc func(ctx context.Context, data models.AppData) SaveResult

type pendingSave struct {
	data       models.AppData
	onComplete func(SaveResult)
}

// Scheduler coalesces bursts of saves into one trailing-edge write.
// At most one timer is outstanding; each Schedule replaces the pending
// value and restarts it.
type Scheduler struct {
	save      SaveFunc
	afterFunc AfterFunc

	// writeMu serialises writes so the newest pending value is always
	// the last one to reach the store
	writeMu sync.Mutex

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending *pendingSave
}

// NewScheduler creates a scheduler that writes through save. A nil
// afterFunc uses time.AfterFunc.
func NewScheduler(save SaveFunc, afterFunc AfterFunc) *Scheduler {
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	return &Scheduler{save: save, afterFunc: afterFunc}
}

// Schedule records data as the pending value and restarts the delay.
// onComplete, if set, receives the result when the timer fires.
func (s *Scheduler) Schedule(data models.AppData, onComplete func(SaveResult), delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.pending = &pendingSave{data: data, onComplete: onComplete}
	gen := s.gen
	s.timer = s.afterFunc(delay, func() { s.fire(gen) })
}

// fire runs when a timer elapses. A stale generation means the timer was
// replaced or cancelled after it had already started.
func (s *Scheduler) fire(gen uint64) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if gen != s.gen || s.pending == nil {
		s.mu.Unlock()
		return
	}
	p := s.pending
	s.pending = nil
	s.timer = nil
	s.gen++
	s.mu.Unlock()

	res := s.save(context.Background(), p.data)
	if p.onComplete != nil {
		p.onComplete(res)
	}
}

// Flush cancels the timer and writes the pending value now. ok is false
// when nothing was pending. The pending onComplete is not invoked; the
// caller gets the result directly.
func (s *Scheduler) Flush(ctx context.Context) (res SaveResult, ok bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.stopLocked()
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if p == nil {
		return SaveResult{}, false
	}
	return s.save(ctx, p.data), true
}

// Cancel drops the pending value without writing it
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.pending = nil
}

// Pending reports whether a value is waiting to be written
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}
