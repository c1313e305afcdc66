// Package loop drives a game at a fixed cadence.
package loop

import (
	"context"
	"time"
)

// Task runs one step. Returning false cancels the schedule.
type Task func() bool

// Scheduler runs a Task once per interval. It is polled by the caller's own
// loop, so a task always finishes before the next one can start.
type Scheduler struct {
	interval time.Duration
	task     Task
	next     time.Time
	started  bool
	stopped  bool
	runs     int
}

func NewScheduler(interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
	}
}

// Start arms the schedule so the first run is due one interval after now.
// Polling an unstarted scheduler starts it.
func (s *Scheduler) Start(now time.Time) {
	if s.started {
		return
	}
	s.started = true
	s.next = now.Add(s.interval)
}

// Poll runs the task if it is due and reports whether it ran. At most one
// run happens per call; a caller that fell more than an interval behind is
// resynchronised rather than replaying the missed runs.
func (s *Scheduler) Poll(now time.Time) bool {
	if s.stopped {
		return false
	}
	if !s.started {
		s.Start(now)
		return false
	}
	if now.Before(s.next) {
		return false
	}

	s.runs++
	if !s.task() {
		s.stopped = true
		return true
	}

	s.next = s.next.Add(s.interval)
	if !now.Before(s.next) {
		s.next = now.Add(s.interval)
	}
	return true
}

// Stop cancels the schedule. The task never runs again.
func (s *Scheduler) Stop() {
	s.stopped = true
}

func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Runs returns how many times the task has been run.
func (s *Scheduler) Runs() int {
	return s.runs
}

// Interval returns the time between runs.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run polls on every value received from wake until ctx is cancelled, wake
// is closed or the task stops the schedule. Functions received from jobs run
// on the same goroutine as the task; jobs may be nil.
func (s *Scheduler) Run(ctx context.Context, wake <-chan time.Time, jobs <-chan func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-jobs:
			if job != nil {
				job()
			}
		case now, ok := <-wake:
			if !ok {
				return nil
			}
			s.Poll(now)
			if s.stopped {
				return nil
			}
		}
	}
}
