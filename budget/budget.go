// Package budget provides the wall-clock collaborator of every search: a
// Clock started once per process (or per run) that answers "how long have we
// been going" and "must we stop now".
//
// A Clock has an optional global deadline and can be stopped early from
// another goroutine (signal handlers do this). Engines add their own,
// shorter sub-deadline per call and test it with SubDeadlineReached.
package budget

import (
	"sync/atomic"
	"time"
)

// Clock is safe for concurrent use.
type Clock struct {
	start    time.Time
	deadline time.Time // zero means no global limit
	stopped  atomic.Bool
	now      func() time.Time
}

// New starts a clock. limit <= 0 disables the global deadline.
func New(limit time.Duration) *Clock {
	return newClock(limit, time.Now)
}

func newClock(limit time.Duration, now func() time.Time) *Clock {
	c := &Clock{start: now(), now: now}
	if limit > 0 {
		c.deadline = c.start.Add(limit)
	}
	return c
}

// Start returns the instant the clock was started.
func (c *Clock) Start() time.Time { return c.start }

// Elapsed returns the time since Start.
func (c *Clock) Elapsed() time.Duration { return c.now().Sub(c.start) }

// Deadline returns the global deadline and whether one is set.
func (c *Clock) Deadline() (time.Time, bool) { return c.deadline, !c.deadline.IsZero() }

// DeadlineReached reports a stopped clock or an expired global deadline.
func (c *Clock) DeadlineReached() bool {
	if c.stopped.Load() {
		return true
	}
	return !c.deadline.IsZero() && !c.now().Before(c.deadline)
}

// SubDeadline returns now+d capped by the global deadline. d <= 0 yields the
// global deadline itself (zero when there is none).
func (c *Clock) SubDeadline(d time.Duration) time.Time {
	if d <= 0 {
		return c.deadline
	}
	sub := c.now().Add(d)
	if !c.deadline.IsZero() && c.deadline.Before(sub) {
		return c.deadline
	}
	return sub
}

// SubDeadlineReached reports DeadlineReached or an expired explicit deadline.
// A zero t only consults the global deadline.
func (c *Clock) SubDeadlineReached(t time.Time) bool {
	if c.DeadlineReached() {
		return true
	}
	return !t.IsZero() && !c.now().Before(t)
}

// Stop makes every later DeadlineReached call return true.
func (c *Clock) Stop() { c.stopped.Store(true) }

// Stopped reports whether Stop was called.
func (c *Clock) Stopped() bool { return c.stopped.Load() }
