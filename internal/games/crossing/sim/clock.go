package sim

import (
	"fmt"
	"time"
)

// Timer is a periodic callback owned by a Clock. Timers are created stopped.
type Timer struct {
	name     string
	interval time.Duration
	elapsed  time.Duration
	running  bool
	fn       func()
}

// Start (re)arms the timer; the first fire is one full interval from now.
func (t *Timer) Start() {
	t.elapsed = 0
	t.running = true
}

// Stop disarms the timer. A stopped timer keeps no progress.
func (t *Timer) Stop() {
	t.running = false
	t.elapsed = 0
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool { return t.running }

// Interval returns the period between fires.
func (t *Timer) Interval() time.Duration { return t.interval }

// Name returns the label given at registration.
func (t *Timer) Name() string { return t.name }

// Clock is a manually advanced scheduler. Nothing happens between calls to
// Advance, so simulations built on it are deterministic.
type Clock struct {
	timers []*Timer
	now    time.Duration
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Every registers a stopped timer that calls fn once per interval.
// It panics on a non-positive interval.
func (c *Clock) Every(name string, interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("sim: timer %q interval must be positive, got %v", name, interval))
	}
	t := &Timer{name: name, interval: interval, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration { return c.now }

// Advance moves time forward by dt and fires every timer that comes due,
// one at a time in deadline order. Timers due at the same instant fire in
// registration order. Callbacks may start or stop timers; a timer stopped by
// an earlier callback does not fire.
func (c *Clock) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	remaining := dt
	for {
		next, wait := c.nextDue(remaining)
		if next == nil {
			c.pass(remaining)
			return
		}
		c.pass(wait)
		remaining -= wait
		next.elapsed = 0
		next.fn()
	}
}

// nextDue finds the running timer that fires soonest within limit.
func (c *Clock) nextDue(limit time.Duration) (*Timer, time.Duration) {
	var next *Timer
	var wait time.Duration
	for _, t := range c.timers {
		if !t.running {
			continue
		}
		left := t.interval - t.elapsed
		if left > limit {
			continue
		}
		if next == nil || left < wait {
			next, wait = t, left
		}
	}
	return next, wait
}

func (c *Clock) pass(d time.Duration) {
	c.now += d
	for _, t := range c.timers {
		if t.running {
			t.elapsed += d
		}
	}
}
