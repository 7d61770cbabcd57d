package mock

import (
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/docfinder"
)

// Clock is a manual clock whose AfterFunc only fires on Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*clockTimer
}

type clockTimer struct {
	clock   *Clock
	at      time.Duration
	fn      func()
	stopped bool
}

// AfterFunc schedules fn to run once the clock has advanced by d.
// It satisfies docfinder.AfterFunc.
func (c *Clock) AfterFunc(d time.Duration, fn func()) docfinder.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &clockTimer{clock: c, at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and runs, in due order, every
// timer that came due. Callbacks run on the calling goroutine.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due, pending []*clockTimer
	for _, t := range c.timers {
		if t.stopped {
			continue
		}
		if t.at <= c.now {
			t.stopped = true
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	c.timers = pending
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *clockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
