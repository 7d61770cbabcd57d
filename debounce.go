package docfinder

import (
	"sync"
	"time"
)

// DefaultDebounceInterval is how long input must stay quiet before
// suggestions are computed.
const DefaultDebounceInterval = 300 * time.Millisecond

// Timer is a pending call scheduled by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d. It mirrors time.AfterFunc
// so tests can substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

// TimeAfterFunc is the AfterFunc backed by the runtime timer.
func TimeAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer coalesces bursts of triggers into a single call that runs once
// the triggers stop for the configured interval.
type Debouncer struct {
	mu        sync.Mutex
	interval  time.Duration
	afterFunc AfterFunc
	timer     Timer
	gen       uint64
}

// NewDebouncer returns a Debouncer waiting interval after the last trigger.
// A nil afterFunc uses TimeAfterFunc.
func NewDebouncer(interval time.Duration, afterFunc AfterFunc) *Debouncer {
	if afterFunc == nil {
		afterFunc = TimeAfterFunc
	}
	return &Debouncer{interval: interval, afterFunc: afterFunc}
}

// Trigger schedules fn, discarding any call still pending from an earlier
// trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	gen := d.gen
	d.timer = d.afterFunc(d.interval, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		// A timer that lost the race with Stop or a newer Trigger is stale.
		if current {
			fn()
		}
	})
}

// Stop discards the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
