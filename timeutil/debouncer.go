package timeutil

import (
	"time"

	"github.com/petermattis/goid"
	"go.uber.org/atomic"

	"github.com/inviewkit/inview.go/syncutils"
)

// Debouncer suppresses rapid repeated signals and only lets the last one through once a quiet
// period of the configured interval has elapsed. Negative intervals are clamped to zero, which
// makes the callback fire on the next timer tick without a quiet-window requirement.
type Debouncer struct {
	interval time.Duration

	mutex      syncutils.Mutex
	timer      *time.Timer
	generation uint64
	shutdown   bool

	// fireMutex is held for the whole duration of a callback delivery and acts as the barrier
	// that Shutdown waits on, so that no callback can still be running once Shutdown returns.
	// firingGoroutine identifies the delivering goroutine while the callback runs, which lets a
	// callback shut down its own Debouncer without waiting for itself.
	fireMutex       syncutils.Mutex
	firingGoroutine *atomic.Int64
}

// NewDebouncer creates a new Debouncer with the given quiet-window interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval < 0 {
		interval = 0
	}

	return &Debouncer{
		interval:        interval,
		firingGoroutine: atomic.NewInt64(0),
	}
}

// Interval returns the configured quiet-window interval.
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}

// Debounce schedules f to run after the quiet window has elapsed. A previously scheduled callback
// that has not fired yet is discarded, so under a sustained burst only the last call's callback
// runs. Calls after Shutdown are silently ignored.
func (d *Debouncer) Debounce(f func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.shutdown {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	// the timer fires on its own goroutine; the generation check under the mutex discards firings
	// that lost a race against Shutdown or a newer Debounce call
	d.generation++
	firingGeneration := d.generation

	d.timer = time.AfterFunc(d.interval, func() {
		d.fireMutex.Lock()
		defer d.fireMutex.Unlock()

		d.mutex.Lock()
		if d.shutdown || firingGeneration != d.generation {
			d.mutex.Unlock()
			return
		}
		d.timer = nil
		d.mutex.Unlock()

		d.firingGoroutine.Store(goid.Get())
		defer d.firingGoroutine.Store(0)

		f()
	})
}

// Pending returns true if a callback is currently scheduled and has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.timer != nil
}

// Shutdown permanently stops the Debouncer. A pending callback that has not started yet is
// discarded without firing, and if a callback is currently running on another goroutine,
// Shutdown blocks until it has finished. No callback is running or will run once Shutdown
// returns. Shutdown is idempotent and may be called from within a callback.
func (d *Debouncer) Shutdown() {
	d.mutex.Lock()
	if d.shutdown {
		d.mutex.Unlock()
		return
	}
	d.shutdown = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mutex.Unlock()

	// a callback shutting down its own Debouncer already holds the fireMutex
	if d.firingGoroutine.Load() == goid.Get() {
		return
	}

	d.fireMutex.Lock()
	d.fireMutex.Unlock() //nolint:staticcheck // empty critical section drains an in-flight callback
}
