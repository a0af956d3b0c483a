// Package debounce turns a stream of rapid edits into settled values.
package debounce

import (
	"sync"
	"time"
)

// DefaultInterval is the quiet period before a pending value is emitted.
const DefaultInterval = 700 * time.Millisecond

// Debouncer emits the latest value once no new value has arrived for the
// interval. Commit and Clear bypass the wait.
//
// Every emission is tagged with a generation; a timer that fires after a
// newer Change, Commit, Clear or Stop finds a stale generation and emits
// nothing. Emissions are serialized, and Stop waits for one already in
// progress, so emit must not call Stop.
type Debouncer[T any] struct {
	emit     func(T)
	timer    *time.Timer
	last     T
	interval time.Duration
	gen      uint64
	emitMu   sync.Mutex // держится на время emit, берется до mu
	mu       sync.Mutex
	pending  bool
	stopped  bool
}

// New creates a debouncer that calls emit with settled values.
// A non-positive interval falls back to DefaultInterval.
func New[T any](interval time.Duration, emit func(T)) *Debouncer[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer[T]{
		emit:     emit,
		interval: interval,
	}
}

// Interval returns the quiet period.
func (d *Debouncer[T]) Interval() time.Duration {
	return d.interval
}

// Change records a new raw value and restarts the quiet period.
func (d *Debouncer[T]) Change(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.gen++
	d.last = v
	d.pending = true
	d.stopTimer()

	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

// Commit emits the current value immediately (the Enter key).
func (d *Debouncer[T]) Commit() {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.gen++
	d.pending = false
	d.stopTimer()
	v := d.last
	d.mu.Unlock()

	d.emit(v)
}

// Clear resets the value to zero and emits it immediately.
func (d *Debouncer[T]) Clear(zero T) {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.gen++
	d.last = zero
	d.pending = false
	d.stopTimer()
	d.mu.Unlock()

	d.emit(zero)
}

// Pending reports whether a value is waiting for the quiet period.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop cancels any pending emission and waits for one in progress.
// No value is emitted after Stop returns.
func (d *Debouncer[T]) Stop() {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	d.pending = false
	d.stopTimer()
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.emitMu.Lock()
	defer d.emitMu.Unlock()

	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	v := d.last
	d.mu.Unlock()

	d.emit(v)
}

func (d *Debouncer[T]) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
