package core

import "time"

// Debouncer coalesces a burst of values and releases only the last one,
// once no newer value arrived for Delay (trailing edge). It never fires on
// its own; the host loop polls it once per update.
type Debouncer[T any] struct {
	Delay time.Duration

	now      func() time.Time
	value    T
	deadline time.Time
	pending  bool
}

// NewDebouncer returns a Debouncer with the given trailing delay.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{Delay: delay, now: time.Now}
}

// WithClock replaces the time source and returns d.
func (d *Debouncer[T]) WithClock(now func() time.Time) *Debouncer[T] {
	d.now = now
	return d
}

// Push records v and restarts the quiet period.
func (d *Debouncer[T]) Push(v T) {
	d.value = v
	d.deadline = d.now().Add(d.Delay)
	d.pending = true
}

// Pending reports whether a value is waiting for its quiet period to end.
func (d *Debouncer[T]) Pending() bool { return d.pending }

// Poll returns the last pushed value once the quiet period has elapsed.
func (d *Debouncer[T]) Poll() (T, bool) {
	var zero T
	if !d.pending || d.now().Before(d.deadline) {
		return zero, false
	}
	d.pending = false
	v := d.value
	d.value = zero
	return v, true
}
