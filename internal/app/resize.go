package app

import "landscape/internal/core"

type resizer interface {
	Resize(availW, availH int, initial bool) core.Size
}

// resizeTracker turns the window size seen on every Layout into canvas
// resizes. The first usable size is applied at once as the initial resize;
// later changes go through the debouncer and only the last of a burst is
// applied.
type resizeTracker struct {
	debounce *core.Debouncer[core.Size]
	seen     core.Size
	sized    bool
}

func newResizeTracker(debounce *core.Debouncer[core.Size]) *resizeTracker {
	return &resizeTracker{debounce: debounce}
}

// Observe records the current outside size and forwards a resize to target
// when one is due.
func (r *resizeTracker) Observe(target resizer, outside core.Size) {
	if outside.W <= 0 || outside.H <= 0 {
		return
	}
	if !r.sized {
		r.sized = true
		r.seen = outside
		target.Resize(outside.W, outside.H, true)
		return
	}
	if outside != r.seen {
		r.seen = outside
		r.debounce.Push(outside)
	}
	if size, ok := r.debounce.Poll(); ok {
		target.Resize(size.W, size.H, false)
	}
}
