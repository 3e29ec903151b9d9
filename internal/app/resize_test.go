package app

import (
	"testing"
	"time"

	"landscape/internal/core"
)

type resizeCall struct {
	w, h    int
	initial bool
}

type fakeResizer struct {
	calls []resizeCall
}

func (f *fakeResizer) Resize(w, h int, initial bool) core.Size {
	f.calls = append(f.calls, resizeCall{w, h, initial})
	return core.Square(w)
}

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time           { return c.t }
func (c *stepClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker() (*resizeTracker, *stepClock) {
	clock := &stepClock{t: time.Unix(0, 0)}
	return newResizeTracker(core.NewDebouncer[core.Size](100 * time.Millisecond).WithClock(clock.now)), clock
}

func TestResizeTrackerFirstSizeIsInitial(t *testing.T) {
	tr, _ := newTestTracker()
	target := &fakeResizer{}

	tr.Observe(target, core.Size{})
	if len(target.calls) != 0 {
		t.Fatalf("zero size should be ignored, got %v", target.calls)
	}
	tr.Observe(target, core.Size{W: 1000, H: 800})
	want := []resizeCall{{1000, 800, true}}
	if len(target.calls) != 1 || target.calls[0] != want[0] {
		t.Fatalf("calls = %v, want %v", target.calls, want)
	}
}

func TestResizeTrackerCoalescesBurst(t *testing.T) {
	tr, clock := newTestTracker()
	target := &fakeResizer{}
	tr.Observe(target, core.Size{W: 1000, H: 800})

	for _, w := range []int{900, 850, 700} {
		clock.advance(20 * time.Millisecond)
		tr.Observe(target, core.Size{W: w, H: 600})
	}
	if len(target.calls) != 1 {
		t.Fatalf("burst applied early: %v", target.calls)
	}

	clock.advance(99 * time.Millisecond)
	tr.Observe(target, core.Size{W: 700, H: 600})
	if len(target.calls) != 1 {
		t.Fatalf("applied before the quiet period ended: %v", target.calls)
	}

	clock.advance(time.Millisecond)
	tr.Observe(target, core.Size{W: 700, H: 600})
	if len(target.calls) != 2 || target.calls[1] != (resizeCall{700, 600, false}) {
		t.Fatalf("calls = %v, want one coalesced 700x600 resize", target.calls)
	}
}

func TestResizeTrackerIgnoresUnchangedSize(t *testing.T) {
	tr, clock := newTestTracker()
	target := &fakeResizer{}
	size := core.Size{W: 800, H: 600}
	tr.Observe(target, size)

	for i := 0; i < 10; i++ {
		clock.advance(time.Second)
		tr.Observe(target, size)
	}
	if len(target.calls) != 1 {
		t.Fatalf("unchanged size resized again: %v", target.calls)
	}
}
