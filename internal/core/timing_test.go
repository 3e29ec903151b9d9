package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time           { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacesTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if n := fs.Steps(); n != 1 {
		t.Fatalf("first poll released %d ticks, want 1", n)
	}
	clock.advance(50 * time.Millisecond)
	if n := fs.Steps(); n != 0 {
		t.Fatalf("half a step released %d ticks", n)
	}
	clock.advance(60 * time.Millisecond)
	if n := fs.Steps(); n != 1 {
		t.Fatalf("one step released %d ticks, want 1", n)
	}
	clock.advance(250 * time.Millisecond)
	if n := fs.Steps(); n != 2 {
		t.Fatalf("2.6 steps released %d ticks, want 2", n)
	}
	clock.advance(10 * time.Second)
	if n := fs.Steps(); n != maxCatchUp {
		t.Fatalf("stall released %d ticks, want %d", n, maxCatchUp)
	}
	if fs.ShouldStep() {
		t.Fatal("catch-up should drop the backlog")
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("step = %v, want 1/60s", fs.Step())
	}
}

func TestDebouncerReleasesLastValue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDebouncer[Size](100 * time.Millisecond)
	d.now = clock.now

	if _, ok := d.Poll(); ok {
		t.Fatal("empty debouncer released a value")
	}
	d.Push(Square(300))
	clock.advance(60 * time.Millisecond)
	d.Push(Square(400))
	clock.advance(60 * time.Millisecond)
	if _, ok := d.Poll(); ok {
		t.Fatal("released before the quiet period after the last push")
	}
	if !d.Pending() {
		t.Fatal("expected a pending value")
	}
	clock.advance(40 * time.Millisecond)
	v, ok := d.Poll()
	if !ok || v != Square(400) {
		t.Fatalf("Poll = %+v, %v; want 400x400", v, ok)
	}
	if _, ok := d.Poll(); ok {
		t.Fatal("value released twice")
	}
}
