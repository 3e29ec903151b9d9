package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases an opacity between hidden (0) and shown (1). Call Update once
// per frame with the elapsed seconds.
type Fade struct {
	duration float32
	alpha    float32
	shown    bool
	tween    *gween.Tween
}

// NewFade returns a hidden Fade that takes duration seconds per transition.
func NewFade(duration float32) *Fade {
	return &Fade{duration: duration}
}

// Show starts easing toward shown or hidden. Repeating the current target
// does not restart the transition.
func (f *Fade) Show(shown bool) {
	if shown == f.shown {
		return
	}
	f.shown = shown
	target := float32(0)
	fn := ease.InQuad
	if shown {
		target = 1
		fn = ease.OutQuad
	}
	f.tween = gween.New(f.alpha, target, f.duration, fn)
}

// Update advances the transition by dt seconds and returns the opacity.
func (f *Fade) Update(dt float32) float32 {
	if f.tween == nil {
		return f.alpha
	}
	v, done := f.tween.Update(dt)
	f.alpha = v
	if done {
		f.tween = nil
	}
	return f.alpha
}

// Alpha returns the current opacity.
func (f *Fade) Alpha() float32 { return f.alpha }

// Settled reports whether no transition is running.
func (f *Fade) Settled() bool { return f.tween == nil }
