// Package motion provides the timing primitives behind section reveals
// and smooth scrolling.
package motion

import "time"

// Reveal timing shared by every section entrance.
const (
	DefaultRevealDelay    = 200 * time.Millisecond
	DefaultRevealDuration = 1200 * time.Millisecond
)

// Ease maps linear progress in [0, 1] onto eased progress.
type Ease func(t float64) float64

// EaseOutCubic starts fast and decelerates into the target.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Tween animates a value between two endpoints over a fixed duration,
// after an optional delay. Unlike a spring it always lands exactly on
// the target endpoint.
type Tween struct {
	from     float64
	to       float64
	delay    time.Duration
	duration time.Duration
	ease     Ease
	start    time.Time
	started  bool
}

// NewTween builds a tween from from to to. A nil ease falls back to
// EaseOutCubic; a negative duration is clamped to zero.
func NewTween(from, to float64, delay, duration time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = EaseOutCubic
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{from: from, to: to, delay: delay, duration: duration, ease: ease}
}

// Start arms the tween. The delay is measured from now.
func (tw *Tween) Start(now time.Time) {
	tw.start = now
	tw.started = true
}

// Started reports whether Start has been called.
func (tw *Tween) Started() bool { return tw.started }

// Value returns the animated value at now. Before Start, and while the
// delay runs, it is the starting endpoint; once the duration has
// elapsed it is exactly the target.
func (tw *Tween) Value(now time.Time) float64 {
	if !tw.started {
		return tw.from
	}
	elapsed := now.Sub(tw.start) - tw.delay
	if elapsed >= tw.duration {
		return tw.to
	}
	if elapsed <= 0 {
		return tw.from
	}
	p := tw.ease(float64(elapsed) / float64(tw.duration))
	return tw.from + (tw.to-tw.from)*p
}

// Done reports whether the tween has started and fully played out.
func (tw *Tween) Done(now time.Time) bool {
	return tw.started && now.Sub(tw.start) >= tw.delay+tw.duration
}
