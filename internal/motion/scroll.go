package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// FrameRate is the animation tick rate the scroll spring is tuned for.
const FrameRate = 30

// Spring shape for page scrolling. Critical damping glides to the
// target without oscillating past it.
const (
	scrollFrequency = 6.0
	scrollDamping   = 1.0
)

// settleEpsilon bounds how close position and velocity must be to rest
// before the spring snaps onto the target.
const settleEpsilon = 0.05

// Scroll eases the viewport offset toward a target row with a damped
// spring, so jumping between sections glides instead of teleporting.
type Scroll struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewScroll returns a scroll resting at offset zero.
func NewScroll() *Scroll {
	return &Scroll{
		spring:  harmonica.NewSpring(harmonica.FPS(FrameRate), scrollFrequency, scrollDamping),
		settled: true,
	}
}

// MoveTo retargets the spring. The scroll glides from wherever it
// currently is, keeping its velocity.
func (s *Scroll) MoveTo(target float64) {
	s.target = target
	s.settled = s.pos == target && s.vel == 0
}

// JumpTo teleports to pos with no animation.
func (s *Scroll) JumpTo(pos float64) {
	s.pos = pos
	s.vel = 0
	s.target = pos
	s.settled = true
}

// Update advances the spring by one frame and returns the new
// position. Once position and velocity are both within settleEpsilon
// of rest, the scroll lands exactly on the target and settles.
func (s *Scroll) Update() (pos float64, settled bool) {
	if s.settled {
		return s.pos, true
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos = s.target
		s.vel = 0
		s.settled = true
	}
	return s.pos, s.settled
}

// Pos returns the current position without advancing the spring.
func (s *Scroll) Pos() float64 { return s.pos }

// Target returns the row the scroll is heading for.
func (s *Scroll) Target() float64 { return s.target }

// Settled reports whether the scroll is at rest on its target.
func (s *Scroll) Settled() bool { return s.settled }
