package state

import "time"

// FrameMsg drives one animation frame: the scroll spring, section
// reveals and the counters all advance when it arrives. The model only
// keeps a frame chain alive while something is actually animating.
type FrameMsg struct {
	Time time.Time
}

// TypeTickMsg fires the next step of the typed headline. Gen tags the
// engine generation that scheduled it; a stale tick is dropped instead
// of corrupting a restarted cycle.
type TypeTickMsg struct {
	Gen int
}

// SplashTickMsg advances the splash screen spinner.
type SplashTickMsg struct{}

// SplashDoneMsg ends the splash screen and shows the page.
type SplashDoneMsg struct{}
