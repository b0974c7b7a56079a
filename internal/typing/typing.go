// Package typing implements the headline type/pause/delete cycle.
//
// The engine is a three-state machine over an ordered phrase list:
//   - Typing: the displayed prefix grows one rune per TypeEvery interval
//   - Pausing: the full phrase holds on screen for PauseFor
//   - Deleting: the prefix shrinks one rune per DeleteEvery interval,
//     then the phrase index advances (wrapping) and typing restarts
//
// The engine owns no timers. Each transition reports the delay until the
// next one, and the host schedules exactly one timer for it. Timers carry
// the generation they were scheduled under; a timer that outlives a Stop
// (or a later Start) is rejected by Advance and becomes a no-op, so a
// torn-down view can never be mutated by a stale callback.
package typing

import "time"

// Phase identifies the current state of the cycle.
type Phase int

const (
	// PhaseTyping grows the displayed prefix.
	PhaseTyping Phase = iota
	// PhasePausing holds the complete phrase on screen.
	PhasePausing
	// PhaseDeleting shrinks the displayed prefix.
	PhaseDeleting
)

// String returns a short name for the phase, for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePausing:
		return "pausing"
	case PhaseDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Default intervals, used for any Config field left at zero.
const (
	DefaultTypeEvery   = 75 * time.Millisecond
	DefaultDeleteEvery = 40 * time.Millisecond
	DefaultPauseFor    = 1600 * time.Millisecond
)

// Config holds the three durations that drive the cycle.
type Config struct {
	TypeEvery   time.Duration // delay between typed runes
	DeleteEvery time.Duration // delay between deleted runes
	PauseFor    time.Duration // hold time on a completed phrase
}

// withDefaults fills zero fields with the package defaults.
func (c Config) withDefaults() Config {
	if c.TypeEvery <= 0 {
		c.TypeEvery = DefaultTypeEvery
	}
	if c.DeleteEvery <= 0 {
		c.DeleteEvery = DefaultDeleteEvery
	}
	if c.PauseFor <= 0 {
		c.PauseFor = DefaultPauseFor
	}
	return c
}

// Engine cycles through a list of phrases, exposing the currently
// displayed prefix. The displayed string is always a prefix of the
// active phrase, between zero runes and the full phrase long.
type Engine struct {
	phrases [][]rune
	cfg     Config

	index   int   // active phrase
	length  int   // displayed prefix length, in runes
	phase   Phase
	gen     int  // current timer generation
	running bool
}

// New creates an engine over the given phrases. Zero durations in cfg
// fall back to the package defaults. An empty phrase list yields an
// inert engine: Start reports false and the display stays empty.
func New(phrases []string, cfg Config) *Engine {
	rs := make([][]rune, 0, len(phrases))
	for _, p := range phrases {
		rs = append(rs, []rune(p))
	}
	return &Engine{phrases: rs, cfg: cfg.withDefaults()}
}

// Start begins (or restarts) the cycle from an empty display on the
// first phrase and returns the delay before the first typed rune. It
// bumps the generation, so timers scheduled before Start are rejected.
// With no phrases it reports false and nothing is scheduled.
func (e *Engine) Start() (time.Duration, bool) {
	e.gen++
	if len(e.phrases) == 0 {
		return 0, false
	}
	e.index = 0
	e.length = 0
	e.phase = PhaseTyping
	e.running = true
	return e.cfg.TypeEvery, true
}

// Stop invalidates all pending timers. Advance calls carrying an older
// generation become no-ops; the display freezes as-is.
func (e *Engine) Stop() {
	e.gen++
	e.running = false
}

// Advance applies the transition a timer scheduled with the given
// generation. It returns the delay until the next transition. A stale
// generation (torn down or restarted since scheduling) reports false
// and changes nothing.
func (e *Engine) Advance(gen int) (time.Duration, bool) {
	if !e.running || gen != e.gen {
		return 0, false
	}
	switch e.phase {
	case PhaseTyping:
		e.length++
		if e.length >= len(e.phrases[e.index]) {
			e.length = len(e.phrases[e.index])
			e.phase = PhasePausing
			return e.cfg.PauseFor, true
		}
		return e.cfg.TypeEvery, true

	case PhasePausing:
		e.phase = PhaseDeleting
		return e.cfg.DeleteEvery, true

	case PhaseDeleting:
		e.length--
		if e.length <= 0 {
			// Empty display: move on to the next phrase. A single-phrase
			// list wraps onto itself and cycles forever.
			e.length = 0
			e.index = (e.index + 1) % len(e.phrases)
			e.phase = PhaseTyping
			return e.cfg.TypeEvery, true
		}
		return e.cfg.DeleteEvery, true
	}
	return 0, false
}

// Display returns the currently shown prefix of the active phrase.
func (e *Engine) Display() string {
	if len(e.phrases) == 0 {
		return ""
	}
	return string(e.phrases[e.index][:e.length])
}

// Phrase returns the full active phrase.
func (e *Engine) Phrase() string {
	if len(e.phrases) == 0 {
		return ""
	}
	return string(e.phrases[e.index])
}

// Index returns the active phrase index.
func (e *Engine) Index() int { return e.index }

// State returns the current cycle phase.
func (e *Engine) State() Phase { return e.phase }

// Generation returns the tag new timers must carry to be accepted.
func (e *Engine) Generation() int { return e.gen }
