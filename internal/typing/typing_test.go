package typing

import (
	"strings"
	"testing"
	"time"
)

// drive runs the engine's timer loop in simulated time, recording the
// display after every transition. It returns (time, display) samples in
// firing order.
type sample struct {
	at      time.Duration
	display string
	index   int
	phase   Phase
}

func drive(e *Engine, steps int) []sample {
	var out []sample
	now := time.Duration(0)
	delay, ok := e.Start()
	if !ok {
		return out
	}
	gen := e.Generation()
	for i := 0; i < steps; i++ {
		now += delay
		var running bool
		delay, running = e.Advance(gen)
		if !running {
			break
		}
		out = append(out, sample{at: now, display: e.Display(), index: e.Index(), phase: e.State()})
	}
	return out
}

func TestTwoPhraseTimeline(t *testing.T) {
	// Timeline for ["A", "BB"] at type=10, delete=5, pause=100:
	// t=10 "A" (full, pausing), t=110 pause ends, t=115 "" and the
	// index wraps to 1, t=125 "B", t=135 "BB".
	e := New([]string{"A", "BB"}, Config{
		TypeEvery:   10 * time.Millisecond,
		DeleteEvery: 5 * time.Millisecond,
		PauseFor:    100 * time.Millisecond,
	})
	got := drive(e, 6)
	want := []sample{
		{10 * time.Millisecond, "A", 0, PhasePausing},
		{110 * time.Millisecond, "A", 0, PhaseDeleting},
		{115 * time.Millisecond, "", 1, PhaseTyping},
		{125 * time.Millisecond, "B", 1, PhaseTyping},
		{135 * time.Millisecond, "BB", 1, PhasePausing},
		{235 * time.Millisecond, "BB", 1, PhaseDeleting},
	}
	if len(got) != len(want) {
		t.Fatalf("drive produced %d samples, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDisplayIsAlwaysPrefixOfActivePhrase(t *testing.T) {
	phrases := []string{"Software Developer", "UI Designer", "日本語も話せます", "x"}
	e := New(phrases, Config{TypeEvery: 1, DeleteEvery: 1, PauseFor: 1})
	if _, ok := e.Start(); !ok {
		t.Fatal("Start reported not ok for a non-empty list")
	}
	gen := e.Generation()
	prevLen := 0
	prevPhase := e.State()
	for i := 0; i < 500; i++ {
		if _, ok := e.Advance(gen); !ok {
			t.Fatalf("engine stopped unexpectedly at step %d", i)
		}
		display := e.Display()
		phrase := e.Phrase()
		if !strings.HasPrefix(phrase, display) {
			t.Fatalf("step %d: display %q is not a prefix of phrase %q", i, display, phrase)
		}
		n := len([]rune(display))
		if n < 0 || n > len([]rune(phrase)) {
			t.Fatalf("step %d: display length %d out of range for %q", i, n, phrase)
		}
		// Within a phase the prefix moves one rune at a time, never
		// skipping: typing only grows, deleting only shrinks.
		if prevPhase == e.State() {
			switch e.State() {
			case PhaseTyping:
				if n != prevLen+1 && !(n == 1 && prevLen == 0) {
					t.Fatalf("step %d: typing jumped from %d to %d runes", i, prevLen, n)
				}
			case PhaseDeleting:
				if n != prevLen-1 {
					t.Fatalf("step %d: deleting jumped from %d to %d runes", i, prevLen, n)
				}
			}
		}
		prevLen = n
		prevPhase = e.State()
	}
}

func TestIndexWrapsModuloListLength(t *testing.T) {
	phrases := []string{"aa", "b", "ccc"}
	e := New(phrases, Config{TypeEvery: 1, DeleteEvery: 1, PauseFor: 1})
	e.Start()
	gen := e.Generation()

	// A full cycle for phrase of n runes: n type steps, 1 pause step,
	// n delete steps (the last one advances the index).
	cycles := 0
	prevIndex := e.Index()
	for i := 0; i < 2000 && cycles < 7; i++ {
		e.Advance(gen)
		if e.Index() != prevIndex {
			cycles++
			if want := cycles % len(phrases); e.Index() != want {
				t.Fatalf("after %d full cycles index = %d, want %d", cycles, e.Index(), want)
			}
			prevIndex = e.Index()
		}
	}
	if cycles < 7 {
		t.Fatalf("only observed %d cycles", cycles)
	}
}

func TestSinglePhraseCyclesForever(t *testing.T) {
	e := New([]string{"solo"}, Config{TypeEvery: 1, DeleteEvery: 1, PauseFor: 1})
	e.Start()
	gen := e.Generation()
	sawFull, sawEmpty := 0, 0
	for i := 0; i < 60; i++ {
		e.Advance(gen)
		if e.Index() != 0 {
			t.Fatalf("single-phrase index moved to %d", e.Index())
		}
		switch e.Display() {
		case "solo":
			sawFull++
		case "":
			sawEmpty++
		}
	}
	if sawFull < 2 || sawEmpty < 2 {
		t.Errorf("expected repeated full/empty passes, got full=%d empty=%d", sawFull, sawEmpty)
	}
}

func TestEmptyListIsInert(t *testing.T) {
	e := New(nil, Config{})
	if _, ok := e.Start(); ok {
		t.Error("Start reported ok for an empty list")
	}
	if _, ok := e.Advance(e.Generation()); ok {
		t.Error("Advance ran on an empty list")
	}
	if e.Display() != "" {
		t.Errorf("empty engine display = %q", e.Display())
	}
}

func TestStaleTimerIsNoOp(t *testing.T) {
	e := New([]string{"hello"}, Config{TypeEvery: 1, DeleteEvery: 1, PauseFor: 1})
	e.Start()
	stale := e.Generation()
	e.Advance(stale)
	e.Advance(stale)
	before := e.Display()

	// Teardown mid-cycle: the pending timer's generation is now stale
	// and must not mutate anything when it lands.
	e.Stop()
	if _, ok := e.Advance(stale); ok {
		t.Error("Advance accepted a timer scheduled before Stop")
	}
	if e.Display() != before {
		t.Errorf("stale timer mutated display: %q -> %q", before, e.Display())
	}

	// A restart issues a fresh generation; the old tag stays dead.
	delay, ok := e.Start()
	if !ok || delay <= 0 {
		t.Fatalf("restart failed: delay=%v ok=%v", delay, ok)
	}
	if _, ok := e.Advance(stale); ok {
		t.Error("Advance accepted a pre-restart generation")
	}
	if _, ok := e.Advance(e.Generation()); !ok {
		t.Error("Advance rejected the current generation after restart")
	}
}

func TestConfigZeroFieldsFallBackToDefaults(t *testing.T) {
	e := New([]string{"x"}, Config{})
	delay, ok := e.Start()
	if !ok {
		t.Fatal("Start failed")
	}
	if delay != DefaultTypeEvery {
		t.Errorf("first delay = %v, want default %v", delay, DefaultTypeEvery)
	}
	delay, _ = e.Advance(e.Generation()) // full phrase -> pause
	if delay != DefaultPauseFor {
		t.Errorf("pause delay = %v, want default %v", delay, DefaultPauseFor)
	}
	delay, _ = e.Advance(e.Generation()) // pause -> first delete
	if delay != DefaultDeleteEvery {
		t.Errorf("delete delay = %v, want default %v", delay, DefaultDeleteEvery)
	}
}
