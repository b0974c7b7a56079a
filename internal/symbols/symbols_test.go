package symbols

import "testing"

func TestDetectSetHonorsASCIIOverride(t *testing.T) {
	t.Setenv("FOLIO_ASCII", "1")
	if got := detectSet(); got.Bullet != ASCII.Bullet {
		t.Errorf("FOLIO_ASCII=1 still picked Unicode glyphs")
	}
	t.Setenv("FOLIO_ASCII", "true")
	if got := detectSet(); got.Caret != ASCII.Caret {
		t.Errorf("FOLIO_ASCII=true still picked Unicode glyphs")
	}
}

func TestDetectSetFallsBackOnDumbTerminals(t *testing.T) {
	t.Setenv("FOLIO_ASCII", "")
	t.Setenv("COMSPEC", "")
	t.Setenv("SSH_CLIENT", "")
	t.Setenv("SSH_TTY", "")
	for _, term := range []string{"dumb", "vt100", "xterm-mono"} {
		t.Setenv("TERM", term)
		if got := detectSet(); got.Burger != ASCII.Burger {
			t.Errorf("TERM=%s picked Unicode glyphs", term)
		}
	}
	t.Setenv("TERM", "xterm-256color")
	if got := detectSet(); got.Burger != Unicode.Burger {
		t.Error("modern TERM picked ASCII glyphs")
	}
}

func TestForceSwitchesBothWays(t *testing.T) {
	orig := Current
	defer func() { Current = orig }()

	ForceASCII()
	if Current.RingOn != ASCII.RingOn {
		t.Error("ForceASCII did not switch the active set")
	}
	ForceUnicode()
	if Current.RingOn != Unicode.RingOn {
		t.Error("ForceUnicode did not switch the active set")
	}
}

func TestProgressFrameWraps(t *testing.T) {
	orig := Current
	defer func() { Current = orig }()
	ForceUnicode()

	n := len(Current.Progress)
	if n == 0 {
		t.Fatal("no progress frames")
	}
	if ProgressFrame(0) != ProgressFrame(n) {
		t.Error("frame index does not wrap around the frame list")
	}
}

func TestBothSetsCoverEveryGlyph(t *testing.T) {
	for name, set := range map[string]Set{"unicode": Unicode, "ascii": ASCII} {
		if set.Burger == "" || set.Caret == "" || set.ActiveDot == "" || set.UpArrow == "" {
			t.Errorf("%s set is missing navigation glyphs", name)
		}
		if set.RingOn == "" || set.RingOff == "" {
			t.Errorf("%s set is missing ring glyphs", name)
		}
		if set.BarFull == "" || set.BarEmpty == "" {
			t.Errorf("%s set is missing bar glyphs", name)
		}
		if set.TimelineNode == "" || set.TimelineLine == "" {
			t.Errorf("%s set is missing timeline glyphs", name)
		}
		if len(set.Progress) == 0 {
			t.Errorf("%s set has no splash frames", name)
		}
	}
}
