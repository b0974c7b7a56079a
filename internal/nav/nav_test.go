package nav

import "testing"

func pageAnchors() []Anchor {
	return []Anchor{
		{ID: "home", Top: 0},
		{ID: "about", Top: 800},
		{ID: "skills", Top: 1600},
		{ID: "projects", Top: 2400},
	}
}

func TestActiveSection(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{"top of page", 0, "home"},
		{"just before about minus lookahead", 719, "home"},
		{"about within lookahead", 720, "about"},
		{"mid about", 850, "about"},
		{"skills edge", 1520, "skills"},
		{"deep in last section", 5000, "projects"},
	}
	c := NewController(80, 50)
	c.SetAnchors(pageAnchors())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetOffset(tt.offset)
			if got := c.Active(); got != tt.want {
				t.Errorf("Active at offset %d = %q, want %q", tt.offset, got, tt.want)
			}
		})
	}
}

func TestActiveWithNoAnchors(t *testing.T) {
	c := NewController(0, 0)
	c.SetOffset(900)
	if got := c.Active(); got != "" {
		t.Errorf("Active with no anchors = %q, want empty", got)
	}
}

func TestActiveBeforeFirstAnchor(t *testing.T) {
	c := NewController(80, 50)
	c.SetAnchors([]Anchor{{ID: "late", Top: 500}})
	c.SetOffset(0)
	if got := c.Active(); got != "" {
		t.Errorf("Active before any anchor = %q, want empty", got)
	}
}

func TestActiveTieGoesToLaterAnchor(t *testing.T) {
	c := NewController(80, 50)
	c.SetAnchors([]Anchor{
		{ID: "first", Top: 100},
		{ID: "second", Top: 100},
	})
	c.SetOffset(100)
	if got := c.Active(); got != "second" {
		t.Errorf("Active with tied anchors = %q, want %q", got, "second")
	}
}

func TestScrolledThreshold(t *testing.T) {
	c := NewController(80, 50)
	c.SetOffset(50)
	if c.Scrolled() {
		t.Error("Scrolled at exactly the threshold, want false")
	}
	c.SetOffset(51)
	if !c.Scrolled() {
		t.Error("not Scrolled one past the threshold")
	}
	c.SetOffset(0)
	if c.Scrolled() {
		t.Error("Scrolled at the top of the page")
	}
}

func TestDefaultsApplyToZeroArguments(t *testing.T) {
	c := NewController(0, 0)
	c.SetAnchors(pageAnchors())
	c.SetOffset(DefaultSolidThreshold + 1)
	if !c.Scrolled() {
		t.Error("default solid threshold not applied")
	}
	c.SetOffset(800 - DefaultLookahead)
	if got := c.Active(); got != "about" {
		t.Errorf("default lookahead not applied: Active = %q", got)
	}
}

func TestNavigate(t *testing.T) {
	c := NewController(80, 50)
	c.SetAnchors(pageAnchors())

	top, ok := c.Navigate("skills")
	if !ok || top != 1600 {
		t.Errorf("Navigate(skills) = (%d, %v), want (1600, true)", top, ok)
	}
	if _, ok := c.Navigate("nope"); ok {
		t.Error("Navigate resolved an unknown id")
	}
}

func TestMenuClosesOnAnyNavigation(t *testing.T) {
	c := NewController(80, 50)
	c.SetAnchors(pageAnchors())

	c.ToggleMenu()
	if !c.MenuOpen() {
		t.Fatal("ToggleMenu did not open the menu")
	}
	c.Navigate("about")
	if c.MenuOpen() {
		t.Error("menu stayed open after a successful navigation")
	}

	c.ToggleMenu()
	c.Navigate("unknown")
	if c.MenuOpen() {
		t.Error("menu stayed open after a failed navigation")
	}

	c.ToggleMenu()
	c.ToggleMenu()
	if c.MenuOpen() {
		t.Error("double toggle left the menu open")
	}

	c.ToggleMenu()
	c.CloseMenu()
	if c.MenuOpen() {
		t.Error("CloseMenu left the menu open")
	}
}
