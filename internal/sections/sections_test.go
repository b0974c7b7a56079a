package sections

import (
	"strings"
	"testing"

	"folio/internal/content"
	"folio/internal/symbols"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// zeroedView is the page the instant before anything has animated:
// nothing revealed, nothing typed, every bar, ring and counter at zero.
func zeroedView(page content.Page, width int) View {
	bars := make(map[string]float64, len(page.Skills))
	for _, s := range page.Skills {
		bars[s.Name] = 0
	}
	rings := make(map[string]float64, len(page.Languages))
	for _, l := range page.Languages {
		rings[l.Name] = 0
	}
	counts := make(map[string]int, len(page.Counters))
	for _, c := range page.Counters {
		counts[c.Label] = 0
	}
	return View{Width: width, Reveal: 0, Typed: "", Bars: bars, Rings: rings, Counts: counts}
}

// finishedView is the page with every animation played out.
func finishedView(page content.Page, width int) View {
	longest := ""
	for _, r := range page.Profile.Roles {
		if len(r) > len(longest) {
			longest = r
		}
	}
	return View{Width: width, Reveal: 1, Typed: longest}
}

func TestAnimationNeverMovesLayout(t *testing.T) {
	page := content.Site
	for _, width := range []int{40, 72, 110} {
		before := zeroedView(page, width)
		after := finishedView(page, width)
		for _, s := range All() {
			hidden := Render(s, page, before)
			shown := Render(s, page, after)
			if got, want := lipgloss.Height(hidden), lipgloss.Height(shown); got != want {
				t.Errorf("width %d, %s: %d rows unrevealed vs %d revealed", width, s, got, want)
			}
		}
	}
}

func TestSectionsStayInsideTheirWidth(t *testing.T) {
	page := content.Site
	for _, width := range []int{40, 72, 110} {
		v := finishedView(page, width)
		for _, s := range All() {
			for i, line := range strings.Split(Render(s, page, v), "\n") {
				if w := lipgloss.Width(line); w > width {
					t.Errorf("width %d, %s line %d: %d cells wide: %q",
						width, s, i, w, ansi.Strip(line))
				}
			}
		}
	}
}

func TestEverySectionRenders(t *testing.T) {
	page := content.Site
	v := finishedView(page, 80)
	for _, s := range All() {
		out := ansi.Strip(Render(s, page, v))
		if strings.TrimSpace(out) == "" {
			t.Errorf("%s rendered empty", s)
		}
		if s == Home {
			continue // the hero has no heading row
		}
		if !strings.Contains(out, s.String()) {
			t.Errorf("%s render does not carry its title", s)
		}
	}
}

func TestHeroShowsTypedHeadline(t *testing.T) {
	page := content.Site
	v := finishedView(page, 80)
	v.Typed = "UI Desig"
	out := ansi.Strip(Render(Home, page, v))
	if !strings.Contains(out, "UI Desig") {
		t.Error("hero does not show the typed text")
	}
	if !strings.Contains(out, "I r i s") {
		t.Error("hero does not letterspace the name")
	}
}

func TestSkillsShowLevelsAndNames(t *testing.T) {
	page := content.Site
	out := ansi.Strip(Render(Skills, page, finishedView(page, 80)))
	for _, sk := range page.Skills {
		if !strings.Contains(out, sk.Name) {
			t.Errorf("skills render missing %q", sk.Name)
		}
	}
	if !strings.Contains(out, "90%") || !strings.Contains(out, "65%") {
		t.Error("skills render missing percent labels")
	}
}

func TestAboutShowsFactsAndCounters(t *testing.T) {
	page := content.Site
	out := ansi.Strip(Render(About, page, finishedView(page, 80)))
	for _, f := range page.About.Facts {
		if !strings.Contains(out, f.Value) {
			t.Errorf("about render missing fact %q", f.Value)
		}
	}
	for _, c := range page.Counters {
		if !strings.Contains(out, c.Label) {
			t.Errorf("about render missing counter %q", c.Label)
		}
	}
}

func TestCountersAnimateThroughTheView(t *testing.T) {
	page := content.Site
	v := finishedView(page, 80)
	v.Counts = map[string]int{}
	for _, c := range page.Counters {
		v.Counts[c.Label] = 7
	}
	out := ansi.Strip(Render(About, page, v))
	if !strings.Contains(out, "  7 "+page.Counters[0].Label) {
		t.Error("counter strip ignores the animated value")
	}
}

func TestRingLitCells(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		wantLit int
	}{
		{"full ring", 100, 12},
		{"ninety percent", 90, 11},
		{"seventy percent", 70, 8},
		{"forty percent", 40, 5},
		{"empty ring", 0, 0},
	}
	sym := symbols.Current
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := content.Language{Name: "X", Level: tt.level}
			out := ansi.Strip(ringBlock(lang, float64(tt.level)/100, 1, 14))
			lit := strings.Count(out, sym.RingOn)
			unlit := strings.Count(out, sym.RingOff)
			if lit != tt.wantLit {
				t.Errorf("lit cells = %d, want %d", lit, tt.wantLit)
			}
			if lit+unlit != ringCells {
				t.Errorf("total cells = %d, want %d", lit+unlit, ringCells)
			}
		})
	}
}

func TestRingLayoutCoversEveryIndexOnce(t *testing.T) {
	seen := make(map[int]int)
	for _, row := range ringLayout {
		for _, idx := range row {
			if idx >= 0 {
				seen[idx]++
			}
		}
	}
	if len(seen) != ringCells {
		t.Fatalf("layout covers %d distinct cells, want %d", len(seen), ringCells)
	}
	for idx, n := range seen {
		if n != 1 {
			t.Errorf("cell %d appears %d times", idx, n)
		}
	}
}

func TestTimelineListsEveryEntry(t *testing.T) {
	page := content.Site
	v := finishedView(page, 80)
	for _, tc := range []struct {
		section Section
		entries []content.TimelineEntry
	}{
		{Education, page.Education},
		{Experience, page.Experience},
		{Volunteer, page.Volunteer},
	} {
		out := ansi.Strip(Render(tc.section, page, v))
		for _, e := range tc.entries {
			if !strings.Contains(out, e.Title) || !strings.Contains(out, e.Org) {
				t.Errorf("%s render missing entry %q", tc.section, e.Title)
			}
		}
	}
}

func TestServicesAndProjectsListEverything(t *testing.T) {
	page := content.Site
	v := finishedView(page, 100)
	services := ansi.Strip(Render(Services, page, v))
	for _, svc := range page.Services {
		if !strings.Contains(services, svc.Name) {
			t.Errorf("services render missing %q", svc.Name)
		}
	}
	projects := ansi.Strip(Render(Projects, page, v))
	for _, p := range page.Projects {
		if !strings.Contains(projects, p.Name) {
			t.Errorf("projects render missing %q", p.Name)
		}
		for _, tag := range p.Tags {
			if !strings.Contains(projects, "["+tag+"]") {
				t.Errorf("project %q missing tag %q", p.Name, tag)
			}
		}
	}
}

func TestContactListsLinks(t *testing.T) {
	page := content.Site
	out := ansi.Strip(Render(Contact, page, finishedView(page, 80)))
	if !strings.Contains(out, page.Contact.Email) {
		t.Error("contact render missing the email address")
	}
	for _, l := range page.Contact.Links {
		if !strings.Contains(out, l.Label) || !strings.Contains(out, l.URL) {
			t.Errorf("contact render missing link %q", l.Label)
		}
	}
}

func TestSectionIDsRoundTrip(t *testing.T) {
	for _, s := range All() {
		got, ok := FromID(s.ID())
		if !ok || got != s {
			t.Errorf("FromID(%q) = (%v, %v), want (%v, true)", s.ID(), got, ok, s)
		}
	}
	if _, ok := FromID("not-a-section"); ok {
		t.Error("FromID resolved an unknown id")
	}
	if len(All()) != 10 {
		t.Errorf("page has %d sections, want 10", len(All()))
	}
}
