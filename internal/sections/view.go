// Package sections renders the anchored blocks of the page.
//
// Every renderer takes the same View of the model's animation state
// and returns a block of styled lines. Reveal progress only recolors
// text, never moves it: a section occupies exactly as many rows at
// progress 0 as it does fully revealed, so anchor rows stay put while
// animations play.
package sections

import (
	"strings"

	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// View carries the animated state a section render needs.
//
// The maps hold per-element animation values keyed the way the content
// names them. A nil map means "render the finished state", which is
// what layout measurement and reduced-motion mode use.
type View struct {
	Width  int
	Reveal float64            // entrance progress, 0 to 1
	Typed  string             // current text of the typed headline
	Bars   map[string]float64 // skill bar fill, 0 to level/100
	Rings  map[string]float64 // language ring fill, 0 to level/100
	Counts map[string]int     // counter values on their way up
}

// Render draws one section at the view's width.
func Render(s Section, page content.Page, v View) string {
	if v.Width < 20 {
		v.Width = 20
	}
	switch s {
	case Home:
		return renderHome(page, v)
	case About:
		return renderAbout(page, v)
	case Skills:
		return renderSkills(page, v)
	case Education:
		return renderTimeline(Education, page.Education, v)
	case Experience:
		return renderTimeline(Experience, page.Experience, v)
	case Services:
		return renderServices(page, v)
	case Projects:
		return renderProjects(page, v)
	case Volunteer:
		return renderTimeline(Volunteer, page.Volunteer, v)
	case Languages:
		return renderLanguages(page, v)
	case Contact:
		return renderContact(page, v)
	default:
		return ""
	}
}

// barFill returns the animated fill for a skill bar, or the finished
// fill when no animation state is attached.
func (v View) barFill(name string, level int) float64 {
	if v.Bars == nil {
		return float64(level) / 100
	}
	return v.Bars[name]
}

// ringFill returns the animated fill for a language ring.
func (v View) ringFill(name string, level int) float64 {
	if v.Rings == nil {
		return float64(level) / 100
	}
	return v.Rings[name]
}

// countValue returns the animated value for a counter.
func (v View) countValue(label string, target int) int {
	if v.Counts == nil {
		return target
	}
	return v.Counts[label]
}

// fadeBody styles body text at the section's reveal progress.
func fadeBody(t float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Fade(t))
}

// fadeTo styles text fading in toward an arbitrary palette color.
func fadeTo(c lipgloss.Color, t float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.FadeTo(c, t))
}

// heading renders a section title with its underline rule.
func heading(s Section, v View) string {
	title := fadeTo(theme.Secondary, v.Reveal).Bold(true).Render(s.String())
	ruleWidth := min(24, v.Width)
	rule := fadeTo(theme.Border, v.Reveal).
		Render(strings.Repeat(symbols.Current.BoxHorizontal, ruleWidth))
	return title + "\n" + rule
}

// wrap fills text into the given width, padding short lines so the
// block is rectangular.
func wrap(text string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(text)
}
