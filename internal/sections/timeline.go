package sections

import (
	"strings"

	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"
)

// renderTimeline draws dated entries along a vertical rail. The
// education, experience and volunteer sections all share it.
func renderTimeline(s Section, entries []content.TimelineEntry, v View) string {
	var b strings.Builder
	t := v.Reveal
	sym := symbols.Current

	b.WriteString(heading(s, v) + "\n\n")

	rail := fadeTo(theme.Border, t).Render(sym.TimelineLine)
	node := fadeTo(theme.Primary, t).Render(sym.TimelineNode)
	bullet := fadeTo(theme.Dim, t).Render(sym.Bullet)

	for i, e := range entries {
		if i > 0 {
			b.WriteString(rail + "\n")
		}
		b.WriteString(node + " " + fadeBody(t).Bold(true).Render(e.Title) + "\n")
		noteW := v.Width - 6
		if noteW < 12 {
			noteW = 12
		}
		meta := e.Org + " " + sym.Bullet + " " + e.Span
		for _, line := range strings.Split(wrap(meta, noteW, fadeTo(theme.Dim, t).Italic(true)), "\n") {
			b.WriteString(rail + "   " + line + "\n")
		}
		for _, note := range e.Notes {
			for j, line := range strings.Split(wrap(note, noteW, fadeBody(t)), "\n") {
				if j == 0 {
					b.WriteString(rail + "  " + bullet + " " + line + "\n")
				} else {
					b.WriteString(rail + "    " + line + "\n")
				}
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
