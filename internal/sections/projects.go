package sections

import (
	"strings"

	"folio/internal/content"
	"folio/internal/theme"
)

// renderProjects draws one full-width card per portfolio piece, with
// tag chips next to the name and the repo link underneath.
func renderProjects(page content.Page, v View) string {
	var s strings.Builder
	t := v.Reveal

	s.WriteString(heading(Projects, v) + "\n\n")

	boxW := v.Width - 2
	if boxW < 20 {
		boxW = 20
	}
	innerW := boxW - 4
	card := theme.Card.
		Border(theme.BoxBorder()).
		BorderForeground(theme.FadeTo(theme.Border, t)).
		Width(boxW)

	cards := make([]string, 0, len(page.Projects))
	for _, p := range page.Projects {
		chips := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			chips = append(chips, fadeTo(theme.Accent, t).Render("["+tag+"]"))
		}

		var c strings.Builder
		c.WriteString(fadeTo(theme.Primary, t).Bold(true).Render(p.Name) + "\n")
		if len(chips) > 0 {
			c.WriteString(strings.Join(chips, " ") + "\n")
		}
		c.WriteString(wrap(p.Desc, innerW, fadeBody(t)) + "\n")
		c.WriteString(wrap(p.URL, innerW, fadeTo(theme.Dim, t).Underline(true)))
		cards = append(cards, card.Render(c.String()))
	}
	s.WriteString(strings.Join(cards, "\n"))
	return s.String()
}
