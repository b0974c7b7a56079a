package sections

import (
	"strings"

	"folio/internal/assets"
	"folio/internal/content"
	"folio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderServices draws the offerings as a grid of bordered cards,
// three across on wide pages down to a single column on narrow ones.
func renderServices(page content.Page, v View) string {
	var s strings.Builder
	s.WriteString(heading(Services, v) + "\n\n")

	cols := 1
	switch {
	case v.Width >= 96:
		cols = 3
	case v.Width >= 60:
		cols = 2
	}
	boxW := (v.Width-(cols-1))/cols - 2
	if boxW < 16 {
		boxW = 16
	}
	innerW := boxW - 4

	card := theme.Card.
		Border(theme.BoxBorder()).
		BorderForeground(theme.FadeTo(theme.Border, v.Reveal)).
		Width(boxW)

	cards := make([]string, 0, len(page.Services))
	for _, svc := range page.Services {
		var c strings.Builder
		thumb := fadeTo(theme.Dim, v.Reveal).Render(assets.Thumbnail(svc.Art))
		c.WriteString(lipgloss.PlaceHorizontal(innerW, lipgloss.Center, thumb) + "\n")
		c.WriteString(fadeTo(theme.Primary, v.Reveal).Bold(true).Render(svc.Name) + "\n")
		c.WriteString(wrap(svc.Desc, innerW, fadeBody(v.Reveal)))
		cards = append(cards, card.Render(c.String()))
	}

	var rows []string
	for i := 0; i < len(cards); i += cols {
		parts := make([]string, 0, cols*2)
		for j := i; j < i+cols && j < len(cards); j++ {
			if j > i {
				parts = append(parts, " ")
			}
			parts = append(parts, cards[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	s.WriteString(strings.Join(rows, "\n"))
	return s.String()
}
