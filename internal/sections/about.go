package sections

import (
	"fmt"
	"strings"

	"folio/internal/assets"
	"folio/internal/content"
	"folio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// renderAbout draws the portrait, the introduction paragraphs, the
// quick-facts grid and the counter strip.
func renderAbout(page content.Page, v View) string {
	var s strings.Builder
	t := v.Reveal

	s.WriteString(heading(About, v) + "\n\n")

	portrait := fadeTo(theme.Dim, t).Render(assets.Portrait())
	intro := strings.Join(page.About.Paragraphs, "\n\n")
	if v.Width >= 56 {
		textW := v.Width - lipgloss.Width(assets.Portrait()) - 3
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			portrait, "   ", wrap(intro, textW, fadeBody(t))))
	} else {
		s.WriteString(portrait + "\n\n")
		s.WriteString(wrap(intro, v.Width, fadeBody(t)))
	}
	s.WriteString("\n\n")

	s.WriteString(factGrid(page.About.Facts, v) + "\n\n")

	s.WriteString(counterStrip(page.Counters, v))
	return s.String()
}

// factGrid lays the quick facts out two per row, one per row on
// narrow pages.
func factGrid(facts []content.Fact, v View) string {
	if len(facts) == 0 {
		return ""
	}
	labelW := 0
	for _, f := range facts {
		if len(f.Label) > labelW {
			labelW = len(f.Label)
		}
	}
	perRow := 2
	if v.Width < 64 {
		perRow = 1
	}
	colW := v.Width / perRow

	var rows []string
	for i := 0; i < len(facts); i += perRow {
		var cells []string
		for j := i; j < i+perRow && j < len(facts); j++ {
			cells = append(cells, factCell(facts[j], labelW, colW, v.Reveal))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func factCell(f content.Fact, labelW, colW int, t float64) string {
	label := fadeTo(theme.Dim, t).Render(fmt.Sprintf("%-*s", labelW+1, f.Label+":"))
	value := fadeBody(t).Render(f.Value)
	cell := label + " " + value
	return lipgloss.PlaceHorizontal(colW, lipgloss.Left, cell)
}

// counterStrip draws the animated statistics in one or two rows
// depending on width.
func counterStrip(counters []content.Counter, v View) string {
	if len(counters) == 0 {
		return ""
	}
	perRow := 1
	if v.Width >= 56 {
		perRow = 2
	}

	var rows []string
	for i := 0; i < len(counters); i += perRow {
		var cells []string
		for j := i; j < i+perRow && j < len(counters); j++ {
			c := counters[j]
			value := fadeTo(theme.Primary, v.Reveal).Bold(true).
				Render(fmt.Sprintf("%3d", v.countValue(c.Label, c.Value)))
			label := fadeTo(theme.Dim, v.Reveal).Render(c.Label)
			cells = append(cells, value+" "+label)
		}
		rows = append(rows, strings.Join(cells, "   "))
	}
	return strings.Join(rows, "\n")
}
