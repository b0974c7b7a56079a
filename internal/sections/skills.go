package sections

import (
	"fmt"
	"strings"

	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"

	"github.com/charmbracelet/bubbles/progress"
)

// renderSkills draws one horizontal bar per skill. The fill sweeps up
// from zero on reveal; the percent label stays put so rows never
// change width.
func renderSkills(page content.Page, v View) string {
	var s strings.Builder
	s.WriteString(heading(Skills, v) + "\n\n")

	labelW := 0
	for _, sk := range page.Skills {
		if len(sk.Name) > labelW {
			labelW = len(sk.Name)
		}
	}
	// label, space, bar, space, "100%"
	barW := v.Width - labelW - 6
	if barW < 10 {
		barW = 10
	}
	if barW > 40 {
		barW = 40
	}

	rows := make([]string, 0, len(page.Skills))
	for _, sk := range page.Skills {
		bar := skillBar(barW)
		rows = append(rows,
			fadeBody(v.Reveal).Render(fmt.Sprintf("%-*s", labelW, sk.Name))+
				" "+bar.ViewAs(v.barFill(sk.Name, sk.Level))+
				" "+fadeTo(theme.Dim, v.Reveal).Render(fmt.Sprintf("%3d%%", sk.Level)))
	}
	s.WriteString(strings.Join(rows, "\n"))
	return s.String()
}

// skillBar builds the shared bar renderer at a width.
func skillBar(width int) progress.Model {
	sym := symbols.Current
	return progress.New(
		progress.WithGradient(string(theme.Primary), string(theme.Secondary)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
		progress.WithFillCharacters(firstRune(sym.BarFull), firstRune(sym.BarEmpty)),
	)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
