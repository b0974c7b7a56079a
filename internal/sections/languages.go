package sections

import (
	"fmt"
	"math"
	"strings"

	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// ringCells is the number of cells in a language ring.
const ringCells = 12

// ringLayout maps the glyph grid onto clockwise cell indexes starting
// at twelve o'clock. Cells marked -1 stay blank.
var ringLayout = [5][5]int{
	{-1, 11, 0, 1, -1},
	{10, -1, -1, -1, 2},
	{9, -1, -1, -1, 3},
	{8, -1, -1, -1, 4},
	{-1, 7, 6, 5, -1},
}

// renderLanguages draws a ring per language, lit clockwise up to the
// spoken level.
func renderLanguages(page content.Page, v View) string {
	var s strings.Builder
	s.WriteString(heading(Languages, v) + "\n\n")

	const blockW = 14
	perRow := v.Width / blockW
	if perRow < 1 {
		perRow = 1
	}

	blocks := make([]string, 0, len(page.Languages))
	for _, lang := range page.Languages {
		blocks = append(blocks, ringBlock(lang, v.ringFill(lang.Name, lang.Level), v.Reveal, blockW))
	}

	var rows []string
	for i := 0; i < len(blocks); i += perRow {
		end := min(i+perRow, len(blocks))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks[i:end]...))
	}
	s.WriteString(strings.Join(rows, "\n\n"))
	return s.String()
}

// ringBlock draws one ring with the percent and name beneath it.
func ringBlock(lang content.Language, fill, t float64, width int) string {
	lit := int(math.Round(fill * ringCells))
	if lit > ringCells {
		lit = ringCells
	}
	if lit < 0 {
		lit = 0
	}

	on := fadeTo(theme.Primary, t)
	off := fadeTo(theme.Border, t)
	sym := symbols.Current

	var b strings.Builder
	for r := 0; r < len(ringLayout); r++ {
		cells := make([]string, 0, len(ringLayout[r]))
		for c := 0; c < len(ringLayout[r]); c++ {
			idx := ringLayout[r][c]
			switch {
			case idx < 0:
				cells = append(cells, " ")
			case idx < lit:
				cells = append(cells, on.Render(sym.RingOn))
			default:
				cells = append(cells, off.Render(sym.RingOff))
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(cells, " ")) + "\n")
	}
	pct := fadeTo(theme.Secondary, t).Bold(true).Render(fmt.Sprintf("%d%%", lang.Level))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, pct) + "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fadeBody(t).Render(lang.Name)))
	return b.String()
}
