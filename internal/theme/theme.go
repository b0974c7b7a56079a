// Package theme centralizes the color palette and shared lipgloss
// styles for the page.
package theme

import (
	"folio/internal/symbols"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color palette - Tokyo Night inspired
var (
	Primary    = lipgloss.Color("#7aa2f7") // Tokyo Night blue
	Secondary  = lipgloss.Color("#9ece6a") // Tokyo Night green
	Accent     = lipgloss.Color("#f7768e") // Tokyo Night red/pink
	Warning    = lipgloss.Color("#e0af68") // Tokyo Night yellow
	Text       = lipgloss.Color("#c0caf5") // Tokyo Night foreground
	Dim        = lipgloss.Color("#565f89") // Tokyo Night comment
	Background = lipgloss.Color("#1a1b26") // Tokyo Night background
	Border     = lipgloss.Color("#414868") // Tokyo Night border
)

// Styles
var (
	// Hero name, big and blue
	Name = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Section headings
	Title = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(Text)

	// Nav bar chrome: transparent at the top of the page, solid once
	// the reader scrolls
	NavBar = lipgloss.NewStyle().
		Padding(0, 1)

	NavBarSolid = lipgloss.NewStyle().
			Padding(0, 1).
			Background(Border)

	NavItem = lipgloss.NewStyle().
		Foreground(Dim).
		Padding(0, 1)

	NavItemActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	// Collapsed menu overlay items
	MenuItem = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(Text)

	SelectedMenuItem = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Background(Primary).
				Foreground(Background).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary)

	// Card around services and projects. Renders override the border
	// with BoxBorder so the glyph set decides the corners.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	// Footer help line
	Help = lipgloss.NewStyle().
		Foreground(Dim).
		Align(lipgloss.Center).
		Italic(true)
)

// Fade blends from the page background to the body text color.
// Progress 0 is invisible, progress 1 is fully revealed.
func Fade(t float64) lipgloss.Color {
	return FadeTo(Text, t)
}

// FadeTo blends from the page background to an arbitrary target color.
// The endpoints return the exact palette colors, so a finished reveal
// is indistinguishable from never having animated.
func FadeTo(target lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return Background
	}
	if t >= 1 {
		return target
	}
	from, err := colorful.Hex(string(Background))
	if err != nil {
		return target
	}
	to, err := colorful.Hex(string(target))
	if err != nil {
		return target
	}
	return lipgloss.Color(from.BlendLuv(to, t).Clamped().Hex())
}

// BoxBorder builds the card frame from the active glyph set, so ASCII
// terminals get ASCII corners. Called at render time because the set
// can change while the program runs.
func BoxBorder() lipgloss.Border {
	sym := symbols.Current
	return lipgloss.Border{
		Top:         sym.BoxHorizontal,
		Bottom:      sym.BoxHorizontal,
		Left:        sym.BoxVertical,
		Right:       sym.BoxVertical,
		TopLeft:     sym.BoxTopLeft,
		TopRight:    sym.BoxTopRight,
		BottomLeft:  sym.BoxBottomLeft,
		BottomRight: sym.BoxBottomRight,
	}
}
