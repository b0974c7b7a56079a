package internal

import (
	"fmt"
	"strings"

	"folio/internal/assets"
	"folio/internal/sections"
	"folio/internal/symbols"
	"folio/internal/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Chrome styles not shared with the section renderers
var (
	// Footer status row under the help line
	statusStyle = lipgloss.NewStyle().
			Foreground(theme.Dim).
			Align(lipgloss.Center)

	// Splash spinner line
	splashSpinStyle = lipgloss.NewStyle().
			Foreground(theme.Dim).
			Italic(true)
)

// renderSplash draws the centered title card shown while the page warms up.
func (m Model) renderSplash() string {
	var s strings.Builder
	sym := symbols.Current

	s.WriteString(theme.Name.Render(assets.Banner()) + "\n\n")
	s.WriteString(theme.Title.Render(GetAppTitle()) + "\n")
	s.WriteString(theme.Subtitle.Render(m.page.Profile.Name+" "+sym.Sparkle) + "\n\n")
	s.WriteString(splashSpinStyle.Render(symbols.ProgressFrame(m.splashFrame) + " warming up the terminal"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

// renderPage draws the page chrome around the scrolling document. The
// menu overlay takes the document's place while it is open, so the nav
// bar and footer never move.
func (m Model) renderPage() string {
	center := m.vp.View()
	if m.nav.MenuOpen() {
		center = m.renderMenu()
	}
	return m.renderNavBar() + "\n" + center + "\n" + m.renderFooter()
}

// renderNavBar draws the top bar: the name brand and one link per
// section, with the active one highlighted. The bar is transparent at
// the top of the page and solid once the reader scrolls. When the
// terminal is too narrow for the full link row it collapses to a
// burger and the active section title.
func (m Model) renderNavBar() string {
	sym := symbols.Current
	active := m.nav.Active()

	brand := theme.Name.Render(m.page.Profile.Name)

	items := make([]string, 0, len(sections.All()))
	for _, s := range sections.All() {
		if s.ID() == active {
			items = append(items, theme.NavItemActive.Render(sym.ActiveDot+" "+s.String()))
		} else {
			items = append(items, theme.NavItem.Render(s.String()))
		}
	}
	row := brand + " " + lipgloss.JoinHorizontal(lipgloss.Center, items...)

	if lipgloss.Width(row) > m.width-2 {
		s, _ := sections.FromID(active)
		row = brand + "  " + theme.NavItem.Render(sym.Burger+" "+s.String())
	}
	if lipgloss.Width(row) > m.width-2 {
		row = brand
	}

	bar := theme.NavBar
	if m.nav.Scrolled() {
		bar = theme.NavBarSolid
	}
	return bar.Width(m.width).Render(row)
}

// renderMenu draws the collapsed menu overlay: every section with its
// jump digit, the cursor on the highlighted row.
func (m Model) renderMenu() string {
	var s strings.Builder
	sym := symbols.Current

	s.WriteString(theme.Title.Render("Sections") + "\n\n")

	selected := theme.SelectedMenuItem.Border(theme.BoxBorder())
	for i, sec := range sections.All() {
		label := fmt.Sprintf("%d. %s", (i+1)%10, sec)
		if i == m.menuCursor {
			s.WriteString(selected.Render(sym.Caret+" "+label) + "\n")
		} else {
			s.WriteString(theme.MenuItem.Render("  "+label) + "\n")
		}
	}

	return lipgloss.Place(m.width, m.vp.Height, lipgloss.Center, lipgloss.Center, s.String())
}

// renderFooter draws the two footer rows: the key help line, then a
// status row. The status shows the version signature, the way back to
// the top once the reader has scrolled, or the reduced motion notice.
func (m Model) renderFooter() string {
	bindings := m.keys.ShortHelp()
	if m.nav.MenuOpen() {
		bindings = m.keys.MenuHelp()
	}
	help := theme.Help.Width(m.width).Render(ansi.Truncate(helpLine(bindings), m.width, ""))

	style := statusStyle
	status := GetSubtitle()
	switch {
	case m.nav.MenuOpen():
	case m.nav.Scrolled():
		status = symbols.Current.UpArrow + " g takes you back to the top"
	case m.settings.ReducedMotion:
		status = "reduced motion on " + symbols.Current.Bullet + " r resumes animation"
		style = statusStyle.Foreground(theme.Warning)
	}
	return help + "\n" + style.Width(m.width).Render(ansi.Truncate(status, m.width, ""))
}

// helpLine joins key bindings into the footer help format.
func helpLine(bindings []key.Binding) string {
	sep := " " + symbols.Current.Bullet + " "
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, sep)
}
