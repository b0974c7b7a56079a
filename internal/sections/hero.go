package sections

import (
	"strings"

	"folio/internal/assets"
	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"
)

// renderHome draws the hero: banner art, the spaced-out name, the
// typed role line and the contact meta line.
func renderHome(page content.Page, v View) string {
	var s strings.Builder
	t := v.Reveal
	sym := symbols.Current

	s.WriteString(fadeTo(theme.Primary, t).Render(assets.Banner()) + "\n\n")

	s.WriteString(fadeTo(theme.Primary, t).Bold(true).Render(letterspace(page.Profile.Name)) + "\n\n")

	// Typed headline with a steady block cursor at the end.
	caret := fadeTo(theme.Dim, t).Render(sym.Caret + " ")
	typed := fadeTo(theme.Secondary, t).Render(v.Typed)
	cursor := fadeTo(theme.Primary, t).Render(sym.BoxVertical)
	s.WriteString(caret + typed + cursor + "\n\n")

	s.WriteString(wrap(page.Profile.Tagline, v.Width, fadeBody(t)) + "\n\n")

	meta := page.Profile.Location + "  " + sym.Bullet + "  " + sym.Mail + " " + page.Profile.Email
	s.WriteString(wrap(meta, v.Width, fadeTo(theme.Dim, t)))

	return s.String()
}

// letterspace spreads a name out one space per letter, the terminal
// stand-in for a display typeface.
func letterspace(name string) string {
	return strings.Join(strings.Split(name, ""), " ")
}
