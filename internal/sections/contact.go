package sections

import (
	"strings"

	"folio/internal/content"
	"folio/internal/symbols"
	"folio/internal/theme"
)

// renderContact draws the closing call to action with the mail line
// and external links.
func renderContact(page content.Page, v View) string {
	var s strings.Builder
	t := v.Reveal
	sym := symbols.Current

	s.WriteString(heading(Contact, v) + "\n\n")
	s.WriteString(wrap(page.Contact.Blurb, v.Width, fadeBody(t)) + "\n\n")

	s.WriteString(fadeTo(theme.Primary, t).Bold(true).Render(sym.Mail+" "+page.Contact.Email) + "\n\n")

	urlW := v.Width - 4
	if urlW < 16 {
		urlW = 16
	}
	for i, l := range page.Contact.Links {
		if i > 0 {
			s.WriteString("\n")
		}
		arrow := fadeTo(theme.Secondary, t).Render(sym.Arrow)
		label := fadeBody(t).Render(l.Label)
		s.WriteString(arrow + " " + label + "\n")
		for _, line := range strings.Split(wrap(l.URL, urlW, fadeTo(theme.Dim, t).Underline(true)), "\n") {
			s.WriteString("    " + line + "\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}
