// Package nav decides which section of the page owns the navigation
// highlight, and tracks the state of the nav chrome itself.
package nav

// Defaults for the highlight lookahead and the solid-bar threshold,
// both in the same row units as the anchors.
const (
	DefaultLookahead      = 80
	DefaultSolidThreshold = 50
)

// Anchor ties a section id to the document row where it starts.
type Anchor struct {
	ID  string
	Top int
}

// Controller maps a scroll offset onto the active section and manages
// the collapsed menu state.
type Controller struct {
	lookahead int
	solidAt   int
	anchors   []Anchor
	offset    int
	menuOpen  bool
}

// NewController builds a controller. Values at or below zero fall back
// to the package defaults.
func NewController(lookahead, solidAt int) *Controller {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	if solidAt <= 0 {
		solidAt = DefaultSolidThreshold
	}
	return &Controller{lookahead: lookahead, solidAt: solidAt}
}

// SetAnchors replaces the anchor list. Anchors must already be in
// document order; relayouts call this again with fresh rows.
func (c *Controller) SetAnchors(anchors []Anchor) {
	c.anchors = anchors
}

// SetOffset records the current scroll offset.
func (c *Controller) SetOffset(offset int) {
	c.offset = offset
}

// Offset returns the last recorded scroll offset.
func (c *Controller) Offset() int { return c.offset }

// Active returns the id of the section owning the highlight: the last
// anchor whose top row has come within the lookahead of the current
// offset. With no anchors, or before the first anchor is reached, it
// returns the empty string.
func (c *Controller) Active() string {
	limit := c.offset + c.lookahead
	for i := len(c.anchors) - 1; i >= 0; i-- {
		if c.anchors[i].Top <= limit {
			return c.anchors[i].ID
		}
	}
	return ""
}

// Scrolled reports whether the page has moved far enough for the nav
// bar to render solid instead of transparent.
func (c *Controller) Scrolled() bool {
	return c.offset > c.solidAt
}

// MenuOpen reports whether the collapsed menu overlay is showing.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// ToggleMenu flips the collapsed menu overlay.
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
}

// CloseMenu hides the collapsed menu overlay.
func (c *Controller) CloseMenu() {
	c.menuOpen = false
}

// Navigate resolves a section id to its anchor row. Any navigation
// attempt closes the menu, even one naming an unknown id.
func (c *Controller) Navigate(id string) (top int, ok bool) {
	c.menuOpen = false
	for _, a := range c.anchors {
		if a.ID == id {
			return a.Top, true
		}
	}
	return 0, false
}
