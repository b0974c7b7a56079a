package handlers

import (
	"folio/internal/sections"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind enumerates everything a key press can ask the page to do
type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindLineUp
	KindLineDown
	KindPageUp
	KindPageDown
	KindTop
	KindBottom
	KindPrevSection
	KindNextSection
	KindJump
	KindToggleMenu
	KindMenuUp
	KindMenuDown
	KindMenuSelect
	KindMenuClose
	KindToggleMotion
	KindToggleGlyphs
)

// String returns the kind's name for debug logging
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindQuit:
		return "quit"
	case KindLineUp:
		return "line-up"
	case KindLineDown:
		return "line-down"
	case KindPageUp:
		return "page-up"
	case KindPageDown:
		return "page-down"
	case KindTop:
		return "top"
	case KindBottom:
		return "bottom"
	case KindPrevSection:
		return "prev-section"
	case KindNextSection:
		return "next-section"
	case KindJump:
		return "jump"
	case KindToggleMenu:
		return "toggle-menu"
	case KindMenuUp:
		return "menu-up"
	case KindMenuDown:
		return "menu-down"
	case KindMenuSelect:
		return "menu-select"
	case KindMenuClose:
		return "menu-close"
	case KindToggleMotion:
		return "toggle-motion"
	case KindToggleGlyphs:
		return "toggle-glyphs"
	default:
		return "unknown"
	}
}

// Action is the result of dispatching a key press. Section carries the
// jump target when Kind is KindJump.
type Action struct {
	Kind    Kind
	Section sections.Section
}

// Handle maps a key press onto a page action. The menu overlay
// captures movement and selection keys while it is open.
func (k KeyMap) Handle(msg tea.KeyMsg, menuOpen bool) Action {
	if menuOpen {
		switch {
		case key.Matches(msg, k.Quit):
			return Action{Kind: KindQuit}
		case key.Matches(msg, k.Up):
			return Action{Kind: KindMenuUp}
		case key.Matches(msg, k.Down):
			return Action{Kind: KindMenuDown}
		case key.Matches(msg, k.Select):
			return Action{Kind: KindMenuSelect}
		case key.Matches(msg, k.Back), key.Matches(msg, k.Menu):
			return Action{Kind: KindMenuClose}
		}
		return Action{}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return Action{Kind: KindQuit}
	case key.Matches(msg, k.Menu):
		return Action{Kind: KindToggleMenu}
	case key.Matches(msg, k.Up):
		return Action{Kind: KindLineUp}
	case key.Matches(msg, k.Down):
		return Action{Kind: KindLineDown}
	case key.Matches(msg, k.PageUp):
		return Action{Kind: KindPageUp}
	case key.Matches(msg, k.PageDown):
		return Action{Kind: KindPageDown}
	case key.Matches(msg, k.Top):
		return Action{Kind: KindTop}
	case key.Matches(msg, k.Bottom):
		return Action{Kind: KindBottom}
	case key.Matches(msg, k.PrevSection):
		return Action{Kind: KindPrevSection}
	case key.Matches(msg, k.NextSection):
		return Action{Kind: KindNextSection}
	case key.Matches(msg, k.Jump):
		return Action{Kind: KindJump, Section: sectionForDigit(msg.String())}
	case key.Matches(msg, k.Motion):
		return Action{Kind: KindToggleMotion}
	case key.Matches(msg, k.Glyphs):
		return Action{Kind: KindToggleGlyphs}
	}
	return Action{}
}

// sectionForDigit maps the digit row onto sections in document order:
// 1 is the first section and 0 the tenth.
func sectionForDigit(digit string) sections.Section {
	if digit == "0" {
		return sections.Contact
	}
	return sections.Section(digit[0] - '1')
}
