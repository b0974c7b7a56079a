package handlers

import (
	"testing"

	"folio/internal/sections"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPageActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want Kind
	}{
		{"q", KindQuit},
		{"ctrl+c", KindQuit},
		{"m", KindToggleMenu},
		{"k", KindLineUp},
		{"up", KindLineUp},
		{"j", KindLineDown},
		{"down", KindLineDown},
		{"pgup", KindPageUp},
		{"pgdown", KindPageDown},
		{"g", KindTop},
		{"G", KindBottom},
		{"[", KindPrevSection},
		{"]", KindNextSection},
		{"r", KindToggleMotion},
		{"a", KindToggleGlyphs},
		{"x", KindNone},
		{"enter", KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := km.Handle(keyPress(tt.key), false)
			if got.Kind != tt.want {
				t.Errorf("Handle(%q) = %v, want %v", tt.key, got.Kind, tt.want)
			}
		})
	}
}

func TestDigitJumpTargets(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want sections.Section
	}{
		{"1", sections.Home},
		{"2", sections.About},
		{"5", sections.Experience},
		{"9", sections.Languages},
		{"0", sections.Contact},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := km.Handle(keyPress(tt.key), false)
			if got.Kind != KindJump {
				t.Fatalf("Handle(%q).Kind = %v, want KindJump", tt.key, got.Kind)
			}
			if got.Section != tt.want {
				t.Errorf("Handle(%q).Section = %v, want %v", tt.key, got.Section, tt.want)
			}
		})
	}
}

func TestMenuCapturesKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want Kind
	}{
		{"k", KindMenuUp},
		{"j", KindMenuDown},
		{"enter", KindMenuSelect},
		{"esc", KindMenuClose},
		{"m", KindMenuClose},
		{"q", KindQuit},
		{"]", KindNone}, // section hops are page keys, not menu keys
		{"5", KindNone},
		{"a", KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := km.Handle(keyPress(tt.key), true)
			if got.Kind != tt.want {
				t.Errorf("menu Handle(%q) = %v, want %v", tt.key, got.Kind, tt.want)
			}
		})
	}
}

func TestKindStringsAreDistinct(t *testing.T) {
	kinds := []Kind{
		KindNone, KindQuit, KindLineUp, KindLineDown, KindPageUp,
		KindPageDown, KindTop, KindBottom, KindPrevSection,
		KindNextSection, KindJump, KindToggleMenu, KindMenuUp,
		KindMenuDown, KindMenuSelect, KindMenuClose, KindToggleMotion,
		KindToggleGlyphs,
	}
	seen := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "unknown" {
			t.Errorf("kind %d has no name", int(k))
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("kinds %v and %v share the name %q", prev, k, s)
		}
		seen[s] = k
	}
}
