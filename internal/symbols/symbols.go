// Package symbols provides Unicode symbol definitions with fallback support for cross-platform compatibility.
//
// It keeps the page legible on terminals that cannot render Unicode
// by swapping every glyph for an ASCII stand-in, either automatically
// from terminal detection or explicitly via FOLIO_ASCII=1.
package symbols

import (
	"os"
	"strings"
)

// Set defines the collection of glyphs used throughout the page
type Set struct {
	// Status indicators
	Success string
	Error   string
	Info    string

	// Navigation chrome
	Burger    string // collapsed-menu button
	Caret     string // menu cursor
	ActiveDot string // active nav item marker
	UpArrow   string // back-to-top hint

	// List and timeline decorations
	Bullet       string
	Arrow        string
	TimelineNode string
	TimelineLine string

	// Language ring cells
	RingOn  string
	RingOff string

	// Skill bar cells
	BarFull  string
	BarEmpty string

	// Splash animation frames
	Progress []string

	// UI elements
	BoxTopLeft     string
	BoxTopRight    string
	BoxBottomLeft  string
	BoxBottomRight string
	BoxHorizontal  string
	BoxVertical    string

	// Misc
	Sparkle string
	Mail    string
}

// Unicode provides rich glyphs for modern terminals
var Unicode = Set{
	// Status indicators
	Success: "✓",
	Error:   "✗",
	Info:    "🔍",

	// Navigation chrome
	Burger:    "☰",
	Caret:     "❯",
	ActiveDot: "●",
	UpArrow:   "↑",

	// List and timeline decorations
	Bullet:       "•",
	Arrow:        "➜",
	TimelineNode: "◉",
	TimelineLine: "│",

	// Language ring cells
	RingOn:  "●",
	RingOff: "○",

	// Skill bar cells
	BarFull:  "█",
	BarEmpty: "░",

	// Splash animation frames
	Progress: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},

	// UI elements (using rounded corners)
	BoxTopLeft:     "╭",
	BoxTopRight:    "╮",
	BoxBottomLeft:  "╰",
	BoxBottomRight: "╯",
	BoxHorizontal:  "─",
	BoxVertical:    "│",

	// Misc
	Sparkle: "✨",
	Mail:    "✉",
}

// ASCII provides ASCII-only fallbacks for compatibility
var ASCII = Set{
	// Status indicators
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",

	// Navigation chrome
	Burger:    "=",
	Caret:     ">",
	ActiveDot: "*",
	UpArrow:   "^",

	// List and timeline decorations
	Bullet:       "*",
	Arrow:        "->",
	TimelineNode: "o",
	TimelineLine: "|",

	// Language ring cells
	RingOn:  "#",
	RingOff: ".",

	// Skill bar cells
	BarFull:  "#",
	BarEmpty: "-",

	// Splash animation frames
	Progress: []string{"|", "/", "-", "\\"},

	// UI elements (using ASCII box drawing)
	BoxTopLeft:     "+",
	BoxTopRight:    "+",
	BoxBottomLeft:  "+",
	BoxBottomRight: "+",
	BoxHorizontal:  "-",
	BoxVertical:    "|",

	// Misc
	Sparkle: "*",
	Mail:    "@",
}

// Current holds the active glyph set based on terminal capabilities
var Current Set

// init determines which glyph set to use based on environment
func init() {
	Current = detectSet()
}

// detectSet determines the appropriate glyph set based on terminal capabilities
func detectSet() Set {
	// Check for explicit ASCII mode via environment variable
	if os.Getenv("FOLIO_ASCII") == "1" || os.Getenv("FOLIO_ASCII") == "true" {
		return ASCII
	}

	// Check TERM environment variable for known problematic terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCII
	}

	// Check for Windows Console (cmd.exe) which has limited Unicode support
	if os.Getenv("COMSPEC") != "" && !isWindowsTerminal() {
		return ASCII
	}

	// Check for SSH connections which might have encoding issues
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		// Only use ASCII for SSH if locale doesn't support UTF-8
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCII
		}
	}

	// Default to Unicode for modern terminals
	return Unicode
}

// isWindowsTerminal detects if running in Windows Terminal (which supports Unicode well)
func isWindowsTerminal() bool {
	// Windows Terminal sets this environment variable
	return os.Getenv("WT_SESSION") != ""
}

// Detect re-runs terminal detection. Hosts that load environment files
// after package init call this so those variables still count.
func Detect() {
	Current = detectSet()
}

// ForceASCII switches to ASCII glyphs regardless of terminal detection
func ForceASCII() {
	Current = ASCII
}

// ForceUnicode switches to Unicode glyphs regardless of terminal detection
func ForceUnicode() {
	Current = Unicode
}

// ProgressFrame returns the splash animation frame for a tick
func ProgressFrame(tick int) string {
	frames := Current.Progress
	if len(frames) == 0 {
		return ""
	}
	return frames[tick%len(frames)]
}

// FormatError formats an error message with the appropriate symbol
func FormatError(message string) string {
	return Current.Error + " " + message
}

// FormatInfo formats an info message with the appropriate symbol
func FormatInfo(message string) string {
	return Current.Info + " " + message
}
