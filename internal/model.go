// Package internal provides the core application model and state management for Folio's TUI.
//
// This package implements the Bubble Tea model pattern for the scroll-driven portfolio page.
// The model handles:
//   - The splash screen and the transition onto the page
//   - Smooth scrolling between sections with a damped spring
//   - One-shot section reveals keyed off viewport visibility
//   - The typed headline cycle and its generation-tagged timers
//   - The nav bar highlight, the collapsed menu overlay and digit jumps
//   - Persisting display preferences when they change
//
// Animation runs on a frame chain: a FrameMsg is only rescheduled while
// the scroll spring or a reveal tween is still moving, so an idle page
// costs nothing.
package internal

import (
	"math"
	"strings"
	"time"

	"folio/internal/content"
	"folio/internal/handlers"
	"folio/internal/motion"
	"folio/internal/nav"
	"folio/internal/sections"
	"folio/internal/state"
	"folio/internal/symbols"
	"folio/internal/typing"
	"folio/internal/visibility"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// phase represents the two top-level displays of the application.
type phase int

const (
	phaseSplash phase = iota // animated title card shown at startup
	phasePage                // the scrolling portfolio page
)

// Layout and interaction tuning.
const (
	// Fallback terminal size used until the first WindowSizeMsg arrives.
	defaultWidth  = 100
	defaultHeight = 30

	// chromeHeight is the rows reserved around the viewport: the nav
	// bar plus the two footer rows.
	chromeHeight = 3

	// sectionGap is the blank rows between adjacent sections.
	sectionGap = 2

	// Scroll distances, in document rows.
	lineStep  = 3
	wheelStep = 3

	// Nav tuning in document rows. The highlight hands over when a
	// section top comes within navLookahead of the offset, and the bar
	// turns solid past navSolidAt.
	navLookahead = 4
	navSolidAt   = 2

	// Splash timing.
	splashFrameEvery = 100 * time.Millisecond
	splashDuration   = 1400 * time.Millisecond
)

// Model represents the complete application state for the Folio TUI.
// It implements the tea.Model interface and contains all data needed to
// render the page and drive its animations.
type Model struct {
	// Display dimensions
	width  int
	height int

	// Top-level display state
	phase       phase
	splashFrame int

	// Page content and input
	page content.Page
	keys handlers.KeyMap

	// Persistent display preferences
	settings *Settings

	// Scrolling: the viewport shows the document, the spring decides
	// where its offset is heading
	vp     viewport.Model
	scroll *motion.Scroll

	// Navigation highlight and menu overlay
	nav        *nav.Controller
	menuCursor int

	// Typed headline engine
	typer *typing.Engine

	// Reveal orchestration
	tracker *visibility.Tracker
	reveals map[sections.Section]*motion.Tween

	// Layout
	docHeight int

	// Animation state
	animating bool      // frame chain currently running
	now       time.Time // clock of the latest frame
}

// InitialModel creates and returns a new Model instance with default values.
// It loads persisted preferences, applies the glyph set they ask for and
// lays the page out at a fallback size until the real one is known.
func InitialModel() Model {
	setupDebugLog()

	settings, err := LoadSettings()
	if err != nil {
		debugf("settings load failed: %v", err)
		settings = DefaultSettings()
	}
	if settings.ASCII {
		symbols.ForceASCII()
	}

	page := content.Site

	m := Model{
		width:    defaultWidth,
		height:   defaultHeight,
		phase:    phaseSplash,
		page:     page,
		keys:     handlers.DefaultKeyMap(),
		settings: settings,
		vp:       viewport.New(defaultWidth, defaultHeight-chromeHeight),
		scroll:   motion.NewScroll(),
		nav:      nav.NewController(navLookahead, navSolidAt),
		typer:    typing.New(page.Profile.Roles, typing.Config{}),
		tracker:  visibility.NewTracker(0),
		reveals:  make(map[sections.Section]*motion.Tween),
		now:      time.Now(),
	}
	m.relayout()
	return m
}

// Init implements tea.Model.Init() and schedules the splash screen
// spinner along with the timer that ends it.
func (m Model) Init() tea.Cmd {
	return tea.Batch(splashTick(), splashDone())
}

// Update implements tea.Model.Update() and handles all incoming messages.
// This is the central message router that processes user input, animation
// frames, typing timers and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case state.SplashTickMsg:
		if m.phase != phaseSplash {
			return m, nil
		}
		m.splashFrame++
		return m, splashTick()

	case state.SplashDoneMsg:
		if m.phase != phaseSplash {
			return m, nil
		}
		cmd := m.finishSplash()
		return m, cmd

	case state.FrameMsg:
		if m.phase != phasePage {
			return m, nil
		}
		m.now = msg.Time
		if !m.scroll.Settled() {
			pos, _ := m.scroll.Update()
			m.vp.SetYOffset(int(math.Round(pos)))
			m.nav.SetOffset(m.vp.YOffset)
			m.observe()
		}
		m.rebuild()
		if m.stillAnimating() {
			return m, frameTick()
		}
		m.animating = false
		return m, nil

	case state.TypeTickMsg:
		if m.phase != phasePage || m.settings.ReducedMotion {
			return m, nil
		}
		d, ok := m.typer.Advance(msg.Gen)
		if !ok {
			// Stale timer from a stopped or restarted cycle.
			return m, nil
		}
		m.rebuild()
		return m, typeTick(d, m.typer.Generation())

	case tea.MouseMsg:
		if m.phase != phasePage || m.nav.MenuOpen() {
			return m, nil
		}
		m.now = time.Now()
		var cmd tea.Cmd
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			cmd = m.scrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			cmd = m.scrollBy(wheelStep)
		}
		return m, cmd

	case tea.KeyMsg:
		m.now = time.Now()

		// Any key dismisses the splash early.
		if m.phase == phaseSplash {
			if m.keys.Handle(msg, false).Kind == handlers.KindQuit {
				return m.quit()
			}
			cmd := m.finishSplash()
			return m, cmd
		}

		var cmd tea.Cmd
		action := m.keys.Handle(msg, m.nav.MenuOpen())
		switch action.Kind {
		case handlers.KindQuit:
			return m.quit()

		case handlers.KindLineUp:
			cmd = m.scrollBy(-lineStep)
		case handlers.KindLineDown:
			cmd = m.scrollBy(lineStep)
		case handlers.KindPageUp:
			cmd = m.scrollBy(-m.pageStep())
		case handlers.KindPageDown:
			cmd = m.scrollBy(m.pageStep())
		case handlers.KindTop:
			cmd = m.scrollTo(0)
		case handlers.KindBottom:
			cmd = m.scrollTo(m.maxOffset())

		case handlers.KindPrevSection:
			idx := max(m.activeIndex()-1, 0)
			cmd = m.jumpToSection(sections.Section(idx))
		case handlers.KindNextSection:
			idx := min(m.activeIndex()+1, len(sections.All())-1)
			cmd = m.jumpToSection(sections.Section(idx))
		case handlers.KindJump:
			cmd = m.jumpToSection(action.Section)

		case handlers.KindToggleMenu:
			m.nav.ToggleMenu()
			if m.nav.MenuOpen() {
				m.menuCursor = max(m.activeIndex(), 0)
			}
		case handlers.KindMenuUp:
			if m.menuCursor > 0 {
				m.menuCursor--
			} else {
				m.menuCursor = len(sections.All()) - 1
			}
		case handlers.KindMenuDown:
			if m.menuCursor < len(sections.All())-1 {
				m.menuCursor++
			} else {
				m.menuCursor = 0
			}
		case handlers.KindMenuSelect:
			cmd = m.jumpToSection(sections.All()[m.menuCursor])
		case handlers.KindMenuClose:
			m.nav.CloseMenu()

		case handlers.KindToggleMotion:
			cmd = m.toggleMotion()
		case handlers.KindToggleGlyphs:
			m.toggleGlyphs()
		}
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.View() and renders the current display.
func (m Model) View() string {
	if m.phase == phaseSplash {
		return m.renderSplash()
	}
	return m.renderPage()
}

// quit persists preferences and shuts the program down.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := SaveSettings(m.settings); err != nil {
		debugf("settings save failed: %v", err)
	}
	closeDebugLog()
	return m, tea.Quit
}

// finishSplash switches to the page, starts the typed headline and
// fires the reveals already in view.
func (m *Model) finishSplash() tea.Cmd {
	m.phase = phasePage
	m.now = time.Now()

	var cmds []tea.Cmd
	if !m.settings.ReducedMotion {
		if d, ok := m.typer.Start(); ok {
			cmds = append(cmds, typeTick(d, m.typer.Generation()))
		}
	}
	m.observe()
	m.rebuild()
	if m.stillAnimating() {
		cmds = append(cmds, m.startAnimation())
	}
	return tea.Batch(cmds...)
}

// toggleMotion flips reduced motion and persists the choice. Turning it
// on finishes every animation in place; turning it off restarts the
// typed headline and lets unrevealed sections animate again.
func (m *Model) toggleMotion() tea.Cmd {
	m.settings.ReducedMotion = !m.settings.ReducedMotion
	if err := SaveSettings(m.settings); err != nil {
		debugf("settings save failed: %v", err)
	}
	debugf("reduced motion: %t", m.settings.ReducedMotion)

	if m.settings.ReducedMotion {
		m.typer.Stop()
		m.scroll.JumpTo(m.scroll.Target())
		m.vp.SetYOffset(int(m.scroll.Pos()))
		m.nav.SetOffset(m.vp.YOffset)
		m.observe()
		m.rebuild()
		return nil
	}

	m.rebuild()
	var cmds []tea.Cmd
	if d, ok := m.typer.Start(); ok {
		cmds = append(cmds, typeTick(d, m.typer.Generation()))
	}
	if m.stillAnimating() {
		cmds = append(cmds, m.startAnimation())
	}
	return tea.Batch(cmds...)
}

// toggleGlyphs swaps the glyph set and persists the choice. Glyph
// widths differ between the sets, so the page is laid out again.
func (m *Model) toggleGlyphs() {
	m.settings.ASCII = !m.settings.ASCII
	if err := SaveSettings(m.settings); err != nil {
		debugf("settings save failed: %v", err)
	}
	if m.settings.ASCII {
		symbols.ForceASCII()
	} else {
		symbols.ForceUnicode()
	}
	debugf("ascii glyphs: %t", m.settings.ASCII)
	m.relayout()
}

// relayout measures every section at the current width, rebuilds the
// anchor table and visibility regions, and re-renders the document.
// Regions keep their fired state across relayouts, so a resize never
// replays reveals.
func (m *Model) relayout() {
	m.vp.Width = m.width
	m.vp.Height = max(m.height-chromeHeight, 1)

	all := sections.All()
	anchors := make([]nav.Anchor, 0, len(all))
	measure := sections.View{Width: m.width, Reveal: 1}

	top := 0
	for i, s := range all {
		h := lipgloss.Height(sections.Render(s, m.page, measure))
		anchors = append(anchors, nav.Anchor{ID: s.ID(), Top: top})
		m.tracker.Attach(s.ID(), visibility.Region{Top: top, Height: h})
		top += h
		if i < len(all)-1 {
			top += sectionGap
		}
	}
	m.nav.SetAnchors(anchors)
	m.docHeight = top

	m.rebuild()
	if off := min(m.vp.YOffset, m.maxOffset()); off != m.vp.YOffset {
		m.vp.SetYOffset(off)
	}
	m.scroll.JumpTo(float64(m.vp.YOffset))
	m.nav.SetOffset(m.vp.YOffset)
	m.observe()
}

// rebuild re-renders the document with the current animation state and
// hands it to the viewport. Renders only recolor, so the document keeps
// the exact row layout relayout measured.
func (m *Model) rebuild() {
	all := sections.All()
	gap := strings.Repeat("\n", sectionGap+1)
	blocks := make([]string, 0, len(all))
	for _, s := range all {
		blocks = append(blocks, sections.Render(s, m.page, m.sectionView(s)))
	}
	m.vp.SetContent(strings.Join(blocks, gap))
}

// sectionView assembles the animation state one section renders with.
func (m Model) sectionView(s sections.Section) sections.View {
	if m.settings.ReducedMotion {
		// Finished state, full headline, no per-element animation.
		return sections.View{Width: m.width, Reveal: 1, Typed: m.typer.Phrase()}
	}

	v := sections.View{Width: m.width, Typed: m.typer.Display()}
	t := 0.0
	if tw := m.reveals[s]; tw != nil {
		t = tw.Value(m.now)
	}
	v.Reveal = t

	switch s {
	case sections.About:
		v.Counts = make(map[string]int, len(m.page.Counters))
		for _, c := range m.page.Counters {
			v.Counts[c.Label] = int(math.Round(t * float64(c.Value)))
		}
	case sections.Skills:
		v.Bars = make(map[string]float64, len(m.page.Skills))
		for _, sk := range m.page.Skills {
			v.Bars[sk.Name] = t * float64(sk.Level) / 100
		}
	case sections.Languages:
		v.Rings = make(map[string]float64, len(m.page.Languages))
		for _, l := range m.page.Languages {
			v.Rings[l.Name] = t * float64(l.Level) / 100
		}
	}
	return v
}

// observe fires reveal tweens for sections newly visible at the current
// offset. During the splash nothing fires, so the hero animates when
// the page actually appears.
func (m *Model) observe() {
	if m.phase != phasePage {
		return
	}
	for _, id := range m.tracker.Observe(m.vp.YOffset, m.vp.Height) {
		s, ok := sections.FromID(id)
		if !ok {
			continue
		}
		tw := motion.NewTween(0, 1, motion.DefaultRevealDelay, motion.DefaultRevealDuration, nil)
		tw.Start(m.now)
		m.reveals[s] = tw
		debugf("reveal: %s", id)
	}
}

// scrollTo aims the scroll spring at a document row. Under reduced
// motion the jump is immediate.
func (m *Model) scrollTo(target int) tea.Cmd {
	target = min(max(target, 0), m.maxOffset())
	if m.settings.ReducedMotion {
		m.scroll.JumpTo(float64(target))
		m.vp.SetYOffset(target)
		m.nav.SetOffset(m.vp.YOffset)
		m.observe()
		m.rebuild()
		return nil
	}
	m.scroll.MoveTo(float64(target))
	return m.startAnimation()
}

// scrollBy moves relative to where the scroll is already heading, so
// repeated key presses accumulate instead of fighting the spring.
func (m *Model) scrollBy(delta int) tea.Cmd {
	return m.scrollTo(int(math.Round(m.scroll.Target())) + delta)
}

// jumpToSection scrolls to a section anchor. Resolving the target also
// closes the menu overlay.
func (m *Model) jumpToSection(s sections.Section) tea.Cmd {
	top, ok := m.nav.Navigate(s.ID())
	if !ok {
		return nil
	}
	debugf("navigate: %s (row %d)", s.ID(), top)
	return m.scrollTo(top)
}

// activeIndex returns the index of the section owning the nav
// highlight, or -1 before the first anchor is reached.
func (m Model) activeIndex() int {
	s, ok := sections.FromID(m.nav.Active())
	if !ok {
		return -1
	}
	return int(s)
}

// pageStep is the rows a page up or down moves: one viewport minus a
// little overlap for continuity.
func (m Model) pageStep() int {
	return max(m.vp.Height-2, 1)
}

// maxOffset is the largest scroll offset that still fills the viewport.
func (m Model) maxOffset() int {
	return max(m.docHeight-m.vp.Height, 0)
}

// startAnimation begins the frame chain if it is not already running.
// FrameMsg handling keeps the chain alive while anything still moves.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating || m.settings.ReducedMotion {
		return nil
	}
	m.animating = true
	return frameTick()
}

// stillAnimating reports whether another frame is worth scheduling.
func (m Model) stillAnimating() bool {
	if m.settings.ReducedMotion {
		return false
	}
	if !m.scroll.Settled() {
		return true
	}
	for _, tw := range m.reveals {
		if tw.Started() && !tw.Done(m.now) {
			return true
		}
	}
	return false
}

// frameTick schedules the next animation frame.
func frameTick() tea.Cmd {
	return tea.Tick(time.Second/motion.FrameRate, func(t time.Time) tea.Msg {
		return state.FrameMsg{Time: t}
	})
}

// typeTick schedules the next typed headline step under the generation
// that requested it.
func typeTick(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return state.TypeTickMsg{Gen: gen}
	})
}

// splashTick schedules the next splash spinner frame.
func splashTick() tea.Cmd {
	return tea.Tick(splashFrameEvery, func(time.Time) tea.Msg {
		return state.SplashTickMsg{}
	})
}

// splashDone schedules the end of the splash screen.
func splashDone() tea.Cmd {
	return tea.Tick(splashDuration, func(time.Time) tea.Msg {
		return state.SplashDoneMsg{}
	})
}
