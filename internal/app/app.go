// Package app is the root bubbletea model tying the portfolio panels, the
// theme store and the status bar together.
package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avitaltamir/termfolio/internal/components/contactform"
	"github.com/avitaltamir/termfolio/internal/components/navbar"
	"github.com/avitaltamir/termfolio/internal/components/sections"
	"github.com/avitaltamir/termfolio/internal/contact"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/highlight"
	"github.com/avitaltamir/termfolio/internal/layout"
	"github.com/avitaltamir/termfolio/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
)

// Version is the application version, set at build time via ldflags
var Version = "dev"

// FlashDuration is how long a status bar message stays up.
const FlashDuration = 3 * time.Second

// BackToTopPercent is the scroll position past which the status bar offers
// a way back to the top.
const BackToTopPercent = 20

// contactLink is the nav link id that opens the contact form.
const contactLink = "contact"

// Options configures a new Model. Zero values fall back to defaults.
type Options struct {
	Context      context.Context
	Storage      theme.Storage
	Portfolio    content.Portfolio
	Sender       contact.Sender
	SendTimeout  time.Duration
	Clock        clockwork.Clock
	Highlighter  *highlight.Highlighter
	NerdFonts    bool
	ContentPath  string
	WatchContent bool
}

// themeBinding receives theme changes from the store. Listeners run inside
// Toggle, so the model picks the new styles up at the end of the same Update.
type themeBinding struct {
	styles  theme.Styles
	version int
}

// Model is the root application model.
type Model struct {
	// Child components
	nav      navbar.Model
	sections sections.Model
	form     contactform.Model

	// Theme
	store   *theme.Store
	doc     *document
	binding *themeBinding
	applied int

	// Focus state
	focus    PanelID
	showHelp bool

	// Layout
	layout layout.Layout
	keys   KeyMap

	// Status bar flash
	clock        clockwork.Clock
	flash        string
	flashExpires time.Time

	// Content reloads
	reloads <-chan content.Portfolio

	// Window dimensions
	width  int
	height int
	ready  bool
}

// New creates a new application model. The theme is read from storage
// before the first frame so the page never flashes the wrong palette.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Sender == nil {
		opts.Sender = contact.NoopSender{}
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = contactform.DefaultTimeout
	}
	if opts.Highlighter == nil {
		opts.Highlighter = highlight.New(highlight.DefaultCacheSize)
	}
	if opts.Portfolio.Profile.Name == "" {
		opts.Portfolio = content.Default()
	}

	doc := newDocument()
	store := theme.NewStore(opts.Storage, doc)
	store.Initialize()

	binding := &themeBinding{styles: theme.NewStyles(store.IsDark())}
	store.Subscribe(func(isDark bool) {
		binding.styles = theme.NewStyles(isDark)
		binding.version++
	})

	m := Model{
		nav:      navbar.New(opts.Portfolio),
		sections: sections.New(opts.Portfolio, opts.Highlighter, opts.NerdFonts),
		form:     contactform.New(opts.Sender, opts.SendTimeout),
		store:    store,
		doc:      doc,
		binding:  binding,
		focus:    PanelSections,
		keys:     DefaultKeyMap(),
		clock:    opts.Clock,
	}
	m = m.applyStyles()
	m.sections = m.sections.Focus()

	if opts.WatchContent && opts.ContentPath != "" {
		m.reloads = watchContent(opts.Context, opts.ContentPath)
	}

	return m
}

// watchContent runs the content watcher until ctx is done. The returned
// channel is closed when the watcher stops.
func watchContent(ctx context.Context, path string) <-chan content.Portfolio {
	ch := make(chan content.Portfolio)
	go func() {
		defer close(ch)
		err := content.Watch(ctx, path, func(p content.Portfolio) {
			select {
			case ch <- p:
			case <-ctx.Done():
			}
		})
		if err != nil {
			log.Printf("content watcher stopped: %v", err)
		}
	}()
	return ch
}

// waitForReload blocks until the watcher delivers a new portfolio.
func waitForReload(ch <-chan content.Portfolio) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return ContentReloadedMsg{Portfolio: p}
	}
}

// Init initializes the application.
func (m Model) Init() tea.Cmd {
	if m.reloads != nil {
		return waitForReload(m.reloads)
	}
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m = m.syncTheme()

	active := m.sections.CurrentSection()
	if m.focus == PanelContact {
		active = contactLink
	}
	m.nav = m.nav.SetActive(active)

	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m.relayout(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case navbar.NavigateMsg:
		return m.navigate(msg.ID)

	case FocusMsg:
		return m.setFocus(msg.Target)

	case StatusMsg:
		return m.setFlash(msg.Text)

	case flashExpiredMsg:
		if m.flash != "" && !m.clock.Now().Before(m.flashExpires) {
			m.flash = ""
		}
		return m, nil

	case ContentReloadedMsg:
		m.nav = m.nav.SetPortfolio(msg.Portfolio)
		m.sections = m.sections.SetPortfolio(msg.Portfolio)
		var cmd tea.Cmd
		m, cmd = m.setFlash("Content reloaded")
		if m.reloads != nil {
			cmd = tea.Batch(cmd, waitForReload(m.reloads))
		}
		return m, cmd

	case contactform.SentMsg:
		var formCmd, flashCmd tea.Cmd
		m.form, formCmd = m.form.Update(msg)
		text := "Message sent"
		if msg.Err != nil {
			log.Printf("contact: %v", msg.Err)
			text = "Message not sent"
		}
		m, flashCmd = m.setFlash(text)
		return m, tea.Batch(formCmd, flashCmd)
	}

	// Spinner ticks and cursor blinks
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// handleKey routes key presses. Global keys come first, except that plain
// keys belong to the form while a text field has focus.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus == PanelContact {
		switch {
		case key.Matches(msg, m.keys.ThemeAlways):
			return m.toggleTheme()
		case key.Matches(msg, m.keys.Back):
			return m.setFocus(PanelSections)
		}
		if !m.form.Editing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.ToggleTheme):
				return m.toggleTheme()
			case key.Matches(msg, m.keys.Help):
				m.showHelp = true
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.FocusNext):
		return m.setFocus((m.focus + 1) % panelCount)

	case key.Matches(msg, m.keys.FocusPrev):
		return m.setFocus((m.focus + panelCount - 1) % panelCount)

	case key.Matches(msg, m.keys.Contact):
		return m.setFocus(PanelContact)

	case key.Matches(msg, m.keys.Top):
		m.sections = m.sections.Top()
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		links := m.nav.Links()
		n := int(msg.Runes[0] - '1')
		if n >= len(links) {
			return m, nil
		}
		return m.navigate(links[n].ID)
	}

	var cmd tea.Cmd
	switch m.focus {
	case PanelNav:
		m.nav, cmd = m.nav.Update(msg)
	case PanelSections:
		m.sections, cmd = m.sections.Update(msg)
	}
	return m, cmd
}

// handleMouse focuses the panel under a click and scrolls the page with
// the wheel. A click on the toggle glyph flips the theme.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}

	target := m.panelAtPosition(msg.X, msg.Y)

	if tea.MouseEvent(msg).IsWheel() {
		if target == PanelSections {
			var cmd tea.Cmd
			m.sections, cmd = m.sections.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if target == PanelNav && m.nav.HitToggle(msg.X) {
		return m.toggleTheme()
	}
	if target == panelCount || target == m.focus {
		return m, nil
	}
	return m.setFocus(target)
}

// panelAtPosition returns the panel under the given cell, or panelCount
// for the status bar and anything outside the panels.
func (m Model) panelAtPosition(x, y int) PanelID {
	if y < m.layout.NavHeight {
		return PanelNav
	}

	if sx, sy, sw, sh := m.layout.SectionsBounds(); m.layout.SectionsVisible() &&
		x >= sx && x < sx+sw && y >= sy && y < sy+sh {
		return PanelSections
	}

	if cx, cy, cw, ch := m.layout.ContactBounds(); m.layout.ContactVisible() &&
		x >= cx && x < cx+cw && y >= cy && y < cy+ch {
		return PanelContact
	}

	return panelCount
}

// navigate scrolls to a nav link's section, or opens the contact form.
func (m Model) navigate(id string) (Model, tea.Cmd) {
	if id == contactLink {
		return m.setFocus(PanelContact)
	}
	s, ok := m.sections.ScrollTo(id)
	if !ok {
		log.Printf("navigate: unknown section %q", id)
		return m, nil
	}
	m.sections = s
	return m, nil
}

// toggleTheme flips the theme. Styles reach the children through the
// store subscription once Update finishes.
func (m Model) toggleTheme() (Model, tea.Cmd) {
	m.store.Toggle()
	return m.setFlash("Theme: " + theme.Name(m.store.IsDark()))
}

// syncTheme pushes new styles to the children when the store has
// notified since the last sync.
func (m Model) syncTheme() Model {
	if m.binding.version == m.applied {
		return m
	}
	m.applied = m.binding.version
	return m.applyStyles()
}

func (m Model) applyStyles() Model {
	s := m.binding.styles
	m.nav = m.nav.SetStyles(s)
	m.sections = m.sections.SetStyles(s)
	m.form = m.form.SetStyles(s)
	return m
}

// setFlash shows text in the status bar until FlashDuration passes.
func (m Model) setFlash(text string) (Model, tea.Cmd) {
	m.flash = text
	m.flashExpires = m.clock.Now().Add(FlashDuration)
	clock := m.clock
	return m, func() tea.Msg {
		<-clock.After(FlashDuration)
		return flashExpiredMsg{}
	}
}

// setFocus changes focus to the specified panel.
func (m Model) setFocus(target PanelID) (Model, tea.Cmd) {
	// Blur previously focused component
	switch m.focus {
	case PanelNav:
		m.nav = m.nav.Blur()
	case PanelSections:
		m.sections = m.sections.Blur()
	case PanelContact:
		m.form = m.form.Blur()
	}

	m.focus = target

	// Focus new component
	var cmd tea.Cmd
	switch target {
	case PanelNav:
		m.nav = m.nav.Focus()
	case PanelSections:
		m.sections = m.sections.Focus()
	case PanelContact:
		m.form, cmd = m.form.Focus()
	}

	return m.relayout(), cmd
}

// relayout recalculates the layout and resizes every panel.
func (m Model) relayout() Model {
	if !m.ready {
		return m
	}
	m.layout = layout.Calculate(m.width, m.height, m.focus == PanelContact)

	m.nav = m.nav.SetSize(m.width, m.layout.NavHeight)
	if m.layout.SectionsVisible() {
		m.sections = m.sections.SetSize(
			m.layout.ContentWidth(m.layout.SectionsWidth, 1),
			m.layout.ContentHeight(m.layout.SectionsHeight, 1),
		)
	}
	if m.layout.ContactVisible() {
		m.form = m.form.SetSize(
			m.layout.ContentWidth(m.layout.ContactWidth, 1),
			m.layout.ContentHeight(m.layout.ContactHeight, 1),
		)
	}
	return m
}

// View renders the application.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var view string
	if m.showHelp {
		view = m.renderHelpOverlay()
	} else {
		view = lipgloss.JoinVertical(lipgloss.Left,
			m.nav.View(),
			m.renderMain(),
			m.renderStatusBar(),
		)
	}

	// Root background follows the document marker
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		view,
		lipgloss.WithWhitespaceBackground(theme.Page(m.doc.Has(theme.DarkMarker))),
	)
}

func (m Model) renderMain() string {
	s := m.binding.styles
	var panels []string

	if m.layout.SectionsVisible() {
		panels = append(panels, s.RenderPanel(
			m.sections.View(),
			theme.PanelTitleOptions{
				Title:         "Portfolio",
				ScrollPercent: m.sections.ScrollPercent(),
				BottomHints:   "↑↓ scroll  1-9 jump  t theme",
			},
			m.layout.SectionsWidth,
			m.layout.SectionsHeight,
			m.focus == PanelSections,
		))
	}

	if m.layout.ContactVisible() {
		panels = append(panels, s.RenderPanel(
			m.form.View(),
			theme.PanelTitleOptions{
				Title:         "Contact",
				ScrollPercent: -1,
				BottomHints:   "ctrl+s send  esc back",
			},
			m.layout.ContactWidth,
			m.layout.ContactHeight,
			m.focus == PanelContact,
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

// renderStatusBar renders the status bar.
func (m Model) renderStatusBar() string {
	s := m.binding.styles
	style := s.StatusBar.Width(m.width)
	inner := max(m.width-style.GetHorizontalPadding(), 0)

	dark := m.doc.Has(theme.DarkMarker)
	badge := s.StatusHighlight.Render(" " + theme.ToggleIcon(dark) + " " + theme.Name(dark) + " ")

	// Least important last; segments are dropped from the end until the bar fits
	left := []string{badge, m.focus.String()}
	if pct := m.sections.ScrollPercent(); pct > 0 {
		left = append(left, fmt.Sprintf("%d%%", int(pct)))
	}
	if m.sections.ScrollPercent() > BackToTopPercent {
		left = append(left, theme.ScrollTopIcon+" home: back to top")
	}

	right := []string{"? help │ q quit", Version}
	if m.flash != "" {
		right[0] = s.StatusHighlight.Render(m.flash)
	}

	join := func(parts []string) string { return strings.Join(parts, " │ ") }
	for len(left) > 1 && lipgloss.Width(join(left))+lipgloss.Width(join(right))+1 > inner {
		left = left[:len(left)-1]
	}
	if lipgloss.Width(join(left))+lipgloss.Width(join(right))+1 > inner {
		right = right[:1]
	}

	line := join(left)
	if gap := inner - lipgloss.Width(line) - lipgloss.Width(join(right)); gap >= 1 {
		line += strings.Repeat(" ", gap) + join(right)
	}
	line = lipgloss.NewStyle().MaxWidth(inner).Render(line)

	return style.Render(line)
}

var helpRows = [][2]string{
	{"NAVIGATION", "THEME"},
	{"  Tab       Next panel", "  t         Toggle theme"},
	{"  S-Tab     Previous panel", "  Ctrl+T    Toggle (typing)"},
	{"  1-9       Jump to link", ""},
	{"  ←/→ Enter Pick nav link", "CONTACT"},
	{"  ↑/↓ PgUp  Scroll page", "  c         Open form"},
	{"  Home/g    Back to top", "  Ctrl+S    Send message"},
	{"  End/G     Go to bottom", "  Esc       Leave form"},
	{"", ""},
	{"  ?         Toggle help", "  q/Ctrl+C  Quit"},
	{"", "  Press any key to close"},
}

// renderHelpOverlay renders the key reference centered on screen.
func (m Model) renderHelpOverlay() string {
	const col = 27
	inner := 2*col + 3

	title := "TERMFOLIO HELP"
	pad := (inner - len(title)) / 2

	lines := []string{
		"╔" + strings.Repeat("═", inner) + "╗",
		"║" + strings.Repeat(" ", pad) + title + strings.Repeat(" ", inner-pad-len(title)) + "║",
		"╠" + strings.Repeat("═", col+1) + "╤" + strings.Repeat("═", col+1) + "╣",
	}
	for _, row := range helpRows {
		lines = append(lines, fmt.Sprintf("║ %-*s│ %-*s║", col, row[0], col, row[1]))
	}
	lines = append(lines, "╚"+strings.Repeat("═", col+1)+"╧"+strings.Repeat("═", col+1)+"╝")

	helpBox := m.binding.styles.Accent.
		Bold(true).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
	)
}

// Focus returns the currently focused panel.
func (m Model) Focus() PanelID {
	return m.focus
}

// IsDark reports the current theme.
func (m Model) IsDark() bool {
	return m.store.IsDark()
}

// Flash returns the status bar message, if any.
func (m Model) Flash() string {
	return m.flash
}
