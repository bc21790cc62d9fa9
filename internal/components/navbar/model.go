package navbar

import (
	"strings"

	"github.com/avitaltamir/termfolio/internal/components"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NavigateMsg asks the app to bring a section into view.
type NavigateMsg struct {
	ID string
}

// KeyMap holds the navbar bindings.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default navbar bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous link"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next link"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "go to section"),
		),
	}
}

// Model is the top navigation bar with the theme toggle.
type Model struct {
	components.Base

	title  string
	links  []content.NavLink
	cursor int    // Link under the cursor while focused
	active string // Section currently in view

	styles theme.Styles
	keys   KeyMap
}

// New creates a navbar for the portfolio.
func New(p content.Portfolio) Model {
	return Model{
		title:  p.Profile.Name,
		links:  p.NavLinks,
		styles: theme.NewStyles(true),
		keys:   DefaultKeyMap(),
	}
}

// SetPortfolio replaces the links, keeping the cursor in range.
func (m Model) SetPortfolio(p content.Portfolio) Model {
	m.title = p.Profile.Name
	m.links = p.NavLinks
	if m.cursor >= len(m.links) {
		m.cursor = max(len(m.links)-1, 0)
	}
	return m
}

// SetStyles applies a new theme.
func (m Model) SetStyles(s theme.Styles) Model {
	m.styles = s
	return m
}

// SetActive marks the link for the section in view.
func (m Model) SetActive(id string) Model {
	m.active = id
	return m
}

// Active returns the id of the section in view.
func (m Model) Active() string {
	return m.active
}

// Links returns the navigation links.
func (m Model) Links() []content.NavLink {
	return m.links
}

// Cursor returns the index of the highlighted link.
func (m Model) Cursor() int {
	return m.cursor
}

// Focus gives the navbar focus.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize sets the available width.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and selects links while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.Focused() || len(m.links) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor = (m.cursor - 1 + len(m.links)) % len(m.links)
	case key.Matches(keyMsg, m.keys.Right):
		m.cursor = (m.cursor + 1) % len(m.links)
	case key.Matches(keyMsg, m.keys.Select):
		id := m.links[m.cursor].ID
		return m, func() tea.Msg { return NavigateMsg{ID: id} }
	}
	return m, nil
}

// View renders the bar on a single line.
func (m Model) View() string {
	width, _ := m.Size()
	left, toggle, gap := m.parts()

	line := left + strings.Repeat(" ", gap) + toggle
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// HitToggle reports whether column x falls on the theme toggle.
func (m Model) HitToggle(x int) bool {
	width, _ := m.Size()
	_, toggle, _ := m.parts()
	return x >= width-lipgloss.Width(toggle) && x < width
}

// parts lays the bar out so the toggle is always fully drawn where
// HitToggle looks for it. The toggle label goes first, then trailing links.
// When even the logo and glyph do not fit, the toggle is left out.
func (m Model) parts() (left, toggle string, gap int) {
	width, _ := m.Size()
	s := m.styles

	logo := s.Heading.Render(theme.PanelDiamond+" ") + s.Title.Render(m.title)

	items := make([]string, 0, len(m.links))
	for i, l := range m.links {
		style := s.NavLink
		if l.ID == m.active || (m.Focused() && i == m.cursor) {
			style = s.NavActive
		}
		label := l.Title
		if m.Focused() && i == m.cursor {
			label = "›" + label
		}
		items = append(items, style.Render(label))
	}

	full := s.Accent.Render(theme.ToggleIcon(s.Dark)) + " " + s.Muted.Render(theme.ToggleLabel(s.Dark)+" [t]")
	glyph := s.Accent.Render(theme.ToggleIcon(s.Dark))

	for n := len(items); n >= 0; n-- {
		left = logo
		if n > 0 {
			left += "  " + strings.Join(items[:n], "")
		}
		for _, t := range []string{full, glyph} {
			if gap = width - lipgloss.Width(left) - lipgloss.Width(t); gap >= 1 {
				return left, t, gap
			}
		}
	}
	return left, "", 0
}
