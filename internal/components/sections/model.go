// Package sections renders the scrollable portfolio page.
package sections

import (
	"github.com/avitaltamir/termfolio/internal/components"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/highlight"
	"github.com/avitaltamir/termfolio/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds bindings handled on top of the viewport's own.
type KeyMap struct {
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the default section bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "back to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "go to bottom"),
		),
	}
}

// Model is the scrollable portfolio page.
type Model struct {
	components.Base

	viewport    viewport.Model
	portfolio   content.Portfolio
	styles      theme.Styles
	highlighter *highlight.Highlighter
	nerdFonts   bool
	anchors     map[string]int
	keys        KeyMap
}

// New creates the page for a portfolio.
func New(p content.Portfolio, h *highlight.Highlighter, nerdFonts bool) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	if h == nil {
		h = highlight.New(highlight.DefaultCacheSize)
	}

	return Model{
		viewport:    vp,
		portfolio:   p,
		styles:      theme.NewStyles(true),
		highlighter: h,
		nerdFonts:   nerdFonts,
		anchors:     map[string]int{},
		keys:        DefaultKeyMap(),
	}
}

// Focus gives the page focus.
func (m Model) Focus() Model {
	m.Base.Focus()
	return m
}

// Blur removes focus.
func (m Model) Blur() Model {
	m.Base.Blur()
	return m
}

// SetSize sets the inner size of the page and re-lays it out.
func (m Model) SetSize(width, height int) Model {
	m.Base.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = height
	return m.refresh()
}

// SetStyles applies a theme and re-renders, keeping the scroll position.
func (m Model) SetStyles(s theme.Styles) Model {
	m.styles = s
	return m.refresh()
}

// SetPortfolio swaps in new content, keeping the scroll position.
func (m Model) SetPortfolio(p content.Portfolio) Model {
	m.portfolio = p
	return m.refresh()
}

func (m Model) refresh() Model {
	width, _ := m.Size()
	if width <= 0 {
		return m
	}
	offset := m.viewport.YOffset
	page := Render(m.portfolio, m.styles, m.highlighter, m.nerdFonts, width)
	m.anchors = page.Anchors
	m.viewport.SetContent(page.Content)
	m.viewport.SetYOffset(offset)
	return m
}

// ScrollTo brings a section to the top. It reports false for unknown ids.
func (m Model) ScrollTo(id string) (Model, bool) {
	line, ok := m.anchors[id]
	if !ok {
		return m, false
	}
	m.viewport.SetYOffset(line)
	return m, true
}

// Top scrolls back to the start of the page.
func (m Model) Top() Model {
	m.viewport.GotoTop()
	return m
}

// YOffset returns the first visible line.
func (m Model) YOffset() int {
	return m.viewport.YOffset
}

// ScrollPercent returns the scroll position from 0 to 100.
func (m Model) ScrollPercent() float64 {
	return m.viewport.ScrollPercent() * 100
}

// CurrentSection returns the id of the section at the top of the view.
// At the very bottom it returns the last section.
func (m Model) CurrentSection() string {
	if len(m.anchors) == 0 {
		return ""
	}
	if m.viewport.YOffset > 0 && m.viewport.AtBottom() {
		return Order[len(Order)-1]
	}
	current := Order[0]
	for _, id := range Order {
		if line, ok := m.anchors[id]; ok && line <= m.viewport.YOffset {
			current = id
		}
	}
	return current
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update scrolls the page. Keys only apply while focused; the mouse wheel
// always scrolls.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the visible part of the page.
func (m Model) View() string {
	return m.viewport.View()
}
