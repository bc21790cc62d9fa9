package app

import (
	"strings"
	"testing"
	"time"

	"github.com/avitaltamir/termfolio/internal/components/contactform"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/state"
	"github.com/avitaltamir/termfolio/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is the part of clockwork's fake clock the tests drive.
type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
	BlockUntil(n int)
}

func newTestModel(t *testing.T, storage theme.Storage, width, height int) (Model, fakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	m := New(Options{
		Storage:   storage,
		Portfolio: content.Default(),
		Clock:     clock,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, clock
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew(t *testing.T) {
	t.Run("first run starts dark without writing", func(t *testing.T) {
		storage := state.NewMemory()
		m, _ := newTestModel(t, storage, 120, 40)

		assert.True(t, m.IsDark())
		assert.True(t, m.doc.Has(theme.DarkMarker))
		assert.Equal(t, PanelSections, m.Focus())

		_, ok, err := storage.Get(theme.StorageKey)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("restores light theme", func(t *testing.T) {
		storage := state.NewMemory()
		require.NoError(t, storage.Set(theme.StorageKey, theme.ValueLight))

		m, _ := newTestModel(t, storage, 120, 40)

		assert.False(t, m.IsDark())
		assert.False(t, m.doc.Has(theme.DarkMarker))
		assert.Contains(t, m.nav.View(), theme.IconSun)
	})

	t.Run("nil storage defaults", func(t *testing.T) {
		m := New(Options{})

		assert.True(t, m.IsDark())
		assert.Equal(t, "Initializing...", m.View())
	})
}

func TestPanelIDString(t *testing.T) {
	tests := []struct {
		panel    PanelID
		expected string
	}{
		{PanelNav, "Nav"},
		{PanelSections, "Sections"},
		{PanelContact, "Contact"},
		{PanelID(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.panel.String())
		})
	}
}

func TestToggleTheme(t *testing.T) {
	storage := state.NewMemory()
	m, _ := newTestModel(t, storage, 120, 40)

	m, cmd := update(m, runes("t"))
	assert.NotNil(t, cmd)
	assert.False(t, m.IsDark())
	assert.False(t, m.doc.Has(theme.DarkMarker))
	assert.Equal(t, "Theme: light", m.Flash())
	assert.Contains(t, m.nav.View(), theme.IconSun)

	v, _, _ := storage.Get(theme.StorageKey)
	assert.Equal(t, theme.ValueLight, v)

	m, _ = update(m, runes("t"))
	assert.True(t, m.IsDark())
	assert.True(t, m.doc.Has(theme.DarkMarker))
	assert.Contains(t, m.nav.View(), theme.IconMoon)

	v, _, _ = storage.Get(theme.StorageKey)
	assert.Equal(t, theme.ValueDark, v)
}

func TestContactFormKeys(t *testing.T) {
	t.Run("typing goes to the form", func(t *testing.T) {
		m, _ := newTestModel(t, state.NewMemory(), 120, 40)
		m, _ = update(m, runes("c"))
		require.Equal(t, PanelContact, m.Focus())

		m, _ = update(m, runes("t"))
		m, cmd := update(m, runes("q"))

		assert.True(t, m.IsDark())
		assert.False(t, isQuit(cmd))
		assert.Equal(t, "tq", m.form.Form().Name)
	})

	t.Run("ctrl+t toggles while typing", func(t *testing.T) {
		m, _ := newTestModel(t, state.NewMemory(), 120, 40)
		m, _ = update(m, runes("c"))

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlT})

		assert.False(t, m.IsDark())
		assert.Empty(t, m.form.Form().Name)
	})

	t.Run("esc leaves the form", func(t *testing.T) {
		m, _ := newTestModel(t, state.NewMemory(), 120, 40)
		m, _ = update(m, runes("c"))

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, PanelSections, m.Focus())
		assert.NotEqual(t, "contact", m.nav.Active())
	})

	t.Run("tab stays inside the form", func(t *testing.T) {
		m, _ := newTestModel(t, state.NewMemory(), 120, 40)
		m, _ = update(m, runes("c"))

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})

		assert.Equal(t, PanelContact, m.Focus())
	})
}

func TestModelUpdate(t *testing.T) {
	t.Run("WindowSizeMsg sets dimensions", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 100, 40)

		assert.Equal(t, 100, m.width)
		assert.Equal(t, 40, m.height)
		assert.True(t, m.ready)
	})

	t.Run("q quits", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 100, 40)

		_, cmd := update(m, runes("q"))

		assert.True(t, isQuit(cmd))
	})

	t.Run("ctrl+c quits from the form", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 100, 40)
		m, _ = update(m, runes("c"))

		_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})

		assert.True(t, isQuit(cmd))
	})

	t.Run("tab cycles focus", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, PanelContact, m.Focus())

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, PanelNav, m.Focus())

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, PanelContact, m.Focus())
	})

	t.Run("help opens and closes", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)

		m, _ = update(m, runes("?"))
		assert.True(t, m.showHelp)
		assert.Contains(t, m.View(), "TERMFOLIO HELP")

		m, _ = update(m, runes("t"))
		assert.False(t, m.showHelp)
		assert.True(t, m.IsDark(), "closing key is swallowed")
	})
}

func TestNavigation(t *testing.T) {
	t.Run("number jumps to a nav link", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)

		m, _ = update(m, runes("2"))

		assert.Greater(t, m.sections.YOffset(), 0)
		assert.Equal(t, "work", m.nav.Active())
	})

	t.Run("contact link opens the form", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)

		m, _ = update(m, runes("3"))

		assert.Equal(t, PanelContact, m.Focus())
		assert.Equal(t, "contact", m.nav.Active())
	})

	t.Run("out of range number is ignored", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)

		m, _ = update(m, runes("9"))

		assert.Equal(t, 0, m.sections.YOffset())
	})

	t.Run("home returns to top from any panel", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)
		m, _ = update(m, runes("2"))
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
		require.Equal(t, PanelNav, m.Focus())

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyHome})

		assert.Equal(t, 0, m.sections.YOffset())
		assert.Equal(t, "hero", m.nav.Active())
	})
}

func TestStatusFlash(t *testing.T) {
	m, clock := newTestModel(t, nil, 120, 40)

	m, cmd := update(m, StatusMsg{Text: "hello"})
	require.NotNil(t, cmd)
	assert.Equal(t, "hello", m.Flash())

	// Early expiry from an older flash leaves it alone
	m, _ = update(m, flashExpiredMsg{})
	assert.Equal(t, "hello", m.Flash())

	clock.Advance(FlashDuration)
	m, _ = update(m, flashExpiredMsg{})
	assert.Empty(t, m.Flash())
}

func TestFlashCommandWaitsOnClock(t *testing.T) {
	m, clock := newTestModel(t, nil, 120, 40)
	_, cmd := update(m, StatusMsg{Text: "hello"})

	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()

	clock.BlockUntil(1)
	clock.Advance(FlashDuration)

	select {
	case msg := <-got:
		assert.Equal(t, flashExpiredMsg{}, msg)
	case <-time.After(time.Second):
		t.Fatal("flash never expired")
	}
}

func TestContentReloaded(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 40)

	p := content.Default()
	p.Profile.Name = "Robin"
	m, _ = update(m, ContentReloadedMsg{Portfolio: p})

	assert.Contains(t, m.nav.View(), "Robin")
	assert.Equal(t, "Content reloaded", m.Flash())
}

func TestSentMsg(t *testing.T) {
	m, _ := newTestModel(t, nil, 120, 40)

	m, _ = update(m, contactform.SentMsg{})
	assert.Equal(t, "Message sent", m.Flash())

	m, _ = update(m, contactform.SentMsg{Err: assert.AnError})
	assert.Equal(t, "Message not sent", m.Flash())
	text, failed := m.form.Result()
	assert.True(t, failed)
	assert.Equal(t, contactform.FailureText, text)
}

func TestMouse(t *testing.T) {
	t.Run("click focuses the contact panel", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)

		m, _ = update(m, tea.MouseMsg{X: 110, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		assert.Equal(t, PanelContact, m.Focus())
	})

	t.Run("click on the toggle flips the theme", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)

		m, _ = update(m, tea.MouseMsg{X: 119, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		assert.False(t, m.IsDark())
	})

	t.Run("wheel scrolls the page", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)

		m, _ = update(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

		assert.Greater(t, m.sections.YOffset(), 0)
		assert.Equal(t, PanelSections, m.Focus())
	})

	t.Run("status bar click is ignored", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)

		assert.Equal(t, panelCount, m.panelAtPosition(5, 39))
	})
}

func TestModelView(t *testing.T) {
	t.Run("wide layout shows both panels", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 40)
		view := m.View()

		assert.Contains(t, view, "Portfolio")
		assert.Contains(t, view, "Contact")
		assert.Contains(t, view, "dark")
		assert.Contains(t, view, Version)

		lines := strings.Split(view, "\n")
		assert.Len(t, lines, 40)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 120)
		}
	})

	t.Run("narrow layout hides the form until focused", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 80, 30)
		assert.False(t, m.layout.ContactVisible())

		m, _ = update(m, runes("c"))
		assert.True(t, m.layout.ContactVisible())
		assert.False(t, m.layout.SectionsVisible())
	})

	t.Run("narrow terminal keeps the status bar on one line", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 40, 20)
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
		m, _ = update(m, StatusMsg{Text: "Content reloaded"})

		bar := m.renderStatusBar()
		assert.NotContains(t, bar, "\n")
		assert.LessOrEqual(t, lipgloss.Width(bar), 40)
		assert.Contains(t, bar, "dark")

		view := m.View()
		assert.Len(t, strings.Split(view, "\n"), 20)
		for _, line := range strings.Split(view, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 40)
		}
	})

	t.Run("back to top hint past the threshold", func(t *testing.T) {
		m, _ := newTestModel(t, nil, 120, 30)
		assert.NotContains(t, m.renderStatusBar(), "back to top")

		m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnd})
		assert.Contains(t, m.renderStatusBar(), "back to top")
	})
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.Quit.Keys())
	assert.NotEmpty(t, km.ToggleTheme.Keys())
	assert.Contains(t, km.ToggleTheme.Keys(), "ctrl+t")
	assert.Len(t, km.Jump.Keys(), 9)
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 3)
}

func TestRenderStatic(t *testing.T) {
	p := content.Default()

	out := RenderStatic(p, true, 0)

	assert.Contains(t, out, p.Profile.Name)
	assert.Contains(t, out, "Contact")
	for _, l := range p.Profile.Links {
		assert.Contains(t, out, l.URL)
	}
}
