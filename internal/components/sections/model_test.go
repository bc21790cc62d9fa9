package sections

import (
	"strings"
	"testing"

	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/highlight"
	"github.com/avitaltamir/termfolio/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(height int) Model {
	return New(content.Default(), highlight.New(0), false).SetSize(80, height)
}

func TestRender(t *testing.T) {
	p := content.Default()
	page := Render(p, theme.NewStyles(true), highlight.New(0), false, 80)

	t.Run("anchors are in page order", func(t *testing.T) {
		require.Len(t, page.Anchors, len(Order))
		prev := -1
		for _, id := range Order {
			assert.Greater(t, page.Anchors[id], prev, id)
			prev = page.Anchors[id]
		}
		assert.Equal(t, 0, page.Anchors[SectionHero])
	})

	t.Run("includes the portfolio records", func(t *testing.T) {
		assert.Contains(t, page.Content, p.Profile.Name)
		for _, s := range p.Services {
			assert.Contains(t, page.Content, s.Title)
		}
		for _, e := range p.Experiences {
			assert.Contains(t, page.Content, e.Title)
		}
		for _, pr := range p.Projects {
			assert.Contains(t, page.Content, pr.Name)
			for _, tag := range pr.Tags {
				assert.Contains(t, page.Content, "#"+tag.Name)
			}
		}
	})

	t.Run("anchor lines hold the headings", func(t *testing.T) {
		lines := strings.Split(page.Content, "\n")
		assert.Contains(t, strings.ToUpper(lines[page.Anchors[SectionAbout]]), "INTRODUCTION")
		assert.Contains(t, lines[page.Anchors[SectionWork]+1], "Projects")
	})
}

func TestProfileSource(t *testing.T) {
	src := profileSource(content.Default())

	assert.True(t, strings.HasPrefix(src, "dev := Developer{"))
	assert.Contains(t, src, `"Alex Rivera"`)
	assert.Contains(t, src, "/* ... */", "long stacks are shortened")

	short := profileSource(content.Portfolio{Profile: content.Profile{Name: "Sam"}})
	assert.Contains(t, short, `Name:     "Sam"`)
	assert.NotContains(t, short, "Role:")
}

func TestScrollTo(t *testing.T) {
	m := newTestModel(10)

	m, ok := m.ScrollTo(SectionTech)
	assert.True(t, ok)
	assert.Equal(t, m.anchors[SectionTech], m.YOffset())
	assert.Equal(t, SectionTech, m.CurrentSection())

	_, ok = m.ScrollTo("nowhere")
	assert.False(t, ok)

	m = m.Top()
	assert.Equal(t, 0, m.YOffset())
	assert.Equal(t, SectionHero, m.CurrentSection())
}

func TestCurrentSectionAtBottom(t *testing.T) {
	m := newTestModel(10).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, SectionWork, m.CurrentSection())
	assert.InDelta(t, 100, m.ScrollPercent(), 0.01)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, m.YOffset())
}

func TestUpdateIgnoresKeysWhenBlurred(t *testing.T) {
	m := newTestModel(10)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.YOffset())

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.YOffset())
}

func TestSetStylesKeepsOffset(t *testing.T) {
	m := newTestModel(10)
	m, _ = m.ScrollTo(SectionExperience)
	offset := m.YOffset()

	m = m.SetStyles(theme.NewStyles(false))
	assert.Equal(t, offset, m.YOffset())
}

func TestSetPortfolio(t *testing.T) {
	m := newTestModel(10)

	p := content.Default()
	p.Profile.Name = "Robin"
	m = m.SetPortfolio(p)

	assert.Contains(t, m.Top().View(), "Robin")
}

func TestZeroSizeDoesNotRender(t *testing.T) {
	m := New(content.Default(), nil, false)
	assert.Empty(t, m.CurrentSection())
}
