package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Border definitions
var (
	// HeavyBorder marks the focused panel
	HeavyBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// SoftBorder uses rounded corners for cards and idle panels
	SoftBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Styles are the lipgloss styles derived from one resolved StyleTable.
// Rebuild them with NewStyles whenever the theme flag changes.
type Styles struct {
	Dark  bool
	Table StyleTable

	// Text hierarchy
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style

	// Cards
	Card       lipgloss.Style
	CardActive lipgloss.Style

	// Buttons and links
	Button      lipgloss.Style
	ButtonHover lipgloss.Style
	NavLink     lipgloss.Style
	NavActive   lipgloss.Style

	// Form fields
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputError   lipgloss.Style
	Label        lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Spinner lipgloss.Style

	// Status bar
	StatusBar       lipgloss.Style
	StatusHighlight lipgloss.Style
}

// NewStyles builds the styles for a theme flag.
func NewStyles(isDark bool) Styles {
	t := Resolve(isDark)

	s := Styles{
		Dark:  isDark,
		Table: t,
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Color(t.Text.Primary))

	s.Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(Color(t.Text.Accent))

	s.Subheading = lipgloss.NewStyle().
		Foreground(Color(t.Text.Secondary)).
		Transform(strings.ToUpper)

	s.Body = lipgloss.NewStyle().
		Foreground(Color(t.Text.Primary))

	s.Muted = lipgloss.NewStyle().
		Foreground(Color(t.Text.Secondary))

	s.Accent = lipgloss.NewStyle().
		Foreground(Color(t.Text.Accent))

	s.Card = lipgloss.NewStyle().
		Border(SoftBorder).
		BorderForeground(Color(t.Border.Secondary)).
		BorderRightForeground(Color(t.Shadow.Card)).
		BorderBottomForeground(Color(t.Shadow.Card)).
		Padding(0, 1)

	s.CardActive = s.Card.
		BorderForeground(Color(t.Border.Accent))

	s.Button = lipgloss.NewStyle().
		Foreground(Color(t.Text.Primary)).
		Background(Color(t.Bg.Secondary)).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(true).
		BorderBottomForeground(Color(t.Shadow.Button)).
		Padding(0, 2)

	s.ButtonHover = s.Button.
		Foreground(Color(t.Hover.Text)).
		Background(Color(t.Bg.Accent)).
		Bold(true)

	s.NavLink = lipgloss.NewStyle().
		Foreground(Color(t.Text.Secondary)).
		Padding(0, 1)

	s.NavActive = lipgloss.NewStyle().
		Foreground(Color(t.Hover.Text)).
		Background(Color(t.Hover.Bg)).
		Bold(true).
		Padding(0, 1)

	s.Input = lipgloss.NewStyle().
		Border(SoftBorder).
		BorderForeground(Color(t.Border.Secondary)).
		Padding(0, 1)

	s.InputFocused = s.Input.
		BorderForeground(Color(t.Border.Accent))

	s.InputError = s.Input.
		BorderForeground(ErrorRed)

	s.Label = lipgloss.NewStyle().
		Foreground(Color(t.Text.Primary)).
		Bold(true)

	s.Error = lipgloss.NewStyle().
		Foreground(ErrorRed)

	s.Success = lipgloss.NewStyle().
		Foreground(SuccessGreen)

	s.Spinner = lipgloss.NewStyle().
		Foreground(Color(t.Text.Accent))

	s.StatusBar = lipgloss.NewStyle().
		Foreground(Color(t.Text.Secondary)).
		Background(Color(t.Bg.Secondary)).
		Padding(0, 1)

	s.StatusHighlight = lipgloss.NewStyle().
		Foreground(Color(t.Hover.Accent)).
		Background(Color(t.Bg.Secondary)).
		Bold(true)

	return s
}

// Page returns the root background color for a document. Global styling
// keys on the dark marker rather than on component state.
func Page(darkMarker bool) lipgloss.Color {
	return Color(Resolve(darkMarker).Bg.Primary)
}

// GradientBar renders a full-width band shaded along the table's gradient.
func (s Styles) GradientBar(width int) string {
	stops, ok := gradients[s.Table.Bg.Gradient]
	if !ok || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	var b strings.Builder
	for _, c := range blend(stops, width) {
		b.WriteString(lipgloss.NewStyle().Background(c).Render(" "))
	}
	return b.String()
}

// Tag renders a project tag in its color family, e.g. "blue" or
// "blue-text-gradient". Unknown families use the accent color.
func (s Styles) Tag(name, family string) string {
	text := "#" + name
	family, _, _ = strings.Cut(family, "-")
	stops, ok := tagGradients[family]
	if !ok {
		return s.Accent.Render(text)
	}
	runes := []rune(text)
	colors := blend(stops, len(runes))
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Render(string(r)))
	}
	return b.String()
}

// blend interpolates n colors between two hex stops in Lab space.
func blend(stops [2]string, n int) []lipgloss.Color {
	from, err := colorful.Hex(stops[0])
	if err != nil {
		return nil
	}
	to, err := colorful.Hex(stops[1])
	if err != nil {
		return nil
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
	}
	return out
}

// RenderTitle renders a section title with decorations.
func (s Styles) RenderTitle(title string, focused bool) string {
	titleStyle := s.Muted.Bold(true)
	if focused {
		titleStyle = s.Title
	}
	return s.Accent.Render(PanelDiamond) + "─[ " + titleStyle.Render(title) + " ]─"
}

// FormatScrollIndicator returns a formatted scroll percentage indicator.
// Returns empty string if percent is 100 (at bottom) or invalid.
func FormatScrollIndicator(percent float64) string {
	if percent >= 99.9 || percent < 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(percent))
}

// PanelTitleOptions configures what to show in panel borders.
type PanelTitleOptions struct {
	Title         string  // Main title text (e.g., "PORTFOLIO", "CONTACT")
	ScrollPercent float64 // Scroll position (0-100), negative to hide
	BottomHints   string  // Key hints for bottom border (e.g., "↑↓:scroll  t:theme")
}

// RenderPanel renders content in a panel with the title embedded in the border.
func (s Styles) RenderPanel(content string, opts PanelTitleOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	border := SoftBorder
	borderColor := Color(s.Table.Border.Secondary)
	titleColor := Color(s.Table.Text.Secondary)
	if focused {
		border = HeavyBorder
		borderColor = Color(s.Table.Border.Accent)
		titleColor = Color(s.Table.Text.Primary)
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	hintStyle := s.Muted
	scrollStyle := s.Accent

	innerWidth := width - 2

	topBorder := buildTopBorder(border, borderStyle, titleStyle, scrollStyle, opts, innerWidth)
	bottomBorder := buildBottomBorder(border, borderStyle, hintStyle, opts.BottomHints, innerWidth)

	contentHeight := max(height-2, 0)

	contentLines := strings.Split(content, "\n")
	renderedLines := make([]string, contentHeight)

	lineStyle := lipgloss.NewStyle().MaxWidth(innerWidth)

	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = lineStyle.Render(line)
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		renderedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(renderedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with title and optional scroll indicator.
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle, scrollStyle lipgloss.Style, opts PanelTitleOptions, innerWidth int) string {
	titleSegment := "[ " + titleStyle.Render(opts.Title) + " ]"

	var scrollSegment string
	if text := FormatScrollIndicator(opts.ScrollPercent); text != "" {
		scrollSegment = "[ " + scrollStyle.Render(text) + " ]"
	}

	titleWidth := lipgloss.Width(titleSegment)
	scrollWidth := lipgloss.Width(scrollSegment)

	leftFiller := 2
	rightFiller := max(innerWidth-leftFiller-titleWidth-scrollWidth, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, leftFiller)))
	result.WriteString(titleSegment)
	if scrollSegment != "" {
		tail := min(2, rightFiller)
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller-tail)))
		result.WriteString(scrollSegment)
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, tail)))
	} else {
		result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller)))
	}
	result.WriteString(borderStyle.Render(border.TopRight))

	return result.String()
}

// buildBottomBorder creates the bottom border with optional key hints.
func buildBottomBorder(border lipgloss.Border, borderStyle, hintStyle lipgloss.Style, hints string, innerWidth int) string {
	if hints == "" {
		return borderStyle.Render(border.BottomLeft) +
			borderStyle.Render(strings.Repeat(border.Bottom, innerWidth)) +
			borderStyle.Render(border.BottomRight)
	}

	hintSegment := "[ " + hintStyle.Render(hints) + " ]"
	hintWidth := lipgloss.Width(hintSegment)

	leftFiller := 2
	rightFiller := max(innerWidth-leftFiller-hintWidth, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(hintSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller)))
	result.WriteString(borderStyle.Render(border.BottomRight))

	return result.String()
}
