package theme

import "github.com/charmbracelet/lipgloss"

// Accent tokens - shared by both themes
const (
	Accent      Token = "accent"
	AccentFill  Token = "accent-fill"
	EdgeAccent  Token = "edge-accent"
	HoverAccent Token = "hover-accent"
)

// Text tokens
const (
	InkBright Token = "ink-bright"
	InkSoft   Token = "ink-soft"
	InkDark   Token = "ink-dark"
	InkMuted  Token = "ink-muted"
)

// Background tokens
const (
	Night         Token = "night"
	Dusk          Token = "dusk"
	CardNight     Token = "card-night"
	GradientNight Token = "gradient-night"
	Paper         Token = "paper"
	Fog           Token = "fog"
	CardPaper     Token = "card-paper"
	GradientDay   Token = "gradient-day"
)

// Border tokens
const (
	EdgeBright Token = "edge-bright"
	EdgeSoft   Token = "edge-soft"
	EdgeDark   Token = "edge-dark"
	EdgeMuted  Token = "edge-muted"
)

// Shadow tokens
const (
	ShadowGlow    Token = "shadow-glow"
	ShadowPrimary Token = "shadow-primary"
	ShadowDrop    Token = "shadow-drop"
	ShadowSoft    Token = "shadow-soft"
)

// Hover tokens
const (
	HoverInkBright Token = "hover-ink-bright"
	HoverVeil      Token = "hover-veil"
	HoverInkDark   Token = "hover-ink-dark"
	HoverTint      Token = "hover-tint"
)

// Brand colors
var (
	Violet   = lipgloss.Color("#915EFF") // Accent, both themes
	DeepNavy = lipgloss.Color("#050816") // Dark page background
	Indigo   = lipgloss.Color("#151030") // Dark card background
	Lavender = lipgloss.Color("#AAA6C3") // Dark secondary text
	Snow     = lipgloss.Color("#FFFFFF")
	Charcoal = lipgloss.Color("#111827")
	Slate    = lipgloss.Color("#4B5563")
	Cloud    = lipgloss.Color("#F9FAFB") // Light page background
	Silver   = lipgloss.Color("#E5E7EB")
	Ash      = lipgloss.Color("#D1D5DB")
)

// Feedback colors - not themed
var (
	ErrorRed     = lipgloss.Color("#EF4444")
	SuccessGreen = lipgloss.Color("#22C55E")
)

// palette maps single-color tokens to terminal colors.
var palette = map[Token]lipgloss.Color{
	Accent:      Violet,
	AccentFill:  Violet,
	EdgeAccent:  Violet,
	HoverAccent: Violet,

	InkBright: Snow,
	InkSoft:   Lavender,
	InkDark:   Charcoal,
	InkMuted:  Slate,

	Night:     DeepNavy,
	Dusk:      Indigo,
	CardNight: lipgloss.Color("#1D1836"),
	Paper:     Cloud,
	Fog:       Silver,
	CardPaper: Snow,

	EdgeBright: Snow,
	EdgeSoft:   Lavender,
	EdgeDark:   Charcoal,
	EdgeMuted:  Ash,

	ShadowGlow:    lipgloss.Color("#2A2150"),
	ShadowPrimary: lipgloss.Color("#3B2F73"),
	ShadowDrop:    lipgloss.Color("#9CA3AF"),
	ShadowSoft:    Silver,

	HoverInkBright: Snow,
	HoverVeil:      lipgloss.Color("#232040"),
	HoverInkDark:   Charcoal,
	HoverTint:      lipgloss.Color("#F3F4F6"),
}

// gradients maps gradient tokens to their start and end stops.
var gradients = map[Token][2]string{
	GradientNight: {"#434343", "#000000"},
	GradientDay:   {"#FFFFFF", "#D1D5DB"},
}

// tagGradients holds the project tag color families.
var tagGradients = map[string][2]string{
	"green": {"#11998E", "#38EF7D"},
	"blue":  {"#2F80ED", "#56CCF2"},
	"pink":  {"#EC008C", "#FC6767"},
}

// Color returns the terminal color for a token. Gradient tokens resolve to
// their first stop. Unknown tokens fall back to the accent color.
func Color(tok Token) lipgloss.Color {
	if c, ok := palette[tok]; ok {
		return c
	}
	if g, ok := gradients[tok]; ok {
		return lipgloss.Color(g[0])
	}
	return Violet
}
