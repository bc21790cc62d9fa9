package theme

// Token is an opaque name for a visual treatment. The palette maps tokens
// to concrete terminal colors.
type Token string

// StyleTable maps every visual role to the token used for it.
// The set of roles is the same for both themes.
type StyleTable struct {
	Text   TextRoles
	Bg     BgRoles
	Border BorderRoles
	Shadow ShadowRoles
	Hover  HoverRoles
}

// TextRoles holds foreground tokens.
type TextRoles struct {
	Primary   Token
	Secondary Token
	Accent    Token
}

// BgRoles holds background tokens.
type BgRoles struct {
	Primary   Token
	Secondary Token
	Accent    Token
	Card      Token
	Gradient  Token
}

// BorderRoles holds border tokens.
type BorderRoles struct {
	Primary   Token
	Secondary Token
	Accent    Token
}

// ShadowRoles holds shadow tokens.
type ShadowRoles struct {
	Card   Token
	Button Token
}

// HoverRoles holds tokens for hovered or selected elements.
type HoverRoles struct {
	Text   Token
	Bg     Token
	Accent Token
}

// Resolve returns the style table for the given theme flag.
// Accent roles never change between themes.
func Resolve(isDark bool) StyleTable {
	pick := func(dark, light Token) Token {
		if isDark {
			return dark
		}
		return light
	}

	return StyleTable{
		Text: TextRoles{
			Primary:   pick(InkBright, InkDark),
			Secondary: pick(InkSoft, InkMuted),
			Accent:    Accent,
		},
		Bg: BgRoles{
			Primary:   pick(Night, Paper),
			Secondary: pick(Dusk, Fog),
			Accent:    AccentFill,
			Card:      pick(CardNight, CardPaper),
			Gradient:  pick(GradientNight, GradientDay),
		},
		Border: BorderRoles{
			Primary:   pick(EdgeBright, EdgeDark),
			Secondary: pick(EdgeSoft, EdgeMuted),
			Accent:    EdgeAccent,
		},
		Shadow: ShadowRoles{
			Card:   pick(ShadowGlow, ShadowDrop),
			Button: pick(ShadowPrimary, ShadowSoft),
		},
		Hover: HoverRoles{
			Text:   pick(HoverInkBright, HoverInkDark),
			Bg:     pick(HoverVeil, HoverTint),
			Accent: HoverAccent,
		},
	}
}

// Roles returns the table keyed by category and role name,
// e.g. Roles()["text"]["primary"].
func (t StyleTable) Roles() map[string]map[string]Token {
	return map[string]map[string]Token{
		"text": {
			"primary":   t.Text.Primary,
			"secondary": t.Text.Secondary,
			"accent":    t.Text.Accent,
		},
		"bg": {
			"primary":   t.Bg.Primary,
			"secondary": t.Bg.Secondary,
			"accent":    t.Bg.Accent,
			"card":      t.Bg.Card,
			"gradient":  t.Bg.Gradient,
		},
		"border": {
			"primary":   t.Border.Primary,
			"secondary": t.Border.Secondary,
			"accent":    t.Border.Accent,
		},
		"shadow": {
			"card":   t.Shadow.Card,
			"button": t.Shadow.Button,
		},
		"hover": {
			"text":   t.Hover.Text,
			"bg":     t.Hover.Bg,
			"accent": t.Hover.Accent,
		},
	}
}

// Lookup returns the token for category/role, or false if the pair is not
// part of the schema.
func (t StyleTable) Lookup(category, role string) (Token, bool) {
	roles, ok := t.Roles()[category]
	if !ok {
		return "", false
	}
	tok, ok := roles[role]
	return tok, ok
}
