package theme

import "strings"

// Theme toggle glyphs
const (
	IconMoon = "☾"
	IconSun  = "☀"
)

// Timeline and list markers
const (
	TimelineNode  = "◉"
	TimelineStem  = "│"
	BulletPoint   = "•"
	LinkArrow     = "↗"
	ScrollTopIcon = "⇡"
)

// Panel decorations
const (
	PanelDiamond = "◈"
)

// Fallback icon when nerd fonts are off or a name is unknown
const IconGeneric = "◆"

// TechIcons maps technology names (lowercased, spaces removed) to Nerd Font icons
var TechIcons = map[string]string{
	"javascript":  "\ue74e",
	"typescript":  "\ue628",
	"html5":       "\ue736",
	"css3":        "\ue749",
	"reactjs":     "\ue7ba",
	"nodejs":      "\ue718",
	"tailwindcss": "\U000f13ff",
	"threejs":     "\U000f01a7",
	"git":         "\ue702",
	"mongodb":     "\ue7a4",
	"go":          "\ue626",
	"kotlin":      "\ue634",
	"java":        "\ue738",
	"android":     "\ue70e",
	"python":      "\ue73c",
	"docker":      "\uf308",
}

// ServiceIcons maps service icon keys to Nerd Font icons
var ServiceIcons = map[string]string{
	"web":     "\uf0ac", // Globe
	"mobile":  "\uf10b", // Phone
	"backend": "\uf233", // Server
	"creator": "\uf03d", // Video
}

// GetTechIcon returns the icon for a technology name such as "Node JS".
func GetTechIcon(name string, nerdFonts bool) string {
	if !nerdFonts {
		return IconGeneric
	}
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if icon, ok := TechIcons[key]; ok {
		return icon
	}
	return IconGeneric
}

// GetServiceIcon returns the icon for a service key.
func GetServiceIcon(key string, nerdFonts bool) string {
	if !nerdFonts {
		return IconGeneric
	}
	if icon, ok := ServiceIcons[key]; ok {
		return icon
	}
	return IconGeneric
}

// ToggleIcon returns the glyph shown on the theme toggle for the current theme.
func ToggleIcon(isDark bool) string {
	if isDark {
		return IconMoon
	}
	return IconSun
}

// ToggleLabel describes what pressing the toggle will do.
func ToggleLabel(isDark bool) string {
	if isDark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}
