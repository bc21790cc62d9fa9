package app

import (
	"strings"

	"github.com/avitaltamir/termfolio/internal/components/sections"
	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/highlight"
	"github.com/avitaltamir/termfolio/internal/theme"
)

// DefaultStaticWidth is used when the output width is unknown.
const DefaultStaticWidth = 80

// RenderStatic renders the whole portfolio once, for output that is not a
// terminal. The contact form becomes a list of profile links.
func RenderStatic(p content.Portfolio, isDark bool, width int) string {
	if width <= 0 {
		width = DefaultStaticWidth
	}
	s := theme.NewStyles(isDark)
	page := sections.Render(p, s, highlight.New(highlight.DefaultCacheSize), false, width)

	var b strings.Builder
	b.WriteString(page.Content)
	b.WriteString("\n\n")
	b.WriteString(s.Subheading.Render("Get in touch"))
	b.WriteString("\n")
	b.WriteString(s.Heading.Render("Contact"))
	b.WriteString("\n")
	for _, l := range p.Profile.Links {
		b.WriteString(s.Accent.Render(theme.LinkArrow) + " " + s.Body.Render(l.Title) + "  " + s.Muted.Render(l.URL))
		b.WriteString("\n")
	}
	return b.String()
}
