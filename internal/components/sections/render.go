package sections

import (
	"fmt"
	"strings"

	"github.com/avitaltamir/termfolio/internal/content"
	"github.com/avitaltamir/termfolio/internal/highlight"
	"github.com/avitaltamir/termfolio/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Section ids, in page order. Nav links refer to these.
const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionTech       = "tech"
	SectionExperience = "experience"
	SectionWork       = "work"
)

// Order lists the section ids top to bottom.
var Order = []string{SectionHero, SectionAbout, SectionTech, SectionExperience, SectionWork}

// Page is a fully rendered portfolio with the line each section starts on.
type Page struct {
	Content string
	Anchors map[string]int
}

// renderer turns a portfolio into styled text for one width and theme.
type renderer struct {
	portfolio   content.Portfolio
	styles      theme.Styles
	highlighter *highlight.Highlighter
	nerdFonts   bool
	width       int
}

// Render lays out every section for width.
func Render(p content.Portfolio, s theme.Styles, h *highlight.Highlighter, nerdFonts bool, width int) Page {
	r := renderer{
		portfolio:   p,
		styles:      s,
		highlighter: h,
		nerdFonts:   nerdFonts,
		width:       max(width, 20),
	}

	blocks := map[string]func() string{
		SectionHero:       r.hero,
		SectionAbout:      r.about,
		SectionTech:       r.tech,
		SectionExperience: r.experience,
		SectionWork:       r.works,
	}

	page := Page{Anchors: make(map[string]int, len(Order))}
	var lines []string
	for _, id := range Order {
		page.Anchors[id] = len(lines)
		lines = append(lines, strings.Split(blocks[id](), "\n")...)
		lines = append(lines, "")
	}
	page.Content = strings.Join(lines, "\n")
	return page
}

func (r renderer) heading(sub, title string) string {
	return r.styles.Subheading.Render(sub) + "\n" + r.styles.Heading.Render(title)
}

func (r renderer) wrap(style lipgloss.Style, text string, width int) string {
	return style.Width(width).Render(text)
}

func (r renderer) hero() string {
	s := r.styles
	p := r.portfolio.Profile

	var b strings.Builder
	b.WriteString(s.GradientBar(r.width))
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render("Hi, I'm ") + s.Heading.Render(p.Name))
	b.WriteString("\n")
	if p.Role != "" {
		b.WriteString(s.Body.Render(p.Role))
		b.WriteString("\n")
	}
	if p.Tagline != "" {
		b.WriteString(r.wrap(s.Muted, p.Tagline, r.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	code := r.highlighter.Highlight(profileSource(r.portfolio), "go", s.Dark)
	b.WriteString(s.Card.Render(code))
	return b.String()
}

// profileSource renders the profile as a Go literal for the hero card.
func profileSource(p content.Portfolio) string {
	stack := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		stack = append(stack, fmt.Sprintf("%q", t.Name))
	}
	if len(stack) > 4 {
		stack = append(stack[:4], "/* ... */")
	}

	var b strings.Builder
	b.WriteString("dev := Developer{\n")
	fmt.Fprintf(&b, "\tName:     %q,\n", p.Profile.Name)
	if p.Profile.Role != "" {
		fmt.Fprintf(&b, "\tRole:     %q,\n", p.Profile.Role)
	}
	if p.Profile.Location != "" {
		fmt.Fprintf(&b, "\tLocation: %q,\n", p.Profile.Location)
	}
	fmt.Fprintf(&b, "\tStack:    []string{%s},\n", strings.Join(stack, ", "))
	b.WriteString("}")
	return b.String()
}

func (r renderer) about() string {
	s := r.styles
	p := r.portfolio

	var b strings.Builder
	b.WriteString(r.heading("Introduction", "About me"))
	b.WriteString("\n\n")
	b.WriteString(r.wrap(s.Muted, p.Profile.About, min(r.width, 80)))
	b.WriteString("\n")

	for _, l := range p.Profile.Links {
		b.WriteString("\n" + s.Accent.Render(theme.LinkArrow+" "+l.Title) + " " + s.Muted.Render(l.URL))
	}
	if len(p.Profile.Links) > 0 {
		b.WriteString("\n")
	}

	cardWidth := 26
	cards := make([]string, 0, len(p.Services))
	for _, svc := range p.Services {
		icon := theme.GetServiceIcon(svc.Icon, r.nerdFonts)
		body := s.Accent.Render(icon) + " " + s.Title.Render(svc.Title)
		if svc.Description != "" {
			body += "\n" + r.wrap(s.Muted, svc.Description, cardWidth-4)
		}
		cards = append(cards, s.Card.Width(cardWidth).Render(body))
	}
	if len(cards) > 0 {
		b.WriteString("\n")
		b.WriteString(grid(cards, r.width))
	}
	return b.String()
}

func (r renderer) tech() string {
	s := r.styles

	var b strings.Builder
	b.WriteString(r.heading("Toolbox", "Technologies"))
	b.WriteString("\n\n")

	chips := make([]string, 0, len(r.portfolio.Technologies))
	for _, t := range r.portfolio.Technologies {
		icon := theme.GetTechIcon(t.Name, r.nerdFonts)
		chips = append(chips, s.Button.Render(s.Accent.Render(icon)+" "+t.Name))
	}
	b.WriteString(grid(chips, r.width))
	return b.String()
}

func (r renderer) experience() string {
	s := r.styles

	var b strings.Builder
	b.WriteString(r.heading("Timeline", "Experience"))
	b.WriteString("\n")

	textWidth := max(r.width-4, 10)
	for _, e := range r.portfolio.Experiences {
		b.WriteString("\n")
		b.WriteString(s.Accent.Render(theme.TimelineNode) + " " + s.Title.Render(e.Title))
		if e.Date != "" {
			b.WriteString("  " + s.Muted.Render(e.Date))
		}
		b.WriteString("\n")
		stem := s.Muted.Render(theme.TimelineStem)
		if e.Company != "" {
			b.WriteString(stem + " " + s.Subheading.Render(e.Company) + "\n")
		}
		for _, pt := range e.Points {
			for _, line := range strings.Split(r.wrap(s.Body, theme.BulletPoint+" "+pt, textWidth), "\n") {
				b.WriteString(stem + "   " + line + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r renderer) works() string {
	s := r.styles

	var b strings.Builder
	b.WriteString(r.heading("Selected work", "Projects"))
	b.WriteString("\n\n")

	cardWidth := min(max(r.width-2, 20), 36)
	cards := make([]string, 0, len(r.portfolio.Projects))
	for _, p := range r.portfolio.Projects {
		var body strings.Builder
		body.WriteString(s.Title.Render(p.Name))
		if p.Description != "" {
			body.WriteString("\n" + r.wrap(s.Muted, p.Description, cardWidth-4))
		}
		if len(p.Tags) > 0 {
			tags := make([]string, 0, len(p.Tags))
			for _, t := range p.Tags {
				tags = append(tags, s.Tag(t.Name, t.Color))
			}
			body.WriteString("\n" + strings.Join(tags, " "))
		}
		if p.SourceURL != "" {
			body.WriteString("\n" + s.Accent.Render(theme.LinkArrow+" source"))
		}
		cards = append(cards, s.Card.Width(cardWidth).Render(body.String()))
	}
	b.WriteString(grid(cards, r.width))
	return b.String()
}

// grid lays cards out left to right, wrapping rows to fit width.
func grid(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cards {
		w := lipgloss.Width(c) + 1
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c, " ")
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
