package layout

// Layout constants
const (
	NavBarHeight       = 1
	StatusBarHeight    = 1
	SideBySideMinWidth = 100
	ContactPercent     = 38
	MinContactWidth    = 36
	MaxContactWidth    = 60
	MinPanelWidth      = 20
	MinPanelHeight     = 5
)

// Layout holds calculated dimensions for all regions.
type Layout struct {
	// Total terminal dimensions
	TotalWidth  int
	TotalHeight int

	// Fixed bars
	NavHeight    int
	StatusHeight int

	// Area between the bars
	MainHeight int

	// Sections panel
	SectionsWidth  int
	SectionsHeight int

	// Contact panel
	ContactWidth  int
	ContactHeight int

	// SideBySide is true when both panels share the main area
	SideBySide bool
}

// Calculate computes the layout for a terminal size. Wide terminals show the
// contact form beside the sections; narrow ones show one panel at a time,
// the contact form only while it has focus.
func Calculate(width, height int, contactFocused bool) Layout {
	l := Layout{
		TotalWidth:   width,
		TotalHeight:  height,
		NavHeight:    NavBarHeight,
		StatusHeight: StatusBarHeight,
	}

	l.MainHeight = max(height-l.NavHeight-l.StatusHeight, MinPanelHeight)

	if width >= SideBySideMinWidth {
		l.SideBySide = true
		l.ContactWidth = min(max(width*ContactPercent/100, MinContactWidth), MaxContactWidth)
		l.SectionsWidth = max(width-l.ContactWidth, MinPanelWidth)
		l.SectionsHeight = l.MainHeight
		l.ContactHeight = l.MainHeight
		return l
	}

	if contactFocused {
		l.ContactWidth = max(width, MinPanelWidth)
		l.ContactHeight = l.MainHeight
		return l
	}

	l.SectionsWidth = max(width, MinPanelWidth)
	l.SectionsHeight = l.MainHeight
	return l
}

// ContactVisible reports whether the contact panel gets any space.
func (l Layout) ContactVisible() bool {
	return l.ContactWidth > 0
}

// SectionsVisible reports whether the sections panel gets any space.
func (l Layout) SectionsVisible() bool {
	return l.SectionsWidth > 0
}

// ContentWidth returns the inner width for content (excluding borders).
func (l Layout) ContentWidth(panelWidth int, borderWidth int) int {
	return max(panelWidth-borderWidth*2, 0)
}

// ContentHeight returns the inner height for content (excluding borders).
func (l Layout) ContentHeight(panelHeight int, borderHeight int) int {
	return max(panelHeight-borderHeight*2, 0)
}

// SectionsBounds returns the position and size of the sections panel.
func (l Layout) SectionsBounds() (x, y, width, height int) {
	return 0, l.NavHeight, l.SectionsWidth, l.SectionsHeight
}

// ContactBounds returns the position and size of the contact panel.
func (l Layout) ContactBounds() (x, y, width, height int) {
	if !l.ContactVisible() {
		return 0, 0, 0, 0
	}
	return l.SectionsWidth, l.NavHeight, l.ContactWidth, l.ContactHeight
}

// StatusBarBounds returns the position and size of the status bar.
func (l Layout) StatusBarBounds() (x, y, width, height int) {
	return 0, l.NavHeight + l.MainHeight, l.TotalWidth, l.StatusHeight
}
