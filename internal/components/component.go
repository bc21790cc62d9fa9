// Package components holds the building blocks shared by the portfolio panels.
package components

// Base tracks focus and size for a panel. Panels embed it and expose
// value-returning Focus/Blur/SetSize wrappers so they fit bubbletea's
// copy-on-update style.
type Base struct {
	focused bool
	width   int
	height  int
}

// NewBase returns a blurred Base of the given size.
func NewBase(width, height int) Base {
	var b Base
	b.SetSize(width, height)
	return b
}

func (b *Base) Focus() { b.focused = true }

func (b *Base) Blur() { b.focused = false }

func (b Base) Focused() bool { return b.focused }

// SetSize stores the panel size. Negative values, which a squeezed layout
// can produce, are treated as zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

func (b Base) Size() (width, height int) {
	return b.width, b.height
}
