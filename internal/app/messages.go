package app

import "github.com/avitaltamir/termfolio/internal/content"

// PanelID identifies which panel has focus.
type PanelID int

const (
	PanelNav PanelID = iota
	PanelSections
	PanelContact
	panelCount
)

// String returns the panel name for debugging.
func (p PanelID) String() string {
	switch p {
	case PanelNav:
		return "Nav"
	case PanelSections:
		return "Sections"
	case PanelContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// FocusMsg requests focus change to a specific panel.
type FocusMsg struct {
	Target PanelID
}

// StatusMsg flashes a message in the status bar.
type StatusMsg struct {
	Text string
}

// ContentReloadedMsg carries a portfolio re-read from disk.
type ContentReloadedMsg struct {
	Portfolio content.Portfolio
}

// flashExpiredMsg fires when a status flash may have timed out.
type flashExpiredMsg struct{}
