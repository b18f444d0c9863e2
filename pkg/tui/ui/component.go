package ui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/geometry"
)

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Popup is a component drawn at an absolute position over the host view.
type Popup interface {
	Component
	// Visible reports whether the popup should be drawn.
	Visible() bool
	// Bounds is the box the popup occupies, in host cells.
	Bounds() geometry.Rect
}
