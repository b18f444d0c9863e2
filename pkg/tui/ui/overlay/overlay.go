// Package overlay draws popups over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/rangepick/pkg/geometry"
)

// Start aligns an overlay to the top or left edge, offset by the margin.
// lipgloss.Left and lipgloss.Top are zero and already mean "centre" here.
const Start = lipgloss.Position(-1)

const reset = "\x1b[0m"

// Placement controls overlay alignment and sizing.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// At anchors the overlay's top-left corner at x, y.
func At(x, y int) Placement {
	return Placement{Horizontal: Start, Vertical: Start, MarginX: x, MarginY: y}
}

// AtRect anchors and sizes the overlay to r.
func AtRect(r geometry.Rect) Placement {
	p := At(r.X, r.Y)
	p.Width = r.W
	p.Height = r.H
	return p
}

// Compose overlays the foreground view atop the background while preserving
// background content outside the overlay bounds.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	if len(fgLines) == 0 {
		return strings.Join(bgLines, "\n")
	}

	overlayWidth := placement.Width
	if overlayWidth <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > overlayWidth {
				overlayWidth = w
			}
		}
	}
	if overlayWidth <= 0 {
		return strings.Join(bgLines, "\n")
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	overlayHeight := placement.Height
	if overlayHeight <= 0 {
		overlayHeight = len(fgLines)
	}
	if overlayHeight <= 0 {
		return strings.Join(bgLines, "\n")
	}
	if overlayHeight > height {
		overlayHeight = height
	}

	offsetX, offsetY := computeOffsets(width, height, overlayWidth, overlayHeight, placement)

	for row := 0; row < overlayHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := ""
		if row < len(fgLines) {
			fgLine = fgLines[row]
		}
		fgLine = padToWidth(fgLine, overlayWidth)

		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, offsetX)
		suffix := sliceWidth(baseLine, offsetX+overlayWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n")
}

// Layer is one foreground view and where it goes.
type Layer struct {
	View      string
	Placement Placement
}

// Stack composes layers in order, later layers drawn on top.
func Stack(background string, width, height int, layers ...Layer) string {
	out := strings.Join(normalizeBackground(background, width, height), "\n")
	for _, l := range layers {
		out = Compose(out, width, height, l.View, l.Placement)
	}
	return out
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-currWidth)
}

// sliceWidth returns the cells [start, end) of s. Escape sequences are kept
// wherever they occur so colours stay intact; a reset is appended when any
// were copied so they do not bleed into what follows.
func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if start >= end {
		return ""
	}

	var b strings.Builder
	styled := false
	inEscape := false
	widthSeen := 0
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
		}
		if inEscape {
			b.WriteRune(r)
			styled = true
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if next > end {
			break
		}
		if widthSeen >= start {
			b.WriteRune(r)
		}
		widthSeen = next
	}
	if styled {
		b.WriteString(reset)
	}
	return b.String()
}

func computeOffsets(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	offsetX := placement.MarginX
	switch h {
	case lipgloss.Right:
		offsetX = width - overlayWidth - placement.MarginX
	case lipgloss.Center:
		offsetX = (width - overlayWidth) / 2
	}
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetX > width-overlayWidth {
		offsetX = width - overlayWidth
	}

	offsetY := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		offsetY = height - overlayHeight - placement.MarginY
	case lipgloss.Center:
		offsetY = (height - overlayHeight) / 2
	}
	if offsetY < 0 {
		offsetY = 0
	}
	if offsetY > height-overlayHeight {
		offsetY = height - overlayHeight
	}

	return offsetX, offsetY
}
