package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/tui/components/eventviewer"
)

const (
	minFrameW = 20
	minFrameH = 12
	minLogH   = 5
	maxLogH   = 12
)

// frame boxes a component at the top of the terminal with the message log
// underneath. Content coordinates start one cell inside the border.
type frame struct {
	opts options
	term geometry.Size
	box  geometry.Rect
	logH int
	log  *eventviewer.Model
}

func newFrame(opts options) frame {
	return frame{opts: opts, log: eventviewer.NewModel(400)}
}

// observe records msg in the log and tracks the terminal size.
func (f *frame) observe(msg tea.Msg) {
	f.log.Record(msg)
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		f.resize(ws.Width, ws.Height)
	}
	f.log.Update(msg)
}

func (f *frame) ready() bool { return f.term.W > 0 && f.term.H > 0 }

func (f *frame) resize(w, h int) {
	f.term = geometry.Size{W: w, H: h}

	f.logH = 0
	if room := h - minFrameH - 1; room >= minLogH {
		f.logH = min(bound(h/4, minLogH, maxLogH), room)
	}
	space := max(minFrameH, h-f.logH-1)

	size := geometry.Size{W: bound(f.opts.width, minFrameW, w-4), H: bound(f.opts.height, minFrameH, space)}
	if f.opts.full {
		size = geometry.Size{W: max(w, minFrameW), H: space}
	}
	f.box = geometry.Rect{X: max(0, (w-size.W)/2), W: size.W, H: size.H}
	if f.logH > 0 {
		f.log.SetSize(w, f.logH)
	}
}

// inner is the size a framed component gets as its window.
func (f *frame) inner() geometry.Size {
	return geometry.Size{W: max(1, f.box.W-2), H: max(1, f.box.H-2)}
}

// origin is the screen cell of the content's top-left corner.
func (f *frame) origin() geometry.Point {
	return geometry.Point{X: f.box.X + 1, Y: f.box.Y + 1}
}

// render draws content inside the frame and shifts its cursor to screen
// coordinates.
func (f *frame) render(content string, cursor *tea.Cursor) (string, *tea.Cursor) {
	if !f.ready() {
		return "Resizing…", nil
	}
	in := f.inner()
	body := lipgloss.NewStyle().Width(in.W).Height(in.H).MaxHeight(in.H).Render(content)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(body)
	view := lipgloss.Place(f.term.W, max(1, f.term.H-f.logH-1), lipgloss.Center, lipgloss.Top, box)

	if f.logH > 0 {
		logView := lipgloss.NewStyle().
			Width(f.term.W).
			Height(f.logH).
			Align(lipgloss.Left, lipgloss.Bottom).
			Render(f.log.View())
		view = lipgloss.JoinVertical(lipgloss.Left, view, "", logView)
	}

	if cursor == nil {
		return view, nil
	}
	moved := *cursor
	o := f.origin()
	moved.Position.X += o.X
	moved.Position.Y += o.Y
	return view, &moved
}

// bound clamps v to [lo, hi]; a non-positive hi means the terminal is too
// small and lo wins.
func bound(v, lo, hi int) int {
	if hi <= 0 || v < lo {
		return lo
	}
	return min(v, hi)
}
