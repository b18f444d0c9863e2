// Package field is the read-only text field a picker attaches to. It stores
// the formatted value, reports where it is drawn and queues change
// notifications for the host's next Update.
package field

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/tui/ui"
)

var (
	_ picker.Input       = (*Model)(nil)
	_ picker.ErrorMarker = (*Model)(nil)
	_ ui.Component       = (*Model)(nil)
)

// Options configures a field.
type Options struct {
	ID          events.ComponentID
	Label       string
	Placeholder string
	Width       int
}

// Model renders a labelled, bordered value box.
type Model struct {
	id    events.ComponentID
	label string
	input textinput.Model

	width    int
	focused  bool
	errored  bool
	disabled bool

	// bounds is where the host last drew the value box.
	bounds geometry.Rect

	pending []tea.Cmd
	styles  theme.FieldTheme
}

// New constructs a field.
func New(opts Options) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = opts.Placeholder
	in.Blur()

	id := opts.ID
	if id == "" {
		id = events.ComponentID("field")
	}
	width := opts.Width
	if width <= 0 {
		width = 24
	}
	m := &Model{
		id:     id,
		label:  opts.Label,
		input:  in,
		styles: theme.Default().Field,
	}
	m.SetSize(width, Height)
	return m
}

// Height is the number of rows a field occupies: label plus a bordered box.
const Height = 4

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. The field is never typed into; its value
// only changes through SetValue, so Update just drains queued notifications.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) {
	return m, m.Flush()
}

// SetSize implements ui.Component. Only the width matters.
func (m *Model) SetSize(width, _ int) {
	if width < 8 {
		width = 8
	}
	m.width = width
	// Border, padding and the trailing cursor cell.
	m.input.SetWidth(width - 6)
}

// Width is the rendered width.
func (m *Model) Width() int { return m.width }

// View renders the label above the value box.
func (m *Model) View() string {
	box := m.styles.Box
	switch {
	case m.errored:
		box = m.styles.Error
	case m.focused:
		box = m.styles.Focused
	}
	value := m.input.View()
	if m.disabled {
		text := m.input.Value()
		if text == "" {
			text = m.input.Placeholder
		}
		value = m.styles.Disabled.Render(text)
	}
	body := box.Width(m.width).Render(value)
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Label.Render(m.label), body)
}

// Value implements picker.Input.
func (m *Model) Value() string { return m.input.Value() }

// SetValue implements picker.Input.
func (m *Model) SetValue(v string) { m.input.SetValue(v) }

// Bounds implements picker.Input.
func (m *Model) Bounds() geometry.Rect { return m.bounds }

// SetBounds records where the value box was drawn.
func (m *Model) SetBounds(r geometry.Rect) { m.bounds = r }

// NotifyChange implements picker.Input by queueing a FieldChangeMsg.
func (m *Model) NotifyChange() {
	m.pending = append(m.pending, events.FieldChangeCmd(m.id, m.input.Value()))
}

// SetError implements picker.ErrorMarker.
func (m *Model) SetError(on bool) { m.errored = on }

// Errored reports the error state.
func (m *Model) Errored() bool { return m.errored }

// Clear empties the value and fires a change.
func (m *Model) Clear() {
	if m.input.Value() == "" {
		return
	}
	m.input.SetValue("")
	m.NotifyChange()
}

// SetDisabled greys the field out.
func (m *Model) SetDisabled(on bool) { m.disabled = on }

// Disabled reports whether the field is greyed out.
func (m *Model) Disabled() bool { return m.disabled }

// Focus highlights the field.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur removes the highlight.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Focused reports whether the field has focus.
func (m *Model) Focused() bool { return m.focused }

// Flush returns queued change notifications as one command.
func (m *Model) Flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}
