// Package timepanel renders the shared hour/minute/period selector and
// translates keys and clicks into selections on the underlying panel.
package timepanel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/geometry"
	tp "tableflip.dev/rangepick/pkg/timepanel"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/tui/ui"
)

var _ ui.Popup = (*Model)(nil)

var columns = []tp.Column{tp.Hours, tp.Minutes, tp.Periods}

var headers = map[tp.Column]string{
	tp.Hours:   "hr",
	tp.Minutes: "min",
	tp.Periods: "",
}

const (
	optionWidth = 4 // " 09 "
	columnGap   = 1
	// frameX is the left border plus padding; frameY the top border.
	frameX = 2
	frameY = 1
)

// NaturalSize is the panel's rendered size for the given visible rows.
func NaturalSize(rows int) geometry.Size {
	inner := len(columns)*optionWidth + (len(columns)-1)*columnGap
	return geometry.Size{W: inner + 2*frameX, H: rows + 1 + 2*frameY}
}

// Model drives a timepanel.Panel from the keyboard and mouse.
type Model struct {
	id     events.ComponentID
	panel  *tp.Panel
	focus  int
	cursor [3]int

	styles theme.TimeTheme
}

// New wraps panel.
func New(id events.ComponentID, panel *tp.Panel) *Model {
	if id == "" {
		id = events.ComponentID("time")
	}
	m := &Model{id: id, panel: panel, styles: theme.Default().Time}
	m.Reset()
	return m
}

// Reset moves the keyboard cursor onto the panel's current selection. Call
// it after the panel opens.
func (m *Model) Reset() {
	m.focus = 0
	sel := m.panel.Selection()
	for i, col := range columns {
		idx, ok := sel.Index(col)
		if !ok {
			idx = defaultIndex(col)
		}
		m.cursor[i] = idx
	}
}

func defaultIndex(col tp.Column) int {
	if col == tp.Hours {
		return 11 // 12
	}
	return 0
}

// Visible implements ui.Popup.
func (m *Model) Visible() bool { return m.panel.IsOpen() }

// Bounds implements ui.Popup.
func (m *Model) Bounds() geometry.Rect { return m.panel.Placement().Rect }

// Focus returns the focused column.
func (m *Model) Focus() tp.Column { return columns[m.focus] }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component. The panel has a fixed natural size.
func (m *Model) SetSize(int, int) {}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if !m.panel.IsOpen() {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h", "shift+tab":
		m.focus = (m.focus + len(columns) - 1) % len(columns)
	case "right", "l", "tab":
		m.focus = (m.focus + 1) % len(columns)
	case "up", "k":
		return m, m.move(-1)
	case "down", "j":
		return m, m.move(1)
	case "enter", "space":
		text := m.panel.Selection().Text()
		m.panel.Confirm()
		return m, events.TimeChangeCmd(m.id, text, true)
	case "esc":
		m.panel.Cancel()
		return m, events.TimeChangeCmd(m.id, m.panel.Selection().Text(), true)
	}
	return m, nil
}

func (m *Model) move(delta int) tea.Cmd {
	col := columns[m.focus]
	idx := m.cursor[m.focus] + delta
	if idx < 0 || idx >= col.Len() {
		return nil
	}
	return m.pick(m.focus, idx)
}

func (m *Model) pick(i, idx int) tea.Cmd {
	col := columns[i]
	if !m.panel.Select(col, tp.Value(col, idx)) {
		return nil
	}
	m.focus = i
	m.cursor[i] = idx
	return events.TimeChangeCmd(m.id, m.panel.Selection().Text(), false)
}

// Click selects the option under pt, given in host coordinates. It reports
// whether pt hit an option.
func (m *Model) Click(pt geometry.Point) (tea.Cmd, bool) {
	if !m.panel.IsOpen() {
		return nil, false
	}
	r := m.Bounds()
	x := pt.X - r.X - frameX
	y := pt.Y - r.Y - frameY - 1
	if x < 0 || y < 0 || y >= m.panel.VisibleRows() {
		return nil, false
	}
	stride := optionWidth + columnGap
	if x%stride >= optionWidth {
		return nil, false
	}
	i := x / stride
	if i >= len(columns) {
		return nil, false
	}
	idx := m.offset(i) + y
	if idx >= columns[i].Len() {
		return nil, false
	}
	return m.pick(i, idx), true
}

func (m *Model) offset(i int) int {
	col := columns[i]
	if _, ok := m.panel.Selection().Index(col); ok {
		return m.panel.Offset(col)
	}
	return geometry.ScrollOffset(m.cursor[i], col.Len(), m.panel.VisibleRows())
}

// View implements ui.Component.
func (m *Model) View() string {
	if !m.panel.IsOpen() {
		return ""
	}
	rows := m.panel.VisibleRows()
	sel := m.panel.Selection()

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		lines := []string{m.styles.Header.Width(optionWidth).Render(headers[col])}
		off := m.offset(i)
		chosen, set := sel.Index(col)
		for r := 0; r < rows; r++ {
			idx := off + r
			if idx >= col.Len() {
				lines = append(lines, strings.Repeat(" ", optionWidth))
				continue
			}
			style := m.styles.Option
			if set && idx == chosen {
				style = m.styles.Selected
			}
			if i == m.focus && idx == m.cursor[i] {
				style = style.Inherit(m.styles.Cursor)
			}
			lines = append(lines, style.Render(" "+tp.Label(col, idx)+" "))
		}
		rendered = append(rendered, strings.Join(lines, "\n"))
	}
	gap := strings.Repeat(" ", columnGap)
	body := lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], gap, rendered[1], gap, rendered[2])
	return m.styles.Frame.Render(body)
}
