// Package datepicker is the terminal popup for a picker.Picker: the month
// grid, the month/year selector and the time field.
package datepicker

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/picker"
	calview "tableflip.dev/rangepick/pkg/tui/components/calendar"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/tui/ui"
)

var _ ui.Popup = (*Model)(nil)

// Popup geometry. The content sits inside a rounded border with one column
// of horizontal padding.
const (
	frameX = 2
	frameY = 1

	titleRow  = 0
	headerRow = 1
	gridRow   = 2
	weekRows  = 6
	timeRow   = gridRow + weekRows + 1
	hintRow   = timeRow + 1
	rows      = hintRow + 1

	timeLabel = "Time "
)

// Size is the popup's fixed rendered size.
func Size() geometry.Size {
	return geometry.Size{W: calview.Width() + 2*frameX, H: rows + 2*frameY}
}

// Model drives one picker from the keyboard and mouse.
type Model struct {
	id events.ComponentID
	p  *picker.Picker

	cursor      int
	monthCursor time.Month

	editing   bool
	timeInput textinput.Model

	styles theme.Theme
	opts   calview.Options
}

// New wraps p and tells it the popup's size and time field position.
func New(id events.ComponentID, p *picker.Picker) *Model {
	if id == "" {
		id = events.ComponentID(p.ID())
	}
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "hh:mm AM"
	in.CharLimit = 8
	in.SetWidth(calview.Width() - len(timeLabel) - 1)
	in.Blur()

	th := theme.Default()
	m := &Model{
		id:        id,
		p:         p,
		timeInput: in,
		styles:    th,
		opts:      calview.FromTheme(th.Calendar),
	}
	p.SetPanelSize(Size())
	p.SetTimeField(geometry.Rect{X: frameX, Y: frameY + timeRow, W: calview.Width(), H: 1})
	m.syncCursor()
	return m
}

// Picker exposes the wrapped picker.
func (m *Model) Picker() *picker.Picker { return m.p }

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Cursor is the day under the keyboard cursor.
func (m *Model) Cursor() int { return m.cursor }

// MonthCursor is the month under the keyboard cursor in the selector.
func (m *Model) MonthCursor() time.Month { return m.monthCursor }

// Editing reports whether the time field has keyboard focus.
func (m *Model) Editing() bool { return m.editing }

func (m *Model) syncCursor() {
	m.cursor = m.p.Selected().Day()
	m.monthCursor = m.p.Selected().Month()
}

// Show opens the popup next to its field.
func (m *Model) Show() tea.Cmd {
	m.p.Show()
	m.editing = false
	m.timeInput.Blur()
	m.syncCursor()
	pl := m.p.Placement()
	return events.PickerShowCmd(m.id, m.p.Selected(), pl.Above)
}

// Hide closes the popup without confirming.
func (m *Model) Hide(reason string) tea.Cmd {
	if !m.p.Visible() {
		return nil
	}
	m.p.Hide()
	m.editing = false
	m.timeInput.Blur()
	return events.PickerHideCmd(m.id, reason)
}

// Visible implements ui.Popup.
func (m *Model) Visible() bool { return m.p.Visible() }

// Bounds implements ui.Popup.
func (m *Model) Bounds() geometry.Rect { return m.p.Placement().Rect }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component. The popup has a fixed size.
func (m *Model) SetSize(int, int) {}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if !m.p.Visible() {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m, m.updateTimeInput(key)
	}
	if m.p.State() == picker.StateMonthSelector {
		return m, m.updateSelector(key.String())
	}
	return m, m.updateCalendar(key.String())
}

func (m *Model) updateCalendar(key string) tea.Cmd {
	switch key {
	case "left", "h":
		return m.moveCursor(-1)
	case "right", "l":
		return m.moveCursor(1)
	case "up", "k":
		return m.moveCursor(-7)
	case "down", "j":
		return m.moveCursor(7)
	case "enter", "space":
		return m.selectDay(m.cursor)
	case "p", "[", "pgup":
		return m.stepMonth(-1)
	case "n", "]", "pgdown":
		return m.stepMonth(1)
	case "m":
		if m.p.OpenMonthSelector() {
			m.monthCursor = m.p.Selected().Month()
		}
	case "t":
		m.p.OpenTime()
	case "e":
		if !m.p.Config().DateOnly {
			m.editing = true
			m.timeInput.SetValue(m.p.TimeText())
			return m.timeInput.Focus()
		}
	case "o":
		return m.confirm()
	case "esc":
		return m.Hide("cancel")
	}
	return nil
}

func (m *Model) updateSelector(key string) tea.Cmd {
	switch key {
	case "left", "h":
		m.moveMonthCursor(-1)
	case "right", "l":
		m.moveMonthCursor(1)
	case "up", "k":
		m.moveMonthCursor(-3)
	case "down", "j":
		m.moveMonthCursor(3)
	case "[", "p", "pgup":
		m.p.PrevYear()
	case "]", "n", "pgdown":
		m.p.NextYear()
	case "enter", "space":
		return m.selectMonth(m.monthCursor)
	case "esc", "m":
		m.p.CloseMonthSelector()
	}
	return nil
}

func (m *Model) updateTimeInput(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		m.p.SetTimeText(strings.TrimSpace(m.timeInput.Value()))
		m.editing = false
		m.timeInput.Blur()
		return events.TimeChangeCmd(m.id, m.p.TimeText(), true)
	case "esc":
		m.editing = false
		m.timeInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.timeInput, cmd = m.timeInput.Update(key)
	return cmd
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	next := m.cursor + delta
	days := cal.DaysIn(m.p.Selected())
	switch {
	case next < 1:
		if !m.p.PreviousMonth() {
			return nil
		}
		m.cursor = cal.DaysIn(m.p.Selected()) + next
		return events.MonthChangeCmd(m.id, m.p.Selected())
	case next > days:
		if !m.p.NextMonth() {
			return nil
		}
		m.cursor = next - days
		return events.MonthChangeCmd(m.id, m.p.Selected())
	}
	m.cursor = next
	return nil
}

func (m *Model) moveMonthCursor(delta int) {
	next := m.monthCursor + time.Month(delta)
	if next < time.January || next > time.December {
		return
	}
	m.monthCursor = next
}

func (m *Model) stepMonth(dir int) tea.Cmd {
	var moved bool
	if dir < 0 {
		moved = m.p.PreviousMonth()
	} else {
		moved = m.p.NextMonth()
	}
	if !moved {
		return nil
	}
	if days := cal.DaysIn(m.p.Selected()); m.cursor > days {
		m.cursor = days
	}
	return events.MonthChangeCmd(m.id, m.p.Selected())
}

func (m *Model) selectDay(day int) tea.Cmd {
	if !m.p.SelectDay(day) {
		return nil
	}
	m.cursor = day
	return events.DaySelectCmd(m.id, m.p.Selected())
}

func (m *Model) selectMonth(month time.Month) tea.Cmd {
	if !m.p.SelectMonth(month) {
		return nil
	}
	m.syncCursor()
	return events.MonthChangeCmd(m.id, m.p.Selected())
}

func (m *Model) confirm() tea.Cmd {
	if !m.p.Confirm() {
		reason := events.RejectInvalidTime
		if errors.Is(m.p.Rejection(), picker.ErrOutOfRange) {
			reason = events.RejectOutOfRange
		}
		return events.PickerRejectCmd(m.id, reason, m.p.TimeText())
	}
	m.editing = false
	return events.PickerConfirmCmd(m.id, m.p.Selected())
}

// Click handles a pointer press at pt in host coordinates. It reports
// whether pt was inside the popup.
func (m *Model) Click(pt geometry.Point) (tea.Cmd, bool) {
	if !m.p.Visible() || !m.p.Placement().Contains(pt) {
		return nil, false
	}
	r := m.Bounds()
	x := pt.X - r.X - frameX
	y := pt.Y - r.Y - frameY
	w := calview.Width()

	if y == titleRow {
		switch {
		case x >= 0 && x < 2:
			if m.p.State() == picker.StateMonthSelector {
				m.p.PrevYear()
				return nil, true
			}
			return m.stepMonth(-1), true
		case x >= w-2 && x < w:
			if m.p.State() == picker.StateMonthSelector {
				m.p.NextYear()
				return nil, true
			}
			return m.stepMonth(1), true
		case m.p.State() == picker.StateCalendar:
			m.p.OpenMonthSelector()
			m.monthCursor = m.p.Selected().Month()
			return nil, true
		}
		return nil, true
	}

	if m.p.State() == picker.StateMonthSelector {
		if month, ok := calview.MonthAt(x, y-headerRow); ok {
			return m.selectMonth(month), true
		}
		return nil, true
	}

	switch {
	case y >= headerRow && y < timeRow:
		if day, ok := calview.DayAt(m.p.Grid(), x, y-headerRow, true); ok {
			return m.selectDay(day), true
		}
	case y == timeRow:
		m.p.OpenTime()
	case y == hintRow && x >= w-4:
		return m.confirm(), true
	}
	return nil, true
}

// View implements ui.Component.
func (m *Model) View() string {
	if !m.p.Visible() {
		return ""
	}
	w := calview.Width()
	lines := make([]string, 0, rows)

	if m.p.State() == picker.StateMonthSelector {
		lines = append(lines, m.title(strconv.Itoa(m.p.SelectorYear()), true, true))
		months := calview.RenderMonths(m.p.MonthOptions(), m.monthCursor, m.opts)
		lines = append(lines, strings.Split(months, "\n")...)
	} else {
		lines = append(lines, m.title(m.p.MonthLabel(), m.p.CanPreviousMonth(), m.p.CanNextMonth()))
		grid := calview.Render(m.p.Grid(), m.cursor, m.opts)
		lines = append(lines, strings.Split(grid, "\n")...)
	}
	for len(lines) < timeRow {
		lines = append(lines, "")
	}
	lines = append(lines, m.timeLine(), m.hintLine(w))

	body := lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
	return m.styles.Popup.Frame.Render(body)
}

func (m *Model) title(label string, prev, next bool) string {
	w := calview.Width()
	arrow := func(s string, on bool) string {
		if on {
			return m.styles.Calendar.Nav.Render(s)
		}
		return m.styles.Calendar.NavDisabled.Render(s)
	}
	mid := m.styles.Popup.Title.Width(w - 4).Align(lipgloss.Center).Render(label)
	return arrow("<", prev) + " " + mid + " " + arrow(">", next)
}

func (m *Model) timeLine() string {
	label := m.styles.Calendar.TimeLabel.Render(timeLabel)
	if m.p.Config().DateOnly {
		return label + m.styles.Calendar.TimeLabel.Render("--")
	}
	if m.editing {
		return label + m.timeInput.View()
	}
	text := m.p.TimeText()
	style := m.styles.Calendar.TimeValue
	if m.p.TimeError() {
		style = m.styles.Calendar.TimeError
	}
	if text == "" {
		text = "hh:mm AM"
		if !m.p.TimeError() {
			style = m.styles.Popup.Hint
		}
	}
	return label + style.Render(text)
}

func (m *Model) hintLine(w int) string {
	hint := "t time  e edit"
	if m.p.State() == picker.StateMonthSelector {
		hint = "[ ] year  esc back"
	}
	if m.p.Config().DateOnly {
		hint = "m month"
	}
	pad := w - lipgloss.Width(hint) - 4
	if pad < 1 {
		pad = 1
	}
	return m.styles.Popup.Hint.Render(hint) + strings.Repeat(" ", pad) + m.styles.Calendar.Nav.Render("[ok]")
}
