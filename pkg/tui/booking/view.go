package booking

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/ui"
	"tableflip.dev/rangepick/pkg/tui/ui/overlay"
)

const (
	marginX   = 2
	fieldsRow = 2
	fieldGap  = 3
)

const footerHelp = "tab field  enter pick  r one-way/return  s save  ? help  q quit"

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.group.SetViewport(geometry.Size{W: width, H: height})
	m.help.SetSize(min(width-4, 64), height-4)
	m.layout()
}

// layout records where each field's value box is drawn so pickers can
// anchor to it.
func (m *Model) layout() {
	x := marginX
	for _, f := range m.fields {
		view := f.View()
		w := lipgloss.Width(view)
		// The first row is the label.
		f.SetBounds(geometry.Rect{X: x, Y: fieldsRow + 1, W: w, H: lipgloss.Height(view) - 1})
		x += w + fieldGap
	}
}

func (m *Model) popups() []ui.Popup {
	popups := make([]ui.Popup, 0, len(m.pickers)+1)
	for _, dp := range m.pickers {
		popups = append(popups, dp)
	}
	return append(popups, m.timeUI)
}

// View implements tea.Model.
func (m *Model) View() (string, *tea.Cursor) {
	if m.width == 0 || m.height == 0 {
		return "", nil
	}
	var layers []overlay.Layer
	for _, p := range m.popups() {
		if p.Visible() {
			layers = append(layers, overlay.Layer{View: p.View(), Placement: overlay.AtRect(p.Bounds())})
		}
	}
	view := overlay.Stack(m.renderForm(), m.width, m.height, layers...)
	if m.helpVisible {
		view = overlay.Compose(view, m.width, m.height, m.help.View(), overlay.Placement{
			Horizontal: lipgloss.Center,
			Vertical:   lipgloss.Center,
		})
	}
	return view, nil
}

func (m *Model) renderForm() string {
	indent := strings.Repeat(" ", marginX)
	title := m.styles.Popup.Title.Render("rangepick") + "  " + m.styles.Popup.Hint.Render(kindLabel(m.kind)+" trip")

	views := make([]string, 0, 2*len(m.fields))
	for i, f := range m.fields {
		if i > 0 {
			views = append(views, strings.Repeat(" ", fieldGap))
		}
		views = append(views, f.View())
	}
	fields := lipgloss.JoinHorizontal(lipgloss.Top, views...)

	lines := []string{indent + title, ""}
	for _, l := range strings.Split(fields, "\n") {
		lines = append(lines, indent+l)
	}
	lines = append(lines, "", indent+m.renderKind())

	footer := []string{indent + m.renderStatus(), indent + m.styles.Footer.Help.Render(footerHelp)}
	for len(lines)+len(footer) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(append(lines, footer...), "\n")
}

func (m *Model) renderKind() string {
	oneWay, ret := "( )", "( )"
	if m.kind == store.KindOneWay {
		oneWay = "(*)"
	} else {
		ret = "(*)"
	}
	return m.styles.Popup.Body.Render(oneWay + " one-way   " + ret + " return")
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.warn {
		return m.styles.Footer.Warn.Render(m.status)
	}
	return m.styles.Footer.Status.Render(m.status)
}
