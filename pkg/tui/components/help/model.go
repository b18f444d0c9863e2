// Package help renders the key reference as a scrollable modal.
package help

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/rangepick/pkg/tui/theme"
	"tableflip.dev/rangepick/pkg/tui/ui"
)

//go:embed help.md
var helpMarkdown string

var _ ui.Component = (*Model)(nil)

// Model renders the Glamour-based help overlay inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	title lipgloss.Style
	err   error
}

// New constructs a help overlay model sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	styles := theme.Default().Modal
	model := &Model{
		viewport: vp,
		frame:    styles.Frame,
		title:    styles.Title,
	}
	model.SetSize(width, height)
	return model
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside the modal frame.
func (m *Model) View() string {
	body := m.viewport.View()
	if body == "" && m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	header := m.title.Render("Help  (? or esc to close)")
	return m.frame.Width(m.width).Height(m.height).Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// Size is the rendered size of the modal.
func (m *Model) Size() (int, int) { return m.width, m.height }

// SetSize configures the overlay dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	frameX := m.frame.GetHorizontalFrameSize()
	frameY := m.frame.GetVerticalFrameSize()

	innerWidth := max(width-frameX, 1)
	// One row for the title.
	innerHeight := max(height-frameY-1, 1)

	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)

	m.renderContent(innerWidth)
}

func (m *Model) renderContent(wrap int) {
	renderWidth := max(wrap, 10)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	content, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		m.err = err
		m.viewport.SetContent("help unavailable: " + err.Error())
		return
	}

	content = stripANSI(content)

	m.err = nil
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
