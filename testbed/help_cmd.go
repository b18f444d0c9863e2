package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/tui/components/help"
)

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "help-overlay",
		Short: "Render the key binding overlay",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &helpModel{frame: newFrame(*opts), overlay: help.New(72, 18)}
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// helpModel shows the help overlay on its own so its glamour rendering and
// scrolling can be checked at different frame sizes.
type helpModel struct {
	frame   frame
	overlay *help.Model
}

func (m *helpModel) Init() tea.Cmd { return nil }

func (m *helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.frame.observe(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		in := m.frame.inner()
		m.overlay.SetSize(in.W, in.H)
	case tea.KeyPressMsg:
		switch v.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
	}
	_, cmd := m.overlay.Update(msg)
	return m, cmd
}

func (m *helpModel) View() (string, *tea.Cursor) {
	return m.frame.render(m.overlay.View(), nil)
}
