package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/booking"
)

func newFormCmd(opts *options, use, short string, kind store.TripKind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(*opts, kind)
		},
	}
}

func runForm(opts options, kind store.TripKind) error {
	form, err := booking.New(booking.Options{Kind: kind})
	if err != nil {
		return err
	}
	replay, err := parseReplay(opts.replay, opts.delay)
	if err != nil {
		return err
	}
	model := &formModel{frame: newFrame(opts), form: form, replay: replay}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// formModel hosts the booking form inside the testbed frame. Mouse
// coordinates are shifted into the frame and the form sees the frame's
// inner size as its window.
type formModel struct {
	frame  frame
	form   *booking.Model
	replay *keyReplay
}

func (m *formModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.replay.Next())
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.frame.observe(msg)

	var cmds []tea.Cmd
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		in := m.frame.inner()
		msg = tea.WindowSizeMsg{Width: in.W, Height: in.H}
	case tea.MouseClickMsg:
		mouse := v.Mouse()
		o := m.frame.origin()
		mouse.X -= o.X
		mouse.Y -= o.Y
		msg = tea.MouseClickMsg(mouse)
	case replayMsg:
		msg = v.key
		cmds = append(cmds, m.replay.Next())
	}

	if _, cmd := m.form.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *formModel) View() (string, *tea.Cursor) {
	if !m.frame.ready() {
		return m.frame.render("", nil)
	}
	content, cursor := m.form.View()
	return m.frame.render(content, cursor)
}
