// Package ui runs the booking form.
package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/rangepick/pkg/store"
	"tableflip.dev/rangepick/pkg/tui/booking"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

// UI launches the Bubble Tea booking form.
type UI struct {
	Config      store.Config
	Persistence store.Persistence
	Kind        store.TripKind
	// LogFile receives structured logs; empty discards them.
	LogFile string
}

// Do runs the program until the user quits or ctx is cancelled.
func (u *UI) Do(ctx context.Context) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	var w io.Writer = io.Discard
	if u.LogFile != "" {
		f, err := os.OpenFile(u.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := booking.New(booking.Options{
		Config: u.Config,
		Store:  u.Persistence,
		Logger: logger,
		Kind:   u.Kind,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
