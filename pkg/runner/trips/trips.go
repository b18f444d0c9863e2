// Package trips lists the saved trip log.
package trips

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/store"
)

// Trips prints saved trips, optionally following changes.
type Trips struct {
	Persistence store.Persistence
	// Kind filters the list; empty shows every trip.
	Kind  store.TripKind
	JSON  bool
	Watch bool

	Out     io.Writer
	Printer *printers.PrettyPrint
}

// Do prints the list once, then again after every change when watching.
func (t *Trips) Do(ctx context.Context) error {
	if t.Out == nil {
		t.Out = color.Output
	}
	if t.Printer == nil {
		t.Printer = printers.New(t.Out)
	}
	if err := t.print(ctx); err != nil {
		return err
	}
	if !t.Watch {
		return nil
	}

	events, err := t.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.Kind != "" && ev.Kind != "" && ev.Kind != t.Kind {
				continue
			}
			if err := t.print(ctx); err != nil {
				return err
			}
		}
	}
}

func (t *Trips) list(ctx context.Context) []*store.Trip {
	all := t.Persistence.List(ctx)
	if t.Kind == "" {
		return all
	}
	filtered := make([]*store.Trip, 0, len(all))
	for _, trip := range all {
		if trip.Kind == t.Kind {
			filtered = append(filtered, trip)
		}
	}
	return filtered
}

func (t *Trips) print(ctx context.Context) error {
	trips := t.list(ctx)
	if t.JSON {
		b, err := json.Marshal(trips)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(t.Out, string(b))
		return nil
	}
	title := "Trips"
	if t.Kind != "" {
		title = fmt.Sprintf("Trips (%s)", t.Kind)
	}
	t.Printer.TitleWithCount(title, len(trips))
	t.Printer.Trips(trips)
	return nil
}
