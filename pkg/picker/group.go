package picker

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/timepanel"
)

var (
	// ErrEmptyID is returned when a picker is registered without an ID.
	ErrEmptyID = errors.New("picker: empty id")
	// ErrDuplicateID is returned when an ID is already registered.
	ErrDuplicateID = errors.New("picker: duplicate id")
	// ErrUnknownID is returned when an ID is not registered.
	ErrUnknownID = errors.New("picker: unknown id")
	// ErrInvalidTime is the rejection for a time entry that does not parse.
	ErrInvalidTime = errors.New("picker: invalid time")
	// ErrOutOfRange is the rejection for a date outside the picker bounds.
	ErrOutOfRange = errors.New("picker: date out of range")
)

// Clock supplies "now" for default bounds and the month selector.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// DefaultPanelSize is the natural picker popup size used until the renderer
// reports a measured one.
var DefaultPanelSize = geometry.Size{W: 300, H: 360}

// GroupOptions configures a Group.
type GroupOptions struct {
	Clock     Clock
	Spacing   geometry.Spacing
	Viewport  geometry.Size
	PanelSize geometry.Size
	TimePanel timepanel.Options
}

// Group owns a set of cooperating pickers and the single time panel they
// share. Pickers in different groups never touch each other's pending time
// selection.
type Group struct {
	opts    GroupOptions
	pickers map[ID]*Picker
	order   []ID
	panel   *timepanel.Panel
}

// NewGroup constructs an empty group. Zero options fall back to RealClock,
// geometry.DefaultSpacing and DefaultPanelSize.
func NewGroup(opts GroupOptions) *Group {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Spacing == (geometry.Spacing{}) {
		opts.Spacing = geometry.DefaultSpacing()
	}
	if opts.PanelSize == (geometry.Size{}) {
		opts.PanelSize = DefaultPanelSize
	}
	if opts.TimePanel.Spacing == (geometry.Spacing{}) {
		opts.TimePanel.Spacing = opts.Spacing
	}
	panel := timepanel.New(opts.TimePanel)
	panel.SetViewport(opts.Viewport)
	return &Group{
		opts:    opts,
		pickers: make(map[ID]*Picker),
		panel:   panel,
	}
}

// New registers a picker bound to this group.
func (g *Group) New(id ID, cfg Config) (*Picker, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, ok := g.pickers[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	now := g.Now()
	if cfg.MinDate.IsZero() {
		cfg.MinDate = now
	}
	p := &Picker{
		id:        id,
		group:     g,
		cfg:       cfg,
		panelSize: g.opts.PanelSize,
	}
	p.selected = cfg.bounds().Clamp(now)
	g.pickers[id] = p
	g.order = append(g.order, id)
	return p, nil
}

// Lookup resolves an ID.
func (g *Group) Lookup(id ID) (*Picker, bool) {
	p, ok := g.pickers[id]
	return p, ok
}

// Release forgets a picker. Links naming it stop resolving and the time
// panel is detached if the picker owned it.
func (g *Group) Release(id ID) {
	p, ok := g.pickers[id]
	if !ok {
		return
	}
	g.panel.Release(p)
	delete(g.pickers, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Pickers returns the registered pickers in registration order.
func (g *Group) Pickers() []*Picker {
	out := make([]*Picker, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.pickers[id])
	}
	return out
}

// Panel returns the shared time panel.
func (g *Group) Panel() *timepanel.Panel { return g.panel }

// Now reads the group clock.
func (g *Group) Now() time.Time { return g.opts.Clock.Now() }

// SetViewport records the viewport size used by the next Show or time
// panel Open.
func (g *Group) SetViewport(size geometry.Size) {
	g.opts.Viewport = size
	g.panel.SetViewport(size)
}

// Viewport returns the last recorded viewport size.
func (g *Group) Viewport() geometry.Size { return g.opts.Viewport }

// HandlePointer routes a pointer event to the time panel and to every
// visible picker so each can apply its outside-click rule. It reports
// whether anything was dismissed.
func (g *Group) HandlePointer(pt geometry.Point) bool {
	dismissed := g.panel.HandlePointer(pt)
	for _, p := range g.Pickers() {
		if p.HandlePointer(pt) {
			dismissed = true
		}
	}
	return dismissed
}
