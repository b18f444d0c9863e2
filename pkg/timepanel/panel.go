// Package timepanel implements the floating hour/minute/period selector that
// a group of pickers shares. One panel exists per group and it serves one
// owner at a time.
package timepanel

import (
	"fmt"

	"tableflip.dev/rangepick/pkg/clock"
	"tableflip.dev/rangepick/pkg/geometry"
)

// Column identifies one of the three independent selection columns.
type Column int

const (
	// Hours lists 1..12.
	Hours Column = iota
	// Minutes lists 0..59.
	Minutes
	// Periods lists AM and PM.
	Periods
)

func (c Column) String() string {
	switch c {
	case Hours:
		return "hour"
	case Minutes:
		return "minute"
	case Periods:
		return "period"
	}
	return fmt.Sprintf("column(%d)", int(c))
}

// Len returns the number of options in the column.
func (c Column) Len() int {
	switch c {
	case Hours:
		return 12
	case Minutes:
		return 60
	case Periods:
		return 2
	}
	return 0
}

// Owner is the picker currently driving the panel.
type Owner interface {
	// CurrentTime reports the owner's time of day if it has one to show.
	CurrentTime() (clock.Time, bool)
	// ApplyTime writes a time of day back into the owner.
	ApplyTime(clock.Time)
	// TimeField is the bounding box of the owner's time field.
	TimeField() geometry.Rect
}

// Options configures a panel.
type Options struct {
	// Size is the natural panel size. A zero width follows the time field.
	Size        geometry.Size
	Spacing     geometry.Spacing
	VisibleRows int
}

// Panel is the shared time selector.
type Panel struct {
	opts     Options
	viewport geometry.Size

	owner   Owner
	open    bool
	sel     Selection
	pending *Selection
	place   geometry.Placement
}

// New constructs a closed panel.
func New(opts Options) *Panel {
	if opts.Size.H <= 0 {
		opts.Size.H = 200
	}
	if opts.VisibleRows <= 0 {
		opts.VisibleRows = 5
	}
	return &Panel{opts: opts}
}

// SetViewport records the viewport used for the next Open.
func (p *Panel) SetViewport(size geometry.Size) { p.viewport = size }

// SetSize overrides the natural panel size.
func (p *Panel) SetSize(size geometry.Size) { p.opts.Size = size }

// Open shows the panel for owner. Opening for a different owner discards
// whatever selection the previous owner left behind. The current selection
// is snapshotted so Cancel can restore it.
func (p *Panel) Open(owner Owner) {
	if owner == nil {
		return
	}
	if p.owner != owner {
		p.sel = Selection{}
		if t, ok := owner.CurrentTime(); ok && t.Valid() {
			p.sel = selectionOf(t)
		}
		p.owner = owner
	}
	snap := p.sel
	p.pending = &snap

	field := owner.TimeField()
	size := p.opts.Size
	if size.W <= 0 {
		size.W = field.W
	}
	p.place = geometry.Place(field, size, p.viewport, p.opts.Spacing, geometry.BelowWhenFits)
	p.open = true
}

// Select picks value in column, deselecting only that column's previous
// choice, and applies the composite time to the owner immediately.
func (p *Panel) Select(col Column, value int) bool {
	if !p.open || p.owner == nil {
		return false
	}
	switch col {
	case Hours:
		if value < 1 || value > 12 {
			return false
		}
		p.sel.Hour, p.sel.HourSet = value, true
	case Minutes:
		if value < 0 || value > 59 {
			return false
		}
		p.sel.Minute, p.sel.MinuteSet = value, true
	case Periods:
		if value < 0 || value > 1 {
			return false
		}
		p.sel.Period, p.sel.PeriodSet = clock.Periods()[value], true
	default:
		return false
	}
	p.owner.ApplyTime(p.sel.Time())
	return true
}

// Confirm applies the selection and closes the panel.
func (p *Panel) Confirm() {
	if !p.open {
		return
	}
	p.owner.ApplyTime(p.sel.Time())
	p.close()
}

// Cancel restores the snapshot taken on Open, reapplies it and closes.
func (p *Panel) Cancel() {
	if !p.open {
		return
	}
	if p.pending != nil {
		p.sel = *p.pending
	}
	p.owner.ApplyTime(p.sel.Time())
	p.close()
}

// HandlePointer treats a pointer outside the panel and the owner's time
// field as a cancel. It reports whether the panel was dismissed.
func (p *Panel) HandlePointer(pt geometry.Point) bool {
	if !p.open {
		return false
	}
	if p.place.Contains(pt) || p.owner.TimeField().Contains(pt) {
		return false
	}
	p.Cancel()
	return true
}

// Release detaches owner without applying anything. Used when a picker goes
// away while it still owns the panel.
func (p *Panel) Release(owner Owner) {
	if p.owner != owner {
		return
	}
	p.owner = nil
	p.sel = Selection{}
	p.close()
}

func (p *Panel) close() {
	p.open = false
	p.pending = nil
}

// IsOpen reports whether the panel is shown.
func (p *Panel) IsOpen() bool { return p.open }

// Owner returns the current owner, if any.
func (p *Panel) Owner() Owner { return p.owner }

// OwnedBy reports whether o currently owns an open panel.
func (p *Panel) OwnedBy(o Owner) bool { return p.open && p.owner == o }

// Selection returns the current column selection.
func (p *Panel) Selection() Selection { return p.sel }

// Pending returns the snapshot taken on Open.
func (p *Panel) Pending() (Selection, bool) {
	if p.pending == nil {
		return Selection{}, false
	}
	return *p.pending, true
}

// Placement returns the box computed by the last Open.
func (p *Panel) Placement() geometry.Placement { return p.place }

// VisibleRows returns how many options a column shows at once.
func (p *Panel) VisibleRows() int { return p.opts.VisibleRows }

// Offset returns the scroll offset that centres col's selected option.
func (p *Panel) Offset(col Column) int {
	idx, ok := p.sel.Index(col)
	if !ok {
		return 0
	}
	return geometry.ScrollOffset(idx, col.Len(), p.opts.VisibleRows)
}
