package timepanel

import (
	"testing"

	"tableflip.dev/rangepick/pkg/clock"
	"tableflip.dev/rangepick/pkg/geometry"
)

type fakeOwner struct {
	current *clock.Time
	applied []clock.Time
	field   geometry.Rect
}

func (o *fakeOwner) CurrentTime() (clock.Time, bool) {
	if o.current == nil {
		return clock.Time{}, false
	}
	return *o.current, true
}

func (o *fakeOwner) ApplyTime(t clock.Time) {
	o.applied = append(o.applied, t)
	o.current = &t
}

func (o *fakeOwner) TimeField() geometry.Rect { return o.field }

func (o *fakeOwner) last() clock.Time { return o.applied[len(o.applied)-1] }

func newPanel() *Panel {
	p := New(Options{Size: geometry.Size{W: 20, H: 8}, Spacing: geometry.Spacing{Margin: 1, Gap: 1}, VisibleRows: 5})
	p.SetViewport(geometry.Size{W: 80, H: 24})
	return p
}

func TestSelectAppliesLive(t *testing.T) {
	p := newPanel()
	owner := &fakeOwner{field: geometry.Rect{X: 4, Y: 2, W: 12, H: 1}}
	p.Open(owner)

	if !p.Select(Hours, 11) || !p.Select(Minutes, 45) || !p.Select(Periods, 1) {
		t.Fatalf("expected selections to apply")
	}
	if got := owner.last(); got != (clock.Time{Hour: 11, Minute: 45, Period: clock.PM}) {
		t.Fatalf("applied %v", got)
	}
	if got := p.Selection().Text(); got != "11:45 PM" {
		t.Fatalf("text = %q", got)
	}
	if p.Select(Hours, 0) || p.Select(Hours, 13) || p.Select(Minutes, 60) {
		t.Fatalf("expected out-of-range options to be rejected")
	}
	if pl := p.Placement(); pl.Above || pl.Y != 4 || pl.X != 4 {
		t.Fatalf("unexpected placement %+v", pl)
	}
}

func TestFirstSelectionDefaultsOtherColumns(t *testing.T) {
	p := newPanel()
	owner := &fakeOwner{}
	p.Open(owner)
	p.Select(Minutes, 30)
	if got := owner.last(); got != (clock.Time{Hour: 12, Minute: 30, Period: clock.AM}) {
		t.Fatalf("applied %v", got)
	}
}

func TestCancelRestoresSnapshot(t *testing.T) {
	p := newPanel()
	start := clock.Time{Hour: 9, Minute: 15, Period: clock.AM}
	owner := &fakeOwner{current: &start}
	p.Open(owner)
	p.Select(Hours, 4)
	p.Select(Periods, 1)

	p.Cancel()
	if p.IsOpen() {
		t.Fatalf("expected panel closed")
	}
	if got := owner.last(); got != start {
		t.Fatalf("restored %v, want %v", got, start)
	}
	if _, ok := p.Pending(); ok {
		t.Fatalf("expected snapshot cleared")
	}
}

func TestConfirmKeepsSelection(t *testing.T) {
	p := newPanel()
	owner := &fakeOwner{}
	p.Open(owner)
	p.Select(Hours, 7)
	p.Confirm()
	if p.IsOpen() {
		t.Fatalf("expected panel closed")
	}
	p.Open(owner)
	if sel := p.Selection(); !sel.HourSet || sel.Hour != 7 {
		t.Fatalf("expected selection kept for same owner, got %+v", sel)
	}
}

func TestOpenForNewOwnerDiscardsPrevious(t *testing.T) {
	p := newPanel()
	a := &fakeOwner{}
	p.Open(a)
	p.Select(Hours, 3)

	b := &fakeOwner{}
	p.Open(b)
	if p.Owner() != b {
		t.Fatalf("expected b to own the panel")
	}
	if sel := p.Selection(); sel.HourSet {
		t.Fatalf("expected clean selection, got %+v", sel)
	}
	p.Select(Minutes, 5)
	if len(a.applied) != 1 {
		t.Fatalf("previous owner should not receive updates, got %d", len(a.applied))
	}
}

func TestOutsidePointerCancels(t *testing.T) {
	p := newPanel()
	start := clock.Time{Hour: 2, Minute: 0, Period: clock.PM}
	owner := &fakeOwner{current: &start, field: geometry.Rect{X: 4, Y: 2, W: 12, H: 1}}
	p.Open(owner)
	p.Select(Hours, 5)

	if p.HandlePointer(geometry.Point{X: 5, Y: 5}) {
		t.Fatalf("pointer inside panel should not dismiss")
	}
	if p.HandlePointer(geometry.Point{X: 5, Y: 2}) {
		t.Fatalf("pointer on the time field should not dismiss")
	}
	if !p.HandlePointer(geometry.Point{X: 70, Y: 20}) {
		t.Fatalf("expected outside pointer to dismiss")
	}
	if got := owner.last(); got != start {
		t.Fatalf("restored %v, want %v", got, start)
	}
}

func TestOffsetCentresSelection(t *testing.T) {
	p := newPanel()
	owner := &fakeOwner{}
	p.Open(owner)
	p.Select(Minutes, 30)
	if got := p.Offset(Minutes); got != 28 {
		t.Fatalf("offset = %d, want 28", got)
	}
	if got := p.Offset(Hours); got != 0 {
		t.Fatalf("unset column offset = %d", got)
	}
}
