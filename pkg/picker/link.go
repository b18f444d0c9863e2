package picker

import (
	"fmt"
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
)

// RangeLink ties a start picker (pickup) to an end picker (return). The end
// picker reads the start picker's selected date live for highlighting, but
// its bounds only move when the host pushes a change through NotifyLinked.
// Nothing is observed automatically: if the host skips a notification after
// a confirmed start, the end picker keeps its old minimum until the next one,
// which Stale reports.
type RangeLink struct {
	group *Group
	start ID
	end   ID

	endConfirmed time.Time
}

// Link puts start and end into range mode with end reading from start.
func Link(g *Group, start, end ID) (*RangeLink, error) {
	s, ok := g.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownID, start)
	}
	e, ok := g.Lookup(end)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownID, end)
	}
	on := true
	s.UpdateConfig(Patch{IsRangePicker: &on})
	e.UpdateConfig(Patch{IsRangePicker: &on, LinkedPicker: &start})
	return &RangeLink{group: g, start: start, end: end}, nil
}

// Start resolves the start picker.
func (l *RangeLink) Start() (*Picker, bool) { return l.group.Lookup(l.start) }

// End resolves the end picker.
func (l *RangeLink) End() (*Picker, bool) { return l.group.Lookup(l.end) }

// NotifyLinked pushes a confirmed start date to both sides: the end picker's
// minimum and range start move to date, and the start picker's range runs
// from date to the last confirmed end. It reports whether the last confirmed
// end now falls before date, time of day included; clearing that value is
// the host's job.
func (l *RangeLink) NotifyLinked(date time.Time) (endInvalid bool) {
	if !l.endConfirmed.IsZero() && l.endConfirmed.Before(date) {
		l.endConfirmed = time.Time{}
		endInvalid = true
	}
	if e, ok := l.End(); ok {
		e.UpdateConfig(Patch{MinDate: &date, RangeStart: &date})
	}
	if s, ok := l.Start(); ok {
		end := l.endConfirmed
		s.UpdateConfig(Patch{RangeStart: &date, RangeEnd: &end})
	}
	return endInvalid
}

// NotifyEnd pushes a confirmed end date so the start picker can highlight
// the full range.
func (l *RangeLink) NotifyEnd(date time.Time) {
	l.endConfirmed = date
	if s, ok := l.Start(); ok {
		s.UpdateConfig(Patch{RangeEnd: &date})
	}
}

// ClearEnd forgets the confirmed end date, e.g. after a switch to a
// one-way trip.
func (l *RangeLink) ClearEnd() {
	l.endConfirmed = time.Time{}
	zero := time.Time{}
	if s, ok := l.Start(); ok {
		s.UpdateConfig(Patch{RangeEnd: &zero})
	}
}

// Stale reports whether the end picker's minimum no longer matches the
// start picker's last confirmed day, i.e. the host has not yet propagated
// the latest confirmed start. Browsing the start picker without confirming
// never makes the link stale.
func (l *RangeLink) Stale() bool {
	s, ok := l.Start()
	if !ok {
		return false
	}
	e, ok := l.End()
	if !ok {
		return false
	}
	c := s.Confirmed()
	if c.IsZero() {
		return false
	}
	return !calendar.SameDay(e.cfg.MinDate, c)
}
