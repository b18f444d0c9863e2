// Package picker implements the date/time range picker state machine.
//
// A Picker is bound to one text field. It tracks a tentative selected date,
// renders a classified month grid, navigates months and years inside its
// bounds, and commits the result through Confirm. Pickers live in a Group,
// which owns the single time panel they share and resolves the ID-based
// links used in range mode.
package picker

import (
	"strings"
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/clock"
	"tableflip.dev/rangepick/pkg/geometry"
)

// Layouts written to the bound field on confirm.
const (
	DateTimeLayout = "02/01/2006 03:04 PM"
	DateLayout     = "02/01/2006"
)

var attachLayouts = []string{
	DateTimeLayout,
	DateLayout,
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// State is the visibility state of the popup.
type State int

const (
	// StateHidden means nothing is shown.
	StateHidden State = iota
	// StateCalendar shows the day grid.
	StateCalendar
	// StateMonthSelector shows the month/year chooser.
	StateMonthSelector
)

func (s State) String() string {
	switch s {
	case StateCalendar:
		return "calendar"
	case StateMonthSelector:
		return "month-selector"
	}
	return "hidden"
}

// Input is the text field a picker is bound to.
type Input interface {
	Value() string
	SetValue(string)
	// Bounds is the field's box in viewport coordinates.
	Bounds() geometry.Rect
	// NotifyChange fires the field's change notification.
	NotifyChange()
}

// ErrorMarker is implemented by inputs that can show a validation error.
type ErrorMarker interface {
	SetError(bool)
}

// Picker is one calendar+time widget bound to a single input.
type Picker struct {
	id    ID
	group *Group
	cfg   Config

	selected time.Time
	state    State
	input    Input

	timeText string
	timeErr  bool
	rejected error

	confirmed time.Time

	selectorYear int

	place     geometry.Placement
	panelSize geometry.Size
	timeField geometry.Rect
}

// ID returns the picker's name in its group.
func (p *Picker) ID() ID { return p.id }

// Group returns the group the picker belongs to.
func (p *Picker) Group() *Group { return p.group }

// Config returns the current configuration snapshot.
func (p *Picker) Config() Config { return p.cfg }

// UpdateConfig replaces the configuration snapshot with one that has patch
// applied. The selected date is pulled back inside the new bounds; the bound
// input is left alone.
func (p *Picker) UpdateConfig(patch Patch) {
	p.cfg = p.cfg.apply(patch)
	if p.cfg.MinDate.IsZero() {
		p.cfg.MinDate = p.group.Now()
	}
	p.selected = p.bounds().Clamp(p.selected)
}

// SetMinDate moves the lower bound.
func (p *Picker) SetMinDate(t time.Time) {
	p.UpdateConfig(Patch{MinDate: &t})
}

func (p *Picker) bounds() calendar.Bounds { return p.cfg.bounds() }

// State returns the popup state.
func (p *Picker) State() State { return p.state }

// Visible reports whether the popup is shown.
func (p *Picker) Visible() bool { return p.state != StateHidden }

// Attach binds the picker to input. A parseable value already in the field
// becomes the selected date; anything else is ignored.
func (p *Picker) Attach(input Input) {
	p.input = input
	if input == nil {
		return
	}
	if t, ok := ParseValue(input.Value(), p.group.Now().Location()); ok {
		p.selected = p.bounds().Clamp(t)
	}
}

// ParseValue reads a date in any of the layouts a bound field may carry:
// the picker's own output, ISO dates and RFC 3339.
func ParseValue(v string, loc *time.Location) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range attachLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Show opens the calendar and positions it next to the bound input.
func (p *Picker) Show() {
	p.state = StateCalendar
	p.timeErr = false
	p.timeText = ""
	if p.input != nil && p.input.Value() != "" {
		p.timeText = clock.Of(p.selected).String()
	}
	var anchor geometry.Rect
	if p.input != nil {
		anchor = p.input.Bounds()
	}
	p.place = geometry.Place(anchor, p.panelSize, p.group.Viewport(), p.group.opts.Spacing, geometry.BelowWhenRoomier)
}

// Hide closes the popup. A time panel this picker owns is cancelled.
func (p *Picker) Hide() {
	if p.group.panel.OwnedBy(p) {
		p.group.panel.Cancel()
	}
	p.state = StateHidden
}

// HandlePointer hides the picker when pt is outside the popup, its bound
// input and the time panel it owns. It reports whether the picker hid.
func (p *Picker) HandlePointer(pt geometry.Point) bool {
	if !p.Visible() {
		return false
	}
	if p.place.Contains(pt) {
		return false
	}
	if p.input != nil && p.input.Bounds().Contains(pt) {
		return false
	}
	if p.group.panel.OwnedBy(p) && p.group.panel.Placement().Contains(pt) {
		return false
	}
	p.Hide()
	return true
}

// Placement returns the popup box computed by the last Show.
func (p *Picker) Placement() geometry.Placement { return p.place }

// SetPanelSize records the measured popup size for the next Show.
func (p *Picker) SetPanelSize(size geometry.Size) {
	if size.W > 0 && size.H > 0 {
		p.panelSize = size
	}
}

// SetTimeField records where the time field sits relative to the popup's
// top-left corner.
func (p *Picker) SetTimeField(r geometry.Rect) { p.timeField = r }

// Range returns the effective range used for highlighting. A linked picker
// supplies the start and this picker's selection the end; otherwise the
// explicit endpoints are used.
func (p *Picker) Range() calendar.Range {
	if !p.cfg.IsRangePicker {
		return calendar.Range{}
	}
	if p.cfg.LinkedPicker != "" && p.cfg.LinkedPicker != p.id {
		if other, ok := p.group.Lookup(p.cfg.LinkedPicker); ok {
			return calendar.Range{Start: other.selected, End: p.selected}
		}
	}
	return calendar.Range{Start: p.cfg.RangeStart, End: p.cfg.RangeEnd}
}

// Grid classifies the displayed month.
func (p *Picker) Grid() calendar.Grid {
	return calendar.Build(calendar.GridOptions{
		Selected: p.selected,
		Bounds:   p.bounds(),
		Range:    p.Range(),
		Now:      p.group.Now(),
	})
}

// Selected returns the tentative selected date. After a successful Confirm
// it is the committed value.
func (p *Picker) Selected() time.Time { return p.selected }

// MonthLabel is the "January 2006" heading of the displayed month.
func (p *Picker) MonthLabel() string {
	return p.selected.Format("January 2006")
}

// SelectDay handles a click on a day of the displayed month. Disabled days
// and clicks while the calendar is not showing are rejected.
func (p *Picker) SelectDay(day int) bool {
	if p.state != StateCalendar {
		return false
	}
	cell, ok := p.Grid().Cell(day)
	if !ok || cell.Disabled {
		return false
	}
	p.selected = calendar.WithDay(p.selected, day)
	if p.cfg.IsRangePicker && p.cfg.OnChange != nil {
		p.cfg.OnChange(p.selected)
	}
	return true
}

// CanPreviousMonth reports whether PreviousMonth would move.
func (p *Picker) CanPreviousMonth() bool {
	next := calendar.AddMonths(p.selected, -1)
	return calendar.CompareMonth(next, p.cfg.MinDate) >= 0
}

// CanNextMonth reports whether NextMonth would move.
func (p *Picker) CanNextMonth() bool {
	next := calendar.AddMonths(p.selected, 1)
	return !p.bounds().HasMax() || calendar.CompareMonth(next, p.cfg.MaxDate) <= 0
}

// PreviousMonth steps back one month unless that month starts before the
// minimum date's month.
func (p *Picker) PreviousMonth() bool {
	if !p.CanPreviousMonth() {
		return false
	}
	p.selected = p.bounds().Clamp(calendar.AddMonths(p.selected, -1))
	return true
}

// NextMonth steps forward one month unless that month is past the maximum
// date's month.
func (p *Picker) NextMonth() bool {
	if !p.CanNextMonth() {
		return false
	}
	p.selected = p.bounds().Clamp(calendar.AddMonths(p.selected, 1))
	return true
}

// TimeText is the content of the picker's time field.
func (p *Picker) TimeText() string { return p.timeText }

// TimeError reports whether the last confirm failed time validation.
func (p *Picker) TimeError() bool { return p.timeErr }

// SetTimeText replaces the time field content, clearing the error state.
func (p *Picker) SetTimeText(s string) {
	p.timeText = s
	p.timeErr = false
}

// OpenTime opens the group's time panel for this picker. Date-only pickers
// and hidden pickers never open it.
func (p *Picker) OpenTime() bool {
	if p.cfg.DateOnly || !p.Visible() {
		return false
	}
	p.group.panel.Open(p)
	return true
}

// CurrentTime implements timepanel.Owner.
func (p *Picker) CurrentTime() (clock.Time, bool) {
	t, err := clock.Parse(p.timeText)
	if err != nil {
		return clock.Time{}, false
	}
	return t, true
}

// ApplyTime implements timepanel.Owner. The 12-hour value is converted to
// the selected date's hour field here and nowhere else.
func (p *Picker) ApplyTime(t clock.Time) {
	p.selected = t.On(p.selected)
	p.timeText = t.String()
	p.timeErr = false
}

// TimeField implements timepanel.Owner.
func (p *Picker) TimeField() geometry.Rect {
	if p.timeField.Empty() {
		return geometry.Rect{X: p.place.X, Y: p.place.Bottom() - 2, W: p.place.W, H: 1}
	}
	r := p.timeField
	r.X += p.place.X
	r.Y += p.place.Y
	return r
}

// Confirm validates and commits the selection: the bound input receives the
// formatted value and a change notification, the popup hides and OnConfirm
// receives the date. An invalid time or out of range date marks the error
// state and leaves everything else untouched; Rejection says which.
func (p *Picker) Confirm() bool {
	if !p.Visible() {
		return false
	}
	if p.group.panel.OwnedBy(p) {
		p.group.panel.Confirm()
	}

	var result time.Time
	var text string
	if p.cfg.DateOnly {
		result = calendar.Truncate(p.selected)
		text = result.Format(DateLayout)
	} else {
		t, err := clock.Parse(p.timeText)
		if err != nil {
			p.reject(ErrInvalidTime)
			return false
		}
		result = t.On(p.selected)
		text = result.Format(DateTimeLayout)
	}
	if !p.bounds().Contains(result) {
		p.reject(ErrOutOfRange)
		return false
	}

	p.selected = result
	p.confirmed = result
	p.rejected = nil
	p.markError(false)
	if p.input != nil {
		p.input.SetValue(text)
		p.input.NotifyChange()
	}
	p.Hide()
	if p.cfg.OnConfirm != nil {
		p.cfg.OnConfirm(result)
	}
	return true
}

func (p *Picker) reject(err error) {
	p.rejected = err
	p.markError(true)
}

// Rejection is why the last Confirm failed: ErrInvalidTime, ErrOutOfRange,
// or nil after a successful confirm.
func (p *Picker) Rejection() error { return p.rejected }

// Confirmed is the last value passed to OnConfirm, zero until the first
// successful confirm.
func (p *Picker) Confirmed() time.Time { return p.confirmed }

func (p *Picker) markError(on bool) {
	p.timeErr = on
	if m, ok := p.input.(ErrorMarker); ok {
		m.SetError(on)
	}
}
