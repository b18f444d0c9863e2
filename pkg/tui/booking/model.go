// Package booking is the terminal booking form: a pickup and a return field,
// each with its own date picker, linked so the return can never precede the
// pickup. Trips are saved to the trip store.
package booking

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/store"
	tp "tableflip.dev/rangepick/pkg/timepanel"
	"tableflip.dev/rangepick/pkg/tui/components/datepicker"
	"tableflip.dev/rangepick/pkg/tui/components/field"
	"tableflip.dev/rangepick/pkg/tui/components/help"
	"tableflip.dev/rangepick/pkg/tui/components/timepanel"
	"tableflip.dev/rangepick/pkg/tui/events"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

const (
	pickupID picker.ID = "pickup"
	returnID picker.ID = "return"

	hostID events.ComponentID = "booking"
	timeID events.ComponentID = "time"

	fieldWidth = 25
	timeRows   = 5
)

// ErrNoStore is reported when saving without a trip store.
var ErrNoStore = errors.New("booking: no trip store configured")

// Options configures the booking form.
type Options struct {
	// Config supplies spacing and the booking window. Nil uses defaults.
	Config store.Config
	// Store receives saved trips. Nil disables saving.
	Store store.Persistence
	// Clock overrides "now".
	Clock picker.Clock
	// Logger receives structured records. Nil discards them.
	Logger *slog.Logger
	// Kind is the initial trip kind. Empty means a return trip.
	Kind store.TripKind
}

// Model is the root Bubble Tea model of the booking form.
type Model struct {
	width  int
	height int

	log   *slog.Logger
	store store.Persistence

	group *picker.Group
	link  *picker.RangeLink

	fields  []*field.Model
	pickers []*datepicker.Model
	timeUI  *timepanel.Model
	focus   int

	// timeOwner is the picker that owned the time panel after the last
	// update, nil while it is closed.
	timeOwner tp.Owner

	kind       store.TripKind
	pickupDate time.Time
	returnDate time.Time
	stale      bool

	help        *help.Model
	helpVisible bool

	status string
	warn   bool

	pending []tea.Cmd
	styles  theme.Theme
}

// New builds the form.
func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = store.StaticConfig{Margin: 1, Gap: 1}
	}
	clk := opts.Clock
	if clk == nil {
		clk = picker.RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	kind := opts.Kind
	if kind == "" {
		kind = store.KindReturn
	}
	if kind != store.KindOneWay && kind != store.KindReturn {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownKind, kind)
	}

	m := &Model{
		log:    logger,
		store:  opts.Store,
		kind:   kind,
		styles: theme.Default(),
		help:   help.New(60, 20),
	}

	m.group = picker.NewGroup(picker.GroupOptions{
		Clock:     clk,
		Spacing:   cfg.Spacing(),
		PanelSize: datepicker.Size(),
		TimePanel: tp.Options{Size: timepanel.NaturalSize(timeRows), VisibleRows: timeRows},
	})
	minDate, maxDate := store.Bounds(cfg, clk.Now())

	pickup, err := m.group.New(pickupID, picker.Config{
		MinDate:   minDate,
		MaxDate:   maxDate,
		OnConfirm: m.pickupConfirmed,
	})
	if err != nil {
		return nil, err
	}
	ret, err := m.group.New(returnID, picker.Config{
		MinDate:   minDate,
		MaxDate:   maxDate,
		OnConfirm: m.returnConfirmed,
	})
	if err != nil {
		return nil, err
	}
	if m.link, err = picker.Link(m.group, pickupID, returnID); err != nil {
		return nil, err
	}

	m.fields = []*field.Model{
		field.New(field.Options{ID: events.ComponentID(pickupID), Label: "Pickup", Placeholder: "choose a date", Width: fieldWidth}),
		field.New(field.Options{ID: events.ComponentID(returnID), Label: "Return", Placeholder: "choose a date", Width: fieldWidth}),
	}
	pickup.Attach(m.fields[0])
	ret.Attach(m.fields[1])
	m.pickers = []*datepicker.Model{
		datepicker.New("", pickup),
		datepicker.New("", ret),
	}
	m.timeUI = timepanel.New(timeID, m.group.Panel())
	m.fields[1].SetDisabled(kind == store.KindOneWay)

	logger.Info("booking form ready", "kind", kind, "min", minDate, "max", maxDate)
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.fields[0].Focus()
}

// Kind is the current trip kind.
func (m *Model) Kind() store.TripKind { return m.kind }

// Pickup is the last confirmed pickup, zero if none.
func (m *Model) Pickup() time.Time { return m.pickupDate }

// Return is the last confirmed return, zero if none.
func (m *Model) Return() time.Time { return m.returnDate }

// Status is the footer message.
func (m *Model) Status() string { return m.status }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		cmds = append(cmds, m.handleClick(geometry.Point{X: mouse.X, Y: mouse.Y}))
	case tea.MouseWheelMsg:
		if m.helpVisible {
			_, cmd := m.help.Update(msg)
			cmds = append(cmds, cmd)
		}
	case events.PickerConfirmMsg:
		if msg.Component == events.ComponentID(pickupID) && m.kind == store.KindReturn && m.returnDate.IsZero() {
			cmds = append(cmds, m.setFocus(1))
		}
	case events.PickerRejectMsg:
		if msg.Reason == events.RejectOutOfRange {
			m.setWarn("That date is outside the bookable window")
		} else {
			m.setWarn("Choose a time as h:mm AM or PM")
		}
	case events.TripSavedMsg:
		if msg.Err != nil {
			m.setWarn("Not saved: " + msg.Err.Error())
		} else {
			m.setStatus(fmt.Sprintf("Saved %s trip %s", msg.Kind, msg.ID))
		}
	}
	cmds = append(cmds, m.afterUpdate()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.helpVisible {
		switch key {
		case "?", "esc", "q":
			m.helpVisible = false
			return nil
		}
		_, cmd := m.help.Update(msg)
		return cmd
	}
	if m.timeUI.Visible() {
		_, cmd := m.timeUI.Update(msg)
		return cmd
	}
	if dp := m.activePicker(); dp != nil {
		_, cmd := dp.Update(msg)
		return cmd
	}

	switch key {
	case "q":
		return tea.Quit
	case "?":
		m.helpVisible = true
	case "tab", "down", "j":
		return m.cycleFocus(1)
	case "shift+tab", "up", "k":
		return m.cycleFocus(-1)
	case "enter", "space":
		return m.open(m.focus)
	case "r":
		return m.toggleKind()
	case "s":
		return m.save()
	}
	return nil
}

func (m *Model) handleClick(pt geometry.Point) tea.Cmd {
	if m.helpVisible {
		m.helpVisible = false
		return nil
	}
	var cmds []tea.Cmd
	visible := make([]bool, len(m.pickers))
	for i, dp := range m.pickers {
		visible[i] = dp.Visible()
	}
	m.group.HandlePointer(pt)
	for i, dp := range m.pickers {
		if visible[i] && !dp.Visible() {
			cmds = append(cmds, events.PickerHideCmd(dp.ID(), "outside"))
		}
	}

	if cmd, ok := m.timeUI.Click(pt); ok {
		return tea.Batch(append(cmds, cmd)...)
	}
	for _, dp := range m.pickers {
		if cmd, ok := dp.Click(pt); ok {
			return tea.Batch(append(cmds, cmd)...)
		}
	}
	for i, f := range m.fields {
		if !f.Disabled() && f.Bounds().Contains(pt) {
			cmds = append(cmds, m.setFocus(i), m.open(i))
			break
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) activePicker() *datepicker.Model {
	for _, dp := range m.pickers {
		if dp.Visible() {
			return dp
		}
	}
	return nil
}

func (m *Model) open(i int) tea.Cmd {
	if m.fields[i].Disabled() || m.pickers[i].Visible() {
		return nil
	}
	var cmds []tea.Cmd
	for j, dp := range m.pickers {
		if j != i {
			cmds = append(cmds, dp.Hide("switch"))
		}
	}
	cmds = append(cmds, m.pickers[i].Show())
	return tea.Batch(cmds...)
}

func (m *Model) cycleFocus(dir int) tea.Cmd {
	next := m.focus
	for range m.fields {
		next = (next + dir + len(m.fields)) % len(m.fields)
		if !m.fields[next].Disabled() {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(i int) tea.Cmd {
	if i == m.focus && m.fields[i].Focused() {
		return nil
	}
	cmds := []tea.Cmd{m.fields[m.focus].Blur()}
	m.focus = i
	cmds = append(cmds, m.fields[i].Focus())
	return tea.Batch(cmds...)
}

func (m *Model) toggleKind() tea.Cmd {
	var cmds []tea.Cmd
	if m.kind == store.KindReturn {
		m.kind = store.KindOneWay
		m.link.ClearEnd()
		m.returnDate = time.Time{}
		m.fields[1].Clear()
		m.fields[1].SetError(false)
		m.fields[1].SetDisabled(true)
		cmds = append(cmds, m.pickers[1].Hide("one-way"))
		if m.focus == 1 {
			cmds = append(cmds, m.setFocus(0))
		}
	} else {
		m.kind = store.KindReturn
		m.fields[1].SetDisabled(false)
	}
	m.log.Info("trip kind changed", "kind", m.kind)
	m.setStatus("Trip: " + kindLabel(m.kind))
	return tea.Batch(cmds...)
}

func (m *Model) save() tea.Cmd {
	trip := &store.Trip{Kind: m.kind, Pickup: m.pickupDate}
	if m.kind == store.KindReturn {
		trip.Return = m.returnDate
	}
	err := trip.Validate()
	if err == nil {
		if m.store == nil {
			err = ErrNoStore
		} else {
			err = m.store.Store(trip)
		}
	}
	if err != nil {
		m.log.Error("trip not saved", "kind", trip.Kind, "err", err)
	} else {
		m.log.Info("trip saved", "id", trip.ID, "kind", trip.Kind, "pickup", trip.Pickup, "return", trip.Return)
	}
	saved := events.TripSavedMsg{Component: hostID, ID: trip.ID, Kind: string(trip.Kind), Err: err}
	return func() tea.Msg { return saved }
}

// pickupConfirmed runs inside the pickup picker's Confirm. The new pickup
// is pushed to the return picker and a return that now precedes it is
// cleared.
func (m *Model) pickupConfirmed(date time.Time) {
	m.pickupDate = date
	m.log.Info("pickup confirmed", "date", date)
	m.setStatus("Pickup " + m.fields[0].Value())
	if !m.link.NotifyLinked(date) {
		return
	}
	m.returnDate = time.Time{}
	m.fields[1].Clear()
	m.log.Warn("return cleared", "pickup", date)
	m.setWarn("Return cleared: it was before the new pickup")
	invalidated := events.RangeInvalidatedMsg{Component: events.ComponentID(returnID), Start: date}
	m.pending = append(m.pending, func() tea.Msg { return invalidated })
}

// returnConfirmed runs inside the return picker's Confirm. The picker only
// bounds the day, so a same-day return earlier than the pickup is caught
// here and cleared.
func (m *Model) returnConfirmed(date time.Time) {
	if !m.pickupDate.IsZero() && date.Before(m.pickupDate) {
		m.returnDate = time.Time{}
		m.fields[1].Clear()
		m.link.ClearEnd()
		m.log.Warn("return before pickup", "pickup", m.pickupDate, "return", date)
		m.setWarn("Return cleared: it was before the pickup")
		return
	}
	m.returnDate = date
	m.link.NotifyEnd(date)
	m.log.Info("return confirmed", "date", date)
	m.setStatus("Return " + m.fields[1].Value())
}

// afterUpdate resets the time panel cursor when the panel opens, watches
// the range link and drains queued commands.
func (m *Model) afterUpdate() []tea.Cmd {
	panel := m.group.Panel()
	var owner tp.Owner
	if panel.IsOpen() {
		owner = panel.Owner()
	}
	if owner != nil && owner != m.timeOwner {
		m.timeUI.Reset()
	}
	m.timeOwner = owner

	if !m.pickers[0].Visible() {
		stale := m.link.Stale()
		if stale && !m.stale {
			start, _ := m.link.Start()
			m.log.Warn("range link stale", "pickup", start.Confirmed(), "propagated", m.pickupDate)
		}
		m.stale = stale
	}

	cmds := m.pending
	m.pending = nil
	for _, f := range m.fields {
		cmds = append(cmds, f.Flush())
	}
	return cmds
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.warn = false
}

func (m *Model) setWarn(s string) {
	m.status = s
	m.warn = true
}

func kindLabel(k store.TripKind) string {
	if k == store.KindOneWay {
		return "one-way"
	}
	return "return"
}
