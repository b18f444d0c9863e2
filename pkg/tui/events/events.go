package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

const stamp = "02/01/2006 15:04"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(stamp)
}

// PickerShowMsg is emitted when a picker popup opens.
type PickerShowMsg struct {
	Component ComponentID
	Month     time.Time
	Above     bool
}

// Describe renders the show event for logs.
func (m PickerShowMsg) Describe() string {
	return fmt.Sprintf(`component:%q month:%q above:%t`, m.Component, m.Month.Format("January 2006"), m.Above)
}

// PickerShowCmd wraps PickerShowMsg in a tea.Cmd.
func PickerShowCmd(component ComponentID, month time.Time, above bool) tea.Cmd {
	return func() tea.Msg {
		return PickerShowMsg{Component: component, Month: month, Above: above}
	}
}

// PickerHideMsg is emitted when a picker popup closes without confirming.
type PickerHideMsg struct {
	Component ComponentID
	Reason    string
}

// Describe renders the hide event for logs.
func (m PickerHideMsg) Describe() string {
	return fmt.Sprintf(`component:%q reason:%q`, m.Component, m.Reason)
}

// PickerHideCmd wraps PickerHideMsg in a tea.Cmd.
func PickerHideCmd(component ComponentID, reason string) tea.Cmd {
	return func() tea.Msg {
		return PickerHideMsg{Component: component, Reason: reason}
	}
}

// MonthChangeMsg is emitted when navigation moves the displayed month.
type MonthChangeMsg struct {
	Component ComponentID
	Month     time.Time
}

// Describe implements the logging helper.
func (m MonthChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q month:%q`, m.Component, m.Month.Format("January 2006"))
}

// MonthChangeCmd wraps MonthChangeMsg.
func MonthChangeCmd(component ComponentID, month time.Time) tea.Cmd {
	return func() tea.Msg {
		return MonthChangeMsg{Component: component, Month: month}
	}
}

// DaySelectMsg is emitted when a day is clicked in the grid.
type DaySelectMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe implements the logging helper.
func (m DaySelectMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date.Format("02/01/2006"))
}

// DaySelectCmd wraps DaySelectMsg.
func DaySelectCmd(component ComponentID, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return DaySelectMsg{Component: component, Date: date}
	}
}

// TimeChangeMsg is emitted whenever the time panel writes a time of day.
type TimeChangeMsg struct {
	Component ComponentID
	Text      string
	Final     bool
}

// Describe implements the logging helper.
func (m TimeChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q time:%q final:%t`, m.Component, m.Text, m.Final)
}

// TimeChangeCmd wraps TimeChangeMsg.
func TimeChangeCmd(component ComponentID, text string, final bool) tea.Cmd {
	return func() tea.Msg {
		return TimeChangeMsg{Component: component, Text: text, Final: final}
	}
}

// PickerConfirmMsg carries a committed date to the host.
type PickerConfirmMsg struct {
	Component ComponentID
	Date      time.Time
}

// Describe implements the logging helper.
func (m PickerConfirmMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, formatDate(m.Date))
}

// PickerConfirmCmd wraps PickerConfirmMsg.
func PickerConfirmCmd(component ComponentID, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return PickerConfirmMsg{Component: component, Date: date}
	}
}

// RejectReason says which check a failed confirm tripped.
type RejectReason string

const (
	RejectInvalidTime RejectReason = "time"
	RejectOutOfRange  RejectReason = "range"
)

// PickerRejectMsg reports a confirm that failed validation.
type PickerRejectMsg struct {
	Component ComponentID
	Reason    RejectReason
	Input     string
}

// Describe implements the logging helper.
func (m PickerRejectMsg) Describe() string {
	return fmt.Sprintf(`component:%q reason:%s time:%q`, m.Component, m.Reason, m.Input)
}

// PickerRejectCmd wraps PickerRejectMsg.
func PickerRejectCmd(component ComponentID, reason RejectReason, input string) tea.Cmd {
	return func() tea.Msg {
		return PickerRejectMsg{Component: component, Reason: reason, Input: input}
	}
}

// FieldChangeMsg mirrors a text field's change notification.
type FieldChangeMsg struct {
	Component ComponentID
	Value     string
}

// Describe implements the logging helper.
func (m FieldChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q value:%q`, m.Component, m.Value)
}

// FieldChangeCmd wraps FieldChangeMsg.
func FieldChangeCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return FieldChangeMsg{Component: component, Value: value}
	}
}

// RangeInvalidatedMsg reports that a new start date invalidated the
// confirmed end date, which the host has cleared.
type RangeInvalidatedMsg struct {
	Component ComponentID
	Start     time.Time
}

// Describe implements the logging helper.
func (m RangeInvalidatedMsg) Describe() string {
	return fmt.Sprintf(`component:%q start:%q`, m.Component, formatDate(m.Start))
}

// TripSavedMsg reports a trip written to the store.
type TripSavedMsg struct {
	Component ComponentID
	ID        string
	Kind      string
	Err       error
}

// Describe implements the logging helper.
func (m TripSavedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`component:%q kind:%q err:%q`, m.Component, m.Kind, m.Err)
	}
	return fmt.Sprintf(`component:%q kind:%q id:%q`, m.Component, m.Kind, m.ID)
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return func() tea.Msg {
		return DebugMsg{Component: component, Context: context, Detail: detail}
	}
}

// Source returns the component that emitted msg, if it is one of ours.
func Source(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case PickerShowMsg:
		return v.Component, true
	case PickerHideMsg:
		return v.Component, true
	case MonthChangeMsg:
		return v.Component, true
	case DaySelectMsg:
		return v.Component, true
	case TimeChangeMsg:
		return v.Component, true
	case PickerConfirmMsg:
		return v.Component, true
	case PickerRejectMsg:
		return v.Component, true
	case FieldChangeMsg:
		return v.Component, true
	case RangeInvalidatedMsg:
		return v.Component, true
	case TripSavedMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	case DebugMsg:
		return v.Component, true
	}
	return "", false
}
