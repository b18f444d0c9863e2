package datepicker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/rangepick/pkg/geometry"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/components/field"
	"tableflip.dev/rangepick/pkg/tui/events"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func setup(t *testing.T, cfg picker.Config) (*Model, *field.Model) {
	t.Helper()
	g := picker.NewGroup(picker.GroupOptions{
		Clock:    fixedClock(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)),
		Spacing:  geometry.Spacing{Margin: 1, Gap: 1},
		Viewport: geometry.Size{W: 80, H: 40},
	})
	p, err := g.New("pickup", cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := field.New(field.Options{ID: "pickup", Label: "Pickup"})
	f.SetBounds(geometry.Rect{X: 2, Y: 2, W: 30, H: 3})
	p.Attach(f)
	return New("", p), f
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func press(m *Model, k string) tea.Msg {
	_, cmd := m.Update(key(k))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestShowPlacesBelowField(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	msg := m.Show()()
	show, ok := msg.(events.PickerShowMsg)
	if !ok || show.Component != "pickup" || show.Above {
		t.Fatalf("unexpected show message %#v", msg)
	}
	r := m.Bounds()
	if r.X != 2 || r.Y != 6 || r.W != Size().W || r.H != Size().H {
		t.Fatalf("unexpected placement %+v", r)
	}
	if m.Cursor() != 10 {
		t.Fatalf("expected cursor on today, got %d", m.Cursor())
	}
}

func TestConfirmOutsideBoundsReportsRange(t *testing.T) {
	m, _ := setup(t, picker.Config{MaxDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)})
	m.Show()
	m.Picker().SetMinDate(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))
	m.Picker().SetTimeText("3:30 PM")

	rej, ok := press(m, "o").(events.PickerRejectMsg)
	if !ok {
		t.Fatalf("expected a reject message")
	}
	if rej.Reason != events.RejectOutOfRange {
		t.Fatalf("reason = %q, want %q", rej.Reason, events.RejectOutOfRange)
	}
	if !m.Picker().Visible() {
		t.Fatalf("expected popup still open")
	}
}

func TestKeyboardSelectAndConfirm(t *testing.T) {
	m, f := setup(t, picker.Config{})
	m.Show()

	press(m, "left")
	if msg := press(m, "enter"); msg != nil {
		t.Fatalf("selecting a day before the minimum must be ignored, got %#v", msg)
	}
	press(m, "right")
	press(m, "right")
	msg := press(m, "enter")
	sel, ok := msg.(events.DaySelectMsg)
	if !ok || sel.Date.Day() != 11 {
		t.Fatalf("unexpected select message %#v", msg)
	}

	if rej, ok := press(m, "o").(events.PickerRejectMsg); !ok || rej.Reason != events.RejectInvalidTime {
		t.Fatalf("confirm without a time must be rejected as a time error, got %#v", rej)
	}
	if !f.Errored() || !m.Picker().Visible() {
		t.Fatalf("expected error state and popup still open")
	}

	m.Picker().SetTimeText("3:30 PM")
	msg = press(m, "o")
	conf, ok := msg.(events.PickerConfirmMsg)
	if !ok {
		t.Fatalf("expected confirm, got %#v", msg)
	}
	if want := time.Date(2025, time.June, 11, 15, 30, 0, 0, time.UTC); !conf.Date.Equal(want) {
		t.Fatalf("got %s, want %s", conf.Date, want)
	}
	if f.Value() != "11/06/2025 03:30 PM" || f.Errored() || m.Visible() {
		t.Fatalf("unexpected field state %q errored=%v visible=%v", f.Value(), f.Errored(), m.Visible())
	}
}

func TestCursorCrossesMonths(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	m.Show()
	for i := 0; i < 3; i++ {
		press(m, "down")
	}
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor on the 1st of July, got %d", m.Cursor())
	}
	if got := m.Picker().MonthLabel(); got != "July 2025" {
		t.Fatalf("expected July 2025, got %s", got)
	}
	if _, ok := press(m, "p").(events.MonthChangeMsg); !ok {
		t.Fatalf("expected month change")
	}
	if press(m, "p") != nil {
		t.Fatalf("navigation before the minimum month must be ignored")
	}
}

func TestMonthSelector(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	m.Show()
	press(m, "m")
	if m.Picker().State() != picker.StateMonthSelector {
		t.Fatalf("expected month selector")
	}
	if m.MonthCursor() != time.June {
		t.Fatalf("expected cursor on June, got %s", m.MonthCursor())
	}
	press(m, "down")
	msg := press(m, "enter")
	change, ok := msg.(events.MonthChangeMsg)
	if !ok || change.Month.Month() != time.September {
		t.Fatalf("unexpected message %#v", msg)
	}
	if m.Picker().State() != picker.StateCalendar {
		t.Fatalf("expected calendar after choosing a month")
	}
}

func TestEscapeHides(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	m.Show()
	msg := press(m, "esc")
	if hide, ok := msg.(events.PickerHideMsg); !ok || hide.Reason != "cancel" {
		t.Fatalf("unexpected message %#v", msg)
	}
	if m.Visible() {
		t.Fatalf("expected hidden")
	}
}

func TestClickSelectsDay(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	m.Show()
	r := m.Bounds()
	// June 2025 starts on a Sunday, so the 12th is row 1 column 4.
	pt := geometry.Point{X: r.X + frameX + 4*3, Y: r.Y + frameY + gridRow + 1}
	cmd, ok := m.Click(pt)
	if !ok || cmd == nil {
		t.Fatalf("expected a hit")
	}
	if sel, ok := cmd().(events.DaySelectMsg); !ok || sel.Date.Day() != 12 {
		t.Fatalf("unexpected click result")
	}
	if _, ok := m.Click(geometry.Point{X: 0, Y: 0}); ok {
		t.Fatalf("click outside must miss")
	}
}

func TestClickTimeLineOpensPanel(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	m.Show()
	r := m.Bounds()
	if _, ok := m.Click(geometry.Point{X: r.X + frameX + 6, Y: r.Y + frameY + timeRow}); !ok {
		t.Fatalf("expected a hit")
	}
	panel := m.Picker().Group().Panel()
	if !panel.IsOpen() || !panel.OwnedBy(m.Picker()) {
		t.Fatalf("expected time panel open for this picker")
	}
}

func TestViewSize(t *testing.T) {
	m, _ := setup(t, picker.Config{})
	if m.View() != "" {
		t.Fatalf("hidden popup renders nothing")
	}
	m.Show()
	out := stripANSI(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != Size().H {
		t.Fatalf("expected %d lines, got %d:\n%s", Size().H, len(lines), out)
	}
	for _, want := range []string{"June 2025", "Su Mo Tu We Th Fr Sa", "Time", "[ok]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}

	press(m, "m")
	out = stripANSI(m.View())
	if !strings.Contains(out, "2025") || !strings.Contains(out, "Dec") {
		t.Fatalf("expected month selector:\n%s", out)
	}
	if lines := strings.Split(out, "\n"); len(lines) != Size().H {
		t.Fatalf("selector must keep the popup size, got %d lines", len(lines))
	}
}
