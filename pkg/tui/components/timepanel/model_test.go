package timepanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/rangepick/pkg/clock"
	"tableflip.dev/rangepick/pkg/geometry"
	tp "tableflip.dev/rangepick/pkg/timepanel"
	"tableflip.dev/rangepick/pkg/tui/events"
)

type fakeOwner struct {
	current clock.Time
	has     bool
	applied []clock.Time
}

func (o *fakeOwner) CurrentTime() (clock.Time, bool) { return o.current, o.has }
func (o *fakeOwner) ApplyTime(t clock.Time)          { o.applied = append(o.applied, t) }
func (o *fakeOwner) TimeField() geometry.Rect {
	return geometry.Rect{X: 4, Y: 4, W: 20, H: 1}
}

func (o *fakeOwner) last() string {
	if len(o.applied) == 0 {
		return ""
	}
	return o.applied[len(o.applied)-1].String()
}

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

func openPanel(owner *fakeOwner) (*tp.Panel, *Model) {
	panel := tp.New(tp.Options{Size: NaturalSize(5), Spacing: geometry.Spacing{Margin: 1, Gap: 1}})
	panel.SetViewport(geometry.Size{W: 80, H: 40})
	panel.Open(owner)
	m := New("time", panel)
	return panel, m
}

func press(m *Model, key tea.KeyPressMsg) tea.Msg {
	_, cmd := m.Update(key)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestKeysSelectLive(t *testing.T) {
	owner := &fakeOwner{}
	panel, m := openPanel(owner)

	if msg := press(m, tea.KeyPressMsg{Code: tea.KeyDown}); msg != nil {
		t.Fatalf("moving past the last hour must be ignored, got %#v", msg)
	}
	msg := press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	change, ok := msg.(events.TimeChangeMsg)
	if !ok || change.Text != "11:00 AM" || change.Final {
		t.Fatalf("unexpected message %#v", msg)
	}
	if owner.last() != "11:00 AM" {
		t.Fatalf("expected live apply, got %q", owner.last())
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyRight})
	if m.Focus() != tp.Minutes {
		t.Fatalf("expected minutes column focused")
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	press(m, tea.KeyPressMsg{Text: "l", Code: 'l'})
	press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	if owner.last() != "11:01 PM" {
		t.Fatalf("expected 11:01 PM, got %q", owner.last())
	}

	msg = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if change, ok := msg.(events.TimeChangeMsg); !ok || !change.Final || change.Text != "11:01 PM" {
		t.Fatalf("unexpected confirm message %#v", msg)
	}
	if panel.IsOpen() {
		t.Fatalf("expected panel closed")
	}
	if press(m, tea.KeyPressMsg{Code: tea.KeyUp}) != nil {
		t.Fatalf("closed panel must ignore keys")
	}
}

func TestEscapeRestoresSnapshot(t *testing.T) {
	owner := &fakeOwner{current: clock.Time{Hour: 9, Minute: 30, Period: clock.AM}, has: true}
	panel, m := openPanel(owner)
	press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if owner.last() != "8:30 AM" {
		t.Fatalf("expected 8:30 AM, got %q", owner.last())
	}
	press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if owner.last() != "9:30 AM" || panel.IsOpen() {
		t.Fatalf("expected snapshot restored and panel closed, got %q", owner.last())
	}
}

func TestClickSelectsOption(t *testing.T) {
	owner := &fakeOwner{}
	panel, m := openPanel(owner)

	r := m.Bounds()
	if r.X != 4 || r.Y != 6 {
		t.Fatalf("unexpected placement %+v", r)
	}
	cmd, ok := m.Click(geometry.Point{X: r.X + 2 + 5, Y: r.Y + 2 + 2})
	if !ok || cmd == nil {
		t.Fatalf("expected click on an option")
	}
	if owner.last() != "12:02 AM" {
		t.Fatalf("expected minute 02 selected, got %q", owner.last())
	}
	if _, ok := m.Click(geometry.Point{X: r.X + 2 + 4, Y: r.Y + 3}); ok {
		t.Fatalf("click on the gap must miss")
	}
	if !panel.IsOpen() {
		t.Fatalf("clicks inside keep the panel open")
	}
}

func TestViewShowsWindow(t *testing.T) {
	owner := &fakeOwner{current: clock.Time{Hour: 6, Minute: 45, Period: clock.PM}, has: true}
	_, m := openPanel(owner)
	out := stripANSI(m.View())
	lines := strings.Split(out, "\n")
	if want := NaturalSize(5).H; len(lines) != want {
		t.Fatalf("expected %d lines, got %d:\n%s", want, len(lines), out)
	}
	for _, want := range []string{" 06 ", " 45 ", " PM ", " 04 ", " 08 ", " 43 ", " 47 "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
	if strings.Contains(out, " 03 ") && strings.Contains(out, " 09 ") {
		t.Fatalf("expected only five hours visible:\n%s", out)
	}
}
