package picker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
)

func linkedPair(t *testing.T, now time.Time) (*Group, *Picker, *Picker, *RangeLink) {
	t.Helper()
	g := newGroup(now)
	var link *RangeLink
	pickup := mustNew(t, g, "pickup", Config{OnConfirm: func(d time.Time) { link.NotifyLinked(d) }})
	ret := mustNew(t, g, "return", Config{})
	var err error
	link, err = Link(g, "pickup", "return")
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	ret.UpdateConfig(Patch{OnConfirm: link.NotifyEnd})
	pickup.Attach(&fakeInput{})
	ret.Attach(&fakeInput{})
	return g, pickup, ret, link
}

func TestLinkRejectsUnknownIDs(t *testing.T) {
	g := newGroup(day(2025, time.June, 1))
	mustNew(t, g, "a", Config{})
	if _, err := Link(g, "a", "missing"); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
	if _, err := Link(g, "missing", "a"); !errors.Is(err, ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestConfirmedStartBecomesEndMinimum(t *testing.T) {
	_, pickup, ret, link := linkedPair(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	if !pickup.Config().IsRangePicker || !ret.Config().IsRangePicker || ret.Config().LinkedPicker != "pickup" {
		t.Fatalf("expected both pickers in range mode with return linked")
	}

	pickup.Show()
	if !pickup.SelectDay(10) {
		t.Fatalf("expected June 10 selectable")
	}
	pickup.SetTimeText("10:00 AM")
	if !pickup.Confirm() {
		t.Fatalf("expected pickup confirm")
	}

	if min := ret.Config().MinDate; !calendar.SameDay(min, day(2025, time.June, 10)) {
		t.Fatalf("return minimum = %v, want June 10", min)
	}
	ret.Show()
	if ret.SelectDay(9) {
		t.Fatalf("expected June 9 disabled on the return picker")
	}
	if c, _ := ret.Grid().Cell(9); !c.Disabled {
		t.Fatalf("expected June 9 cell disabled")
	}
	if c, _ := ret.Grid().Cell(10); c.Range != calendar.RangeStartEnd {
		t.Fatalf("expected June 10 to be both endpoints, got %s", c.Range)
	}
	if link.Stale() {
		t.Fatalf("expected link in sync after notification")
	}
}

func TestEndHighlightsFollowLinkedSelection(t *testing.T) {
	_, pickup, ret, link := linkedPair(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	link.NotifyLinked(day(2025, time.June, 5))
	ret.Show()
	ret.SelectDay(12)

	pickup.Show()
	pickup.SelectDay(5)
	g := ret.Grid()
	checks := map[int]calendar.RangeClass{
		4:  calendar.RangeNone,
		5:  calendar.RangeStart,
		8:  calendar.RangeInside,
		12: calendar.RangeEnd,
		13: calendar.RangeNone,
	}
	for d, want := range checks {
		if c, _ := g.Cell(d); c.Range != want {
			t.Errorf("day %d: got %s, want %s", d, c.Range, want)
		}
	}
}

func TestNotifyLinkedReportsInvalidEnd(t *testing.T) {
	_, pickup, _, link := linkedPair(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	link.NotifyEnd(day(2025, time.June, 12))
	if got := pickup.Config().RangeEnd; !got.Equal(day(2025, time.June, 12)) {
		t.Fatalf("pickup range end = %v", got)
	}

	if link.NotifyLinked(day(2025, time.June, 8)) {
		t.Fatalf("end after the new start must stay valid")
	}
	if got := pickup.Config().RangeEnd; !got.Equal(day(2025, time.June, 12)) {
		t.Fatalf("pickup range end lost: %v", got)
	}

	if !link.NotifyLinked(day(2025, time.June, 15)) {
		t.Fatalf("expected end before the new start to be reported")
	}
	if !pickup.Config().RangeEnd.IsZero() {
		t.Fatalf("expected range end cleared")
	}
	if link.NotifyLinked(day(2025, time.June, 16)) {
		t.Fatalf("invalid end must be reported once")
	}
}

func TestClearEnd(t *testing.T) {
	_, pickup, _, link := linkedPair(t, day(2025, time.June, 1))
	link.NotifyEnd(day(2025, time.June, 12))
	link.ClearEnd()
	if !pickup.Config().RangeEnd.IsZero() {
		t.Fatalf("expected range end cleared")
	}
	if link.NotifyLinked(day(2025, time.June, 20)) {
		t.Fatalf("cleared end must not be reported")
	}
}

func TestNotifyLinkedComparesTimeOfDay(t *testing.T) {
	_, _, _, link := linkedPair(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	link.NotifyEnd(time.Date(2025, time.June, 11, 17, 0, 0, 0, time.UTC))
	if link.NotifyLinked(time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("same-day end after the start must stay valid")
	}
	if !link.NotifyLinked(time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected same-day end before the start to be reported")
	}
}

func TestStaleWithoutNotification(t *testing.T) {
	_, pickup, _, link := linkedPair(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC))
	if link.Stale() {
		t.Fatalf("expected fresh link before any confirm")
	}
	pickup.Show()
	pickup.SelectDay(20)
	if link.Stale() {
		t.Fatalf("browsing the start must not make the link stale")
	}
	pickup.SetTimeText("10:00 AM")
	if !pickup.Confirm() {
		t.Fatalf("expected pickup confirm")
	}
	if link.Stale() {
		t.Fatalf("expected fresh link after a propagated confirm")
	}

	pickup.UpdateConfig(Patch{OnConfirm: func(time.Time) {}})
	pickup.Show()
	pickup.SelectDay(22)
	pickup.SetTimeText("11:00 AM")
	if !pickup.Confirm() {
		t.Fatalf("expected second pickup confirm")
	}
	if !link.Stale() {
		t.Fatalf("expected stale link after an unpropagated confirm")
	}
	link.NotifyLinked(pickup.Confirmed())
	if link.Stale() {
		t.Fatalf("expected fresh link after propagation")
	}
}

func TestReleasedStartFallsBackToExplicitRange(t *testing.T) {
	g, _, ret, link := linkedPair(t, day(2025, time.June, 1))
	link.NotifyLinked(day(2025, time.June, 3))
	g.Release("pickup")
	r := ret.Range()
	if !r.Start.Equal(day(2025, time.June, 3)) {
		t.Fatalf("expected explicit range start, got %v", r.Start)
	}
	if link.Stale() {
		t.Fatalf("a link with a released side is never stale")
	}
	if _, ok := link.Start(); ok {
		t.Fatalf("expected released start to stop resolving")
	}
}

func ExampleLink() {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	g := NewGroup(GroupOptions{Clock: fixedClock(now)})
	pickup, _ := g.New("pickup", Config{DateOnly: true})
	ret, _ := g.New("return", Config{DateOnly: true})
	link, _ := Link(g, "pickup", "return")

	pickup.Show()
	pickup.SelectDay(10)
	pickup.Confirm()
	link.NotifyLinked(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))

	ret.Show()
	fmt.Println(ret.SelectDay(9), ret.SelectDay(14))
	fmt.Println(ret.Range().Start.Format(DateLayout), ret.Range().End.Format(DateLayout))
	// Output:
	// false true
	// 10/06/2025 14/06/2025
}
