package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	cal "tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/store"
)

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthPlain(t *testing.T) {
	g := cal.Build(cal.GridOptions{
		Selected: day(12),
		Bounds:   cal.Bounds{Min: day(3)},
		Range:    cal.Range{Start: day(10), End: day(12)},
	})
	var out bytes.Buffer
	pp := &PrettyPrint{Out: &out, Plain: true}
	pp.Month(g)

	lines := strings.Split(out.String(), "\n")
	if !strings.Contains(lines[0], "June 2025") {
		t.Fatalf("expected title, got %q", lines[0])
	}
	// June 2025 starts on a Sunday.
	if want := "( 1)( 2)  3   4   5   6   7 "; lines[2] != want {
		t.Fatalf("first week\n got %q\nwant %q", lines[2], want)
	}
	if want := "  8   9 [10 -11- 12] 13  14 "; lines[3] != want {
		t.Fatalf("second week\n got %q\nwant %q", lines[3], want)
	}
}

func TestPlainMarkers(t *testing.T) {
	tests := []struct {
		cell        cal.Cell
		open, close rune
	}{
		{cal.Cell{}, ' ', ' '},
		{cal.Cell{Disabled: true}, '(', ')'},
		{cal.Cell{Selected: true}, '*', '*'},
		{cal.Cell{Selected: true, Range: cal.RangeEnd}, ' ', ']'},
		{cal.Cell{Range: cal.RangeStartEnd}, '[', ']'},
		{cal.Cell{Range: cal.RangeInside}, '-', '-'},
	}
	for _, tt := range tests {
		open, closing := PlainMarkers(tt.cell)
		if open != tt.open || closing != tt.close {
			t.Errorf("%+v: got %q %q, want %q %q", tt.cell, open, closing, tt.open, tt.close)
		}
	}
}

func TestTrips(t *testing.T) {
	var out bytes.Buffer
	pp := &PrettyPrint{Out: &out, Plain: true}
	pp.Trips([]*store.Trip{
		{ID: "abc", Kind: store.KindReturn, Pickup: day(10).Add(9 * time.Hour), Return: day(14).Add(17 * time.Hour)},
		{ID: "def", Kind: store.KindOneWay, Pickup: day(20)},
	})
	got := out.String()
	for _, want := range []string{"ID", "abc", "Tue 10 Jun 2025 09:00 AM", "Sat 14 Jun 2025 05:00 PM", "def", "oneway"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
	if Nights(day(10).Add(23*time.Hour), day(14)) != 4 {
		t.Fatalf("nights count days, not hours")
	}
}

func TestTripsEmpty(t *testing.T) {
	var out bytes.Buffer
	(&PrettyPrint{Out: &out, Plain: true}).Trips(nil)
	if !strings.Contains(out.String(), "none") {
		t.Fatalf("expected none, got %q", out.String())
	}
}
