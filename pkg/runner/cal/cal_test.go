package cal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/rangepick/pkg/printers"
)

func TestDoDefaultsToToday(t *testing.T) {
	var out bytes.Buffer
	c := &Cal{
		Now:     time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC),
		Printer: &printers.PrettyPrint{Out: &out, Plain: true},
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "June 2025") || !strings.Contains(got, "*10*") || !strings.Contains(got, "( 9)") {
		t.Fatalf("unexpected calendar:\n%s", got)
	}
}

func TestDoMonthAndRange(t *testing.T) {
	var out bytes.Buffer
	c := &Cal{
		Now:     time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC),
		Month:   time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Start:   time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
		Printer: &printers.PrettyPrint{Out: &out, Plain: true},
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	for _, want := range []string{"July 2025", "[ 3 ", "- 4-", "  5]", "*10*"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}
