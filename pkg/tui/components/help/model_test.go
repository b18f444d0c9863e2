package help

import (
	"strings"
	"testing"
)

func TestViewRendersKeys(t *testing.T) {
	m := New(70, 90)
	out := stripANSI(m.View())
	for _, want := range []string{"Help", "one-way", "confirm"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in help:\n%s", want, out)
		}
	}
}

func TestSetSizeHasMinimum(t *testing.T) {
	m := New(4, 2)
	if w, h := m.Size(); w != 32 || h != 8 {
		t.Fatalf("expected minimum size, got %dx%d", w, h)
	}
}
