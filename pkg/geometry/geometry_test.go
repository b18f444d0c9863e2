package geometry

import "testing"

func TestPlace(t *testing.T) {
	viewport := Size{W: 100, H: 50}
	sp := Spacing{Margin: 2, Gap: 1}

	tests := []struct {
		name      string
		anchor    Rect
		panel     Size
		policy    Policy
		want      Rect
		wantAbove bool
	}{
		{
			name:   "fits below",
			anchor: Rect{X: 10, Y: 5, W: 20, H: 1},
			panel:  Size{W: 30, H: 12},
			want:   Rect{X: 10, Y: 7, W: 30, H: 12},
		},
		{
			name:      "flips above when roomier above",
			anchor:    Rect{X: 10, Y: 40, W: 20, H: 1},
			panel:     Size{W: 30, H: 12},
			want:      Rect{X: 10, Y: 27, W: 30, H: 12},
			wantAbove: true,
		},
		{
			name:   "stays below when more room below even if it does not fit",
			anchor: Rect{X: 10, Y: 20, W: 20, H: 1},
			panel:  Size{W: 30, H: 40},
			want:   Rect{X: 10, Y: 22, W: 30, H: 40},
		},
		{
			name:      "time panel needs a full fit below",
			anchor:    Rect{X: 10, Y: 20, W: 20, H: 1},
			panel:     Size{W: 30, H: 40},
			policy:    BelowWhenFits,
			want:      Rect{X: 10, Y: -21, W: 30, H: 40},
			wantAbove: true,
		},
		{
			name:   "clamps right edge",
			anchor: Rect{X: 90, Y: 5, W: 8, H: 1},
			panel:  Size{W: 30, H: 10},
			want:   Rect{X: 68, Y: 7, W: 30, H: 10},
		},
		{
			name:   "clamps left margin",
			anchor: Rect{X: 0, Y: 5, W: 8, H: 1},
			panel:  Size{W: 30, H: 10},
			want:   Rect{X: 2, Y: 7, W: 30, H: 10},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Place(tc.anchor, tc.panel, viewport, sp, tc.policy)
			if got.Rect != tc.want || got.Above != tc.wantAbove {
				t.Fatalf("Place = %+v above=%v, want %+v above=%v", got.Rect, got.Above, tc.want, tc.wantAbove)
			}
		})
	}
}

func TestContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(Point{X: 2, Y: 3}) || !r.Contains(Point{X: 5, Y: 4}) {
		t.Fatalf("expected corners inside")
	}
	if r.Contains(Point{X: 6, Y: 3}) || r.Contains(Point{X: 2, Y: 5}) {
		t.Fatalf("expected outer edge outside")
	}
	if (Rect{}).Contains(Point{}) {
		t.Fatalf("empty rect contains nothing")
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct{ sel, total, visible, want int }{
		{0, 60, 5, 0},
		{30, 60, 5, 28},
		{59, 60, 5, 55},
		{3, 2, 5, 0},
	}
	for _, tc := range tests {
		if got := ScrollOffset(tc.sel, tc.total, tc.visible); got != tc.want {
			t.Errorf("ScrollOffset(%d,%d,%d) = %d, want %d", tc.sel, tc.total, tc.visible, got, tc.want)
		}
	}
}
