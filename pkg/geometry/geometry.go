// Package geometry positions floating panels next to the field that opened
// them while keeping them inside the viewport.
package geometry

// Point is a position in viewport coordinates.
type Point struct {
	X int
	Y int
}

// Size is a width and height.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Right returns the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Spacing holds the viewport margin and the gap between field and panel.
type Spacing struct {
	Margin int
	Gap    int
}

// DefaultSpacing matches a pixel-based host: 10 margin, 5 gap.
func DefaultSpacing() Spacing { return Spacing{Margin: 10, Gap: 5} }

// Policy selects the vertical placement rule.
type Policy int

const (
	// BelowWhenRoomier places below if the panel fits or if there is more
	// room below than above. Used by the calendar popup.
	BelowWhenRoomier Policy = iota
	// BelowWhenFits places below only if the panel fits there. Used by the
	// time panel.
	BelowWhenFits
)

// Placement is the computed panel box.
type Placement struct {
	Rect
	Above bool
}

// Place computes a greedy, one-shot position for a panel of the given size
// anchored to the field rect. Horizontally the panel is left-aligned to the
// anchor and clamped to [margin, viewport-margin]. Vertically it goes below
// or above the anchor, separated by the gap, according to policy.
func Place(anchor Rect, panel Size, viewport Size, sp Spacing, policy Policy) Placement {
	left := anchor.X
	if maxLeft := viewport.W - panel.W - sp.Margin; left > maxLeft {
		left = maxLeft
	}
	if left < sp.Margin {
		left = sp.Margin
	}

	spaceBelow := viewport.H - anchor.Bottom()
	spaceAbove := anchor.Y

	below := spaceBelow >= panel.H
	if policy == BelowWhenRoomier {
		below = below || spaceBelow > spaceAbove
	}

	p := Placement{Rect: Rect{X: left, W: panel.W, H: panel.H}}
	if below {
		p.Y = anchor.Bottom() + sp.Gap
		return p
	}
	p.Y = anchor.Y - sp.Gap - panel.H
	p.Above = true
	return p
}

// ScrollOffset returns the first visible index that centres selected in a
// window of visible rows over total items.
func ScrollOffset(selected, total, visible int) int {
	if visible <= 0 || total <= visible || selected < 0 {
		return 0
	}
	off := selected - visible/2
	if off < 0 {
		off = 0
	}
	if maxOff := total - visible; off > maxOff {
		off = maxOff
	}
	return off
}
