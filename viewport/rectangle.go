package viewport

// Rectangle is an axis-aligned rectangle in document coordinates.
type Rectangle struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// BoundsFunc reads the current layout box of an observed element on demand. It is invoked at
// evaluation time and never cached, as the layout may have changed since subscription.
type BoundsFunc func() Rectangle

// Intersects returns true if the two rectangles share any area. All boundary comparisons are
// inclusive, so rectangles that only touch at an edge still count as intersecting. Degenerate
// (zero-size) rectangles are valid inputs.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.overlapsVertically(other) && r.overlapsHorizontally(other)
}

// overlapsVertically returns true if the vertical intervals of the two rectangles overlap:
// other starts inside r, ends inside r, or spans r entirely.
func (r Rectangle) overlapsVertically(other Rectangle) bool {
	if other.Top >= r.Top && other.Top <= r.Bottom {
		return true
	}
	if other.Bottom >= r.Top && other.Bottom <= r.Bottom {
		return true
	}

	return other.Top <= r.Top && other.Bottom >= r.Bottom
}

// overlapsHorizontally is the symmetric test on the horizontal intervals.
func (r Rectangle) overlapsHorizontally(other Rectangle) bool {
	if other.Left >= r.Left && other.Left <= r.Right {
		return true
	}
	if other.Right >= r.Left && other.Right <= r.Right {
		return true
	}

	return other.Left <= r.Left && other.Right >= r.Right
}
