package viewport

// Metrics captures the state of the global viewport at the moment a qualifying signal arrived:
// the visible extents and the current scroll offsets. All values are non-negative (scroll offsets
// may be 0). A Metrics value is produced fresh for every qualifying signal, is immutable once
// constructed and carries no identity beyond its values.
type Metrics struct {
	Height  float64
	Width   float64
	ScrollY float64
	ScrollX float64
}

// Bounds derives the viewport rectangle in document coordinates.
func (m Metrics) Bounds() Rectangle {
	return Rectangle{
		Top:    m.ScrollY,
		Bottom: m.ScrollY + m.Height,
		Left:   m.ScrollX,
		Right:  m.ScrollX + m.Width,
	}
}

// MetricsFunc reads the current Metrics of the global viewport on demand. It is invoked once per
// qualifying signal so that every emitted value reflects the viewport state at signal time.
type MetricsFunc func() Metrics
