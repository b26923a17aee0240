package viewport

import (
	"go.uber.org/atomic"

	"github.com/inviewkit/inview.go/event"
)

// The visibility state is tracked as a tri-state so that "no prior value" compares unequal to
// any computed boolean and the first evaluation has deterministic behavior.
const (
	stateUnknown int32 = iota
	stateInViewport
	stateNotInViewport
)

// Evaluator decides boolean intersection between the viewport described by incoming metrics and
// the current layout box of the observed element, and reports transitions of that boolean.
type Evaluator struct {
	// InViewportChanged is triggered with the new value whenever the stored visibility flips.
	// The very first evaluation always triggers it: resolving the initial "unknown" state counts
	// as a transition.
	InViewportChanged *event.Event1[bool]

	boundsFunc BoundsFunc
	state      *atomic.Int32
}

// NewEvaluator creates a new Evaluator that reads the element's live layout box through
// boundsFunc at every evaluation.
func NewEvaluator(boundsFunc BoundsFunc) *Evaluator {
	return &Evaluator{
		InViewportChanged: event.New1[bool](),
		boundsFunc:        boundsFunc,
		state:             atomic.NewInt32(stateUnknown),
	}
}

// Evaluate computes whether the element currently intersects the viewport described by metrics,
// stores the result and triggers InViewportChanged if it differs from the previously stored
// value. Repeated evaluations yielding the same boolean trigger nothing. The element bounds are
// read live; zero-size or detached layout boxes are valid inputs and simply tend to produce
// non-overlap.
func (e *Evaluator) Evaluate(metrics Metrics) {
	inViewport := metrics.Bounds().Intersects(e.boundsFunc())

	newState := stateNotInViewport
	if inViewport {
		newState = stateInViewport
	}

	if e.state.Swap(newState) != newState {
		e.InViewportChanged.Trigger(inViewport)
	}
}

// IsInViewport returns true if the last evaluation classified the element as intersecting the
// viewport. It is false before the first evaluation.
func (e *Evaluator) IsInViewport() bool {
	return e.state.Load() == stateInViewport
}

// IsNotInViewport is the logical negation of IsInViewport.
func (e *Evaluator) IsNotInViewport() bool {
	return !e.IsInViewport()
}
