package viewport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inviewkit/inview.go/viewport"
)

var testMetrics = viewport.Metrics{Height: 800, Width: 600}

func TestEvaluator_FirstEvaluationNotifies(t *testing.T) {
	evaluator := viewport.NewEvaluator(func() viewport.Rectangle {
		return viewport.Rectangle{Top: 100, Bottom: 200, Left: 100, Right: 200}
	})

	var notifications []bool
	evaluator.InViewportChanged.Hook(func(inViewport bool) {
		notifications = append(notifications, inViewport)
	})

	// before the first evaluation the state is unresolved
	require.False(t, evaluator.IsInViewport())
	require.True(t, evaluator.IsNotInViewport())

	// resolving the initial state counts as a transition
	evaluator.Evaluate(testMetrics)
	require.Equal(t, []bool{true}, notifications)
	require.True(t, evaluator.IsInViewport())
	require.False(t, evaluator.IsNotInViewport())
}

func TestEvaluator_NotifiesOnlyOnTransition(t *testing.T) {
	elementBounds := viewport.Rectangle{Top: 100, Bottom: 200, Left: 100, Right: 200}
	evaluator := viewport.NewEvaluator(func() viewport.Rectangle {
		return elementBounds
	})

	var notifications []bool
	evaluator.InViewportChanged.Hook(func(inViewport bool) {
		notifications = append(notifications, inViewport)
	})

	evaluator.Evaluate(testMetrics)
	evaluator.Evaluate(testMetrics)
	evaluator.Evaluate(testMetrics)
	require.Equal(t, []bool{true}, notifications)

	// scroll the element out of view
	elementBounds = viewport.Rectangle{Top: 1000, Bottom: 1100, Left: 100, Right: 200}
	evaluator.Evaluate(testMetrics)
	evaluator.Evaluate(testMetrics)
	require.Equal(t, []bool{true, false}, notifications)
	require.True(t, evaluator.IsNotInViewport())

	// and back in
	elementBounds = viewport.Rectangle{Top: 100, Bottom: 200, Left: 100, Right: 200}
	evaluator.Evaluate(testMetrics)
	require.Equal(t, []bool{true, false, true}, notifications)
}

func TestEvaluator_ReadsBoundsLive(t *testing.T) {
	boundsReads := 0
	evaluator := viewport.NewEvaluator(func() viewport.Rectangle {
		boundsReads++

		return viewport.Rectangle{Top: float64(boundsReads) * 1000, Bottom: float64(boundsReads)*1000 + 100, Left: 0, Right: 50}
	})

	evaluator.Evaluate(testMetrics)
	evaluator.Evaluate(testMetrics)
	evaluator.Evaluate(testMetrics)

	// the layout box must be read once per evaluation, never cached
	require.Equal(t, 3, boundsReads)
}

func TestEvaluator_ScrolledViewport(t *testing.T) {
	evaluator := viewport.NewEvaluator(func() viewport.Rectangle {
		return viewport.Rectangle{Top: 1000, Bottom: 1100, Left: 0, Right: 50}
	})

	var notifications []bool
	evaluator.InViewportChanged.Hook(func(inViewport bool) {
		notifications = append(notifications, inViewport)
	})

	// element below the unscrolled viewport
	evaluator.Evaluate(viewport.Metrics{Height: 800, Width: 600})
	require.Equal(t, []bool{false}, notifications)

	// scrolling down brings it into view
	evaluator.Evaluate(viewport.Metrics{Height: 800, Width: 600, ScrollY: 400})
	require.Equal(t, []bool{false, true}, notifications)
}

func TestEvaluator_ZeroSizeElement(t *testing.T) {
	evaluator := viewport.NewEvaluator(func() viewport.Rectangle {
		return viewport.Rectangle{}
	})

	var notifications []bool
	evaluator.InViewportChanged.Hook(func(inViewport bool) {
		notifications = append(notifications, inViewport)
	})

	// a degenerate layout box still evaluates; flush with the viewport origin counts as inside
	evaluator.Evaluate(testMetrics)
	require.Equal(t, []bool{true}, notifications)

	// scrolled past, the degenerate box produces non-overlap
	evaluator.Evaluate(viewport.Metrics{Height: 800, Width: 600, ScrollY: 100})
	require.Equal(t, []bool{true, false}, notifications)
}
