package viewport

import (
	"time"

	"github.com/inviewkit/inview.go/event"
	"github.com/inviewkit/inview.go/logger"
	"github.com/inviewkit/inview.go/options"
)

// Events bundles the outbound notifications of a Watcher.
type Events struct {
	// InViewportChanged is triggered with the new boolean exactly once per state transition.
	InViewportChanged *event.Event1[bool]
}

// newEvents creates a new Events instance.
func newEvents() *Events {
	return &Events{
		InViewportChanged: event.New1[bool](),
	}
}

// Watcher observes a single element and reports, debounced, whether it currently intersects the
// visible viewport. Each Watcher is fully independent; multiple instances never interfere.
type Watcher struct {
	// Events contains the outbound notifications of the Watcher.
	Events *Events

	aggregator *Aggregator
	evaluator  *Evaluator
	log        *logger.Logger

	optsDebounceInterval time.Duration
	optsSources          []Source
	optsLogger           *logger.Logger
}

// NewWatcher creates a new Watcher for the element whose layout box is read through boundsFunc.
// metricsFunc is the handle to the global viewport state; it is consulted on every source signal.
// It may be nil only if no sources are configured through WithSources and metrics are pushed
// through Emit exclusively; NewWatcher panics otherwise.
func NewWatcher(metricsFunc MetricsFunc, boundsFunc BoundsFunc, opts ...options.Option[Watcher]) *Watcher {
	return options.Apply(&Watcher{
		Events:               newEvents(),
		optsDebounceInterval: DefaultDebounceInterval,
	}, opts, func(w *Watcher) {
		w.log = w.optsLogger
		w.evaluator = NewEvaluator(boundsFunc)
		w.aggregator = NewAggregator(metricsFunc, w.optsDebounceInterval, w.optsSources...)

		w.aggregator.Output.Hook(w.evaluator.Evaluate)
		w.evaluator.InViewportChanged.Hook(func(inViewport bool) {
			if w.log != nil {
				w.log.Debugw("visibility state changed", "inViewport", inViewport)
			}

			w.Events.InViewportChanged.Trigger(inViewport)
		})
	})
}

// WithDebounceInterval sets the quiet window that has to elapse after the last signal before the
// visibility is re-evaluated. The default is DefaultDebounceInterval; negative values are clamped
// to zero.
func WithDebounceInterval(interval time.Duration) options.Option[Watcher] {
	return func(w *Watcher) {
		w.optsDebounceInterval = interval
	}
}

// WithSources sets the external signal streams the Watcher subscribes to on Initialize.
func WithSources(sources ...Source) options.Option[Watcher] {
	return func(w *Watcher) {
		w.optsSources = append(w.optsSources, sources...)
	}
}

// WithLogger sets the logger that transitions are logged to at debug level.
func WithLogger(log *logger.Logger) options.Option[Watcher] {
	return func(w *Watcher) {
		w.optsLogger = log
	}
}

// Initialize begins observing: the Watcher subscribes to all configured sources. The host
// collaborator calls it at the appropriate point of its own lifecycle.
func (w *Watcher) Initialize() {
	w.aggregator.Initialize()
}

// Emit pushes a metrics value into the evaluation sequence, bypassing the configured sources.
// It follows the aggregator's debounce and disposal semantics.
func (w *Watcher) Emit(metrics Metrics) {
	w.aggregator.Emit(metrics)
}

// IsInViewport returns true if the last evaluation classified the element as intersecting the
// viewport. It is a pure read of the stored state and fires no notifications.
func (w *Watcher) IsInViewport() bool {
	return w.evaluator.IsInViewport()
}

// IsNotInViewport is the logical negation of IsInViewport, exposed for conditional styling.
func (w *Watcher) IsNotInViewport() bool {
	return w.evaluator.IsNotInViewport()
}

// IsDisposed returns true if the Watcher was disposed.
func (w *Watcher) IsDisposed() bool {
	return w.aggregator.IsDisposed()
}

// Dispose stops observing: all source subscriptions are released, a pending debounce timer is
// discarded and no notification fires afterwards. Dispose is idempotent.
func (w *Watcher) Dispose() {
	w.aggregator.Dispose()
	w.Events.InViewportChanged.UnhookAll()
}
