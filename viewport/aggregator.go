package viewport

import (
	"time"

	"go.uber.org/atomic"

	"github.com/inviewkit/inview.go/event"
	"github.com/inviewkit/inview.go/syncutils"
	"github.com/inviewkit/inview.go/timeutil"
)

// DefaultDebounceInterval is the quiet window applied to viewport signals if none is configured.
const DefaultDebounceInterval = 100 * time.Millisecond

// Aggregator normalizes several asynchronous, unbounded signal streams into one debounced
// sequence of Metrics. Bursts of signals collapse into a single downstream trigger once a quiet
// window of the configured interval has elapsed, so under sustained high-frequency signals
// (e.g. continuous scrolling) propagation is delayed until motion stops.
type Aggregator struct {
	// Output is triggered once per quiet window, carrying the metrics of the last Emit.
	Output *event.Event1[Metrics]

	metricsFunc MetricsFunc
	sources     []Source
	debouncer   *timeutil.Debouncer

	mutex       syncutils.Mutex
	unsubscribe []func()
	initialized bool
	disposed    *atomic.Bool
}

// NewAggregator creates a new Aggregator that reads fresh metrics through metricsFunc whenever
// one of the given sources fires. Negative debounce intervals are clamped to zero. metricsFunc
// may be nil only if no sources are configured and values are pushed through Emit exclusively;
// NewAggregator panics if sources are given without a metricsFunc to read for them.
func NewAggregator(metricsFunc MetricsFunc, debounceInterval time.Duration, sources ...Source) *Aggregator {
	if metricsFunc == nil && len(sources) > 0 {
		panic("viewport: metricsFunc must not be nil when sources are configured")
	}

	return &Aggregator{
		Output:      event.New1[Metrics](),
		metricsFunc: metricsFunc,
		sources:     sources,
		debouncer:   timeutil.NewDebouncer(debounceInterval),
		disposed:    atomic.NewBool(false),
	}
}

// Initialize subscribes to all configured sources. Every signal reads the current metrics and
// emits them into the sequence. Initialize is idempotent and a no-op after Dispose.
func (a *Aggregator) Initialize() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.initialized || a.disposed.Load() {
		return
	}
	a.initialized = true

	for _, source := range a.sources {
		a.unsubscribe = append(a.unsubscribe, source.Subscribe(func() {
			a.Emit(a.metricsFunc())
		}))
	}
}

// Emit pushes a new metrics value into the sequence. It never blocks and never panics; it is a
// silent no-op after Dispose, tolerating stray late signals from in-flight timers. Each
// propagated value triggers Output exactly once after the quiet window has elapsed.
func (a *Aggregator) Emit(metrics Metrics) {
	if a.disposed.Load() {
		return
	}

	a.debouncer.Debounce(func() {
		if a.disposed.Load() {
			return
		}

		a.Output.Trigger(metrics)
	})
}

// IsDisposed returns true if the Aggregator was disposed.
func (a *Aggregator) IsDisposed() bool {
	return a.disposed.Load()
}

// Dispose permanently stops propagation: all source subscriptions are released, a pending
// debounce timer is discarded without firing, and a delivery that is already running on another
// goroutine is drained, so that no Output trigger can happen once Dispose has returned. Dispose
// is idempotent and may be called from within an Output notification.
func (a *Aggregator) Dispose() {
	if !a.disposed.CompareAndSwap(false, true) {
		return
	}

	// the shutdown barrier must be waited on without holding a.mutex, otherwise a notification
	// that calls back into the Aggregator would deadlock against the disposing goroutine
	a.debouncer.Shutdown()

	a.mutex.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mutex.Unlock()

	for _, unsubscribeSource := range unsubscribe {
		unsubscribeSource()
	}
}
