package viewport

import (
	"github.com/inviewkit/inview.go/event"
)

// Source is a single external signal stream, e.g. the window's load, scroll or resize events.
// The aggregator subscribes to every configured Source and treats all of them uniformly.
type Source interface {
	// Subscribe registers the callback to run on every occurrence of the signal and returns a
	// function that releases the subscription.
	Subscribe(callback func()) (unsubscribe func())
}

// SourceFunc is an adapter that allows plain functions to be used as Sources.
type SourceFunc func(callback func()) (unsubscribe func())

// Subscribe calls s(callback).
func (s SourceFunc) Subscribe(callback func()) (unsubscribe func()) {
	return s(callback)
}

// TriggerSource is an event-backed Source that the host fires whenever the underlying raw signal
// occurs. It also serves as a deterministic stand-in for browser signals in tests.
type TriggerSource struct {
	signal *event.Event
}

// NewTriggerSource creates a new TriggerSource.
func NewTriggerSource() *TriggerSource {
	return &TriggerSource{
		signal: event.New(),
	}
}

// Trigger fires the signal, invoking all current subscribers.
func (t *TriggerSource) Trigger() {
	t.signal.Trigger()
}

// Subscribe registers the callback to run on every Trigger and returns a function that releases
// the subscription.
func (t *TriggerSource) Subscribe(callback func()) (unsubscribe func()) {
	return t.signal.Hook(callback).Unhook
}
