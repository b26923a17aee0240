package event

import (
	"sync/atomic"

	"github.com/inviewkit/inview.go/options"
)

// WithMaxTriggerCount sets the maximum number of times an entity shall be triggered.
func WithMaxTriggerCount(maxTriggerCount uint64) Option {
	return func(triggerSettings *triggerSettings) {
		triggerSettings.maxTriggerCount = maxTriggerCount
	}
}

// triggerSettings is a struct that contains trigger related settings and logic.
type triggerSettings struct {
	triggerCount    atomic.Uint64
	maxTriggerCount uint64
}

// WasTriggered returns true if Trigger was called at least once.
func (t *triggerSettings) WasTriggered() bool {
	return t.triggerCount.Load() > 0
}

// TriggerCount returns the number of times Trigger was called.
func (t *triggerSettings) TriggerCount() int {
	return int(t.triggerCount.Load())
}

// MaxTriggerCount returns the maximum number of times Trigger can be called.
func (t *triggerSettings) MaxTriggerCount() int {
	return int(t.maxTriggerCount)
}

// currentTriggerExceedsMaxTriggerCount returns true if the maximum number of times Trigger shall be called was reached.
func (t *triggerSettings) currentTriggerExceedsMaxTriggerCount() bool {
	return t.triggerCount.Add(1) > t.maxTriggerCount && t.maxTriggerCount != 0
}

// Option is a function that configures the triggerSettings.
type Option = options.Option[triggerSettings]
