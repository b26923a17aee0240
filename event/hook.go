package event

import (
	"github.com/inviewkit/inview.go/options"
)

// Hook is a container that holds a trigger function and its trigger settings.
type Hook[TriggerFunc any] struct {
	trigger TriggerFunc
	unhook  func()

	*triggerSettings
}

// newHook creates a new Hook.
func newHook[TriggerFunc any](trigger TriggerFunc, unhook func(), opts ...Option) *Hook[TriggerFunc] {
	return &Hook[TriggerFunc]{
		trigger:         trigger,
		unhook:          unhook,
		triggerSettings: options.Apply(new(triggerSettings), opts),
	}
}

// Unhook removes the callback from the event.
func (h *Hook[TriggerFunc]) Unhook() {
	h.unhook()
}
