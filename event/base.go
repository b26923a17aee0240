package event

import (
	"sync/atomic"

	"github.com/inviewkit/inview.go/options"
	"github.com/inviewkit/inview.go/orderedmap"
)

// base is the generic base type for all events.
type base[TriggerFunc any] struct {
	// hooks is a dictionary of all hooks that are currently hooked to the event.
	hooks *orderedmap.OrderedMap[uint64, *Hook[TriggerFunc]]

	// hooksCounter is used to assign a unique ID to each hook.
	hooksCounter atomic.Uint64

	// triggerSettings is the settings that are used to trigger the event.
	*triggerSettings
}

// newBase creates a new base instance.
func newBase[TriggerFunc any](opts ...Option) *base[TriggerFunc] {
	return &base[TriggerFunc]{
		hooks:           orderedmap.New[uint64, *Hook[TriggerFunc]](),
		triggerSettings: options.Apply(new(triggerSettings), opts),
	}
}

// Hook adds a new hook to the event and returns it.
func (e *base[TriggerFunc]) Hook(triggerFunc TriggerFunc, opts ...Option) *Hook[TriggerFunc] {
	hookID := e.hooksCounter.Add(1)
	hook := newHook(triggerFunc, func() { e.hooks.Delete(hookID) }, opts...)

	e.hooks.Set(hookID, hook)

	return hook
}

// UnhookAll removes all hooks from the event.
func (e *base[TriggerFunc]) UnhookAll() {
	e.hooks.Clear()
}

// HookCount returns the number of hooks that are currently registered with the event.
func (e *base[TriggerFunc]) HookCount() int {
	return e.hooks.Size()
}
