package event

// Event is an event with no generic parameters.
type Event struct {
	*base[func()]
}

// New creates a new event with no generic parameters.
func New(opts ...Option) *Event {
	return &Event{
		base: newBase[func()](opts...),
	}
}

// Trigger invokes the hooked callbacks.
func (e *Event) Trigger() {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func()]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		hook.trigger()

		return true
	})
}

// Event1 is an event with 1 generic parameter.
type Event1[T1 any] struct {
	*base[func(T1)]
}

// New1 creates a new event with 1 generic parameter.
func New1[T1 any](opts ...Option) *Event1[T1] {
	return &Event1[T1]{
		base: newBase[func(T1)](opts...),
	}
}

// Trigger invokes the hooked callbacks with the given parameter.
func (e *Event1[T1]) Trigger(arg1 T1) {
	if e.currentTriggerExceedsMaxTriggerCount() {
		return
	}

	e.hooks.ForEach(func(_ uint64, hook *Hook[func(T1)]) bool {
		if hook.currentTriggerExceedsMaxTriggerCount() {
			hook.Unhook()

			return true
		}

		hook.trigger(arg1)

		return true
	})
}
