package events

import (
	"sync"
)

// CallbackEvent fans a value out to a set of subscriber callbacks.
// T is the argument type passed to each callback.
//
// Callbacks run synchronously on the notifying goroutine, outside the
// event's lock. A callback that must not stall the notifier should
// hand the value off to its own goroutine or channel.
type CallbackEvent[T any] struct {
	mu         sync.RWMutex
	subs       map[uint64]func(T)
	seq        uint64
	replayLast bool
	last       *T
}

// NewCallbackEvent creates a CallbackEvent.
// replayLast: when true, a newly registered callback is invoked
// immediately with the most recent value passed to Notify (if any).
func NewCallbackEvent[T any](replayLast bool) *CallbackEvent[T] {
	return &CallbackEvent[T]{
		subs:       make(map[uint64]func(T)),
		replayLast: replayLast,
	}
}

// Listen registers callback for future notifications and returns a
// function that removes the registration.
func (e *CallbackEvent[T]) Listen(callback func(T)) func() {
	if callback == nil {
		panic("callback cannot be nil")
	}

	e.mu.Lock()
	id := e.seq
	e.seq++
	e.subs[id] = callback
	var replay *T
	if e.replayLast && e.last != nil {
		v := *e.last
		replay = &v
	}
	e.mu.Unlock()

	// Invoke outside the lock so the callback may re-enter the event.
	if replay != nil {
		callback(*replay)
	}

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Notify invokes every registered callback with value. Thread-safe;
// callbacks are invoked outside the lock.
func (e *CallbackEvent[T]) Notify(value T) {
	e.mu.Lock()
	if e.replayLast {
		v := value
		e.last = &v
	}
	targets := make([]func(T), 0, len(e.subs))
	for _, cb := range e.subs {
		targets = append(targets, cb)
	}
	e.mu.Unlock()

	for _, cb := range targets {
		cb(value)
	}
}

// ListenerCount returns the number of registered callbacks.
func (e *CallbackEvent[T]) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}
