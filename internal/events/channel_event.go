package events

import (
	"sync"
)

// ChannelEvent fans a value out to a set of subscriber channels.
// T is the value type delivered to each channel.
//
// Sends never block: a subscriber whose channel is full misses that
// notification. Subscribers that must not miss updates should use a
// buffered channel and drain it promptly.
type ChannelEvent[T any] struct {
	mu         sync.RWMutex
	subs       map[uint64]chan<- T
	seq        uint64
	replayLast bool
	last       *T
}

// NewChannelEvent creates a ChannelEvent.
// replayLast: when true, a newly registered channel immediately
// receives the most recent value passed to Notify (if any). Useful for
// state-style events where late subscribers need the current value.
func NewChannelEvent[T any](replayLast bool) *ChannelEvent[T] {
	return &ChannelEvent[T]{
		subs:       make(map[uint64]chan<- T),
		replayLast: replayLast,
	}
}

// Listen registers ch to receive future notifications and returns a
// function that removes the registration.
func (e *ChannelEvent[T]) Listen(ch chan<- T) func() {
	if ch == nil {
		panic("channel cannot be nil")
	}

	e.mu.Lock()
	id := e.seq
	e.seq++
	e.subs[id] = ch
	var replay *T
	if e.replayLast && e.last != nil {
		v := *e.last
		replay = &v
	}
	e.mu.Unlock()

	// Deliver the replayed value outside the lock, non-blocking like
	// any other send.
	if replay != nil {
		select {
		case ch <- *replay:
		default:
		}
	}

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Notify sends value to every registered channel. Thread-safe; full
// channels are skipped rather than blocked on.
func (e *ChannelEvent[T]) Notify(value T) {
	e.mu.Lock()
	if e.replayLast {
		v := value
		e.last = &v
	}
	targets := make([]chan<- T, 0, len(e.subs))
	for _, ch := range e.subs {
		targets = append(targets, ch)
	}
	e.mu.Unlock()

	for _, ch := range targets {
		select {
		case ch <- value:
		default:
		}
	}
}

// ListenerCount returns the number of registered channels.
func (e *ChannelEvent[T]) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}
