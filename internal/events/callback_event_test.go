package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallbackEvent(t *testing.T) {
	event := NewCallbackEvent[string](false)
	require.NotNil(t, event)
	assert.Equal(t, 0, event.ListenerCount())
	assert.False(t, event.replayLast)

	event2 := NewCallbackEvent[int](true)
	require.NotNil(t, event2)
	assert.True(t, event2.replayLast)
}

func TestCallbackEvent_Listen_Notify_Basic(t *testing.T) {
	event := NewCallbackEvent[string](false)

	var mu sync.Mutex
	received := make([]string, 0)
	unregister := event.Listen(func(v string) {
		mu.Lock()
		received = append(received, v)
		mu.Unlock()
	})

	assert.Equal(t, 1, event.ListenerCount())

	event.Notify("test1")
	event.Notify("test2")

	mu.Lock()
	assert.Equal(t, []string{"test1", "test2"}, received)
	mu.Unlock()

	unregister()
	assert.Equal(t, 0, event.ListenerCount())

	event.Notify("test3")

	mu.Lock()
	assert.Equal(t, 2, len(received))
	mu.Unlock()
}

func TestCallbackEvent_MultipleListeners(t *testing.T) {
	event := NewCallbackEvent[int](false)

	var count1, count2 int
	unregister1 := event.Listen(func(int) { count1++ })
	unregister2 := event.Listen(func(int) { count2++ })

	assert.Equal(t, 2, event.ListenerCount())

	event.Notify(42)
	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)

	unregister1()
	event.Notify(43)
	assert.Equal(t, 1, count1)
	assert.Equal(t, 2, count2)

	unregister2()
	assert.Equal(t, 0, event.ListenerCount())
}

func TestCallbackEvent_ReplayLast(t *testing.T) {
	event := NewCallbackEvent[string](true)

	// No value notified yet: listener is not invoked on registration
	var earlyCalls int
	unregisterEarly := event.Listen(func(string) { earlyCalls++ })
	assert.Equal(t, 0, earlyCalls)
	unregisterEarly()

	event.Notify("current")

	// A new listener is immediately invoked with the most recent value
	var got string
	defer event.Listen(func(v string) { got = v })()
	assert.Equal(t, "current", got)
}

func TestCallbackEvent_NoReplayWhenDisabled(t *testing.T) {
	event := NewCallbackEvent[string](false)
	event.Notify("before")

	var calls int
	defer event.Listen(func(string) { calls++ })()
	assert.Equal(t, 0, calls)
}

func TestCallbackEvent_NilCallbackPanics(t *testing.T) {
	event := NewCallbackEvent[int](false)
	assert.Panics(t, func() {
		event.Listen(nil)
	})
}

func TestCallbackEvent_ConcurrentNotify(t *testing.T) {
	event := NewCallbackEvent[int](false)

	var mu sync.Mutex
	var count int
	defer event.Listen(func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				event.Notify(j)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	assert.Equal(t, 500, count)
	mu.Unlock()
}
