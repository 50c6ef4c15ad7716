package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannelEvent(t *testing.T) {
	event := NewChannelEvent[string](false)
	require.NotNil(t, event)
	assert.Equal(t, 0, event.ListenerCount())
	assert.False(t, event.replayLast)

	event2 := NewChannelEvent[int](true)
	require.NotNil(t, event2)
	assert.True(t, event2.replayLast)
}

func TestChannelEvent_Listen_Notify_Basic(t *testing.T) {
	event := NewChannelEvent[string](false)

	ch := make(chan string, 10)
	unregister := event.Listen(ch)

	assert.Equal(t, 1, event.ListenerCount())

	event.Notify("test1")
	event.Notify("test2")

	received := make([]string, 0)
	for len(received) < 2 {
		select {
		case val := <-ch:
			received = append(received, val)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("Timeout waiting for events")
		}
	}

	assert.Equal(t, []string{"test1", "test2"}, received)

	unregister()
	assert.Equal(t, 0, event.ListenerCount())

	event.Notify("test3")

	// Should not receive test3 since listener was removed
	select {
	case val := <-ch:
		t.Errorf("Unexpected value received after unregister: %s", val)
	default:
		// Expected - no value should be received
	}
}

func TestChannelEvent_MultipleListeners(t *testing.T) {
	event := NewChannelEvent[int](false)

	ch1 := make(chan int, 10)
	ch2 := make(chan int, 10)
	unregister1 := event.Listen(ch1)
	unregister2 := event.Listen(ch2)

	assert.Equal(t, 2, event.ListenerCount())

	event.Notify(42)

	select {
	case val := <-ch1:
		assert.Equal(t, 42, val)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for ch1")
	}
	select {
	case val := <-ch2:
		assert.Equal(t, 42, val)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for ch2")
	}

	unregister1()
	assert.Equal(t, 1, event.ListenerCount())

	event.Notify(100)
	select {
	case val := <-ch2:
		assert.Equal(t, 100, val)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for ch2 after unregister1")
	}
	select {
	case val := <-ch1:
		t.Errorf("Unexpected value on unregistered channel: %d", val)
	default:
	}

	unregister2()
	assert.Equal(t, 0, event.ListenerCount())
}

func TestChannelEvent_ReplayLast(t *testing.T) {
	event := NewChannelEvent[string](true)

	// No value notified yet: late listener receives nothing
	early := make(chan string, 1)
	unregisterEarly := event.Listen(early)
	select {
	case val := <-early:
		t.Errorf("Unexpected replay before any Notify: %s", val)
	default:
	}
	unregisterEarly()

	event.Notify("current")

	// A new listener immediately receives the most recent value
	late := make(chan string, 1)
	defer event.Listen(late)()
	select {
	case val := <-late:
		assert.Equal(t, "current", val)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for replayed value")
	}
}

func TestChannelEvent_NoReplayWhenDisabled(t *testing.T) {
	event := NewChannelEvent[string](false)
	event.Notify("before")

	ch := make(chan string, 1)
	defer event.Listen(ch)()

	select {
	case val := <-ch:
		t.Errorf("Unexpected replay with replayLast disabled: %s", val)
	default:
	}
}

func TestChannelEvent_FullChannelDoesNotBlock(t *testing.T) {
	event := NewChannelEvent[int](false)

	full := make(chan int) // unbuffered, nobody reading
	defer event.Listen(full)()

	done := make(chan struct{})
	go func() {
		event.Notify(1)
		close(done)
	}()

	select {
	case <-done:
		// Notify returned despite the blocked subscriber
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full channel")
	}
}

func TestChannelEvent_NilChannelPanics(t *testing.T) {
	event := NewChannelEvent[int](false)
	assert.Panics(t, func() {
		event.Listen(nil)
	})
}

func TestChannelEvent_ConcurrentNotify(t *testing.T) {
	event := NewChannelEvent[int](false)

	ch := make(chan int, 1000)
	defer event.Listen(ch)()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				event.Notify(n*100 + j)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 500, len(ch))
}
