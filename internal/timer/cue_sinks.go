package timer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Host-local sink implementations. These are the thin adapter layer
// between the dispatcher and whatever the terminal actually supports:
// the bell is the audio channel, vibration has no terminal analog and
// is logged, and the wake lock tracks held state for hosts that honor
// inhibition.

// BellAudioSink plays cues through the terminal bell of a tcell
// screen. Volume is accepted for interface compatibility; the bell has
// no volume control.
type BellAudioSink struct {
	mu     sync.Mutex
	screen tcell.Screen
	logger *log.Logger
}

// NewBellAudioSink creates a BellAudioSink. The screen may be set
// later, once the UI has initialized it.
func NewBellAudioSink(logger *log.Logger) *BellAudioSink {
	if logger == nil {
		panic("BellAudioSink: logger cannot be nil")
	}
	return &BellAudioSink{logger: logger}
}

// SetScreen attaches the tcell screen used to ring the bell
func (s *BellAudioSink) SetScreen(screen tcell.Screen) {
	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
}

// PlayCue rings the terminal bell for the given cue
func (s *BellAudioSink) PlayCue(kind CueKind, volume float64) error {
	if volume <= 0 {
		return nil
	}
	s.mu.Lock()
	screen := s.screen
	s.mu.Unlock()
	if screen == nil {
		return fmt.Errorf("audio unavailable: no screen attached")
	}
	return screen.Beep()
}

// LogHapticSink records vibration requests in the log. Terminals have
// no vibration motor; keeping the sink wired preserves the dispatch
// path for hosts that do.
type LogHapticSink struct {
	logger *log.Logger
}

// NewLogHapticSink creates a LogHapticSink
func NewLogHapticSink(logger *log.Logger) *LogHapticSink {
	if logger == nil {
		panic("LogHapticSink: logger cannot be nil")
	}
	return &LogHapticSink{logger: logger}
}

// Vibrate logs the requested pattern
func (s *LogHapticSink) Vibrate(pattern []time.Duration) error {
	s.logger.Printf("Haptic: vibrate %v", pattern)
	return nil
}

// ScreenWakeLock tracks the session wake lock. The terminal itself
// never sleeps, but held state drives re-acquisition when the host
// regains foreground visibility while a session is still running.
type ScreenWakeLock struct {
	mu     sync.Mutex
	held   bool
	logger *log.Logger
}

// NewScreenWakeLock creates a ScreenWakeLock
func NewScreenWakeLock(logger *log.Logger) *ScreenWakeLock {
	if logger == nil {
		panic("ScreenWakeLock: logger cannot be nil")
	}
	return &ScreenWakeLock{logger: logger}
}

// Acquire marks the wake lock held
func (w *ScreenWakeLock) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.held {
		w.held = true
		w.logger.Printf("WakeLock: acquired")
	}
	return nil
}

// Release marks the wake lock free
func (w *ScreenWakeLock) Release() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.held {
		w.held = false
		w.logger.Printf("WakeLock: released")
	}
	return nil
}

// Held reports whether the lock is currently held
func (w *ScreenWakeLock) Held() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.held
}
