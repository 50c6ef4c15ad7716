package timer

import (
	"log"
	"time"

	"github.com/akram0zaki/repcue-sub002/internal/events"
	"github.com/akram0zaki/repcue-sub002/internal/go_func_utils"
)

// AudioSink plays a short audio cue. Implementations are best-effort;
// a returned error is logged by the dispatcher and otherwise ignored.
type AudioSink interface {
	PlayCue(kind CueKind, volume float64) error
}

// HapticSink triggers a vibration pattern
type HapticSink interface {
	Vibrate(pattern []time.Duration) error
}

// WakeLock keeps the display awake while a session is active
type WakeLock interface {
	Acquire() error
	Release() error
}

// CueDispatcher translates engine transitions into fire-and-forget
// requests toward the audio, haptic and wake-lock sinks. Sink failures
// never propagate back into the engine; they are logged and dropped.
// Sinks may be nil, which disables that channel entirely.
type CueDispatcher struct {
	audio    AudioSink
	haptic   HapticSink
	wakeLock WakeLock
	settings Settings
	logger   *log.Logger

	// Synchronous observation stream, used by the UI and tests. The
	// sinks themselves are invoked asynchronously.
	cueEvent *events.CallbackEvent[Cue]
}

// NewCueDispatcher creates a CueDispatcher. Any sink may be nil.
func NewCueDispatcher(audio AudioSink, haptic HapticSink, wakeLock WakeLock, settings Settings, logger *log.Logger) *CueDispatcher {
	if logger == nil {
		panic("CueDispatcher: logger cannot be nil")
	}
	return &CueDispatcher{
		audio:    audio,
		haptic:   haptic,
		wakeLock: wakeLock,
		settings: settings,
		logger:   logger,
		cueEvent: events.NewCallbackEvent[Cue](false),
	}
}

// ListenToCues registers a callback observing every dispatched cue.
// Returns a deregistration function.
func (d *CueDispatcher) ListenToCues(callback func(Cue)) func() {
	return d.cueEvent.Listen(callback)
}

// Dispatch fires a cue toward the configured sinks and notifies
// observers. It never blocks on the sinks and never returns an error.
func (d *CueDispatcher) Dispatch(kind CueKind) {
	cue := Cue{Kind: kind, At: time.Now()}
	d.cueEvent.Notify(cue)

	info, ok := GetCueInfo(kind)
	if !ok {
		d.logger.Printf("CueDispatcher: unknown cue kind %q", kind)
		return
	}

	if d.settings.SoundEnabled && d.audio != nil {
		audio := d.audio
		volume := d.settings.Volume
		go_func_utils.SafeGo(d.logger, func() {
			if err := audio.PlayCue(kind, volume); err != nil {
				d.logger.Printf("CueDispatcher: audio cue %s failed: %v", kind, err)
			}
		})
	}

	if d.settings.VibrationEnabled && d.haptic != nil && len(info.VibratePattern) > 0 {
		haptic := d.haptic
		pattern := info.VibratePattern
		go_func_utils.SafeGo(d.logger, func() {
			if err := haptic.Vibrate(pattern); err != nil {
				d.logger.Printf("CueDispatcher: haptic cue %s failed: %v", kind, err)
			}
		})
	}
}

// AcquireWakeLock requests the wake lock, best effort
func (d *CueDispatcher) AcquireWakeLock() {
	if d.wakeLock == nil {
		return
	}
	wakeLock := d.wakeLock
	go_func_utils.SafeGo(d.logger, func() {
		if err := wakeLock.Acquire(); err != nil {
			d.logger.Printf("CueDispatcher: wake lock acquire failed: %v", err)
		}
	})
}

// ReleaseWakeLock releases the wake lock, best effort
func (d *CueDispatcher) ReleaseWakeLock() {
	if d.wakeLock == nil {
		return
	}
	wakeLock := d.wakeLock
	go_func_utils.SafeGo(d.logger, func() {
		if err := wakeLock.Release(); err != nil {
			d.logger.Printf("CueDispatcher: wake lock release failed: %v", err)
		}
	})
}
