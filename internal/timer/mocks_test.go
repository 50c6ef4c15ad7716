package timer

import (
	"sync"
	"time"
)

// recordingAudioSink captures every audio cue played
type recordingAudioSink struct {
	mu    sync.Mutex
	cues  []CueKind
	err   error
}

func (s *recordingAudioSink) PlayCue(kind CueKind, volume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cues = append(s.cues, kind)
	return s.err
}

func (s *recordingAudioSink) played() []CueKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]CueKind, len(s.cues))
	copy(result, s.cues)
	return result
}

// recordingHapticSink captures every vibration pattern requested
type recordingHapticSink struct {
	mu       sync.Mutex
	patterns [][]time.Duration
	err      error
}

func (s *recordingHapticSink) Vibrate(pattern []time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns = append(s.patterns, pattern)
	return s.err
}

func (s *recordingHapticSink) vibrations() [][]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([][]time.Duration, len(s.patterns))
	copy(result, s.patterns)
	return result
}

// recordingWakeLock counts acquire/release calls
type recordingWakeLock struct {
	mu       sync.Mutex
	acquires int
	releases int
}

func (w *recordingWakeLock) Acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.acquires++
	return nil
}

func (w *recordingWakeLock) Release() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.releases++
	return nil
}

func (w *recordingWakeLock) counts() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.acquires, w.releases
}

// recordingVideoPlayer captures player calls in order
type recordingVideoPlayer struct {
	mu         sync.Mutex
	prefetched []string
	played     []string
	pauses     int
}

func (p *recordingVideoPlayer) Prefetch(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefetched = append(p.prefetched, url)
	return nil
}

func (p *recordingVideoPlayer) Play(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, url)
	return nil
}

func (p *recordingVideoPlayer) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauses++
	return nil
}

func (p *recordingVideoPlayer) snapshot() (prefetched, played []string, pauses int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prefetched = append([]string(nil), p.prefetched...)
	played = append([]string(nil), p.played...)
	return prefetched, played, p.pauses
}

// recordingActivityRecorder captures emitted activity records
type recordingActivityRecorder struct {
	mu      sync.Mutex
	records []ActivityRecord
	err     error
}

func (r *recordingActivityRecorder) Record(record ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return r.err
}

func (r *recordingActivityRecorder) recorded() []ActivityRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]ActivityRecord, len(r.records))
	copy(result, r.records)
	return result
}
