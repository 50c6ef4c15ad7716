package timer

import (
	"log"
	"sync"

	"github.com/akram0zaki/repcue-sub002/internal/go_func_utils"
)

// VideoPlayer abstracts the demonstration-video backend. Implementations
// must tolerate Pause without a preceding Play.
type VideoPlayer interface {
	// Prefetch warms the player's cache for a clip so a later Play
	// starts without a stall.
	Prefetch(url string) error
	// Play starts (or restarts) looping playback of a clip.
	Play(url string) error
	// Pause halts playback, keeping the current clip loaded.
	Pause() error
}

// MediaCoordinator drives the demonstration video off the engine's
// phase stream: play while the athlete is actively moving, pause
// everywhere else, and prefetch the upcoming clip during Countdown
// and rest periods. Timer correctness never depends on it - player
// errors are logged and swallowed.
type MediaCoordinator struct {
	player   VideoPlayer
	catalog  *Catalog
	settings Settings
	logger   *log.Logger

	mu         sync.Mutex
	currentURL string
	playing    bool

	phaseChan   chan PhaseChange
	unsubscribe func()
	doneChan    chan struct{}
	wg          sync.WaitGroup
	stopOnce    sync.Once
}

// NewMediaCoordinatorArgs holds the dependencies of a MediaCoordinator
type NewMediaCoordinatorArgs struct {
	Player   VideoPlayer
	Engine   *TimerEngine
	Catalog  *Catalog
	Settings Settings
	Logger   *log.Logger
}

// NewMediaCoordinator creates a MediaCoordinator, subscribes it to the
// engine's phase stream and starts its consumer goroutine.
func NewMediaCoordinator(args NewMediaCoordinatorArgs) *MediaCoordinator {
	if args.Player == nil {
		panic("MediaCoordinator: player cannot be nil")
	}
	if args.Engine == nil {
		panic("MediaCoordinator: engine cannot be nil")
	}
	if args.Catalog == nil {
		panic("MediaCoordinator: catalog cannot be nil")
	}
	if args.Logger == nil {
		panic("MediaCoordinator: logger cannot be nil")
	}

	c := &MediaCoordinator{
		player:    args.Player,
		catalog:   args.Catalog,
		settings:  args.Settings,
		logger:    args.Logger,
		phaseChan: make(chan PhaseChange, 16),
		doneChan:  make(chan struct{}),
	}
	c.unsubscribe = args.Engine.ListenToPhaseChanges(c.phaseChan)

	c.wg.Add(1)
	go_func_utils.SafeGo(c.logger, func() { c.run() })
	return c
}

// Shutdown unsubscribes from the phase stream and stops the consumer
// goroutine. Safe to call multiple times.
func (c *MediaCoordinator) Shutdown() {
	c.stopOnce.Do(func() {
		c.unsubscribe()
		close(c.doneChan)
		c.wg.Wait()
		c.logger.Printf("MediaCoordinator: shutdown complete")
	})
}

func (c *MediaCoordinator) run() {
	defer c.wg.Done()
	for {
		select {
		case <-c.doneChan:
			return
		case pc := <-c.phaseChan:
			c.handlePhaseChange(pc)
		}
	}
}

func (c *MediaCoordinator) handlePhaseChange(pc PhaseChange) {
	if !c.settings.ShowExerciseVideos {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch pc.Phase {
	case PhaseRunning:
		if !pc.IsActiveMovement {
			c.pauseLocked()
			return
		}
		url, ok := c.catalog.VideoURLFor(pc.ActiveExerciseID)
		if !ok {
			c.pauseLocked()
			return
		}
		if c.playing && c.currentURL == url {
			return
		}
		if err := c.player.Play(url); err != nil {
			c.logger.Printf("MediaCoordinator: play failed for %s: %v", pc.ActiveExerciseID, err)
			return
		}
		c.currentURL = url
		c.playing = true
		c.logger.Printf("MediaCoordinator: playing video for %s", pc.ActiveExerciseID)

	case PhaseCountdown, PhaseResting:
		c.pauseLocked()
		if pc.NextExerciseID == "" {
			return
		}
		url, ok := c.catalog.VideoURLFor(pc.NextExerciseID)
		if !ok || url == c.currentURL {
			return
		}
		if err := c.player.Prefetch(url); err != nil {
			c.logger.Printf("MediaCoordinator: prefetch failed for %s: %v", pc.NextExerciseID, err)
			return
		}
		c.logger.Printf("MediaCoordinator: prefetched video for %s", pc.NextExerciseID)

	default:
		c.pauseLocked()
	}
}

func (c *MediaCoordinator) pauseLocked() {
	if !c.playing {
		return
	}
	if err := c.player.Pause(); err != nil {
		c.logger.Printf("MediaCoordinator: pause failed: %v", err)
	}
	c.playing = false
}

// LogVideoPlayer is the terminal backend for demonstration videos. A
// text UI cannot render video, so it reports what a real player would
// be doing through the application log.
type LogVideoPlayer struct {
	logger *log.Logger
}

// NewLogVideoPlayer creates a LogVideoPlayer
func NewLogVideoPlayer(logger *log.Logger) *LogVideoPlayer {
	if logger == nil {
		panic("LogVideoPlayer: logger cannot be nil")
	}
	return &LogVideoPlayer{logger: logger}
}

func (p *LogVideoPlayer) Prefetch(url string) error {
	p.logger.Printf("Video: prefetch %s", url)
	return nil
}

func (p *LogVideoPlayer) Play(url string) error {
	p.logger.Printf("Video: play %s", url)
	return nil
}

func (p *LogVideoPlayer) Pause() error {
	p.logger.Printf("Video: pause")
	return nil
}
