package timer

import (
	"context"
	"log"
	"sync"

	"github.com/akram0zaki/repcue-sub002/internal/events"
	"github.com/akram0zaki/repcue-sub002/internal/go_func_utils"
)

// UIState holds the current state of the UI that views need to render
type UIState struct {
	Mode UIMode
}

// UIModel is the single source of truth the views render from. The
// engine publishes timer snapshots into it; views only ever listen.
type UIModel struct {
	logEvent              *events.ChannelEvent[string]
	closeApplicationEvent *events.ChannelEvent[struct{}]
	uiStateEvent          *events.ChannelEvent[UIState]
	uiState               UIState
	timerStateEvent       *events.ChannelEvent[TimerState]
	timerState            TimerState
	cueEvent              *events.ChannelEvent[Cue]

	logLines []string
	logMu    sync.RWMutex
	mu       sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	logger   *log.Logger
}

const maxLogLines = 1000

// NewUIModel creates a UIModel. uiLogChan carries the application log
// lines that the log pane renders.
func NewUIModel(logger *log.Logger, uiLogChan <-chan string) *UIModel {
	if logger == nil {
		panic("UIModel: logger cannot be nil")
	}
	if uiLogChan == nil {
		panic("UIModel: uiLogChan cannot be nil")
	}
	ctx, cancel := context.WithCancel(context.Background())
	model := &UIModel{
		logEvent:              events.NewChannelEvent[string](false),
		closeApplicationEvent: events.NewChannelEvent[struct{}](true),
		uiStateEvent:          events.NewChannelEvent[UIState](true),
		uiState:               UIState{Mode: UIModeExerciseSelection},
		timerStateEvent:       events.NewChannelEvent[TimerState](true),
		timerState:            TimerState{Phase: PhaseIdle},
		cueEvent:              events.NewChannelEvent[Cue](false),
		logLines:              make([]string, 0, maxLogLines),
		ctx:                   ctx,
		cancel:                cancel,
		logger:                logger,
	}

	// Read from the UI log channel and populate logLines
	model.wg.Add(1)
	go_func_utils.SafeGo(model.logger, func() { model.readFromLogChannel(ctx, uiLogChan) })

	return model
}

// Shutdown stops all goroutines and waits for them to finish
func (m *UIModel) Shutdown() {
	m.logger.Println("UIModel: Shutting down")
	m.cancel()
	m.wg.Wait()
	m.logger.Println("UIModel: Shutdown complete")
}

// ListenToLog registers a channel to receive log messages
// Returns a deregistration function that can be called to remove the listener
func (m *UIModel) ListenToLog(ch chan<- string) func() {
	return m.logEvent.Listen(ch)
}

// ListenToCloseApplication registers a channel to receive close application signals
// Returns a deregistration function that can be called to remove the listener
func (m *UIModel) ListenToCloseApplication(ch chan<- struct{}) func() {
	return m.closeApplicationEvent.Listen(ch)
}

// RequestCloseApplication signals that the application should close
func (m *UIModel) RequestCloseApplication() {
	m.closeApplicationEvent.Notify(struct{}{})
}

// ListenToUIState registers a channel to receive UI state changes
// Returns a deregistration function that can be called to remove the listener
func (m *UIModel) ListenToUIState(ch chan<- UIState) func() {
	return m.uiStateEvent.Listen(ch)
}

// GetUIState returns the current UI state
func (m *UIModel) GetUIState() UIState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.uiState
}

// SetMode updates the current UI mode and notifies listeners
func (m *UIModel) SetMode(mode UIMode) {
	m.mu.Lock()
	if m.uiState.Mode == mode {
		m.mu.Unlock()
		return
	}
	m.uiState.Mode = mode
	state := m.uiState
	m.mu.Unlock()

	m.uiStateEvent.Notify(state)
}

// ListenToTimerState registers a channel to receive timer snapshots
// Returns a deregistration function that can be called to remove the listener
func (m *UIModel) ListenToTimerState(ch chan<- TimerState) func() {
	return m.timerStateEvent.Listen(ch)
}

// GetTimerState returns the most recently published timer snapshot
func (m *UIModel) GetTimerState() TimerState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timerState
}

// SetTimerState stores a timer snapshot and notifies listeners
func (m *UIModel) SetTimerState(state TimerState) {
	m.mu.Lock()
	m.timerState = state
	m.mu.Unlock()

	m.timerStateEvent.Notify(state)
}

// ListenToCue registers a channel to receive cue notifications, used
// by views for transient flashes.
// Returns a deregistration function that can be called to remove the listener
func (m *UIModel) ListenToCue(ch chan<- Cue) func() {
	return m.cueEvent.Listen(ch)
}

// NotifyCue forwards a cue to view listeners
func (m *UIModel) NotifyCue(cue Cue) {
	m.cueEvent.Notify(cue)
}

// readFromLogChannel reads log lines from the channel and populates logLines
func (m *UIModel) readFromLogChannel(ctx context.Context, logChan <-chan string) {
	defer m.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-logChan:
			if !ok {
				// Channel closed
				return
			}

			// Store in log lines buffer (max 1000 lines)
			m.logMu.Lock()
			m.logLines = append(m.logLines, line)
			if len(m.logLines) > maxLogLines {
				// Remove oldest lines, keep the most recent maxLogLines
				m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
			}
			m.logMu.Unlock()

			// Notify listeners for immediate display
			m.logEvent.Notify(line)
		}
	}
}

// GetLogTail returns the last n lines of logs
func (m *UIModel) GetLogTail(n int) []string {
	m.logMu.RLock()
	defer m.logMu.RUnlock()

	if n <= 0 {
		return []string{}
	}

	if n >= len(m.logLines) {
		result := make([]string, len(m.logLines))
		copy(result, m.logLines)
		return result
	}

	result := make([]string, n)
	copy(result, m.logLines[len(m.logLines)-n:])
	return result
}
