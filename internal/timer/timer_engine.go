package timer

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/akram0zaki/repcue-sub002/internal/events"
	"github.com/akram0zaki/repcue-sub002/internal/go_func_utils"
)

// TimerEngine owns the five-phase lifecycle for a single exercise
// unit and sequences units across a workout. It is the single writer
// of TimerState; the UI and downstream consumers only ever see
// snapshots and phase-change events.
//
// Elapsed time is always derived from a wall-clock read against the
// phase start, never from accumulated per-tick deltas, so tick jitter
// cannot drift the clock.
type TimerEngine struct {
	model    *UIModel
	cues     *CueDispatcher
	recorder ActivityRecorder
	catalog  *Catalog
	settings Settings
	logger   *log.Logger

	// Engine state (protected by mu)
	mu                 sync.RWMutex
	phase              TimerPhase
	exercise           *Exercise
	selectedDuration   int // user override for time-based units, 0 = default
	targetTime         float64
	countdownRemaining int
	phaseStart         time.Time
	currentTime        float64
	lastWholeSecond    int
	lastIntervalCue    int
	currentRep         int
	totalReps          int
	currentSet         int
	totalSets          int
	restRemaining      float64
	resting            restKind
	workout            *WorkoutRuntime

	phaseEvent *events.ChannelEvent[PhaseChange]

	now func() time.Time // injectable clock

	// Goroutine management
	cadenceChan  chan time.Duration
	doneChan     chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewTimerEngineArgs holds the dependencies of a TimerEngine
type NewTimerEngineArgs struct {
	Model    *UIModel
	Cues     *CueDispatcher
	Recorder ActivityRecorder // optional
	Catalog  *Catalog
	Settings Settings
	Logger   *log.Logger
}

// NewTimerEngine creates a TimerEngine and starts its tick goroutine
func NewTimerEngine(args NewTimerEngineArgs) *TimerEngine {
	e := newTimerEngine(args)
	e.wg.Add(1)
	go_func_utils.SafeGo(e.logger, func() { e.runTickLoop() })
	return e
}

// newTimerEngine builds the engine without starting the tick
// goroutine. Tests drive handleTick directly with a fake clock.
func newTimerEngine(args NewTimerEngineArgs) *TimerEngine {
	if args.Model == nil {
		panic("TimerEngine: model cannot be nil")
	}
	if args.Cues == nil {
		panic("TimerEngine: cue dispatcher cannot be nil")
	}
	if args.Catalog == nil {
		panic("TimerEngine: catalog cannot be nil")
	}
	if args.Logger == nil {
		panic("TimerEngine: logger cannot be nil")
	}
	return &TimerEngine{
		model:       args.Model,
		cues:        args.Cues,
		recorder:    args.Recorder,
		catalog:     args.Catalog,
		settings:    args.Settings,
		logger:      args.Logger,
		phase:       PhaseIdle,
		phaseEvent:  events.NewChannelEvent[PhaseChange](true),
		now:         time.Now,
		cadenceChan: make(chan time.Duration, 1),
		doneChan:    make(chan struct{}),
	}
}

// Shutdown stops the tick goroutine and waits for it to finish.
// Safe to call multiple times - only the first call has effect.
func (e *TimerEngine) Shutdown() {
	e.shutdownOnce.Do(func() {
		e.logger.Printf("TimerEngine: shutting down")
		close(e.doneChan)
		e.wg.Wait()
		e.logger.Printf("TimerEngine: shutdown complete")
	})
}

// ListenToPhaseChanges registers a channel to receive phase/index
// transitions. Returns a deregistration function. New listeners
// immediately receive the most recent transition.
func (e *TimerEngine) ListenToPhaseChanges(ch chan<- PhaseChange) func() {
	return e.phaseEvent.Listen(ch)
}

// Snapshot returns the current TimerState
func (e *TimerEngine) Snapshot() TimerState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buildStateLocked()
}

// SelectExercise loads a single exercise for the next session.
// Ignored while a session is active.
func (e *TimerEngine) SelectExercise(id ExerciseID) {
	e.mu.Lock()
	if e.activeLocked() {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: cannot select exercise while a session is active")
		return
	}
	ex := e.catalog.ExerciseByID(id)
	e.workout = nil
	e.selectedDuration = 0
	e.phase = PhaseIdle
	e.loadUnitLocked(ex, 0, 0, 0)
	e.logger.Printf("TimerEngine: exercise selected: %s", ex.Name)
	state := e.buildStateLocked()
	e.mu.Unlock()

	e.model.SetTimerState(state)
}

// SelectWorkout loads a workout for the next session. Unknown or
// empty workouts are ignored. Ignored while a session is active.
func (e *TimerEngine) SelectWorkout(id WorkoutID) {
	e.mu.Lock()
	if e.activeLocked() {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: cannot select workout while a session is active")
		return
	}
	w, ok := e.catalog.WorkoutByID(id)
	if !ok || len(w.Exercises) == 0 {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: workout %q not selectable", id)
		return
	}
	exercises := make([]WorkoutExercise, len(w.Exercises))
	copy(exercises, w.Exercises)
	e.workout = &WorkoutRuntime{
		WorkoutID:   w.ID,
		WorkoutName: w.Name,
		Exercises:   exercises,
	}
	e.selectedDuration = 0
	e.phase = PhaseIdle
	e.loadWorkoutIndexLocked()
	e.logger.Printf("TimerEngine: workout selected: %s (%d exercises)", w.Name, len(exercises))
	state := e.buildStateLocked()
	e.mu.Unlock()

	e.model.SetTimerState(state)
}

// SelectDuration overrides the duration of the selected time-based
// exercise. Clamped to the valid range; ignored while active or for
// repetition-based exercises.
func (e *TimerEngine) SelectDuration(seconds int) {
	e.mu.Lock()
	if e.activeLocked() {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: cannot change duration while a session is active")
		return
	}
	if e.exercise == nil || e.exercise.Type != ExerciseTypeTimeBased {
		e.mu.Unlock()
		return
	}
	if seconds < MinDurationSeconds {
		seconds = MinDurationSeconds
	} else if seconds > MaxDurationSeconds {
		seconds = MaxDurationSeconds
	}
	e.selectedDuration = seconds
	e.targetTime = float64(seconds)
	state := e.buildStateLocked()
	e.mu.Unlock()

	e.model.SetTimerState(state)
}

// Start begins a session for the selected exercise or workout,
// entering Countdown when pre_timer_countdown is configured.
func (e *TimerEngine) Start() {
	e.mu.Lock()
	if e.activeLocked() {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: already running")
		return
	}
	if e.exercise == nil && e.workout == nil {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: no exercise selected")
		return
	}

	fx := &engineEffects{acquireWake: true}
	if e.workout != nil {
		e.workout.CurrentExerciseIndex = 0
		e.loadWorkoutIndexLocked()
	} else {
		ex := *e.exercise
		e.loadUnitLocked(ex, e.selectedDuration, 0, 0)
	}

	if e.settings.PreTimerCountdown > 0 {
		e.phase = PhaseCountdown
		e.countdownRemaining = e.settings.PreTimerCountdown
		fx.phaseChange = e.phaseChangeLocked()
		e.setCadenceLocked(fx)
	} else {
		e.beginRunningLocked(e.now(), fx)
	}
	e.logger.Printf("TimerEngine: session started: %s", e.exercise.Name)
	state := e.buildStateLocked()
	fx.state = &state
	e.mu.Unlock()

	e.apply(fx)
}

// Stop ends the session. With isCompletion the unit counts as
// completed and a record is emitted with the sets/reps actually done;
// without it the session is simply cancelled. Stop during Countdown is
// always a cancel.
func (e *TimerEngine) Stop(isCompletion bool) {
	e.mu.Lock()
	if e.phase == PhaseIdle {
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: nothing to stop")
		return
	}
	fx := &engineEffects{releaseWake: true}
	if isCompletion && e.phase != PhaseCountdown && e.phase != PhaseCompleted {
		fx.records = append(fx.records, e.completionRecordLocked(e.now(), false))
		fx.cues = append(fx.cues, CueExerciseComplete)
	}
	e.phase = PhaseIdle
	e.resting = restNone
	e.restRemaining = 0
	fx.phaseChange = e.phaseChangeLocked()
	e.setCadenceLocked(fx)
	e.logger.Printf("TimerEngine: session stopped (completion=%v)", isCompletion)
	state := e.buildStateLocked()
	fx.state = &state
	e.mu.Unlock()

	e.apply(fx)
}

// Reset unconditionally returns the engine to Idle: counters zeroed,
// workout cleared, pending ticks disarmed. The selected exercise is
// kept so the session can be started again.
func (e *TimerEngine) Reset() {
	e.mu.Lock()
	fx := &engineEffects{releaseWake: true}
	e.phase = PhaseIdle
	e.workout = nil
	e.countdownRemaining = 0
	e.restRemaining = 0
	e.resting = restNone
	if e.exercise != nil {
		ex := *e.exercise
		e.loadUnitLocked(ex, e.selectedDuration, 0, 0)
	} else {
		e.currentTime = 0
		e.targetTime = 0
		e.currentRep, e.totalReps, e.currentSet, e.totalSets = 0, 0, 0, 0
	}
	fx.phaseChange = e.phaseChangeLocked()
	e.setCadenceLocked(fx)
	e.logger.Printf("TimerEngine: reset")
	state := e.buildStateLocked()
	fx.state = &state
	e.mu.Unlock()

	e.apply(fx)
}

// SkipExercise completes the current unit as if it had naturally
// finished its final rep or second, preserving the normal rest and
// advance rules. During rest it ends the rest period immediately.
func (e *TimerEngine) SkipExercise() {
	e.mu.Lock()
	fx := &engineEffects{}
	now := e.now()
	switch e.phase {
	case PhaseRunning:
		if e.exercise != nil && e.exercise.Type == ExerciseTypeRepetitionBased {
			e.currentRep = e.totalReps
			if e.totalSets > 0 {
				e.currentSet = e.totalSets - 1
			}
		} else if e.targetTime > 0 {
			e.currentTime = e.targetTime
		}
		e.completeUnitLocked(now, fx)
	case PhaseResting:
		e.restRemaining = 0
		e.finishRestLocked(now, fx)
	default:
		e.mu.Unlock()
		e.logger.Printf("TimerEngine: nothing to skip")
		return
	}
	state := e.buildStateLocked()
	fx.state = &state
	e.mu.Unlock()

	e.apply(fx)
}

// OnVisibilityRegained re-acquires the wake lock when the host
// returns to the foreground while a session is still active. The host
// may silently drop the lock while backgrounded.
func (e *TimerEngine) OnVisibilityRegained() {
	e.mu.RLock()
	active := e.activeLocked()
	e.mu.RUnlock()
	if active {
		e.logger.Printf("TimerEngine: visibility regained, re-acquiring wake lock")
		e.cues.AcquireWakeLock()
	}
}

// --- tick goroutine ---

// engineEffects collects everything a state transition wants to do
// outside the lock: publish a snapshot, dispatch cues, record
// completions, change tick cadence and manage the wake lock.
type engineEffects struct {
	state          *TimerState
	cues           []CueKind
	records        []ActivityRecord
	phaseChange    *PhaseChange
	cadence        time.Duration
	cadenceChanged bool
	acquireWake    bool
	releaseWake    bool
}

func (e *TimerEngine) runTickLoop() {
	defer e.wg.Done()

	ticker := time.NewTicker(SecondTickInterval)
	ticker.Stop() // armed only while a phase needs ticks

	for {
		select {
		case <-e.doneChan:
			ticker.Stop()
			e.logger.Printf("TimerEngine: goroutine exiting")
			return

		case cadence := <-e.cadenceChan:
			if cadence > 0 {
				ticker.Reset(cadence)
			} else {
				ticker.Stop()
			}

		case <-ticker.C:
			e.tick()
		}
	}
}

// requestCadence hands the loop a new tick cadence (0 disarms).
// Latest wins; never blocks, so it is safe from any goroutine
// including the loop itself.
func (e *TimerEngine) requestCadence(d time.Duration) {
	for {
		select {
		case e.cadenceChan <- d:
			return
		default:
			select {
			case <-e.cadenceChan:
			default:
			}
		}
	}
}

func (e *TimerEngine) tick() {
	fx := e.handleTick(e.now())
	if fx == nil {
		return
	}
	e.apply(fx)
}

// handleTick advances the state machine by one tick under lock and
// returns the effects to apply, or nil for a stale tick. A tick that
// arrives after stop/reset finds a non-tickable phase and mutates
// nothing.
func (e *TimerEngine) handleTick(now time.Time) *engineEffects {
	e.mu.Lock()
	defer e.mu.Unlock()

	fx := &engineEffects{}
	switch e.phase {
	case PhaseCountdown:
		e.countdownRemaining--
		if e.countdownRemaining < 0 {
			e.countdownRemaining = 0
		}
		fx.cues = append(fx.cues, CueCountdownTick)
		if e.countdownRemaining == 0 {
			e.beginRunningLocked(now, fx)
		}

	case PhaseRunning:
		e.tickRunningLocked(now, fx)

	case PhaseResting:
		e.restRemaining--
		if e.restRemaining == restEndingLeadSeconds {
			fx.cues = append(fx.cues, CueRestEnding)
		}
		if e.restRemaining <= 0 {
			e.restRemaining = 0
			e.finishRestLocked(now, fx)
		}

	default:
		return nil
	}

	state := e.buildStateLocked()
	fx.state = &state
	return fx
}

func (e *TimerEngine) tickRunningLocked(now time.Time, fx *engineEffects) {
	if e.exercise == nil {
		return
	}
	elapsed := now.Sub(e.phaseStart).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	if e.exercise.Type == ExerciseTypeTimeBased {
		whole := math.Floor(elapsed)
		if whole < e.currentTime {
			whole = e.currentTime // monotonic within the unit
		}
		e.currentTime = whole

		// Edge-triggered on the highest interval boundary reached, so a
		// late tick that jumps past a boundary still fires its cue once.
		secs := int(whole)
		if interval := e.settings.IntervalDuration; interval > 0 {
			boundary := secs / interval * interval
			if boundary > e.lastIntervalCue && float64(boundary) < e.targetTime {
				e.lastIntervalCue = boundary
				fx.cues = append(fx.cues, CueInterval)
			}
		}

		if e.targetTime > 0 && e.currentTime >= e.targetTime {
			e.completeUnitLocked(now, fx)
		}
		return
	}

	// Repetition-based: keep the fractional elapsed time for smooth
	// ring progress, fire the per-second cue on whole-second crossings
	// only (edge-triggered), and derive the rep count from time.
	if elapsed < e.currentTime {
		elapsed = e.currentTime
	}
	e.currentTime = elapsed

	whole := int(elapsed)
	if whole > e.lastWholeSecond && whole > 0 {
		e.lastWholeSecond = whole
		fx.cues = append(fx.cues, CueSecond)
	}

	rep := int(elapsed / e.effectiveRepDurationLocked())
	if rep > e.totalReps {
		rep = e.totalReps
	}
	if rep > e.currentRep {
		e.currentRep = rep
	}

	if e.totalReps > 0 && e.currentRep >= e.totalReps {
		if e.currentSet+1 < e.totalSets {
			fx.cues = append(fx.cues, CueSetComplete)
			e.enterRestLocked(restAfterSet, fx)
		} else {
			e.completeUnitLocked(now, fx)
		}
	}
}

// finishRestLocked handles rest expiry: resume the next set, or
// advance the workout to its next exercise.
func (e *TimerEngine) finishRestLocked(now time.Time, fx *engineEffects) {
	switch e.resting {
	case restAfterSet:
		e.currentSet++
		e.currentRep = 0
		e.beginRunningLocked(now, fx)
	case restAfterExercise:
		e.advanceExerciseLocked(now, fx)
	default:
		e.phase = PhaseIdle
		e.setCadenceLocked(fx)
	}
}

// completeUnitLocked finishes the active exercise unit: emits the
// completion record and cue, then either rests toward the next
// workout exercise or terminates the session.
func (e *TimerEngine) completeUnitLocked(now time.Time, fx *engineEffects) {
	fx.records = append(fx.records, e.completionRecordLocked(now, true))
	fx.cues = append(fx.cues, CueExerciseComplete)

	if e.workout != nil && e.workout.CurrentExerciseIndex+1 < len(e.workout.Exercises) {
		e.enterRestLocked(restAfterExercise, fx)
		return
	}

	if e.workout != nil {
		e.workout.CurrentExerciseIndex = len(e.workout.Exercises)
		fx.cues = append(fx.cues, CueWorkoutComplete)
	}
	e.phase = PhaseCompleted
	e.resting = restNone
	fx.phaseChange = e.phaseChangeLocked()
	fx.releaseWake = true
	e.setCadenceLocked(fx)
}

// advanceExerciseLocked moves the workout to its next exercise and
// re-enters Countdown (when configured) or Running.
func (e *TimerEngine) advanceExerciseLocked(now time.Time, fx *engineEffects) {
	e.workout.CurrentExerciseIndex++
	e.loadWorkoutIndexLocked()
	if e.settings.PreTimerCountdown > 0 {
		e.phase = PhaseCountdown
		e.countdownRemaining = e.settings.PreTimerCountdown
		fx.phaseChange = e.phaseChangeLocked()
		e.setCadenceLocked(fx)
	} else {
		e.beginRunningLocked(now, fx)
	}
}

// beginRunningLocked enters the main Running phase with a fresh
// phase-start clock read.
func (e *TimerEngine) beginRunningLocked(now time.Time, fx *engineEffects) {
	e.phase = PhaseRunning
	e.phaseStart = now
	e.currentTime = 0
	e.lastWholeSecond = 0
	e.lastIntervalCue = 0
	e.resting = restNone
	e.restRemaining = 0
	fx.phaseChange = e.phaseChangeLocked()
	e.setCadenceLocked(fx)
}

func (e *TimerEngine) enterRestLocked(kind restKind, fx *engineEffects) {
	e.phase = PhaseResting
	e.resting = kind
	e.restRemaining = RestTimeBetweenSets
	fx.phaseChange = e.phaseChangeLocked()
	e.setCadenceLocked(fx)
}

// loadWorkoutIndexLocked resolves the active workout entry into the
// engine's unit fields, applying per-entry overrides over catalog
// defaults.
func (e *TimerEngine) loadWorkoutIndexLocked() {
	we := e.workout.Exercises[e.workout.CurrentExerciseIndex]
	ex := e.catalog.ExerciseByID(we.ExerciseID)
	e.loadUnitLocked(ex, we.Duration, we.Sets, we.Reps)
}

// loadUnitLocked installs ex as the active unit, zeroing per-unit
// counters. Zero-valued overrides fall through to the exercise's
// defaults and then to the catalog-wide safe defaults.
func (e *TimerEngine) loadUnitLocked(ex Exercise, durationOverride, setsOverride, repsOverride int) {
	e.exercise = &ex
	e.currentRep = 0
	e.currentSet = 0
	e.currentTime = 0
	e.lastWholeSecond = 0
	e.lastIntervalCue = 0

	if ex.Type == ExerciseTypeTimeBased {
		duration := durationOverride
		if duration <= 0 {
			duration = ex.DefaultDuration
		}
		if duration <= 0 {
			duration = DefaultDurationSeconds
		}
		e.targetTime = float64(duration)
		e.totalReps = 0
		e.totalSets = 0
		return
	}

	sets := setsOverride
	if sets <= 0 {
		sets = ex.DefaultSets
	}
	if sets <= 0 {
		sets = DefaultSets
	}
	reps := repsOverride
	if reps <= 0 {
		reps = ex.DefaultReps
	}
	if reps <= 0 {
		reps = DefaultReps
	}
	e.totalSets = sets
	e.totalReps = reps
	e.targetTime = float64(reps) * e.effectiveRepDurationLocked()
}

// effectiveRepDurationLocked is the nominal rep duration scaled by
// the configured speed factor, guarded against zero.
func (e *TimerEngine) effectiveRepDurationLocked() float64 {
	repDur := DefaultRepDuration
	if e.exercise != nil && e.exercise.RepDurationSeconds > 0 {
		repDur = e.exercise.RepDurationSeconds
	}
	d := repDur * e.settings.RepSpeedFactor
	if d <= 0 {
		d = DefaultRepDuration
	}
	return d
}

// activeLocked reports whether a session is in flight.
// MUST be called with mu held.
func (e *TimerEngine) activeLocked() bool {
	return e.phase == PhaseCountdown || e.phase == PhaseRunning || e.phase == PhaseResting
}

// setCadenceLocked records the tick cadence the current phase needs.
// MUST be called with mu held.
func (e *TimerEngine) setCadenceLocked(fx *engineEffects) {
	var cadence time.Duration
	switch e.phase {
	case PhaseCountdown, PhaseResting:
		cadence = SecondTickInterval
	case PhaseRunning:
		cadence = SecondTickInterval
		if e.exercise != nil && e.exercise.Type == ExerciseTypeRepetitionBased {
			cadence = RepTickInterval
		}
	default:
		cadence = 0
	}
	fx.cadence = cadence
	fx.cadenceChanged = true
}

// phaseChangeLocked builds the event for the phase/index stream.
// MUST be called with mu held.
func (e *TimerEngine) phaseChangeLocked() *PhaseChange {
	pc := &PhaseChange{
		Phase:            e.phase,
		IsActiveMovement: e.phase == PhaseRunning,
	}
	if e.exercise != nil {
		pc.ActiveExerciseID = e.exercise.ID
	}
	switch {
	case e.phase == PhaseCountdown:
		// the active exercise is the one about to play
		pc.NextExerciseID = pc.ActiveExerciseID
	case e.phase == PhaseResting && e.resting == restAfterExercise && e.workout != nil:
		next := e.workout.CurrentExerciseIndex + 1
		if next < len(e.workout.Exercises) {
			pc.NextExerciseID = e.workout.Exercises[next].ExerciseID
		}
	}
	return pc
}

// completionRecordLocked builds the activity record for the active
// unit. full means the unit ran to its natural end; otherwise the
// counters reflect what was actually done before stop(true).
// MUST be called with mu held.
func (e *TimerEngine) completionRecordLocked(now time.Time, full bool) ActivityRecord {
	rec := ActivityRecord{
		DurationElapsed: e.currentTime,
		CompletedAt:     now,
	}
	if e.exercise != nil {
		rec.ExerciseID = e.exercise.ID
		rec.ExerciseName = e.exercise.Name
	}
	if e.workout != nil {
		rec.WorkoutID = e.workout.WorkoutID
	}
	if e.exercise != nil && e.exercise.Type == ExerciseTypeRepetitionBased {
		if full {
			rec.SetsCompleted = e.totalSets
			rec.RepsCompleted = e.totalReps
		} else {
			// currentSet only advances at rest expiry, so a set whose
			// final rep is done still counts toward the record.
			sets := e.currentSet
			if e.phase == PhaseResting || (e.totalReps > 0 && e.currentRep >= e.totalReps) {
				sets++
			}
			if sets > e.totalSets {
				sets = e.totalSets
			}
			rec.SetsCompleted = sets
			rec.RepsCompleted = e.currentRep
		}
	} else if full {
		rec.SetsCompleted = 1
	}
	return rec
}

// buildStateLocked computes the published snapshot.
// MUST be called with mu held (at least read lock).
func (e *TimerEngine) buildStateLocked() TimerState {
	state := TimerState{
		Phase:             e.phase,
		IsRunning:         e.phase == PhaseCountdown || e.phase == PhaseRunning || e.phase == PhaseResting,
		IsCountdown:       e.phase == PhaseCountdown,
		IsResting:         e.phase == PhaseResting,
		CountdownTime:     e.countdownRemaining,
		CurrentTime:       e.currentTime,
		TargetTime:        e.targetTime,
		RestTimeRemaining: e.restRemaining,
		CurrentRep:        e.currentRep,
		TotalReps:         e.totalReps,
		CurrentSet:        e.currentSet,
		TotalSets:         e.totalSets,
	}
	if e.exercise != nil {
		ex := *e.exercise
		state.Exercise = &ex
	}
	if e.workout != nil {
		w := *e.workout
		state.Workout = &w
	}
	return state
}

// apply executes transition effects outside the lock
func (e *TimerEngine) apply(fx *engineEffects) {
	for _, kind := range fx.cues {
		e.cues.Dispatch(kind)
	}
	for _, rec := range fx.records {
		if e.recorder == nil {
			continue
		}
		if err := e.recorder.Record(rec); err != nil {
			e.logger.Printf("TimerEngine: activity record failed: %v", err)
		}
	}
	if fx.acquireWake {
		e.cues.AcquireWakeLock()
	}
	if fx.releaseWake {
		e.cues.ReleaseWakeLock()
	}
	if fx.state != nil {
		e.model.SetTimerState(*fx.state)
	}
	if fx.phaseChange != nil {
		e.phaseEvent.Notify(*fx.phaseChange)
	}
	if fx.cadenceChanged {
		e.requestCadence(fx.cadence)
	}
}
