package timer

import "time"

// Tick cadences: repetition-based units animate sub-second ring
// progress, everything else displays whole seconds.
const (
	RepTickInterval     = 100 * time.Millisecond
	SecondTickInterval  = 1000 * time.Millisecond
	RestTimeBetweenSets = 30 // seconds, between sets and between workout exercises
)

// Safe defaults used when an exercise or workout reference cannot be
// resolved. A missing id degrades to these rather than failing.
const (
	DefaultDurationSeconds = 30
	DefaultSets            = 3
	DefaultReps            = 8
	DefaultRepDuration     = 2.0 // nominal seconds per repetition
)

// Duration adjustment bounds for time-based exercises
const (
	DurationStepSeconds = 5
	MinDurationSeconds  = 5
	MaxDurationSeconds  = 600
)

// Rest seconds remaining at which the "rest ending soon" cue fires
const restEndingLeadSeconds = 3

// TimerPhase is the lifecycle phase of the engine
type TimerPhase int

const (
	PhaseIdle      TimerPhase = iota // No unit active
	PhaseCountdown                   // Pre-exercise lead-in, no exercise time accrues
	PhaseRunning                     // Main phase, elapsed time accrues
	PhaseResting                     // Fixed pause between sets or exercises
	PhaseCompleted                   // Terminal marker until reset
)

// String returns a display name for the phase
func (p TimerPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountdown:
		return "Countdown"
	case PhaseRunning:
		return "Running"
	case PhaseResting:
		return "Resting"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// restKind distinguishes why the engine is resting, because rest
// expiry either resumes the next set or advances the workout.
type restKind int

const (
	restNone restKind = iota
	restAfterSet
	restAfterExercise
)

// CueKind identifies an audio/haptic cue request
type CueKind string

const (
	CueCountdownTick    CueKind = "countdown_tick"
	CueSecond           CueKind = "second"
	CueInterval         CueKind = "interval"
	CueSetComplete      CueKind = "set_complete"
	CueExerciseComplete CueKind = "exercise_complete"
	CueWorkoutComplete  CueKind = "workout_complete"
	CueRestEnding       CueKind = "rest_ending"
)

// CueInfo contains dispatch metadata for a cue kind
type CueInfo struct {
	Kind           CueKind
	DisplayName    string
	VibratePattern []time.Duration // empty means no haptic component
}

// AllCues defines metadata for all supported cues
var AllCues = map[CueKind]CueInfo{
	CueCountdownTick: {
		Kind:           CueCountdownTick,
		DisplayName:    "Countdown Tick",
		VibratePattern: []time.Duration{50 * time.Millisecond},
	},
	CueSecond: {
		Kind:           CueSecond,
		DisplayName:    "Second",
		VibratePattern: []time.Duration{30 * time.Millisecond},
	},
	CueInterval: {
		Kind:           CueInterval,
		DisplayName:    "Interval",
		VibratePattern: []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond},
	},
	CueSetComplete: {
		Kind:           CueSetComplete,
		DisplayName:    "Set Complete",
		VibratePattern: []time.Duration{150 * time.Millisecond},
	},
	CueExerciseComplete: {
		Kind:           CueExerciseComplete,
		DisplayName:    "Exercise Complete",
		VibratePattern: []time.Duration{200 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond},
	},
	CueWorkoutComplete: {
		Kind:           CueWorkoutComplete,
		DisplayName:    "Workout Complete",
		VibratePattern: []time.Duration{300 * time.Millisecond, 100 * time.Millisecond, 300 * time.Millisecond, 100 * time.Millisecond, 300 * time.Millisecond},
	},
	CueRestEnding: {
		Kind:        CueRestEnding,
		DisplayName: "Rest Ending Soon",
	},
}

// GetCueInfo returns the metadata for a given cue kind
func GetCueInfo(kind CueKind) (CueInfo, bool) {
	info, ok := AllCues[kind]
	return info, ok
}

// Cue is a single fire-and-forget cue request toward the sinks
type Cue struct {
	Kind CueKind
	At   time.Time
}

// PhaseChange is the phase/index stream exposed to downstream
// consumers such as the media coordinator. It never carries mutable
// engine state.
type PhaseChange struct {
	Phase            TimerPhase
	ActiveExerciseID ExerciseID
	NextExerciseID   ExerciseID // next workout exercise, empty when none
	IsActiveMovement bool       // true only while the main phase is running
}

// WorkoutRuntime is present in a TimerState snapshot only while a
// multi-exercise workout is loaded. CurrentExerciseIndex equal to
// len(Exercises) marks workout completion.
type WorkoutRuntime struct {
	WorkoutID            WorkoutID
	WorkoutName          string
	Exercises            []WorkoutExercise
	CurrentExerciseIndex int
}

// TimerState is a read-only snapshot of the engine, published to the
// display layer on every change. The engine is the single writer.
type TimerState struct {
	Phase       TimerPhase
	IsRunning   bool // true in Countdown, Running and Resting
	IsCountdown bool
	IsResting   bool

	CountdownTime     int     // seconds remaining before the main phase starts
	CurrentTime       float64 // elapsed seconds in the current unit
	TargetTime        float64 // duration goal for the current unit, 0 when none
	RestTimeRemaining float64

	// Repetition-based units only; zero for time-based units
	CurrentRep int
	TotalReps  int
	CurrentSet int
	TotalSets  int

	Exercise *Exercise       // active exercise definition, nil when none selected
	Workout  *WorkoutRuntime // nil unless a workout is loaded
}

// ActivityRecord is the completion event emitted toward the activity
// log when a unit or workout finishes (or stop(true) is requested).
type ActivityRecord struct {
	ExerciseID      ExerciseID `json:"exercise_id"`
	ExerciseName    string     `json:"exercise_name"`
	WorkoutID       WorkoutID  `json:"workout_id,omitempty"`
	DurationElapsed float64    `json:"duration_elapsed"`
	SetsCompleted   int        `json:"sets_completed"`
	RepsCompleted   int        `json:"reps_completed"`
	CompletedAt     time.Time  `json:"completed_at"`
}

// UIMode represents the current UI mode/screen
type UIMode int

const (
	UIModeExerciseSelection UIMode = iota // Browse and pick a single exercise
	UIModeWorkoutSelection                // Browse and pick a workout
	UIModeTimerDashboard                  // Live timer, progress and controls
)

// UIModeInfo contains display information for a UI mode
type UIModeInfo struct {
	Mode        UIMode
	DisplayName string
	KeyBinding  rune // The number key to activate this mode (1-9)
}

// AllUIModes defines all available UI modes in order
var AllUIModes = []UIModeInfo{
	{Mode: UIModeExerciseSelection, DisplayName: "Exercises", KeyBinding: '1'},
	{Mode: UIModeWorkoutSelection, DisplayName: "Workouts", KeyBinding: '2'},
	{Mode: UIModeTimerDashboard, DisplayName: "Timer", KeyBinding: '3'},
}

// GetUIModeByKey returns the mode for a given key binding
func GetUIModeByKey(key rune) (UIMode, bool) {
	for _, info := range AllUIModes {
		if info.KeyBinding == key {
			return info.Mode, true
		}
	}
	return 0, false
}

// GetUIModeInfo returns the info for a given mode
func GetUIModeInfo(mode UIMode) (UIModeInfo, bool) {
	for _, info := range AllUIModes {
		if info.Mode == mode {
			return info, true
		}
	}
	return UIModeInfo{}, false
}
