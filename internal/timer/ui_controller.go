package timer

import (
	"log"
)

// UIController translates UI events into engine calls and mode
// changes on the UIModel. Views never talk to the engine directly.
type UIController struct {
	model  *UIModel
	engine *TimerEngine
	logger *log.Logger
}

// NewUIController creates a new UIController with the given dependencies
func NewUIController(model *UIModel, engine *TimerEngine, logger *log.Logger) *UIController {
	if model == nil {
		panic("UIController: model cannot be nil")
	}
	if engine == nil {
		panic("UIController: engine cannot be nil")
	}
	if logger == nil {
		panic("UIController: logger cannot be nil")
	}
	return &UIController{
		model:  model,
		engine: engine,
		logger: logger,
	}
}

// OnEscapeKey handles when the Escape key is pressed
func (c *UIController) OnEscapeKey() {
	c.model.RequestCloseApplication()
}

// OnModeChange handles when the user requests a mode change
func (c *UIController) OnModeChange(mode UIMode) {
	if info, ok := GetUIModeInfo(mode); ok {
		c.logger.Printf("Switching to %s mode", info.DisplayName)
	}
	c.model.SetMode(mode)
}

// OnExerciseSelected handles when an exercise is picked from the list.
// The selection is loaded and the UI jumps to the timer dashboard.
func (c *UIController) OnExerciseSelected(id ExerciseID) {
	c.engine.SelectExercise(id)
	c.model.SetMode(UIModeTimerDashboard)
}

// OnWorkoutSelected handles when a workout is picked from the list
func (c *UIController) OnWorkoutSelected(id WorkoutID) {
	c.engine.SelectWorkout(id)
	c.model.SetMode(UIModeTimerDashboard)
}

// ToggleTimer starts the session when stopped, stops it without a
// completion record when active.
func (c *UIController) ToggleTimer() {
	state := c.model.GetTimerState()
	if state.IsRunning {
		c.engine.Stop(false)
		return
	}
	if state.Exercise == nil && state.Workout == nil {
		c.logger.Printf("No exercise loaded - select one in Exercise Selection mode (press 1)")
		return
	}
	c.engine.Start()
}

// CompleteEarly stops the active session and logs it as completed
// with whatever sets and reps were actually done.
func (c *UIController) CompleteEarly() {
	c.engine.Stop(true)
}

// ResetTimer returns the timer to idle, clearing any workout context
func (c *UIController) ResetTimer() {
	c.engine.Reset()
}

// SkipExercise finishes the current exercise or rest period immediately
func (c *UIController) SkipExercise() {
	c.engine.SkipExercise()
}

// IncreaseDuration bumps the selected duration by one step for a
// time-based exercise
func (c *UIController) IncreaseDuration() {
	c.adjustDuration(DurationStepSeconds)
}

// DecreaseDuration lowers the selected duration by one step for a
// time-based exercise
func (c *UIController) DecreaseDuration() {
	c.adjustDuration(-DurationStepSeconds)
}

func (c *UIController) adjustDuration(delta int) {
	state := c.model.GetTimerState()
	if state.Exercise == nil || state.Exercise.Type != ExerciseTypeTimeBased {
		c.logger.Printf("Duration applies to time-based exercises only")
		return
	}
	if state.IsRunning {
		c.logger.Printf("Cannot change duration while a session is active")
		return
	}
	c.engine.SelectDuration(int(state.TargetTime) + delta)
}

// Shutdown stops the timer engine
func (c *UIController) Shutdown() {
	c.engine.Shutdown()
}
