package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetProgress(t *testing.T) {
	assert.Equal(t, 0.0, SetProgress(TimerState{}))

	// Mid-set: only fully finished sets count
	s := TimerState{TotalSets: 3, TotalReps: 10, CurrentSet: 1, CurrentRep: 4}
	assert.InDelta(t, 33.33, SetProgress(s), 0.01)

	// Last rep done but not yet resting: the set counts
	s.CurrentRep = 10
	assert.InDelta(t, 66.66, SetProgress(s), 0.01)

	// Resting after the set: the finished set counts
	s = TimerState{TotalSets: 3, TotalReps: 10, CurrentSet: 1, CurrentRep: 10, IsResting: true}
	assert.InDelta(t, 66.66, SetProgress(s), 0.01)
}

func TestRepProgressInSet(t *testing.T) {
	assert.Equal(t, 0.0, RepProgressInSet(TimerState{TotalReps: 0}))
	assert.Equal(t, 50.0, RepProgressInSet(TimerState{TotalReps: 10, CurrentRep: 5}))
	assert.Equal(t, 100.0, RepProgressInSet(TimerState{TotalReps: 10, CurrentRep: 10}))
	// During rest the finished set reads as fully done
	assert.Equal(t, 100.0, RepProgressInSet(TimerState{TotalReps: 10, CurrentRep: 10, IsResting: true}))
}

func TestDisplayProgressPerPhase(t *testing.T) {
	countdown := TimerState{Phase: PhaseCountdown, CountdownTime: 1}
	assert.InDelta(t, 66.66, DisplayProgress(countdown, 3), 0.01)

	running := TimerState{Phase: PhaseRunning, CurrentTime: 7.5, TargetTime: 30}
	assert.Equal(t, 25.0, DisplayProgress(running, 3))

	// Smooth fractional time drives the ring between rep boundaries
	running.CurrentTime = 7.65
	assert.InDelta(t, 25.5, DisplayProgress(running, 3), 0.01)

	resting := TimerState{Phase: PhaseResting, RestTimeRemaining: 15}
	assert.Equal(t, 50.0, DisplayProgress(resting, 3))

	assert.Equal(t, 100.0, DisplayProgress(TimerState{Phase: PhaseCompleted}, 3))
	assert.Equal(t, 0.0, DisplayProgress(TimerState{Phase: PhaseIdle}, 3))

	// Degenerate inputs clamp instead of dividing by zero
	assert.Equal(t, 0.0, DisplayProgress(TimerState{Phase: PhaseRunning, TargetTime: 0}, 3))
	assert.Equal(t, 0.0, DisplayProgress(TimerState{Phase: PhaseCountdown, CountdownTime: 3}, 0))
}

func TestDisplayProgressNeverExceedsBounds(t *testing.T) {
	over := TimerState{Phase: PhaseRunning, CurrentTime: 45, TargetTime: 30}
	assert.Equal(t, 100.0, DisplayProgress(over, 3))

	negative := TimerState{Phase: PhaseRunning, CurrentTime: -1, TargetTime: 30}
	assert.Equal(t, 0.0, DisplayProgress(negative, 3))
}

func TestWorkoutProgress(t *testing.T) {
	assert.Equal(t, 0.0, WorkoutProgress(nil))
	assert.Equal(t, 0.0, WorkoutProgress(&WorkoutRuntime{}))

	w := &WorkoutRuntime{
		Exercises: []WorkoutExercise{
			{ExerciseID: "plank"},
			{ExerciseID: "push-ups"},
			{ExerciseID: "squats"},
		},
	}
	assert.Equal(t, 0.0, WorkoutProgress(w))

	w.CurrentExerciseIndex = 1
	assert.InDelta(t, 33.33, WorkoutProgress(w), 0.01)

	w.CurrentExerciseIndex = 3
	assert.Equal(t, 100.0, WorkoutProgress(w))

	// Overshot index still reads as complete
	w.CurrentExerciseIndex = 5
	assert.Equal(t, 100.0, WorkoutProgress(w))
}
