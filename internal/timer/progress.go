package timer

// Pure derivations of display percentages from a TimerState snapshot.
// Nothing here mutates state or has side effects; the view calls these
// once per render.

// SetProgress returns the outer-ring percentage of sets completed.
// During rest the set that just finished counts as complete; while
// exercising the active set only counts once all of its reps are done.
func SetProgress(s TimerState) float64 {
	if s.TotalSets <= 0 {
		return 0
	}
	completed := float64(s.CurrentSet)
	if s.IsResting {
		completed = float64(s.CurrentSet + 1)
	} else if s.CurrentRep >= s.TotalReps && s.TotalReps > 0 {
		completed = float64(s.CurrentSet + 1)
	}
	return clampPercent(completed / float64(s.TotalSets) * 100)
}

// RepProgressInSet returns the percentage of reps done in the active
// set. During rest all reps of the just-finished set count as done.
func RepProgressInSet(s TimerState) float64 {
	if s.IsResting {
		return 100
	}
	if s.TotalReps <= 0 {
		return 0
	}
	return clampPercent(float64(s.CurrentRep) / float64(s.TotalReps) * 100)
}

// DisplayProgress returns the inner-ring percentage for the current
// phase. Repetition-based running uses the smooth fractional elapsed
// time so the ring advances continuously between rep boundaries.
// configuredCountdown is the pre_timer_countdown setting.
func DisplayProgress(s TimerState, configuredCountdown int) float64 {
	switch s.Phase {
	case PhaseCountdown:
		return CountdownProgress(s, configuredCountdown)
	case PhaseResting:
		return RestProgress(s)
	case PhaseRunning:
		if s.TargetTime <= 0 {
			return 0
		}
		return clampPercent(s.CurrentTime / s.TargetTime * 100)
	case PhaseCompleted:
		return 100
	default:
		return 0
	}
}

// CountdownProgress is the complement of the remaining countdown
func CountdownProgress(s TimerState, configuredCountdown int) float64 {
	if configuredCountdown <= 0 {
		return 0
	}
	return clampPercent(float64(configuredCountdown-s.CountdownTime) / float64(configuredCountdown) * 100)
}

// RestProgress is how far through the rest period we are
func RestProgress(s TimerState) float64 {
	return clampPercent((RestTimeBetweenSets - s.RestTimeRemaining) / RestTimeBetweenSets * 100)
}

// WorkoutProgress is the percentage of workout exercises completed.
// The active exercise is not counted until its rest period ends and
// the index advances, so the value visibly jumps only when the index
// increments. 100 exactly when the index is exhausted.
func WorkoutProgress(w *WorkoutRuntime) float64 {
	if w == nil || len(w.Exercises) == 0 {
		return 0
	}
	if w.CurrentExerciseIndex >= len(w.Exercises) {
		return 100
	}
	return float64(w.CurrentExerciseIndex) / float64(len(w.Exercises)) * 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
