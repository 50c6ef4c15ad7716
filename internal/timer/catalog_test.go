package timer

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewCatalog(log.New(io.Discard, "", 0))
}

func TestCatalogLibraryIsWellFormed(t *testing.T) {
	catalog := newTestCatalog(t)

	seen := map[ExerciseID]bool{}
	for _, ex := range catalog.Exercises() {
		assert.NotEmpty(t, ex.ID)
		assert.NotEmpty(t, ex.Name)
		assert.False(t, seen[ex.ID], "duplicate exercise id %s", ex.ID)
		seen[ex.ID] = true

		switch ex.Type {
		case ExerciseTypeTimeBased:
			assert.Greater(t, ex.DefaultDuration, 0, "%s needs a duration", ex.ID)
		case ExerciseTypeRepetitionBased:
			assert.Greater(t, ex.DefaultSets, 0, "%s needs sets", ex.ID)
			assert.Greater(t, ex.DefaultReps, 0, "%s needs reps", ex.ID)
			assert.Greater(t, ex.RepDurationSeconds, 0.0, "%s needs a rep duration", ex.ID)
		default:
			t.Errorf("exercise %s has unknown type %q", ex.ID, ex.Type)
		}

		if ex.HasVideo {
			assert.NotEmpty(t, ex.VideoURL, "%s claims a video without a URL", ex.ID)
		}
	}
}

func TestCatalogWorkoutsReferenceKnownExercises(t *testing.T) {
	catalog := newTestCatalog(t)

	known := map[ExerciseID]bool{}
	for _, ex := range catalog.Exercises() {
		known[ex.ID] = true
	}

	for _, w := range catalog.Workouts() {
		require.NotEmpty(t, w.Exercises, "workout %s is empty", w.ID)
		for i, entry := range w.Exercises {
			assert.True(t, known[entry.ExerciseID],
				"workout %s references unknown exercise %s", w.ID, entry.ExerciseID)
			assert.Equal(t, i, entry.Order, "workout %s entries out of order", w.ID)
		}
	}
}

func TestCatalogExerciseByID(t *testing.T) {
	catalog := newTestCatalog(t)

	ex := catalog.ExerciseByID("plank")
	assert.Equal(t, "Plank", ex.Name)
	assert.Equal(t, ExerciseTypeTimeBased, ex.Type)

	// Unknown ids resolve to a usable fallback, never an error
	unknown := catalog.ExerciseByID("does-not-exist")
	assert.Equal(t, ExerciseID("does-not-exist"), unknown.ID)
	assert.Equal(t, ExerciseTypeRepetitionBased, unknown.Type)
	assert.Greater(t, unknown.DefaultSets, 0)
	assert.Greater(t, unknown.DefaultReps, 0)
	assert.Greater(t, unknown.RepDurationSeconds, 0.0)
}

func TestCatalogWorkoutByID(t *testing.T) {
	catalog := newTestCatalog(t)

	w, ok := catalog.WorkoutByID("core-crusher")
	require.True(t, ok)
	assert.Equal(t, "Core Crusher", w.Name)
	assert.Len(t, w.Exercises, 4)

	_, ok = catalog.WorkoutByID("does-not-exist")
	assert.False(t, ok)
}

func TestCatalogVideoURLFor(t *testing.T) {
	catalog := newTestCatalog(t)

	url, ok := catalog.VideoURLFor("push-ups")
	assert.True(t, ok)
	assert.Equal(t, "videos/push-ups.mp4", url)

	// wall-sit has no video
	_, ok = catalog.VideoURLFor("wall-sit")
	assert.False(t, ok)

	_, ok = catalog.VideoURLFor("does-not-exist")
	assert.False(t, ok)
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := newTestCatalog(t)

	exercises := catalog.Exercises()
	exercises[0].Name = "mutated"
	assert.NotEqual(t, "mutated", catalog.Exercises()[0].Name)

	workouts := catalog.Workouts()
	workouts[0].Name = "mutated"
	assert.NotEqual(t, "mutated", catalog.Workouts()[0].Name)
}
