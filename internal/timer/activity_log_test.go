package timer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLogRecordAndReload(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "activity_log.json")
	activityLog := NewActivityLogAt(logPath, discardLogger())

	first := ActivityRecord{
		ExerciseID:      "plank",
		ExerciseName:    "Plank",
		DurationElapsed: 30,
		SetsCompleted:   1,
		CompletedAt:     time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC),
	}
	second := ActivityRecord{
		ExerciseID:      "push-ups",
		ExerciseName:    "Push-Ups",
		WorkoutID:       "morning-wake-up",
		DurationElapsed: 16,
		SetsCompleted:   1,
		RepsCompleted:   8,
		CompletedAt:     time.Date(2025, 6, 1, 7, 35, 0, 0, time.UTC),
	}
	require.NoError(t, activityLog.Record(first))
	require.NoError(t, activityLog.Record(second))

	records := activityLog.Records()
	require.Len(t, records, 2)
	assert.Equal(t, ExerciseID("plank"), records[0].ExerciseID)
	assert.Equal(t, WorkoutID("morning-wake-up"), records[1].WorkoutID)

	// A fresh instance at the same path sees the persisted records
	reloaded := NewActivityLogAt(logPath, discardLogger())
	records = reloaded.Records()
	require.Len(t, records, 2)
	assert.Equal(t, first.CompletedAt, records[0].CompletedAt.UTC())
	assert.Equal(t, 8, records[1].RepsCompleted)
}

func TestActivityLogCreatesParentDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "activity_log.json")
	activityLog := NewActivityLogAt(logPath, discardLogger())

	require.NoError(t, activityLog.Record(ActivityRecord{ExerciseID: "plank", CompletedAt: time.Now()}))

	_, err := os.Stat(logPath)
	assert.NoError(t, err)
}

func TestActivityLogToleratesCorruptFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "activity_log.json")
	require.NoError(t, os.WriteFile(logPath, []byte("{not json"), 0644))

	activityLog := NewActivityLogAt(logPath, discardLogger())
	assert.Empty(t, activityLog.Records())

	// The log is still usable and the corrupt content gets replaced
	require.NoError(t, activityLog.Record(ActivityRecord{ExerciseID: "plank", CompletedAt: time.Now()}))
	reloaded := NewActivityLogAt(logPath, discardLogger())
	assert.Len(t, reloaded.Records(), 1)
}

func TestActivityLogRecordsReturnsCopy(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "activity_log.json")
	activityLog := NewActivityLogAt(logPath, discardLogger())
	require.NoError(t, activityLog.Record(ActivityRecord{ExerciseID: "plank", CompletedAt: time.Now()}))

	records := activityLog.Records()
	records[0].ExerciseID = "mutated"
	assert.Equal(t, ExerciseID("plank"), activityLog.Records()[0].ExerciseID)
}
