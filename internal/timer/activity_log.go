package timer

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ActivityRecorder receives completion events from the engine. The
// engine treats recording as best effort; errors are logged upstream.
type ActivityRecorder interface {
	Record(record ActivityRecord) error
}

// ActivityLog appends completion records to a JSON file under the
// user's home directory. Load/save failures degrade to an empty log
// rather than breaking the session.
type ActivityLog struct {
	mu       sync.Mutex
	filePath string
	records  []ActivityRecord
	logger   *log.Logger
}

// NewActivityLog creates an ActivityLog at ~/.repcue/activity_log.json
func NewActivityLog(logger *log.Logger) *ActivityLog {
	if logger == nil {
		panic("ActivityLog: logger cannot be nil")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return NewActivityLogAt(filepath.Join(homeDir, ".repcue", "activity_log.json"), logger)
}

// NewActivityLogAt creates an ActivityLog at an explicit path
func NewActivityLogAt(filePath string, logger *log.Logger) *ActivityLog {
	if logger == nil {
		panic("ActivityLog: logger cannot be nil")
	}
	a := &ActivityLog{
		filePath: filePath,
		logger:   logger,
	}
	a.load()
	return a
}

// Record appends a completion record and persists the log
func (a *ActivityLog) Record(record ActivityRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, record)
	a.logger.Printf("ActivityLog: %s completed (%.0fs, %d sets, %d reps)",
		record.ExerciseID, record.DurationElapsed, record.SetsCompleted, record.RepsCompleted)
	return a.save()
}

// Records returns a copy of all stored records
func (a *ActivityLog) Records() []ActivityRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]ActivityRecord, len(a.records))
	copy(result, a.records)
	return result
}

func (a *ActivityLog) load() {
	raw, err := os.ReadFile(a.filePath)
	if err != nil {
		a.logger.Printf("ActivityLog: load %s (no existing file)", a.filePath)
		return
	}
	if err := json.Unmarshal(raw, &a.records); err != nil {
		a.logger.Printf("ActivityLog: load %s failed to parse: %v", a.filePath, err)
		a.records = nil
		return
	}
	a.logger.Printf("ActivityLog: load %s -> %d records", a.filePath, len(a.records))
}

// save writes the log file. Caller must hold mu.
func (a *ActivityLog) save() error {
	if err := os.MkdirAll(filepath.Dir(a.filePath), 0755); err != nil {
		a.logger.Printf("ActivityLog: save mkdir failed: %v", err)
		return err
	}
	raw, err := json.MarshalIndent(a.records, "", "  ")
	if err != nil {
		a.logger.Printf("ActivityLog: save marshal failed: %v", err)
		return err
	}
	if err := os.WriteFile(a.filePath, raw, 0644); err != nil {
		a.logger.Printf("ActivityLog: save %s failed: %v", a.filePath, err)
		return err
	}
	return nil
}
