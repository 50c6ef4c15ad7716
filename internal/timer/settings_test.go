package timer

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLoadSettingsDefaultsWithoutConfigFile(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())

	s := LoadSettings(v, discardLogger())
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(`
interval_duration: 15
pre_timer_countdown: 5
rep_speed_factor: 2.0
sound_enabled: false
vibration_enabled: false
show_exercise_videos: false
volume: 0.5
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	v := viper.New()
	v.SetConfigFile(configPath)

	s := LoadSettings(v, discardLogger())
	assert.Equal(t, 15, s.IntervalDuration)
	assert.Equal(t, 5, s.PreTimerCountdown)
	assert.Equal(t, 2.0, s.RepSpeedFactor)
	assert.False(t, s.SoundEnabled)
	assert.False(t, s.VibrationEnabled)
	assert.False(t, s.ShowExerciseVideos)
	assert.Equal(t, 0.5, s.Volume)
}

func TestLoadSettingsClampsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(`
interval_duration: 17
pre_timer_countdown: 99
rep_speed_factor: -1
volume: 3.5
`)
	require.NoError(t, os.WriteFile(configPath, content, 0644))

	v := viper.New()
	v.SetConfigFile(configPath)

	s := LoadSettings(v, discardLogger())
	// Off-list interval falls back to the default
	assert.Equal(t, DefaultSettings().IntervalDuration, s.IntervalDuration)
	assert.Equal(t, 10, s.PreTimerCountdown)
	assert.Equal(t, DefaultSettings().RepSpeedFactor, s.RepSpeedFactor)
	assert.Equal(t, 1.0, s.Volume)
}

func TestSettingsClampedRanges(t *testing.T) {
	logger := discardLogger()

	s := Settings{IntervalDuration: 30, PreTimerCountdown: -2, RepSpeedFactor: 0.1, Volume: -1}.clamped(logger)
	assert.Equal(t, 0, s.PreTimerCountdown)
	assert.Equal(t, 0.25, s.RepSpeedFactor)
	assert.Equal(t, 0.0, s.Volume)

	s = Settings{IntervalDuration: 60, PreTimerCountdown: 3, RepSpeedFactor: 10, Volume: 0.8}.clamped(logger)
	assert.Equal(t, 60, s.IntervalDuration)
	assert.Equal(t, 4.0, s.RepSpeedFactor)
	assert.Equal(t, 0.8, s.Volume)
}

func TestIsAllowedInterval(t *testing.T) {
	for _, allowed := range AllowedIntervalDurations {
		assert.True(t, isAllowedInterval(allowed))
	}
	assert.False(t, isAllowedInterval(0))
	assert.False(t, isAllowedInterval(17))
	assert.False(t, isAllowedInterval(-30))
}

func TestLoadSettingsToleratesBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("interval_duration: [unclosed"), 0644))

	v := viper.New()
	v.SetConfigFile(configPath)

	s := LoadSettings(v, discardLogger())
	assert.Equal(t, DefaultSettings(), s)
}
