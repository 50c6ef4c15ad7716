package timer

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings holds the user-tunable configuration consumed by the
// engine and the cue dispatcher. Values are clamped on load; a broken
// config file can never produce an invalid engine.
type Settings struct {
	IntervalDuration   int     // seconds between cadence cues for time-based units
	PreTimerCountdown  int     // seconds of pre-exercise countdown, 0 disables
	RepSpeedFactor     float64 // multiplier on nominal rep duration
	SoundEnabled       bool
	VibrationEnabled   bool
	ShowExerciseVideos bool
	Volume             float64 // 0..1
}

// AllowedIntervalDurations are the supported interval cue spacings
var AllowedIntervalDurations = []int{15, 30, 45, 60}

// DefaultSettings returns the factory configuration
func DefaultSettings() Settings {
	return Settings{
		IntervalDuration:   30,
		PreTimerCountdown:  3,
		RepSpeedFactor:     1.0,
		SoundEnabled:       true,
		VibrationEnabled:   true,
		ShowExerciseVideos: true,
		Volume:             0.8,
	}
}

// LoadSettings reads settings from ~/.repcue/config.yaml (and any
// values already bound into v, e.g. from flags). A missing file is
// normal; invalid values are clamped, never fatal.
func LoadSettings(v *viper.Viper, logger *log.Logger) Settings {
	if logger == nil {
		panic("LoadSettings: logger cannot be nil")
	}
	if v == nil {
		v = viper.New()
	}

	def := DefaultSettings()
	v.SetDefault("interval_duration", def.IntervalDuration)
	v.SetDefault("pre_timer_countdown", def.PreTimerCountdown)
	v.SetDefault("rep_speed_factor", def.RepSpeedFactor)
	v.SetDefault("sound_enabled", def.SoundEnabled)
	v.SetDefault("vibration_enabled", def.VibrationEnabled)
	v.SetDefault("show_exercise_videos", def.ShowExerciseVideos)
	v.SetDefault("volume", def.Volume)

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".repcue"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			logger.Printf("Settings: no config file, using defaults")
		} else {
			logger.Printf("Settings: failed to read config: %v (using defaults)", err)
		}
	} else {
		logger.Printf("Settings: loaded %s", v.ConfigFileUsed())
	}

	s := Settings{
		IntervalDuration:   v.GetInt("interval_duration"),
		PreTimerCountdown:  v.GetInt("pre_timer_countdown"),
		RepSpeedFactor:     v.GetFloat64("rep_speed_factor"),
		SoundEnabled:       v.GetBool("sound_enabled"),
		VibrationEnabled:   v.GetBool("vibration_enabled"),
		ShowExerciseVideos: v.GetBool("show_exercise_videos"),
		Volume:             v.GetFloat64("volume"),
	}
	return s.clamped(logger)
}

// clamped returns a copy with every field forced into its valid range
func (s Settings) clamped(logger *log.Logger) Settings {
	def := DefaultSettings()

	if !isAllowedInterval(s.IntervalDuration) {
		logger.Printf("Settings: interval_duration %d not in %v, using %d",
			s.IntervalDuration, AllowedIntervalDurations, def.IntervalDuration)
		s.IntervalDuration = def.IntervalDuration
	}

	if s.PreTimerCountdown < 0 {
		s.PreTimerCountdown = 0
	} else if s.PreTimerCountdown > 10 {
		logger.Printf("Settings: pre_timer_countdown %d clamped to 10", s.PreTimerCountdown)
		s.PreTimerCountdown = 10
	}

	if s.RepSpeedFactor <= 0 {
		logger.Printf("Settings: rep_speed_factor %.2f invalid, using %.2f", s.RepSpeedFactor, def.RepSpeedFactor)
		s.RepSpeedFactor = def.RepSpeedFactor
	} else if s.RepSpeedFactor < 0.25 {
		s.RepSpeedFactor = 0.25
	} else if s.RepSpeedFactor > 4 {
		s.RepSpeedFactor = 4
	}

	if s.Volume < 0 {
		s.Volume = 0
	} else if s.Volume > 1 {
		s.Volume = 1
	}

	return s
}

func isAllowedInterval(seconds int) bool {
	for _, allowed := range AllowedIntervalDurations {
		if seconds == allowed {
			return true
		}
	}
	return false
}
