package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/akram0zaki/repcue-sub002/internal/timer"
)

// uiLogWriter duplicates log output toward the UI log channel.
// Dropping lines when the UI falls behind is preferred over blocking
// the logger.
type uiLogWriter struct {
	mu      sync.Mutex
	logChan chan<- string
	partial []byte
}

func (w *uiLogWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.partial = append(w.partial, p...)
	for {
		idx := -1
		for i, b := range w.partial {
			if b == '\n' {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		line := string(w.partial[:idx+1])
		w.partial = w.partial[idx+1:]
		select {
		case w.logChan <- line:
		default:
			// UI is behind, drop the line
		}
	}
	return len(p), nil
}

func defaultAppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repcue"
	}
	return filepath.Join(home, ".repcue")
}

func main() {
	appDir := defaultAppDir()

	configPath := pflag.String("config", filepath.Join(appDir, "config.yaml"), "path to the config file")
	logPath := pflag.String("log-file", filepath.Join(appDir, "repcue.log"), "path to the log file")
	pflag.Parse()

	must("create app directory", os.MkdirAll(appDir, 0o755))

	// Log to a rotating file and tee every line to the UI log pane.
	// Logging to stdout would corrupt the curses display.
	fileLogger := &lumberjack.Logger{
		Filename:   *logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
	}
	defer fileLogger.Close()

	uiLogChan := make(chan string, 256)
	logger := log.New(io.MultiWriter(fileLogger, &uiLogWriter{logChan: uiLogChan}), "", log.LstdFlags)
	logger.Printf("repcue starting")

	v := viper.New()
	v.SetConfigFile(*configPath)
	settings := timer.LoadSettings(v, logger)

	catalog := timer.NewCatalog(logger)
	model := timer.NewUIModel(logger, uiLogChan)

	bell := timer.NewBellAudioSink(logger)
	haptic := timer.NewLogHapticSink(logger)
	wakeLock := timer.NewScreenWakeLock(logger)
	cues := timer.NewCueDispatcher(bell, haptic, wakeLock, settings, logger)
	cues.ListenToCues(func(cue timer.Cue) { model.NotifyCue(cue) })

	activityLog := timer.NewActivityLog(logger)

	engine := timer.NewTimerEngine(timer.NewTimerEngineArgs{
		Model:    model,
		Cues:     cues,
		Recorder: activityLog,
		Catalog:  catalog,
		Settings: settings,
		Logger:   logger,
	})

	media := timer.NewMediaCoordinator(timer.NewMediaCoordinatorArgs{
		Player:   timer.NewLogVideoPlayer(logger),
		Engine:   engine,
		Catalog:  catalog,
		Settings: settings,
		Logger:   logger,
	})

	controller := timer.NewUIController(model, engine, logger)

	app := tview.NewApplication()
	app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		bell.SetScreen(screen)
		return false
	})

	cursesView := timer.NewCursesUIView(logger, app, model, settings)
	baseView := timer.NewBaseUIView(timer.NewBaseUIViewArg{
		UIViewImpl:   cursesView,
		UIModel:      model,
		UIController: controller,
		Catalog:      catalog,
		Logger:       logger,
	})

	if err := baseView.Run(); err != nil {
		logger.Printf("UI exited with error: %v", err)
	}

	// Ordered shutdown: stop producers before the model that feeds the views
	media.Shutdown()
	controller.Shutdown()
	baseView.Shutdown()
	model.Shutdown()
	logger.Printf("repcue stopped")
}

func must(action string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to "+action+": "+err.Error())
		os.Exit(1)
	}
}
