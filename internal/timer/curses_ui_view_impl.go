package timer

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Page names for tview.Pages
const (
	pageExerciseSelection = "exercise_selection"
	pageWorkoutSelection  = "workout_selection"
	pageTimerDashboard    = "timer_dashboard"
)

const progressBarWidth = 30

// CursesUIViewImpl implements UIViewImpl using tview (curses-based terminal UI)
type CursesUIViewImpl struct {
	logger      *log.Logger
	app         *tview.Application
	model       *UIModel
	settings    Settings
	currentMode UIMode

	// Root container that holds all pages
	pages *tview.Pages

	// Shared components (visible in all modes)
	logView  *tview.TextView
	mainFlex *tview.Flex // Main layout: mode content on left, logs on right

	// Exercise Selection mode components
	exerciseSelectionFlex       *tview.Flex
	exerciseSelectionTabWidgets []*tview.Box
	exerciseList                *tview.List
	exerciseDetailsPanel        *tview.TextView
	exercises                   []Exercise

	// Workout Selection mode components
	workoutSelectionFlex       *tview.Flex
	workoutSelectionTabWidgets []*tview.Box
	workoutList                *tview.List
	workoutDetailsPanel        *tview.TextView
	workouts                   []Workout

	// Timer Dashboard mode components
	timerDashboardFlex       *tview.Flex
	timerDashboardTabWidgets []*tview.Box
	timerPanel               *tview.TextView
	workoutProgressPanel     *tview.TextView
}

func NewCursesUIView(logger *log.Logger, app *tview.Application, model *UIModel, settings Settings) *CursesUIViewImpl {
	return &CursesUIViewImpl{
		logger:      logger,
		app:         app,
		model:       model,
		settings:    settings,
		currentMode: UIModeExerciseSelection,
	}
}

// Initialize sets up the tview widgets
func (ui *CursesUIViewImpl) Initialize(controller *UIController) {
	// Create shared log view
	// Note: Don't use SetChangedFunc with app.Draw() - it can cause hangs during shutdown
	// when the app has been stopped but log messages are still being written.
	// The BaseUIView's event listeners already call Draw() after updating content.
	ui.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	ui.logView.SetBorder(true).SetTitle(" Logs ")

	// Create pages container for mode switching
	ui.pages = tview.NewPages()

	// Initialize each mode
	ui.initExerciseSelectionMode(controller)
	ui.initWorkoutSelectionMode(controller)
	ui.initTimerDashboardMode(controller)

	// Add pages
	ui.pages.AddPage(pageExerciseSelection, ui.exerciseSelectionFlex, true, true)
	ui.pages.AddPage(pageWorkoutSelection, ui.workoutSelectionFlex, true, false)
	ui.pages.AddPage(pageTimerDashboard, ui.timerDashboardFlex, true, false)

	// Create main layout: pages on left, logs on right
	ui.mainFlex = tview.NewFlex().
		AddItem(ui.pages, 0, 2, true).
		AddItem(ui.logView, 0, 1, false)

	// Set initial focus
	ui.setFocusForCurrentMode()
}

// initExerciseSelectionMode sets up the Exercise Selection mode UI
func (ui *CursesUIViewImpl) initExerciseSelectionMode(controller *UIController) {
	ui.exerciseList = tview.NewList().
		ShowSecondaryText(true).
		SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			if index < 0 || index >= len(ui.exercises) {
				return
			}
			selected := ui.exercises[index]
			ui.logger.Printf("UI: Exercise selected: %s", selected.Name)
			controller.OnExerciseSelected(selected.ID)
		}).
		SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			ui.updateExerciseDetailsDisplay(index)
		})
	ui.exerciseList.SetBorder(true).SetTitle(" Exercises ")

	ui.exerciseDetailsPanel = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	ui.exerciseDetailsPanel.SetBorder(true).SetTitle(" Exercise Details ")
	ui.updateExerciseDetailsDisplay(-1)

	ui.exerciseSelectionTabWidgets = append(ui.exerciseSelectionTabWidgets, ui.exerciseList.Box)
	ui.exerciseSelectionTabWidgets = append(ui.exerciseSelectionTabWidgets, ui.exerciseDetailsPanel.Box)

	ui.exerciseSelectionFlex = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.exerciseList, 0, 1, true).
		AddItem(ui.exerciseDetailsPanel, 0, 1, false)
}

// initWorkoutSelectionMode sets up the Workout Selection mode UI
func (ui *CursesUIViewImpl) initWorkoutSelectionMode(controller *UIController) {
	ui.workoutList = tview.NewList().
		ShowSecondaryText(true).
		SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			if index < 0 || index >= len(ui.workouts) {
				return
			}
			selected := ui.workouts[index]
			ui.logger.Printf("UI: Workout selected: %s", selected.Name)
			controller.OnWorkoutSelected(selected.ID)
		}).
		SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			ui.updateWorkoutDetailsDisplay(index)
		})
	ui.workoutList.SetBorder(true).SetTitle(" Workouts ")

	ui.workoutDetailsPanel = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	ui.workoutDetailsPanel.SetBorder(true).SetTitle(" Workout Details ")
	ui.updateWorkoutDetailsDisplay(-1)

	ui.workoutSelectionTabWidgets = append(ui.workoutSelectionTabWidgets, ui.workoutList.Box)
	ui.workoutSelectionTabWidgets = append(ui.workoutSelectionTabWidgets, ui.workoutDetailsPanel.Box)

	ui.workoutSelectionFlex = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.workoutList, 0, 1, true).
		AddItem(ui.workoutDetailsPanel, 0, 1, false)
}

// initTimerDashboardMode sets up the Timer Dashboard mode UI
func (ui *CursesUIViewImpl) initTimerDashboardMode(controller *UIController) {
	ui.timerPanel = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	ui.timerPanel.SetBorder(true).SetTitle(" Timer ")

	ui.workoutProgressPanel = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	ui.workoutProgressPanel.SetBorder(true).SetTitle(" Workout ")

	ui.updateTimerDisplay(TimerState{Phase: PhaseIdle})

	ui.timerDashboardTabWidgets = append(ui.timerDashboardTabWidgets, ui.timerPanel.Box)
	ui.timerDashboardTabWidgets = append(ui.timerDashboardTabWidgets, ui.workoutProgressPanel.Box)

	ui.timerDashboardFlex = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.timerPanel, 0, 2, true).
		AddItem(ui.workoutProgressPanel, 0, 1, false)
}

// SetExerciseList populates the exercise selection list
func (ui *CursesUIViewImpl) SetExerciseList(exercises []Exercise) {
	ui.exercises = exercises
	ui.exerciseList.Clear()

	for _, ex := range exercises {
		ui.exerciseList.AddItem(ex.Name, formatExerciseSummary(ex), 0, nil)
	}

	if len(exercises) > 0 {
		ui.updateExerciseDetailsDisplay(0)
	}
}

// SetWorkoutList populates the workout selection list
func (ui *CursesUIViewImpl) SetWorkoutList(workouts []Workout) {
	ui.workouts = workouts
	ui.workoutList.Clear()

	for _, w := range workouts {
		ui.workoutList.AddItem(w.Name, fmt.Sprintf("%d exercises", len(w.Exercises)), 0, nil)
	}

	if len(workouts) > 0 {
		ui.updateWorkoutDetailsDisplay(0)
	}
}

func formatExerciseSummary(ex Exercise) string {
	if ex.Type == ExerciseTypeTimeBased {
		return fmt.Sprintf("%s, %ds", ex.Category, ex.DefaultDuration)
	}
	return fmt.Sprintf("%s, %d x %d reps", ex.Category, ex.DefaultSets, ex.DefaultReps)
}

// updateExerciseDetailsDisplay formats and displays the exercise details
func (ui *CursesUIViewImpl) updateExerciseDetailsDisplay(index int) {
	if ui.exerciseDetailsPanel == nil {
		return
	}

	var text string

	if index < 0 || index >= len(ui.exercises) {
		text = "\n\n  [yellow]Exercise Selection[white]\n\n"
		text += "  Select an exercise from the list to view details.\n\n"
		text += "  [gray]Press Enter to load the selected exercise.[white]\n"
	} else {
		ex := ui.exercises[index]
		text = "\n"
		text += fmt.Sprintf("  [yellow]%s[white]\n\n", ex.Name)
		text += fmt.Sprintf("  [gray]Category:[white] %s\n", ex.Category)
		if ex.Type == ExerciseTypeTimeBased {
			text += "  [gray]Type:[white] time-based\n"
			text += fmt.Sprintf("  [gray]Duration:[white] %ds\n", ex.DefaultDuration)
		} else {
			text += "  [gray]Type:[white] repetition-based\n"
			text += fmt.Sprintf("  [gray]Sets:[white] %d\n", ex.DefaultSets)
			text += fmt.Sprintf("  [gray]Reps:[white] %d per set\n", ex.DefaultReps)
			text += fmt.Sprintf("  [gray]Rep pace:[white] %.1fs per rep\n", ex.RepDurationSeconds)
		}
		if ex.HasVideo {
			text += "  [gray]Video:[white] available\n"
		}
		text += "\n  [green]Press Enter to load this exercise[white]\n"
	}

	ui.exerciseDetailsPanel.SetText(text)
}

// updateWorkoutDetailsDisplay formats and displays the workout details
func (ui *CursesUIViewImpl) updateWorkoutDetailsDisplay(index int) {
	if ui.workoutDetailsPanel == nil {
		return
	}

	var text string

	if index < 0 || index >= len(ui.workouts) {
		text = "\n\n  [yellow]Workout Selection[white]\n\n"
		text += "  Select a workout from the list to view details.\n\n"
		text += "  [gray]Press Enter to load the selected workout.[white]\n"
	} else {
		w := ui.workouts[index]
		text = "\n"
		text += fmt.Sprintf("  [yellow]%s[white]\n\n", w.Name)
		text += "  [gray]Structure:[white]\n"
		for i, we := range w.Exercises {
			text += fmt.Sprintf("    %d. %s\n", i+1, we.ExerciseID)
		}
		text += "\n  [green]Press Enter to load this workout[white]\n"
	}

	ui.workoutDetailsPanel.SetText(text)
}

// SetMode switches the UI to the specified mode
func (ui *CursesUIViewImpl) SetMode(mode UIMode) {
	if ui.currentMode == mode {
		return
	}

	ui.currentMode = mode

	switch mode {
	case UIModeExerciseSelection:
		ui.pages.SwitchToPage(pageExerciseSelection)
	case UIModeWorkoutSelection:
		ui.pages.SwitchToPage(pageWorkoutSelection)
	case UIModeTimerDashboard:
		ui.pages.SwitchToPage(pageTimerDashboard)
	}

	ui.setFocusForCurrentMode()
	ui.app.Draw()
}

// GetCurrentMode returns the currently active UI mode
func (ui *CursesUIViewImpl) GetCurrentMode() UIMode {
	return ui.currentMode
}

// setFocusForCurrentMode sets focus to the first widget in the current mode
func (ui *CursesUIViewImpl) setFocusForCurrentMode() {
	widgets := ui.getTabWidgetsForCurrentMode()
	if len(widgets) > 0 {
		ui.app.SetFocus(widgets[0])
	}
}

// getTabWidgetsForCurrentMode returns the tab widgets for the current mode
func (ui *CursesUIViewImpl) getTabWidgetsForCurrentMode() []*tview.Box {
	switch ui.currentMode {
	case UIModeExerciseSelection:
		return ui.exerciseSelectionTabWidgets
	case UIModeWorkoutSelection:
		return ui.workoutSelectionTabWidgets
	case UIModeTimerDashboard:
		return ui.timerDashboardTabWidgets
	default:
		return nil
	}
}

// SetupKeyboardHandlers sets up keyboard event handlers
func (ui *CursesUIViewImpl) SetupKeyboardHandlers(controller *UIController) {
	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Number keys for mode switching (1-9)
		if event.Key() == tcell.KeyRune {
			if mode, ok := GetUIModeByKey(event.Rune()); ok {
				// Delegate to controller - it will update the model, which will notify us
				controller.OnModeChange(mode)
				return nil
			}
		}

		// Tab to switch focus between widgets in current mode
		if event.Key() == tcell.KeyTab {
			widgets := ui.getTabWidgetsForCurrentMode()
			widgetCount := len(widgets)
			if widgetCount > 0 {
				for i := 0; i < widgetCount+1; i++ {
					idx := i % widgetCount
					if widgets[idx].HasFocus() {
						nextIdx := (idx + 1) % widgetCount
						ui.app.SetFocus(widgets[nextIdx])
						break
					}
				}
			}
			return nil
		}

		// Escape to quit
		if event.Key() == tcell.KeyEscape {
			controller.OnEscapeKey()
			return nil
		}

		// Mode-specific key handlers
		if ui.currentMode == UIModeTimerDashboard && event.Key() == tcell.KeyRune {
			switch event.Rune() {
			case ' ':
				controller.ToggleTimer()
				return nil
			case 'x':
				controller.CompleteEarly()
				return nil
			case 'r':
				controller.ResetTimer()
				return nil
			case 'n':
				controller.SkipExercise()
				return nil
			case '+', '=':
				controller.IncreaseDuration()
				return nil
			case '-':
				controller.DecreaseDuration()
				return nil
			}
		}

		return event
	})
}

// GetLogViewHeight returns the visible height of the log view
func (ui *CursesUIViewImpl) GetLogViewHeight() int {
	_, _, _, height := ui.logView.GetInnerRect()
	return height
}

// ClearLogView clears the log view
func (ui *CursesUIViewImpl) ClearLogView() {
	ui.logView.Clear()
}

// WriteLogLine writes a line to the log view
func (ui *CursesUIViewImpl) WriteLogLine(line string) error {
	_, err := fmt.Fprint(ui.logView, line)
	return err
}

// Draw refreshes/redraws the UI
func (ui *CursesUIViewImpl) Draw() error {
	ui.app.Draw()
	return nil
}

// Run starts the UI and blocks until it exits
func (ui *CursesUIViewImpl) Run() error {
	// SetRoot must be called before setting focus, otherwise focus may be reset
	ui.app.SetRoot(ui.mainFlex, true)
	ui.setFocusForCurrentMode()
	return ui.app.Run()
}

// Stop stops the UI framework
func (ui *CursesUIViewImpl) Stop() {
	ui.app.Stop()
}

// UpdateTimerState updates the timer dashboard display
func (ui *CursesUIViewImpl) UpdateTimerState(state TimerState) {
	ui.updateTimerDisplay(state)
	ui.updateWorkoutProgressDisplay(state)
}

// updateTimerDisplay formats and displays the timer panel
func (ui *CursesUIViewImpl) updateTimerDisplay(state TimerState) {
	if ui.timerPanel == nil {
		return
	}

	var text string
	text = "\n"

	if state.Exercise == nil {
		text += "  [gray]No exercise loaded[white]\n\n"
		text += "  Go to Exercise Selection (press 1) or\n"
		text += "  Workout Selection (press 2) to load one.\n"
		ui.timerPanel.SetText(text)
		return
	}

	text += fmt.Sprintf("  [yellow]%s[white]\n\n", state.Exercise.Name)

	switch state.Phase {
	case PhaseIdle:
		text += "  [gray]Ready[white]\n\n"
		if state.Exercise.Type == ExerciseTypeTimeBased {
			text += fmt.Sprintf("  [gray]Duration:[white] %ds  [gray](+/- to adjust)[white]\n", int(state.TargetTime))
		} else {
			text += fmt.Sprintf("  [gray]Sets:[white] %d x %d reps\n", state.TotalSets, state.TotalReps)
		}
		text += "\n  [gray]Press[white] [yellow]Space[white] [gray]to start[white]\n"

	case PhaseCountdown:
		text += fmt.Sprintf("  [orange]Get ready... %d[white]\n\n", state.CountdownTime)
		text += "  " + renderProgressBar(CountdownProgress(state, ui.settings.PreTimerCountdown)) + "\n"

	case PhaseRunning:
		text += fmt.Sprintf("  [gray]Time:[white] %s / %s\n\n",
			formatSeconds(state.CurrentTime), formatSeconds(state.TargetTime))
		text += "  " + renderProgressBar(DisplayProgress(state, ui.settings.PreTimerCountdown)) + "\n\n"
		if state.Exercise.Type == ExerciseTypeRepetitionBased {
			text += fmt.Sprintf("  [gray]Set %d of %d[white]\n", state.CurrentSet+1, state.TotalSets)
			text += "  " + renderProgressBar(SetProgress(state)) + "\n\n"
			text += fmt.Sprintf("  [gray]Rep %d of %d[white]\n", state.CurrentRep, state.TotalReps)
			text += "  " + renderProgressBar(RepProgressInSet(state)) + "\n"
		}

	case PhaseResting:
		text += fmt.Sprintf("  [cyan]Rest... %ds[white]\n\n", int(state.RestTimeRemaining))
		text += "  " + renderProgressBar(RestProgress(state)) + "\n\n"
		if state.TotalSets > 0 {
			text += fmt.Sprintf("  [gray]Next: set %d of %d[white]\n", state.CurrentSet+2, state.TotalSets)
		}

	case PhaseCompleted:
		text += "  [green]Completed![white]\n\n"
		text += "  " + renderProgressBar(100) + "\n\n"
		text += "  [gray]Press[white] [yellow]Space[white] [gray]to go again, [white][yellow]r[white] [gray]to reset[white]\n"
	}

	text += "\n  [gray]Space[white] Start/Stop  [gray]|[white]  [yellow]x[white] Complete  [gray]|[white]  [yellow]n[white] Skip  [gray]|[white]  [yellow]r[white] Reset\n"

	ui.timerPanel.SetText(text)
}

// updateWorkoutProgressDisplay formats and displays the workout panel
func (ui *CursesUIViewImpl) updateWorkoutProgressDisplay(state TimerState) {
	if ui.workoutProgressPanel == nil {
		return
	}

	var text string
	text = "\n"

	if state.Workout == nil {
		text += "  [gray]Single exercise session[white]\n\n"
		text += "  Load a workout (press 2) to chain\n"
		text += "  exercises with automatic rests.\n"
		ui.workoutProgressPanel.SetText(text)
		return
	}

	w := state.Workout
	text += fmt.Sprintf("  [yellow]%s[white]\n\n", w.WorkoutName)
	text += "  " + renderProgressBar(WorkoutProgress(w)) + "\n\n"

	for i, we := range w.Exercises {
		switch {
		case i < w.CurrentExerciseIndex:
			text += fmt.Sprintf("  [green]✓[white] %s\n", we.ExerciseID)
		case i == w.CurrentExerciseIndex:
			text += fmt.Sprintf("  [yellow]▶ %s[white]\n", we.ExerciseID)
		default:
			text += fmt.Sprintf("  [gray]  %s[white]\n", we.ExerciseID)
		}
	}

	ui.workoutProgressPanel.SetText(text)
}

// renderProgressBar renders a percentage as a text bar with the value
// appended, e.g. "[=====     ] 50%"
func renderProgressBar(percent float64) string {
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * progressBarWidth)
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", progressBarWidth-filled)
	return fmt.Sprintf("[gray][[white]%s[gray]][white] %3.0f%%", bar, percent)
}

// formatSeconds formats a second count as MM:SS
func formatSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
