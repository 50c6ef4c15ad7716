package timer

import "log"

// ExerciseID uniquely identifies an exercise in the catalog
type ExerciseID string

// WorkoutID uniquely identifies a workout in the catalog
type WorkoutID string

// ExerciseType selects the per-variant tick and progress logic
type ExerciseType string

const (
	ExerciseTypeTimeBased       ExerciseType = "time_based"
	ExerciseTypeRepetitionBased ExerciseType = "repetition_based"
)

// Exercise is an immutable exercise definition supplied by the
// catalog. The engine never mutates these.
type Exercise struct {
	ID       ExerciseID
	Name     string
	Category string
	Type     ExerciseType

	DefaultDuration int // seconds, time-based only
	DefaultSets     int
	DefaultReps     int

	RepDurationSeconds float64 // nominal seconds per repetition

	HasVideo bool
	VideoURL string
}

// WorkoutExercise is one ordered entry of a workout. Zero-valued
// override fields mean "use the exercise's defaults".
type WorkoutExercise struct {
	ExerciseID ExerciseID
	Order      int
	Duration   int // seconds override, 0 = default
	Sets       int // override, 0 = default
	Reps       int // override, 0 = default
}

// Workout is an ordered, non-empty sequence of exercises
type Workout struct {
	ID        WorkoutID
	Name      string
	Exercises []WorkoutExercise
}

// Exercise categories
const (
	CategoryCore        = "Core"
	CategoryStrength    = "Strength"
	CategoryCardio      = "Cardio"
	CategoryFlexibility = "Flexibility"
)

// AllExercises defines the built-in exercise library
var AllExercises = []Exercise{
	{
		ID:              "plank",
		Name:            "Plank",
		Category:        CategoryCore,
		Type:            ExerciseTypeTimeBased,
		DefaultDuration: 30,
		HasVideo:        true,
		VideoURL:        "videos/plank.mp4",
	},
	{
		ID:              "side-plank",
		Name:            "Side Plank",
		Category:        CategoryCore,
		Type:            ExerciseTypeTimeBased,
		DefaultDuration: 20,
		HasVideo:        true,
		VideoURL:        "videos/side-plank.mp4",
	},
	{
		ID:              "wall-sit",
		Name:            "Wall Sit",
		Category:        CategoryStrength,
		Type:            ExerciseTypeTimeBased,
		DefaultDuration: 45,
		HasVideo:        false,
	},
	{
		ID:              "dead-hang",
		Name:            "Dead Hang",
		Category:        CategoryStrength,
		Type:            ExerciseTypeTimeBased,
		DefaultDuration: 20,
		HasVideo:        false,
	},
	{
		ID:                 "push-ups",
		Name:               "Push-Ups",
		Category:           CategoryStrength,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        3,
		DefaultReps:        10,
		RepDurationSeconds: 2,
		HasVideo:           true,
		VideoURL:           "videos/push-ups.mp4",
	},
	{
		ID:                 "squats",
		Name:               "Squats",
		Category:           CategoryStrength,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        3,
		DefaultReps:        12,
		RepDurationSeconds: 3,
		HasVideo:           true,
		VideoURL:           "videos/squats.mp4",
	},
	{
		ID:                 "burpees",
		Name:               "Burpees",
		Category:           CategoryCardio,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        3,
		DefaultReps:        8,
		RepDurationSeconds: 4,
		HasVideo:           true,
		VideoURL:           "videos/burpees.mp4",
	},
	{
		ID:                 "lunges",
		Name:               "Lunges",
		Category:           CategoryStrength,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        3,
		DefaultReps:        10,
		RepDurationSeconds: 3,
		HasVideo:           false,
	},
	{
		ID:                 "sit-ups",
		Name:               "Sit-Ups",
		Category:           CategoryCore,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        3,
		DefaultReps:        15,
		RepDurationSeconds: 2,
		HasVideo:           true,
		VideoURL:           "videos/sit-ups.mp4",
	},
	{
		ID:                 "mountain-climbers",
		Name:               "Mountain Climbers",
		Category:           CategoryCardio,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        2,
		DefaultReps:        20,
		RepDurationSeconds: 1,
		HasVideo:           false,
	},
	{
		ID:                 "glute-bridge",
		Name:               "Glute Bridge",
		Category:           CategoryFlexibility,
		Type:               ExerciseTypeRepetitionBased,
		DefaultSets:        2,
		DefaultReps:        12,
		RepDurationSeconds: 3,
		HasVideo:           false,
	},
}

// AllWorkouts defines the built-in workouts
var AllWorkouts = []Workout{
	{
		ID:   "morning-wake-up",
		Name: "Morning Wake-Up",
		Exercises: []WorkoutExercise{
			{ExerciseID: "squats", Order: 0, Sets: 1, Reps: 10},
			{ExerciseID: "push-ups", Order: 1, Sets: 1, Reps: 8},
			{ExerciseID: "plank", Order: 2, Duration: 20},
		},
	},
	{
		ID:   "core-crusher",
		Name: "Core Crusher",
		Exercises: []WorkoutExercise{
			{ExerciseID: "plank", Order: 0, Duration: 45},
			{ExerciseID: "sit-ups", Order: 1, Sets: 2},
			{ExerciseID: "side-plank", Order: 2, Duration: 30},
			{ExerciseID: "mountain-climbers", Order: 3},
		},
	},
	{
		ID:   "full-body-quickie",
		Name: "Full Body Quickie",
		Exercises: []WorkoutExercise{
			{ExerciseID: "burpees", Order: 0, Sets: 2, Reps: 6},
			{ExerciseID: "squats", Order: 1, Sets: 2},
			{ExerciseID: "lunges", Order: 2, Sets: 2},
			{ExerciseID: "wall-sit", Order: 3, Duration: 30},
		},
	},
}

// Catalog is the read-only source of exercise and workout
// definitions. Missing ids resolve to safe defaults rather than
// errors, so a stale reference can never break a session.
type Catalog struct {
	logger *log.Logger
}

// NewCatalog creates a Catalog backed by the built-in library
func NewCatalog(logger *log.Logger) *Catalog {
	if logger == nil {
		panic("Catalog: logger cannot be nil")
	}
	return &Catalog{logger: logger}
}

// Exercises returns the full exercise library in catalog order
func (c *Catalog) Exercises() []Exercise {
	result := make([]Exercise, len(AllExercises))
	copy(result, AllExercises)
	return result
}

// Workouts returns the full workout list in catalog order
func (c *Catalog) Workouts() []Workout {
	result := make([]Workout, len(AllWorkouts))
	copy(result, AllWorkouts)
	return result
}

// ExerciseByID resolves an exercise id. Unknown ids fall back to a
// generic 30s / 3x8 definition.
func (c *Catalog) ExerciseByID(id ExerciseID) Exercise {
	for _, ex := range AllExercises {
		if ex.ID == id {
			return ex
		}
	}
	c.logger.Printf("Catalog: unknown exercise %q, using defaults", id)
	return Exercise{
		ID:                 id,
		Name:               "Unknown Exercise",
		Category:           CategoryStrength,
		Type:               ExerciseTypeRepetitionBased,
		DefaultDuration:    DefaultDurationSeconds,
		DefaultSets:        DefaultSets,
		DefaultReps:        DefaultReps,
		RepDurationSeconds: DefaultRepDuration,
	}
}

// WorkoutByID resolves a workout id. The boolean is false for unknown
// ids; callers decide whether to ignore the selection.
func (c *Catalog) WorkoutByID(id WorkoutID) (Workout, bool) {
	for _, w := range AllWorkouts {
		if w.ID == id {
			return w, true
		}
	}
	c.logger.Printf("Catalog: unknown workout %q", id)
	return Workout{}, false
}

// VideoURLFor returns the demonstration video URL for an exercise
func (c *Catalog) VideoURLFor(id ExerciseID) (string, bool) {
	for _, ex := range AllExercises {
		if ex.ID == id {
			return ex.VideoURL, ex.HasVideo && ex.VideoURL != ""
		}
	}
	return "", false
}
