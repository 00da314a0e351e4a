package domain

import "time"

// WeekDays lists the fixed weekday labels used for workout scheduling,
// in display order. Aggregations over the weekly schedule produce one
// row per entry, in this order.
var WeekDays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

// WeekDayOrder returns the position of a weekday label within WeekDays,
// or len(WeekDays) for unknown/empty labels so they sort last.
func WeekDayOrder(day string) int {
	for i, d := range WeekDays {
		if d == day {
			return i
		}
	}
	return len(WeekDays)
}

// WorkoutExercise is one entry in a workout's ordered exercise list:
// a reference to a library exercise plus the planned sets, reps and
// rest for this workout. Order defines the position within the plan.
type WorkoutExercise struct {
	ExerciseID string `bson:"exerciseId" json:"exerciseId"`
	Sets       int    `bson:"sets" json:"sets"`
	Reps       string `bson:"reps" json:"reps"` // label, e.g. "12" or "8-10"
	Weight     string `bson:"weight,omitempty" json:"weight,omitempty"`
	Rest       int    `bson:"rest" json:"rest"` // seconds between sets
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
	Order      int    `bson:"order" json:"order"`
}

// Workout is a training plan built by a Personal trainer for a student.
// It is immutable while a guided session runs against it.
type Workout struct {
	ID                  string            `bson:"_id,omitempty" json:"id"`
	Name                string            `bson:"name" json:"name"`
	Description         string            `bson:"description,omitempty" json:"description,omitempty"`
	StudentID           string            `bson:"studentId" json:"studentId"`
	PersonalID          string            `bson:"personalId" json:"personalId"`
	DayOfWeek           string            `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"` // one of WeekDays
	MotivationalMessage string            `bson:"motivationalMessage,omitempty" json:"motivationalMessage,omitempty"`
	Exercises           []WorkoutExercise `bson:"exercises" json:"exercises"`
	EstimatedTime       *int              `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"` // minutes
	CreatedAt           time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// EstimatedMinutes returns the planned duration, defaulting to 45
// minutes when no estimate was recorded.
func (w *Workout) EstimatedMinutes() int {
	if w.EstimatedTime != nil {
		return *w.EstimatedTime
	}
	return 45
}
