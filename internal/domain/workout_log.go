package domain

import "time"

// LoggedSet is one performed set within a workout log.
type LoggedSet struct {
	Reps      int      `bson:"reps" json:"reps"`
	Weight    *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg; nil when bodyweight/unrecorded
	Completed bool     `bson:"completed" json:"completed"`
}

// LoggedExercise groups the performed sets of a single exercise.
type LoggedExercise struct {
	ExerciseID string      `bson:"exerciseId" json:"exerciseId"`
	Sets       []LoggedSet `bson:"sets" json:"sets"`
}

// WorkoutLog records one completed run-through of a workout.
type WorkoutLog struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	WorkoutID string           `bson:"workoutId" json:"workoutId"`
	StudentID string           `bson:"studentId" json:"studentId"`
	Date      time.Time        `bson:"date" json:"date"`
	Exercises []LoggedExercise `bson:"exercises" json:"exercises"`
	Duration  int              `bson:"duration" json:"duration"` // minutes
	Notes     string           `bson:"notes,omitempty" json:"notes,omitempty"`
	Rating    *int             `bson:"rating,omitempty" json:"rating,omitempty"` // 1-5
}

// TotalVolume computes the load volume of the log: the sum over all
// recorded sets of weight x reps, with unrecorded weight counting as 0.
func (l *WorkoutLog) TotalVolume() float64 {
	var total float64
	for _, ex := range l.Exercises {
		for _, set := range ex.Sets {
			if set.Weight != nil {
				total += *set.Weight * float64(set.Reps)
			}
		}
	}
	return total
}
