package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/session"
	"personalfit/trainer-app/internal/store"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrWorkoutEmpty    = errors.New("workout has no exercises")
)

// SessionService runs guided workout sessions. Starting resolves the
// workout's exercise references into the plan the state machine walks;
// completing writes a workout log through the store.
type SessionService interface {
	Start(workoutID string) (session.Snapshot, error)
	Get(sessionID string) (session.Snapshot, error)
	AdvanceSet(sessionID string) (session.Result, error)
	SkipRest(sessionID string) (session.Snapshot, error)
	Abandon(sessionID string) error
}

type sessionService struct {
	manager *session.Manager
	store   *store.Store
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(manager *session.Manager, st *store.Store) SessionService {
	return &sessionService{manager: manager, store: st}
}

// Start builds the exercise plan from the workout and opens a session.
func (s *sessionService) Start(workoutID string) (session.Snapshot, error) {
	workout, ok := s.store.WorkoutByID(workoutID)
	if !ok {
		return session.Snapshot{}, ErrWorkoutNotFound
	}
	if len(workout.Exercises) == 0 {
		return session.Snapshot{}, ErrWorkoutEmpty
	}

	steps := make([]session.ExerciseStep, 0, len(workout.Exercises))
	for _, we := range workout.Exercises {
		name := we.ExerciseID
		if exercise, ok := s.store.ExerciseByID(we.ExerciseID); ok {
			name = exercise.Name
		}
		steps = append(steps, session.ExerciseStep{
			Name: name,
			Sets: we.Sets,
			Reps: we.Reps,
			Rest: we.Rest,
		})
	}

	return s.manager.Start(workout.ID, workout.StudentID, steps)
}

func (s *sessionService) Get(sessionID string) (session.Snapshot, error) {
	return s.manager.Get(sessionID)
}

// AdvanceSet forwards to the manager and, on the terminal transition,
// persists the completion record before returning.
func (s *sessionService) AdvanceSet(sessionID string) (session.Result, error) {
	result, err := s.manager.AdvanceSet(sessionID)
	if err != nil {
		return session.Result{}, err
	}

	if result.Completed {
		workout, _ := s.store.WorkoutByID(result.WorkoutID)
		s.store.AddWorkoutLog(buildCompletionLog(result, workout))
	}
	return result, nil
}

func (s *sessionService) SkipRest(sessionID string) (session.Snapshot, error) {
	return s.manager.SkipRest(sessionID)
}

// Abandon discards the session; by contract no completion record is
// written.
func (s *sessionService) Abandon(sessionID string) error {
	return s.manager.Abandon(sessionID)
}

// buildCompletionLog turns a finished session into a workout log. Every
// planned set was performed, so each is recorded as completed with the
// reps parsed from its label. Steps and workout exercises share the same
// order, which recovers the exercise ids the plan lost.
func buildCompletionLog(result session.Result, workout domain.Workout) domain.WorkoutLog {
	exercises := make([]domain.LoggedExercise, 0, len(result.Steps))
	for i, step := range result.Steps {
		exerciseID := step.Name
		if i < len(workout.Exercises) {
			exerciseID = workout.Exercises[i].ExerciseID
		}
		sets := make([]domain.LoggedSet, 0, step.Sets)
		for j := 0; j < step.Sets; j++ {
			sets = append(sets, domain.LoggedSet{
				Reps:      parseRepsLabel(step.Reps),
				Completed: true,
			})
		}
		exercises = append(exercises, domain.LoggedExercise{
			ExerciseID: exerciseID,
			Sets:       sets,
		})
	}

	minutes := int(result.Elapsed.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	return domain.WorkoutLog{
		WorkoutID: result.WorkoutID,
		StudentID: result.StudentID,
		Date:      time.Now(),
		Exercises: exercises,
		Duration:  minutes,
	}
}

// parseRepsLabel extracts the leading number from a reps label such as
// "12" or "8-10"; labels without a leading number count as zero reps.
func parseRepsLabel(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}
