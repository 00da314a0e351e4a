package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
)

func TestWorkoutServiceCreateValidation(t *testing.T) {
	svc := NewWorkoutService(newTestStore(t), nil)

	_, err := svc.Create(context.Background(), domain.Workout{Name: "Sem aluno"})
	require.ErrorIs(t, err, ErrWorkoutValidation)

	created, err := svc.Create(context.Background(), domain.Workout{
		Name:      "Treino A",
		StudentID: "student-1",
		Exercises: []domain.WorkoutExercise{{ExerciseID: "e", Sets: 3, Reps: "12"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestWorkoutServiceListFor(t *testing.T) {
	st := newTestStore(t)
	svc := NewWorkoutService(st, nil)

	exercises := []domain.WorkoutExercise{{ExerciseID: "e", Sets: 3, Reps: "12"}}
	st.AddWorkout(domain.Workout{Name: "A", StudentID: "student-1", PersonalID: "personal-1", Exercises: exercises})
	st.AddWorkout(domain.Workout{Name: "B", StudentID: "student-2", PersonalID: "personal-1", Exercises: exercises})
	st.AddWorkout(domain.Workout{Name: "C", StudentID: "student-1", PersonalID: "personal-2", Exercises: exercises})

	trainer := &domain.User{ID: "personal-1", Role: domain.RolePersonal}
	got, err := svc.ListFor(context.Background(), trainer)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	student := &domain.User{ID: "student-1", Role: domain.RoleStudent}
	got, err = svc.ListFor(context.Background(), student)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWorkoutServiceOverview(t *testing.T) {
	st := newTestStore(t)
	svc := NewWorkoutService(st, nil)

	est := 30
	exercises := []domain.WorkoutExercise{{ExerciseID: "e", Sets: 3, Reps: "12"}}
	st.AddWorkout(domain.Workout{Name: "Quarta", StudentID: "student-1", PersonalID: "p-1",
		DayOfWeek: "Quarta", EstimatedTime: &est, Exercises: exercises})
	st.AddWorkout(domain.Workout{Name: "Segunda", StudentID: "student-1", PersonalID: "p-1",
		DayOfWeek: "Segunda", Exercises: exercises})
	st.AddWorkoutLog(domain.WorkoutLog{WorkoutID: "w", StudentID: "student-1", Date: time.Now(), Duration: 50})

	student := &domain.User{ID: "student-1", Role: domain.RoleStudent}
	overview, err := svc.Overview(context.Background(), student)
	require.NoError(t, err)

	// Upcoming follows weekday order, not insertion order.
	require.Len(t, overview.Upcoming, 2)
	assert.Equal(t, "Segunda", overview.Upcoming[0].Name)
	assert.Equal(t, "Quarta", overview.Upcoming[1].Name)

	// 30 estimated + 45 default.
	assert.Equal(t, 75, overview.TotalMinutes)
	assert.Len(t, overview.Schedule, len(domain.WeekDays))
	assert.Len(t, overview.VolumeTimeline, 1)
}
