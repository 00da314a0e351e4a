package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/session"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := storage.NewBoltStore(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return store.New(kv, nil)
}

func seedWorkout(t *testing.T, st *store.Store, sets int, reps string) domain.Workout {
	t.Helper()
	exercise := st.AddExercise(domain.Exercise{Name: "Supino Reto", MuscleGroup: "Peito"})
	return st.AddWorkout(domain.Workout{
		Name:      "Treino A",
		StudentID: "student-1",
		Exercises: []domain.WorkoutExercise{
			{ExerciseID: exercise.ID, Sets: sets, Reps: reps, Rest: 0},
		},
	})
}

func TestSessionServiceStart(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(session.NewManager(time.Hour, nil), st)

	t.Run("unknown workout", func(t *testing.T) {
		_, err := svc.Start("missing")
		require.ErrorIs(t, err, ErrWorkoutNotFound)
	})

	t.Run("empty workout", func(t *testing.T) {
		empty := st.AddWorkout(domain.Workout{Name: "Vazio", StudentID: "student-1"})
		_, err := svc.Start(empty.ID)
		require.ErrorIs(t, err, ErrWorkoutEmpty)
	})

	t.Run("resolves exercise names into the plan", func(t *testing.T) {
		workout := seedWorkout(t, st, 2, "12")
		snap, err := svc.Start(workout.ID)
		require.NoError(t, err)
		require.Len(t, snap.Steps, 1)
		assert.Equal(t, "Supino Reto", snap.Steps[0].Name)
		assert.Equal(t, 2, snap.Steps[0].Sets)
	})
}

func TestSessionServiceCompletionWritesLog(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(session.NewManager(time.Hour, nil), st)

	workout := seedWorkout(t, st, 2, "8-10")
	snap, err := svc.Start(workout.ID)
	require.NoError(t, err)

	// Zero rest keeps the session advanceable without ticking.
	first, err := svc.AdvanceSet(snap.ID)
	require.NoError(t, err)
	assert.False(t, first.Completed)
	assert.Empty(t, st.WorkoutLogs(), "no log before the terminal transition")

	final, err := svc.AdvanceSet(snap.ID)
	require.NoError(t, err)
	require.True(t, final.Completed)

	logs := st.WorkoutLogs()
	require.Len(t, logs, 1)
	log := logs[0]
	assert.Equal(t, workout.ID, log.WorkoutID)
	assert.Equal(t, "student-1", log.StudentID)
	assert.GreaterOrEqual(t, log.Duration, 1)

	require.Len(t, log.Exercises, 1)
	assert.Equal(t, workout.Exercises[0].ExerciseID, log.Exercises[0].ExerciseID)
	require.Len(t, log.Exercises[0].Sets, 2)
	for _, set := range log.Exercises[0].Sets {
		assert.True(t, set.Completed)
		assert.Equal(t, 8, set.Reps, "reps come from the leading number of the label")
	}

	// The session is gone after completion.
	_, err = svc.Get(snap.ID)
	require.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSessionServiceAbandonWritesNothing(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(session.NewManager(time.Hour, nil), st)

	workout := seedWorkout(t, st, 3, "12")
	snap, err := svc.Start(workout.ID)
	require.NoError(t, err)

	_, err = svc.AdvanceSet(snap.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(snap.ID))
	assert.Empty(t, st.WorkoutLogs())
}

func TestParseRepsLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"12", 12},
		{"8-10", 8},
		{" 15 ", 15},
		{"até a falha", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseRepsLabel(tt.label), "label %q", tt.label)
	}
}
