package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
)

func TestPersonalDashboard(t *testing.T) {
	st := newTestStore(t)
	svc := NewProgressService(st)

	trainer := &domain.User{ID: "personal-1", Role: domain.RolePersonal}
	dash := svc.PersonalDashboard(trainer)

	students := st.Students()
	assert.Equal(t, len(students), dash.TotalStudents)
	assert.Len(t, dash.Students, len(students))

	total := 0
	for _, n := range dash.StatusBreakdown {
		total += n
	}
	assert.Equal(t, len(students), total, "every student lands in exactly one bucket")

	// Each roster card links to the detail screen.
	assert.Equal(t, "/student/"+dash.Students[0].Student.ID, dash.Students[0].Link)

	// Non-active students land in the warning roster.
	for _, card := range dash.Warnings {
		assert.NotEqual(t, domain.StatusActive, card.Student.Status)
	}
	assert.Equal(t, len(students)-dash.StatusBreakdown[string(domain.StatusActive)], len(dash.Warnings))
}

func TestStudentDashboard(t *testing.T) {
	st := newTestStore(t)
	svc := NewProgressService(st)

	student := &domain.User{ID: "student-1", Role: domain.RoleStudent}
	st.AddWorkout(domain.Workout{Name: "Treino A", StudentID: "student-1", PersonalID: "personal-1",
		Exercises: []domain.WorkoutExercise{{ExerciseID: "x", Sets: 3, Reps: "12"}}})
	st.AddWorkoutLog(domain.WorkoutLog{WorkoutID: "w", StudentID: "student-1", Date: time.Now(), Duration: 40})
	st.AddWorkoutLog(domain.WorkoutLog{WorkoutID: "w", StudentID: "someone-else", Date: time.Now(), Duration: 40})

	dash := svc.StudentDashboard(student)
	assert.Equal(t, 1, dash.AssignedWorkouts)
	assert.Equal(t, 1, dash.CompletedLast30, "only the student's own logs count")
	assert.Len(t, dash.VolumeTimeline, 1)
}

func TestAchievementsOverview(t *testing.T) {
	st := newTestStore(t)
	svc := NewProgressService(st)

	trainer := &domain.User{ID: "personal-1", Role: domain.RolePersonal}
	overview := svc.Achievements(trainer)

	require.NotEmpty(t, overview.Unlocked, "seed achievements are visible to the trainer")
	assert.NotEmpty(t, overview.Monthly)
	assert.NotEmpty(t, overview.PerStudent)

	// Unlocked is newest first.
	for i := 1; i < len(overview.Unlocked); i++ {
		assert.False(t, overview.Unlocked[i-1].UnlockedAt.Before(overview.Unlocked[i].UnlockedAt))
	}

	// Monthly buckets are chronological.
	for i := 1; i < len(overview.Monthly); i++ {
		assert.Less(t, overview.Monthly[i-1].Month, overview.Monthly[i].Month)
	}
}

func TestProgressOverview(t *testing.T) {
	st := newTestStore(t)
	svc := NewProgressService(st)

	bodyFat := 18.5
	st.AddAssessment(domain.PhysicalAssessment{
		StudentID: "student-1",
		Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Weight:    82,
		Height:    178,
	})
	st.AddAssessment(domain.PhysicalAssessment{
		StudentID: "student-1",
		Date:      time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Weight:    78,
		Height:    178,
		BodyFat:   &bodyFat,
	})

	student := &domain.User{ID: "student-1", Role: domain.RoleStudent}
	overview := svc.Progress(student)

	require.Len(t, overview.WeightTimeline, 2)
	assert.Equal(t, float64(82), overview.WeightTimeline[0].Weight, "oldest first")
	require.NotNil(t, overview.Latest)
	assert.Equal(t, float64(78), overview.Latest.Weight)
	require.NotNil(t, overview.Latest.BodyFat)
}
