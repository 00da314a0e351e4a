package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
)

// memoryKV is an in-memory KeyValue for tests, mirroring the adapter's
// JSON round-trip so stored values detach from their source.
type memoryKV struct {
	data map[string][]byte
	sets int
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(key string, out any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (m *memoryKV) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.data[key] = raw
	m.sets++
}

func (m *memoryKV) Remove(key string) { delete(m.data, key) }
func (m *memoryKV) Clear()            { m.data = make(map[string][]byte) }

func TestNewSeedsEmptyStorage(t *testing.T) {
	kv := newMemoryKV()
	s := New(kv, nil)

	assert.NotEmpty(t, s.Students(), "students are seeded on first run")
	assert.NotEmpty(t, s.Exercises())
	assert.NotEmpty(t, s.Achievements())
	assert.Empty(t, s.Workouts())
	assert.Empty(t, s.WorkoutLogs())

	// Seeds are persisted so the next start hydrates instead of reseeding.
	var stored []domain.Student
	require.True(t, kv.Get(storage.KeyStudents, &stored))
	assert.Len(t, stored, len(s.Students()))
}

func TestNewHydratesFromStorage(t *testing.T) {
	kv := newMemoryKV()
	kv.Set(storage.KeyStudents, []domain.Student{{ID: "s-1", Name: "Carla", Status: domain.StatusActive}})

	s := New(kv, nil)
	students := s.Students()
	require.Len(t, students, 1)
	assert.Equal(t, "Carla", students[0].Name)
}

func TestAddStudentAssignsIdentityAndPersists(t *testing.T) {
	kv := newMemoryKV()
	s := New(kv, nil)
	before := len(s.Students())
	setsBefore := kv.sets

	created := s.AddStudent(domain.Student{Name: "João", Level: domain.LevelBeginner, PersonalID: "personal-1"})

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, s.Students(), before+1)
	assert.Greater(t, kv.sets, setsBefore, "mutation must write through")

	var stored []domain.Student
	require.True(t, kv.Get(storage.KeyStudents, &stored))
	assert.Equal(t, created.ID, stored[len(stored)-1].ID)
}

func TestUpdateStudent(t *testing.T) {
	s := New(newMemoryKV(), nil)
	created := s.AddStudent(domain.Student{Name: "Ana"})

	t.Run("patches fields but never the id", func(t *testing.T) {
		ok := s.UpdateStudent(created.ID, func(st *domain.Student) {
			st.Name = "Ana Paula"
			st.ID = "hijacked"
		})
		require.True(t, ok)

		got, found := s.StudentByID(created.ID)
		require.True(t, found)
		assert.Equal(t, "Ana Paula", got.Name)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		ok := s.UpdateStudent("missing", func(st *domain.Student) {
			st.Name = "ghost"
		})
		assert.False(t, ok)
	})
}

func TestAddWorkoutLogBumpsLastWorkout(t *testing.T) {
	s := New(newMemoryKV(), nil)
	student := s.AddStudent(domain.Student{Name: "Pedro"})
	require.Nil(t, student.LastWorkout)

	logDate := time.Date(2025, 6, 10, 7, 30, 0, 0, time.UTC)
	created := s.AddWorkoutLog(domain.WorkoutLog{
		WorkoutID: "w-1",
		StudentID: student.ID,
		Date:      logDate,
		Duration:  45,
	})
	assert.NotEmpty(t, created.ID)

	got, found := s.StudentByID(student.ID)
	require.True(t, found)
	require.NotNil(t, got.LastWorkout)
	assert.True(t, got.LastWorkout.Equal(logDate))
}

func TestMarkMessageRead(t *testing.T) {
	s := New(newMemoryKV(), nil)
	msg := s.AddMessage(domain.Message{SenderID: "a", ReceiverID: "b", Content: "oi", Type: domain.MessageText})
	require.False(t, msg.Read)

	require.True(t, s.MarkMessageRead(msg.ID))
	messages := s.Messages()
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	assert.False(t, s.MarkMessageRead("missing"))
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	s := New(newMemoryKV(), nil)
	s.AddStudent(domain.Student{Name: "Original"})

	students := s.Students()
	students[len(students)-1].Name = "Mutated"

	fresh := s.Students()
	assert.Equal(t, "Original", fresh[len(fresh)-1].Name)
}
