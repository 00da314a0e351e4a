// Package store owns the app's managed collections. It is the single
// mutation surface: adds and updates assign identifiers and timestamps,
// then persist the whole collection through the local storage adapter.
// Persistence is fire-and-forget; the adapter absorbs its own failures.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
)

// Store holds every managed collection in memory, hydrated from local
// storage at startup (seed data fills the gaps the first time around).
// It is passed explicitly to whoever needs data access; there is no
// package-level instance.
type Store struct {
	mu sync.RWMutex
	kv storage.KeyValue

	students     []domain.Student
	exercises    []domain.Exercise
	workouts     []domain.Workout
	workoutLogs  []domain.WorkoutLog
	messages     []domain.Message
	assessments  []domain.PhysicalAssessment
	challenges   []domain.Challenge
	achievements []domain.Achievement
}

// New loads all collections from the adapter. Collections that were
// never stored (or stored corrupt) fall back to their defaults: seed
// data for students, exercises and achievements, empty otherwise.
func New(kv storage.KeyValue, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Store{kv: kv}

	if !kv.Get(storage.KeyStudents, &s.students) {
		s.students = seedStudents()
		kv.Set(storage.KeyStudents, s.students)
	}
	if !kv.Get(storage.KeyExercises, &s.exercises) {
		s.exercises = seedExercises()
		kv.Set(storage.KeyExercises, s.exercises)
	}
	if !kv.Get(storage.KeyAchievements, &s.achievements) {
		s.achievements = seedAchievements()
		kv.Set(storage.KeyAchievements, s.achievements)
	}
	kv.Get(storage.KeyWorkouts, &s.workouts)
	kv.Get(storage.KeyWorkoutLogs, &s.workoutLogs)
	kv.Get(storage.KeyMessages, &s.messages)
	kv.Get(storage.KeyAssessments, &s.assessments)
	kv.Get(storage.KeyChallenges, &s.challenges)

	log.WithFields(logrus.Fields{
		"students":  len(s.students),
		"exercises": len(s.exercises),
		"workouts":  len(s.workouts),
	}).Info("data store loaded")

	return s
}

func newID() string {
	return uuid.NewString()
}

// --- Read accessors (always copies; aggregations must never see the
// backing slices) ---

func (s *Store) Students() []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Student(nil), s.students...)
}

func (s *Store) Exercises() []domain.Exercise {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Exercise(nil), s.exercises...)
}

func (s *Store) Workouts() []domain.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Workout(nil), s.workouts...)
}

func (s *Store) WorkoutLogs() []domain.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WorkoutLog(nil), s.workoutLogs...)
}

func (s *Store) Messages() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Message(nil), s.messages...)
}

func (s *Store) Assessments() []domain.PhysicalAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PhysicalAssessment(nil), s.assessments...)
}

func (s *Store) Challenges() []domain.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Challenge(nil), s.challenges...)
}

func (s *Store) Achievements() []domain.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Achievement(nil), s.achievements...)
}

func (s *Store) StudentByID(id string) (domain.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.students {
		if s.students[i].ID == id {
			return s.students[i], true
		}
	}
	return domain.Student{}, false
}

func (s *Store) ExerciseByID(id string) (domain.Exercise, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			return s.exercises[i], true
		}
	}
	return domain.Exercise{}, false
}

func (s *Store) WorkoutByID(id string) (domain.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			return s.workouts[i], true
		}
	}
	return domain.Workout{}, false
}

// --- Mutations ---

// AddStudent assigns id and creation timestamp, appends and persists.
func (s *Store) AddStudent(student domain.Student) domain.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	student.ID = newID()
	student.CreatedAt = time.Now()
	s.students = append(s.students, student)
	s.kv.Set(storage.KeyStudents, s.students)
	return student
}

// UpdateStudent applies the mutation to the stored student and persists.
// An unknown id is a silent no-op; the return reports whether a student
// was found.
func (s *Store) UpdateStudent(id string, mutate func(*domain.Student)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == id {
			mutate(&s.students[i])
			s.students[i].ID = id // id is not patchable
			s.kv.Set(storage.KeyStudents, s.students)
			return true
		}
	}
	return false
}

func (s *Store) AddExercise(exercise domain.Exercise) domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	exercise.ID = newID()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	s.exercises = append(s.exercises, exercise)
	s.kv.Set(storage.KeyExercises, s.exercises)
	return exercise
}

func (s *Store) AddWorkout(workout domain.Workout) domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	workout.ID = newID()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	s.workouts = append(s.workouts, workout)
	s.kv.Set(storage.KeyWorkouts, s.workouts)
	return workout
}

// UpdateWorkout applies the mutation, refreshes the update timestamp and
// persists. Unknown ids are silent no-ops.
func (s *Store) UpdateWorkout(id string, mutate func(*domain.Workout)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			mutate(&s.workouts[i])
			s.workouts[i].ID = id
			s.workouts[i].UpdatedAt = time.Now()
			s.kv.Set(storage.KeyWorkouts, s.workouts)
			return true
		}
	}
	return false
}

// AddWorkoutLog records a completed session and bumps the student's
// last-workout marker.
func (s *Store) AddWorkoutLog(log domain.WorkoutLog) domain.WorkoutLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.ID = newID()
	s.workoutLogs = append(s.workoutLogs, log)
	s.kv.Set(storage.KeyWorkoutLogs, s.workoutLogs)

	for i := range s.students {
		if s.students[i].ID == log.StudentID {
			date := log.Date
			s.students[i].LastWorkout = &date
			s.kv.Set(storage.KeyStudents, s.students)
			break
		}
	}
	return log
}

func (s *Store) AddMessage(message domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	message.ID = newID()
	message.CreatedAt = time.Now()
	s.messages = append(s.messages, message)
	s.kv.Set(storage.KeyMessages, s.messages)
	return message
}

// MarkMessageRead flags a message as read. Unknown ids are no-ops.
func (s *Store) MarkMessageRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			s.kv.Set(storage.KeyMessages, s.messages)
			return true
		}
	}
	return false
}

func (s *Store) AddAssessment(assessment domain.PhysicalAssessment) domain.PhysicalAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	assessment.ID = newID()
	s.assessments = append(s.assessments, assessment)
	s.kv.Set(storage.KeyAssessments, s.assessments)
	return assessment
}
