package repository

import (
	"context"

	"personalfit/trainer-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInsertFailed = RepositoryError("insert failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// StudentRepository is the remote data collaborator for students:
// equality-filtered reads on the owning trainer, insert-and-return
// mutations. Failures propagate to the caller, which surfaces them as a
// user-facing failure without committing any optimistic mutation.
type StudentRepository interface {
	GetByPersonalID(ctx context.Context, personalID string) ([]domain.Student, error)
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	Insert(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

// WorkoutRepository is the remote data collaborator for workouts.
type WorkoutRepository interface {
	GetByPersonalID(ctx context.Context, personalID string) ([]domain.Workout, error)
	GetByStudentID(ctx context.Context, studentID string) ([]domain.Workout, error)
	Insert(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
}
