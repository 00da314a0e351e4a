package service

import (
	"context"
	"errors"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/repository"
	"personalfit/trainer-app/internal/store"
)

var ErrStudentNotFound = errors.New("student not found")

// StudentService manages the roster. Reads and inserts go through the
// remote repository when one is configured; otherwise the local store
// serves everything. Remote failures propagate unchanged so the handler
// can surface them; no optimistic local mutation is committed first.
type StudentService interface {
	List(ctx context.Context, personalID string) ([]domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Add(ctx context.Context, student domain.Student) (domain.Student, error)
	Update(id string, mutate func(*domain.Student)) bool
}

type studentService struct {
	store *store.Store
	repo  repository.StudentRepository // nil when the remote layer is disabled
}

// NewStudentService creates a new instance of studentService.
func NewStudentService(st *store.Store, repo repository.StudentRepository) StudentService {
	return &studentService{store: st, repo: repo}
}

func (s *studentService) List(ctx context.Context, personalID string) ([]domain.Student, error) {
	if s.repo != nil {
		return s.repo.GetByPersonalID(ctx, personalID)
	}

	// Login fabricates the trainer id, so the seeded roster is not keyed
	// to it; the local path returns the full roster, same as the
	// dashboard. The equality filter only applies to the remote layer.
	return s.store.Students(), nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	if s.repo != nil {
		student, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrStudentNotFound
			}
			return nil, err
		}
		return student, nil
	}

	student, ok := s.store.StudentByID(id)
	if !ok {
		return nil, ErrStudentNotFound
	}
	return &student, nil
}

func (s *studentService) Add(ctx context.Context, student domain.Student) (domain.Student, error) {
	if s.repo != nil {
		created, err := s.repo.Insert(ctx, &student)
		if err != nil {
			return domain.Student{}, err
		}
		return *created, nil
	}
	return s.store.AddStudent(student), nil
}

// Update patches the local record. The remote layer has no update
// surface in the observed feature set.
func (s *studentService) Update(id string, mutate func(*domain.Student)) bool {
	return s.store.UpdateStudent(id, mutate)
}
