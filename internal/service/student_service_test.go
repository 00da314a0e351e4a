package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/repository"
)

// failingStudentRepo simulates a remote layer that is down.
type failingStudentRepo struct{ err error }

func (r *failingStudentRepo) GetByPersonalID(ctx context.Context, personalID string) ([]domain.Student, error) {
	return nil, r.err
}

func (r *failingStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return nil, r.err
}

func (r *failingStudentRepo) Insert(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	return nil, r.err
}

func TestStudentServiceLocal(t *testing.T) {
	st := newTestStore(t)
	svc := NewStudentService(st, nil)

	t.Run("list returns the full local roster", func(t *testing.T) {
		students, err := svc.List(context.Background(), "personal-1")
		require.NoError(t, err)
		assert.Len(t, students, len(st.Students()))

		// The trainer id only filters the remote layer; a freshly
		// fabricated login id must still see the seeded roster.
		other, err := svc.List(context.Background(), "fabricated-login-id")
		require.NoError(t, err)
		assert.Equal(t, students, other)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "missing")
		require.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("add then get", func(t *testing.T) {
		created, err := svc.Add(context.Background(), domain.Student{Name: "Novo Aluno", PersonalID: "personal-1"})
		require.NoError(t, err)

		got, err := svc.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Novo Aluno", got.Name)
	})
}

func TestStudentServiceRemoteErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewStudentService(newTestStore(t), &failingStudentRepo{err: boom})

	_, err := svc.List(context.Background(), "personal-1")
	require.ErrorIs(t, err, boom, "remote failures must not be masked by local data")

	_, err = svc.Add(context.Background(), domain.Student{Name: "X"})
	require.ErrorIs(t, err, boom)
}

func TestStudentServiceRemoteNotFound(t *testing.T) {
	svc := NewStudentService(newTestStore(t), &failingStudentRepo{err: repository.ErrNotFound})

	_, err := svc.Get(context.Background(), "any")
	require.ErrorIs(t, err, ErrStudentNotFound, "repository not-found maps to the service error")
}
