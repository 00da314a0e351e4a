package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
)

// fakeMedia records the object keys it was asked to operate on.
type fakeMedia struct {
	presigned []string
	deleted   []string
}

func (m *fakeMedia) PresignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	m.presigned = append(m.presigned, objectKey)
	return "https://bucket.example/" + objectKey + "?put", nil
}

func (m *fakeMedia) PresignView(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	m.presigned = append(m.presigned, objectKey)
	return "https://bucket.example/" + objectKey + "?get", nil
}

func (m *fakeMedia) DeleteObject(ctx context.Context, objectKey string) error {
	m.deleted = append(m.deleted, objectKey)
	return nil
}

func TestExerciseServiceCreateCustom(t *testing.T) {
	svc := NewExerciseService(newTestStore(t), nil)

	created := svc.CreateCustom("personal-1", domain.Exercise{Name: "Elevação Lateral", MuscleGroup: "Ombros"})
	assert.True(t, created.IsCustom)
	assert.Equal(t, "personal-1", created.PersonalID)
	assert.NotEmpty(t, created.ID)
}

func TestExerciseServiceMediaDisabled(t *testing.T) {
	st := newTestStore(t)
	svc := NewExerciseService(st, nil)
	exercise := st.AddExercise(domain.Exercise{Name: "Supino Inclinado"})

	_, err := svc.VideoUploadURL(context.Background(), exercise.ID, "video/mp4")
	require.ErrorIs(t, err, ErrMediaDisabled)

	require.ErrorIs(t, svc.DeleteVideo(context.Background(), exercise.ID), ErrMediaDisabled)
}

func TestExerciseServiceVideoLifecycle(t *testing.T) {
	st := newTestStore(t)
	media := &fakeMedia{}
	svc := NewExerciseService(st, media)
	exercise := st.AddExercise(domain.Exercise{Name: "Supino Inclinado"})
	key := storage.ExerciseVideoKey(exercise.ID)

	url, err := svc.VideoUploadURL(context.Background(), exercise.ID, "video/mp4")
	require.NoError(t, err)
	assert.Contains(t, url, key)

	_, err = svc.VideoViewURL(context.Background(), exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{key, key}, media.presigned)

	require.NoError(t, svc.DeleteVideo(context.Background(), exercise.ID))
	assert.Equal(t, []string{key}, media.deleted)

	t.Run("unknown exercise", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteVideo(context.Background(), "missing"), ErrExerciseNotFound)
	})
}
