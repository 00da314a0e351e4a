package service

import (
	"context"
	"errors"
	"time"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrMediaDisabled    = errors.New("media storage is not configured")
)

// ExerciseService manages the exercise library: the built-in catalog
// plus the trainer's custom entries, and the demo video media behind
// them.
type ExerciseService interface {
	List() []domain.Exercise
	Get(id string) (*domain.Exercise, error)
	CreateCustom(personalID string, exercise domain.Exercise) domain.Exercise
	VideoUploadURL(ctx context.Context, exerciseID, contentType string) (string, error)
	VideoViewURL(ctx context.Context, exerciseID string) (string, error)
	DeleteVideo(ctx context.Context, exerciseID string) error
}

type exerciseService struct {
	store *store.Store
	media storage.MediaStorage // nil when no bucket is configured
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(st *store.Store, media storage.MediaStorage) ExerciseService {
	return &exerciseService{store: st, media: media}
}

func (s *exerciseService) List() []domain.Exercise {
	return s.store.Exercises()
}

func (s *exerciseService) Get(id string) (*domain.Exercise, error) {
	exercise, ok := s.store.ExerciseByID(id)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	return &exercise, nil
}

// CreateCustom adds a trainer-owned exercise to the library.
func (s *exerciseService) CreateCustom(personalID string, exercise domain.Exercise) domain.Exercise {
	exercise.PersonalID = personalID
	exercise.IsCustom = true
	return s.store.AddExercise(exercise)
}

// VideoUploadURL presigns the demo video upload slot for an exercise.
func (s *exerciseService) VideoUploadURL(ctx context.Context, exerciseID, contentType string) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	if _, ok := s.store.ExerciseByID(exerciseID); !ok {
		return "", ErrExerciseNotFound
	}
	return s.media.PresignUpload(ctx, storage.ExerciseVideoKey(exerciseID), contentType, 15*time.Minute)
}

// VideoViewURL presigns a short-lived view link for an exercise's video.
func (s *exerciseService) VideoViewURL(ctx context.Context, exerciseID string) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	if _, ok := s.store.ExerciseByID(exerciseID); !ok {
		return "", ErrExerciseNotFound
	}
	return s.media.PresignView(ctx, storage.ExerciseVideoKey(exerciseID), 15*time.Minute)
}

// DeleteVideo removes an exercise's demo video from the bucket.
func (s *exerciseService) DeleteVideo(ctx context.Context, exerciseID string) error {
	if s.media == nil {
		return ErrMediaDisabled
	}
	if _, ok := s.store.ExerciseByID(exerciseID); !ok {
		return ErrExerciseNotFound
	}
	return s.media.DeleteObject(ctx, storage.ExerciseVideoKey(exerciseID))
}
