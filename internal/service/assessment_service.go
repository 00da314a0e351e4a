package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

var ErrAssessmentValidation = errors.New("assessment requires a student, weight and height")

// AssessmentService records periodic physical evaluations and brokers
// the progress photo media behind them.
type AssessmentService interface {
	ListForStudent(studentID string) []domain.PhysicalAssessment
	Add(assessment domain.PhysicalAssessment) (domain.PhysicalAssessment, error)
	PhotoUploadURL(ctx context.Context, studentID, assessmentID string, index int, contentType string) (string, error)
	PhotoViewURL(ctx context.Context, studentID, assessmentID string, index int) (string, error)
}

type assessmentService struct {
	store *store.Store
	media storage.MediaStorage
}

// NewAssessmentService creates a new instance of assessmentService.
func NewAssessmentService(st *store.Store, media storage.MediaStorage) AssessmentService {
	return &assessmentService{store: st, media: media}
}

// ListForStudent returns a student's assessments, oldest first.
func (s *assessmentService) ListForStudent(studentID string) []domain.PhysicalAssessment {
	var out []domain.PhysicalAssessment
	for _, a := range s.store.Assessments() {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (s *assessmentService) Add(assessment domain.PhysicalAssessment) (domain.PhysicalAssessment, error) {
	if assessment.StudentID == "" || assessment.Weight <= 0 || assessment.Height <= 0 {
		return domain.PhysicalAssessment{}, ErrAssessmentValidation
	}
	if assessment.Date.IsZero() {
		assessment.Date = time.Now()
	}
	return s.store.AddAssessment(assessment), nil
}

func (s *assessmentService) PhotoUploadURL(ctx context.Context, studentID, assessmentID string, index int, contentType string) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	key := storage.AssessmentPhotoKey(studentID, assessmentID, index)
	return s.media.PresignUpload(ctx, key, contentType, 15*time.Minute)
}

func (s *assessmentService) PhotoViewURL(ctx context.Context, studentID, assessmentID string, index int) (string, error) {
	if s.media == nil {
		return "", ErrMediaDisabled
	}
	key := storage.AssessmentPhotoKey(studentID, assessmentID, index)
	return s.media.PresignView(ctx, key, 15*time.Minute)
}
