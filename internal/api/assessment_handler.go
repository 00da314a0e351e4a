package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
)

// AssessmentHandler serves the physical assessment endpoints.
type AssessmentHandler struct {
	assessmentService service.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// --- Request/Response Structs ---

type CreateAssessmentRequest struct {
	StudentID    string               `json:"studentId" binding:"required"`
	Date         *time.Time           `json:"date"`
	Weight       float64              `json:"weight" binding:"required,gt=0"`
	Height       float64              `json:"height" binding:"required,gt=0"`
	BodyFat      *float64             `json:"bodyFat"`
	Measurements *domain.Measurements `json:"measurements"`
	Notes        string               `json:"notes"`
}

// --- Handler Methods ---

// ListAssessments returns a student's assessment history, oldest first.
// Mounted under the student resource, so the id param is the student.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments := h.assessmentService.ListForStudent(c.Param("id"))
	if assessments == nil {
		assessments = []domain.PhysicalAssessment{}
	}
	c.JSON(http.StatusOK, assessments)
}

// CreateAssessment records a new evaluation.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assessment := domain.PhysicalAssessment{
		StudentID:    req.StudentID,
		Weight:       req.Weight,
		Height:       req.Height,
		BodyFat:      req.BodyFat,
		Measurements: req.Measurements,
		Notes:        req.Notes,
	}
	if req.Date != nil {
		assessment.Date = *req.Date
	}

	created, err := h.assessmentService.Add(assessment)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to record assessment")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PresignPhotoUpload returns a presigned PUT URL for a progress photo.
func (h *AssessmentHandler) PresignPhotoUpload(c *gin.Context) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil || index < 0 {
		abortWithError(c, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

	url, err := h.assessmentService.PhotoUploadURL(c.Request.Context(), c.Param("studentId"), c.Param("id"), index, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Media storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to presign media URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

// PresignPhotoView returns a presigned GET URL for a progress photo.
func (h *AssessmentHandler) PresignPhotoView(c *gin.Context) {
	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil || index < 0 {
		abortWithError(c, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

	url, err := h.assessmentService.PhotoViewURL(c.Request.Context(), c.Param("studentId"), c.Param("id"), index)
	if err != nil {
		if errors.Is(err, service.ErrMediaDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Media storage is not configured")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to presign media URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewUrl": url})
}
