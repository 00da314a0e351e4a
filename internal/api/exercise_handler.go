package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
)

// ExerciseHandler serves the exercise library endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- Request/Response Structs ---

type CreateExerciseRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	MuscleGroup string       `json:"muscleGroup"`
	Difficulty  domain.Level `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Equipment   []string     `json:"equipment"`
	Tips        []string     `json:"tips"`
}

type PresignUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// ListExercises returns the full library: built-ins plus custom entries.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.List())
}

// GetExercise returns one library entry.
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Exercise not found")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateExercise adds a custom exercise owned by the calling trainer.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	personalID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	exercise := h.exerciseService.CreateCustom(personalID, domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		MuscleGroup: req.MuscleGroup,
		Difficulty:  req.Difficulty,
		Equipment:   req.Equipment,
		Tips:        req.Tips,
	})
	c.JSON(http.StatusCreated, exercise)
}

// PresignVideoUpload returns a presigned PUT URL for an exercise's demo
// video. 503 when no media bucket is configured.
func (h *ExerciseHandler) PresignVideoUpload(c *gin.Context) {
	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	url, err := h.exerciseService.VideoUploadURL(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploadUrl": url})
}

// PresignVideoView returns a presigned GET URL for an exercise's video.
func (h *ExerciseHandler) PresignVideoView(c *gin.Context) {
	url, err := h.exerciseService.VideoViewURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewUrl": url})
}

// DeleteVideo removes an exercise's demo video from the media bucket.
func (h *ExerciseHandler) DeleteVideo(c *gin.Context) {
	if err := h.exerciseService.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		respondMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}

// respondMediaError maps media service errors to HTTP statuses.
func respondMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMediaDisabled):
		abortWithError(c, http.StatusServiceUnavailable, "Media storage is not configured")
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, "Exercise not found")
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to presign media URL")
	}
}
