package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/service"
	"personalfit/trainer-app/internal/session"
)

// SessionHandler drives the guided workout mode over HTTP. The state
// machine lives server-side; the client polls or advances by id.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- Request/Response Structs ---

type StartSessionRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
}

// --- Handler Methods ---

// StartSession opens a guided session for a workout.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	snap, err := h.sessionService.Start(req.WorkoutID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found")
		case errors.Is(err, service.ErrWorkoutEmpty), errors.Is(err, session.ErrNoExercises), errors.Is(err, session.ErrInvalidSetCount):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to start session")
		}
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	snap, err := h.sessionService.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AdvanceSet completes the current set. The terminal transition reports
// completed=true and the session is gone afterwards.
func (h *SessionHandler) AdvanceSet(c *gin.Context) {
	result, err := h.sessionService.AdvanceSet(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, "Session not found")
		case errors.Is(err, session.ErrRestInProgress):
			abortWithError(c, http.StatusConflict, "Rest is still in progress")
		case errors.Is(err, session.ErrCompleted):
			abortWithError(c, http.StatusConflict, "Session is already completed")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to advance session")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// SkipRest ends the current rest immediately. No-op when not resting.
func (h *SessionHandler) SkipRest(c *gin.Context) {
	snap, err := h.sessionService.SkipRest(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AbandonSession discards the session without a completion record.
func (h *SessionHandler) AbandonSession(c *gin.Context) {
	if err := h.sessionService.Abandon(c.Param("id")); err != nil {
		abortWithError(c, http.StatusNotFound, "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session abandoned"})
}
