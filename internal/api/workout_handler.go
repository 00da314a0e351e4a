package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
)

// WorkoutHandler serves the workout plan endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request/Response Structs ---

type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required,gte=1"`
	Reps       string `json:"reps" binding:"required"`
	Weight     string `json:"weight"`
	Rest       int    `json:"rest" binding:"gte=0"`
	Notes      string `json:"notes"`
}

type CreateWorkoutRequest struct {
	Name                string                   `json:"name" binding:"required"`
	Description         string                   `json:"description"`
	StudentID           string                   `json:"studentId" binding:"required"`
	DayOfWeek           string                   `json:"dayOfWeek"`
	MotivationalMessage string                   `json:"motivationalMessage"`
	EstimatedTime       *int                     `json:"estimatedTime"`
	Exercises           []WorkoutExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

// --- Handler Methods ---

// ListWorkouts returns the workouts visible to the caller: created
// plans for a trainer, assigned plans for a student.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	user, err := userFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	workouts, err := h.workoutService.ListFor(c.Request.Context(), user)
	if err != nil {
		// Remote layer failures surface as a bad gateway, not a server bug.
		abortWithError(c, http.StatusBadGateway, "Failed to list workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one workout plan.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout builds a new plan for a student.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	personalID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	exercises := make([]domain.WorkoutExercise, 0, len(req.Exercises))
	for i, e := range req.Exercises {
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: e.ExerciseID,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Weight:     e.Weight,
			Rest:       e.Rest,
			Notes:      e.Notes,
			Order:      i,
		})
	}

	workout, err := h.workoutService.Create(c.Request.Context(), domain.Workout{
		Name:                req.Name,
		Description:         req.Description,
		StudentID:           req.StudentID,
		PersonalID:          personalID,
		DayOfWeek:           req.DayOfWeek,
		MotivationalMessage: req.MotivationalMessage,
		EstimatedTime:       req.EstimatedTime,
		Exercises:           exercises,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusBadGateway, "Failed to create workout")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// WorkoutsOverview returns the workouts screen payload: upcoming plans
// plus the weekly schedule and volume chart aggregates.
func (h *WorkoutHandler) WorkoutsOverview(c *gin.Context) {
	user, err := userFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	overview, err := h.workoutService.Overview(c.Request.Context(), user)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to build workouts overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
