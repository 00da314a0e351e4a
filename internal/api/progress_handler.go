package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/service"
)

// ProgressHandler serves the dashboard, achievements and progress
// screen payloads. All endpoints are read-only aggregations.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Dashboard returns the landing payload for the caller's role.
func (h *ProgressHandler) Dashboard(c *gin.Context) {
	user, err := userFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	if user.IsPersonal() {
		c.JSON(http.StatusOK, h.progressService.PersonalDashboard(user))
		return
	}
	c.JSON(http.StatusOK, h.progressService.StudentDashboard(user))
}

// Achievements returns the achievements screen payload.
func (h *ProgressHandler) Achievements(c *gin.Context) {
	user, err := userFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	c.JSON(http.StatusOK, h.progressService.Achievements(user))
}

// Progress returns the body evolution and training load payload.
func (h *ProgressHandler) Progress(c *gin.Context) {
	user, err := userFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	c.JSON(http.StatusOK, h.progressService.Progress(user))
}
