package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/nav"
	"personalfit/trainer-app/internal/service"
)

// StudentHandler serves the trainer's roster endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// --- Request/Response Structs ---

type CreateStudentRequest struct {
	Name  string       `json:"name" binding:"required"`
	Email string       `json:"email" binding:"required,email"`
	Age   int          `json:"age" binding:"omitempty,gte=0"`
	Level domain.Level `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Goal  string       `json:"goal"`
}

type UpdateStudentRequest struct {
	Name   *string               `json:"name"`
	Email  *string               `json:"email"`
	Age    *int                  `json:"age"`
	Level  *domain.Level         `json:"level"`
	Goal   *string               `json:"goal"`
	Status *domain.StudentStatus `json:"status"`
}

// --- Handler Methods ---

// ListStudents returns the trainer's roster.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	personalID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	students, err := h.studentService.List(c.Request.Context(), personalID)
	if err != nil {
		// Remote layer failures surface as a bad gateway, not a server bug.
		abortWithError(c, http.StatusBadGateway, "Failed to list students")
		return
	}
	if students == nil {
		students = []domain.Student{}
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent returns one student. Unknown ids get a not-found payload
// carrying the link back to the roster screen.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.studentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":  "Student not found",
				"screen": nav.ScreenNotFound,
				"back":   "/students",
			})
			return
		}
		abortWithError(c, http.StatusBadGateway, "Failed to load student")
		return
	}
	c.JSON(http.StatusOK, student)
}

// CreateStudent adds a student to the caller's roster.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	personalID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	level := req.Level
	if level == "" {
		level = domain.LevelBeginner
	}
	student, err := h.studentService.Add(c.Request.Context(), domain.Student{
		Name:       req.Name,
		Email:      req.Email,
		Age:        req.Age,
		Level:      level,
		Goal:       req.Goal,
		Status:     domain.StatusActive,
		PersonalID: personalID,
	})
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to create student")
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent patches a student record. Only supplied fields change.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	found := h.studentService.Update(c.Param("id"), func(s *domain.Student) {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Email != nil {
			s.Email = *req.Email
		}
		if req.Age != nil {
			s.Age = *req.Age
		}
		if req.Level != nil {
			s.Level = *req.Level
		}
		if req.Goal != nil {
			s.Goal = *req.Goal
		}
		if req.Status != nil {
			s.Status = *req.Status
		}
	})
	if !found {
		abortWithError(c, http.StatusNotFound, "Student not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "student updated"})
}
