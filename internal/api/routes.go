package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Auth       service.AuthService
	Student    service.StudentService
	Exercise   service.ExerciseService
	Workout    service.WorkoutService
	Session    service.SessionService
	Message    service.MessageService
	Assessment service.AssessmentService
	Progress   service.ProgressService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	studentHandler := NewStudentHandler(svc.Student)
	exerciseHandler := NewExerciseHandler(svc.Exercise)
	workoutHandler := NewWorkoutHandler(svc.Workout)
	sessionHandler := NewSessionHandler(svc.Session)
	messageHandler := NewMessageHandler(svc.Message)
	assessmentHandler := NewAssessmentHandler(svc.Assessment)
	progressHandler := NewProgressHandler(svc.Progress)
	appHandler := NewAppHandler()

	authMiddleware := AuthMiddleware(jwtSecret)
	personalOnly := RoleMiddleware(domain.RolePersonal)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.NoRoute(NotFound)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}

		// Routing metadata needs no auth; it mirrors the client's table.
		navGroup := apiV1.Group("/nav")
		{
			navGroup.GET("/routes", appHandler.Routes)
			navGroup.GET("/resolve", appHandler.ResolvePath)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)

		protected.GET("/dashboard", progressHandler.Dashboard)
		protected.GET("/achievements", progressHandler.Achievements)
		protected.GET("/progress", progressHandler.Progress)
		protected.GET("/subscription/plans", appHandler.Plans)

		// --- Roster (trainer only) ---
		studentGroup := protected.Group("/students")
		studentGroup.Use(personalOnly)
		{
			studentGroup.GET("", studentHandler.ListStudents)
			studentGroup.POST("", studentHandler.CreateStudent)
			studentGroup.GET("/:id", studentHandler.GetStudent)
			studentGroup.PATCH("/:id", studentHandler.UpdateStudent)
		}

		// --- Exercise library ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.POST("", personalOnly, exerciseHandler.CreateExercise)
			exerciseGroup.POST("/:id/video/upload-url", personalOnly, exerciseHandler.PresignVideoUpload)
			exerciseGroup.GET("/:id/video/view-url", exerciseHandler.PresignVideoView)
			exerciseGroup.DELETE("/:id/video", personalOnly, exerciseHandler.DeleteVideo)
		}

		// --- Workout plans ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/overview", workoutHandler.WorkoutsOverview)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.POST("", personalOnly, workoutHandler.CreateWorkout)
		}

		// --- Guided workout sessions ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("", sessionHandler.StartSession)
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.POST("/:id/advance", sessionHandler.AdvanceSet)
			sessionGroup.POST("/:id/skip-rest", sessionHandler.SkipRest)
			sessionGroup.DELETE("/:id", sessionHandler.AbandonSession)
		}

		// --- Chat ---
		messageGroup := protected.Group("/messages")
		{
			messageGroup.GET("/with/:userId", messageHandler.GetConversation)
			messageGroup.POST("", messageHandler.SendMessage)
			messageGroup.POST("/:id/read", messageHandler.MarkRead)
			messageGroup.POST("/:id/attachment/upload-url", messageHandler.PresignAttachmentUpload)
			messageGroup.GET("/:id/attachment/view-url", messageHandler.PresignAttachmentView)
		}

		// --- Physical assessments (trainer only) ---
		assessmentGroup := protected.Group("/students/:id/assessments")
		assessmentGroup.Use(personalOnly)
		{
			assessmentGroup.GET("", assessmentHandler.ListAssessments)
		}
		protected.POST("/assessments", personalOnly, assessmentHandler.CreateAssessment)
		protected.POST("/assessments/:studentId/:id/photos/upload-url", personalOnly, assessmentHandler.PresignPhotoUpload)
		protected.GET("/assessments/:studentId/:id/photos/view-url", assessmentHandler.PresignPhotoView)
	}
}
