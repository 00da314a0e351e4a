package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"personalfit/trainer-app/internal/api"
	"personalfit/trainer-app/internal/config"
	"personalfit/trainer-app/internal/repository"
	mongorepo "personalfit/trainer-app/internal/repository/mongo"
	"personalfit/trainer-app/internal/service"
	"personalfit/trainer-app/internal/session"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.Info("Starting PersonalFit server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.WithError(err).Fatal("Could not load config")
	}

	// --- Local storage ---
	kv, err := storage.NewBoltStore(cfg.Storage.Path, logger)
	if err != nil {
		logger.WithError(err).Fatal("Could not open local storage")
	}
	defer kv.Close()

	dataStore := store.New(kv, logger)

	// --- Optional remote data layer ---
	var studentRepo repository.StudentRepository
	var workoutRepo repository.WorkoutRepository
	if cfg.Database.Enabled {
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			logger.WithError(err).Fatal("Could not connect to MongoDB")
		}
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				logger.WithError(err).Error("Failed to disconnect MongoDB")
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		logger.Info("Remote database connection established")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			if err := mongorepo.EnsureStudentIndexes(ctx, appDB.Collection("students")); err != nil {
				logger.WithError(err).Warn("student index creation failed")
			}
			if err := mongorepo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts")); err != nil {
				logger.WithError(err).Warn("workout index creation failed")
			}
		}()

		studentRepo = mongorepo.NewMongoStudentRepository(appDB)
		workoutRepo = mongorepo.NewMongoWorkoutRepository(appDB)
	} else {
		logger.Info("Remote database disabled, running off local storage")
	}

	// --- Optional media storage ---
	var media storage.MediaStorage
	if cfg.S3.BucketName != "" {
		media, err = storage.NewS3Media(cfg.S3, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize media storage")
		}
	} else {
		logger.Info("No media bucket configured, presign endpoints disabled")
	}

	// --- Services ---
	sessionManager := session.NewManager(time.Second, logger)

	svc := api.Services{
		Auth:       service.NewAuthService(kv, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.SimulatedLatency),
		Student:    service.NewStudentService(dataStore, studentRepo),
		Exercise:   service.NewExerciseService(dataStore, media),
		Workout:    service.NewWorkoutService(dataStore, workoutRepo),
		Session:    service.NewSessionService(sessionManager, dataStore),
		Message:    service.NewMessageService(dataStore, media),
		Assessment: service.NewAssessmentService(dataStore, media),
		Progress:   service.NewProgressService(dataStore),
	}

	// --- HTTP ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, svc)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}
	logger.Info("Server exiting")
}
