package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/service"
	"personalfit/trainer-app/internal/session"
	"personalfit/trainer-app/internal/storage"
	"personalfit/trainer-app/internal/store"
)

const testJWTSecret = "test-secret"

type testApp struct {
	router *gin.Engine
	store  *store.Store
	auth   service.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := storage.NewBoltStore(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	dataStore := store.New(kv, nil)
	manager := session.NewManager(time.Hour, nil) // rest ticks never fire in tests
	auth := service.NewAuthService(kv, testJWTSecret, time.Hour, 0)

	router := gin.New()
	SetupRoutes(router, testJWTSecret, Services{
		Auth:       auth,
		Student:    service.NewStudentService(dataStore, nil),
		Exercise:   service.NewExerciseService(dataStore, nil),
		Workout:    service.NewWorkoutService(dataStore, nil),
		Session:    service.NewSessionService(manager, dataStore),
		Message:    service.NewMessageService(dataStore, nil),
		Assessment: service.NewAssessmentService(dataStore, nil),
		Progress:   service.NewProgressService(dataStore),
	})

	return &testApp{router: router, store: dataStore, auth: auth}
}

func (app *testApp) login(t *testing.T, role domain.Role) string {
	t.Helper()
	token, _, err := app.auth.Login(context.Background(), "test@example.com", "password", role)
	require.NoError(t, err)
	return token
}

func (app *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email": "maria@example.com", "password": "secret", "role": "personal",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, domain.RolePersonal, resp.User.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email": "maria@example.com", "password": "secret", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/workouts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/v1/workouts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGating(t *testing.T) {
	app := newTestApp(t)
	studentToken := app.login(t, domain.RoleStudent)

	rec := app.do(t, http.MethodGet, "/api/v1/students", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code, "roster is trainer-only")

	rec = app.do(t, http.MethodGet, "/api/v1/exercises", studentToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "library is open to both roles")
}

func TestRosterMatchesDashboard(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, domain.RolePersonal)

	rec := app.do(t, http.MethodGet, "/api/v1/students", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var roster []domain.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roster))
	assert.NotEmpty(t, roster, "a fresh login must see the seeded roster")

	rec = app.do(t, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash service.PersonalDashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))

	assert.Equal(t, dash.TotalStudents, len(roster),
		"dashboard and roster endpoint must agree about the trainer's students")
}

func TestGuidedSessionFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, domain.RolePersonal)

	exercise := app.store.AddExercise(domain.Exercise{Name: "Supino Reto"})
	workout := app.store.AddWorkout(domain.Workout{
		Name:      "Treino A",
		StudentID: "student-1",
		Exercises: []domain.WorkoutExercise{
			{ExerciseID: exercise.ID, Sets: 2, Reps: "12", Rest: 0},
		},
	})

	// Start.
	rec := app.do(t, http.MethodPost, "/api/v1/sessions", token, gin.H{"workoutId": workout.ID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var snap session.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.ID)

	// First advance: zero rest, so the machine stays advanceable.
	rec = app.do(t, http.MethodPost, "/api/v1/sessions/"+snap.ID+"/advance", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result session.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Completed)

	// Second advance completes the session and writes the log.
	rec = app.do(t, http.MethodPost, "/api/v1/sessions/"+snap.ID+"/advance", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Completed)
	assert.Len(t, app.store.WorkoutLogs(), 1)

	// The session is gone afterwards.
	rec = app.do(t, http.MethodGet, "/api/v1/sessions/"+snap.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartSessionForEmptyWorkout(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, domain.RolePersonal)

	empty := app.store.AddWorkout(domain.Workout{Name: "Vazio", StudentID: "student-1"})
	rec := app.do(t, http.MethodPost, "/api/v1/sessions", token, gin.H{"workoutId": empty.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaEndpointsWithoutBucket(t *testing.T) {
	app := newTestApp(t)
	token := app.login(t, domain.RolePersonal)

	exercise := app.store.AddExercise(domain.Exercise{Name: "Agachamento Livre"})
	rec := app.do(t, http.MethodPost, "/api/v1/exercises/"+exercise.ID+"/video/upload-url", token, gin.H{
		"contentType": "video/mp4",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/v1/exercises/"+exercise.ID+"/video", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/v1/assessments/student-1/a-1/photos/view-url", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNavEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/nav/resolve?path=/student/42", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "student-details", resp["screen"])

	rec = app.do(t, http.MethodGet, "/api/v1/nav/resolve?path=/nope", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not-found", resp["screen"])
	assert.Equal(t, "/", resp["back"])
}

func TestUnknownRoutePayload(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/definitely/not/here", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp["back"])
}
