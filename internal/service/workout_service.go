package service

import (
	"context"
	"errors"
	"sort"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/repository"
	"personalfit/trainer-app/internal/stats"
	"personalfit/trainer-app/internal/store"
)

var ErrWorkoutValidation = errors.New("workout requires a name, a student and at least one exercise")

// WorkoutsOverview is the payload behind the workouts screen: the
// upcoming plan list plus the chart aggregates.
type WorkoutsOverview struct {
	Upcoming       []domain.Workout    `json:"upcoming"`
	Schedule       []stats.ScheduleRow `json:"schedule"`
	VolumeTimeline []stats.VolumePoint `json:"volumeTimeline"`
	TotalMinutes   int                 `json:"totalMinutes"`
}

// WorkoutService manages workout plans and their derived views.
type WorkoutService interface {
	ListFor(ctx context.Context, user *domain.User) ([]domain.Workout, error)
	Get(ctx context.Context, id string) (*domain.Workout, error)
	Create(ctx context.Context, workout domain.Workout) (domain.Workout, error)
	Update(id string, mutate func(*domain.Workout)) bool
	Overview(ctx context.Context, user *domain.User) (*WorkoutsOverview, error)
}

type workoutService struct {
	store *store.Store
	repo  repository.WorkoutRepository // nil when the remote layer is disabled
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(st *store.Store, repo repository.WorkoutRepository) WorkoutService {
	return &workoutService{store: st, repo: repo}
}

// ListFor returns the workouts relevant to the user: the ones they
// created for a trainer, the ones assigned to them for a student.
func (s *workoutService) ListFor(ctx context.Context, user *domain.User) ([]domain.Workout, error) {
	if s.repo != nil {
		if user.IsPersonal() {
			return s.repo.GetByPersonalID(ctx, user.ID)
		}
		return s.repo.GetByStudentID(ctx, user.ID)
	}

	var out []domain.Workout
	for _, workout := range s.store.Workouts() {
		if user.IsPersonal() && workout.PersonalID == user.ID {
			out = append(out, workout)
		}
		if user.IsStudent() && workout.StudentID == user.ID {
			out = append(out, workout)
		}
	}
	return out, nil
}

func (s *workoutService) Get(ctx context.Context, id string) (*domain.Workout, error) {
	workout, ok := s.store.WorkoutByID(id)
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	return &workout, nil
}

func (s *workoutService) Create(ctx context.Context, workout domain.Workout) (domain.Workout, error) {
	if workout.Name == "" || workout.StudentID == "" || len(workout.Exercises) == 0 {
		return domain.Workout{}, ErrWorkoutValidation
	}

	if s.repo != nil {
		created, err := s.repo.Insert(ctx, &workout)
		if err != nil {
			return domain.Workout{}, err
		}
		// Keep the local copy in sync so the session player can run it.
		s.store.AddWorkout(*created)
		return *created, nil
	}
	return s.store.AddWorkout(workout), nil
}

func (s *workoutService) Update(id string, mutate func(*domain.Workout)) bool {
	return s.store.UpdateWorkout(id, mutate)
}

// Overview assembles the workouts screen aggregates for the user.
func (s *workoutService) Overview(ctx context.Context, user *domain.User) (*WorkoutsOverview, error) {
	workouts, err := s.ListFor(ctx, user)
	if err != nil {
		return nil, err
	}

	// Upcoming: weekday order first, creation order as tiebreak.
	upcoming := append([]domain.Workout(nil), workouts...)
	sort.SliceStable(upcoming, func(i, j int) bool {
		oi, oj := domain.WeekDayOrder(upcoming[i].DayOfWeek), domain.WeekDayOrder(upcoming[j].DayOfWeek)
		if oi != oj {
			return oi < oj
		}
		return upcoming[i].CreatedAt.Before(upcoming[j].CreatedAt)
	})

	logs := s.relevantLogs(user, workouts)

	total := 0
	for i := range workouts {
		total += workouts[i].EstimatedMinutes()
	}

	return &WorkoutsOverview{
		Upcoming:       upcoming,
		Schedule:       stats.WeeklySchedule(workouts),
		VolumeTimeline: stats.VolumeTimeline(logs, 7),
		TotalMinutes:   total,
	}, nil
}

// relevantLogs selects the workout logs visible to the user: a student
// sees their own, a trainer sees logs for any workout they created.
func (s *workoutService) relevantLogs(user *domain.User, workouts []domain.Workout) []domain.WorkoutLog {
	byWorkout := make(map[string]bool, len(workouts))
	for i := range workouts {
		byWorkout[workouts[i].ID] = true
	}

	var out []domain.WorkoutLog
	for _, log := range s.store.WorkoutLogs() {
		if user.IsStudent() && log.StudentID == user.ID {
			out = append(out, log)
			continue
		}
		if user.IsPersonal() && byWorkout[log.WorkoutID] {
			out = append(out, log)
		}
	}
	return out
}
