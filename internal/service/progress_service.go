package service

import (
	"sort"
	"time"

	"personalfit/trainer-app/internal/domain"
	"personalfit/trainer-app/internal/nav"
	"personalfit/trainer-app/internal/stats"
	"personalfit/trainer-app/internal/store"
)

// StudentCard is one roster entry on the trainer dashboard, carrying the
// link to the student's detail screen.
type StudentCard struct {
	Student domain.Student `json:"student"`
	Link    string         `json:"link"`
}

// PersonalDashboard is the trainer's landing payload. Warnings lists
// the students needing attention, with their detail links.
type PersonalDashboard struct {
	TotalStudents   int            `json:"totalStudents"`
	StatusBreakdown map[string]int `json:"statusBreakdown"`
	WorkoutsLast30  int            `json:"workoutsLast30"`
	UnreadMessages  int            `json:"unreadMessages"`
	Students        []StudentCard  `json:"students"`
	Warnings        []StudentCard  `json:"warnings"`
}

// StudentDashboard is the student's landing payload.
type StudentDashboard struct {
	AssignedWorkouts int                 `json:"assignedWorkouts"`
	CompletedLast30  int                 `json:"completedLast30"`
	Achievements     int                 `json:"achievements"`
	UnreadMessages   int                 `json:"unreadMessages"`
	VolumeTimeline   []stats.VolumePoint `json:"volumeTimeline"`
}

// AchievementsOverview backs the achievements screen. Unlocked is
// sorted newest first.
type AchievementsOverview struct {
	Unlocked         []domain.Achievement `json:"unlocked"`
	Monthly          []stats.MonthBucket  `json:"monthly"`
	PerStudent       map[string]int       `json:"perStudent"`
	ChallengesByType map[string]int       `json:"challengesByType"`
	ActiveChallenges []domain.Challenge   `json:"activeChallenges"`
	TopExercises     []stats.RankEntry    `json:"topExercises"`
	UnlockedLast30   int                  `json:"unlockedLast30"`
}

// WeightPoint is one charted assessment reading.
type WeightPoint struct {
	Date    time.Time `json:"date"`
	Weight  float64   `json:"weight"`
	BodyFat *float64  `json:"bodyFat,omitempty"`
}

// ProgressOverview backs the progress screen: body evolution over the
// recorded assessments plus the recent training load.
type ProgressOverview struct {
	WeightTimeline []WeightPoint              `json:"weightTimeline"`
	Latest         *domain.PhysicalAssessment `json:"latest,omitempty"`
	VolumeTimeline []stats.VolumePoint        `json:"volumeTimeline"`
	TotalWorkouts  int                        `json:"totalWorkouts"`
	TotalMinutes   int                        `json:"totalMinutes"`
}

// ProgressService derives the read-only dashboard and chart payloads.
// Everything here is computed from store snapshots; nothing mutates.
type ProgressService interface {
	PersonalDashboard(user *domain.User) *PersonalDashboard
	StudentDashboard(user *domain.User) *StudentDashboard
	Achievements(user *domain.User) *AchievementsOverview
	Progress(user *domain.User) *ProgressOverview
}

type progressService struct {
	store *store.Store
	now   func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(st *store.Store) ProgressService {
	return &progressService{store: st, now: time.Now}
}

func (s *progressService) PersonalDashboard(user *domain.User) *PersonalDashboard {
	// Login fabricates the trainer id, so the seeded roster is not keyed
	// to it; the dashboard shows the full roster.
	students := s.store.Students()
	roster := make([]StudentCard, 0, len(students))
	var warnings []StudentCard
	for _, student := range students {
		card := StudentCard{
			Student: student,
			Link:    nav.Interpolate("/student/:id", nav.Params{"id": student.ID}),
		}
		roster = append(roster, card)
		if student.Status != domain.StatusActive {
			warnings = append(warnings, card)
		}
	}

	breakdown := stats.CountBy(students, func(st domain.Student) string {
		return string(st.Status)
	})

	recentLogs := stats.WithinLastDays(s.store.WorkoutLogs(), 30, s.now(), func(l domain.WorkoutLog) time.Time {
		return l.Date
	})

	return &PersonalDashboard{
		TotalStudents:   len(students),
		StatusBreakdown: breakdown,
		WorkoutsLast30:  len(recentLogs),
		UnreadMessages:  s.unreadFor(user.ID),
		Students:        roster,
		Warnings:        warnings,
	}
}

func (s *progressService) StudentDashboard(user *domain.User) *StudentDashboard {
	var assigned int
	for _, workout := range s.store.Workouts() {
		if workout.StudentID == user.ID {
			assigned++
		}
	}

	logs := s.logsFor(user.ID)
	recent := stats.WithinLastDays(logs, 30, s.now(), func(l domain.WorkoutLog) time.Time {
		return l.Date
	})

	var unlocked int
	for _, a := range s.store.Achievements() {
		if a.StudentID == user.ID {
			unlocked++
		}
	}

	return &StudentDashboard{
		AssignedWorkouts: assigned,
		CompletedLast30:  len(recent),
		Achievements:     unlocked,
		UnreadMessages:   s.unreadFor(user.ID),
		VolumeTimeline:   stats.VolumeTimeline(logs, 7),
	}
}

// Achievements assembles the achievements screen: the unlocked list, the
// monthly unlock timeline, the challenge type distribution and the most
// trained exercises over the last 30 days.
func (s *progressService) Achievements(user *domain.User) *AchievementsOverview {
	achievements := s.store.Achievements()
	if user.IsStudent() {
		filtered := achievements[:0]
		for _, a := range achievements {
			if a.StudentID == user.ID {
				filtered = append(filtered, a)
			}
		}
		achievements = filtered
	}

	sort.SliceStable(achievements, func(i, j int) bool {
		return achievements[i].UnlockedAt.After(achievements[j].UnlockedAt)
	})

	now := s.now()
	recentUnlocks := stats.WithinLastDays(achievements, 30, now, func(a domain.Achievement) time.Time {
		return a.UnlockedAt
	})
	perStudent := stats.CountBy(achievements, func(a domain.Achievement) string {
		return a.StudentID
	})

	challenges := s.store.Challenges()
	byType := stats.CountBy(challenges, func(c domain.Challenge) string {
		return string(c.Type)
	})
	var active []domain.Challenge
	for _, c := range challenges {
		if !c.EndDate.Before(now) {
			active = append(active, c)
		}
	}

	recentLogs := stats.WithinLastDays(s.store.WorkoutLogs(), 30, now, func(l domain.WorkoutLog) time.Time {
		return l.Date
	})
	var logged []string
	for _, log := range recentLogs {
		for _, ex := range log.Exercises {
			logged = append(logged, s.exerciseName(ex.ExerciseID))
		}
	}
	top := stats.TopN(logged, func(name string) string { return name }, 5)

	return &AchievementsOverview{
		Unlocked:         achievements,
		Monthly:          stats.MonthlyTimeline(achievements),
		PerStudent:       perStudent,
		ChallengesByType: byType,
		ActiveChallenges: active,
		TopExercises:     top,
		UnlockedLast30:   len(recentUnlocks),
	}
}

// Progress charts body evolution from the assessment history alongside
// the recent training load.
func (s *progressService) Progress(user *domain.User) *ProgressOverview {
	assessments := s.store.Assessments()
	if user.IsStudent() {
		filtered := assessments[:0]
		for _, a := range assessments {
			if a.StudentID == user.ID {
				filtered = append(filtered, a)
			}
		}
		assessments = filtered
	}
	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].Date.Before(assessments[j].Date)
	})

	timeline := make([]WeightPoint, 0, len(assessments))
	for _, a := range assessments {
		timeline = append(timeline, WeightPoint{Date: a.Date, Weight: a.Weight, BodyFat: a.BodyFat})
	}

	var latest *domain.PhysicalAssessment
	if len(assessments) > 0 {
		last := assessments[len(assessments)-1]
		latest = &last
	}

	logs := s.store.WorkoutLogs()
	if user.IsStudent() {
		logs = s.logsFor(user.ID)
	}
	totalMinutes := 0
	for _, l := range logs {
		totalMinutes += l.Duration
	}

	return &ProgressOverview{
		WeightTimeline: timeline,
		Latest:         latest,
		VolumeTimeline: stats.VolumeTimeline(logs, 7),
		TotalWorkouts:  len(logs),
		TotalMinutes:   totalMinutes,
	}
}

func (s *progressService) logsFor(studentID string) []domain.WorkoutLog {
	var out []domain.WorkoutLog
	for _, log := range s.store.WorkoutLogs() {
		if log.StudentID == studentID {
			out = append(out, log)
		}
	}
	return out
}

func (s *progressService) unreadFor(userID string) int {
	count := 0
	for _, m := range s.store.Messages() {
		if m.ReceiverID == userID && !m.Read {
			count++
		}
	}
	return count
}

func (s *progressService) exerciseName(id string) string {
	if exercise, ok := s.store.ExerciseByID(id); ok {
		return exercise.Name
	}
	return id
}
