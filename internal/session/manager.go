package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// Snapshot is the externally visible view of an active session.
type Snapshot struct {
	ID        string         `json:"id"`
	WorkoutID string         `json:"workoutId"`
	StudentID string         `json:"studentId"`
	State     State          `json:"state"`
	Progress  float64        `json:"progress"`
	Current   ExerciseStep   `json:"currentExercise"`
	Steps     []ExerciseStep `json:"exercises"`
	StartedAt time.Time      `json:"startedAt"`
}

// Result is returned by AdvanceSet. When Completed is true the session
// has been discarded and Elapsed holds the total session duration, so
// the caller can persist a completion record.
type Result struct {
	Snapshot
	Completed bool          `json:"completed"`
	Elapsed   time.Duration `json:"-"`
}

// active pairs a running state machine with its rest-timer cancellation.
// restCancel is non-nil exactly while a rest ticker goroutine is alive.
type active struct {
	workoutID  string
	studentID  string
	sess       *Session
	restCancel context.CancelFunc
	startedAt  time.Time
}

// Manager owns all in-flight guided sessions. Every transition runs
// under the manager's lock, which restores the total ordering of events
// the session machine assumes. The rest countdown is a per-session
// goroutine holding a cancellation context acquired when the rest starts
// and released on any exit transition, so no tick can reach a session
// that already left the resting state.
type Manager struct {
	mu           sync.Mutex
	sessions     map[string]*active
	tickInterval time.Duration
	log          *logrus.Logger
}

// NewManager creates a session manager. tickInterval is the wall-clock
// spacing of rest timer ticks; production callers pass time.Second.
func NewManager(tickInterval time.Duration, log *logrus.Logger) *Manager {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Manager{
		sessions:     make(map[string]*active),
		tickInterval: tickInterval,
		log:          log,
	}
}

// Start validates the plan, creates a session and returns its snapshot.
func (m *Manager) Start(workoutID, studentID string, steps []ExerciseStep) (Snapshot, error) {
	sess, err := New(steps)
	if err != nil {
		return Snapshot{}, err
	}

	a := &active{
		workoutID: workoutID,
		studentID: studentID,
		sess:      sess,
		startedAt: time.Now(),
	}
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = a
	snap := m.snapshot(id, a)
	m.mu.Unlock()

	m.log.WithFields(logrus.Fields{
		"session": id,
		"workout": workoutID,
		"student": studentID,
	}).Info("workout session started")

	return snap, nil
}

// Get returns the snapshot of an active session.
func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return m.snapshot(id, a), nil
}

// AdvanceSet marks the current set complete. On the terminal transition
// the session is discarded and the result carries Completed plus the
// elapsed duration; otherwise a rest countdown is started.
func (m *Manager) AdvanceSet(id string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.sessions[id]
	if !ok {
		return Result{}, ErrSessionNotFound
	}

	done, err := a.sess.AdvanceSet()
	if err != nil {
		return Result{}, err
	}

	if done {
		m.stopRestLocked(a)
		delete(m.sessions, id)
		m.log.WithField("session", id).Info("workout session completed")
		return Result{
			Snapshot:  m.snapshot(id, a),
			Completed: true,
			Elapsed:   time.Since(a.startedAt),
		}, nil
	}

	if a.sess.State().Resting {
		m.startRestLocked(id, a)
	}
	return Result{Snapshot: m.snapshot(id, a)}, nil
}

// SkipRest ends the current rest immediately and stops its ticker.
// Calling it when the session is not resting is a no-op.
func (m *Manager) SkipRest(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}

	a.sess.SkipRest()
	m.stopRestLocked(a)
	return m.snapshot(id, a), nil
}

// Abandon discards the session without recording a completion and stops
// any running rest ticker. Ticks already scheduled will find the session
// gone and do nothing.
func (m *Manager) Abandon(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	m.stopRestLocked(a)
	delete(m.sessions, id)
	m.log.WithField("session", id).Info("workout session abandoned")
	return nil
}

// startRestLocked spawns the rest ticker for a session that just entered
// the resting state. Caller must hold m.mu.
func (m *Manager) startRestLocked(id string, a *active) {
	ctx, cancel := context.WithCancel(context.Background())
	a.restCancel = cancel

	go func() {
		ticker := time.NewTicker(m.tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !m.tick(id, ctx) {
					return
				}
			}
		}
	}()
}

// tick applies one rest-timer second. It reports whether the ticker
// should keep running. A tick that raced with skip/abandon/completion
// finds its context cancelled or the session gone and is suppressed.
func (m *Manager) tick(id string, ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}
	a, ok := m.sessions[id]
	if !ok {
		return false
	}

	if ended := a.sess.Tick(); ended {
		m.stopRestLocked(a)
		return false
	}
	return true
}

// stopRestLocked releases the rest ticker, if any. Caller must hold m.mu.
func (m *Manager) stopRestLocked(a *active) {
	if a.restCancel != nil {
		a.restCancel()
		a.restCancel = nil
	}
}

func (m *Manager) snapshot(id string, a *active) Snapshot {
	return Snapshot{
		ID:        id,
		WorkoutID: a.workoutID,
		StudentID: a.studentID,
		State:     a.sess.State(),
		Progress:  a.sess.ProgressPercent(),
		Current:   a.sess.Current(),
		Steps:     a.sess.Steps(),
		StartedAt: a.startedAt,
	}
}
