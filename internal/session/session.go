package session

import "errors"

// --- Error Definitions ---
var (
	ErrNoExercises     = errors.New("session requires at least one exercise")
	ErrInvalidSetCount = errors.New("every exercise needs at least one planned set")
	ErrRestInProgress  = errors.New("cannot advance while resting")
	ErrCompleted       = errors.New("session already completed")
)

// ExerciseStep is one entry in the ordered plan a session walks through.
// Steps are fixed once the session starts.
type ExerciseStep struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"` // label shown to the user, e.g. "12" or "8-10"
	Rest int    `json:"rest"` // seconds of rest after each set
}

// State is a snapshot of the machine, safe to hand out to callers.
type State struct {
	ExerciseIndex int  `json:"exerciseIndex"`
	SetIndex      int  `json:"setIndex"`
	Resting       bool `json:"resting"`
	RestRemaining int  `json:"restRemaining"`
	Completed     bool `json:"completed"`
}

// Session drives a user through a fixed workout plan one set at a time,
// alternating between performing a set and resting. It is not safe for
// concurrent use; the Manager serializes access to it.
type Session struct {
	steps         []ExerciseStep
	exerciseIndex int
	setIndex      int
	resting       bool
	restRemaining int
	completed     bool
	totalSets     int
}

// New validates the plan and creates a session positioned at the first
// set of the first exercise, not resting. An empty plan or an exercise
// with no planned sets is rejected outright.
func New(steps []ExerciseStep) (*Session, error) {
	if len(steps) == 0 {
		return nil, ErrNoExercises
	}

	total := 0
	for _, step := range steps {
		if step.Sets < 1 {
			return nil, ErrInvalidSetCount
		}
		total += step.Sets
	}

	s := &Session{
		steps:     make([]ExerciseStep, len(steps)),
		totalSets: total,
	}
	copy(s.steps, steps)
	return s, nil
}

// AdvanceSet marks the current set complete and moves the machine forward:
// to the next set of the current exercise, to the first set of the next
// exercise, or to the terminal completed state when the last set of the
// last exercise is done. Entering anything but the terminal state starts
// a rest period sized by the now-current exercise.
//
// The returned bool reports whether the session just completed.
// Calling it while resting is rejected so the machine stays deterministic
// even if the caller's UI gating fails.
func (s *Session) AdvanceSet() (bool, error) {
	if s.completed {
		return false, ErrCompleted
	}
	if s.resting {
		return false, ErrRestInProgress
	}

	current := s.steps[s.exerciseIndex]
	switch {
	case s.setIndex < current.Sets-1:
		s.setIndex++
		s.startRest(current.Rest)
	case s.exerciseIndex < len(s.steps)-1:
		s.exerciseIndex++
		s.setIndex = 0
		s.startRest(s.steps[s.exerciseIndex].Rest)
	default:
		s.completed = true
		return true, nil
	}
	return false, nil
}

func (s *Session) startRest(seconds int) {
	s.resting = true
	s.restRemaining = seconds
	// A zero rest interval ends immediately.
	if seconds <= 0 {
		s.endRest()
	}
}

func (s *Session) endRest() {
	s.resting = false
	s.restRemaining = 0
}

// SkipRest ends the current rest period immediately without touching the
// exercise/set position. It is a no-op when the session is not resting.
func (s *Session) SkipRest() {
	if !s.resting {
		return
	}
	s.endRest()
}

// Tick counts one second off the rest timer. When the countdown reaches
// zero the rest period ends with the same effect as SkipRest. It reports
// whether the rest period ended on this tick, and is a no-op when the
// session is not resting.
func (s *Session) Tick() bool {
	if !s.resting {
		return false
	}
	if s.restRemaining > 0 {
		s.restRemaining--
	}
	if s.restRemaining == 0 {
		s.endRest()
		return true
	}
	return false
}

// ProgressPercent reports completed sets over total sets as a percentage.
// It stays below 100 until the terminal transition; a completed session
// reports exactly 100.
func (s *Session) ProgressPercent() float64 {
	if s.completed {
		return 100
	}
	completed := s.setIndex
	for _, step := range s.steps[:s.exerciseIndex] {
		completed += step.Sets
	}
	return float64(completed) / float64(s.totalSets) * 100
}

// State returns a snapshot of the machine.
func (s *Session) State() State {
	return State{
		ExerciseIndex: s.exerciseIndex,
		SetIndex:      s.setIndex,
		Resting:       s.resting,
		RestRemaining: s.restRemaining,
		Completed:     s.completed,
	}
}

// Current returns the exercise step the session is positioned on.
func (s *Session) Current() ExerciseStep {
	return s.steps[s.exerciseIndex]
}

// Steps returns a copy of the plan the session was started with.
func (s *Session) Steps() []ExerciseStep {
	out := make([]ExerciseStep, len(s.steps))
	copy(out, s.steps)
	return out
}
